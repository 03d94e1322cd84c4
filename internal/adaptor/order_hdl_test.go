package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cinema-reservation/internal/dto/request"
	"cinema-reservation/internal/dto/response"
	"cinema-reservation/internal/reservation"
	"cinema-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func orderRouter(svc *mockOrderService, userID uuid.UUID) http.Handler {
	h := NewOrderHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID != uuid.Nil {
				r = r.WithContext(utils.SetUserContext(r.Context(), userID, "customer"))
			}
			next.ServeHTTP(w, r)
		})
	})
	r.Post("/api/orders", h.CreateOrder)
	r.Get("/api/orders", h.GetOrders)
	r.Get("/api/orders/{id}", h.GetOrderByID)
	r.Delete("/api/orders/{id}", h.DeleteOrder)
	r.Post("/api/orders/{id}/tickets", h.AddTicket)
	r.Delete("/api/tickets/{id}", h.RemoveTicket)
	return r
}

func TestCreateOrder_Created(t *testing.T) {
	userID := uuid.New()
	screeningID := uuid.New()
	svc := &mockOrderService{}
	svc.On("CreateOrder", mock.Anything, userID, &request.OrderRequest{
		Tickets: []request.TicketRequest{{ScreeningID: screeningID.String(), Row: 3, Seat: 4}},
	}).Return(&response.OrderResponse{ID: uuid.New()}, nil)

	body := `{"tickets":[{"screening_id":"` + screeningID.String() + `","row":3,"seat":4}]}`
	rec := httptest.NewRecorder()
	orderRouter(svc, userID).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, decodeEnvelope(t, rec).Status)
	svc.AssertExpectations(t)
}

func TestCreateOrder_Rejections(t *testing.T) {
	userID := uuid.New()
	screeningID := uuid.New()
	body := `{"tickets":[` +
		`{"screening_id":"` + screeningID.String() + `","row":1,"seat":1},` +
		`{"screening_id":"` + screeningID.String() + `","row":11,"seat":2}]}`

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantErrors []TicketError
	}{
		{
			name: "row out of range",
			err: &reservation.SelectionError{Index: 1, Err: &reservation.OutOfRangeError{
				Field: reservation.FieldRow, Value: 11, Max: 10,
			}},
			wantStatus: http.StatusBadRequest,
			wantErrors: []TicketError{{Index: 1, Field: "row", Message: "row must be in the range [1, 10]", Row: 11, Seat: 2}},
		},
		{
			name: "seat already sold",
			err: &reservation.SelectionError{Index: 1, Err: &reservation.DuplicateSeatError{
				ScreeningID: screeningID, Position: reservation.Position{Row: 11, Seat: 2},
			}},
			wantStatus: http.StatusBadRequest,
			wantErrors: []TicketError{{
				Index:   1,
				Field:   "seat",
				Message: "row 11, seat 2 is already taken for screening " + screeningID.String(),
				Row:     11,
				Seat:    2,
			}},
		},
		{
			name: "unknown screening",
			err: &reservation.SelectionError{Index: 0, Err: &reservation.NotFoundError{
				Entity: "screening", ID: screeningID.String(),
			}},
			wantStatus: http.StatusBadRequest,
			wantErrors: []TicketError{{
				Index:   0,
				Field:   "screening",
				Message: "screening " + screeningID.String() + " not found",
				Row:     1,
				Seat:    1,
			}},
		},
		{
			name:       "storage failure",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "storage failure attributed to a ticket",
			err:        &reservation.SelectionError{Index: 1, Err: errors.New("connection reset")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockOrderService{}
			svc.On("CreateOrder", mock.Anything, userID, mock.Anything).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			orderRouter(svc, userID).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body)))

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Status)
			if tt.wantErrors == nil {
				return
			}

			var got []TicketError
			require.NoError(t, json.Unmarshal(env.Errors, &got))
			if diff := cmp.Diff(tt.wantErrors, got); diff != "" {
				t.Errorf("errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCreateOrder_EmptySelection(t *testing.T) {
	userID := uuid.New()
	svc := &mockOrderService{}
	svc.On("CreateOrder", mock.Anything, userID, mock.Anything).Return(nil, reservation.ErrEmptySelection)

	rec := httptest.NewRecorder()
	orderRouter(svc, userID).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"tickets":[]}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"tickets":"at least one ticket is required"}`, string(decodeEnvelope(t, rec).Errors))
}

func TestCreateOrder_ValidationBeforeService(t *testing.T) {
	svc := &mockOrderService{}

	rec := httptest.NewRecorder()
	body := `{"tickets":[{"screening_id":"` + uuid.NewString() + `","row":1,"seat":1},{"screening_id":"abc","row":1,"seat":1}]}`
	orderRouter(svc, uuid.New()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"tickets[1].screening_id":"Must be a valid UUID"}`, string(decodeEnvelope(t, rec).Errors))

	rec = httptest.NewRecorder()
	orderRouter(svc, uuid.New()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	svc.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrder_Unauthenticated(t *testing.T) {
	rec := httptest.NewRecorder()
	orderRouter(&mockOrderService{}, uuid.Nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetOrders_QueryParams(t *testing.T) {
	userID := uuid.New()
	svc := &mockOrderService{}
	svc.On("GetOrders", mock.Anything, userID, &request.PaginatedRequest{Page: 2, PerPage: 5}).
		Return(response.NewPaginatedResponse([]response.OrderResponse{}, 2, 5, 7), nil)

	rec := httptest.NewRecorder()
	orderRouter(svc, userID).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders?page=2&per_page=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"data":[],"pagination":{"total":7,"page":2,"per_page":5,"total_pages":2}}`,
		string(decodeEnvelope(t, rec).Data))
	svc.AssertExpectations(t)
}

func TestGetOrderByID_NotFound(t *testing.T) {
	userID := uuid.New()
	orderID := uuid.NewString()
	svc := &mockOrderService{}
	svc.On("GetOrderByID", mock.Anything, userID, orderID).
		Return(nil, &reservation.NotFoundError{Entity: "order", ID: orderID})

	rec := httptest.NewRecorder()
	orderRouter(svc, userID).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders/"+orderID, nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "order "+orderID+" not found", decodeEnvelope(t, rec).Message)
}

func TestAddTicket_OutOfRange(t *testing.T) {
	userID := uuid.New()
	orderID := uuid.NewString()
	svc := &mockOrderService{}
	svc.On("AddTicket", mock.Anything, userID, orderID, mock.Anything).
		Return(nil, &reservation.SelectionError{Index: 0, Err: &reservation.OutOfRangeError{Field: reservation.FieldSeat, Value: 0, Max: 8}})

	body := `{"screening_id":"` + uuid.NewString() + `","row":2,"seat":0}`
	rec := httptest.NewRecorder()
	orderRouter(svc, userID).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/orders/"+orderID+"/tickets", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var got []TicketError
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Errors, &got))
	assert.Equal(t, []TicketError{{Index: 0, Field: "seat", Message: "seat must be in the range [1, 8]", Row: 2, Seat: 0}}, got)
}

func TestRemoveTicket(t *testing.T) {
	userID := uuid.New()
	ticketID := uuid.NewString()
	svc := &mockOrderService{}
	svc.On("RemoveTicket", mock.Anything, userID, ticketID).Return(nil).Once()
	svc.On("RemoveTicket", mock.Anything, userID, ticketID).Return(&reservation.NotFoundError{Entity: "ticket", ID: ticketID}).Once()

	rec := httptest.NewRecorder()
	orderRouter(svc, userID).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/tickets/"+ticketID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	orderRouter(svc, userID).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/tickets/"+ticketID, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
