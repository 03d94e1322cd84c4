package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/pkg/metrics"
	"cinema-reservation/pkg/ratelimit"
	"cinema-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockSessionRepo struct{ mock.Mock }

func (m *mockSessionRepo) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	args := m.Called(ctx, token)
	s, _ := args.Get(0).(*entity.Session)
	return s, args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func echoUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	role, _ := utils.GetRoleFromContext(r.Context())
	w.Write([]byte(userID.String() + "|" + role))
}

func TestAuthSession(t *testing.T) {
	token := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setup      func(s *mockSessionRepo, u *mockUserRepo)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic " + token.String(),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token is not a uuid",
			header:     "Bearer nope",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "unknown session",
			header: "Bearer " + token.String(),
			setup: func(s *mockSessionRepo, u *mockUserRepo) {
				s.On("FindValidSession", mock.Anything, token).Return(nil, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "session lookup fails",
			header: "Bearer " + token.String(),
			setup: func(s *mockSessionRepo, u *mockUserRepo) {
				s.On("FindValidSession", mock.Anything, token).Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "valid session",
			header: "Bearer " + token.String(),
			setup: func(s *mockSessionRepo, u *mockUserRepo) {
				s.On("FindValidSession", mock.Anything, token).Return(&entity.Session{UserID: userID, Token: token}, nil)
				u.On("FindByID", mock.Anything, userID).Return(&entity.User{Base: entity.Base{ID: userID}, Role: entity.RoleAdmin}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   userID.String() + "|admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &mockSessionRepo{}
			users := &mockUserRepo{}
			if tt.setup != nil {
				tt.setup(sessions, users)
			}

			h := AuthSession(sessions, users, zap.NewNop())(http.HandlerFunc(echoUser))
			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
			sessions.AssertExpectations(t)
			users.AssertExpectations(t)
		})
	}
}

func TestAdmin(t *testing.T) {
	h := Admin(zap.NewNop())(http.HandlerFunc(echoUser))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/halls", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/halls", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), string(entity.RoleCustomer)))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/admin/halls", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), string(entity.RoleAdmin)))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit(t *testing.T) {
	db, redisMock := redismock.NewClientMock()
	limiter := ratelimit.New(db, "ratelimit:orders", 1, time.Minute)
	userID := uuid.New()
	key := "ratelimit:orders:" + userID.String()

	redisMock.ExpectIncr(key).SetVal(1)
	redisMock.ExpectExpireNX(key, time.Minute).SetVal(true)
	redisMock.ExpectIncr(key).SetVal(2)
	redisMock.ExpectExpireNX(key, time.Minute).SetVal(false)
	redisMock.ExpectIncr(key).SetErr(errors.New("redis down"))

	h := RateLimit(limiter, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
		req = req.WithContext(utils.SetUserContext(req.Context(), userID, "customer"))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusCreated, do().Code)

	limited := do()
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "60", limited.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusCreated, do().Code, "redis errors fail open")
}

func TestRateLimit_Disabled(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h := RateLimit(nil, zap.NewNop())(next)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/orders", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecover(t *testing.T) {
	h := Recover(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":false,"message":"Internal server error"}`, rec.Body.String())
}

func TestMetricsAndLoggerUseRoutePattern(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(Logger(zap.NewNop()))
	r.Use(Metrics(m))
	r.Get("/api/screenings/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/screenings/abc", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	scrape := httptest.NewRecorder()
	m.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, scrape.Body.String(), `route="/api/screenings/{id}",status="404"`)
}
