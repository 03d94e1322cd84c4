package adaptor

import (
	"context"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/internal/dto/request"
	"cinema-reservation/internal/dto/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockOrderService struct{ mock.Mock }

func (m *mockOrderService) CreateOrder(ctx context.Context, userID uuid.UUID, req *request.OrderRequest) (*response.OrderResponse, error) {
	args := m.Called(ctx, userID, req)
	o, _ := args.Get(0).(*response.OrderResponse)
	return o, args.Error(1)
}

func (m *mockOrderService) GetOrders(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	args := m.Called(ctx, userID, req)
	p, _ := args.Get(0).(*response.PaginatedResponse[response.OrderResponse])
	return p, args.Error(1)
}

func (m *mockOrderService) GetOrderByID(ctx context.Context, userID uuid.UUID, orderID string) (*response.OrderResponse, error) {
	args := m.Called(ctx, userID, orderID)
	o, _ := args.Get(0).(*response.OrderResponse)
	return o, args.Error(1)
}

func (m *mockOrderService) DeleteOrder(ctx context.Context, userID uuid.UUID, orderID string) error {
	return m.Called(ctx, userID, orderID).Error(0)
}

func (m *mockOrderService) AddTicket(ctx context.Context, userID uuid.UUID, orderID string, req *request.TicketRequest) (*response.TicketResponse, error) {
	args := m.Called(ctx, userID, orderID, req)
	t, _ := args.Get(0).(*response.TicketResponse)
	return t, args.Error(1)
}

func (m *mockOrderService) RemoveTicket(ctx context.Context, userID uuid.UUID, ticketID string) error {
	return m.Called(ctx, userID, ticketID).Error(0)
}

type mockScreeningService struct{ mock.Mock }

func (m *mockScreeningService) GetScreenings(ctx context.Context, filter entity.ScreeningFilter) ([]response.ScreeningListResponse, error) {
	args := m.Called(ctx, filter)
	s, _ := args.Get(0).([]response.ScreeningListResponse)
	return s, args.Error(1)
}

func (m *mockScreeningService) GetScreeningByID(ctx context.Context, id string) (*response.ScreeningDetailResponse, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*response.ScreeningDetailResponse)
	return s, args.Error(1)
}

func (m *mockScreeningService) GetTakenSeats(ctx context.Context, id string) (*response.SeatMapResponse, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*response.SeatMapResponse)
	return s, args.Error(1)
}

func (m *mockScreeningService) CreateScreening(ctx context.Context, req *request.ScreeningRequest) (*response.ScreeningResponse, error) {
	args := m.Called(ctx, req)
	s, _ := args.Get(0).(*response.ScreeningResponse)
	return s, args.Error(1)
}

func (m *mockScreeningService) UpdateScreening(ctx context.Context, id string, req *request.ScreeningRequest) (*response.ScreeningResponse, error) {
	args := m.Called(ctx, id, req)
	s, _ := args.Get(0).(*response.ScreeningResponse)
	return s, args.Error(1)
}

func (m *mockScreeningService) DeleteScreening(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockHallService struct{ mock.Mock }

func (m *mockHallService) GetHalls(ctx context.Context) ([]response.HallResponse, error) {
	args := m.Called(ctx)
	h, _ := args.Get(0).([]response.HallResponse)
	return h, args.Error(1)
}

func (m *mockHallService) GetHallByID(ctx context.Context, id string) (*response.HallResponse, error) {
	args := m.Called(ctx, id)
	h, _ := args.Get(0).(*response.HallResponse)
	return h, args.Error(1)
}

func (m *mockHallService) CreateHall(ctx context.Context, req *request.HallRequest) (*response.HallResponse, error) {
	args := m.Called(ctx, req)
	h, _ := args.Get(0).(*response.HallResponse)
	return h, args.Error(1)
}

func (m *mockHallService) UpdateHall(ctx context.Context, id string, req *request.HallRequest) (*response.HallResponse, error) {
	args := m.Called(ctx, id, req)
	h, _ := args.Get(0).(*response.HallResponse)
	return h, args.Error(1)
}

func (m *mockHallService) DeleteHall(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockMovieService struct{ mock.Mock }

func (m *mockMovieService) GetMovies(ctx context.Context, filter entity.MovieFilter) ([]response.MovieResponse, error) {
	args := m.Called(ctx, filter)
	mv, _ := args.Get(0).([]response.MovieResponse)
	return mv, args.Error(1)
}

func (m *mockMovieService) GetMovieByID(ctx context.Context, id string) (*response.MovieDetailResponse, error) {
	args := m.Called(ctx, id)
	mv, _ := args.Get(0).(*response.MovieDetailResponse)
	return mv, args.Error(1)
}

func (m *mockMovieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieDetailResponse, error) {
	args := m.Called(ctx, req)
	mv, _ := args.Get(0).(*response.MovieDetailResponse)
	return mv, args.Error(1)
}

func (m *mockMovieService) UpdateMovie(ctx context.Context, id string, req *request.MovieRequest) (*response.MovieDetailResponse, error) {
	args := m.Called(ctx, id, req)
	mv, _ := args.Get(0).(*response.MovieDetailResponse)
	return mv, args.Error(1)
}

func (m *mockMovieService) DeleteMovie(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockGenreService struct{ mock.Mock }

func (m *mockGenreService) GetGenres(ctx context.Context) ([]response.GenreResponse, error) {
	args := m.Called(ctx)
	g, _ := args.Get(0).([]response.GenreResponse)
	return g, args.Error(1)
}

func (m *mockGenreService) CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	args := m.Called(ctx, req)
	g, _ := args.Get(0).(*response.GenreResponse)
	return g, args.Error(1)
}

func (m *mockGenreService) UpdateGenre(ctx context.Context, id string, req *request.GenreRequest) (*response.GenreResponse, error) {
	args := m.Called(ctx, id, req)
	g, _ := args.Get(0).(*response.GenreResponse)
	return g, args.Error(1)
}

func (m *mockGenreService) DeleteGenre(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
