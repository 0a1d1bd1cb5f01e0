package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) ListByFlight(ctx context.Context, flightNumber string) ([]domain.Ticket, error) {
	args := m.Called(ctx, flightNumber)
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTicketRepository) Update(ctx context.Context, id int64, t *domain.Ticket) (*domain.Ticket, error) {
	args := m.Called(ctx, id, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) Delete(ctx context.Context, id int64) (*domain.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func TestTicketHandler_create_assignsPlaceholderNumber(t *testing.T) {
	mockRepo := &MockTicketRepository{}
	handler := NewTicketHandler(mockRepo, zap.NewNop())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"pasaporte_pasajero":"GTM1234","n_vuelo":"AV101","fecha_compra":"2024-04-20","clase":"Economica","precio":350.5}`
	c.Request = httptest.NewRequest("POST", "/api/boletos", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockRepo.On("Create", c.Request.Context(), mock.MatchedBy(func(ticket *domain.Ticket) bool {
		return ticket.TicketNumber == "U1" && ticket.Passport == "GTM1234" && ticket.FlightNumber == "AV101"
	})).Return(nil)

	handler.create(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"n_boleto":"U1"`)

	mockRepo.AssertExpectations(t)
}

func TestTicketHandler_create_malformedDate(t *testing.T) {
	mockRepo := &MockTicketRepository{}
	handler := NewTicketHandler(mockRepo, zap.NewNop())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"pasaporte_pasajero":"GTM1234","n_vuelo":"AV101","fecha_compra":"ayer","clase":"Economica","precio":350.5}`
	c.Request = httptest.NewRequest("POST", "/api/boletos", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.create(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error al crear el boleto")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTicketHandler_listByFlight(t *testing.T) {
	mockRepo := &MockTicketRepository{}
	handler := NewTicketHandler(mockRepo, zap.NewNop())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "n_vuelo", Value: "AV101"}}
	c.Request = httptest.NewRequest("GET", "/api/boletos/n_vuelo/AV101", nil)

	tickets := []domain.Ticket{{ID: 7, Passport: "GTM1234", FlightNumber: "AV101", TicketNumber: "U1"}}

	mockRepo.On("ListByFlight", c.Request.Context(), "AV101").Return(tickets, nil)

	handler.listByFlight(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "GTM1234")

	mockRepo.AssertExpectations(t)
}

func TestTicketHandler_get_badID(t *testing.T) {
	mockRepo := &MockTicketRepository{}
	handler := NewTicketHandler(mockRepo, zap.NewNop())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id_boleto", Value: "abc"}}
	c.Request = httptest.NewRequest("GET", "/api/boletos/abc", nil)

	handler.get(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error al obtener el boleto")
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
