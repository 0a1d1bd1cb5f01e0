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

type MockAirlineRepository struct {
	mock.Mock
}

func (m *MockAirlineRepository) List(ctx context.Context) ([]domain.Airline, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airline), args.Error(1)
}

func (m *MockAirlineRepository) GetByCode(ctx context.Context, code string) (*domain.Airline, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airline), args.Error(1)
}

func (m *MockAirlineRepository) Create(ctx context.Context, a *domain.Airline) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAirlineRepository) Update(ctx context.Context, code string, a *domain.Airline) (*domain.Airline, error) {
	args := m.Called(ctx, code, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airline), args.Error(1)
}

func (m *MockAirlineRepository) Delete(ctx context.Context, code string) (*domain.Airline, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airline), args.Error(1)
}

func TestAirlineHandler_list(t *testing.T) {
	mockRepo := &MockAirlineRepository{}
	handler := NewAirlineHandler(mockRepo, zap.NewNop())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/aerolineas", nil)

	airlines := []domain.Airline{{IATACode: "AV", Name: "Avianca"}}

	mockRepo.On("List", c.Request.Context()).Return(airlines, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Avianca")

	mockRepo.AssertExpectations(t)
}

func TestAirlineHandler_list_emptyIsArray(t *testing.T) {
	mockRepo := &MockAirlineRepository{}
	handler := NewAirlineHandler(mockRepo, zap.NewNop())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/aerolineas", nil)

	mockRepo.On("List", c.Request.Context()).Return([]domain.Airline{}, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestAirlineHandler_create(t *testing.T) {
	mockRepo := &MockAirlineRepository{}
	handler := NewAirlineHandler(mockRepo, zap.NewNop())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"codigo_iata":"AV","nombre":"Avianca"}`
	c.Request = httptest.NewRequest("POST", "/api/aerolineas", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockRepo.On("Create", c.Request.Context(), &domain.Airline{IATACode: "AV", Name: "Avianca"}).Return(nil)

	handler.create(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AV")

	mockRepo.AssertExpectations(t)
}

func TestAirlineHandler_get_missingIsNull(t *testing.T) {
	mockRepo := &MockAirlineRepository{}
	handler := NewAirlineHandler(mockRepo, zap.NewNop())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "codigo_iata", Value: "ZZ"}}
	c.Request = httptest.NewRequest("GET", "/api/aerolineas/ZZ", nil)

	mockRepo.On("GetByCode", c.Request.Context(), "ZZ").Return(nil, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())

	mockRepo.AssertExpectations(t)
}

func TestAirlineHandler_update_missing(t *testing.T) {
	mockRepo := &MockAirlineRepository{}
	handler := NewAirlineHandler(mockRepo, zap.NewNop())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "codigo_iata", Value: "ZZ"}}
	body := `{"codigo_iata":"ZZ","nombre":"Fantasma"}`
	c.Request = httptest.NewRequest("PUT", "/api/aerolineas/ZZ", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockRepo.On("Update", c.Request.Context(), "ZZ", mock.Anything).Return(nil, assert.AnError)

	handler.update(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error al actualizar la aerolínea")

	mockRepo.AssertExpectations(t)
}
