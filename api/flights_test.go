package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/emolina91/reservavuelos/internal/timeform"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) GetByNumber(ctx context.Context, number string) (*domain.Flight, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) CreateMany(ctx context.Context, flights []domain.Flight) (int64, error) {
	args := m.Called(ctx, flights)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFlightUseCase) Update(ctx context.Context, number string, f *domain.Flight) (*domain.Flight, error) {
	args := m.Called(ctx, number, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Delete(ctx context.Context, number string) (*domain.Flight, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func TestFlightHandler_list(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, timeform.DefaultOffsetHours, zap.NewNop())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/vuelos", nil)

	flights := []domain.Flight{
		{Number: "AV101", AirlineCode: "AV", PlaneID: 1, OriginCode: "GUA", DestinationCode: "MIA", Distance: 1650},
	}

	mockService.On("List", c.Request.Context()).Return(flights, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AV101")

	mockService.AssertExpectations(t)
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, timeform.DefaultOffsetHours, zap.NewNop())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "n_vuelo", Value: "AV101"}}
	c.Request = httptest.NewRequest("GET", "/api/vuelos/AV101", nil)

	flight := &domain.Flight{Number: "AV101", AirlineCode: "AV"}

	mockService.On("GetByNumber", c.Request.Context(), "AV101").Return(flight, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_get_missingIsNull(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, timeform.DefaultOffsetHours, zap.NewNop())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "n_vuelo", Value: "ZZ999"}}
	c.Request = httptest.NewRequest("GET", "/api/vuelos/ZZ999", nil)

	mockService.On("GetByNumber", c.Request.Context(), "ZZ999").Return(nil, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())

	mockService.AssertExpectations(t)
}

func TestFlightHandler_create_batch(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, timeform.DefaultOffsetHours, zap.NewNop())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `[
		{"n_vuelo":"AV101","codigo_aerolinea":"AV","id_avion":1,"codigo_origen":"GUA","codigo_destino":"MIA","distancia":1650,"fecha":"2024-05-01","hora_salida":"10:30:00","hora_llegada":"13:45:00"},
		{"n_vuelo":"AV102","codigo_aerolinea":"AV","id_avion":1,"codigo_origen":"MIA","codigo_destino":"GUA","distancia":1650,"fecha":"2024-05-02","hora_salida":"08:00:00","hora_llegada":"11:15:00"}
	]`
	c.Request = httptest.NewRequest("POST", "/api/vuelos", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("CreateMany", c.Request.Context(), mock.MatchedBy(func(flights []domain.Flight) bool {
		return len(flights) == 2 && flights[0].Number == "AV101" && flights[1].Number == "AV102"
	})).Return(int64(2), nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"count":2}`, w.Body.String())

	mockService.AssertExpectations(t)
}

func TestFlightHandler_create_singleObjectIsBatchOfOne(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, timeform.DefaultOffsetHours, zap.NewNop())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"n_vuelo":"AV101","codigo_aerolinea":"AV","id_avion":1,"codigo_origen":"GUA","codigo_destino":"MIA","distancia":1650,"fecha":"2024-05-01","hora_salida":"10:30:00","hora_llegada":"13:45:00"}`
	c.Request = httptest.NewRequest("POST", "/api/vuelos", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("CreateMany", c.Request.Context(), mock.MatchedBy(func(flights []domain.Flight) bool {
		return len(flights) == 1 && flights[0].Number == "AV101"
	})).Return(int64(1), nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"count":1}`, w.Body.String())

	mockService.AssertExpectations(t)
}

func TestFlightHandler_create_normalizesTimes(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, -6, zap.NewNop())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"n_vuelo":"AV101","codigo_aerolinea":"AV","id_avion":1,"codigo_origen":"GUA","codigo_destino":"MIA","distancia":1650,"fecha":"2024-05-01","hora_salida":"10:30:00","hora_llegada":"13:45:00"}`
	c.Request = httptest.NewRequest("POST", "/api/vuelos", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	wantDeparture, err := time.ParseInLocation("2006-01-02T15:04:05", "1970-01-01T10:30:00", time.Local)
	assert.NoError(t, err)
	wantDeparture = wantDeparture.Add(-6 * time.Hour)

	mockService.On("CreateMany", c.Request.Context(), mock.MatchedBy(func(flights []domain.Flight) bool {
		return len(flights) == 1 &&
			flights[0].Date.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) &&
			flights[0].DepartureTime.Equal(wantDeparture)
	})).Return(int64(1), nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_create_malformedTime(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, timeform.DefaultOffsetHours, zap.NewNop())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"n_vuelo":"AV101","fecha":"2024-05-01","hora_salida":"no es una hora","hora_llegada":"13:45:00"}`
	c.Request = httptest.NewRequest("POST", "/api/vuelos", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.create(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error al crear el vuelo")
	mockService.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
}

func TestFlightHandler_remove_missing(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, timeform.DefaultOffsetHours, zap.NewNop())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "n_vuelo", Value: "ZZ999"}}
	c.Request = httptest.NewRequest("DELETE", "/api/vuelos/ZZ999", nil)

	mockService.On("Delete", c.Request.Context(), "ZZ999").Return(nil, assert.AnError)

	handler.remove(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error al eliminar el vuelo")

	mockService.AssertExpectations(t)
}
