package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Saruman1/airline/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
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

func (m *MockFlightUseCase) GetByDate(ctx context.Context, date string) (*domain.Flight, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func TestFlightHandler_list(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights", nil)

	flights := []domain.Flight{
		{Number: "FL123", Departure: "New York", Destination: "Los Angeles", PriceCents: 500, MaxPassengers: 100},
	}

	mockService.On("List", c.Request.Context()).Return(flights, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "number", Value: "FL123"}}
	c.Request = httptest.NewRequest("GET", "/flights/FL123", nil)

	flight := &domain.Flight{Number: "FL123", Departure: "New York", Destination: "Los Angeles", PriceCents: 500}

	mockService.On("GetByNumber", c.Request.Context(), "FL123").Return(flight, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_get_NotFound(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "number", Value: "FL999"}}
	c.Request = httptest.NewRequest("GET", "/flights/FL999", nil)

	mockService.On("GetByNumber", c.Request.Context(), "FL999").Return(nil, domain.ErrNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_getByDate(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights/by-date?date=2023-04-15", nil)

	flight := &domain.Flight{Number: "FL123"}
	mockService.On("GetByDate", c.Request.Context(), "2023-04-15").Return(flight, nil)

	handler.getByDate(c)

	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_getByDate_MissingParam(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights/by-date", nil)

	handler.getByDate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "GetByDate")
}

func TestFlightHandler_totalCost(t *testing.T) {
	mockReservations := &MockReservationUseCase{}
	handler := NewFlightHandler(nil, mockReservations)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "number", Value: "FL123"}}
	c.Request = httptest.NewRequest("GET", "/flights/FL123/cost", nil)

	mockReservations.On("TotalCost", c.Request.Context(), "FL123").Return(int64(1000), nil)

	handler.totalCost(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, float64(1000), response["total_cost_cents"])

	mockReservations.AssertExpectations(t)
}

func TestFlightHandler_freeSeats(t *testing.T) {
	mockReservations := &MockReservationUseCase{}
	handler := NewFlightHandler(nil, mockReservations)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "number", Value: "FL123"}}
	c.Request = httptest.NewRequest("GET", "/flights/FL123/seats?plane=Boeing+747", nil)

	mockReservations.On("FreeSeats", c.Request.Context(), "FL123", "Boeing 747").Return([]int{2, 3, 4}, nil)

	handler.freeSeats(c)

	assert.Equal(t, http.StatusOK, w.Code)

	mockReservations.AssertExpectations(t)
}

func TestFlightHandler_freeSeats_MissingPlane(t *testing.T) {
	mockReservations := &MockReservationUseCase{}
	handler := NewFlightHandler(nil, mockReservations)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "number", Value: "FL123"}}
	c.Request = httptest.NewRequest("GET", "/flights/FL123/seats", nil)

	handler.freeSeats(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockReservations.AssertNotCalled(t, "FreeSeats")
}
