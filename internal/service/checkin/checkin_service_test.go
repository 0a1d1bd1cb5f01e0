package checkin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/emolina91/reservavuelos/internal/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockCheckInRepository struct {
	mock.Mock
}

func (m *MockCheckInRepository) List(ctx context.Context) ([]domain.CheckIn, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CheckIn), args.Error(1)
}

func (m *MockCheckInRepository) GetByTicketID(ctx context.Context, ticketID int64) (*domain.CheckIn, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckIn), args.Error(1)
}

func (m *MockCheckInRepository) ListByFlight(ctx context.Context, flightNumber string) ([]domain.CheckIn, error) {
	args := m.Called(ctx, flightNumber)
	return args.Get(0).([]domain.CheckIn), args.Error(1)
}

func (m *MockCheckInRepository) Create(ctx context.Context, c *domain.CheckIn) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCheckInRepository) Update(ctx context.Context, ticketID int64, c *domain.CheckIn) (*domain.CheckIn, error) {
	args := m.Called(ctx, ticketID, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckIn), args.Error(1)
}

func (m *MockCheckInRepository) Delete(ctx context.Context, ticketID int64) (*domain.CheckIn, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckIn), args.Error(1)
}

type MockDelayedPassengerRepository struct {
	mock.Mock
}

func (m *MockDelayedPassengerRepository) List(ctx context.Context) ([]domain.DelayedPassenger, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.DelayedPassenger), args.Error(1)
}

func (m *MockDelayedPassengerRepository) ListWithTickets(ctx context.Context) ([]domain.DelayedPassengerTicket, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.DelayedPassengerTicket), args.Error(1)
}

func (m *MockDelayedPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.DelayedPassenger, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DelayedPassenger), args.Error(1)
}

func (m *MockDelayedPassengerRepository) Create(ctx context.Context, d *domain.DelayedPassenger) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDelayedPassengerRepository) Update(ctx context.Context, id int64, d *domain.DelayedPassenger) (*domain.DelayedPassenger, error) {
	args := m.Called(ctx, id, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DelayedPassenger), args.Error(1)
}

func (m *MockDelayedPassengerRepository) Delete(ctx context.Context, id int64) (*domain.DelayedPassenger, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DelayedPassenger), args.Error(1)
}

func (m *MockDelayedPassengerRepository) RegisterMissedCheckIns(ctx context.Context, deadline time.Time, reason string) ([]domain.DelayedPassenger, error) {
	args := m.Called(ctx, deadline, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DelayedPassenger), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func TestCheckInService_Create_PublishesEvent(t *testing.T) {
	mockRepo := &MockCheckInRepository{}
	mockDelayed := &MockDelayedPassengerRepository{}
	mockProducer := &MockProducer{}

	service := NewCheckInService(mockRepo, mockDelayed, mockProducer, "reservas.notifications", zap.NewNop())

	ctx := context.Background()
	checkIn := &domain.CheckIn{
		TicketID:     7,
		Passport:     "GTM1234",
		FlightNumber: "AV101",
		Status:       domain.CheckInStatusPending,
	}

	mockRepo.On("Create", ctx, checkIn).Return(nil)
	mockProducer.On("Publish", ctx, "reservas.notifications", "GTM1234", mock.MatchedBy(func(v interface{}) bool {
		event, ok := v.(kafka.NotificationEvent)
		return ok && event.Type == kafka.EventCheckInRegistered && event.TicketID == 7
	})).Return(nil)

	err := service.Create(ctx, checkIn)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestCheckInService_Create_PublishFailureIsNotFatal(t *testing.T) {
	mockRepo := &MockCheckInRepository{}
	mockDelayed := &MockDelayedPassengerRepository{}
	mockProducer := &MockProducer{}

	service := NewCheckInService(mockRepo, mockDelayed, mockProducer, "reservas.notifications", zap.NewNop())

	ctx := context.Background()
	checkIn := &domain.CheckIn{TicketID: 7, Passport: "GTM1234", FlightNumber: "AV101"}

	mockRepo.On("Create", ctx, checkIn).Return(nil)
	mockProducer.On("Publish", ctx, "reservas.notifications", "GTM1234", mock.Anything).Return(errors.New("broker down"))

	err := service.Create(ctx, checkIn)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCheckInService_Create_RepoErrorSkipsPublish(t *testing.T) {
	mockRepo := &MockCheckInRepository{}
	mockDelayed := &MockDelayedPassengerRepository{}
	mockProducer := &MockProducer{}

	service := NewCheckInService(mockRepo, mockDelayed, mockProducer, "reservas.notifications", zap.NewNop())

	ctx := context.Background()
	checkIn := &domain.CheckIn{TicketID: 7, Passport: "GTM1234"}

	mockRepo.On("Create", ctx, checkIn).Return(errors.New("duplicate key"))

	err := service.Create(ctx, checkIn)

	assert.Error(t, err)
	mockProducer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckInService_SweepMissedCheckIns(t *testing.T) {
	mockRepo := &MockCheckInRepository{}
	mockDelayed := &MockDelayedPassengerRepository{}
	mockProducer := &MockProducer{}

	service := NewCheckInService(mockRepo, mockDelayed, mockProducer, "reservas.notifications", zap.NewNop())

	ctx := context.Background()
	registered := []domain.DelayedPassenger{
		{ID: 1, Passport: "GTM1234", TicketID: 7, Reason: MissedCheckInReason},
		{ID: 2, Passport: "SLV5678", TicketID: 9, Reason: MissedCheckInReason},
	}

	mockDelayed.On("RegisterMissedCheckIns", ctx, mock.AnythingOfType("time.Time"), MissedCheckInReason).Return(registered, nil)
	mockProducer.On("Publish", ctx, "reservas.notifications", "GTM1234", mock.MatchedBy(func(v interface{}) bool {
		event, ok := v.(kafka.NotificationEvent)
		return ok && event.Type == kafka.EventPassengerDelayed && event.TicketID == 7
	})).Return(nil)
	mockProducer.On("Publish", ctx, "reservas.notifications", "SLV5678", mock.MatchedBy(func(v interface{}) bool {
		event, ok := v.(kafka.NotificationEvent)
		return ok && event.Type == kafka.EventPassengerDelayed && event.TicketID == 9
	})).Return(nil)

	got, err := service.SweepMissedCheckIns(ctx)

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	mockDelayed.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestCheckInService_SweepMissedCheckIns_RepoError(t *testing.T) {
	mockRepo := &MockCheckInRepository{}
	mockDelayed := &MockDelayedPassengerRepository{}
	mockProducer := &MockProducer{}

	service := NewCheckInService(mockRepo, mockDelayed, mockProducer, "reservas.notifications", zap.NewNop())

	ctx := context.Background()

	mockDelayed.On("RegisterMissedCheckIns", ctx, mock.AnythingOfType("time.Time"), MissedCheckInReason).Return(nil, errors.New("db down"))

	got, err := service.SweepMissedCheckIns(ctx)

	assert.Error(t, err)
	assert.Nil(t, got)
	mockProducer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
