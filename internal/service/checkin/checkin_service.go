package checkin

import (
	"context"
	"time"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/emolina91/reservavuelos/internal/kafka"
	"github.com/emolina91/reservavuelos/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MissedCheckInReason is recorded on delayed-passenger rows created by
// the sweep.
const MissedCheckInReason = "No se presentó al vuelo"

type CheckInUseCase interface {
	List(ctx context.Context) ([]domain.CheckIn, error)
	GetByTicketID(ctx context.Context, ticketID int64) (*domain.CheckIn, error)
	ListByFlight(ctx context.Context, flightNumber string) ([]domain.CheckIn, error)
	Create(ctx context.Context, c *domain.CheckIn) error
	Update(ctx context.Context, ticketID int64, c *domain.CheckIn) (*domain.CheckIn, error)
	Delete(ctx context.Context, ticketID int64) (*domain.CheckIn, error)
	SweepMissedCheckIns(ctx context.Context) ([]domain.DelayedPassenger, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CheckInService struct {
	checkins repository.CheckInRepository
	delayed  repository.DelayedPassengerRepository
	producer Producer
	topic    string
	logger   *zap.Logger
}

func NewCheckInService(
	checkins repository.CheckInRepository,
	delayed repository.DelayedPassengerRepository,
	producer Producer,
	topic string,
	logger *zap.Logger,
) *CheckInService {
	return &CheckInService{
		checkins: checkins,
		delayed:  delayed,
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

func (s *CheckInService) List(ctx context.Context) ([]domain.CheckIn, error) {
	return s.checkins.List(ctx)
}

func (s *CheckInService) GetByTicketID(ctx context.Context, ticketID int64) (*domain.CheckIn, error) {
	return s.checkins.GetByTicketID(ctx, ticketID)
}

func (s *CheckInService) ListByFlight(ctx context.Context, flightNumber string) ([]domain.CheckIn, error) {
	return s.checkins.ListByFlight(ctx, flightNumber)
}

func (s *CheckInService) Create(ctx context.Context, c *domain.CheckIn) error {
	if err := s.checkins.Create(ctx, c); err != nil {
		return err
	}

	s.publish(ctx, kafka.NotificationEvent{
		ID:           uuid.NewString(),
		Type:         kafka.EventCheckInRegistered,
		Passport:     c.Passport,
		TicketID:     c.TicketID,
		FlightNumber: c.FlightNumber,
		OccurredAt:   time.Now(),
	})
	return nil
}

func (s *CheckInService) Update(ctx context.Context, ticketID int64, c *domain.CheckIn) (*domain.CheckIn, error) {
	return s.checkins.Update(ctx, ticketID, c)
}

func (s *CheckInService) Delete(ctx context.Context, ticketID int64) (*domain.CheckIn, error) {
	return s.checkins.Delete(ctx, ticketID)
}

// SweepMissedCheckIns registers a delayed passenger for every check-in
// still pending after its flight date and notifies each one. Run
// periodically by the worker.
func (s *CheckInService) SweepMissedCheckIns(ctx context.Context) ([]domain.DelayedPassenger, error) {
	registered, err := s.delayed.RegisterMissedCheckIns(ctx, time.Now(), MissedCheckInReason)
	if err != nil {
		return nil, err
	}

	for _, d := range registered {
		s.publish(ctx, kafka.NotificationEvent{
			ID:         uuid.NewString(),
			Type:       kafka.EventPassengerDelayed,
			Passport:   d.Passport,
			TicketID:   d.TicketID,
			OccurredAt: time.Now(),
		})
	}
	return registered, nil
}

// Events are best effort: the row is already committed when publishing
// fails, so the failure is logged and the write still succeeds.
func (s *CheckInService) publish(ctx context.Context, event kafka.NotificationEvent) {
	if s.producer == nil {
		return
	}
	if err := s.producer.Publish(ctx, s.topic, event.Passport, event); err != nil {
		s.logger.Warn("failed to publish notification event",
			zap.String("type", event.Type),
			zap.String("passport", event.Passport),
			zap.Error(err))
	}
}

var _ CheckInUseCase = (*CheckInService)(nil)
