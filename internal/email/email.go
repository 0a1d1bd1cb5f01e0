package email

import (
	"context"

	"github.com/emolina91/reservavuelos/internal/kafka"
	"github.com/emolina91/reservavuelos/internal/repository"
	"go.uber.org/zap"
)

// Sender delivers notification events to every address registered for
// the passenger. Delivery is a log line for now; the lookup against the
// correos table is the part the worker actually depends on.
type Sender struct {
	emails repository.EmailRepository
	logger *zap.Logger
}

func NewSender(emails repository.EmailRepository, logger *zap.Logger) *Sender {
	return &Sender{emails: emails, logger: logger}
}

func (s *Sender) Send(ctx context.Context, event kafka.NotificationEvent) error {
	addresses, err := s.emails.ListByPassport(ctx, event.Passport)
	if err != nil {
		return err
	}

	if len(addresses) == 0 {
		s.logger.Warn("passenger has no registered address",
			zap.String("passport", event.Passport),
			zap.String("event", event.Type))
		return nil
	}

	for _, addr := range addresses {
		s.logger.Info("send notification",
			zap.String("to", addr.Address),
			zap.String("event", event.Type),
			zap.String("flight", event.FlightNumber),
			zap.Int64("ticket", event.TicketID))
	}
	return nil
}
