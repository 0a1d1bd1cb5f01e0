package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// NotificationEvent is published to the notifications topic whenever a
// check-in is registered or a passenger is marked delayed; the worker
// turns these into messages to the passenger's registered addresses.
type NotificationEvent struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Passport     string    `json:"pasaporte_pasajero"`
	TicketID     int64     `json:"id_boleto"`
	FlightNumber string    `json:"n_vuelo"`
	OccurredAt   time.Time `json:"occurred_at"`
}

const (
	EventCheckInRegistered = "checkin_registered"
	EventPassengerDelayed  = "passenger_delayed"
)

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
