// Package events publishes appointment lifecycle events for downstream
// collaborators (notification senders, analytics). Publishing is always
// fail-soft: a broker outage never fails the booking that triggered it.
package events

import (
	"context"
	"encoding/json"
	"time"

	"salonbook/pkg/logger"

	"github.com/segmentio/kafka-go"
)

const (
	TypeAppointmentCreated       = "appointment.created"
	TypeAppointmentStatusChanged = "appointment.status_changed"
	TypeAppointmentRescheduled   = "appointment.rescheduled"
	TypeAppointmentDeleted       = "appointment.deleted"
)

type Event struct {
	Type           string    `json:"type"`
	AppointmentID  string    `json:"appointmentId"`
	SalonID        string    `json:"salonId,omitempty"`
	BookingGroupID string    `json:"bookingGroupId,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
	Payload        any       `json:"payload,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type kafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher builds a publisher over the given brokers. Messages are
// keyed by appointment ID so per-appointment ordering is preserved.
func NewKafkaPublisher(brokers []string, topic string) Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Compression:  kafka.Snappy,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(string, ...any) {}),
	}
	return &kafkaPublisher{writer: writer}
}

func (p *kafkaPublisher) Publish(ctx context.Context, event Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.AppointmentID),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	})
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type noopPublisher struct{}

// NewNoopPublisher is used when no brokers are configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, Event) error { return nil }
func (noopPublisher) Close() error                         { return nil }

// FromConfig picks the Kafka publisher when brokers are configured and the
// no-op otherwise.
func FromConfig(brokers []string, topic string, log *logger.Logger) Publisher {
	if len(brokers) == 0 {
		log.Info("Event publishing disabled: no Kafka brokers configured")
		return NewNoopPublisher()
	}
	log.Info("Event publishing enabled", "brokers", len(brokers), "topic", topic)
	return NewKafkaPublisher(brokers, topic)
}
