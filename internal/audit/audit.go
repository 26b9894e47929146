// Package audit records security-relevant events (authentication outcomes,
// unhandled failures) through a swappable sink so the core never owns log
// file lifecycle.
package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/petrkoval/notes-api/internal/logger"
)

// Event kinds published to the audit topic.
const (
	KindAuthSuccess = "auth_success"
	KindAuthFailure = "auth_failure"
	KindUnhandled   = "unhandled_error"
)

// Event is the payload published for every audit record.
type Event struct {
	EventID  string `json:"event_id"`
	Kind     string `json:"kind"`
	Username string `json:"username,omitempty"`
	Detail   string `json:"detail,omitempty"`
	At       int64  `json:"at"`
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// KafkaSink publishes audit events to a Kafka topic. Publishing failures are
// logged and swallowed: auditing must never fail a request.
type KafkaSink struct {
	writer KafkaWriter
}

// NewKafkaSink creates a sink backed by the given writer.
func NewKafkaSink(writer KafkaWriter) *KafkaSink {
	return &KafkaSink{writer: writer}
}

// RecordAuthSuccess publishes a successful authentication event.
func (s *KafkaSink) RecordAuthSuccess(ctx context.Context, username string) {
	s.publish(ctx, Event{
		EventID:  uuid.NewString(),
		Kind:     KindAuthSuccess,
		Username: username,
		At:       time.Now().Unix(),
	})
}

// RecordAuthFailure publishes a failed authentication event with its reason.
func (s *KafkaSink) RecordAuthFailure(ctx context.Context, username, reason string) {
	s.publish(ctx, Event{
		EventID:  uuid.NewString(),
		Kind:     KindAuthFailure,
		Username: username,
		Detail:   reason,
		At:       time.Now().Unix(),
	})
}

// RecordUnhandled publishes an event for an error that fell through
// classification.
func (s *KafkaSink) RecordUnhandled(ctx context.Context, err error) {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	s.publish(ctx, Event{
		EventID: uuid.NewString(),
		Kind:    KindUnhandled,
		Detail:  detail,
		At:      time.Now().Unix(),
	})
}

func (s *KafkaSink) publish(ctx context.Context, event Event) {
	if s.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping audit event", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal audit event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish audit event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Audit event published", "event_id", event.EventID, "kind", event.Kind)
	}
}

// NopSink discards every event. Used in tests.
type NopSink struct{}

func (NopSink) RecordAuthSuccess(ctx context.Context, username string)        {}
func (NopSink) RecordAuthFailure(ctx context.Context, username, reason string) {}
func (NopSink) RecordUnhandled(ctx context.Context, err error)                 {}
