package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bookstore/fulfillment-saga/shared/models"
)

// Topic represents an event topic
type Topic string

func (t Topic) String() string {
	return string(t)
}

// Metadata represents event metadata
type Metadata map[string]string

func (m Metadata) Set(key string, value string) {
	m[key] = value
}

// Event represents a fulfillment event
type Event struct {
	ID            models.ID   `json:"id"`
	AggregateID   string      `json:"aggregate_id"`
	Topic         Topic       `json:"topic"`
	Version       string      `json:"version"`
	Data          interface{} `json:"data"`
	Metadata      Metadata    `json:"metadata"`
	Timestamp     time.Time   `json:"timestamp"`
	CorrelationID string      `json:"correlation_id,omitempty"`
}

// Publisher publishes events
type Publisher interface {
	Publish(ctx context.Context, events ...*Event) error
}

// NewEvent creates a new event for the given aggregate
func NewEvent(aggregateID string, topic Topic, data interface{}) *Event {
	return &Event{
		ID:          models.GenerateUUID(),
		AggregateID: aggregateID,
		Topic:       topic,
		Version:     "1.0",
		Data:        data,
		Metadata:    make(Metadata),
		Timestamp:   time.Now().UTC(),
	}
}

// WithCorrelationID sets correlation ID
func (e *Event) WithCorrelationID(correlationID string) *Event {
	e.CorrelationID = correlationID
	return e
}

// WithMetadata adds metadata
func (e *Event) WithMetadata(key string, value string) *Event {
	if e.Metadata == nil {
		e.Metadata = make(Metadata)
	}
	e.Metadata.Set(key, value)
	return e
}

// MarshalPayload marshals the event payload
func (e *Event) MarshalPayload() (json.RawMessage, error) {
	if b, ok := e.Data.([]byte); ok {
		return b, nil
	}

	if b, ok := e.Data.(json.RawMessage); ok {
		return b, nil
	}

	return json.Marshal(e.Data)
}

// NopPublisher drops every event. Used when no topic is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, events ...*Event) error {
	return nil
}

// Event topics
const (
	CourierAssignedTopic         Topic = "courier.assigned"
	CourierAssignmentFailedTopic Topic = "courier.assignment.failed"
)
