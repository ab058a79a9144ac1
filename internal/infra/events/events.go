package events

import (
	"context"
	"time"
)

// Event is a lifecycle notification published for downstream consumers
// (mailers, analytics). Type mirrors the audit action, e.g. "booking_created".
type Event struct {
	Type       string    `json:"type"`
	Entity     string    `json:"entity"`
	EntityID   *uint     `json:"entity_id,omitempty"`
	UserID     *uint     `json:"user_id,omitempty"`
	Payload    any       `json:"payload,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}

type NoopPublisher struct{}

func NewNoop() *NoopPublisher {
	return &NoopPublisher{}
}

func (NoopPublisher) Publish(ctx context.Context, ev Event) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
