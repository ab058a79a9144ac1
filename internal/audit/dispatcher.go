package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/BruksfildServices01/service-booking/internal/infra/events"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Dispatcher records audit entries and publishes lifecycle events off the
// request path. A full queue drops the event; audit never fails a request.
type Dispatcher struct {
	logger    *Logger
	publisher events.Publisher
	log       *slog.Logger

	queue chan Event
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(logger *Logger, publisher events.Publisher, log *slog.Logger) *Dispatcher {
	if publisher == nil {
		publisher = events.NewNoop()
	}
	if log == nil {
		log = slog.Default()
	}

	d := &Dispatcher{
		logger:    logger,
		publisher: publisher,
		log:       log,
		queue:     make(chan Event, 100),
		done:      make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		if err := d.logger.Log(ctx, ev.UserID, ev.Action, ev.Entity, ev.EntityID, ev.Metadata); err != nil {
			d.log.Error("audit write failed", slog.String("action", ev.Action), slog.String("error", err.Error()))
		}

		if err := d.publisher.Publish(ctx, events.Event{
			Type:       ev.Action,
			Entity:     ev.Entity,
			EntityID:   ev.EntityID,
			UserID:     ev.UserID,
			Payload:    ev.Metadata,
			OccurredAt: time.Now().UTC(),
		}); err != nil {
			d.log.Error("event publish failed", slog.String("action", ev.Action), slog.String("error", err.Error()))
		}

		cancel()
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", slog.String("action", ev.Action))
	}
}

// Close stops accepting events and waits until the queue is drained.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}
