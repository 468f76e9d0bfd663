package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

const (
	KindBookingCreated     = "booking_created"
	KindBookingConfirmed   = "booking_confirmed"
	KindBookingCancelled   = "booking_cancelled"
	KindBookingRescheduled = "booking_rescheduled"
	KindBookingCompleted   = "booking_completed"
	KindBookingNoShow      = "booking_no_show"
	KindBookingRated       = "booking_rated"
)

type Message struct {
	RecipientID uuid.UUID
	ShopID      uuid.UUID
	BookingID   *uuid.UUID
	Kind        string
	Title       string
	Body        string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Dispatcher delivers messages in the background. Callers never wait
// on delivery and never see its errors.
type Dispatcher struct {
	sender Sender
	queue  chan Message
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(sender Sender, size int) *Dispatcher {
	if size <= 0 {
		size = 100
	}

	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Message, size),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for msg := range d.queue {
		if err := d.sender.Send(context.Background(), msg); err != nil {
			slog.Error("notification delivery failed",
				"kind", msg.Kind,
				"recipient_id", msg.RecipientID,
				"error", err,
			)
		}
	}
}

// Dispatch never blocks. Messages arriving after Close are dropped.
func (d *Dispatcher) Dispatch(msg Message) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		slog.Warn("notification dispatcher closed, dropping message",
			"kind", msg.Kind,
			"recipient_id", msg.RecipientID,
		)
		return
	}

	select {
	case d.queue <- msg:
	default:
		slog.Warn("notification queue full, dropping message",
			"kind", msg.Kind,
			"recipient_id", msg.RecipientID,
		)
	}
}

// Close stops accepting messages and waits for the queue to drain.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}
