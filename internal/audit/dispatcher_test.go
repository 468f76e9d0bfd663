package audit

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type memorySink struct {
	mu     sync.Mutex
	events []Event
}

func (s *memorySink) Log(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func TestDispatcherWritesEvents(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink)

	shopID := uuid.New()
	bookingID := uuid.New()
	d.Dispatch(Event{ShopID: shopID, Action: "booking_confirmed", Entity: "booking", EntityID: &bookingID})
	d.Close()

	if assert.Len(t, sink.events, 1) {
		assert.Equal(t, "booking_confirmed", sink.events[0].Action)
		assert.Equal(t, bookingID, *sink.events[0].EntityID)
	}
}

func TestDispatcherDropsAfterClose(t *testing.T) {
	sink := &memorySink{}
	d := NewDispatcher(sink)

	d.Dispatch(Event{Action: "booking_created"})
	d.Close()

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "booking_cancelled"})
	})
	d.Close()

	if assert.Len(t, sink.events, 1) {
		assert.Equal(t, "booking_created", sink.events[0].Action)
	}
}
