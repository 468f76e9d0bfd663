package schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/shop-booking/internal/models"
	"github.com/BruksfildServices01/shop-booking/internal/timezone"
)

type AvailabilityInput struct {
	ShopID      uuid.UUID
	ProviderID  uuid.UUID
	Date        string
	SlotMinutes int
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FreeSlots walks day in slot steps through the working window of wh.
// A slot is dropped when it overlaps lunch, starts before notBefore or
// overlaps a booked start (each booking holds one slot length).
func FreeSlots(
	wh *models.WorkingHours,
	day time.Time,
	slot time.Duration,
	booked []string,
	notBefore time.Time,
) []TimeSlot {

	out := []TimeSlot{}
	if wh == nil || !wh.Active || slot <= 0 {
		return out
	}

	dayStart := on(day, wh.StartTime)
	dayEnd := on(day, wh.EndTime)

	for cur := dayStart; !cur.Add(slot).After(dayEnd); cur = cur.Add(slot) {
		slotEnd := cur.Add(slot)

		if cur.Before(notBefore) || !IsWithin(wh, cur, slotEnd) {
			continue
		}

		start := cur.Format(timezone.TimeLayout)
		conflict := false
		for _, hm := range booked {
			if Overlaps(start, hm, slot) {
				conflict = true
				break
			}
		}

		if !conflict {
			out = append(out, TimeSlot{
				Start: start,
				End:   slotEnd.Format(timezone.TimeLayout),
			})
		}
	}

	return out
}

// Overlaps reports whether two slots of length slot starting at a and b
// ("15:04") intersect.
func Overlaps(a, b string, slot time.Duration) bool {
	ta, okA := clockOf(a)
	tb, okB := clockOf(b)
	if !okA || !okB {
		return a == b
	}

	d := ta.Sub(tb)
	if d < 0 {
		d = -d
	}
	return d < slot
}
