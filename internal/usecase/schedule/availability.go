package schedule

import (
	"context"
	"time"

	"github.com/BruksfildServices01/shop-booking/internal/clock"
	domain "github.com/BruksfildServices01/shop-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/shop-booking/internal/models"
	"github.com/BruksfildServices01/shop-booking/internal/timezone"
)

const MaxSlotMinutes = 240

type Availability struct {
	Date     string            `json:"date"`
	Timezone string            `json:"timezone"`
	Slots    []domain.TimeSlot `json:"slots"`
}

type GetAvailability struct {
	repo        domain.Repository
	clock       clock.Clock
	defaultSlot int
}

func NewGetAvailability(
	repo domain.Repository,
	clk clock.Clock,
	defaultSlot int,
) *GetAvailability {
	return &GetAvailability{
		repo:        repo,
		clock:       clk,
		defaultSlot: defaultSlot,
	}
}

// Execute lists the provider's free slots on a date, read in the shop
// timezone. Slots already in the past are omitted.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*Availability, error) {

	minutes := in.SlotMinutes
	if minutes == 0 {
		minutes = uc.defaultSlot
	}
	if minutes <= 0 || minutes > MaxSlotMinutes {
		return nil, domain.ErrInvalidSlot
	}

	shop, err := requireProvider(ctx, uc.repo, in.ShopID, in.ProviderID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)
	day, err := time.ParseInLocation(timezone.DateLayout, in.Date, loc)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	out := &Availability{
		Date:     in.Date,
		Timezone: loc.String(),
		Slots:    []domain.TimeSlot{},
	}

	week, err := uc.repo.ListWorkingHours(ctx, in.ShopID, in.ProviderID)
	if err != nil {
		return nil, err
	}

	var wh *models.WorkingHours
	for i := range week {
		if week[i].Weekday == int(day.Weekday()) {
			wh = &week[i]
			break
		}
	}
	if wh == nil || !wh.Active {
		return out, nil
	}

	booked, err := uc.repo.ListBookedTimes(ctx, in.ShopID, in.ProviderID, in.Date)
	if err != nil {
		return nil, err
	}

	out.Slots = domain.FreeSlots(
		wh,
		day,
		time.Duration(minutes)*time.Minute,
		booked,
		uc.clock.Now().In(loc),
	)
	return out, nil
}
