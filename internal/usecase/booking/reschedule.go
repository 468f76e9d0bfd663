package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/shop-booking/internal/models"
	"github.com/BruksfildServices01/shop-booking/internal/notify"
	"github.com/BruksfildServices01/shop-booking/internal/timezone"
)

type RescheduleBooking struct {
	repo domain.Repository
	fx   *Effects
	slot time.Duration
}

func NewRescheduleBooking(
	repo domain.Repository,
	fx *Effects,
	slot time.Duration,
) *RescheduleBooking {
	return &RescheduleBooking{
		repo: repo,
		fx:   fx,
		slot: slotLength(slot),
	}
}

// Execute moves a booking to a new slot. A confirmed booking stays
// confirmed.
func (uc *RescheduleBooking) Execute(
	ctx context.Context,
	actor Actor,
	shopID uuid.UUID,
	bookingID uuid.UUID,
	date string,
	clock string,
) (*models.Booking, error) {

	release, err := uc.fx.acquire(ctx, bookingID, actor.UserID)
	if err != nil {
		return nil, err
	}
	defer release()

	shop, err := uc.repo.GetShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBooking(ctx, shopID, bookingID)
	if err != nil {
		return nil, err
	}

	role, err := resolveRole(ctx, uc.repo, actor, b)
	if err != nil {
		return nil, err
	}

	guard := domain.GuardOf(b)
	fromDate, fromTime := b.AppointmentDate, b.AppointmentTime

	if err := domain.Reschedule(b, role, date, clock); err != nil {
		return nil, err
	}

	start, err := timezone.SlotStart(date, clock, shop.Timezone)
	if err != nil || !start.After(uc.fx.Clock.Now()) {
		return nil, domain.ErrInvalidSlot
	}

	if err := checkProviderHours(ctx, uc.repo, b.ShopID, b.ProviderID, start, uc.slot); err != nil {
		return nil, err
	}

	if err := uc.repo.AssertSlotFree(ctx, b.ShopID, b.ProviderID, date, clock, uc.slot, b.ID); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b, guard); err != nil {
		return nil, err
	}

	actorID := actor.UserID
	uc.fx.publish(ctx, change{
		booking: b,
		actorID: &actorID,
		action:  "booking_rescheduled",
		kind:    notify.KindBookingRescheduled,
		title:   "Booking rescheduled",
		body:    fmt.Sprintf("The booking was moved to %s.", slotText(b)),
		metadata: map[string]any{
			"role":      role.String(),
			"from_date": fromDate,
			"from_time": fromTime,
			"to_date":   date,
			"to_time":   clock,
		},
	}, counterparty(ctx, uc.repo, b, role, actor.UserID))

	return b, nil
}
