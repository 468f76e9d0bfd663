package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/shop-booking/internal/models"
	"github.com/BruksfildServices01/shop-booking/internal/notify"
)

type CancelBooking struct {
	repo domain.Repository
	fx   *Effects
}

func NewCancelBooking(
	repo domain.Repository,
	fx *Effects,
) *CancelBooking {
	return &CancelBooking{
		repo: repo,
		fx:   fx,
	}
}

// Execute cancels a booking. Staff must give a reason; a customer without
// one gets the default note. The reason replaces customer_notes.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	actor Actor,
	shopID uuid.UUID,
	bookingID uuid.UUID,
	reason string,
) (*models.Booking, error) {

	release, err := uc.fx.acquire(ctx, bookingID, actor.UserID)
	if err != nil {
		return nil, err
	}
	defer release()

	b, err := uc.repo.GetBooking(ctx, shopID, bookingID)
	if err != nil {
		return nil, err
	}

	role, err := resolveRole(ctx, uc.repo, actor, b)
	if err != nil {
		return nil, err
	}

	guard := domain.GuardOf(b)
	if err := domain.Cancel(b, role, actor.UserID, reason, uc.fx.Clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b, guard); err != nil {
		return nil, err
	}

	body := fmt.Sprintf("The booking on %s was cancelled: %s", slotText(b), b.CustomerNotes)

	actorID := actor.UserID
	uc.fx.publish(ctx, change{
		booking: b,
		actorID: &actorID,
		action:  "booking_cancelled",
		kind:    notify.KindBookingCancelled,
		title:   "Booking cancelled",
		body:    body,
		metadata: map[string]any{
			"role":   role.String(),
			"reason": b.CustomerNotes,
			"from":   string(guard.Status),
		},
	}, counterparty(ctx, uc.repo, b, role, actor.UserID))

	return b, nil
}
