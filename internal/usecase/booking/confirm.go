package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/shop-booking/internal/models"
	"github.com/BruksfildServices01/shop-booking/internal/notify"
)

type ConfirmBooking struct {
	repo domain.Repository
	fx   *Effects
}

func NewConfirmBooking(
	repo domain.Repository,
	fx *Effects,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo: repo,
		fx:   fx,
	}
}

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	actor Actor,
	shopID uuid.UUID,
	bookingID uuid.UUID,
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
	if err := domain.Confirm(b, role); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b, guard); err != nil {
		return nil, err
	}

	actorID := actor.UserID
	uc.fx.publish(ctx, change{
		booking: b,
		actorID: &actorID,
		action:  "booking_confirmed",
		kind:    notify.KindBookingConfirmed,
		title:   "Booking confirmed",
		body:    fmt.Sprintf("Your booking on %s was confirmed.", slotText(b)),
		metadata: map[string]any{
			"role": role.String(),
		},
	}, counterparty(ctx, uc.repo, b, role, actor.UserID))

	return b, nil
}
