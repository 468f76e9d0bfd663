package booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/shop-booking/internal/models"
	"github.com/BruksfildServices01/shop-booking/internal/notify"
)

type RateBooking struct {
	repo domain.Repository
	fx   *Effects
}

func NewRateBooking(
	repo domain.Repository,
	fx *Effects,
) *RateBooking {
	return &RateBooking{
		repo: repo,
		fx:   fx,
	}
}

// Execute records the customer's single rating of a completed booking.
func (uc *RateBooking) Execute(
	ctx context.Context,
	actor Actor,
	shopID uuid.UUID,
	bookingID uuid.UUID,
	score int,
	comment string,
) (*models.Rating, error) {

	comment = strings.TrimSpace(comment)
	if err := domain.ValidateRating(score, comment); err != nil {
		return nil, err
	}

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

	if err := domain.CanRate(b, role); err != nil {
		return nil, err
	}

	rated, err := uc.repo.HasRating(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if rated {
		return nil, domain.ErrAlreadyRated
	}

	r := &models.Rating{
		BookingID:  b.ID,
		ShopID:     b.ShopID,
		CustomerID: b.CustomerID,
		ProviderID: b.ProviderID,
		Score:      score,
		Comment:    comment,
	}
	if err := uc.repo.CreateRating(ctx, r); err != nil {
		return nil, err
	}

	actorID := actor.UserID
	uc.fx.publish(ctx, change{
		booking: b,
		actorID: &actorID,
		action:  "booking_rated",
		kind:    notify.KindBookingRated,
		title:   "New rating",
		body:    fmt.Sprintf("The booking on %s was rated %d/5.", slotText(b), score),
		metadata: map[string]any{
			"score": score,
		},
	}, shopRecipients(ctx, uc.repo, b, actor.UserID))

	return r, nil
}
