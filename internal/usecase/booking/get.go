package booking

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/shop-booking/internal/models"
)

// BookingView is a booking as seen by one caller.
type BookingView struct {
	Booking *models.Booking `json:"booking"`
	Role    string          `json:"role"`
	Actions []domain.Action `json:"actions"`
}

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(
	ctx context.Context,
	actor Actor,
	shopID uuid.UUID,
	bookingID uuid.UUID,
) (*BookingView, error) {

	b, err := uc.repo.GetBooking(ctx, shopID, bookingID)
	if err != nil {
		return nil, err
	}

	role, err := resolveRole(ctx, uc.repo, actor, b)
	if err != nil {
		return nil, err
	}

	if err := domain.Authorize(role, domain.ActionView); err != nil {
		return nil, err
	}

	return &BookingView{
		Booking: b,
		Role:    role.String(),
		Actions: domain.AvailableActions(role, domain.Status(b.Status)),
	}, nil
}
