package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/now"

	domain "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/shop-booking/internal/models"
	"github.com/BruksfildServices01/shop-booking/internal/timezone"
)

type ListShopBookings struct {
	repo domain.Repository
}

func NewListShopBookings(repo domain.Repository) *ListShopBookings {
	return &ListShopBookings{repo: repo}
}

// Execute lists one calendar month of a shop's bookings for its staff.
func (uc *ListShopBookings) Execute(
	ctx context.Context,
	actor Actor,
	shopID uuid.UUID,
	year int,
	month int,
) ([]models.Booking, error) {

	if month < 1 || month > 12 || year < 1 {
		return nil, domain.ErrInvalidMonth
	}

	if _, err := uc.repo.GetShop(ctx, shopID); err != nil {
		return nil, err
	}

	role := domain.RoleSuperAdmin
	if !actor.IsSuperAdmin() {
		var err error
		role, err = staffRole(ctx, uc.repo, shopID, actor.UserID)
		if err != nil {
			return nil, err
		}
	}
	if role == domain.RoleNone {
		return nil, domain.ErrNotAuthorized
	}

	from, to := MonthBounds(year, time.Month(month))
	return uc.repo.ListShopBookings(ctx, shopID, from, to)
}

// MonthBounds returns the first and last calendar day of the month.
func MonthBounds(year int, month time.Month) (string, string) {
	anchor := now.With(time.Date(year, month, 1, 12, 0, 0, 0, time.UTC))

	return anchor.BeginningOfMonth().Format(timezone.DateLayout),
		anchor.EndOfMonth().Format(timezone.DateLayout)
}
