package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/shop-booking/internal/cache"
	"github.com/BruksfildServices01/shop-booking/internal/clock"
	domain "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/shop-booking/internal/models"
	"github.com/BruksfildServices01/shop-booking/internal/timezone"
)

type ListUserBookings struct {
	repo  domain.Repository
	cache *cache.BookingCache
	clock clock.Clock
	tz    string
}

// NewListUserBookings splits upcoming from past using the calendar day in tz.
func NewListUserBookings(
	repo domain.Repository,
	cache *cache.BookingCache,
	clock clock.Clock,
	tz string,
) *ListUserBookings {
	return &ListUserBookings{
		repo:  repo,
		cache: cache,
		clock: clock,
		tz:    tz,
	}
}

// Execute lists the caller's own bookings across every shop. It never
// mutates anything besides the cache.
func (uc *ListUserBookings) Execute(
	ctx context.Context,
	userID uuid.UUID,
	rawScope string,
) ([]models.Booking, error) {

	scope, err := domain.ParseScope(rawScope)
	if err != nil {
		return nil, err
	}

	if list, ok := uc.cache.Get(ctx, userID, scope); ok {
		return list, nil
	}

	today := timezone.Today(uc.clock.Now(), uc.tz)

	list, err := uc.repo.ListCustomerBookings(ctx, userID, scope, today)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Booking{}
	}

	uc.cache.Set(ctx, userID, scope, list)
	return list, nil
}
