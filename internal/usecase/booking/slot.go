package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/shop-booking/internal/domain/schedule"
)

const DefaultSlotLength = 30 * time.Minute

func slotLength(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultSlotLength
	}
	return d
}

// checkProviderHours rejects a slot that does not fit the provider's
// working day. Bookings without a provider are not checked.
func checkProviderHours(
	ctx context.Context,
	repo domain.Repository,
	shopID uuid.UUID,
	providerID *uuid.UUID,
	start time.Time,
	slot time.Duration,
) error {

	if providerID == nil {
		return nil
	}

	wh, err := repo.GetWorkingHours(ctx, shopID, *providerID, int(start.Weekday()))
	if err != nil {
		return err
	}
	if !schedule.IsWithin(wh, start, start.Add(slot)) {
		return domain.ErrOutsideHours
	}
	return nil
}
