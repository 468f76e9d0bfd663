package repository

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/shop-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/shop-booking/internal/models"
)

// ScheduleGormRepository reuses the booking repository for shop and staff
// lookups.
type ScheduleGormRepository struct {
	*BookingGormRepository
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{
		BookingGormRepository: NewBookingGormRepository(db),
		db:                    db,
	}
}

func (r *ScheduleGormRepository) ListWorkingHours(
	ctx context.Context,
	shopID uuid.UUID,
	providerID uuid.UUID,
) ([]models.WorkingHours, error) {

	var out []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND provider_id = ?", shopID, providerID).
		Order("weekday ASC").
		Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list working hours")
	}
	return out, nil
}

func (r *ScheduleGormRepository) ReplaceWorkingHours(
	ctx context.Context,
	shopID uuid.UUID,
	providerID uuid.UUID,
	days []models.WorkingHours,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("shop_id = ? AND provider_id = ?", shopID, providerID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return errors.Wrap(err, "clear working hours")
		}

		if len(days) == 0 {
			return nil
		}

		for i := range days {
			days[i].ShopID = shopID
			days[i].ProviderID = providerID
		}

		if err := tx.Create(&days).Error; err != nil {
			return errors.Wrap(err, "save working hours")
		}
		return nil
	})
}

func (r *ScheduleGormRepository) ListBookedTimes(
	ctx context.Context,
	shopID uuid.UUID,
	providerID uuid.UUID,
	date string,
) ([]string, error) {

	var out []string
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"shop_id = ? AND provider_id = ? AND appointment_date = ? AND status IN ?",
			shopID, providerID, date, domain.ActiveStatuses(),
		).
		Order("appointment_time ASC").
		Pluck("appointment_time", &out).Error; err != nil {
		return nil, errors.Wrap(err, "list booked times")
	}
	return out, nil
}

var _ schedule.Repository = (*ScheduleGormRepository)(nil)
