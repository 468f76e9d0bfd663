package repository

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/shop-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/shop-booking/internal/httperr"
	"github.com/BruksfildServices01/shop-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Shop / staff
// --------------------------------------------------

func (r *BookingGormRepository) GetShop(
	ctx context.Context,
	shopID uuid.UUID,
) (*models.Shop, error) {

	var shop models.Shop
	if err := r.db.WithContext(ctx).First(&shop, "id = ?", shopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShopNotFound
		}
		return nil, errors.Wrap(err, "load shop")
	}
	return &shop, nil
}

func (r *BookingGormRepository) GetStaffRole(
	ctx context.Context,
	shopID uuid.UUID,
	userID uuid.UUID,
) (string, error) {

	var staff models.ShopStaff
	err := r.db.WithContext(ctx).
		Select("role").
		Where("shop_id = ? AND user_id = ?", shopID, userID).
		Take(&staff).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "load staff role")
	}
	return staff.Role, nil
}

func (r *BookingGormRepository) ListShopManagerIDs(
	ctx context.Context,
	shopID uuid.UUID,
) ([]uuid.UUID, error) {

	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&models.ShopStaff{}).
		Where("shop_id = ? AND role IN ?", shopID, []string{"owner", "admin", "manager"}).
		Pluck("user_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "list shop managers")
	}
	return ids, nil
}

func (r *BookingGormRepository) GetWorkingHours(
	ctx context.Context,
	shopID uuid.UUID,
	providerID uuid.UUID,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND provider_id = ? AND weekday = ?", shopID, providerID, weekday).
		Take(&wh).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load working hours")
	}
	return &wh, nil
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	shopID uuid.UUID,
	bookingID uuid.UUID,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", bookingID, shopID).
		First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, errors.Wrap(err, "load booking")
	}
	return &b, nil
}

func (r *BookingGormRepository) ListCustomerBookings(
	ctx context.Context,
	customerID uuid.UUID,
	scope domain.Scope,
	today string,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Shop").
		Where("customer_id = ?", customerID)

	active := domain.ActiveStatuses()

	switch scope {
	case domain.ScopeUpcoming:
		q = q.
			Where("status IN ? AND appointment_date >= ?", active, today).
			Order("appointment_date ASC").
			Order("appointment_time ASC")
	case domain.ScopePast:
		q = q.
			Where("status NOT IN ? OR appointment_date < ?", active, today).
			Order("appointment_date DESC").
			Order("appointment_time DESC")
	default:
		q = q.
			Order("appointment_date DESC").
			Order("appointment_time DESC")
	}

	var out []models.Booking
	if err := q.Find(&out).Error; err != nil {
		return nil, errors.Wrapf(err, "list %s bookings", scope)
	}
	return out, nil
}

func (r *BookingGormRepository) ListShopBookings(
	ctx context.Context,
	shopID uuid.UUID,
	fromDate string,
	toDate string,
) ([]models.Booking, error) {

	var out []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"shop_id = ? AND appointment_date >= ? AND appointment_date <= ?",
			shopID, fromDate, toDate,
		).
		Order("appointment_date ASC").
		Order("appointment_time ASC").
		Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list shop bookings")
	}
	return out, nil
}

func (r *BookingGormRepository) ListOverdueCandidates(
	ctx context.Context,
	onOrBefore string,
) ([]models.Booking, error) {

	var out []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Shop").
		Where(
			"status IN ? AND appointment_date <= ?",
			domain.ActiveStatuses(), onOrBefore,
		).
		Order("appointment_date ASC").
		Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list overdue bookings")
	}
	return out, nil
}

// --------------------------------------------------
// Booking (write)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error; err != nil {
		if httperr.IsUniqueViolation(err) || httperr.IsExclusionConflict(err) {
			return domain.ErrTimeConflict
		}
		return errors.Wrap(err, "create booking")
	}
	return nil
}

func (r *BookingGormRepository) AssertSlotFree(
	ctx context.Context,
	shopID uuid.UUID,
	providerID *uuid.UUID,
	date string,
	clock string,
	slot time.Duration,
	exclude uuid.UUID,
) error {

	// "any provider" bookings do not reserve a specific chair
	if providerID == nil {
		return nil
	}

	var taken []string
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"shop_id = ? AND provider_id = ? AND appointment_date = ? AND status IN ? AND id <> ?",
			shopID, *providerID, date, domain.ActiveStatuses(), exclude,
		).
		Pluck("appointment_time", &taken).Error; err != nil {
		return errors.Wrap(err, "check slot")
	}

	for _, other := range taken {
		if schedule.Overlaps(clock, other, slot) {
			return domain.ErrTimeConflict
		}
	}
	return nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
	guard domain.Guard,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"id = ? AND status = ? AND version = ?",
			b.ID, string(guard.Status), guard.Version,
		).
		Updates(map[string]any{
			"status":           b.Status,
			"customer_notes":   b.CustomerNotes,
			"appointment_date": b.AppointmentDate,
			"appointment_time": b.AppointmentTime,
			"cancelled_at":     b.CancelledAt,
			"cancelled_by":     b.CancelledBy,
			"completed_at":     b.CompletedAt,
			"version":          gorm.Expr("version + 1"),
			"updated_at":       time.Now(),
		})

	if res.Error != nil {
		if httperr.IsUniqueViolation(res.Error) || httperr.IsExclusionConflict(res.Error) {
			return domain.ErrTimeConflict
		}
		return errors.Wrap(res.Error, "update booking")
	}

	// someone else moved the booking first
	if res.RowsAffected == 0 {
		return domain.ErrTransitionRejected
	}

	b.Version = guard.Version + 1
	return nil
}

// --------------------------------------------------
// Rating
// --------------------------------------------------

func (r *BookingGormRepository) HasRating(
	ctx context.Context,
	bookingID uuid.UUID,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("booking_id = ?", bookingID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "check rating")
	}
	return count > 0, nil
}

func (r *BookingGormRepository) CreateRating(
	ctx context.Context,
	rating *models.Rating,
) error {
	if err := r.db.WithContext(ctx).Create(rating).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return domain.ErrAlreadyRated
		}
		return errors.Wrap(err, "create rating")
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
