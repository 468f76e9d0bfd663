package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/shop-booking/internal/models"
)

//go:generate mockgen -source=repository.go -destination=../../mocks/booking_repository_mock.go -package=mocks

type Repository interface {
	// -------- Shop / staff --------
	GetShop(
		ctx context.Context,
		shopID uuid.UUID,
	) (*models.Shop, error)

	// GetStaffRole returns "" when the user is not staff of the shop.
	GetStaffRole(
		ctx context.Context,
		shopID uuid.UUID,
		userID uuid.UUID,
	) (string, error)

	ListShopManagerIDs(
		ctx context.Context,
		shopID uuid.UUID,
	) ([]uuid.UUID, error)

	// GetWorkingHours returns nil when the provider has no entry for
	// weekday in the shop.
	GetWorkingHours(
		ctx context.Context,
		shopID uuid.UUID,
		providerID uuid.UUID,
		weekday int,
	) (*models.WorkingHours, error)

	// -------- Booking (read) --------
	GetBooking(
		ctx context.Context,
		shopID uuid.UUID,
		bookingID uuid.UUID,
	) (*models.Booking, error)

	ListCustomerBookings(
		ctx context.Context,
		customerID uuid.UUID,
		scope Scope,
		today string,
	) ([]models.Booking, error)

	ListShopBookings(
		ctx context.Context,
		shopID uuid.UUID,
		fromDate string,
		toDate string,
	) ([]models.Booking, error)

	// ListOverdueCandidates returns active bookings dated on or before
	// the given day, with Shop preloaded.
	ListOverdueCandidates(
		ctx context.Context,
		onOrBefore string,
	) ([]models.Booking, error)

	// -------- Booking (write) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// AssertSlotFree fails with ErrTimeConflict when an active booking of
	// the provider on date overlaps [clock, clock+slot).
	AssertSlotFree(
		ctx context.Context,
		shopID uuid.UUID,
		providerID *uuid.UUID,
		date string,
		clock string,
		slot time.Duration,
		exclude uuid.UUID,
	) error

	// UpdateBooking persists b only if the stored row still matches guard;
	// otherwise it returns ErrTransitionRejected.
	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
		guard Guard,
	) error

	// -------- Rating --------
	HasRating(
		ctx context.Context,
		bookingID uuid.UUID,
	) (bool, error)

	CreateRating(
		ctx context.Context,
		r *models.Rating,
	) error
}
