package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/shop-booking/internal/models"
)

type Repository interface {
	GetShop(
		ctx context.Context,
		shopID uuid.UUID,
	) (*models.Shop, error)

	GetStaffRole(
		ctx context.Context,
		shopID uuid.UUID,
		userID uuid.UUID,
	) (string, error)

	ListWorkingHours(
		ctx context.Context,
		shopID uuid.UUID,
		providerID uuid.UUID,
	) ([]models.WorkingHours, error)

	// ReplaceWorkingHours swaps the provider's whole week atomically.
	ReplaceWorkingHours(
		ctx context.Context,
		shopID uuid.UUID,
		providerID uuid.UUID,
		days []models.WorkingHours,
	) error

	// ListBookedTimes returns start times of the provider's active
	// bookings on date.
	ListBookedTimes(
		ctx context.Context,
		shopID uuid.UUID,
		providerID uuid.UUID,
		date string,
	) ([]string, error)
}
