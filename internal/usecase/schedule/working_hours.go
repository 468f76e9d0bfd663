package schedule

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	booking "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	domain "github.com/BruksfildServices01/shop-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/shop-booking/internal/models"
	bookinguc "github.com/BruksfildServices01/shop-booking/internal/usecase/booking"
)

// seatOf is the user's staff role in shopID, RoleNone for outsiders.
func seatOf(
	ctx context.Context,
	repo domain.Repository,
	shopID uuid.UUID,
	userID uuid.UUID,
) (booking.Role, error) {

	raw, err := repo.GetStaffRole(ctx, shopID, userID)
	if err != nil || raw == "" {
		return booking.RoleNone, err
	}
	role, err := booking.ParseStaffRole(raw)
	if err != nil {
		return booking.RoleNone, nil
	}
	return role, nil
}

// requireProvider loads the shop and fails with ErrInvalidProvider unless
// providerID holds a seat in it.
func requireProvider(
	ctx context.Context,
	repo domain.Repository,
	shopID uuid.UUID,
	providerID uuid.UUID,
) (*models.Shop, error) {

	shop, err := repo.GetShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	seat, err := seatOf(ctx, repo, shopID, providerID)
	if err != nil {
		return nil, err
	}
	if seat == booking.RoleNone {
		return nil, booking.ErrInvalidProvider
	}
	return shop, nil
}

type GetWorkingHours struct {
	repo domain.Repository
}

func NewGetWorkingHours(repo domain.Repository) *GetWorkingHours {
	return &GetWorkingHours{repo: repo}
}

func (uc *GetWorkingHours) Execute(
	ctx context.Context,
	shopID uuid.UUID,
	providerID uuid.UUID,
) ([]models.WorkingHours, error) {

	if _, err := requireProvider(ctx, uc.repo, shopID, providerID); err != nil {
		return nil, err
	}

	days, err := uc.repo.ListWorkingHours(ctx, shopID, providerID)
	if err != nil {
		return nil, err
	}
	if days == nil {
		days = []models.WorkingHours{}
	}
	return days, nil
}

type UpdateWorkingHours struct {
	repo domain.Repository
}

func NewUpdateWorkingHours(repo domain.Repository) *UpdateWorkingHours {
	return &UpdateWorkingHours{repo: repo}
}

// Execute replaces the provider's week. Providers edit their own hours;
// shop managers edit anyone's.
func (uc *UpdateWorkingHours) Execute(
	ctx context.Context,
	actor bookinguc.Actor,
	shopID uuid.UUID,
	providerID uuid.UUID,
	days []models.WorkingHours,
) ([]models.WorkingHours, error) {

	if _, err := requireProvider(ctx, uc.repo, shopID, providerID); err != nil {
		return nil, err
	}

	if !actor.IsSuperAdmin() {
		caller, err := seatOf(ctx, uc.repo, shopID, actor.UserID)
		if err != nil {
			return nil, err
		}
		self := caller != booking.RoleNone && actor.UserID == providerID
		if !self && !caller.IsShopManager() {
			return nil, booking.ErrNotAuthorized
		}
	}

	if err := domain.ValidateWeek(days); err != nil {
		return nil, err
	}

	if err := uc.repo.ReplaceWorkingHours(ctx, shopID, providerID, days); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "working hours updated",
		"shop_id", shopID,
		"provider_id", providerID,
		"actor_id", actor.UserID,
		"days", len(days),
	)

	return uc.repo.ListWorkingHours(ctx, shopID, providerID)
}
