package shop

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/shop-booking/internal/audit"
	booking "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	domain "github.com/BruksfildServices01/shop-booking/internal/domain/shop"
	"github.com/BruksfildServices01/shop-booking/internal/models"
	bookinguc "github.com/BruksfildServices01/shop-booking/internal/usecase/booking"
)

// callerRole is the caller's seat in shopID, RoleNone for outsiders.
func callerRole(
	ctx context.Context,
	repo domain.Repository,
	actor bookinguc.Actor,
	shopID uuid.UUID,
) (booking.Role, error) {

	if actor.IsSuperAdmin() {
		return booking.RoleSuperAdmin, nil
	}

	raw, err := repo.GetStaffRole(ctx, shopID, actor.UserID)
	if err != nil || raw == "" {
		return booking.RoleNone, err
	}

	role, err := booking.ParseStaffRole(raw)
	if err != nil {
		return booking.RoleNone, nil
	}
	return role, nil
}

type AddStaff struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddStaff(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AddStaff {
	return &AddStaff{
		repo:  repo,
		audit: audit,
	}
}

// Execute seats an existing user, found by email, in the shop. Ownership
// is only granted by creating the shop.
func (uc *AddStaff) Execute(
	ctx context.Context,
	actor bookinguc.Actor,
	shopID uuid.UUID,
	email string,
	rawRole string,
) (*models.ShopStaff, error) {

	caller, err := callerRole(ctx, uc.repo, actor, shopID)
	if err != nil {
		return nil, err
	}
	if err := booking.Authorize(caller, booking.ActionManageStaff); err != nil {
		return nil, err
	}

	role, err := booking.ParseStaffRole(rawRole)
	if err != nil || role == booking.RoleOwner {
		return nil, ErrInvalidRole
	}

	user, err := uc.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	staff := &models.ShopStaff{
		ShopID: shopID,
		UserID: user.ID,
		Role:   string(role),
	}
	if err := uc.repo.AddStaff(ctx, staff); err != nil {
		return nil, err
	}
	staff.User = *user

	actorID := actor.UserID
	uc.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &actorID,
		Action:   "staff_added",
		Entity:   "shop_staff",
		EntityID: &staff.ID,
		Metadata: map[string]any{
			"user_id": user.ID,
			"role":    staff.Role,
		},
	})

	return staff, nil
}

type ListStaff struct {
	repo domain.Repository
}

func NewListStaff(repo domain.Repository) *ListStaff {
	return &ListStaff{repo: repo}
}

// Execute lists the shop's staff for any of its members.
func (uc *ListStaff) Execute(
	ctx context.Context,
	actor bookinguc.Actor,
	shopID uuid.UUID,
) ([]models.ShopStaff, error) {

	caller, err := callerRole(ctx, uc.repo, actor, shopID)
	if err != nil {
		return nil, err
	}
	if caller == booking.RoleNone {
		return nil, booking.ErrNotAuthorized
	}

	return uc.repo.ListStaff(ctx, shopID)
}

type ListMemberships struct {
	repo domain.Repository
}

func NewListMemberships(repo domain.Repository) *ListMemberships {
	return &ListMemberships{repo: repo}
}

func (uc *ListMemberships) Execute(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.Membership, error) {
	out, err := uc.repo.ListMemberships(ctx, userID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Membership{}
	}
	return out, nil
}
