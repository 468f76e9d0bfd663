package booking

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/shop-booking/internal/models"
)

// Actor is the authenticated caller. It is always passed explicitly.
type Actor struct {
	UserID       uuid.UUID
	PlatformRole string
}

func (a Actor) IsSuperAdmin() bool {
	return a.PlatformRole == models.PlatformRoleSuperAdmin
}

// resolveRole derives the caller's role for one booking. Staff seats win
// over customership, so a provider who booked at their own shop stays
// read-only.
func resolveRole(
	ctx context.Context,
	repo domain.Repository,
	actor Actor,
	b *models.Booking,
) (domain.Role, error) {

	if actor.IsSuperAdmin() {
		return domain.RoleSuperAdmin, nil
	}

	staff, err := staffRole(ctx, repo, b.ShopID, actor.UserID)
	if err != nil {
		return domain.RoleNone, err
	}
	if staff != domain.RoleNone {
		return staff, nil
	}

	if b.CustomerID == actor.UserID {
		return domain.RoleCustomer, nil
	}
	return domain.RoleNone, nil
}

func staffRole(
	ctx context.Context,
	repo domain.Repository,
	shopID uuid.UUID,
	userID uuid.UUID,
) (domain.Role, error) {

	raw, err := repo.GetStaffRole(ctx, shopID, userID)
	if err != nil {
		return domain.RoleNone, err
	}
	if raw == "" {
		return domain.RoleNone, nil
	}

	role, err := domain.ParseStaffRole(raw)
	if err != nil {
		slog.WarnContext(ctx, "unknown staff role ignored",
			"shop_id", shopID,
			"user_id", userID,
			"role", raw,
		)
		return domain.RoleNone, nil
	}
	return role, nil
}
