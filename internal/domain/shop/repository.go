package shop

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/shop-booking/internal/models"
)

//go:generate mockgen -source=repository.go -destination=../../mocks/shop_repository_mock.go -package=mocks -mock_names=Repository=MockShopRepository

type Repository interface {
	// CreateShopWithOwner stores shop and makes ownerID its owner atomically.
	CreateShopWithOwner(
		ctx context.Context,
		s *models.Shop,
		ownerID uuid.UUID,
	) error

	GetStaffRole(
		ctx context.Context,
		shopID uuid.UUID,
		userID uuid.UUID,
	) (string, error)

	FindUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	AddStaff(
		ctx context.Context,
		staff *models.ShopStaff,
	) error

	ListStaff(
		ctx context.Context,
		shopID uuid.UUID,
	) ([]models.ShopStaff, error)

	ListMemberships(
		ctx context.Context,
		userID uuid.UUID,
	) ([]Membership, error)
}

// Membership is a user's staff seat in one shop.
type Membership struct {
	ShopID   uuid.UUID `json:"shop_id"`
	ShopName string    `json:"shop_name"`
	ShopSlug string    `json:"shop_slug"`
	Role     string    `json:"role"`
}
