package repository

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/shop-booking/internal/domain/shop"
	"github.com/BruksfildServices01/shop-booking/internal/httperr"
	"github.com/BruksfildServices01/shop-booking/internal/models"
)

type ShopGormRepository struct {
	db *gorm.DB
}

func NewShopGormRepository(db *gorm.DB) *ShopGormRepository {
	return &ShopGormRepository{db: db}
}

func (r *ShopGormRepository) CreateShopWithOwner(
	ctx context.Context,
	shop *models.Shop,
	ownerID uuid.UUID,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(shop).Error; err != nil {
			return err
		}
		return tx.Create(&models.ShopStaff{
			ShopID: shop.ID,
			UserID: ownerID,
			Role:   "owner",
		}).Error
	})
	if err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness("slug_already_exists")
		}
		return errors.Wrap(err, "create shop")
	}
	return nil
}

func (r *ShopGormRepository) GetStaffRole(
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

func (r *ShopGormRepository) FindUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("user_not_found")
		}
		return nil, errors.Wrap(err, "find user")
	}
	return &user, nil
}

func (r *ShopGormRepository) AddStaff(
	ctx context.Context,
	staff *models.ShopStaff,
) error {
	if err := r.db.WithContext(ctx).Omit("User").Create(staff).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness("already_staff")
		}
		return errors.Wrap(err, "add staff")
	}
	return nil
}

func (r *ShopGormRepository) ListStaff(
	ctx context.Context,
	shopID uuid.UUID,
) ([]models.ShopStaff, error) {

	var out []models.ShopStaff
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("shop_id = ?", shopID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list staff")
	}
	return out, nil
}

func (r *ShopGormRepository) ListMemberships(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.Membership, error) {

	var out []domain.Membership
	if err := r.db.WithContext(ctx).
		Table("shop_staff").
		Select("shops.id AS shop_id, shops.name AS shop_name, shops.slug AS shop_slug, shop_staff.role AS role").
		Joins("JOIN shops ON shops.id = shop_staff.shop_id").
		Where("shop_staff.user_id = ?", userID).
		Order("shops.name ASC").
		Scan(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list memberships")
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*ShopGormRepository)(nil)
