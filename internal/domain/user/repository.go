package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/shop-booking/internal/httperr"
	"github.com/BruksfildServices01/shop-booking/internal/models"
)

var (
	ErrNotFound           = httperr.ErrBusiness("user_not_found")
	ErrEmailTaken         = httperr.ErrBusiness("email_already_exists")
	ErrInvalidCredentials = httperr.ErrBusiness("invalid_credentials")
)

type Repository interface {
	Create(ctx context.Context, u *models.User) error

	// FindByEmail returns ErrNotFound when no account uses email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
