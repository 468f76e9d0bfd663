package shop

import "github.com/BruksfildServices01/shop-booking/internal/httperr"

var (
	ErrInvalidShop     = httperr.ErrBusiness("invalid_shop")
	ErrInvalidTimezone = httperr.ErrBusiness("invalid_timezone")
	ErrInvalidRole     = httperr.ErrBusiness("invalid_role")
)
