package booking

import (
	"strings"

	"github.com/BruksfildServices01/shop-booking/internal/httperr"
)

// Role is the acting user's relationship to a booking, resolved per request.
type Role string

const (
	RoleNone       Role = ""
	RoleCustomer   Role = "customer"
	RoleProvider   Role = "provider"
	RoleManager    Role = "manager"
	RoleAdmin      Role = "admin"
	RoleOwner      Role = "owner"
	RoleSuperAdmin Role = "super_admin"
)

// ParseStaffRole maps a stored shop-staff role. "barber" is accepted as
// a legacy alias of provider.
func ParseStaffRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "owner":
		return RoleOwner, nil
	case "admin":
		return RoleAdmin, nil
	case "manager":
		return RoleManager, nil
	case "provider", "barber":
		return RoleProvider, nil
	default:
		return RoleNone, httperr.ErrBusiness("invalid_role")
	}
}

// IsShopManager reports whether r may act on behalf of the shop.
func (r Role) IsShopManager() bool {
	switch r {
	case RoleManager, RoleAdmin, RoleOwner, RoleSuperAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	if r == RoleNone {
		return "none"
	}
	return string(r)
}
