package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/shop-booking/internal/domain/booking"
)

func TestAuthorize(t *testing.T) {
	allow := map[booking.Role][]booking.Action{
		booking.RoleCustomer:   {booking.ActionView, booking.ActionCancel, booking.ActionReschedule, booking.ActionRate},
		booking.RoleProvider:   {booking.ActionView},
		booking.RoleManager:    {booking.ActionView, booking.ActionConfirm, booking.ActionCancel, booking.ActionViewAudit},
		booking.RoleAdmin:      {booking.ActionView, booking.ActionConfirm, booking.ActionCancel, booking.ActionViewAudit, booking.ActionManageStaff},
		booking.RoleOwner:      {booking.ActionView, booking.ActionConfirm, booking.ActionCancel, booking.ActionViewAudit, booking.ActionManageStaff},
		booking.RoleSuperAdmin: {booking.ActionView, booking.ActionConfirm, booking.ActionCancel, booking.ActionViewAudit, booking.ActionManageStaff},
		booking.RoleNone:       {},
	}
	all := []booking.Action{
		booking.ActionView, booking.ActionConfirm, booking.ActionCancel, booking.ActionReschedule,
		booking.ActionRate, booking.ActionViewAudit, booking.ActionManageStaff,
	}

	for role, allowed := range allow {
		for _, action := range all {
			want := contains(allowed, action)
			err := booking.Authorize(role, action)
			if want {
				assert.NoError(t, err, "%s should %s", role, action)
			} else {
				assert.ErrorIs(t, err, booking.ErrNotAuthorized, "%s should not %s", role, action)
			}
		}
	}
}

func TestAvailableActions(t *testing.T) {
	t.Run("customer on completed booking can rate only", func(t *testing.T) {
		got := booking.AvailableActions(booking.RoleCustomer, booking.StatusCompleted)
		assert.ElementsMatch(t, []booking.Action{booking.ActionView, booking.ActionRate}, got)
	})

	t.Run("customer on cancelled booking is not offered rating", func(t *testing.T) {
		got := booking.AvailableActions(booking.RoleCustomer, booking.StatusCancelled)
		assert.NotContains(t, got, booking.ActionRate)
		assert.ElementsMatch(t, []booking.Action{booking.ActionView}, got)
	})

	t.Run("customer on confirmed booking", func(t *testing.T) {
		got := booking.AvailableActions(booking.RoleCustomer, booking.StatusConfirmed)
		assert.ElementsMatch(t, []booking.Action{booking.ActionView, booking.ActionCancel, booking.ActionReschedule}, got)
	})

	t.Run("manager on pending booking", func(t *testing.T) {
		got := booking.AvailableActions(booking.RoleManager, booking.StatusPending)
		assert.ElementsMatch(t, []booking.Action{booking.ActionView, booking.ActionConfirm, booking.ActionCancel}, got)
	})

	t.Run("manager on confirmed booking cannot confirm again", func(t *testing.T) {
		got := booking.AvailableActions(booking.RoleManager, booking.StatusConfirmed)
		assert.NotContains(t, got, booking.ActionConfirm)
	})

	t.Run("provider is read-only", func(t *testing.T) {
		got := booking.AvailableActions(booking.RoleProvider, booking.StatusPending)
		assert.Equal(t, []booking.Action{booking.ActionView}, got)
	})

	t.Run("no relationship yields nothing", func(t *testing.T) {
		assert.Empty(t, booking.AvailableActions(booking.RoleNone, booking.StatusPending))
	})
}

func TestParseStaffRole(t *testing.T) {
	cases := map[string]booking.Role{
		"owner":    booking.RoleOwner,
		"Admin":    booking.RoleAdmin,
		"manager":  booking.RoleManager,
		"provider": booking.RoleProvider,
		"barber":   booking.RoleProvider,
	}
	for in, want := range cases {
		got, err := booking.ParseStaffRole(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := booking.ParseStaffRole("customer")
	assert.Error(t, err)

	assert.True(t, booking.RoleOwner.IsShopManager())
	assert.False(t, booking.RoleProvider.IsShopManager())
	assert.False(t, booking.RoleCustomer.IsShopManager())
}

func contains(actions []booking.Action, a booking.Action) bool {
	for _, x := range actions {
		if x == a {
			return true
		}
	}
	return false
}
