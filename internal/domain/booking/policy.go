package booking

type Action string

const (
	ActionView        Action = "view"
	ActionConfirm     Action = "confirm"
	ActionCancel      Action = "cancel"
	ActionReschedule  Action = "reschedule"
	ActionRate        Action = "rate"
	ActionViewAudit   Action = "view_audit"
	ActionManageStaff Action = "manage_staff"
)

var (
	staffActions = []Action{ActionView, ActionConfirm, ActionCancel, ActionViewAudit}
	adminActions = append(append([]Action{}, staffActions...), ActionManageStaff)
)

var policy = map[Role][]Action{
	RoleCustomer:   {ActionView, ActionCancel, ActionReschedule, ActionRate},
	RoleProvider:   {ActionView},
	RoleManager:    staffActions,
	RoleAdmin:      adminActions,
	RoleOwner:      adminActions,
	RoleSuperAdmin: adminActions,
}

// Allowed is the single role → action authorization table.
func Allowed(role Role, action Action) bool {
	for _, a := range policy[role] {
		if a == action {
			return true
		}
	}
	return false
}

func Authorize(role Role, action Action) error {
	if !Allowed(role, action) {
		return ErrNotAuthorized
	}
	return nil
}

// AvailableActions lists what role may do on a booking in status right now.
func AvailableActions(role Role, status Status) []Action {
	out := []Action{}
	for _, a := range policy[role] {
		if actionFits(a, status) {
			out = append(out, a)
		}
	}
	return out
}

func actionFits(a Action, status Status) bool {
	switch a {
	case ActionConfirm:
		return status == StatusPending
	case ActionCancel:
		return status.IsActive()
	case ActionReschedule:
		return !status.IsTerminal()
	case ActionRate:
		return status == StatusCompleted
	case ActionViewAudit, ActionManageStaff:
		return false
	}
	return true
}
