package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

var transitions = map[Status]map[Status]bool{
	StatusPending: {
		StatusConfirmed: true,
		StatusCancelled: true,
		StatusNoShow:    true,
	},
	StatusConfirmed: {
		StatusCompleted: true,
		StatusCancelled: true,
		StatusNoShow:    true,
	},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusNoShow:    {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports whether no further transition leaves s.
func (s Status) IsTerminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// IsActive reports whether the booking still holds its slot.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransition rejects unknown states, no-ops and backward moves.
func CanTransition(from, to Status) bool {
	return transitions[from][to]
}

func InitialStatus() Status {
	return StatusPending
}

// ActiveStatuses lists the statuses that occupy a slot.
func ActiveStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed)}
}
