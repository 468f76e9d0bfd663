package booking

type Scope string

const (
	ScopeUpcoming Scope = "upcoming"
	ScopePast     Scope = "past"
	ScopeAll      Scope = "all"
)

func Scopes() []Scope {
	return []Scope{ScopeUpcoming, ScopePast, ScopeAll}
}

// ParseScope defaults an empty scope to upcoming.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case "":
		return ScopeUpcoming, nil
	case ScopeUpcoming, ScopePast, ScopeAll:
		return Scope(s), nil
	}
	return "", ErrInvalidScope
}
