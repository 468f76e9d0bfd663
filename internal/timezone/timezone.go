package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location falls back to DefaultTimezone for empty or unknown names.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Today is the calendar date of t as seen in tz, in DateLayout.
func Today(t time.Time, tz string) string {
	return t.In(Location(tz)).Format(DateLayout)
}

// SlotStart resolves a stored date/time pair to an instant in tz.
func SlotStart(date, clock, tz string) (time.Time, error) {
	return time.ParseInLocation(
		DateLayout+" "+TimeLayout,
		date+" "+clock,
		Location(tz),
	)
}
