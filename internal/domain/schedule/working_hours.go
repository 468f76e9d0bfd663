package schedule

import (
	"time"

	"github.com/BruksfildServices01/shop-booking/internal/httperr"
	"github.com/BruksfildServices01/shop-booking/internal/models"
	"github.com/BruksfildServices01/shop-booking/internal/timezone"
)

var (
	ErrInvalidHours = httperr.ErrBusiness("invalid_working_hours")
	ErrInvalidDate  = httperr.ErrBusiness("invalid_date")
	ErrInvalidSlot  = httperr.ErrBusiness("invalid_slot")
)

// Validate checks one weekday entry. Inactive days carry no times.
func Validate(wh models.WorkingHours) error {
	if wh.Weekday < 0 || wh.Weekday > 6 {
		return ErrInvalidHours
	}
	if !wh.Active {
		return nil
	}

	start, okS := clockOf(wh.StartTime)
	end, okE := clockOf(wh.EndTime)
	if !okS || !okE || !start.Before(end) {
		return ErrInvalidHours
	}

	if wh.LunchStart == "" && wh.LunchEnd == "" {
		return nil
	}

	ls, okLS := clockOf(wh.LunchStart)
	le, okLE := clockOf(wh.LunchEnd)
	if !okLS || !okLE || !ls.Before(le) || ls.Before(start) || le.After(end) {
		return ErrInvalidHours
	}
	return nil
}

// ValidateWeek rejects invalid entries and repeated weekdays.
func ValidateWeek(days []models.WorkingHours) error {
	seen := make(map[int]bool, len(days))
	for _, d := range days {
		if err := Validate(d); err != nil {
			return err
		}
		if seen[d.Weekday] {
			return ErrInvalidHours
		}
		seen[d.Weekday] = true
	}
	return nil
}

// IsWithin reports whether [start, end) fits the working window of wh
// outside the lunch break. start and end must share a calendar day.
func IsWithin(wh *models.WorkingHours, start, end time.Time) bool {
	if wh == nil || !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
		return false
	}

	workStart := on(start, wh.StartTime)
	workEnd := on(start, wh.EndTime)

	if start.Before(workStart) || end.After(workEnd) {
		return false
	}

	if wh.LunchStart != "" && wh.LunchEnd != "" {
		lunchStart := on(start, wh.LunchStart)
		lunchEnd := on(start, wh.LunchEnd)

		if start.Before(lunchEnd) && end.After(lunchStart) {
			return false
		}
	}

	return true
}

func clockOf(hm string) (time.Time, bool) {
	t, err := time.Parse(timezone.TimeLayout, hm)
	return t, err == nil
}

// on places hm on day's calendar date in day's location.
func on(day time.Time, hm string) time.Time {
	t, _ := time.Parse(timezone.TimeLayout, hm)
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	)
}
