package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/shop-booking/internal/models"
	"github.com/BruksfildServices01/shop-booking/internal/timezone"
)

const DefaultCustomerCancelReason = "Cancelled by customer"

// Guard is the state a conditional update expects to still find.
type Guard struct {
	Status  Status
	Version int
}

func GuardOf(b *models.Booking) Guard {
	return Guard{Status: Status(b.Status), Version: b.Version}
}

// ===============================
// Domain Actions
// ===============================

func Confirm(b *models.Booking, role Role) error {
	if err := Authorize(role, ActionConfirm); err != nil {
		return err
	}
	if !CanTransition(Status(b.Status), StatusConfirmed) {
		return ErrTransitionRejected
	}

	b.Status = string(StatusConfirmed)
	return nil
}

// ValidateCancelReason returns the reason to persist for a cancellation by
// role. Shop staff must explain themselves; customers fall back to a fixed
// text so a cancelled booking never carries an empty note.
func ValidateCancelReason(role Role, reason string) (string, error) {
	reason = strings.TrimSpace(reason)

	if role.IsShopManager() {
		if reason == "" {
			return "", ErrReasonRequired
		}
		return reason, nil
	}

	if reason == "" {
		return DefaultCustomerCancelReason, nil
	}
	return reason, nil
}

func Cancel(
	b *models.Booking,
	role Role,
	actorID uuid.UUID,
	reason string,
	now time.Time,
) error {
	if err := Authorize(role, ActionCancel); err != nil {
		return err
	}

	note, err := ValidateCancelReason(role, reason)
	if err != nil {
		return err
	}

	if !CanTransition(Status(b.Status), StatusCancelled) {
		return ErrTransitionRejected
	}

	b.Status = string(StatusCancelled)
	b.CustomerNotes = note
	b.CancelledAt = &now
	b.CancelledBy = &actorID
	return nil
}

// Complete and MarkNoShow are driven by the clock, never by a user.

func Complete(b *models.Booking, now time.Time) error {
	if !CanTransition(Status(b.Status), StatusCompleted) {
		return ErrTransitionRejected
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}

func MarkNoShow(b *models.Booking) error {
	if !CanTransition(Status(b.Status), StatusNoShow) {
		return ErrTransitionRejected
	}

	b.Status = string(StatusNoShow)
	return nil
}

// Reschedule moves the slot. Status and total are left untouched.
func Reschedule(b *models.Booking, role Role, date, clock string) error {
	if err := Authorize(role, ActionReschedule); err != nil {
		return err
	}
	if Status(b.Status).IsTerminal() {
		return ErrTransitionRejected
	}
	if err := ValidateSlot(date, clock); err != nil {
		return err
	}

	b.AppointmentDate = date
	b.AppointmentTime = clock
	return nil
}

func CanRate(b *models.Booking, role Role) error {
	if err := Authorize(role, ActionRate); err != nil {
		return err
	}
	if Status(b.Status) != StatusCompleted {
		return ErrTransitionRejected
	}
	return nil
}

func ValidateRating(score int, comment string) error {
	if score < 1 || score > 5 {
		return ErrInvalidRating
	}
	if len(comment) > 500 {
		return ErrInvalidRating
	}
	return nil
}

// ValidateSlot accepts only zero-padded "2006-01-02" / "15:04" values.
// Stored slots are compared and sorted as strings.
func ValidateSlot(date, clock string) error {
	d, err := time.Parse(timezone.DateLayout, date)
	if err != nil || d.Format(timezone.DateLayout) != date {
		return ErrInvalidSlot
	}
	t, err := time.Parse(timezone.TimeLayout, clock)
	if err != nil || t.Format(timezone.TimeLayout) != clock {
		return ErrInvalidSlot
	}
	return nil
}
