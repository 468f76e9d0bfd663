package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/shop-booking/internal/httperr"
	"github.com/BruksfildServices01/shop-booking/internal/models"
	"github.com/BruksfildServices01/shop-booking/internal/notify"
	"github.com/BruksfildServices01/shop-booking/internal/timezone"
)

type SweepResult struct {
	Completed int `json:"completed"`
	NoShow    int `json:"no_show"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// SweepOverdue settles bookings whose slot has passed: a confirmed booking
// becomes completed, a still-pending one becomes no_show.
type SweepOverdue struct {
	repo  domain.Repository
	fx    *Effects
	grace time.Duration
}

func NewSweepOverdue(
	repo domain.Repository,
	fx *Effects,
	grace time.Duration,
) *SweepOverdue {
	return &SweepOverdue{
		repo:  repo,
		fx:    fx,
		grace: grace,
	}
}

func (uc *SweepOverdue) Execute(ctx context.Context) (SweepResult, error) {
	var res SweepResult

	current := uc.fx.Clock.Now()

	// a day ahead of UTC covers every shop timezone
	horizon := current.UTC().AddDate(0, 0, 1).Format(timezone.DateLayout)

	candidates, err := uc.repo.ListOverdueCandidates(ctx, horizon)
	if err != nil {
		return res, err
	}

	for i := range candidates {
		b := &candidates[i]

		if !uc.overdue(b, current) {
			res.Skipped++
			continue
		}

		settled, err := uc.settle(ctx, b, current)
		switch {
		case err == nil && settled == domain.StatusCompleted:
			res.Completed++
		case err == nil:
			res.NoShow++
		case httperr.IsBusiness(err, domain.CodeTransitionRejected):
			// changed by a user since it was listed
			res.Skipped++
		default:
			res.Failed++
			slog.ErrorContext(ctx, "sweep failed for booking",
				"booking_id", b.ID,
				"error", err,
			)
		}
	}

	if res.Completed+res.NoShow+res.Failed > 0 {
		slog.InfoContext(ctx, "overdue bookings swept",
			"completed", res.Completed,
			"no_show", res.NoShow,
			"failed", res.Failed,
		)
	}

	return res, nil
}

func (uc *SweepOverdue) overdue(b *models.Booking, current time.Time) bool {
	tz := ""
	if b.Shop != nil {
		tz = b.Shop.Timezone
	}

	start, err := timezone.SlotStart(b.AppointmentDate, b.AppointmentTime, tz)
	if err != nil {
		return false
	}
	return start.Add(uc.grace).Before(current)
}

func (uc *SweepOverdue) settle(
	ctx context.Context,
	b *models.Booking,
	current time.Time,
) (domain.Status, error) {

	guard := domain.GuardOf(b)

	ch := change{booking: b}

	switch guard.Status {
	case domain.StatusConfirmed:
		if err := domain.Complete(b, current); err != nil {
			return "", err
		}
		ch.action = "booking_completed"
		ch.kind = notify.KindBookingCompleted
		ch.title = "Booking completed"
		ch.body = fmt.Sprintf("Your booking on %s is complete. You can now rate it.", slotText(b))

	case domain.StatusPending:
		if err := domain.MarkNoShow(b); err != nil {
			return "", err
		}
		ch.action = "booking_no_show"
		ch.kind = notify.KindBookingNoShow
		ch.title = "Booking missed"
		ch.body = fmt.Sprintf("Your booking on %s was never confirmed and has lapsed.", slotText(b))

	default:
		return "", domain.ErrTransitionRejected
	}

	if err := uc.repo.UpdateBooking(ctx, b, guard); err != nil {
		return "", err
	}

	ch.metadata = map[string]any{"from": string(guard.Status)}
	uc.fx.publish(ctx, ch, []uuid.UUID{b.CustomerID})
	return domain.Status(b.Status), nil
}
