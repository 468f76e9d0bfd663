package booking

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/shop-booking/internal/audit"
	"github.com/BruksfildServices01/shop-booking/internal/cache"
	"github.com/BruksfildServices01/shop-booking/internal/clock"
	domain "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/shop-booking/internal/models"
	"github.com/BruksfildServices01/shop-booking/internal/notify"
)

// Effects groups the collaborators every transition reports to. None of
// them can fail a transition that already landed.
type Effects struct {
	Notifier *notify.Dispatcher
	Audit    *audit.Dispatcher
	Cache    *cache.BookingCache
	Guard    *cache.ActionGuard
	Clock    clock.Clock
}

func (fx *Effects) acquire(
	ctx context.Context,
	bookingID uuid.UUID,
	actorID uuid.UUID,
) (func(), error) {
	release, ok := fx.Guard.Acquire(ctx, bookingID, actorID)
	if !ok {
		return nil, domain.ErrActionInProgress
	}
	return release, nil
}

type change struct {
	booking  *models.Booking
	actorID  *uuid.UUID
	action   string
	kind     string
	title    string
	body     string
	metadata any
}

// publish fans a landed change out to its recipients, the audit trail and
// the customer's cached lists.
func (fx *Effects) publish(ctx context.Context, ch change, recipients []uuid.UUID) {
	b := ch.booking
	bookingID := b.ID

	for _, to := range recipients {
		fx.Notifier.Dispatch(notify.Message{
			RecipientID: to,
			ShopID:      b.ShopID,
			BookingID:   &bookingID,
			Kind:        ch.kind,
			Title:       ch.title,
			Body:        ch.body,
		})
	}

	fx.Audit.Dispatch(audit.Event{
		ShopID:   b.ShopID,
		UserID:   ch.actorID,
		Action:   ch.action,
		Entity:   "booking",
		EntityID: &bookingID,
		Metadata: ch.metadata,
	})

	fx.Cache.InvalidateUser(ctx, b.CustomerID)

	slog.InfoContext(ctx, ch.action,
		"booking_id", b.ID,
		"shop_id", b.ShopID,
		"status", b.Status,
	)
}

// shopRecipients are the managers plus the assigned provider, without
// the acting user.
func shopRecipients(
	ctx context.Context,
	repo domain.Repository,
	b *models.Booking,
	exclude uuid.UUID,
) []uuid.UUID {
	ids, err := repo.ListShopManagerIDs(ctx, b.ShopID)
	if err != nil {
		slog.WarnContext(ctx, "cannot resolve shop recipients", "shop_id", b.ShopID, "error", err)
		ids = nil
	}
	if b.ProviderID != nil {
		ids = append(ids, *b.ProviderID)
	}

	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == exclude || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// counterparty picks who hears about a change made by role.
func counterparty(
	ctx context.Context,
	repo domain.Repository,
	b *models.Booking,
	role domain.Role,
	actorID uuid.UUID,
) []uuid.UUID {
	if role == domain.RoleCustomer {
		return shopRecipients(ctx, repo, b, actorID)
	}
	if b.CustomerID == actorID {
		return nil
	}
	return []uuid.UUID{b.CustomerID}
}

func slotText(b *models.Booking) string {
	return fmt.Sprintf("%s at %s", b.AppointmentDate, b.AppointmentTime)
}
