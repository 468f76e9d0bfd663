package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/shop-booking/internal/models"
	"github.com/BruksfildServices01/shop-booking/internal/notify"
	"github.com/BruksfildServices01/shop-booking/internal/timezone"
)

type CreateBookingInput struct {
	Actor      Actor
	ShopID     uuid.UUID
	ProviderID *uuid.UUID
	Date       string
	Time       string
	Services   []domain.ServiceLine
	Notes      string
}

type CreateBooking struct {
	repo domain.Repository
	fx   *Effects
	slot time.Duration
}

func NewCreateBooking(
	repo domain.Repository,
	fx *Effects,
	slot time.Duration,
) *CreateBooking {
	return &CreateBooking{
		repo: repo,
		fx:   fx,
		slot: slotLength(slot),
	}
}

// Execute books a slot for the calling customer. New bookings start
// pending and wait for the shop to confirm.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	shop, err := uc.repo.GetShop(ctx, in.ShopID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateSlot(in.Date, in.Time); err != nil {
		return nil, err
	}

	start, err := timezone.SlotStart(in.Date, in.Time, shop.Timezone)
	if err != nil || !start.After(uc.fx.Clock.Now()) {
		return nil, domain.ErrInvalidSlot
	}

	services, err := domain.EncodeServices(in.Services)
	if err != nil {
		return nil, err
	}

	if in.ProviderID != nil {
		role, err := staffRole(ctx, uc.repo, shop.ID, *in.ProviderID)
		if err != nil {
			return nil, err
		}
		if role == domain.RoleNone {
			return nil, domain.ErrInvalidProvider
		}
	}

	if err := checkProviderHours(ctx, uc.repo, shop.ID, in.ProviderID, start, uc.slot); err != nil {
		return nil, err
	}

	if err := uc.repo.AssertSlotFree(ctx, shop.ID, in.ProviderID, in.Date, in.Time, uc.slot, uuid.Nil); err != nil {
		return nil, err
	}

	b := &models.Booking{
		ShopID:          shop.ID,
		CustomerID:      in.Actor.UserID,
		ProviderID:      in.ProviderID,
		AppointmentDate: in.Date,
		AppointmentTime: in.Time,
		Services:        services,
		TotalAmount:     domain.TotalOf(in.Services),
		Status:          string(domain.InitialStatus()),
		CustomerNotes:   strings.TrimSpace(in.Notes),
		Version:         1,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	actorID := in.Actor.UserID
	uc.fx.publish(ctx, change{
		booking: b,
		actorID: &actorID,
		action:  "booking_created",
		kind:    notify.KindBookingCreated,
		title:   "New booking request",
		body:    fmt.Sprintf("A booking was requested for %s.", slotText(b)),
		metadata: map[string]any{
			"total_amount": b.TotalAmount,
		},
	}, shopRecipients(ctx, uc.repo, b, actorID))

	return b, nil
}
