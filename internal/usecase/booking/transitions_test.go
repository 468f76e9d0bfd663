package booking_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domain "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/shop-booking/internal/models"
	"github.com/BruksfildServices01/shop-booking/internal/notify"
	usecase "github.com/BruksfildServices01/shop-booking/internal/usecase/booking"
)

func TestConfirmBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("manager confirms pending booking", func(t *testing.T) {
		h := newHarness(t)
		b := newBooking(domain.StatusPending)
		manager := staff()

		h.expectBooking(b)
		h.expectStaffRole(b.ShopID, manager.UserID, "manager")
		h.repo.EXPECT().
			UpdateBooking(gomock.Any(), b, domain.Guard{Status: domain.StatusPending, Version: 1}).
			DoAndReturn(func(_ context.Context, got *models.Booking, _ domain.Guard) error {
				assert.Equal(t, string(domain.StatusConfirmed), got.Status)
				return nil
			})

		out, err := usecase.NewConfirmBooking(h.repo, h.fx).Execute(ctx, manager, b.ShopID, b.ID)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), out.Status)

		msgs := h.messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, b.CustomerID, msgs[0].RecipientID)
		assert.Equal(t, notify.KindBookingConfirmed, msgs[0].Kind)

		events := h.events()
		require.Len(t, events, 1)
		assert.Equal(t, "booking_confirmed", events[0].Action)
		assert.Equal(t, manager.UserID, *events[0].UserID)
	})

	t.Run("completed booking cannot be confirmed", func(t *testing.T) {
		h := newHarness(t)
		b := newBooking(domain.StatusCompleted)
		manager := staff()

		h.expectBooking(b)
		h.expectStaffRole(b.ShopID, manager.UserID, "owner")

		_, err := usecase.NewConfirmBooking(h.repo, h.fx).Execute(ctx, manager, b.ShopID, b.ID)
		assert.ErrorIs(t, err, domain.ErrTransitionRejected)
		assert.Equal(t, string(domain.StatusCompleted), b.Status)
		assert.Empty(t, h.messages())
	})

	t.Run("stale version is rejected without side effects", func(t *testing.T) {
		h := newHarness(t)
		b := newBooking(domain.StatusPending)
		manager := staff()

		h.expectBooking(b)
		h.expectStaffRole(b.ShopID, manager.UserID, "admin")
		h.repo.EXPECT().
			UpdateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.ErrTransitionRejected)

		_, err := usecase.NewConfirmBooking(h.repo, h.fx).Execute(ctx, manager, b.ShopID, b.ID)
		assert.ErrorIs(t, err, domain.ErrTransitionRejected)
		assert.Empty(t, h.messages())
		assert.Empty(t, h.events())
	})

	t.Run("customer cannot confirm", func(t *testing.T) {
		h := newHarness(t)
		b := newBooking(domain.StatusPending)

		h.expectBooking(b)
		h.expectStaffRole(b.ShopID, b.CustomerID, "")

		_, err := usecase.NewConfirmBooking(h.repo, h.fx).Execute(ctx, customer(b), b.ShopID, b.ID)
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	})

	t.Run("super admin needs no staff seat", func(t *testing.T) {
		h := newHarness(t)
		b := newBooking(domain.StatusPending)
		admin := usecase.Actor{UserID: uuid.New(), PlatformRole: models.PlatformRoleSuperAdmin}

		h.expectBooking(b)
		h.repo.EXPECT().UpdateBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		out, err := usecase.NewConfirmBooking(h.repo, h.fx).Execute(ctx, admin, b.ShopID, b.ID)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), out.Status)
	})

	t.Run("duplicate submission is refused while in flight", func(t *testing.T) {
		h := newHarness(t)
		b := newBooking(domain.StatusPending)
		manager := staff()

		key := fmt.Sprintf("bookings:inflight:%s:%s", b.ID, manager.UserID)
		require.NoError(t, h.redis.Set(key, "1"))

		_, err := usecase.NewConfirmBooking(h.repo, h.fx).Execute(ctx, manager, b.ShopID, b.ID)
		assert.ErrorIs(t, err, domain.ErrActionInProgress)
	})

	t.Run("guard is released afterwards", func(t *testing.T) {
		h := newHarness(t)
		b := newBooking(domain.StatusPending)
		manager := staff()

		h.expectBooking(b)
		h.expectStaffRole(b.ShopID, manager.UserID, "manager")
		h.repo.EXPECT().UpdateBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := usecase.NewConfirmBooking(h.repo, h.fx).Execute(ctx, manager, b.ShopID, b.ID)
		require.NoError(t, err)

		key := fmt.Sprintf("bookings:inflight:%s:%s", b.ID, manager.UserID)
		assert.False(t, h.redis.Exists(key))
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("staff without reason changes nothing", func(t *testing.T) {
		h := newHarness(t)
		b := newBooking(domain.StatusPending)
		manager := staff()

		h.expectBooking(b)
		h.expectStaffRole(b.ShopID, manager.UserID, "manager")

		_, err := usecase.NewCancelBooking(h.repo, h.fx).Execute(ctx, manager, b.ShopID, b.ID, "   ")
		assert.ErrorIs(t, err, domain.ErrReasonRequired)
		assert.Equal(t, string(domain.StatusPending), b.Status)
		assert.Equal(t, "short on the sides", b.CustomerNotes)
		assert.Empty(t, h.messages())
	})

	t.Run("staff reason replaces the note and reaches the customer", func(t *testing.T) {
		h := newHarness(t)
		b := newBooking(domain.StatusConfirmed)
		owner := staff()

		h.expectBooking(b)
		h.expectStaffRole(b.ShopID, owner.UserID, "owner")
		h.repo.EXPECT().UpdateBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		out, err := usecase.NewCancelBooking(h.repo, h.fx).Execute(ctx, owner, b.ShopID, b.ID, " Barber is sick ")
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), out.Status)
		assert.Equal(t, "Barber is sick", out.CustomerNotes)
		assert.Equal(t, owner.UserID, *out.CancelledBy)

		msgs := h.messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, b.CustomerID, msgs[0].RecipientID)
		assert.Contains(t, msgs[0].Body, "Barber is sick")
	})

	t.Run("customer without reason gets the default note", func(t *testing.T) {
		h := newHarness(t)
		b := newBooking(domain.StatusConfirmed)
		provider := uuid.New()
		b.ProviderID = &provider
		manager := uuid.New()

		h.expectBooking(b)
		h.expectStaffRole(b.ShopID, b.CustomerID, "")
		h.repo.EXPECT().UpdateBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		h.repo.EXPECT().ListShopManagerIDs(gomock.Any(), b.ShopID).Return([]uuid.UUID{manager}, nil)

		out, err := usecase.NewCancelBooking(h.repo, h.fx).Execute(ctx, customer(b), b.ShopID, b.ID, "")
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), out.Status)
		assert.Equal(t, domain.DefaultCustomerCancelReason, out.CustomerNotes)
		assert.Equal(t, fixedNow, *out.CancelledAt)

		var recipients []uuid.UUID
		for _, m := range h.messages() {
			recipients = append(recipients, m.RecipientID)
		}
		assert.ElementsMatch(t, []uuid.UUID{manager, provider}, recipients)
	})

	t.Run("provider stays read-only on own booking", func(t *testing.T) {
		h := newHarness(t)
		b := newBooking(domain.StatusPending)

		h.expectBooking(b)
		h.expectStaffRole(b.ShopID, b.CustomerID, "barber")

		_, err := usecase.NewCancelBooking(h.repo, h.fx).Execute(ctx, customer(b), b.ShopID, b.ID, "")
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	})

	t.Run("terminal booking cannot be cancelled", func(t *testing.T) {
		h := newHarness(t)
		b := newBooking(domain.StatusNoShow)

		h.expectBooking(b)
		h.expectStaffRole(b.ShopID, b.CustomerID, "")

		_, err := usecase.NewCancelBooking(h.repo, h.fx).Execute(ctx, customer(b), b.ShopID, b.ID, "")
		assert.ErrorIs(t, err, domain.ErrTransitionRejected)
	})

	t.Run("unknown booking", func(t *testing.T) {
		h := newHarness(t)
		shopID, bookingID := uuid.New(), uuid.New()

		h.repo.EXPECT().GetBooking(gomock.Any(), shopID, bookingID).Return(nil, domain.ErrNotFound)

		_, err := usecase.NewCancelBooking(h.repo, h.fx).Execute(ctx, staff(), shopID, bookingID, "x")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRescheduleBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed booking keeps its status", func(t *testing.T) {
		h := newHarness(t)
		b := newBooking(domain.StatusConfirmed)

		h.expectShop(b.ShopID)
		h.expectBooking(b)
		h.expectStaffRole(b.ShopID, b.CustomerID, "")
		h.repo.EXPECT().
			AssertSlotFree(gomock.Any(), b.ShopID, b.ProviderID, "2026-05-12", "09:00", slotLen, b.ID).
			Return(nil)
		h.repo.EXPECT().UpdateBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		h.repo.EXPECT().ListShopManagerIDs(gomock.Any(), b.ShopID).Return(nil, nil).AnyTimes()

		out, err := usecase.NewRescheduleBooking(h.repo, h.fx, slotLen).
			Execute(ctx, customer(b), b.ShopID, b.ID, "2026-05-12", "09:00")
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), out.Status)
		assert.Equal(t, "2026-05-12", out.AppointmentDate)
		assert.Equal(t, "09:00", out.AppointmentTime)

		events := h.events()
		require.Len(t, events, 1)
		assert.Equal(t, "booking_rescheduled", events[0].Action)
	})

	t.Run("taken slot is a conflict", func(t *testing.T) {
		h := newHarness(t)
		b := newBooking(domain.StatusPending)

		h.expectShop(b.ShopID)
		h.expectBooking(b)
		h.expectStaffRole(b.ShopID, b.CustomerID, "")
		h.repo.EXPECT().
			AssertSlotFree(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.ErrTimeConflict)

		_, err := usecase.NewRescheduleBooking(h.repo, h.fx, slotLen).
			Execute(ctx, customer(b), b.ShopID, b.ID, "2026-05-12", "09:00")
		assert.ErrorIs(t, err, domain.ErrTimeConflict)
		assert.Empty(t, h.messages())
	})

	t.Run("new slot must fit provider hours", func(t *testing.T) {
		h := newHarness(t)
		b := newBooking(domain.StatusPending)
		provider := uuid.New()
		b.ProviderID = &provider

		h.expectShop(b.ShopID)
		h.expectBooking(b)
		h.expectStaffRole(b.ShopID, b.CustomerID, "")
		h.expectHours(b.ShopID, provider, time.Tuesday, "10:00", "18:00")

		_, err := usecase.NewRescheduleBooking(h.repo, h.fx, slotLen).
			Execute(ctx, customer(b), b.ShopID, b.ID, "2026-05-12", "09:00")
		assert.ErrorIs(t, err, domain.ErrOutsideHours)
		assert.Empty(t, h.messages())
	})

	t.Run("slot in the past", func(t *testing.T) {
		h := newHarness(t)
		b := newBooking(domain.StatusPending)

		h.expectShop(b.ShopID)
		h.expectBooking(b)
		h.expectStaffRole(b.ShopID, b.CustomerID, "")

		_, err := usecase.NewRescheduleBooking(h.repo, h.fx, slotLen).
			Execute(ctx, customer(b), b.ShopID, b.ID, "2026-05-01", "09:00")
		assert.ErrorIs(t, err, domain.ErrInvalidSlot)
	})

	t.Run("cancelled booking cannot move", func(t *testing.T) {
		h := newHarness(t)
		b := newBooking(domain.StatusCancelled)

		h.expectShop(b.ShopID)
		h.expectBooking(b)
		h.expectStaffRole(b.ShopID, b.CustomerID, "")

		_, err := usecase.NewRescheduleBooking(h.repo, h.fx, slotLen).
			Execute(ctx, customer(b), b.ShopID, b.ID, "2026-05-12", "09:00")
		assert.ErrorIs(t, err, domain.ErrTransitionRejected)
	})
}

func TestRateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("customer rates completed booking", func(t *testing.T) {
		h := newHarness(t)
		b := newBooking(domain.StatusCompleted)

		h.expectBooking(b)
		h.expectStaffRole(b.ShopID, b.CustomerID, "")
		h.repo.EXPECT().HasRating(gomock.Any(), b.ID).Return(false, nil)
		h.repo.EXPECT().CreateRating(gomock.Any(), gomock.Any()).Return(nil)
		h.repo.EXPECT().ListShopManagerIDs(gomock.Any(), b.ShopID).Return(nil, nil)

		r, err := usecase.NewRateBooking(h.repo, h.fx).Execute(ctx, customer(b), b.ShopID, b.ID, 5, " great cut ")
		require.NoError(t, err)
		assert.Equal(t, 5, r.Score)
		assert.Equal(t, "great cut", r.Comment)
		assert.Equal(t, b.ID, r.BookingID)
	})

	t.Run("second rating is rejected", func(t *testing.T) {
		h := newHarness(t)
		b := newBooking(domain.StatusCompleted)

		h.expectBooking(b)
		h.expectStaffRole(b.ShopID, b.CustomerID, "")
		h.repo.EXPECT().HasRating(gomock.Any(), b.ID).Return(true, nil)

		_, err := usecase.NewRateBooking(h.repo, h.fx).Execute(ctx, customer(b), b.ShopID, b.ID, 4, "")
		assert.ErrorIs(t, err, domain.ErrAlreadyRated)
	})

	t.Run("cancelled booking is not rateable", func(t *testing.T) {
		h := newHarness(t)
		b := newBooking(domain.StatusCancelled)

		h.expectBooking(b)
		h.expectStaffRole(b.ShopID, b.CustomerID, "")

		_, err := usecase.NewRateBooking(h.repo, h.fx).Execute(ctx, customer(b), b.ShopID, b.ID, 4, "")
		assert.ErrorIs(t, err, domain.ErrTransitionRejected)
	})

	t.Run("manager cannot rate", func(t *testing.T) {
		h := newHarness(t)
		b := newBooking(domain.StatusCompleted)
		manager := staff()

		h.expectBooking(b)
		h.expectStaffRole(b.ShopID, manager.UserID, "manager")

		_, err := usecase.NewRateBooking(h.repo, h.fx).Execute(ctx, manager, b.ShopID, b.ID, 4, "")
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	})

	t.Run("score out of range touches nothing", func(t *testing.T) {
		h := newHarness(t)
		b := newBooking(domain.StatusCompleted)

		_, err := usecase.NewRateBooking(h.repo, h.fx).Execute(ctx, customer(b), b.ShopID, b.ID, 6, "")
		assert.ErrorIs(t, err, domain.ErrInvalidRating)
	})
}
