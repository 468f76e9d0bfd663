package booking_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/BruksfildServices01/shop-booking/internal/audit"
	"github.com/BruksfildServices01/shop-booking/internal/cache"
	"github.com/BruksfildServices01/shop-booking/internal/clock"
	domain "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/shop-booking/internal/mocks"
	"github.com/BruksfildServices01/shop-booking/internal/models"
	"github.com/BruksfildServices01/shop-booking/internal/notify"
	usecase "github.com/BruksfildServices01/shop-booking/internal/usecase/booking"
)

var fixedNow = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

const slotLen = 30 * time.Minute

type sentBox struct {
	mu   sync.Mutex
	msgs []notify.Message
}

func (s *sentBox) Send(_ context.Context, msg notify.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
	return nil
}

type auditBox struct {
	mu     sync.Mutex
	events []audit.Event
}

func (a *auditBox) Log(_ context.Context, ev audit.Event) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, ev)
	return nil
}

type harness struct {
	repo   *mocks.MockRepository
	fx     *usecase.Effects
	clock  *clock.MockClock
	redis  *miniredis.Miniredis
	rdb    *redis.Client
	sent   *sentBox
	audits *auditBox
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	ctrl := gomock.NewController(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	h := &harness{
		repo:   mocks.NewMockRepository(ctrl),
		clock:  clock.NewMockClock(fixedNow),
		redis:  mr,
		rdb:    rdb,
		sent:   &sentBox{},
		audits: &auditBox{},
	}

	h.fx = &usecase.Effects{
		Notifier: notify.NewDispatcher(h.sent, 10),
		Audit:    audit.NewDispatcher(h.audits),
		Cache:    cache.NewBookingCache(rdb, time.Minute),
		Guard:    cache.NewActionGuard(rdb, 15*time.Second),
		Clock:    h.clock,
	}
	t.Cleanup(h.flush)

	return h
}

// flush waits until every queued notification and audit event is delivered.
func (h *harness) flush() {
	h.fx.Notifier.Close()
	h.fx.Audit.Close()
}

func (h *harness) messages() []notify.Message {
	h.flush()
	h.sent.mu.Lock()
	defer h.sent.mu.Unlock()
	return h.sent.msgs
}

func (h *harness) events() []audit.Event {
	h.flush()
	h.audits.mu.Lock()
	defer h.audits.mu.Unlock()
	return h.audits.events
}

func (h *harness) expectBooking(b *models.Booking) {
	h.repo.EXPECT().
		GetBooking(gomock.Any(), b.ShopID, b.ID).
		Return(b, nil)
}

func (h *harness) expectStaffRole(shopID, userID uuid.UUID, role string) {
	h.repo.EXPECT().
		GetStaffRole(gomock.Any(), shopID, userID).
		Return(role, nil).
		AnyTimes()
}

func (h *harness) expectShop(shopID uuid.UUID) {
	h.repo.EXPECT().
		GetShop(gomock.Any(), shopID).
		Return(&models.Shop{ID: shopID, Name: "Downtown Cuts", Timezone: "UTC"}, nil).
		AnyTimes()
}

func (h *harness) expectHours(shopID, providerID uuid.UUID, day time.Weekday, start, end string) {
	h.repo.EXPECT().
		GetWorkingHours(gomock.Any(), shopID, providerID, int(day)).
		Return(&models.WorkingHours{
			ShopID:     shopID,
			ProviderID: providerID,
			Weekday:    int(day),
			Active:     true,
			StartTime:  start,
			EndTime:    end,
		}, nil)
}

func newBooking(status domain.Status) *models.Booking {
	return &models.Booking{
		ID:              uuid.New(),
		ShopID:          uuid.New(),
		CustomerID:      uuid.New(),
		AppointmentDate: "2026-05-10",
		AppointmentTime: "14:30",
		Services:        `[{"name":"Haircut","price":30}]`,
		TotalAmount:     30,
		Status:          string(status),
		CustomerNotes:   "short on the sides",
		Version:         1,
	}
}

func customer(b *models.Booking) usecase.Actor {
	return usecase.Actor{UserID: b.CustomerID, PlatformRole: models.PlatformRoleCustomer}
}

func staff() usecase.Actor {
	return usecase.Actor{UserID: uuid.New(), PlatformRole: models.PlatformRoleCustomer}
}
