package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/BruksfildServices01/shop-booking/internal/audit"
	"github.com/BruksfildServices01/shop-booking/internal/cache"
	"github.com/BruksfildServices01/shop-booking/internal/clock"
	"github.com/BruksfildServices01/shop-booking/internal/config"
	domain "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/shop-booking/internal/domain/user"
	"github.com/BruksfildServices01/shop-booking/internal/handlers"
	"github.com/BruksfildServices01/shop-booking/internal/httperr"
	"github.com/BruksfildServices01/shop-booking/internal/middleware"
	"github.com/BruksfildServices01/shop-booking/internal/mocks"
	"github.com/BruksfildServices01/shop-booking/internal/models"
	"github.com/BruksfildServices01/shop-booking/internal/notify"
	"github.com/BruksfildServices01/shop-booking/internal/routes"
	ucBooking "github.com/BruksfildServices01/shop-booking/internal/usecase/booking"
	ucSchedule "github.com/BruksfildServices01/shop-booking/internal/usecase/schedule"
	ucShop "github.com/BruksfildServices01/shop-booking/internal/usecase/shop"
)

var fixedNow = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

// ------------------------------------------------------
// fakes
// ------------------------------------------------------

type fakeUsers struct {
	mu    sync.Mutex
	byKey map[string]*models.User
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, taken := f.byKey[u.Email]; taken {
		return user.ErrEmailTaken
	}
	u.ID = uuid.New()
	f.byKey[u.Email] = u
	return nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.byKey[email]; ok {
		return u, nil
	}
	return nil, user.ErrNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byKey {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

type fakeInbox struct{}

func (fakeInbox) ListForUser(_ context.Context, userID uuid.UUID, _ bool, _ int) ([]models.Notification, error) {
	return []models.Notification{{ID: uuid.New(), RecipientID: userID, Kind: notify.KindBookingConfirmed}}, nil
}

func (fakeInbox) MarkRead(_ context.Context, _ uuid.UUID, _ uuid.UUID) error {
	return errors.Wrap(httperr.ErrBusiness("notification_not_found"), "mark read")
}

// fakeSchedule serves shop and staff lookups from the booking mock.
type fakeSchedule struct {
	*mocks.MockRepository
	hours map[uuid.UUID][]models.WorkingHours
}

func (f *fakeSchedule) ListWorkingHours(_ context.Context, _ uuid.UUID, providerID uuid.UUID) ([]models.WorkingHours, error) {
	return f.hours[providerID], nil
}

func (f *fakeSchedule) ReplaceWorkingHours(_ context.Context, _ uuid.UUID, providerID uuid.UUID, days []models.WorkingHours) error {
	f.hours[providerID] = days
	return nil
}

func (f *fakeSchedule) ListBookedTimes(context.Context, uuid.UUID, uuid.UUID, string) ([]string, error) {
	return []string{"09:00"}, nil
}

type discard struct{}

func (discard) Send(context.Context, notify.Message) error { return nil }
func (discard) Log(context.Context, audit.Event) error     { return nil }

type noAudit struct{}

func (noAudit) List(context.Context, uuid.UUID, audit.Filter) ([]models.AuditLog, int64, error) {
	return nil, 0, nil
}

// ------------------------------------------------------
// environment
// ------------------------------------------------------

type env struct {
	router *gin.Engine
	cfg    *config.Config
	repo   *mocks.MockRepository
	shops  *mocks.MockShopRepository
	users  *fakeUsers
	sched  *fakeSchedule
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	e := &env{
		cfg:   &config.Config{JWTSecret: "test-secret", JWTTTL: time.Hour},
		repo:  mocks.NewMockRepository(ctrl),
		shops: mocks.NewMockShopRepository(ctrl),
		users: &fakeUsers{byKey: map[string]*models.User{}},
	}
	e.sched = &fakeSchedule{MockRepository: e.repo, hours: map[uuid.UUID][]models.WorkingHours{}}

	fixed := clock.NewMockClock(fixedNow)
	fx := &ucBooking.Effects{
		Notifier: notify.NewDispatcher(discard{}, 10),
		Audit:    audit.NewDispatcher(discard{}),
		Cache:    cache.NewBookingCache(rdb, time.Minute),
		Guard:    cache.NewActionGuard(rdb, time.Second),
		Clock:    fixed,
	}
	t.Cleanup(func() {
		fx.Notifier.Close()
		fx.Audit.Close()
	})

	h := routes.Handlers{
		Auth: handlers.NewAuthHandler(e.users, e.cfg, clock.NewRealClock()),
		Me: handlers.NewMeHandler(
			e.users,
			ucShop.NewListMemberships(e.shops),
			ucBooking.NewListUserBookings(e.repo, fx.Cache, fixed, "UTC"),
			fakeInbox{},
		),
		Shop: handlers.NewShopHandler(
			ucShop.NewCreateShop(e.shops, fx.Audit),
			ucShop.NewAddStaff(e.shops, fx.Audit),
			ucShop.NewListStaff(e.shops),
		),
		Booking: handlers.NewBookingHandler(handlers.BookingUseCases{
			Create:     ucBooking.NewCreateBooking(e.repo, fx, 30*time.Minute),
			Get:        ucBooking.NewGetBooking(e.repo),
			ListShop:   ucBooking.NewListShopBookings(e.repo),
			Confirm:    ucBooking.NewConfirmBooking(e.repo, fx),
			Cancel:     ucBooking.NewCancelBooking(e.repo, fx),
			Reschedule: ucBooking.NewRescheduleBooking(e.repo, fx, 30*time.Minute),
			Rate:       ucBooking.NewRateBooking(e.repo, fx),
		}),
		Audit: handlers.NewAuditLogsHandler(ucShop.NewListAuditLogs(e.shops, noAudit{})),
		Schedule: handlers.NewWorkingHoursHandler(
			ucSchedule.NewGetWorkingHours(e.sched),
			ucSchedule.NewUpdateWorkingHours(e.sched),
			ucSchedule.NewGetAvailability(e.sched, fixed, 30),
		),
	}

	e.router = gin.New()
	routes.RegisterRoutes(e.router, e.cfg, h, middleware.NewIPRateLimiter(1000, 1000))
	return e
}

func (e *env) token(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	tok, err := middleware.SignToken(e.cfg.JWTSecret, time.Hour, userID, models.PlatformRoleCustomer, time.Now())
	require.NoError(t, err)
	return tok
}

type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	ErrorCode string          `json:"error_code"`
	Message   string          `json:"message"`
}

func (e *env) do(t *testing.T, method, path string, body any, token string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if body != nil {
		var buf bytes.Buffer
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
		req = httptest.NewRequest(method, path, &buf)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var out envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func bookingPath(b *models.Booking, suffix string) string {
	return "/api/shops/" + b.ShopID.String() + "/bookings/" + b.ID.String() + suffix
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
		Version:         1,
	}
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}
