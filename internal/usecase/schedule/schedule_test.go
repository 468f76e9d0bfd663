package schedule_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/shop-booking/internal/clock"
	booking "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	domain "github.com/BruksfildServices01/shop-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/shop-booking/internal/models"
	bookinguc "github.com/BruksfildServices01/shop-booking/internal/usecase/booking"
	"github.com/BruksfildServices01/shop-booking/internal/usecase/schedule"
)

type fakeRepo struct {
	shop   models.Shop
	staff  map[uuid.UUID]string
	hours  map[uuid.UUID][]models.WorkingHours
	booked map[string][]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shop:   models.Shop{ID: uuid.New(), Timezone: "UTC"},
		staff:  map[uuid.UUID]string{},
		hours:  map[uuid.UUID][]models.WorkingHours{},
		booked: map[string][]string{},
	}
}

func (f *fakeRepo) GetShop(_ context.Context, shopID uuid.UUID) (*models.Shop, error) {
	if shopID != f.shop.ID {
		return nil, booking.ErrShopNotFound
	}
	s := f.shop
	return &s, nil
}

func (f *fakeRepo) GetStaffRole(_ context.Context, _ uuid.UUID, userID uuid.UUID) (string, error) {
	return f.staff[userID], nil
}

func (f *fakeRepo) ListWorkingHours(_ context.Context, _ uuid.UUID, providerID uuid.UUID) ([]models.WorkingHours, error) {
	return f.hours[providerID], nil
}

func (f *fakeRepo) ReplaceWorkingHours(_ context.Context, _ uuid.UUID, providerID uuid.UUID, days []models.WorkingHours) error {
	f.hours[providerID] = append([]models.WorkingHours(nil), days...)
	return nil
}

func (f *fakeRepo) ListBookedTimes(_ context.Context, _ uuid.UUID, _ uuid.UUID, date string) ([]string, error) {
	return f.booked[date], nil
}

var monday = models.WorkingHours{
	Weekday:    int(time.Monday),
	Active:     true,
	StartTime:  "09:00",
	EndTime:    "12:00",
	LunchStart: "10:00",
	LunchEnd:   "11:00",
}

func TestUpdateWorkingHoursPermissions(t *testing.T) {
	repo := newFakeRepo()
	provider, manager, other := uuid.New(), uuid.New(), uuid.New()
	repo.staff[provider] = "provider"
	repo.staff[manager] = "manager"
	repo.staff[other] = "provider"

	uc := schedule.NewUpdateWorkingHours(repo)
	ctx := context.Background()
	week := []models.WorkingHours{monday}

	_, err := uc.Execute(ctx, bookinguc.Actor{UserID: provider}, repo.shop.ID, provider, week)
	assert.NoError(t, err)

	_, err = uc.Execute(ctx, bookinguc.Actor{UserID: manager}, repo.shop.ID, provider, week)
	assert.NoError(t, err)

	_, err = uc.Execute(ctx, bookinguc.Actor{UserID: other}, repo.shop.ID, provider, week)
	assert.ErrorIs(t, err, booking.ErrNotAuthorized)

	_, err = uc.Execute(ctx, bookinguc.Actor{UserID: uuid.New()}, repo.shop.ID, provider, week)
	assert.ErrorIs(t, err, booking.ErrNotAuthorized)

	_, err = uc.Execute(ctx, bookinguc.Actor{UserID: uuid.New(), PlatformRole: "super_admin"}, repo.shop.ID, provider, week)
	assert.NoError(t, err)
}

func TestUpdateWorkingHoursRejectsBadWeek(t *testing.T) {
	repo := newFakeRepo()
	provider := uuid.New()
	repo.staff[provider] = "provider"

	bad := monday
	bad.EndTime = "08:00"

	_, err := schedule.NewUpdateWorkingHours(repo).Execute(
		context.Background(),
		bookinguc.Actor{UserID: provider},
		repo.shop.ID, provider,
		[]models.WorkingHours{bad},
	)

	assert.ErrorIs(t, err, domain.ErrInvalidHours)
	assert.Empty(t, repo.hours[provider])
}

func TestGetWorkingHoursUnknownProvider(t *testing.T) {
	repo := newFakeRepo()

	_, err := schedule.NewGetWorkingHours(repo).Execute(context.Background(), repo.shop.ID, uuid.New())
	assert.ErrorIs(t, err, booking.ErrInvalidProvider)
}

func TestGetWorkingHoursEmptyWeek(t *testing.T) {
	repo := newFakeRepo()
	provider := uuid.New()
	repo.staff[provider] = "provider"

	days, err := schedule.NewGetWorkingHours(repo).Execute(context.Background(), repo.shop.ID, provider)
	require.NoError(t, err)
	assert.NotNil(t, days)
	assert.Empty(t, days)
}

func TestGetAvailability(t *testing.T) {
	repo := newFakeRepo()
	provider := uuid.New()
	repo.staff[provider] = "provider"
	repo.hours[provider] = []models.WorkingHours{monday}
	repo.booked["2026-05-04"] = []string{"11:00"}

	// Monday 09:20 UTC
	clk := clock.NewMockClock(time.Date(2026, 5, 4, 9, 20, 0, 0, time.UTC))
	uc := schedule.NewGetAvailability(repo, clk, 30)

	got, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ShopID:     repo.shop.ID,
		ProviderID: provider,
		Date:       "2026-05-04",
	})
	require.NoError(t, err)

	assert.Equal(t, "UTC", got.Timezone)
	assert.Equal(t, []domain.TimeSlot{
		{Start: "09:30", End: "10:00"},
		{Start: "11:30", End: "12:00"},
	}, got.Slots)
}

func TestGetAvailabilityDayOff(t *testing.T) {
	repo := newFakeRepo()
	provider := uuid.New()
	repo.staff[provider] = "provider"
	repo.hours[provider] = []models.WorkingHours{monday}

	uc := schedule.NewGetAvailability(repo, clock.NewMockClock(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)), 30)

	// 2026-05-05 is a Tuesday
	got, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ShopID:     repo.shop.ID,
		ProviderID: provider,
		Date:       "2026-05-05",
	})
	require.NoError(t, err)
	assert.Empty(t, got.Slots)
}

func TestGetAvailabilityValidation(t *testing.T) {
	repo := newFakeRepo()
	provider := uuid.New()
	repo.staff[provider] = "provider"
	uc := schedule.NewGetAvailability(repo, clock.NewMockClock(time.Now()), 30)
	ctx := context.Background()

	_, err := uc.Execute(ctx, domain.AvailabilityInput{ShopID: repo.shop.ID, ProviderID: provider, Date: "04/05/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	_, err = uc.Execute(ctx, domain.AvailabilityInput{ShopID: repo.shop.ID, ProviderID: provider, Date: "2026-05-04", SlotMinutes: -15})
	assert.ErrorIs(t, err, domain.ErrInvalidSlot)

	_, err = uc.Execute(ctx, domain.AvailabilityInput{ShopID: uuid.New(), ProviderID: provider, Date: "2026-05-04"})
	assert.ErrorIs(t, err, booking.ErrShopNotFound)
}
