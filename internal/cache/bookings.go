package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/shop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/shop-booking/internal/models"
)

// BookingCache keeps a user's "my bookings" lists. A miss or a Redis
// failure is never fatal: callers fall back to the database.
type BookingCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewBookingCache(rdb *redis.Client, ttl time.Duration) *BookingCache {
	return &BookingCache{rdb: rdb, ttl: ttl}
}

func userKey(userID uuid.UUID, scope domain.Scope) string {
	return fmt.Sprintf("bookings:user:%s:%s", userID, scope)
}

// Get reports ok=false on a miss.
func (c *BookingCache) Get(
	ctx context.Context,
	userID uuid.UUID,
	scope domain.Scope,
) ([]models.Booking, bool) {

	raw, err := c.rdb.Get(ctx, userKey(userID, scope)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.WarnContext(ctx, "bookings cache read failed", "user_id", userID, "error", err)
		}
		return nil, false
	}

	var out []models.Booking
	if err := json.Unmarshal(raw, &out); err != nil {
		slog.WarnContext(ctx, "bookings cache entry corrupt", "user_id", userID, "error", err)
		return nil, false
	}
	return out, true
}

func (c *BookingCache) Set(
	ctx context.Context,
	userID uuid.UUID,
	scope domain.Scope,
	list []models.Booking,
) {
	raw, err := json.Marshal(list)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, userKey(userID, scope), raw, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "bookings cache write failed", "user_id", userID, "error", err)
	}
}

// InvalidateUser drops every cached scope of userID.
func (c *BookingCache) InvalidateUser(ctx context.Context, userID uuid.UUID) {
	scopes := domain.Scopes()
	keys := make([]string, 0, len(scopes))
	for _, s := range scopes {
		keys = append(keys, userKey(userID, s))
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		slog.WarnContext(ctx, "bookings cache invalidation failed", "user_id", userID, "error", err)
	}
}
