package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ActionGuard marks a user's action on a booking as in flight so a
// duplicate submission is refused instead of racing the first one.
type ActionGuard struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewActionGuard(rdb *redis.Client, ttl time.Duration) *ActionGuard {
	return &ActionGuard{rdb: rdb, ttl: ttl}
}

// releaseScript deletes the key only while it still holds the caller's
// token, so an expired holder cannot free a newer one.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func guardKey(bookingID, actorID uuid.UUID) string {
	return fmt.Sprintf("bookings:inflight:%s:%s", bookingID, actorID)
}

// Acquire returns a release func when the slot was free, ok=false when
// another request from the same actor holds it. When Redis is down the
// guard is skipped and the database precondition check still applies.
func (g *ActionGuard) Acquire(
	ctx context.Context,
	bookingID uuid.UUID,
	actorID uuid.UUID,
) (release func(), ok bool) {

	key := guardKey(bookingID, actorID)
	token := uuid.NewString()

	acquired, err := g.rdb.SetNX(ctx, key, token, g.ttl).Result()
	if err != nil {
		slog.WarnContext(ctx, "action guard unavailable", "booking_id", bookingID, "error", err)
		return func() {}, true
	}
	if !acquired {
		return nil, false
	}

	return func() {
		err := releaseScript.Run(context.WithoutCancel(ctx), g.rdb, []string{key}, token).Err()
		if err != nil {
			slog.Warn("action guard release failed", "booking_id", bookingID, "error", err)
		}
	}, true
}
