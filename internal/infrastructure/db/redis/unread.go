package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const unreadTTL = 24 * time.Hour

// UnreadCounter caches per-recipient unread notification counts so the
// polling endpoint does not hit Mongo on every request.
// Key format: unread:<recipient_id>
type UnreadCounter struct {
	client *redis.Client
}

// NewUnreadCounter creates an UnreadCounter wrapping the given Redis client.
func NewUnreadCounter(client *redis.Client) *UnreadCounter {
	return &UnreadCounter{client: client}
}

// Incr bumps the recipient's counter and refreshes its TTL.
func (u *UnreadCounter) Incr(ctx context.Context, recipientID string) error {
	key := u.key(recipientID)
	if err := u.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("unread incr: %w", err)
	}
	return u.client.Expire(ctx, key, unreadTTL).Err()
}

// Get returns the cached count and whether a value was present.
func (u *UnreadCounter) Get(ctx context.Context, recipientID string) (int64, bool, error) {
	n, err := u.client.Get(ctx, u.key(recipientID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("unread get: %w", err)
	}
	return n, true, nil
}

// Reset drops the cached counter; the next read falls back to the store.
func (u *UnreadCounter) Reset(ctx context.Context, recipientID string) error {
	return u.client.Del(ctx, u.key(recipientID)).Err()
}

func (u *UnreadCounter) key(recipientID string) string {
	return "unread:" + recipientID
}
