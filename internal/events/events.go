package events

import (
	"context" // Context for Redis operations

	"github.com/redis/go-redis/v9" // Redis client
)

// Channel is the Redis pub/sub channel carrying table-change signals.
const Channel = "maloga:changes"

// Publish announces that rows in the named table changed. The signal
// carries only the table name: subscribers re-read the collection, so
// lost or duplicated signals cannot corrupt anything. A nil client
// (change notification disabled) is a no-op.
func Publish(ctx context.Context, rdb *redis.Client, table string) error {
	if rdb == nil {
		return nil // Notification disabled
	}
	return rdb.Publish(ctx, Channel, table).Err() // Fire the signal
}

// Subscribe opens a subscription to the change channel. The caller owns
// the returned PubSub and must Close it.
func Subscribe(ctx context.Context, rdb *redis.Client) *redis.PubSub {
	return rdb.Subscribe(ctx, Channel)
}
