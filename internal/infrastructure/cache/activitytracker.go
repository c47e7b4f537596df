package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/huddle-inc/huddle/internal/domain/notification"
)

const (
	activityKeyPrefix = "activity:last_active:"

	// Heartbeats older than this are useless to every delivery decision,
	// so entries expire instead of accumulating forever.
	activityKeyTTL = 24 * time.Hour
)

// RedisActivityTracker stores one last-seen timestamp per recipient.
// Heartbeats are plain SETs, so concurrent writers resolve last-write-wins.
type RedisActivityTracker struct {
	client *redis.Client
}

func NewRedisActivityTracker(client *redis.Client) notification.ActivityTracker {
	return &RedisActivityTracker{client: client}
}

func activityKey(recipientID uint) string {
	return activityKeyPrefix + strconv.FormatUint(uint64(recipientID), 10)
}

// UpdateLastActive records a heartbeat for the recipient at the current time.
func (t *RedisActivityTracker) UpdateLastActive(ctx context.Context, recipientID uint) error {
	val := strconv.FormatInt(time.Now().UTC().Unix(), 10)
	if err := t.client.Set(ctx, activityKey(recipientID), val, activityKeyTTL).Err(); err != nil {
		return fmt.Errorf("failed to record activity for recipient %d: %w", recipientID, err)
	}
	return nil
}

// LastActiveAt returns the recipient's last heartbeat, or nil when none was
// ever recorded (or it has expired).
func (t *RedisActivityTracker) LastActiveAt(ctx context.Context, recipientID uint) (*time.Time, error) {
	val, err := t.client.Get(ctx, activityKey(recipientID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get activity for recipient %d: %w", recipientID, err)
	}

	unix, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse activity timestamp for recipient %d: %w", recipientID, err)
	}

	ts := time.Unix(unix, 0).UTC()
	return &ts, nil
}

// IsActive reports whether the recipient's last heartbeat falls within the
// threshold. A recipient with no heartbeat at all is inactive, not an error.
func (t *RedisActivityTracker) IsActive(ctx context.Context, recipientID uint, threshold time.Duration) (bool, error) {
	lastActive, err := t.LastActiveAt(ctx, recipientID)
	if err != nil {
		return false, err
	}
	return notification.IsActiveAt(lastActive, threshold, time.Now().UTC()), nil
}
