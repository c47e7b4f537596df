package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huddle-inc/huddle/internal/domain/notification"
	"github.com/huddle-inc/huddle/internal/shared/logger"
)

type nopLogger struct{}

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type mockDeliveryLogRepository struct {
	deleteOlderThanFunc func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *mockDeliveryLogRepository) Append(ctx context.Context, entry *notification.DeliveryLog) error {
	return nil
}

func (m *mockDeliveryLogRepository) ListByNotification(ctx context.Context, notificationID uint) ([]*notification.DeliveryLog, error) {
	return nil, nil
}

func (m *mockDeliveryLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.deleteOlderThanFunc != nil {
		return m.deleteOlderThanFunc(ctx, cutoff)
	}
	return 0, nil
}

func TestRetentionScheduler_SweepUsesRetentionCutoff(t *testing.T) {
	var gotCutoff time.Time
	repo := &mockDeliveryLogRepository{
		deleteOlderThanFunc: func(ctx context.Context, cutoff time.Time) (int64, error) {
			gotCutoff = cutoff
			return 3, nil
		},
	}

	retention := 90 * 24 * time.Hour
	s := NewRetentionScheduler(repo, retention, &nopLogger{})

	before := time.Now().UTC().Add(-retention)
	s.sweep(context.Background())
	after := time.Now().UTC().Add(-retention)

	require.False(t, gotCutoff.IsZero())
	assert.False(t, gotCutoff.Before(before))
	assert.False(t, gotCutoff.After(after))
}

func TestRetentionScheduler_SweepErrorDoesNotPanic(t *testing.T) {
	repo := &mockDeliveryLogRepository{
		deleteOlderThanFunc: func(ctx context.Context, cutoff time.Time) (int64, error) {
			return 0, assert.AnError
		},
	}

	s := NewRetentionScheduler(repo, 24*time.Hour, &nopLogger{})
	s.sweep(context.Background())
}
