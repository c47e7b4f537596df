package usecases

import (
	"context"

	"github.com/huddle-inc/huddle/internal/domain/subscription"
	vo "github.com/huddle-inc/huddle/internal/domain/subscription/valueobjects"
	"github.com/huddle-inc/huddle/internal/shared/logger"
)

type mockSubscriptionRepository struct {
	CreateFunc            func(ctx context.Context, sub *subscription.Subscription) error
	UpdateFunc            func(ctx context.Context, sub *subscription.Subscription) error
	FindLatestByGroupFunc func(ctx context.Context, groupID uint, statuses []vo.SubscriptionStatus) (*subscription.Subscription, error)
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) FindLatestByGroup(ctx context.Context, groupID uint, statuses []vo.SubscriptionStatus) (*subscription.Subscription, error) {
	if m.FindLatestByGroupFunc != nil {
		return m.FindLatestByGroupFunc(ctx, groupID, statuses)
	}
	return nil, nil
}

type mockLogger struct {
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	DebugwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
