package usecases

import (
	"context"
	"time"

	"github.com/huddle-inc/huddle/internal/domain/notification"
	vo "github.com/huddle-inc/huddle/internal/domain/notification/valueobjects"
	"github.com/huddle-inc/huddle/internal/shared/logger"
)

type mockInboxRepository struct {
	CreateFunc              func(ctx context.Context, notif *notification.Notification) error
	GetByIDFunc             func(ctx context.Context, id uint) (*notification.Notification, error)
	GetBySIDFunc            func(ctx context.Context, sid string) (*notification.Notification, error)
	UpdateFunc              func(ctx context.Context, notif *notification.Notification) error
	ListByRecipientFunc     func(ctx context.Context, recipientID, groupID uint, unreadOnly bool, limit, offset int) ([]*notification.Notification, int64, error)
	CountUnreadFunc         func(ctx context.Context, recipientID, groupID uint) (int64, error)
	MarkAllAsReadFunc       func(ctx context.Context, recipientID, groupID uint) error
	FindByBatchKeySinceFunc func(ctx context.Context, batchKey string, since time.Time) ([]*notification.Notification, error)
}

func (m *mockInboxRepository) Create(ctx context.Context, notif *notification.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, notif)
	}
	return nil
}

func (m *mockInboxRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockInboxRepository) GetBySID(ctx context.Context, sid string) (*notification.Notification, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockInboxRepository) Update(ctx context.Context, notif *notification.Notification) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, notif)
	}
	return nil
}

func (m *mockInboxRepository) ListByRecipient(ctx context.Context, recipientID, groupID uint, unreadOnly bool, limit, offset int) ([]*notification.Notification, int64, error) {
	if m.ListByRecipientFunc != nil {
		return m.ListByRecipientFunc(ctx, recipientID, groupID, unreadOnly, limit, offset)
	}
	return nil, 0, nil
}

func (m *mockInboxRepository) CountUnread(ctx context.Context, recipientID, groupID uint) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, recipientID, groupID)
	}
	return 0, nil
}

func (m *mockInboxRepository) MarkAllAsRead(ctx context.Context, recipientID, groupID uint) error {
	if m.MarkAllAsReadFunc != nil {
		return m.MarkAllAsReadFunc(ctx, recipientID, groupID)
	}
	return nil
}

func (m *mockInboxRepository) FindByBatchKeySince(ctx context.Context, batchKey string, since time.Time) ([]*notification.Notification, error) {
	if m.FindByBatchKeySinceFunc != nil {
		return m.FindByBatchKeySinceFunc(ctx, batchKey, since)
	}
	return nil, nil
}

type mockPreferenceRepository struct {
	FindFunc   func(ctx context.Context, recipientID, groupID uint) (*notification.Preferences, error)
	UpsertFunc func(ctx context.Context, prefs *notification.Preferences) error
}

func (m *mockPreferenceRepository) Find(ctx context.Context, recipientID, groupID uint) (*notification.Preferences, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, recipientID, groupID)
	}
	return nil, nil
}

func (m *mockPreferenceRepository) Upsert(ctx context.Context, prefs *notification.Preferences) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, prefs)
	}
	return nil
}

type mockDeliveryLogRepository struct {
	AppendFunc             func(ctx context.Context, entry *notification.DeliveryLog) error
	ListByNotificationFunc func(ctx context.Context, notificationID uint) ([]*notification.DeliveryLog, error)
	DeleteOlderThanFunc    func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *mockDeliveryLogRepository) Append(ctx context.Context, entry *notification.DeliveryLog) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	return nil
}

func (m *mockDeliveryLogRepository) ListByNotification(ctx context.Context, notificationID uint) ([]*notification.DeliveryLog, error) {
	if m.ListByNotificationFunc != nil {
		return m.ListByNotificationFunc(ctx, notificationID)
	}
	return nil, nil
}

func (m *mockDeliveryLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.DeleteOlderThanFunc != nil {
		return m.DeleteOlderThanFunc(ctx, cutoff)
	}
	return 0, nil
}

type mockActivityTracker struct {
	UpdateLastActiveFunc func(ctx context.Context, recipientID uint) error
	LastActiveAtFunc     func(ctx context.Context, recipientID uint) (*time.Time, error)
	IsActiveFunc         func(ctx context.Context, recipientID uint, threshold time.Duration) (bool, error)
}

func (m *mockActivityTracker) UpdateLastActive(ctx context.Context, recipientID uint) error {
	if m.UpdateLastActiveFunc != nil {
		return m.UpdateLastActiveFunc(ctx, recipientID)
	}
	return nil
}

func (m *mockActivityTracker) LastActiveAt(ctx context.Context, recipientID uint) (*time.Time, error) {
	if m.LastActiveAtFunc != nil {
		return m.LastActiveAtFunc(ctx, recipientID)
	}
	return nil, nil
}

func (m *mockActivityTracker) IsActive(ctx context.Context, recipientID uint, threshold time.Duration) (bool, error) {
	if m.IsActiveFunc != nil {
		return m.IsActiveFunc(ctx, recipientID, threshold)
	}
	return false, nil
}

type mockPushProvider struct {
	SendPushFunc        func(ctx context.Context, recipientID uint, title, body string, notifType vo.NotificationType, deepLink *string, data map[string]any) (*notification.PushResult, error)
	SendBatchedPushFunc func(ctx context.Context, recipientID uint, batch []*notification.Notification) (*notification.PushResult, error)
}

func (m *mockPushProvider) SendPush(ctx context.Context, recipientID uint, title, body string, notifType vo.NotificationType, deepLink *string, data map[string]any) (*notification.PushResult, error) {
	if m.SendPushFunc != nil {
		return m.SendPushFunc(ctx, recipientID, title, body, notifType, deepLink, data)
	}
	return &notification.PushResult{MessageID: "msg_test", Success: true}, nil
}

func (m *mockPushProvider) SendBatchedPush(ctx context.Context, recipientID uint, batch []*notification.Notification) (*notification.PushResult, error) {
	if m.SendBatchedPushFunc != nil {
		return m.SendBatchedPushFunc(ctx, recipientID, batch)
	}
	return &notification.PushResult{MessageID: "msg_test", Success: true}, nil
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	DebugwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

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
