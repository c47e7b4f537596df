package notification

import (
	"context"
	"time"
)

// InboxRepository persists notifications. Create is the commit point of the
// delivery pipeline: once it returns, the notification exists regardless of
// what happens to delivery afterwards.
type InboxRepository interface {
	Create(ctx context.Context, notif *Notification) error
	GetByID(ctx context.Context, id uint) (*Notification, error)
	GetBySID(ctx context.Context, sid string) (*Notification, error)
	Update(ctx context.Context, notif *Notification) error
	ListByRecipient(ctx context.Context, recipientID, groupID uint, unreadOnly bool, limit, offset int) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, recipientID, groupID uint) (int64, error)
	MarkAllAsRead(ctx context.Context, recipientID, groupID uint) error

	// FindByBatchKeySince returns all notifications sharing batchKey created
	// at or after the cutoff, ordered oldest first. The ordering and length
	// are stable for the duration of one delivery decision.
	FindByBatchKeySince(ctx context.Context, batchKey string, since time.Time) ([]*Notification, error)
}

// PreferenceRepository stores per-(recipient, group) delivery opt-ins.
// Find returns nil without error when no record exists; callers substitute
// DefaultPreferences.
type PreferenceRepository interface {
	Find(ctx context.Context, recipientID, groupID uint) (*Preferences, error)
	Upsert(ctx context.Context, prefs *Preferences) error
}

// DeliveryLogRepository appends delivery attempt rows. There is no update
// path; the log is the audit trail a retry or alerting layer would read.
type DeliveryLogRepository interface {
	Append(ctx context.Context, entry *DeliveryLog) error
	ListByNotification(ctx context.Context, notificationID uint) ([]*DeliveryLog, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// ActivityTracker records recipient heartbeats and answers presence queries.
// Implementations need only single-key atomic upserts; concurrent heartbeats
// for one recipient are commutative (last write wins).
type ActivityTracker interface {
	UpdateLastActive(ctx context.Context, recipientID uint) error
	LastActiveAt(ctx context.Context, recipientID uint) (*time.Time, error)
	IsActive(ctx context.Context, recipientID uint, threshold time.Duration) (bool, error)
}
