package usecases

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huddle-inc/huddle/internal/application/notification/dto"
	"github.com/huddle-inc/huddle/internal/domain/notification"
	vo "github.com/huddle-inc/huddle/internal/domain/notification/valueobjects"
)

type notifyFixture struct {
	inbox    *mockInboxRepository
	prefs    *mockPreferenceRepository
	delivery *mockDeliveryLogRepository
	activity *mockActivityTracker
	push     *mockPushProvider

	mu       sync.Mutex
	appended []*notification.DeliveryLog
}

// newNotifyFixture assembles a use case whose inbox assigns IDs and whose
// delivery repo records every appended row for inspection.
func newNotifyFixture(t *testing.T) (*NotifyUseCase, *notifyFixture) {
	t.Helper()

	f := &notifyFixture{
		inbox:    &mockInboxRepository{},
		prefs:    &mockPreferenceRepository{},
		delivery: &mockDeliveryLogRepository{},
		activity: &mockActivityTracker{},
		push:     &mockPushProvider{},
	}

	f.inbox.CreateFunc = func(ctx context.Context, notif *notification.Notification) error {
		return notif.SetID(1)
	}
	f.delivery.AppendFunc = func(ctx context.Context, entry *notification.DeliveryLog) error {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.appended = append(f.appended, entry)
		return nil
	}

	uc := NewNotifyUseCase(f.inbox, f.prefs, f.delivery, f.activity, f.push, 5*time.Minute, &mockLogger{})
	return uc, f
}

func validNotifyRequest() dto.NotifyRequest {
	actorID := uint(9)
	return dto.NotifyRequest{
		GroupID:     1,
		RecipientID: 2,
		ActorID:     &actorID,
		Type:        vo.NotificationTypeTodoNudge.String(),
		Title:       "Nudge",
		Body:        "Finish the dishes",
	}
}

func TestNotifyUseCase_Execute_PersistenceFirst(t *testing.T) {
	uc, f := newNotifyFixture(t)

	var persisted *notification.Notification
	f.inbox.CreateFunc = func(ctx context.Context, notif *notification.Notification) error {
		persisted = notif
		return notif.SetID(1)
	}

	req := validNotifyRequest()
	result, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, persisted)

	assert.Equal(t, req.GroupID, persisted.GroupID())
	assert.Equal(t, req.RecipientID, persisted.RecipientID())
	assert.Equal(t, req.Type, persisted.Type().String())
	assert.Equal(t, req.Title, persisted.Title())
	assert.Equal(t, req.Body, persisted.Body())
	assert.False(t, persisted.CreatedAt().IsZero())
	assert.Nil(t, persisted.ReadAt())
	assert.Nil(t, persisted.ArchivedAt())

	// The returned notification is the persisted one, untouched by delivery.
	assert.Same(t, persisted, result)
}

func TestNotifyUseCase_Execute_InboxWriteFailurePropagates(t *testing.T) {
	uc, f := newNotifyFixture(t)

	f.inbox.CreateFunc = func(ctx context.Context, notif *notification.Notification) error {
		return errors.New("connection refused")
	}

	pushCalls := 0
	f.push.SendPushFunc = func(ctx context.Context, recipientID uint, title, body string, notifType vo.NotificationType, deepLink *string, data map[string]any) (*notification.PushResult, error) {
		pushCalls++
		return nil, nil
	}

	result, err := uc.Execute(context.Background(), validNotifyRequest())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Empty(t, f.appended)
	assert.Zero(t, pushCalls)
}

func TestNotifyUseCase_Execute_OptOutShortCircuit(t *testing.T) {
	uc, f := newNotifyFixture(t)

	f.prefs.FindFunc = func(ctx context.Context, recipientID, groupID uint) (*notification.Preferences, error) {
		prefs, err := notification.NewPreferences(recipientID, groupID, false, false, nil)
		require.NoError(t, err)
		return prefs, nil
	}

	activityCalls := 0
	f.activity.IsActiveFunc = func(ctx context.Context, recipientID uint, threshold time.Duration) (bool, error) {
		activityCalls++
		return true, nil
	}
	pushCalls := 0
	f.push.SendPushFunc = func(ctx context.Context, recipientID uint, title, body string, notifType vo.NotificationType, deepLink *string, data map[string]any) (*notification.PushResult, error) {
		pushCalls++
		return nil, nil
	}
	f.push.SendBatchedPushFunc = func(ctx context.Context, recipientID uint, batch []*notification.Notification) (*notification.PushResult, error) {
		pushCalls++
		return nil, nil
	}

	result, err := uc.Execute(context.Background(), validNotifyRequest())

	require.NoError(t, err)
	require.NotNil(t, result)

	require.Len(t, f.appended, 1)
	entry := f.appended[0]
	assert.Equal(t, vo.DeliveryChannelInApp, entry.Channel())
	assert.Equal(t, vo.DeliveryStatusSkipped, entry.Status())
	require.NotNil(t, entry.Reason())
	assert.Equal(t, "User opted out", *entry.Reason())

	assert.Zero(t, pushCalls)
	assert.Zero(t, activityCalls)
}

func TestNotifyUseCase_Execute_MutedCategorySkipsDelivery(t *testing.T) {
	uc, f := newNotifyFixture(t)

	f.prefs.FindFunc = func(ctx context.Context, recipientID, groupID uint) (*notification.Preferences, error) {
		prefs, err := notification.NewPreferences(recipientID, groupID, true, true,
			map[vo.NotificationType]bool{vo.NotificationTypeTodoNudge: false})
		require.NoError(t, err)
		return prefs, nil
	}

	pushCalls := 0
	f.push.SendPushFunc = func(ctx context.Context, recipientID uint, title, body string, notifType vo.NotificationType, deepLink *string, data map[string]any) (*notification.PushResult, error) {
		pushCalls++
		return nil, nil
	}

	// todo_nudge is muted; an unrelated override must not affect delivery.
	result, err := uc.Execute(context.Background(), validNotifyRequest())

	require.NoError(t, err)
	require.NotNil(t, result)

	require.Len(t, f.appended, 1)
	entry := f.appended[0]
	assert.Equal(t, vo.DeliveryChannelInApp, entry.Channel())
	assert.Equal(t, vo.DeliveryStatusSkipped, entry.Status())
	require.NotNil(t, entry.Reason())
	assert.Equal(t, "User opted out", *entry.Reason())
	assert.Zero(t, pushCalls)

	uc2, f2 := newNotifyFixture(t)
	f2.prefs.FindFunc = func(ctx context.Context, recipientID, groupID uint) (*notification.Preferences, error) {
		prefs, err := notification.NewPreferences(recipientID, groupID, true, true,
			map[vo.NotificationType]bool{vo.NotificationTypeKudosSent: false})
		require.NoError(t, err)
		return prefs, nil
	}
	f2.activity.IsActiveFunc = func(ctx context.Context, recipientID uint, threshold time.Duration) (bool, error) {
		return true, nil
	}

	_, err = uc2.Execute(context.Background(), validNotifyRequest())

	require.NoError(t, err)
	require.Len(t, f2.appended, 1)
	assert.Equal(t, vo.DeliveryStatusSent, f2.appended[0].Status())
}

func TestNotifyUseCase_Execute_ProviderReasonLandsOnSentRow(t *testing.T) {
	uc, f := newNotifyFixture(t)

	f.push.SendPushFunc = func(ctx context.Context, recipientID uint, title, body string, notifType vo.NotificationType, deepLink *string, data map[string]any) (*notification.PushResult, error) {
		return &notification.PushResult{Success: true, Reason: "unreadable gateway ack: invalid character 'n'"}, nil
	}

	_, err := uc.Execute(context.Background(), validNotifyRequest())

	require.NoError(t, err)
	require.Len(t, f.appended, 1)
	entry := f.appended[0]
	assert.Equal(t, vo.DeliveryChannelPush, entry.Channel())
	assert.Equal(t, vo.DeliveryStatusSent, entry.Status())
	assert.Nil(t, entry.ProviderMessageID())
	require.NotNil(t, entry.Reason())
	assert.Contains(t, *entry.Reason(), "unreadable gateway ack")
}

func TestNotifyUseCase_Execute_ThresholdPerType(t *testing.T) {
	tests := []struct {
		notifType string
		expected  time.Duration
	}{
		{"todo_nudge", 60 * time.Second},
		{"event_reminder", 60 * time.Second},
		{"limit_alert", 60 * time.Second},
		{"direct_message", 300 * time.Second},
		{"kudos_sent", 300 * time.Second},
		{"todo_completed", 180 * time.Second},
		{"member_joined", 120 * time.Second},
		{"welcome", 120 * time.Second}, // unlisted type falls back to the default
	}

	for _, tt := range tests {
		t.Run(tt.notifType, func(t *testing.T) {
			uc, f := newNotifyFixture(t)

			var usedThreshold time.Duration
			f.activity.IsActiveFunc = func(ctx context.Context, recipientID uint, threshold time.Duration) (bool, error) {
				usedThreshold = threshold
				return true, nil
			}

			req := validNotifyRequest()
			req.Type = tt.notifType

			_, err := uc.Execute(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, usedThreshold)
		})
	}
}

func TestNotifyUseCase_Execute_ChannelExclusivity(t *testing.T) {
	tests := []struct {
		name        string
		inApp       bool
		push        bool
		active      bool
		wantChannel vo.DeliveryChannel
		wantStatus  vo.DeliveryStatus
	}{
		{"active with in-app", true, true, true, vo.DeliveryChannelInApp, vo.DeliveryStatusSent},
		{"inactive with push", true, true, false, vo.DeliveryChannelPush, vo.DeliveryStatusSent},
		{"active but in-app disabled", false, true, true, vo.DeliveryChannelInApp, vo.DeliveryStatusSkipped},
		{"inactive but push disabled", true, false, false, vo.DeliveryChannelInApp, vo.DeliveryStatusSkipped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, f := newNotifyFixture(t)

			f.prefs.FindFunc = func(ctx context.Context, recipientID, groupID uint) (*notification.Preferences, error) {
				prefs, err := notification.NewPreferences(recipientID, groupID, tt.inApp, tt.push, nil)
				require.NoError(t, err)
				return prefs, nil
			}
			f.activity.IsActiveFunc = func(ctx context.Context, recipientID uint, threshold time.Duration) (bool, error) {
				return tt.active, nil
			}

			_, err := uc.Execute(context.Background(), validNotifyRequest())
			require.NoError(t, err)

			// Exactly one delivery log row per call, never an in-app sent
			// and a push sent for the same notification.
			require.Len(t, f.appended, 1)
			entry := f.appended[0]
			assert.Equal(t, tt.wantChannel, entry.Channel())
			assert.Equal(t, tt.wantStatus, entry.Status())
		})
	}
}

func TestNotifyUseCase_Execute_PushFailureIsolated(t *testing.T) {
	uc, f := newNotifyFixture(t)

	f.push.SendPushFunc = func(ctx context.Context, recipientID uint, title, body string, notifType vo.NotificationType, deepLink *string, data map[string]any) (*notification.PushResult, error) {
		return nil, errors.New("gateway timeout")
	}

	result, err := uc.Execute(context.Background(), validNotifyRequest())

	require.NoError(t, err)
	require.NotNil(t, result)

	require.Len(t, f.appended, 1)
	entry := f.appended[0]
	assert.Equal(t, vo.DeliveryChannelPush, entry.Channel())
	assert.Equal(t, vo.DeliveryStatusFailed, entry.Status())
	require.NotNil(t, entry.Reason())
	assert.Equal(t, "gateway timeout", *entry.Reason())
}

func TestNotifyUseCase_Execute_BatchingCollapses(t *testing.T) {
	uc, f := newNotifyFixture(t)

	actorID := uint(9)
	batchKey := notification.BatchKey(&actorID, vo.NotificationTypeTodoNudge)

	makeNotif := func(id uint) *notification.Notification {
		n, err := notification.ReconstructNotification(
			id, "ntf_x", 1, 2, &actorID,
			vo.NotificationTypeTodoNudge, "Nudge", "Finish the dishes",
			nil, nil, batchKey, nil, nil, time.Now().UTC().Add(-time.Minute),
		)
		require.NoError(t, err)
		return n
	}
	batch := []*notification.Notification{makeNotif(1), makeNotif(2), makeNotif(3)}

	f.inbox.FindByBatchKeySinceFunc = func(ctx context.Context, key string, since time.Time) ([]*notification.Notification, error) {
		assert.Equal(t, batchKey, key)
		return batch, nil
	}

	singleCalls := 0
	f.push.SendPushFunc = func(ctx context.Context, recipientID uint, title, body string, notifType vo.NotificationType, deepLink *string, data map[string]any) (*notification.PushResult, error) {
		singleCalls++
		return &notification.PushResult{Success: true}, nil
	}
	batchCalls := 0
	f.push.SendBatchedPushFunc = func(ctx context.Context, recipientID uint, got []*notification.Notification) (*notification.PushResult, error) {
		batchCalls++
		assert.Len(t, got, 3)
		return &notification.PushResult{MessageID: "msg_batch", Success: true}, nil
	}

	_, err := uc.Execute(context.Background(), validNotifyRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, batchCalls)
	assert.Zero(t, singleCalls)

	// One push log row for the triggering notification only.
	require.Len(t, f.appended, 1)
	entry := f.appended[0]
	assert.Equal(t, vo.DeliveryChannelPush, entry.Channel())
	assert.Equal(t, vo.DeliveryStatusSent, entry.Status())
	require.NotNil(t, entry.ProviderMessageID())
	assert.Equal(t, "msg_batch", *entry.ProviderMessageID())
}

func TestNotifyUseCase_Execute_NoPreferenceNoActivityGoesToPush(t *testing.T) {
	uc, f := newNotifyFixture(t)

	// No preference record and no activity record: fully opted in, inactive.
	f.prefs.FindFunc = func(ctx context.Context, recipientID, groupID uint) (*notification.Preferences, error) {
		return nil, nil
	}
	f.activity.IsActiveFunc = func(ctx context.Context, recipientID uint, threshold time.Duration) (bool, error) {
		return false, nil
	}

	pushCalls := 0
	f.push.SendPushFunc = func(ctx context.Context, recipientID uint, title, body string, notifType vo.NotificationType, deepLink *string, data map[string]any) (*notification.PushResult, error) {
		pushCalls++
		return &notification.PushResult{MessageID: "msg_1", Success: true}, nil
	}

	req := validNotifyRequest()
	req.Type = "welcome"

	result, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 1, pushCalls)

	require.Len(t, f.appended, 1)
	entry := f.appended[0]
	assert.Equal(t, vo.DeliveryChannelPush, entry.Channel())
	assert.Equal(t, vo.DeliveryStatusSent, entry.Status())
}

func TestNotifyUseCase_Execute_ActiveRecipientGetsInApp(t *testing.T) {
	uc, f := newNotifyFixture(t)

	f.activity.IsActiveFunc = func(ctx context.Context, recipientID uint, threshold time.Duration) (bool, error) {
		return true, nil
	}

	pushCalls := 0
	f.push.SendPushFunc = func(ctx context.Context, recipientID uint, title, body string, notifType vo.NotificationType, deepLink *string, data map[string]any) (*notification.PushResult, error) {
		pushCalls++
		return nil, nil
	}
	f.push.SendBatchedPushFunc = func(ctx context.Context, recipientID uint, batch []*notification.Notification) (*notification.PushResult, error) {
		pushCalls++
		return nil, nil
	}

	_, err := uc.Execute(context.Background(), validNotifyRequest())
	require.NoError(t, err)

	assert.Zero(t, pushCalls)
	require.Len(t, f.appended, 1)
	entry := f.appended[0]
	assert.Equal(t, vo.DeliveryChannelInApp, entry.Channel())
	assert.Equal(t, vo.DeliveryStatusSent, entry.Status())
}

func TestNotifyUseCase_Execute_PreferenceReadErrorFallsBackToDefaults(t *testing.T) {
	uc, f := newNotifyFixture(t)

	f.prefs.FindFunc = func(ctx context.Context, recipientID, groupID uint) (*notification.Preferences, error) {
		return nil, errors.New("store unavailable")
	}
	f.activity.IsActiveFunc = func(ctx context.Context, recipientID uint, threshold time.Duration) (bool, error) {
		return true, nil
	}

	result, err := uc.Execute(context.Background(), validNotifyRequest())

	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, f.appended, 1)
	assert.Equal(t, vo.DeliveryStatusSent, f.appended[0].Status())
}

func TestNotifyUseCase_Execute_ActivityReadErrorTreatedAsInactive(t *testing.T) {
	uc, f := newNotifyFixture(t)

	f.activity.IsActiveFunc = func(ctx context.Context, recipientID uint, threshold time.Duration) (bool, error) {
		return false, errors.New("redis down")
	}

	pushCalls := 0
	f.push.SendPushFunc = func(ctx context.Context, recipientID uint, title, body string, notifType vo.NotificationType, deepLink *string, data map[string]any) (*notification.PushResult, error) {
		pushCalls++
		return &notification.PushResult{Success: true}, nil
	}

	_, err := uc.Execute(context.Background(), validNotifyRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, pushCalls)
}

func TestNotifyUseCase_Execute_BatchLookupErrorSendsSinglePush(t *testing.T) {
	uc, f := newNotifyFixture(t)

	f.inbox.FindByBatchKeySinceFunc = func(ctx context.Context, batchKey string, since time.Time) ([]*notification.Notification, error) {
		return nil, errors.New("query failed")
	}

	singleCalls := 0
	f.push.SendPushFunc = func(ctx context.Context, recipientID uint, title, body string, notifType vo.NotificationType, deepLink *string, data map[string]any) (*notification.PushResult, error) {
		singleCalls++
		return &notification.PushResult{Success: true}, nil
	}
	batchCalls := 0
	f.push.SendBatchedPushFunc = func(ctx context.Context, recipientID uint, batch []*notification.Notification) (*notification.PushResult, error) {
		batchCalls++
		return nil, nil
	}

	result, err := uc.Execute(context.Background(), validNotifyRequest())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 1, singleCalls)
	assert.Zero(t, batchCalls)
}

func TestNotifyUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *dto.NotifyRequest)
	}{
		{"missing group", func(req *dto.NotifyRequest) { req.GroupID = 0 }},
		{"missing recipient", func(req *dto.NotifyRequest) { req.RecipientID = 0 }},
		{"missing type", func(req *dto.NotifyRequest) { req.Type = "" }},
		{"missing title", func(req *dto.NotifyRequest) { req.Title = "" }},
		{"missing body", func(req *dto.NotifyRequest) { req.Body = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, f := newNotifyFixture(t)

			created := 0
			f.inbox.CreateFunc = func(ctx context.Context, notif *notification.Notification) error {
				created++
				return notif.SetID(1)
			}

			req := validNotifyRequest()
			tt.mutate(&req)

			result, err := uc.Execute(context.Background(), req)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.Zero(t, created)
		})
	}
}
