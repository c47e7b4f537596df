package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/huddle-inc/huddle/internal/application/notification/dto"
	"github.com/huddle-inc/huddle/internal/domain/notification"
	vo "github.com/huddle-inc/huddle/internal/domain/notification/valueobjects"
	"github.com/huddle-inc/huddle/internal/shared/errors"
	"github.com/huddle-inc/huddle/internal/shared/id"
	"github.com/huddle-inc/huddle/internal/shared/logger"
)

const (
	reasonOptedOut         = "User opted out"
	reasonNoDeliveryMethod = "No delivery method"
)

// NotifyUseCase is the delivery decision engine. It persists the inbox entry
// first, then decides between in-app and push delivery from preferences and
// recipient activity, recording every outcome in the delivery log.
//
// Only the inbox write can fail the call. Everything after that commit point
// degrades: a failed preference read falls back to defaults, a failed
// activity read reads as inactive, a failed batch lookup sends a single
// push, and delivery-log write errors are logged and swallowed.
type NotifyUseCase struct {
	inboxRepo    notification.InboxRepository
	prefRepo     notification.PreferenceRepository
	deliveryRepo notification.DeliveryLogRepository
	activity     notification.ActivityTracker
	push         notification.PushProvider
	batchWindow  time.Duration
	logger       logger.Interface
}

func NewNotifyUseCase(
	inboxRepo notification.InboxRepository,
	prefRepo notification.PreferenceRepository,
	deliveryRepo notification.DeliveryLogRepository,
	activity notification.ActivityTracker,
	push notification.PushProvider,
	batchWindow time.Duration,
	logger logger.Interface,
) *NotifyUseCase {
	return &NotifyUseCase{
		inboxRepo:    inboxRepo,
		prefRepo:     prefRepo,
		deliveryRepo: deliveryRepo,
		activity:     activity,
		push:         push,
		batchWindow:  batchWindow,
		logger:       logger,
	}
}

func (uc *NotifyUseCase) Execute(ctx context.Context, req dto.NotifyRequest) (*notification.Notification, error) {
	uc.logger.Infow("executing notify use case",
		"group_id", req.GroupID, "recipient_id", req.RecipientID, "type", req.Type)

	if req.GroupID == 0 {
		return nil, errors.NewValidationError("group ID is required")
	}
	if req.RecipientID == 0 {
		return nil, errors.NewValidationError("recipient ID is required")
	}

	notifType := vo.NotificationType(req.Type)
	batchKey := notification.BatchKey(req.ActorID, notifType)

	notif, err := notification.NewNotification(
		id.MustGenerateWithPrefix(id.PrefixNotification, id.DefaultLength),
		req.GroupID,
		req.RecipientID,
		req.ActorID,
		notifType,
		req.Title,
		req.Body,
		req.DeepLink,
		req.Data,
		batchKey,
	)
	if err != nil {
		uc.logger.Errorw("invalid notify request", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	// Commit point: from here on the notification exists no matter what
	// happens to delivery.
	if err := uc.inboxRepo.Create(ctx, notif); err != nil {
		uc.logger.Errorw("failed to persist notification",
			"recipient_id", req.RecipientID, "type", req.Type, "error", err)
		return nil, fmt.Errorf("failed to persist notification: %w", err)
	}

	prefs, err := uc.prefRepo.Find(ctx, req.RecipientID, req.GroupID)
	if err != nil {
		uc.logger.Warnw("failed to load preferences, using defaults",
			"recipient_id", req.RecipientID, "error", err)
		prefs = nil
	}
	if prefs == nil {
		prefs = notification.DefaultPreferences(req.RecipientID, req.GroupID)
	}

	// A category override mutes the type across both channels, same as a
	// full opt-out.
	if prefs.OptedOut() || !prefs.AllowsCategory(notifType) {
		uc.appendLog(ctx, notif.ID(), vo.DeliveryChannelInApp, vo.DeliveryStatusSkipped, nil, strPtr(reasonOptedOut))
		return notif, nil
	}

	threshold := notifType.ActivityThreshold()

	active, err := uc.activity.IsActive(ctx, req.RecipientID, threshold)
	if err != nil {
		uc.logger.Warnw("failed to query recipient activity, treating as inactive",
			"recipient_id", req.RecipientID, "error", err)
		active = false
	}

	switch {
	case active && prefs.InAppEnabled():
		uc.appendLog(ctx, notif.ID(), vo.DeliveryChannelInApp, vo.DeliveryStatusSent, nil, nil)
	case !active && prefs.PushEnabled():
		uc.deliverPush(ctx, notif)
	default:
		uc.appendLog(ctx, notif.ID(), vo.DeliveryChannelInApp, vo.DeliveryStatusSkipped, nil, strPtr(reasonNoDeliveryMethod))
	}

	return notif, nil
}

// deliverPush sends either one batched push covering every recent
// notification sharing the batch key, or a single push with this
// notification's own fields. Either way exactly one delivery log row is
// written, for the triggering notification.
func (uc *NotifyUseCase) deliverPush(ctx context.Context, notif *notification.Notification) {
	since := time.Now().UTC().Add(-uc.batchWindow)

	batch, err := uc.inboxRepo.FindByBatchKeySince(ctx, notif.BatchKey(), since)
	if err != nil {
		uc.logger.Warnw("failed to load batch, sending single push",
			"batch_key", notif.BatchKey(), "error", err)
		batch = nil
	}

	var result *notification.PushResult
	if len(batch) > 1 {
		result, err = uc.push.SendBatchedPush(ctx, notif.RecipientID(), batch)
	} else {
		result, err = uc.push.SendPush(ctx, notif.RecipientID(), notif.Title(), notif.Body(), notif.Type(), notif.DeepLink(), notif.Data())
	}

	if err != nil {
		uc.logger.Warnw("push provider failed",
			"notification_id", notif.ID(), "recipient_id", notif.RecipientID(), "error", err)
		uc.appendLog(ctx, notif.ID(), vo.DeliveryChannelPush, vo.DeliveryStatusFailed, nil, strPtr(err.Error()))
		return
	}

	var messageID, reason *string
	if result != nil {
		if result.MessageID != "" {
			messageID = &result.MessageID
		}
		if result.Reason != "" {
			reason = &result.Reason
		}
	}
	uc.appendLog(ctx, notif.ID(), vo.DeliveryChannelPush, vo.DeliveryStatusSent, messageID, reason)
}

func (uc *NotifyUseCase) appendLog(
	ctx context.Context,
	notificationID uint,
	channel vo.DeliveryChannel,
	status vo.DeliveryStatus,
	providerMessageID *string,
	reason *string,
) {
	entry, err := notification.NewDeliveryLog(
		id.MustGenerateWithPrefix(id.PrefixDeliveryLog, id.DefaultLength),
		notificationID,
		channel,
		status,
		providerMessageID,
		reason,
	)
	if err != nil {
		uc.logger.Errorw("failed to build delivery log entry",
			"notification_id", notificationID, "error", err)
		return
	}

	if err := uc.deliveryRepo.Append(ctx, entry); err != nil {
		uc.logger.Errorw("failed to append delivery log entry",
			"notification_id", notificationID, "channel", channel.String(), "status", status.String(), "error", err)
	}
}

func strPtr(s string) *string {
	return &s
}
