package usecases

import (
	"context"
	"fmt"

	"github.com/huddle-inc/huddle/internal/domain/notification"
	"github.com/huddle-inc/huddle/internal/shared/errors"
	"github.com/huddle-inc/huddle/internal/shared/logger"
)

type MarkNotificationAsReadUseCase struct {
	inboxRepo notification.InboxRepository
	logger    logger.Interface
}

func NewMarkNotificationAsReadUseCase(inboxRepo notification.InboxRepository, logger logger.Interface) *MarkNotificationAsReadUseCase {
	return &MarkNotificationAsReadUseCase{
		inboxRepo: inboxRepo,
		logger:    logger,
	}
}

func (uc *MarkNotificationAsReadUseCase) Execute(ctx context.Context, sid string, recipientID uint) error {
	uc.logger.Infow("executing mark notification as read use case", "sid", sid, "recipient_id", recipientID)

	notif, err := uc.inboxRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to find notification", "sid", sid, "error", err)
		return errors.NewNotFoundError("notification not found")
	}

	if notif.RecipientID() != recipientID {
		uc.logger.Warnw("unauthorized access to notification",
			"sid", sid, "recipient_id", recipientID, "owner_id", notif.RecipientID())
		return errors.NewForbiddenError("you don't have permission to access this notification")
	}

	if err := notif.MarkAsRead(); err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	if err := uc.inboxRepo.Update(ctx, notif); err != nil {
		uc.logger.Errorw("failed to persist notification update", "sid", sid, "error", err)
		return fmt.Errorf("failed to save notification: %w", err)
	}

	return nil
}
