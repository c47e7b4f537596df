package usecases

import (
	"context"
	"fmt"

	"github.com/huddle-inc/huddle/internal/domain/notification"
	"github.com/huddle-inc/huddle/internal/shared/logger"
)

type MarkAllAsReadUseCase struct {
	inboxRepo notification.InboxRepository
	logger    logger.Interface
}

func NewMarkAllAsReadUseCase(inboxRepo notification.InboxRepository, logger logger.Interface) *MarkAllAsReadUseCase {
	return &MarkAllAsReadUseCase{
		inboxRepo: inboxRepo,
		logger:    logger,
	}
}

func (uc *MarkAllAsReadUseCase) Execute(ctx context.Context, recipientID, groupID uint) error {
	uc.logger.Infow("executing mark all as read use case", "recipient_id", recipientID, "group_id", groupID)

	if err := uc.inboxRepo.MarkAllAsRead(ctx, recipientID, groupID); err != nil {
		uc.logger.Errorw("failed to mark all notifications as read", "recipient_id", recipientID, "error", err)
		return fmt.Errorf("failed to mark all notifications as read: %w", err)
	}

	return nil
}
