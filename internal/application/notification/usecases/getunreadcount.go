package usecases

import (
	"context"

	"github.com/huddle-inc/huddle/internal/application/notification/dto"
	"github.com/huddle-inc/huddle/internal/domain/notification"
	"github.com/huddle-inc/huddle/internal/shared/logger"
)

type GetUnreadCountUseCase struct {
	inboxRepo notification.InboxRepository
	logger    logger.Interface
}

func NewGetUnreadCountUseCase(inboxRepo notification.InboxRepository, logger logger.Interface) *GetUnreadCountUseCase {
	return &GetUnreadCountUseCase{
		inboxRepo: inboxRepo,
		logger:    logger,
	}
}

func (uc *GetUnreadCountUseCase) Execute(ctx context.Context, recipientID, groupID uint) (*dto.UnreadCountResponse, error) {
	count, err := uc.inboxRepo.CountUnread(ctx, recipientID, groupID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "recipient_id", recipientID, "error", err)
		return nil, err
	}

	return &dto.UnreadCountResponse{Count: count}, nil
}
