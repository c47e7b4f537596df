package usecases

import (
	"context"

	"github.com/huddle-inc/huddle/internal/application/notification/dto"
	"github.com/huddle-inc/huddle/internal/domain/notification"
	"github.com/huddle-inc/huddle/internal/shared/logger"
)

type ListNotificationsUseCase struct {
	inboxRepo       notification.InboxRepository
	markdownService dto.MarkdownService
	logger          logger.Interface
}

func NewListNotificationsUseCase(
	inboxRepo notification.InboxRepository,
	markdownService dto.MarkdownService,
	logger logger.Interface,
) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		inboxRepo:       inboxRepo,
		markdownService: markdownService,
		logger:          logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, req dto.ListNotificationsRequest) (*dto.ListResponse, error) {
	uc.logger.Infow("executing list notifications use case",
		"recipient_id", req.RecipientID, "group_id", req.GroupID, "status", req.Status)

	unreadOnly := req.Status == "unread"

	notifications, total, err := uc.inboxRepo.ListByRecipient(ctx, req.RecipientID, req.GroupID, unreadOnly, req.Limit, req.Offset)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "recipient_id", req.RecipientID, "error", err)
		return nil, err
	}

	responses, err := dto.ToNotificationResponseList(notifications, uc.markdownService)
	if err != nil {
		uc.logger.Errorw("failed to convert notifications to responses", "error", err)
		return nil, err
	}

	return &dto.ListResponse{
		Items:  responses,
		Total:  total,
		Limit:  req.Limit,
		Offset: req.Offset,
	}, nil
}
