package notification

import (
	"context"
	"time"

	"github.com/huddle-inc/huddle/internal/application/notification/dto"
	"github.com/huddle-inc/huddle/internal/application/notification/usecases"
	domain "github.com/huddle-inc/huddle/internal/domain/notification"
	"github.com/huddle-inc/huddle/internal/shared/logger"
)

// Service wires the notification use cases together behind one facade for
// the transport layer and other bounded contexts.
type Service struct {
	logger          logger.Interface
	markdownService dto.MarkdownService

	notify            *usecases.NotifyUseCase
	notifyMany        *usecases.NotifyManyUseCase
	recordActivity    *usecases.RecordActivityUseCase
	listNotifications *usecases.ListNotificationsUseCase
	getUnreadCount    *usecases.GetUnreadCountUseCase
	markAsRead        *usecases.MarkNotificationAsReadUseCase
	markAllAsRead     *usecases.MarkAllAsReadUseCase
	archive           *usecases.ArchiveNotificationUseCase
	getPreferences    *usecases.GetPreferencesUseCase
	updatePreferences *usecases.UpdatePreferencesUseCase
}

func NewService(
	inboxRepo domain.InboxRepository,
	prefRepo domain.PreferenceRepository,
	deliveryRepo domain.DeliveryLogRepository,
	activity domain.ActivityTracker,
	push domain.PushProvider,
	batchWindow time.Duration,
	markdownService dto.MarkdownService,
	logger logger.Interface,
) *Service {
	notify := usecases.NewNotifyUseCase(inboxRepo, prefRepo, deliveryRepo, activity, push, batchWindow, logger)

	return &Service{
		logger:          logger,
		markdownService: markdownService,

		notify:            notify,
		notifyMany:        usecases.NewNotifyManyUseCase(notify, logger),
		recordActivity:    usecases.NewRecordActivityUseCase(activity, logger),
		listNotifications: usecases.NewListNotificationsUseCase(inboxRepo, markdownService, logger),
		getUnreadCount:    usecases.NewGetUnreadCountUseCase(inboxRepo, logger),
		markAsRead:        usecases.NewMarkNotificationAsReadUseCase(inboxRepo, logger),
		markAllAsRead:     usecases.NewMarkAllAsReadUseCase(inboxRepo, logger),
		archive:           usecases.NewArchiveNotificationUseCase(inboxRepo, logger),
		getPreferences:    usecases.NewGetPreferencesUseCase(prefRepo, logger),
		updatePreferences: usecases.NewUpdatePreferencesUseCase(prefRepo, logger),
	}
}

func (s *Service) Notify(ctx context.Context, req dto.NotifyRequest) (*dto.NotificationResponse, error) {
	notif, err := s.notify.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	return dto.ToNotificationResponse(notif, s.markdownService)
}

func (s *Service) NotifyMany(ctx context.Context, req dto.NotifyManyRequest) (*dto.NotifyManyResponse, error) {
	result, err := s.notifyMany.Execute(ctx, req)
	if err != nil {
		return nil, err
	}

	delivered, err := dto.ToNotificationResponseList(result.Delivered, s.markdownService)
	if err != nil {
		return nil, err
	}

	return &dto.NotifyManyResponse{
		Delivered: delivered,
		Failed:    result.Failed,
	}, nil
}

func (s *Service) RecordActivity(ctx context.Context, recipientID uint) error {
	return s.recordActivity.Execute(ctx, recipientID)
}

func (s *Service) ListNotifications(ctx context.Context, req dto.ListNotificationsRequest) (*dto.ListResponse, error) {
	return s.listNotifications.Execute(ctx, req)
}

func (s *Service) GetUnreadCount(ctx context.Context, recipientID, groupID uint) (*dto.UnreadCountResponse, error) {
	return s.getUnreadCount.Execute(ctx, recipientID, groupID)
}

func (s *Service) MarkAsRead(ctx context.Context, sid string, recipientID uint) error {
	return s.markAsRead.Execute(ctx, sid, recipientID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, recipientID, groupID uint) error {
	return s.markAllAsRead.Execute(ctx, recipientID, groupID)
}

func (s *Service) Archive(ctx context.Context, sid string, recipientID uint) error {
	return s.archive.Execute(ctx, sid, recipientID)
}

func (s *Service) GetPreferences(ctx context.Context, recipientID, groupID uint) (*dto.PreferencesResponse, error) {
	return s.getPreferences.Execute(ctx, recipientID, groupID)
}

func (s *Service) UpdatePreferences(ctx context.Context, recipientID, groupID uint, req dto.UpdatePreferencesRequest) (*dto.PreferencesResponse, error) {
	return s.updatePreferences.Execute(ctx, recipientID, groupID, req)
}
