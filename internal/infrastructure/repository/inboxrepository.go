package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/huddle-inc/huddle/internal/domain/notification"
	"github.com/huddle-inc/huddle/internal/infrastructure/persistence/mappers"
	"github.com/huddle-inc/huddle/internal/infrastructure/persistence/models"
	"github.com/huddle-inc/huddle/internal/shared/errors"
)

type InboxRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewInboxRepository(db *gorm.DB) notification.InboxRepository {
	return &InboxRepositoryImpl{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *InboxRepositoryImpl) Create(ctx context.Context, notif *notification.Notification) error {
	model, err := r.mapper.ToModel(notif)
	if err != nil {
		return fmt.Errorf("failed to map notification entity to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	if err := notif.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set notification ID: %w", err)
	}

	return nil
}

func (r *InboxRepositoryImpl) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("notification not found")
		}
		return nil, fmt.Errorf("failed to get notification by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *InboxRepositoryImpl) GetBySID(ctx context.Context, sid string) (*notification.Notification, error) {
	var model models.NotificationModel

	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("notification not found")
		}
		return nil, fmt.Errorf("failed to get notification by SID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *InboxRepositoryImpl) Update(ctx context.Context, notif *notification.Notification) error {
	model, err := r.mapper.ToModel(notif)
	if err != nil {
		return fmt.Errorf("failed to map notification entity to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("notification not found")
	}

	return nil
}

func (r *InboxRepositoryImpl) ListByRecipient(ctx context.Context, recipientID, groupID uint, unreadOnly bool, limit, offset int) ([]*notification.Notification, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("recipient_id = ? AND group_id = ? AND archived_at IS NULL", recipientID, groupID)

	if unreadOnly {
		query = query.Where("read_at IS NULL")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var modelList []*models.NotificationModel
	query = query.Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map notification models to entities: %w", err)
	}

	return entities, total, nil
}

func (r *InboxRepositoryImpl) CountUnread(ctx context.Context, recipientID, groupID uint) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("recipient_id = ? AND group_id = ? AND read_at IS NULL AND archived_at IS NULL", recipientID, groupID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

func (r *InboxRepositoryImpl) MarkAllAsRead(ctx context.Context, recipientID, groupID uint) error {
	err := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("recipient_id = ? AND group_id = ? AND read_at IS NULL", recipientID, groupID).
		Update("read_at", time.Now().UTC()).Error
	if err != nil {
		return fmt.Errorf("failed to mark all notifications as read: %w", err)
	}

	return nil
}

func (r *InboxRepositoryImpl) FindByBatchKeySince(ctx context.Context, batchKey string, since time.Time) ([]*notification.Notification, error) {
	var modelList []*models.NotificationModel

	err := r.db.WithContext(ctx).
		Where("batch_key = ? AND created_at >= ?", batchKey, since).
		Order("created_at ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find notifications by batch key: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}
