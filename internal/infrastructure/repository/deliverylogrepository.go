package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/huddle-inc/huddle/internal/domain/notification"
	"github.com/huddle-inc/huddle/internal/infrastructure/persistence/mappers"
	"github.com/huddle-inc/huddle/internal/infrastructure/persistence/models"
)

type DeliveryLogRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DeliveryLogMapper
}

func NewDeliveryLogRepository(db *gorm.DB) notification.DeliveryLogRepository {
	return &DeliveryLogRepositoryImpl{
		db:     db,
		mapper: mappers.NewDeliveryLogMapper(),
	}
}

func (r *DeliveryLogRepositoryImpl) Append(ctx context.Context, entry *notification.DeliveryLog) error {
	model := r.mapper.ToModel(entry)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append delivery log: %w", err)
	}

	if err := entry.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set delivery log ID: %w", err)
	}

	return nil
}

func (r *DeliveryLogRepositoryImpl) ListByNotification(ctx context.Context, notificationID uint) ([]*notification.DeliveryLog, error) {
	var modelList []*models.DeliveryLogModel

	err := r.db.WithContext(ctx).
		Where("notification_id = ?", notificationID).
		Order("created_at ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list delivery logs: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *DeliveryLogRepositoryImpl) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&models.DeliveryLogModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to prune delivery logs: %w", result.Error)
	}

	return result.RowsAffected, nil
}
