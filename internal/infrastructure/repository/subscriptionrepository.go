package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/huddle-inc/huddle/internal/domain/subscription"
	vo "github.com/huddle-inc/huddle/internal/domain/subscription/valueobjects"
	"github.com/huddle-inc/huddle/internal/infrastructure/persistence/mappers"
	"github.com/huddle-inc/huddle/internal/infrastructure/persistence/models"
	"github.com/huddle-inc/huddle/internal/shared/errors"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
}

func NewSubscriptionRepository(db *gorm.DB) subscription.Repository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, sub *subscription.Subscription) error {
	model := r.mapper.ToModel(sub)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := sub.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set subscription ID: %w", err)
	}

	return nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, sub *subscription.Subscription) error {
	model := r.mapper.ToModel(sub)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("subscription not found")
	}

	return nil
}

// FindLatestByGroup returns nil, nil when the group has no subscription in
// the given statuses; the resolver maps that to the free tier.
func (r *SubscriptionRepositoryImpl) FindLatestByGroup(ctx context.Context, groupID uint, statuses []vo.SubscriptionStatus) (*subscription.Subscription, error) {
	statusStrings := make([]string, 0, len(statuses))
	for _, s := range statuses {
		statusStrings = append(statusStrings, s.String())
	}

	var model models.SubscriptionModel
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND status IN ?", groupID, statusStrings).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find subscription by group: %w", err)
	}

	return r.mapper.ToEntity(&model)
}
