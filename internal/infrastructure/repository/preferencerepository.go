package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/huddle-inc/huddle/internal/domain/notification"
	"github.com/huddle-inc/huddle/internal/infrastructure/persistence/mappers"
	"github.com/huddle-inc/huddle/internal/infrastructure/persistence/models"
)

type PreferenceRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PreferenceMapper
}

func NewPreferenceRepository(db *gorm.DB) notification.PreferenceRepository {
	return &PreferenceRepositoryImpl{
		db:     db,
		mapper: mappers.NewPreferenceMapper(),
	}
}

// Find returns nil, nil when no record exists; callers fall back to the
// opt-in defaults.
func (r *PreferenceRepositoryImpl) Find(ctx context.Context, recipientID, groupID uint) (*notification.Preferences, error) {
	var model models.NotificationPreferenceModel

	err := r.db.WithContext(ctx).
		Where("recipient_id = ? AND group_id = ?", recipientID, groupID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find preferences: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PreferenceRepositoryImpl) Upsert(ctx context.Context, prefs *notification.Preferences) error {
	model, err := r.mapper.ToModel(prefs)
	if err != nil {
		return fmt.Errorf("failed to map preferences entity to model: %w", err)
	}

	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "recipient_id"}, {Name: "group_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"in_app_enabled", "push_enabled", "category_overrides", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert preferences: %w", err)
	}

	return nil
}
