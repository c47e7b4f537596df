package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/huddle-inc/huddle/internal/domain/notification"
	vo "github.com/huddle-inc/huddle/internal/domain/notification/valueobjects"
	"github.com/huddle-inc/huddle/internal/infrastructure/persistence/models"
)

type PreferenceMapper interface {
	ToEntity(model *models.NotificationPreferenceModel) (*notification.Preferences, error)
	ToModel(entity *notification.Preferences) (*models.NotificationPreferenceModel, error)
}

type PreferenceMapperImpl struct{}

func NewPreferenceMapper() PreferenceMapper {
	return &PreferenceMapperImpl{}
}

func (m *PreferenceMapperImpl) ToEntity(model *models.NotificationPreferenceModel) (*notification.Preferences, error) {
	if model == nil {
		return nil, nil
	}

	var overrides map[vo.NotificationType]bool
	if model.CategoryOverrides != nil {
		var raw map[string]bool
		if err := json.Unmarshal(model.CategoryOverrides, &raw); err != nil {
			return nil, fmt.Errorf("failed to unmarshal category overrides: %w", err)
		}
		overrides = make(map[vo.NotificationType]bool, len(raw))
		for name, enabled := range raw {
			overrides[vo.NotificationType(name)] = enabled
		}
	}

	return notification.ReconstructPreferences(
		model.RecipientID,
		model.GroupID,
		model.InAppEnabled,
		model.PushEnabled,
		overrides,
		model.UpdatedAt,
	), nil
}

func (m *PreferenceMapperImpl) ToModel(entity *notification.Preferences) (*models.NotificationPreferenceModel, error) {
	if entity == nil {
		return nil, nil
	}

	raw := make(map[string]bool, len(entity.CategoryOverrides()))
	for t, enabled := range entity.CategoryOverrides() {
		raw[t.String()] = enabled
	}
	overrides, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal category overrides: %w", err)
	}

	return &models.NotificationPreferenceModel{
		RecipientID:       entity.RecipientID(),
		GroupID:           entity.GroupID(),
		InAppEnabled:      entity.InAppEnabled(),
		PushEnabled:       entity.PushEnabled(),
		CategoryOverrides: overrides,
		UpdatedAt:         entity.UpdatedAt(),
	}, nil
}
