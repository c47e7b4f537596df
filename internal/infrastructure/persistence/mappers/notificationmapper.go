package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/huddle-inc/huddle/internal/domain/notification"
	vo "github.com/huddle-inc/huddle/internal/domain/notification/valueobjects"
	"github.com/huddle-inc/huddle/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToEntity(model *models.NotificationModel) (*notification.Notification, error)
	ToModel(entity *notification.Notification) (*models.NotificationModel, error)
	ToEntities(models []*models.NotificationModel) ([]*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToEntity(model *models.NotificationModel) (*notification.Notification, error) {
	if model == nil {
		return nil, nil
	}

	var data map[string]any
	if model.Data != nil {
		if err := json.Unmarshal(model.Data, &data); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notification data: %w", err)
		}
	}

	entity, err := notification.ReconstructNotification(
		model.ID,
		model.SID,
		model.GroupID,
		model.RecipientID,
		model.ActorID,
		vo.NotificationType(model.Type),
		model.Title,
		model.Body,
		model.DeepLink,
		data,
		model.BatchKey,
		model.ReadAt,
		model.ArchivedAt,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct notification entity: %w", err)
	}

	return entity, nil
}

func (m *NotificationMapperImpl) ToModel(entity *notification.Notification) (*models.NotificationModel, error) {
	if entity == nil {
		return nil, nil
	}

	data, err := json.Marshal(entity.Data())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification data: %w", err)
	}

	return &models.NotificationModel{
		ID:          entity.ID(),
		SID:         entity.SID(),
		GroupID:     entity.GroupID(),
		RecipientID: entity.RecipientID(),
		ActorID:     entity.ActorID(),
		Type:        entity.Type().String(),
		Title:       entity.Title(),
		Body:        entity.Body(),
		DeepLink:    entity.DeepLink(),
		Data:        data,
		BatchKey:    entity.BatchKey(),
		ReadAt:      entity.ReadAt(),
		ArchivedAt:  entity.ArchivedAt(),
		CreatedAt:   entity.CreatedAt(),
	}, nil
}

func (m *NotificationMapperImpl) ToEntities(notificationModels []*models.NotificationModel) ([]*notification.Notification, error) {
	if notificationModels == nil {
		return nil, nil
	}

	entities := make([]*notification.Notification, 0, len(notificationModels))
	for _, model := range notificationModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map notification ID %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
