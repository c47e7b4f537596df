package mappers

import (
	"fmt"

	"github.com/huddle-inc/huddle/internal/domain/notification"
	vo "github.com/huddle-inc/huddle/internal/domain/notification/valueobjects"
	"github.com/huddle-inc/huddle/internal/infrastructure/persistence/models"
)

type DeliveryLogMapper interface {
	ToEntity(model *models.DeliveryLogModel) (*notification.DeliveryLog, error)
	ToModel(entity *notification.DeliveryLog) *models.DeliveryLogModel
	ToEntities(models []*models.DeliveryLogModel) ([]*notification.DeliveryLog, error)
}

type DeliveryLogMapperImpl struct{}

func NewDeliveryLogMapper() DeliveryLogMapper {
	return &DeliveryLogMapperImpl{}
}

func (m *DeliveryLogMapperImpl) ToEntity(model *models.DeliveryLogModel) (*notification.DeliveryLog, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := notification.ReconstructDeliveryLog(
		model.ID,
		model.SID,
		model.NotificationID,
		vo.DeliveryChannel(model.Channel),
		vo.DeliveryStatus(model.Status),
		model.ProviderMessageID,
		model.Reason,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct delivery log entity: %w", err)
	}

	return entity, nil
}

func (m *DeliveryLogMapperImpl) ToModel(entity *notification.DeliveryLog) *models.DeliveryLogModel {
	if entity == nil {
		return nil
	}

	return &models.DeliveryLogModel{
		ID:                entity.ID(),
		SID:               entity.SID(),
		NotificationID:    entity.NotificationID(),
		Channel:           entity.Channel().String(),
		Status:            entity.Status().String(),
		ProviderMessageID: entity.ProviderMessageID(),
		Reason:            entity.Reason(),
		CreatedAt:         entity.CreatedAt(),
	}
}

func (m *DeliveryLogMapperImpl) ToEntities(logModels []*models.DeliveryLogModel) ([]*notification.DeliveryLog, error) {
	if logModels == nil {
		return nil, nil
	}

	entities := make([]*notification.DeliveryLog, 0, len(logModels))
	for _, model := range logModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map delivery log ID %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
