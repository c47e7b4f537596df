package mappers

import (
	"fmt"

	"github.com/huddle-inc/huddle/internal/domain/subscription"
	vo "github.com/huddle-inc/huddle/internal/domain/subscription/valueobjects"
	"github.com/huddle-inc/huddle/internal/infrastructure/persistence/models"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) *models.SubscriptionModel
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

// ToEntity keeps unrecognized statuses as stored: the entitlements resolver
// fails closed on anything it does not explicitly grant access for, so
// rejecting them here would turn a fail-closed state into a hard error.
func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := subscription.ReconstructSubscription(
		model.ID,
		model.GroupID,
		vo.SubscriptionStatus(model.Status),
		vo.Tier(model.Tier),
		model.CurrentPeriodEnd,
		model.CancelAtPeriodEnd,
		model.Provider,
		model.ProviderSubscriptionID,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription entity: %w", err)
	}

	return entity, nil
}

func (m *SubscriptionMapperImpl) ToModel(entity *subscription.Subscription) *models.SubscriptionModel {
	if entity == nil {
		return nil
	}

	return &models.SubscriptionModel{
		ID:                     entity.ID(),
		GroupID:                entity.GroupID(),
		Status:                 entity.Status().String(),
		Tier:                   entity.Tier().String(),
		CurrentPeriodEnd:       entity.CurrentPeriodEnd(),
		CancelAtPeriodEnd:      entity.CancelAtPeriodEnd(),
		Provider:               entity.Provider(),
		ProviderSubscriptionID: entity.ProviderSubscriptionID(),
		CreatedAt:              entity.CreatedAt(),
		UpdatedAt:              entity.UpdatedAt(),
	}
}
