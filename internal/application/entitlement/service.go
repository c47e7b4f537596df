package entitlement

import (
	"context"
	"time"

	"github.com/huddle-inc/huddle/internal/application/entitlement/dto"
	"github.com/huddle-inc/huddle/internal/application/entitlement/usecases"
	"github.com/huddle-inc/huddle/internal/domain/subscription"
	"github.com/huddle-inc/huddle/internal/shared/logger"
)

// Service exposes entitlement resolution to the transport layer and to
// middleware gating feature-restricted routes.
type Service struct {
	getEntitlements  *usecases.GetTenantEntitlementsUseCase
	hasFeatureAccess *usecases.HasFeatureAccessUseCase
}

func NewService(
	subscriptionRepo subscription.Repository,
	gracePeriod time.Duration,
	logger logger.Interface,
) *Service {
	getEntitlements := usecases.NewGetTenantEntitlementsUseCase(subscriptionRepo, gracePeriod, logger)

	return &Service{
		getEntitlements:  getEntitlements,
		hasFeatureAccess: usecases.NewHasFeatureAccessUseCase(getEntitlements, logger),
	}
}

func (s *Service) GetTenantEntitlements(ctx context.Context, groupID uint) (*dto.TenantEntitlementsResponse, error) {
	ents, err := s.getEntitlements.Execute(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return dto.ToTenantEntitlementsResponse(ents), nil
}

func (s *Service) HasFeatureAccess(ctx context.Context, groupID uint, feature string) (bool, error) {
	return s.hasFeatureAccess.Execute(ctx, groupID, feature)
}
