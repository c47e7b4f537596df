package usecases

import (
	"context"

	"github.com/huddle-inc/huddle/internal/shared/errors"
	"github.com/huddle-inc/huddle/internal/shared/logger"
)

// HasFeatureAccessUseCase answers a single feature question by resolving the
// group's entitlements and evaluating the named feature against them.
type HasFeatureAccessUseCase struct {
	getEntitlements *GetTenantEntitlementsUseCase
	logger          logger.Interface
}

func NewHasFeatureAccessUseCase(getEntitlements *GetTenantEntitlementsUseCase, logger logger.Interface) *HasFeatureAccessUseCase {
	return &HasFeatureAccessUseCase{
		getEntitlements: getEntitlements,
		logger:          logger,
	}
}

func (uc *HasFeatureAccessUseCase) Execute(ctx context.Context, groupID uint, feature string) (bool, error) {
	if feature == "" {
		return false, errors.NewValidationError("feature name is required")
	}

	ents, err := uc.getEntitlements.Execute(ctx, groupID)
	if err != nil {
		return false, err
	}

	return ents.HasFeature(feature), nil
}
