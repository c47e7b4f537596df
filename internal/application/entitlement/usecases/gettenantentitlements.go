package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/huddle-inc/huddle/internal/domain/entitlement"
	"github.com/huddle-inc/huddle/internal/domain/subscription"
	vo "github.com/huddle-inc/huddle/internal/domain/subscription/valueobjects"
	"github.com/huddle-inc/huddle/internal/shared/errors"
	"github.com/huddle-inc/huddle/internal/shared/logger"
)

// GetTenantEntitlementsUseCase resolves what a group is actually entitled to
// from its newest subscription record. Resolution is fail closed: any status
// outside the explicitly access-granting ones, and any missing period end
// where one is required, yields the free tier regardless of the nominal tier
// stored on the record.
type GetTenantEntitlementsUseCase struct {
	subscriptionRepo subscription.Repository
	gracePeriod      time.Duration
	logger           logger.Interface
}

func NewGetTenantEntitlementsUseCase(
	subscriptionRepo subscription.Repository,
	gracePeriod time.Duration,
	logger logger.Interface,
) *GetTenantEntitlementsUseCase {
	return &GetTenantEntitlementsUseCase{
		subscriptionRepo: subscriptionRepo,
		gracePeriod:      gracePeriod,
		logger:           logger,
	}
}

func (uc *GetTenantEntitlementsUseCase) Execute(ctx context.Context, groupID uint) (*entitlement.TenantEntitlements, error) {
	if groupID == 0 {
		return nil, errors.NewValidationError("group ID is required")
	}

	sub, err := uc.subscriptionRepo.FindLatestByGroup(ctx, groupID, vo.ResolvableStatuses)
	if err != nil {
		uc.logger.Errorw("failed to load subscription", "group_id", groupID, "error", err)
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}

	if sub == nil {
		return entitlement.FreeTier(), nil
	}

	now := time.Now().UTC()
	if !sub.HasAccessAt(now, uc.gracePeriod) {
		uc.logger.Debugw("subscription grants no access, resolving to free tier",
			"group_id", groupID, "status", sub.Status().String(), "tier", sub.Tier().String())
		return entitlement.FreeTier(), nil
	}

	return entitlement.PaidTier(sub.Tier(), &entitlement.SubscriptionInfo{
		Status:            sub.Status(),
		CurrentPeriodEnd:  sub.CurrentPeriodEnd(),
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd(),
		Provider:          sub.Provider(),
	}), nil
}
