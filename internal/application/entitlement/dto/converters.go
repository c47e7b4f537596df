package dto

import (
	"github.com/huddle-inc/huddle/internal/domain/entitlement"
)

func ToTenantEntitlementsResponse(e *entitlement.TenantEntitlements) *TenantEntitlementsResponse {
	if e == nil {
		return nil
	}

	resp := &TenantEntitlementsResponse{
		Tier:      e.Tier.String(),
		HasAccess: e.HasAccess,
		Features:  e.Features,
	}
	if e.Subscription != nil {
		resp.Subscription = &SubscriptionInfoResponse{
			Status:            e.Subscription.Status.String(),
			CurrentPeriodEnd:  e.Subscription.CurrentPeriodEnd,
			CancelAtPeriodEnd: e.Subscription.CancelAtPeriodEnd,
			Provider:          e.Subscription.Provider,
		}
	}
	return resp
}
