// Package entitlement defines the resolved feature/tier state a group
// currently has access to, independent of what its subscription record
// nominally claims.
package entitlement

import (
	"time"

	vo "github.com/huddle-inc/huddle/internal/domain/subscription/valueobjects"
)

// Feature names. Values in a feature map are either bool capabilities or
// numeric caps, where -1 is the unlimited sentinel.
const (
	FeatureMaxGroups          = "maxGroups"
	FeatureMaxMembersPerGroup = "maxMembersPerGroup"
	FeatureMaxTodosPerGroup   = "maxTodosPerGroup"
	FeatureHistoryDays        = "historyDays"
	FeatureAdsEnabled         = "adsEnabled"
	FeatureCustomThemes       = "customThemes"
	FeaturePrioritySupport    = "prioritySupport"
	FeatureSurveys            = "surveys"
)

// Unlimited is the sentinel for numeric caps with no limit.
const Unlimited = -1

// SubscriptionInfo carries raw subscription detail for caller display when
// a paid subscription exists.
type SubscriptionInfo struct {
	Status            vo.SubscriptionStatus `json:"status"`
	CurrentPeriodEnd  *time.Time            `json:"current_period_end,omitempty"`
	CancelAtPeriodEnd bool                  `json:"cancel_at_period_end"`
	Provider          string                `json:"provider,omitempty"`
}

// TenantEntitlements is derived on every call from the group's newest
// subscription record and never cached by the resolver; the invariant is
// that Features are exactly the free set whenever HasAccess is false, no
// matter what tier the stored subscription claims.
type TenantEntitlements struct {
	Tier         vo.Tier           `json:"tier"`
	HasAccess    bool              `json:"has_access"`
	Features     map[string]any    `json:"features"`
	Subscription *SubscriptionInfo `json:"subscription,omitempty"`
}

// FreeTier returns the entitlements of a group with no (effective) paid
// subscription.
func FreeTier() *TenantEntitlements {
	return &TenantEntitlements{
		Tier:      vo.TierFree,
		HasAccess: false,
		Features:  FreeFeatures(),
	}
}

// PaidTier returns the entitlements for an access-granting subscription,
// enriched with the raw subscription info for display purposes.
func PaidTier(tier vo.Tier, info *SubscriptionInfo) *TenantEntitlements {
	return &TenantEntitlements{
		Tier:         tier,
		HasAccess:    true,
		Features:     PaidFeatures(),
		Subscription: info,
	}
}

// FreeFeatures returns a fresh copy of the free-tier feature map.
func FreeFeatures() map[string]any {
	return map[string]any{
		FeatureMaxGroups:          1,
		FeatureMaxMembersPerGroup: 10,
		FeatureMaxTodosPerGroup:   50,
		FeatureHistoryDays:        30,
		FeatureAdsEnabled:         true,
		FeatureCustomThemes:       false,
		FeaturePrioritySupport:    false,
		FeatureSurveys:            false,
	}
}

// PaidFeatures returns a fresh copy of the paid-tier feature map.
func PaidFeatures() map[string]any {
	return map[string]any{
		FeatureMaxGroups:          Unlimited,
		FeatureMaxMembersPerGroup: Unlimited,
		FeatureMaxTodosPerGroup:   Unlimited,
		FeatureHistoryDays:        Unlimited,
		FeatureAdsEnabled:         false,
		FeatureCustomThemes:       true,
		FeaturePrioritySupport:    true,
		FeatureSurveys:            true,
	}
}

// HasFeature evaluates one named feature against this entitlement set.
// Numeric caps count as available when unlimited (-1) or positive. The
// adsEnabled flag is inverted: having the feature means ads are NOT shown.
// Other bools are taken at face value; unknown features resolve to false.
func (e *TenantEntitlements) HasFeature(name string) bool {
	value, ok := e.Features[name]
	if !ok {
		return false
	}

	switch v := value.(type) {
	case int:
		return v == Unlimited || v > 0
	case int64:
		return v == Unlimited || v > 0
	case float64:
		return v == Unlimited || v > 0
	case bool:
		if name == FeatureAdsEnabled {
			return !v
		}
		return v
	default:
		return false
	}
}
