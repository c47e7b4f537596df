package dto

import (
	"time"
)

type SubscriptionInfoResponse struct {
	Status            string     `json:"status"`
	CurrentPeriodEnd  *time.Time `json:"current_period_end,omitempty"`
	CancelAtPeriodEnd bool       `json:"cancel_at_period_end"`
	Provider          string     `json:"provider,omitempty"`
}

type TenantEntitlementsResponse struct {
	Tier         string                    `json:"tier"`
	HasAccess    bool                      `json:"has_access"`
	Features     map[string]any            `json:"features"`
	Subscription *SubscriptionInfoResponse `json:"subscription,omitempty"`
}

type FeatureAccessResponse struct {
	Feature   string `json:"feature"`
	HasAccess bool   `json:"has_access"`
}
