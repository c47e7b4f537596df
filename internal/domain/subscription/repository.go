package subscription

import (
	"context"

	vo "github.com/huddle-inc/huddle/internal/domain/subscription/valueobjects"
)

// Repository stores subscription records synced from the billing provider.
type Repository interface {
	Create(ctx context.Context, sub *Subscription) error
	Update(ctx context.Context, sub *Subscription) error

	// FindLatestByGroup returns the most recent subscription for the group
	// whose status is in the given set, or nil without error when none
	// exists.
	FindLatestByGroup(ctx context.Context, groupID uint, statuses []vo.SubscriptionStatus) (*Subscription, error)
}
