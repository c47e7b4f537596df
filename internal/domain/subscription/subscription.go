package subscription

import (
	"fmt"
	"time"

	vo "github.com/huddle-inc/huddle/internal/domain/subscription/valueobjects"
)

// Subscription is the billing-provider-synced subscription record for a
// group. The entitlements resolver reads the most recent row per group; it
// never trusts the nominal tier without checking the status and period.
type Subscription struct {
	id                     uint
	groupID                uint
	status                 vo.SubscriptionStatus
	tier                   vo.Tier
	currentPeriodEnd       *time.Time
	cancelAtPeriodEnd      bool
	provider               string
	providerSubscriptionID string
	createdAt              time.Time
	updatedAt              time.Time
}

func NewSubscription(
	groupID uint,
	status vo.SubscriptionStatus,
	tier vo.Tier,
	currentPeriodEnd *time.Time,
	cancelAtPeriodEnd bool,
	provider string,
	providerSubscriptionID string,
) (*Subscription, error) {
	if groupID == 0 {
		return nil, fmt.Errorf("group ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("invalid tier: %s", tier)
	}

	now := time.Now().UTC()
	return &Subscription{
		groupID:                groupID,
		status:                 status,
		tier:                   tier,
		currentPeriodEnd:       currentPeriodEnd,
		cancelAtPeriodEnd:      cancelAtPeriodEnd,
		provider:               provider,
		providerSubscriptionID: providerSubscriptionID,
		createdAt:              now,
		updatedAt:              now,
	}, nil
}

// ReconstructSubscription rebuilds a subscription from persistence. The
// status is taken as stored even when unrecognized: the resolver fails
// closed on anything it does not explicitly grant access for.
func ReconstructSubscription(
	id uint,
	groupID uint,
	status vo.SubscriptionStatus,
	tier vo.Tier,
	currentPeriodEnd *time.Time,
	cancelAtPeriodEnd bool,
	provider string,
	providerSubscriptionID string,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if groupID == 0 {
		return nil, fmt.Errorf("group ID is required")
	}

	return &Subscription{
		id:                     id,
		groupID:                groupID,
		status:                 status,
		tier:                   tier,
		currentPeriodEnd:       currentPeriodEnd,
		cancelAtPeriodEnd:      cancelAtPeriodEnd,
		provider:               provider,
		providerSubscriptionID: providerSubscriptionID,
		createdAt:              createdAt,
		updatedAt:              updatedAt,
	}, nil
}

func (s *Subscription) ID() uint {
	return s.id
}

func (s *Subscription) GroupID() uint {
	return s.groupID
}

func (s *Subscription) Status() vo.SubscriptionStatus {
	return s.status
}

func (s *Subscription) Tier() vo.Tier {
	return s.tier
}

func (s *Subscription) CurrentPeriodEnd() *time.Time {
	return s.currentPeriodEnd
}

func (s *Subscription) CancelAtPeriodEnd() bool {
	return s.cancelAtPeriodEnd
}

func (s *Subscription) Provider() string {
	return s.provider
}

func (s *Subscription) ProviderSubscriptionID() string {
	return s.providerSubscriptionID
}

func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

// SetID sets the subscription ID (only for persistence layer use)
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// HasAccessAt evaluates whether this subscription grants paid access at the
// reference time. The switch has no access-granting default: any status not
// explicitly matched resolves to no access.
func (s *Subscription) HasAccessAt(now time.Time, gracePeriod time.Duration) bool {
	switch s.status {
	case vo.StatusActive, vo.StatusTrialing:
		return true
	case vo.StatusPastDue:
		// Missing period end fails closed.
		if s.currentPeriodEnd == nil {
			return false
		}
		return now.Before(s.currentPeriodEnd.Add(gracePeriod))
	case vo.StatusCanceled:
		if !s.cancelAtPeriodEnd || s.currentPeriodEnd == nil {
			return false
		}
		return now.Before(*s.currentPeriodEnd)
	default:
		return false
	}
}
