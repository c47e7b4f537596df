package valueobjects

type SubscriptionStatus string

const (
	StatusActive   SubscriptionStatus = "active"
	StatusTrialing SubscriptionStatus = "trialing"
	StatusPastDue  SubscriptionStatus = "past_due"
	StatusCanceled SubscriptionStatus = "canceled"
	StatusExpired  SubscriptionStatus = "expired"
	StatusPaused   SubscriptionStatus = "paused"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

var ValidStatuses = map[SubscriptionStatus]bool{
	StatusActive:   true,
	StatusTrialing: true,
	StatusPastDue:  true,
	StatusCanceled: true,
	StatusExpired:  true,
	StatusPaused:   true,
}

func (s SubscriptionStatus) IsValid() bool {
	return ValidStatuses[s]
}

// ResolvableStatuses are the statuses the entitlements resolver considers
// when picking the most recent subscription row. Anything else is ignored
// at lookup time and resolves to the free tier.
var ResolvableStatuses = []SubscriptionStatus{
	StatusActive,
	StatusTrialing,
	StatusPastDue,
	StatusCanceled,
}
