package subscription

import (
	"testing"
	"time"

	vo "github.com/huddle-inc/huddle/internal/domain/subscription/valueobjects"
)

const gracePeriod = 7 * 24 * time.Hour

func buildSubscription(t *testing.T, status vo.SubscriptionStatus, periodEnd *time.Time, cancelAtPeriodEnd bool) *Subscription {
	t.Helper()
	sub, err := ReconstructSubscription(
		1, 10, status, vo.TierPro,
		periodEnd, cancelAtPeriodEnd,
		"polar", "sub_abc123",
		time.Now().UTC(), time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("ReconstructSubscription() unexpected error: %v", err)
	}
	return sub
}

func TestSubscription_HasAccessAt(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	daysFromNow := func(days int) *time.Time {
		ts := now.Add(time.Duration(days) * 24 * time.Hour)
		return &ts
	}

	tests := []struct {
		name              string
		status            vo.SubscriptionStatus
		periodEnd         *time.Time
		cancelAtPeriodEnd bool
		expected          bool
	}{
		{"active grants access", vo.StatusActive, daysFromNow(30), false, true},
		{"active without period end still grants access", vo.StatusActive, nil, false, true},
		{"trialing grants access", vo.StatusTrialing, daysFromNow(14), false, true},
		{"past_due inside grace period", vo.StatusPastDue, daysFromNow(-1), false, true},
		{"past_due past grace period", vo.StatusPastDue, daysFromNow(-8), false, false},
		{"past_due without period end fails closed", vo.StatusPastDue, nil, false, false},
		{"canceled with cancel_at_period_end before period end", vo.StatusCanceled, daysFromNow(2), true, true},
		{"canceled with cancel_at_period_end after period end", vo.StatusCanceled, daysFromNow(-1), true, false},
		{"canceled immediately", vo.StatusCanceled, daysFromNow(2), false, false},
		{"canceled without period end fails closed", vo.StatusCanceled, nil, true, false},
		{"expired fails closed", vo.StatusExpired, daysFromNow(30), false, false},
		{"paused fails closed", vo.StatusPaused, daysFromNow(30), false, false},
		{"unrecognized status fails closed", vo.SubscriptionStatus("mystery"), daysFromNow(30), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := buildSubscription(t, tt.status, tt.periodEnd, tt.cancelAtPeriodEnd)
			if got := sub.HasAccessAt(now, gracePeriod); got != tt.expected {
				t.Errorf("HasAccessAt() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSubscription_HasAccessAt_GraceBoundary(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	// Period ended one minute short of the full grace period ago.
	insideEnd := now.Add(-gracePeriod + time.Minute)
	inside := buildSubscription(t, vo.StatusPastDue, &insideEnd, false)
	if !inside.HasAccessAt(now, gracePeriod) {
		t.Error("access should persist until the end of the grace period")
	}

	outsideEnd := now.Add(-gracePeriod - time.Minute)
	outside := buildSubscription(t, vo.StatusPastDue, &outsideEnd, false)
	if outside.HasAccessAt(now, gracePeriod) {
		t.Error("access should lapse once the grace period has passed")
	}
}

func TestNewSubscription_Validation(t *testing.T) {
	if _, err := NewSubscription(0, vo.StatusActive, vo.TierPro, nil, false, "polar", "sub_1"); err == nil {
		t.Error("missing group ID should fail")
	}
	if _, err := NewSubscription(1, vo.SubscriptionStatus("bad"), vo.TierPro, nil, false, "polar", "sub_1"); err == nil {
		t.Error("invalid status should fail")
	}
	if _, err := NewSubscription(1, vo.StatusActive, vo.Tier("bad"), nil, false, "polar", "sub_1"); err == nil {
		t.Error("invalid tier should fail")
	}
}
