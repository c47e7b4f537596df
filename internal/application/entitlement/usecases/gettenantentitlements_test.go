package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huddle-inc/huddle/internal/domain/entitlement"
	"github.com/huddle-inc/huddle/internal/domain/subscription"
	vo "github.com/huddle-inc/huddle/internal/domain/subscription/valueobjects"
)

const testGracePeriod = 7 * 24 * time.Hour

func subWithStatus(t *testing.T, status vo.SubscriptionStatus, periodEnd *time.Time, cancelAtPeriodEnd bool) *subscription.Subscription {
	t.Helper()
	sub, err := subscription.ReconstructSubscription(
		1, 1, status, vo.TierPro, periodEnd, cancelAtPeriodEnd,
		"polar", "sub_123", time.Now().UTC(), time.Now().UTC(),
	)
	require.NoError(t, err)
	return sub
}

func newResolver(repo *mockSubscriptionRepository) *GetTenantEntitlementsUseCase {
	return NewGetTenantEntitlementsUseCase(repo, testGracePeriod, &mockLogger{})
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestGetTenantEntitlementsUseCase_Execute_NoSubscription(t *testing.T) {
	repo := &mockSubscriptionRepository{}
	uc := newResolver(repo)

	ents, err := uc.Execute(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, vo.TierFree, ents.Tier)
	assert.False(t, ents.HasAccess)
	assert.Nil(t, ents.Subscription)
}

func TestGetTenantEntitlementsUseCase_Execute_ActiveSubscription(t *testing.T) {
	repo := &mockSubscriptionRepository{
		FindLatestByGroupFunc: func(ctx context.Context, groupID uint, statuses []vo.SubscriptionStatus) (*subscription.Subscription, error) {
			assert.Equal(t, vo.ResolvableStatuses, statuses)
			return subWithStatus(t, vo.StatusActive, nil, false), nil
		},
	}
	uc := newResolver(repo)

	ents, err := uc.Execute(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, vo.TierPro, ents.Tier)
	assert.True(t, ents.HasAccess)
	require.NotNil(t, ents.Subscription)
	assert.Equal(t, vo.StatusActive, ents.Subscription.Status)
	assert.Equal(t, "polar", ents.Subscription.Provider)
	assert.True(t, ents.HasFeature(entitlement.FeatureCustomThemes))
}

func TestGetTenantEntitlementsUseCase_Execute_PastDueNilPeriodEndFailsClosed(t *testing.T) {
	repo := &mockSubscriptionRepository{
		FindLatestByGroupFunc: func(ctx context.Context, groupID uint, statuses []vo.SubscriptionStatus) (*subscription.Subscription, error) {
			return subWithStatus(t, vo.StatusPastDue, nil, false), nil
		},
	}
	uc := newResolver(repo)

	ents, err := uc.Execute(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, vo.TierFree, ents.Tier)
	assert.False(t, ents.HasAccess)
	// Free features exactly, despite the stored pro tier.
	assert.Equal(t, entitlement.FreeFeatures(), ents.Features)
}

func TestGetTenantEntitlementsUseCase_Execute_PastDueGracePeriod(t *testing.T) {
	tests := []struct {
		name       string
		periodEnd  time.Time
		wantAccess bool
	}{
		{"one day past due, within grace", time.Now().UTC().Add(-24 * time.Hour), true},
		{"eight days past due, grace expired", time.Now().UTC().Add(-8 * 24 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockSubscriptionRepository{
				FindLatestByGroupFunc: func(ctx context.Context, groupID uint, statuses []vo.SubscriptionStatus) (*subscription.Subscription, error) {
					return subWithStatus(t, vo.StatusPastDue, timePtr(tt.periodEnd), false), nil
				},
			}
			uc := newResolver(repo)

			ents, err := uc.Execute(context.Background(), 1)

			require.NoError(t, err)
			assert.Equal(t, tt.wantAccess, ents.HasAccess)
			if tt.wantAccess {
				assert.Equal(t, vo.TierPro, ents.Tier)
			} else {
				assert.Equal(t, vo.TierFree, ents.Tier)
			}
		})
	}
}

func TestGetTenantEntitlementsUseCase_Execute_CanceledSubscription(t *testing.T) {
	tests := []struct {
		name              string
		periodEnd         *time.Time
		cancelAtPeriodEnd bool
		wantAccess        bool
	}{
		{"cancel at period end, period still running", timePtr(time.Now().UTC().Add(48 * time.Hour)), true, true},
		{"cancel at period end, period over", timePtr(time.Now().UTC().Add(-time.Minute)), true, false},
		{"immediate cancel", timePtr(time.Now().UTC().Add(48 * time.Hour)), false, false},
		{"cancel at period end without period end", nil, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockSubscriptionRepository{
				FindLatestByGroupFunc: func(ctx context.Context, groupID uint, statuses []vo.SubscriptionStatus) (*subscription.Subscription, error) {
					return subWithStatus(t, vo.StatusCanceled, tt.periodEnd, tt.cancelAtPeriodEnd), nil
				},
			}
			uc := newResolver(repo)

			ents, err := uc.Execute(context.Background(), 1)

			require.NoError(t, err)
			assert.Equal(t, tt.wantAccess, ents.HasAccess)
		})
	}
}

func TestGetTenantEntitlementsUseCase_Execute_UnrecognizedStatusFailsClosed(t *testing.T) {
	repo := &mockSubscriptionRepository{
		FindLatestByGroupFunc: func(ctx context.Context, groupID uint, statuses []vo.SubscriptionStatus) (*subscription.Subscription, error) {
			return subWithStatus(t, vo.SubscriptionStatus("fraud_review"), timePtr(time.Now().UTC().Add(time.Hour)), false), nil
		},
	}
	uc := newResolver(repo)

	ents, err := uc.Execute(context.Background(), 1)

	require.NoError(t, err)
	assert.False(t, ents.HasAccess)
	assert.Equal(t, vo.TierFree, ents.Tier)
}

func TestGetTenantEntitlementsUseCase_Execute_RepositoryError(t *testing.T) {
	repo := &mockSubscriptionRepository{
		FindLatestByGroupFunc: func(ctx context.Context, groupID uint, statuses []vo.SubscriptionStatus) (*subscription.Subscription, error) {
			return nil, errors.New("db down")
		},
	}
	uc := newResolver(repo)

	ents, err := uc.Execute(context.Background(), 1)

	require.Error(t, err)
	assert.Nil(t, ents)
}

func TestGetTenantEntitlementsUseCase_Execute_ZeroGroupID(t *testing.T) {
	uc := newResolver(&mockSubscriptionRepository{})

	ents, err := uc.Execute(context.Background(), 0)

	require.Error(t, err)
	assert.Nil(t, ents)
}

func TestHasFeatureAccessUseCase_Execute(t *testing.T) {
	activeRepo := &mockSubscriptionRepository{
		FindLatestByGroupFunc: func(ctx context.Context, groupID uint, statuses []vo.SubscriptionStatus) (*subscription.Subscription, error) {
			return subWithStatus(t, vo.StatusActive, nil, false), nil
		},
	}

	tests := []struct {
		name     string
		repo     *mockSubscriptionRepository
		feature  string
		expected bool
	}{
		{"paid group has custom themes", activeRepo, entitlement.FeatureCustomThemes, true},
		{"paid group sees no ads", activeRepo, entitlement.FeatureAdsEnabled, true},
		{"free group has no custom themes", &mockSubscriptionRepository{}, entitlement.FeatureCustomThemes, false},
		{"free group still has a group quota", &mockSubscriptionRepository{}, entitlement.FeatureMaxGroups, true},
		{"unknown feature", activeRepo, "teleportation", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewHasFeatureAccessUseCase(newResolver(tt.repo), &mockLogger{})

			got, err := uc.Execute(context.Background(), 1, tt.feature)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
