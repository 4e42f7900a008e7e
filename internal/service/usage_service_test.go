package service

import (
	"Fable/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUsageService(dailyLimit int, now time.Time) (*UsageServiceImpl, *fakeStoryUsageRepo) {
	usageRepo := newFakeStoryUsageRepo()
	svc := NewUsageService(usageRepo, dailyLimit).(*UsageServiceImpl)
	svc.now = func() time.Time { return now }
	return svc, usageRepo
}

func TestUsageFreeUserCountdown(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	svc, _ := newTestUsageService(3, now)
	user := &model.User{ID: 1, Tier: model.TierFree}

	// 前三次依次得到 2,1,0
	for _, want := range []int{2, 1, 0} {
		_, err := svc.EnsureUnderLimit(ctx, user)
		require.NoError(t, err)

		remaining, err := svc.ConsumeAndRemaining(ctx, user)
		require.NoError(t, err)
		require.NotNil(t, remaining)
		assert.Equal(t, want, *remaining)
	}

	// 第四次被拒
	_, err := svc.EnsureUnderLimit(ctx, user)
	assert.ErrorIs(t, err, ErrGenerationLimit)
}

func TestUsagePremiumUnlimited(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	svc, usageRepo := newTestUsageService(3, now)

	until := now.Add(24 * time.Hour)
	user := &model.User{ID: 2, Tier: model.TierPremium, PremiumUntil: &until}

	for i := 0; i < 10; i++ {
		remaining, err := svc.EnsureUnderLimit(ctx, user)
		require.NoError(t, err)
		assert.Nil(t, remaining)

		remaining, err = svc.ConsumeAndRemaining(ctx, user)
		require.NoError(t, err)
		assert.Nil(t, remaining)
	}

	// 会员不计入每日用量
	count, err := usageRepo.GetCount(ctx, user.ID, "2025-03-10")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUsageExpiredPremiumFallsBackToFreeLimit(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	svc, _ := newTestUsageService(3, now)

	until := now.Add(-time.Hour)
	user := &model.User{ID: 3, Tier: model.TierPremium, PremiumUntil: &until}

	remaining, err := svc.Remaining(ctx, user)
	require.NoError(t, err)
	require.NotNil(t, remaining)
	assert.Equal(t, 3, *remaining)
}

func TestUsageResetsNextDay(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 23, 50, 0, 0, time.UTC)
	svc, _ := newTestUsageService(1, now)
	user := &model.User{ID: 4, Tier: model.TierFree}

	remaining, err := svc.ConsumeAndRemaining(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, 0, *remaining)

	_, err = svc.EnsureUnderLimit(ctx, user)
	assert.ErrorIs(t, err, ErrGenerationLimit)

	// 跨过 UTC 日界后额度恢复
	svc.now = func() time.Time { return now.Add(time.Hour) }
	remaining, err = svc.EnsureUnderLimit(ctx, user)
	require.NoError(t, err)
	require.NotNil(t, remaining)
	assert.Equal(t, 1, *remaining)
}
