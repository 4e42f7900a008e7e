package service

import (
	"Fable/internal/model"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFollowTestEnv(t *testing.T, userCount int) (FollowService, *fakeUserRepo) {
	t.Helper()

	userRepo := newFakeUserRepo()
	for i := 0; i < userCount; i++ {
		require.NoError(t, userRepo.CreateUser(context.Background(), &model.User{
			Email: fmt.Sprintf("user%d@example.com", i+1),
			Tier:  model.TierFree,
		}))
	}

	return NewFollowService(&fakeFollowRepo{}, userRepo), userRepo
}

func TestFollowLifecycle(t *testing.T) {
	svc, _ := newFollowTestEnv(t, 2)
	ctx := context.Background()

	status, err := svc.Follow(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, status.IsFollowing)

	status, err = svc.GetFollowStatus(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, status.IsFollowing)

	// 关注是单向边
	status, err = svc.GetFollowStatus(ctx, 2, 1)
	require.NoError(t, err)
	assert.False(t, status.IsFollowing)

	_, err = svc.Follow(ctx, 1, 2)
	assert.ErrorIs(t, err, ErrAlreadyFollowing)

	status, err = svc.Unfollow(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, status.IsFollowing)

	_, err = svc.Unfollow(ctx, 1, 2)
	assert.ErrorIs(t, err, ErrNotFollowing)
}

func TestFollowSelfRejected(t *testing.T) {
	svc, _ := newFollowTestEnv(t, 1)

	_, err := svc.Follow(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrFollowSelf)
}

func TestFollowUnknownUser(t *testing.T) {
	svc, _ := newFollowTestEnv(t, 1)

	_, err := svc.Follow(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFollowStats(t *testing.T) {
	svc, _ := newFollowTestEnv(t, 3)
	ctx := context.Background()

	_, err := svc.Follow(ctx, 2, 1)
	require.NoError(t, err)
	_, err = svc.Follow(ctx, 3, 1)
	require.NoError(t, err)
	_, err = svc.Follow(ctx, 1, 2)
	require.NoError(t, err)

	stats, err := svc.GetFollowStats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Followers)
	assert.Equal(t, int64(1), stats.Following)

	_, err = svc.GetFollowStats(ctx, 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFollowListsNewestFirst(t *testing.T) {
	svc, _ := newFollowTestEnv(t, 4)
	ctx := context.Background()

	for _, followerID := range []uint64{2, 3, 4} {
		_, err := svc.Follow(ctx, followerID, 1)
		require.NoError(t, err)
	}

	followers, err := svc.GetFollowers(ctx, 1, 20, 0)
	require.NoError(t, err)
	require.Len(t, followers, 3)
	assert.Equal(t, uint64(4), followers[0].UserID)
	assert.Equal(t, uint64(3), followers[1].UserID)
	assert.Equal(t, uint64(2), followers[2].UserID)
	assert.Equal(t, "user4@example.com", followers[0].Email)

	following, err := svc.GetFollowing(ctx, 2, 20, 0)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, uint64(1), following[0].UserID)
}

func TestFollowListPagination(t *testing.T) {
	svc, _ := newFollowTestEnv(t, 4)
	ctx := context.Background()

	for _, followerID := range []uint64{2, 3, 4} {
		_, err := svc.Follow(ctx, followerID, 1)
		require.NoError(t, err)
	}

	page, err := svc.GetFollowers(ctx, 1, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, uint64(4), page[0].UserID)

	page, err = svc.GetFollowers(ctx, 1, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, uint64(2), page[0].UserID)
}
