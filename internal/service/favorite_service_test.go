package service

import (
	"Fable/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFavoriteTestEnv(t *testing.T) (*FavoriteServiceImpl, *fakeStoryRepo) {
	t.Helper()
	storyRepo := newFakeStoryRepo()
	svc := NewFavoriteService(newFakeFavoriteRepo(), storyRepo).(*FavoriteServiceImpl)
	return svc, storyRepo
}

func seedStory(t *testing.T, storyRepo *fakeStoryRepo, userID uint64) *model.Story {
	t.Helper()
	story := &model.Story{UserID: userID, Prompt: "p", Content: "c"}
	require.NoError(t, storyRepo.CreateStory(context.Background(), story))
	return story
}

func TestFavoriteLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, storyRepo := newFavoriteTestEnv(t)
	story := seedStory(t, storyRepo, 1)

	status, err := svc.Favorite(ctx, 2, story.ID)
	require.NoError(t, err)
	assert.True(t, status.IsFavorited)

	status, err = svc.GetFavoriteStatus(ctx, 2, story.ID)
	require.NoError(t, err)
	assert.True(t, status.IsFavorited)

	// 重复收藏报错
	_, err = svc.Favorite(ctx, 2, story.ID)
	assert.ErrorIs(t, err, ErrAlreadyFavorited)

	status, err = svc.Unfavorite(ctx, 2, story.ID)
	require.NoError(t, err)
	assert.False(t, status.IsFavorited)

	// 未收藏时取消报错
	_, err = svc.Unfavorite(ctx, 2, story.ID)
	assert.ErrorIs(t, err, ErrNotFavorited)
}

func TestFavoriteUnknownStory(t *testing.T) {
	svc, _ := newFavoriteTestEnv(t)
	_, err := svc.Favorite(context.Background(), 2, 404)
	assert.ErrorIs(t, err, ErrStoryNotFound)
}

func TestListFavoritesKeepsOrder(t *testing.T) {
	ctx := context.Background()
	svc, storyRepo := newFavoriteTestEnv(t)

	first := seedStory(t, storyRepo, 1)
	second := seedStory(t, storyRepo, 1)
	third := seedStory(t, storyRepo, 1)

	for _, id := range []uint64{second.ID, first.ID, third.ID} {
		_, err := svc.Favorite(ctx, 2, id)
		require.NoError(t, err)
	}

	stories, err := svc.ListFavorites(ctx, 2, 10, 0)
	require.NoError(t, err)
	require.Len(t, stories, 3)
	assert.Equal(t, second.ID, stories[0].ID)
	assert.Equal(t, first.ID, stories[1].ID)
	assert.Equal(t, third.ID, stories[2].ID)
}
