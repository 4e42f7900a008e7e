package service

import (
	"Fable/internal/model"
	"Fable/internal/pkg/util"
	"context"
	"fmt"
	"sort"
	"time"
)

// 服务层测试用的内存版仓储实现

type fakeUserRepo struct {
	users  map[uint64]*model.User
	nextID uint64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]*model.User), nextID: 1}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id uint64) (*model.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUsersByIDs(_ context.Context, ids []uint64) ([]*model.User, error) {
	var users []*model.User
	for _, id := range ids {
		if user, ok := f.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

func (f *fakeUserRepo) UpdateTier(_ context.Context, id uint64, tier string, premiumUntil *time.Time) error {
	if user, ok := f.users[id]; ok {
		user.Tier = tier
		user.PremiumUntil = premiumUntil
	}
	return nil
}

func (f *fakeUserRepo) DemoteExpiredPremium(_ context.Context, now time.Time) (int64, error) {
	var demoted int64
	for _, user := range f.users {
		if user.Tier == model.TierPremium && user.PremiumUntil != nil && user.PremiumUntil.Before(now) {
			user.Tier = model.TierFree
			user.PremiumUntil = nil
			demoted++
		}
	}
	return demoted, nil
}

type fakeStoryRepo struct {
	stories map[uint64]*model.Story
	nextID  uint64
}

func newFakeStoryRepo() *fakeStoryRepo {
	return &fakeStoryRepo{stories: make(map[uint64]*model.Story), nextID: 1}
}

func (f *fakeStoryRepo) CreateStory(_ context.Context, story *model.Story) error {
	story.ID = f.nextID
	f.nextID++
	story.CreatedAt = time.Now()
	f.stories[story.ID] = story
	return nil
}

func (f *fakeStoryRepo) GetStoryByID(_ context.Context, id uint64) (*model.Story, error) {
	return f.stories[id], nil
}

func (f *fakeStoryRepo) GetStoriesByUserID(_ context.Context, userID uint64, limit, offset int) ([]*model.Story, error) {
	var ids []uint64
	for id, story := range f.stories {
		if story.UserID == userID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	var result []*model.Story
	for i, id := range ids {
		if i < offset {
			continue
		}
		if len(result) >= limit {
			break
		}
		result = append(result, f.stories[id])
	}
	return result, nil
}

func (f *fakeStoryRepo) GetStoriesByIDs(_ context.Context, ids []uint64) ([]*model.Story, error) {
	var result []*model.Story
	for _, id := range ids {
		if story, ok := f.stories[id]; ok {
			result = append(result, story)
		}
	}
	return result, nil
}

func (f *fakeStoryRepo) GetStoryByShareID(_ context.Context, shareID string) (*model.Story, error) {
	for _, story := range f.stories {
		if story.ShareID != nil && *story.ShareID == shareID {
			return story, nil
		}
	}
	return nil, nil
}

func (f *fakeStoryRepo) SetShareID(_ context.Context, id uint64, shareID string) error {
	if story, ok := f.stories[id]; ok {
		story.ShareID = &shareID
	}
	return nil
}

type fakeStoryUsageRepo struct {
	counts map[string]int
}

func newFakeStoryUsageRepo() *fakeStoryUsageRepo {
	return &fakeStoryUsageRepo{counts: make(map[string]int)}
}

func (f *fakeStoryUsageRepo) key(userID uint64, usageDate string) string {
	return fmt.Sprintf("%d/%s", userID, usageDate)
}

func (f *fakeStoryUsageRepo) GetCount(_ context.Context, userID uint64, usageDate string) (int, error) {
	return f.counts[f.key(userID, usageDate)], nil
}

func (f *fakeStoryUsageRepo) Increment(_ context.Context, userID uint64, usageDate string) error {
	f.counts[f.key(userID, usageDate)]++
	return nil
}

type fakeUserStatsRepo struct {
	stats map[uint64]*model.UserStats
}

func newFakeUserStatsRepo() *fakeUserStatsRepo {
	return &fakeUserStatsRepo{stats: make(map[uint64]*model.UserStats)}
}

func (f *fakeUserStatsRepo) GetOrCreate(_ context.Context, userID uint64) (*model.UserStats, error) {
	if stats, ok := f.stats[userID]; ok {
		return stats, nil
	}
	stats := &model.UserStats{UserID: userID}
	f.stats[userID] = stats
	return stats, nil
}

func (f *fakeUserStatsRepo) Update(_ context.Context, stats *model.UserStats) error {
	f.stats[stats.UserID] = stats
	return nil
}

func (f *fakeUserStatsRepo) AddXP(_ context.Context, userID uint64, amount int) error {
	if stats, ok := f.stats[userID]; ok {
		stats.TotalXP += amount
	}
	return nil
}

type fakeAchievementRepo struct {
	byUser map[uint64][]*model.UserAchievement
}

func newFakeAchievementRepo() *fakeAchievementRepo {
	return &fakeAchievementRepo{byUser: make(map[uint64][]*model.UserAchievement)}
}

func (f *fakeAchievementRepo) CreateAchievement(_ context.Context, achievement *model.UserAchievement) (bool, error) {
	for _, existing := range f.byUser[achievement.UserID] {
		if existing.AchievementType == achievement.AchievementType {
			return false, nil
		}
	}
	f.byUser[achievement.UserID] = append(f.byUser[achievement.UserID], achievement)
	return true, nil
}

func (f *fakeAchievementRepo) GetByUserID(_ context.Context, userID uint64) ([]*model.UserAchievement, error) {
	return f.byUser[userID], nil
}

type fakeLoginStreakRepo struct {
	streaks map[uint64]*model.LoginStreak
}

func newFakeLoginStreakRepo() *fakeLoginStreakRepo {
	return &fakeLoginStreakRepo{streaks: make(map[uint64]*model.LoginStreak)}
}

func (f *fakeLoginStreakRepo) Get(_ context.Context, userID uint64) (*model.LoginStreak, error) {
	return f.streaks[userID], nil
}

func (f *fakeLoginStreakRepo) Upsert(_ context.Context, streak *model.LoginStreak) error {
	f.streaks[streak.UserID] = streak
	return nil
}

type fakeShareLimitRepo struct {
	limits map[uint64]*model.DailyShareLimit
}

func newFakeShareLimitRepo() *fakeShareLimitRepo {
	return &fakeShareLimitRepo{limits: make(map[uint64]*model.DailyShareLimit)}
}

func (f *fakeShareLimitRepo) TryConsume(_ context.Context, userID uint64, now time.Time, dailyLimit int) (bool, error) {
	limit, ok := f.limits[userID]
	if !ok || !util.SameCalendarDay(limit.LastReset, now) {
		f.limits[userID] = &model.DailyShareLimit{UserID: userID, SharedCount: 1, LastReset: now}
		return true, nil
	}
	if limit.SharedCount >= dailyLimit {
		return false, nil
	}
	limit.SharedCount++
	return true, nil
}

type fakeFeedRepo struct {
	posts    map[uint64]*model.PublicStory
	likes    map[string]bool
	comments []*model.PublicStoryComment
	nextID   uint64
}

func newFakeFeedRepo() *fakeFeedRepo {
	return &fakeFeedRepo{posts: make(map[uint64]*model.PublicStory), likes: make(map[string]bool), nextID: 1}
}

func (f *fakeFeedRepo) likeKey(publicStoryID, userID uint64) string {
	return fmt.Sprintf("%d/%d", publicStoryID, userID)
}

func (f *fakeFeedRepo) CreatePublicStory(_ context.Context, story *model.PublicStory) (bool, error) {
	for _, existing := range f.posts {
		if existing.StoryID == story.StoryID {
			return false, nil
		}
	}
	story.ID = f.nextID
	f.nextID++
	f.posts[story.ID] = story
	return true, nil
}

func (f *fakeFeedRepo) GetPublicStoryByID(_ context.Context, id uint64) (*model.PublicStory, error) {
	return f.posts[id], nil
}

func (f *fakeFeedRepo) GetPublicStoryByStoryID(_ context.Context, storyID uint64) (*model.PublicStory, error) {
	for _, post := range f.posts {
		if post.StoryID == storyID {
			return post, nil
		}
	}
	return nil, nil
}

func (f *fakeFeedRepo) ListFeed(_ context.Context, limit, offset int) ([]*model.PublicStory, error) {
	var ids []uint64
	for id := range f.posts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	var result []*model.PublicStory
	for i, id := range ids {
		if i < offset {
			continue
		}
		if len(result) >= limit {
			break
		}
		result = append(result, f.posts[id])
	}
	return result, nil
}

func (f *fakeFeedRepo) CreateLike(_ context.Context, like *model.PublicStoryLike) (bool, error) {
	key := f.likeKey(like.PublicStoryID, like.UserID)
	if f.likes[key] {
		return false, nil
	}
	f.likes[key] = true
	return true, nil
}

func (f *fakeFeedRepo) DeleteLike(_ context.Context, publicStoryID, userID uint64) (int64, error) {
	key := f.likeKey(publicStoryID, userID)
	if !f.likes[key] {
		return 0, nil
	}
	delete(f.likes, key)
	return 1, nil
}

func (f *fakeFeedRepo) CheckLikeExists(_ context.Context, publicStoryID, userID uint64) (bool, error) {
	return f.likes[f.likeKey(publicStoryID, userID)], nil
}

func (f *fakeFeedRepo) AddLikeCount(_ context.Context, publicStoryID uint64, delta int) error {
	if post, ok := f.posts[publicStoryID]; ok {
		post.LikeCount += delta
		if post.LikeCount < 0 {
			post.LikeCount = 0
		}
	}
	return nil
}

func (f *fakeFeedRepo) CreateComment(_ context.Context, comment *model.PublicStoryComment) error {
	comment.ID = uint64(len(f.comments) + 1)
	comment.CreatedAt = time.Now()
	f.comments = append(f.comments, comment)
	return nil
}

func (f *fakeFeedRepo) GetCommentsByPublicStoryID(_ context.Context, publicStoryID uint64, limit, offset int) ([]*model.PublicStoryComment, error) {
	var result []*model.PublicStoryComment
	skipped := 0
	for _, comment := range f.comments {
		if comment.PublicStoryID != publicStoryID {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if len(result) >= limit {
			break
		}
		result = append(result, comment)
	}
	return result, nil
}

func (f *fakeFeedRepo) AddCommentCount(_ context.Context, publicStoryID uint64, delta int) error {
	if post, ok := f.posts[publicStoryID]; ok {
		post.CommentCount += delta
	}
	return nil
}

type fakeFavoriteRepo struct {
	favorites map[string]bool
	order     []uint64
	owner     map[string]uint64
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: make(map[string]bool), owner: make(map[string]uint64)}
}

func (f *fakeFavoriteRepo) key(userID, storyID uint64) string {
	return fmt.Sprintf("%d/%d", userID, storyID)
}

func (f *fakeFavoriteRepo) CreateFavorite(_ context.Context, favorite *model.StoryFavorite) (bool, error) {
	key := f.key(favorite.UserID, favorite.StoryID)
	if f.favorites[key] {
		return false, nil
	}
	f.favorites[key] = true
	f.order = append(f.order, favorite.StoryID)
	f.owner[key] = favorite.UserID
	return true, nil
}

func (f *fakeFavoriteRepo) DeleteFavorite(_ context.Context, userID, storyID uint64) (int64, error) {
	key := f.key(userID, storyID)
	if !f.favorites[key] {
		return 0, nil
	}
	delete(f.favorites, key)
	return 1, nil
}

func (f *fakeFavoriteRepo) CheckFavoriteExists(_ context.Context, userID, storyID uint64) (bool, error) {
	return f.favorites[f.key(userID, storyID)], nil
}

func (f *fakeFavoriteRepo) GetFavoriteStoryIDs(_ context.Context, userID uint64, limit, offset int) ([]uint64, error) {
	var ids []uint64
	skipped := 0
	for _, storyID := range f.order {
		if !f.favorites[f.key(userID, storyID)] {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if len(ids) >= limit {
			break
		}
		ids = append(ids, storyID)
	}
	return ids, nil
}

type fakeThemeRepo struct {
	themes []*model.ThemeUnlock
}

func (f *fakeThemeRepo) SeedThemes(_ context.Context, themes []*model.ThemeUnlock) error {
	f.themes = themes
	return nil
}

func (f *fakeThemeRepo) GetAll(_ context.Context) ([]*model.ThemeUnlock, error) {
	return f.themes, nil
}

type fakeFollowRepo struct {
	follows []*model.Follow
}

func (f *fakeFollowRepo) GetFollowers(_ context.Context, userID uint64, limit, offset int) ([]*model.Follow, error) {
	var edges []*model.Follow
	for i := len(f.follows) - 1; i >= 0; i-- {
		if f.follows[i].FollowingID == userID {
			edges = append(edges, f.follows[i])
		}
	}
	return pageFollows(edges, limit, offset), nil
}

func (f *fakeFollowRepo) GetFollowing(_ context.Context, userID uint64, limit, offset int) ([]*model.Follow, error) {
	var edges []*model.Follow
	for i := len(f.follows) - 1; i >= 0; i-- {
		if f.follows[i].FollowerID == userID {
			edges = append(edges, f.follows[i])
		}
	}
	return pageFollows(edges, limit, offset), nil
}

func pageFollows(edges []*model.Follow, limit, offset int) []*model.Follow {
	if offset >= len(edges) {
		return nil
	}
	edges = edges[offset:]
	if len(edges) > limit {
		edges = edges[:limit]
	}
	return edges
}

func (f *fakeFollowRepo) GetFollowerCount(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for _, edge := range f.follows {
		if edge.FollowingID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeFollowRepo) GetFollowingCount(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for _, edge := range f.follows {
		if edge.FollowerID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeFollowRepo) GetFollow(_ context.Context, followerID, followingID uint64) (*model.Follow, error) {
	for _, edge := range f.follows {
		if edge.FollowerID == followerID && edge.FollowingID == followingID {
			return edge, nil
		}
	}
	return nil, nil
}

func (f *fakeFollowRepo) CreateFollow(_ context.Context, follow *model.Follow) error {
	if existing, _ := f.GetFollow(context.Background(), follow.FollowerID, follow.FollowingID); existing != nil {
		return nil
	}
	follow.CreatedAt = time.Now()
	f.follows = append(f.follows, follow)
	return nil
}

func (f *fakeFollowRepo) DeleteFollow(_ context.Context, followerID, followingID uint64) (int64, error) {
	for i, edge := range f.follows {
		if edge.FollowerID == followerID && edge.FollowingID == followingID {
			f.follows = append(f.follows[:i], f.follows[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// fakeLLM 回放固定文案的文本生成器
type fakeLLM struct {
	output string
	err    error
	calls  int
}

func (f *fakeLLM) Complete(_ context.Context, _, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}
