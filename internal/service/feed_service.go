package service

import (
	"Fable/internal/api/dto"
	"Fable/internal/model"
	"Fable/internal/pkg/consts"
	"Fable/internal/pkg/util"
	"Fable/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
)

type FeedService interface {
	ShareToFeed(ctx context.Context, userID, storyID uint64) (*dto.FeedShareResultDTO, error)
	GetFeed(ctx context.Context, limit, offset int) ([]*dto.PublicStoryDTO, error)
	GetFeedStory(ctx context.Context, publicStoryID uint64) (*dto.FeedShareResultDTO, error)
	Like(ctx context.Context, userID, publicStoryID uint64) (*dto.LikeStateDTO, error)
	Unlike(ctx context.Context, userID, publicStoryID uint64) (*dto.LikeStateDTO, error)
	IsLiked(ctx context.Context, userID, publicStoryID uint64) (*dto.LikeStateDTO, error)
	AddComment(ctx context.Context, userID, publicStoryID uint64, content string) (*dto.CommentDTO, error)
	GetComments(ctx context.Context, publicStoryID uint64, limit, offset int) ([]*dto.CommentDTO, error)
	GetThemeUnlocks(ctx context.Context, userID uint64) ([]*dto.ThemeUnlockDTO, error)
}

type FeedServiceImpl struct {
	feedRepo        repository.FeedRepo
	storyRepo       repository.StoryRepo
	shareLimitRepo  repository.ShareLimitRepo
	themeRepo       repository.ThemeRepo
	statsRepo       repository.UserStatsRepo
	gamificationSvc GamificationService
	dailyShareLimit int
	now             func() time.Time
}

func NewFeedService(
	feedRepo repository.FeedRepo,
	storyRepo repository.StoryRepo,
	shareLimitRepo repository.ShareLimitRepo,
	themeRepo repository.ThemeRepo,
	statsRepo repository.UserStatsRepo,
	gamificationSvc GamificationService,
	dailyShareLimit int,
) FeedService {
	return &FeedServiceImpl{
		feedRepo:        feedRepo,
		storyRepo:       storyRepo,
		shareLimitRepo:  shareLimitRepo,
		themeRepo:       themeRepo,
		statsRepo:       statsRepo,
		gamificationSvc: gamificationSvc,
		dailyShareLimit: dailyShareLimit,
		now:             time.Now,
	}
}

// ShareToFeed 先查重复再消耗当日限额，重复分享不占额度；限额走行锁事务防并发超发
func (s *FeedServiceImpl) ShareToFeed(ctx context.Context, userID, storyID uint64) (*dto.FeedShareResultDTO, error) {
	story, err := s.storyRepo.GetStoryByID(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if story == nil || story.UserID != userID {
		return nil, ErrStoryNotFound
	}

	existing, err := s.feedRepo.GetPublicStoryByStoryID(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyShared
	}

	allowed, err := s.shareLimitRepo.TryConsume(ctx, userID, s.now().UTC(), s.dailyShareLimit)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrShareLimit
	}

	title := "Untitled Story"
	if story.Title != nil {
		if cleaned := util.Sanitize(*story.Title, consts.TitleMaxLength); cleaned != "" {
			title = cleaned
		}
	}

	post := &model.PublicStory{
		StoryID:  storyID,
		UserID:   userID,
		Title:    title,
		Excerpt:  util.Sanitize(story.Content, consts.ExcerptMaxLength),
		SharedAt: s.now().UTC(),
	}
	created, err := s.feedRepo.CreatePublicStory(ctx, post)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrAlreadyShared
	}

	if err = s.gamificationSvc.AwardXP(ctx, userID, consts.ShareXPAward); err != nil {
		log.ErrorContext(ctx, "share xp award failed", "err", err, "user_id", userID)
	}

	return s.shareResult(post, story)
}

func (s *FeedServiceImpl) GetFeed(ctx context.Context, limit, offset int) ([]*dto.PublicStoryDTO, error) {
	posts, err := s.feedRepo.ListFeed(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.PublicStoryDTO, 0, len(posts))
	for _, post := range posts {
		postDTO := &dto.PublicStoryDTO{}
		if err = copier.Copy(postDTO, post); err != nil {
			return nil, err
		}
		list = append(list, postDTO)
	}
	return list, nil
}

// GetFeedStory 帖子详情，连同源故事全文一起返回
func (s *FeedServiceImpl) GetFeedStory(ctx context.Context, publicStoryID uint64) (*dto.FeedShareResultDTO, error) {
	post, err := s.feedRepo.GetPublicStoryByID(ctx, publicStoryID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPublicStoryNotFound
	}

	story, err := s.storyRepo.GetStoryByID(ctx, post.StoryID)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, ErrStoryNotFound
	}

	return s.shareResult(post, story)
}

func (s *FeedServiceImpl) Like(ctx context.Context, userID, publicStoryID uint64) (*dto.LikeStateDTO, error) {
	post, err := s.feedRepo.GetPublicStoryByID(ctx, publicStoryID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPublicStoryNotFound
	}

	created, err := s.feedRepo.CreateLike(ctx, &model.PublicStoryLike{
		PublicStoryID: publicStoryID,
		UserID:        userID,
	})
	if err != nil {
		return nil, err
	}

	// 已点赞时再点赞按切换处理，转为取消
	if !created {
		return s.Unlike(ctx, userID, publicStoryID)
	}

	if err = s.feedRepo.AddLikeCount(ctx, publicStoryID, 1); err != nil {
		return nil, err
	}
	return &dto.LikeStateDTO{Liked: true}, nil
}

func (s *FeedServiceImpl) IsLiked(ctx context.Context, userID, publicStoryID uint64) (*dto.LikeStateDTO, error) {
	post, err := s.feedRepo.GetPublicStoryByID(ctx, publicStoryID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPublicStoryNotFound
	}

	liked, err := s.feedRepo.CheckLikeExists(ctx, publicStoryID, userID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeStateDTO{Liked: liked}, nil
}

func (s *FeedServiceImpl) Unlike(ctx context.Context, userID, publicStoryID uint64) (*dto.LikeStateDTO, error) {
	post, err := s.feedRepo.GetPublicStoryByID(ctx, publicStoryID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPublicStoryNotFound
	}

	rows, err := s.feedRepo.DeleteLike(ctx, publicStoryID, userID)
	if err != nil {
		return nil, err
	}
	if rows > 0 {
		if err = s.feedRepo.AddLikeCount(ctx, publicStoryID, -1); err != nil {
			return nil, err
		}
	}

	return &dto.LikeStateDTO{Liked: false}, nil
}

func (s *FeedServiceImpl) AddComment(ctx context.Context, userID, publicStoryID uint64, content string) (*dto.CommentDTO, error) {
	post, err := s.feedRepo.GetPublicStoryByID(ctx, publicStoryID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPublicStoryNotFound
	}

	cleaned := util.Sanitize(content, consts.CommentMaxLength)
	if cleaned == "" {
		return nil, ErrEmptyContent
	}

	comment := &model.PublicStoryComment{
		PublicStoryID: publicStoryID,
		UserID:        userID,
		Content:       cleaned,
	}
	if err = s.feedRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	if err = s.feedRepo.AddCommentCount(ctx, publicStoryID, 1); err != nil {
		return nil, err
	}

	commentDTO := &dto.CommentDTO{}
	if err = copier.Copy(commentDTO, comment); err != nil {
		return nil, err
	}
	return commentDTO, nil
}

func (s *FeedServiceImpl) GetComments(ctx context.Context, publicStoryID uint64, limit, offset int) ([]*dto.CommentDTO, error) {
	post, err := s.feedRepo.GetPublicStoryByID(ctx, publicStoryID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPublicStoryNotFound
	}

	comments, err := s.feedRepo.GetCommentsByPublicStoryID(ctx, publicStoryID, limit, offset)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		commentDTO := &dto.CommentDTO{}
		if err = copier.Copy(commentDTO, comment); err != nil {
			return nil, err
		}
		list = append(list, commentDTO)
	}
	return list, nil
}

// GetThemeUnlocks 解锁态按当前 XP 即时计算
func (s *FeedServiceImpl) GetThemeUnlocks(ctx context.Context, userID uint64) ([]*dto.ThemeUnlockDTO, error) {
	stats, err := s.statsRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	themes, err := s.themeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.ThemeUnlockDTO, 0, len(themes))
	for _, theme := range themes {
		list = append(list, &dto.ThemeUnlockDTO{
			ThemeID:     theme.ThemeID,
			ThemeName:   theme.ThemeName,
			XPThreshold: theme.XPThreshold,
			Unlocked:    stats.TotalXP >= theme.XPThreshold,
		})
	}
	return list, nil
}

func (s *FeedServiceImpl) shareResult(post *model.PublicStory, story *model.Story) (*dto.FeedShareResultDTO, error) {
	postDTO := &dto.PublicStoryDTO{}
	if err := copier.Copy(postDTO, post); err != nil {
		return nil, err
	}
	storyDTO := &dto.StoryDTO{}
	if err := copier.Copy(storyDTO, story); err != nil {
		return nil, err
	}
	return &dto.FeedShareResultDTO{Post: postDTO, Story: storyDTO}, nil
}
