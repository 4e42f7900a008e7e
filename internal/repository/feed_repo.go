package repository

import (
	"Fable/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FeedRepo interface {
	CreatePublicStory(ctx context.Context, story *model.PublicStory) (bool, error)
	GetPublicStoryByID(ctx context.Context, id uint64) (*model.PublicStory, error)
	GetPublicStoryByStoryID(ctx context.Context, storyID uint64) (*model.PublicStory, error)
	ListFeed(ctx context.Context, limit, offset int) ([]*model.PublicStory, error)

	CreateLike(ctx context.Context, like *model.PublicStoryLike) (bool, error)
	DeleteLike(ctx context.Context, publicStoryID, userID uint64) (int64, error)
	CheckLikeExists(ctx context.Context, publicStoryID, userID uint64) (bool, error)
	AddLikeCount(ctx context.Context, publicStoryID uint64, delta int) error

	CreateComment(ctx context.Context, comment *model.PublicStoryComment) error
	GetCommentsByPublicStoryID(ctx context.Context, publicStoryID uint64, limit, offset int) ([]*model.PublicStoryComment, error)
	AddCommentCount(ctx context.Context, publicStoryID uint64, delta int) error
}

type FeedRepoImpl struct {
	db *gorm.DB
}

func NewFeedRepo(db *gorm.DB) FeedRepo {
	return &FeedRepoImpl{db: db}
}

// CreatePublicStory 一篇故事至多一条公共帖，重复分享被唯一约束吸收
func (s *FeedRepoImpl) CreatePublicStory(ctx context.Context, story *model.PublicStory) (bool, error) {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(story)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *FeedRepoImpl) GetPublicStoryByID(ctx context.Context, id uint64) (*model.PublicStory, error) {
	var story model.PublicStory
	result := s.db.WithContext(ctx).First(&story, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &story, nil
}

func (s *FeedRepoImpl) GetPublicStoryByStoryID(ctx context.Context, storyID uint64) (*model.PublicStory, error) {
	var story model.PublicStory
	result := s.db.WithContext(ctx).Where("story_id = ?", storyID).First(&story)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &story, nil
}

func (s *FeedRepoImpl) ListFeed(ctx context.Context, limit, offset int) ([]*model.PublicStory, error) {
	var stories []*model.PublicStory
	result := s.db.WithContext(ctx).
		Order("shared_at desc").
		Limit(limit).
		Offset(offset).
		Find(&stories)
	if result.Error != nil {
		return nil, result.Error
	}
	return stories, nil
}

func (s *FeedRepoImpl) CreateLike(ctx context.Context, like *model.PublicStoryLike) (bool, error) {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(like)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *FeedRepoImpl) DeleteLike(ctx context.Context, publicStoryID, userID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("public_story_id = ? AND user_id = ?", publicStoryID, userID).
		Delete(&model.PublicStoryLike{})
	return result.RowsAffected, result.Error
}

func (s *FeedRepoImpl) CheckLikeExists(ctx context.Context, publicStoryID, userID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.PublicStoryLike{}).
		Where("public_story_id = ? AND user_id = ?", publicStoryID, userID).
		Count(&count).Error
	return count > 0, err
}

// AddLikeCount 维护反范式计数，扣减时以 0 为下界
func (s *FeedRepoImpl) AddLikeCount(ctx context.Context, publicStoryID uint64, delta int) error {
	return s.db.WithContext(ctx).Model(&model.PublicStory{}).
		Where("id = ?", publicStoryID).
		Update("like_count", gorm.Expr("GREATEST(like_count + ?, 0)", delta)).Error
}

func (s *FeedRepoImpl) CreateComment(ctx context.Context, comment *model.PublicStoryComment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *FeedRepoImpl) GetCommentsByPublicStoryID(ctx context.Context, publicStoryID uint64, limit, offset int) ([]*model.PublicStoryComment, error) {
	var comments []*model.PublicStoryComment
	result := s.db.WithContext(ctx).
		Where("public_story_id = ?", publicStoryID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}
	return comments, nil
}

func (s *FeedRepoImpl) AddCommentCount(ctx context.Context, publicStoryID uint64, delta int) error {
	return s.db.WithContext(ctx).Model(&model.PublicStory{}).
		Where("id = ?", publicStoryID).
		Update("comment_count", gorm.Expr("GREATEST(comment_count + ?, 0)", delta)).Error
}
