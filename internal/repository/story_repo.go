package repository

import (
	"Fable/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type StoryRepo interface {
	CreateStory(ctx context.Context, story *model.Story) error
	GetStoryByID(ctx context.Context, id uint64) (*model.Story, error)
	GetStoriesByUserID(ctx context.Context, userID uint64, limit, offset int) ([]*model.Story, error)
	GetStoriesByIDs(ctx context.Context, ids []uint64) ([]*model.Story, error)
	GetStoryByShareID(ctx context.Context, shareID string) (*model.Story, error)
	SetShareID(ctx context.Context, id uint64, shareID string) error
}

type StoryRepoImpl struct {
	db *gorm.DB
}

func NewStoryRepo(db *gorm.DB) StoryRepo {
	return &StoryRepoImpl{db: db}
}

func (s *StoryRepoImpl) CreateStory(ctx context.Context, story *model.Story) error {
	return s.db.WithContext(ctx).Create(story).Error
}

func (s *StoryRepoImpl) GetStoryByID(ctx context.Context, id uint64) (*model.Story, error) {
	var story model.Story
	result := s.db.WithContext(ctx).First(&story, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &story, nil
}

func (s *StoryRepoImpl) GetStoriesByUserID(ctx context.Context, userID uint64, limit, offset int) ([]*model.Story, error) {
	var stories []*model.Story
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&stories)

	if result.Error != nil {
		return nil, result.Error
	}
	return stories, nil
}

func (s *StoryRepoImpl) GetStoriesByIDs(ctx context.Context, ids []uint64) ([]*model.Story, error) {
	if len(ids) == 0 {
		return []*model.Story{}, nil
	}
	var stories []*model.Story
	result := s.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&stories)
	if result.Error != nil {
		return nil, result.Error
	}
	return stories, nil
}

func (s *StoryRepoImpl) GetStoryByShareID(ctx context.Context, shareID string) (*model.Story, error) {
	var story model.Story
	result := s.db.WithContext(ctx).Where("share_id = ?", shareID).First(&story)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &story, nil
}

func (s *StoryRepoImpl) SetShareID(ctx context.Context, id uint64, shareID string) error {
	return s.db.WithContext(ctx).Model(&model.Story{}).
		Where("id = ?", id).
		Update("share_id", shareID).Error
}
