package repository

import (
	"Fable/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepo interface {
	CreateFavorite(ctx context.Context, favorite *model.StoryFavorite) (bool, error)
	DeleteFavorite(ctx context.Context, userID, storyID uint64) (int64, error)
	CheckFavoriteExists(ctx context.Context, userID, storyID uint64) (bool, error)
	GetFavoriteStoryIDs(ctx context.Context, userID uint64, limit, offset int) ([]uint64, error)
}

type FavoriteRepoImpl struct {
	db *gorm.DB
}

func NewFavoriteRepo(db *gorm.DB) FavoriteRepo {
	return &FavoriteRepoImpl{db: db}
}

// CreateFavorite 重复收藏被唯一约束吸收，返回 false
func (s *FavoriteRepoImpl) CreateFavorite(ctx context.Context, favorite *model.StoryFavorite) (bool, error) {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favorite)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *FavoriteRepoImpl) DeleteFavorite(ctx context.Context, userID, storyID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND story_id = ?", userID, storyID).
		Delete(&model.StoryFavorite{})
	return result.RowsAffected, result.Error
}

func (s *FavoriteRepoImpl) CheckFavoriteExists(ctx context.Context, userID, storyID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.StoryFavorite{}).
		Where("user_id = ? AND story_id = ?", userID, storyID).
		Count(&count).Error
	return count > 0, err
}

func (s *FavoriteRepoImpl) GetFavoriteStoryIDs(ctx context.Context, userID uint64, limit, offset int) ([]uint64, error) {
	var storyIDs []uint64
	err := s.db.WithContext(ctx).Model(&model.StoryFavorite{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Pluck("story_id", &storyIDs).Error
	return storyIDs, err
}
