package repository

import (
	"Fable/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepo interface {
	CreateAchievement(ctx context.Context, achievement *model.UserAchievement) (bool, error)
	GetByUserID(ctx context.Context, userID uint64) ([]*model.UserAchievement, error)
}

type AchievementRepoImpl struct {
	db *gorm.DB
}

func NewAchievementRepo(db *gorm.DB) AchievementRepo {
	return &AchievementRepoImpl{db: db}
}

// CreateAchievement 幂等授予；(user_id, achievement_type) 唯一约束是唯一事实来源，
// 已存在时返回 false 而非报错
func (s *AchievementRepoImpl) CreateAchievement(ctx context.Context, achievement *model.UserAchievement) (bool, error) {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(achievement)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *AchievementRepoImpl) GetByUserID(ctx context.Context, userID uint64) ([]*model.UserAchievement, error) {
	var achievements []*model.UserAchievement
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("earned_at desc").
		Find(&achievements)
	if result.Error != nil {
		return nil, result.Error
	}
	return achievements, nil
}
