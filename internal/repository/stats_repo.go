package repository

import (
	"Fable/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserStatsRepo interface {
	GetOrCreate(ctx context.Context, userID uint64) (*model.UserStats, error)
	Update(ctx context.Context, stats *model.UserStats) error
	AddXP(ctx context.Context, userID uint64, amount int) error
}

type UserStatsRepoImpl struct {
	db *gorm.DB
}

func NewUserStatsRepo(db *gorm.DB) UserStatsRepo {
	return &UserStatsRepoImpl{db: db}
}

// GetOrCreate 惰性创建全零账本行；并发首次访问由主键冲突吸收
func (s *UserStatsRepoImpl) GetOrCreate(ctx context.Context, userID uint64) (*model.UserStats, error) {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.UserStats{UserID: userID}).Error
	if err != nil {
		return nil, err
	}

	var stats model.UserStats
	if err = s.db.WithContext(ctx).Where("user_id = ?", userID).First(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// Update 以 user_id 为键整行落盘
func (s *UserStatsRepoImpl) Update(ctx context.Context, stats *model.UserStats) error {
	return s.db.WithContext(ctx).Model(&model.UserStats{}).
		Where("user_id = ?", stats.UserID).
		Updates(map[string]interface{}{
			"total_stories":   stats.TotalStories,
			"current_streak":  stats.CurrentStreak,
			"longest_streak":  stats.LongestStreak,
			"last_story_date": stats.LastStoryDate,
			"total_xp":        stats.TotalXP,
		}).Error
}

func (s *UserStatsRepoImpl) AddXP(ctx context.Context, userID uint64, amount int) error {
	return s.db.WithContext(ctx).Model(&model.UserStats{}).
		Where("user_id = ?", userID).
		Update("total_xp", gorm.Expr("total_xp + ?", amount)).Error
}
