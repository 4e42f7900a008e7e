package repository

import (
	"Fable/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StoryUsageRepo interface {
	GetCount(ctx context.Context, userID uint64, usageDate string) (int, error)
	Increment(ctx context.Context, userID uint64, usageDate string) error
}

type StoryUsageRepoImpl struct {
	db *gorm.DB
}

func NewStoryUsageRepo(db *gorm.DB) StoryUsageRepo {
	return &StoryUsageRepoImpl{db: db}
}

func (s *StoryUsageRepoImpl) GetCount(ctx context.Context, userID uint64, usageDate string) (int, error) {
	var usage model.StoryUsage
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND usage_date = ?", userID, usageDate).
		First(&usage)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, result.Error
	}
	return usage.Count, nil
}

// Increment 当日计数 +1，无行则插入 count=1
func (s *StoryUsageRepoImpl) Increment(ctx context.Context, userID uint64, usageDate string) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "usage_date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("count + 1")}),
		}).
		Create(&model.StoryUsage{UserID: userID, UsageDate: usageDate, Count: 1}).Error
}
