package repository

import (
	"Fable/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoginStreakRepo interface {
	Get(ctx context.Context, userID uint64) (*model.LoginStreak, error)
	Upsert(ctx context.Context, streak *model.LoginStreak) error
}

type LoginStreakRepoImpl struct {
	db *gorm.DB
}

func NewLoginStreakRepo(db *gorm.DB) LoginStreakRepo {
	return &LoginStreakRepoImpl{db: db}
}

func (s *LoginStreakRepoImpl) Get(ctx context.Context, userID uint64) (*model.LoginStreak, error) {
	var streak model.LoginStreak
	result := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&streak)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &streak, nil
}

func (s *LoginStreakRepoImpl) Upsert(ctx context.Context, streak *model.LoginStreak) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns(
				[]string{"current_streak", "longest_streak", "last_login"},
			),
		}).
		Create(streak).Error
}
