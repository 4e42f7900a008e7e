package repository

import (
	"Fable/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ThemeRepo interface {
	SeedThemes(ctx context.Context, themes []*model.ThemeUnlock) error
	GetAll(ctx context.Context) ([]*model.ThemeUnlock, error)
}

type ThemeRepoImpl struct {
	db *gorm.DB
}

func NewThemeRepo(db *gorm.DB) ThemeRepo {
	return &ThemeRepoImpl{db: db}
}

// SeedThemes 启动时种子化，已存在的主题不覆盖
func (s *ThemeRepoImpl) SeedThemes(ctx context.Context, themes []*model.ThemeUnlock) error {
	if len(themes) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(themes).Error
}

func (s *ThemeRepoImpl) GetAll(ctx context.Context) ([]*model.ThemeUnlock, error) {
	var themes []*model.ThemeUnlock
	result := s.db.WithContext(ctx).
		Order("xp_threshold asc").
		Find(&themes)
	if result.Error != nil {
		return nil, result.Error
	}
	return themes, nil
}
