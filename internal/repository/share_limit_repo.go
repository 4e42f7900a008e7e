package repository

import (
	"Fable/internal/model"
	"Fable/internal/pkg/util"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShareLimitRepo interface {
	TryConsume(ctx context.Context, userID uint64, now time.Time, dailyLimit int) (bool, error)
}

type ShareLimitRepoImpl struct {
	db *gorm.DB
}

func NewShareLimitRepo(db *gorm.DB) ShareLimitRepo {
	return &ShareLimitRepoImpl{db: db}
}

// TryConsume 行锁事务内检查并占用当日配额：跨日重置为 1，当日未满则 +1，
// 满额返回 false。检查与写入同锁，并发分享不会双双通过
func (s *ShareLimitRepoImpl) TryConsume(ctx context.Context, userID uint64, now time.Time, dailyLimit int) (bool, error) {
	allowed := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var limit model.DailyShareLimit
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			First(&limit)

		if result.Error != nil {
			if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return result.Error
			}
			allowed = true
			return tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&model.DailyShareLimit{UserID: userID, SharedCount: 1, LastReset: now}).Error
		}

		if !util.SameCalendarDay(limit.LastReset, now) {
			allowed = true
			return tx.Model(&model.DailyShareLimit{}).
				Where("user_id = ?", userID).
				Updates(map[string]interface{}{
					"shared_count": 1,
					"last_reset":   now,
				}).Error
		}

		if limit.SharedCount >= dailyLimit {
			return nil
		}

		allowed = true
		return tx.Model(&model.DailyShareLimit{}).
			Where("user_id = ?", userID).
			Updates(map[string]interface{}{
				"shared_count": limit.SharedCount + 1,
				"last_reset":   now,
			}).Error
	})

	if err != nil {
		return false, err
	}
	return allowed, nil
}
