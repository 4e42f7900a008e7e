package model

import "time"

type UserAchievement struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	UserID          uint64    `gorm:"not null;uniqueIndex:idx_user_achievement" json:"user_id"`
	AchievementType string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_user_achievement" json:"achievement_type"`
	Title           string    `gorm:"type:varchar(100);not null" json:"title"`
	Description     string    `gorm:"type:varchar(255);not null" json:"description"`
	XPReward        int       `gorm:"column:xp_reward;not null;default:0" json:"xp_reward"`
	EarnedAt        time.Time `json:"earned_at"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
