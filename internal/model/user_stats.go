package model

import "time"

// UserStats 创作侧游戏化账本，与 users 一对一，首次写入时惰性创建
type UserStats struct {
	UserID        uint64     `gorm:"primaryKey" json:"user_id"`
	TotalStories  int        `gorm:"not null;default:0" json:"total_stories"`
	CurrentStreak int        `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak int        `gorm:"not null;default:0" json:"longest_streak"`
	LastStoryDate *time.Time `json:"last_story_date"`
	TotalXP       int        `gorm:"column:total_xp;not null;default:0" json:"total_xp"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (UserStats) TableName() string {
	return "user_stats"
}
