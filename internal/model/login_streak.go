package model

import "time"

// LoginStreak 登录连续天数，与 UserStats 的创作 streak 相互独立
type LoginStreak struct {
	UserID        uint64    `gorm:"primaryKey" json:"user_id"`
	CurrentStreak int       `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak int       `gorm:"not null;default:0" json:"longest_streak"`
	LastLogin     time.Time `gorm:"not null" json:"last_login"`
}

func (LoginStreak) TableName() string {
	return "login_streaks"
}
