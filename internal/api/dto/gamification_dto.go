package dto

import "time"

// StatsDTO 游戏化账本视图，含创作与登录两条相互独立的 streak
type StatsDTO struct {
	TotalStories       int        `json:"total_stories"`
	CurrentStreak      int        `json:"current_streak"`
	LongestStreak      int        `json:"longest_streak"`
	LastStoryDate      *time.Time `json:"last_story_date"`
	TotalXP            int        `json:"total_xp"`
	LoginStreak        int        `json:"login_streak"`
	LongestLoginStreak int        `json:"longest_login_streak"`
}

// AchievementDTO 成就
type AchievementDTO struct {
	AchievementType string    `json:"achievement_type"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	XPReward        int       `json:"xp_reward"`
	EarnedAt        time.Time `json:"earned_at"`
}
