package model

import "time"

// StoryUsage 每用户每日生成次数计数，UsageDate 取 UTC 日历日 "2006-01-02"
type StoryUsage struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_user_date" json:"user_id"`
	UsageDate string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_user_date" json:"usage_date"`
	Count     int       `gorm:"not null;default:0" json:"count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StoryUsage) TableName() string {
	return "story_usages"
}
