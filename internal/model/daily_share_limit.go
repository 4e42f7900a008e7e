package model

import "time"

// DailyShareLimit 每用户每日分享配额，LastReset 跨日后 SharedCount 重置为 1
type DailyShareLimit struct {
	UserID      uint64    `gorm:"primaryKey" json:"user_id"`
	SharedCount int       `gorm:"not null;default:0" json:"shared_count"`
	LastReset   time.Time `gorm:"not null" json:"last_reset"`
}

func (DailyShareLimit) TableName() string {
	return "daily_share_limits"
}
