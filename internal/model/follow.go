package model

import "time"

type Follow struct {
	FollowerID  uint64    `gorm:"primaryKey" json:"follower_id"`
	FollowingID uint64    `gorm:"primaryKey;index:idx_following_id" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
