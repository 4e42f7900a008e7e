package model

import "time"

type PublicStoryLike struct {
	PublicStoryID uint64    `gorm:"primaryKey" json:"public_story_id"`
	UserID        uint64    `gorm:"primaryKey;index:idx_user_id" json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func (PublicStoryLike) TableName() string {
	return "public_story_likes"
}
