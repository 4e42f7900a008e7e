package model

import "time"

type StoryFavorite struct {
	UserID    uint64    `gorm:"primaryKey" json:"user_id"`
	StoryID   uint64    `gorm:"primaryKey;index:idx_story_id" json:"story_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (StoryFavorite) TableName() string {
	return "story_favorites"
}
