package model

import "time"

type PublicStoryComment struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	PublicStoryID uint64    `gorm:"not null;index:idx_public_story_id" json:"public_story_id"`
	UserID        uint64    `gorm:"not null" json:"user_id"`
	Content       string    `gorm:"type:varchar(600);not null" json:"content"`
	CreatedAt     time.Time `json:"created_at"`
}

func (PublicStoryComment) TableName() string {
	return "public_story_comments"
}
