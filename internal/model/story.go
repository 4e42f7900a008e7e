package model

import (
	"time"
)

type Story struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	UserID          uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	Prompt          string    `gorm:"type:varchar(2000);not null" json:"prompt"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	Title           *string   `gorm:"type:varchar(255)" json:"title"`
	Genre           *string   `gorm:"type:varchar(50)" json:"genre"`
	Tone            *string   `gorm:"type:varchar(50)" json:"tone"`
	ContinuedFromID *uint64   `gorm:"index:idx_continued_from" json:"continued_from_id"`
	WordCount       int       `gorm:"not null;default:0" json:"word_count"`
	ShareID         *string   `gorm:"type:varchar(36);uniqueIndex:idx_share_id" json:"share_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Story) TableName() string {
	return "stories"
}
