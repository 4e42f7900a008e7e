package model

import "time"

// PublicStory 分享到公共信息流的帖子，一篇故事至多分享一次
type PublicStory struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	StoryID      uint64    `gorm:"not null;uniqueIndex:idx_story_id" json:"story_id"`
	UserID       uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Excerpt      string    `gorm:"type:varchar(255);not null" json:"excerpt"`
	LikeCount    int       `gorm:"not null;default:0" json:"like_count"`
	CommentCount int       `gorm:"not null;default:0" json:"comment_count"`
	SharedAt     time.Time `json:"shared_at"`
}

func (PublicStory) TableName() string {
	return "public_stories"
}
