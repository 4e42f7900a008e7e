package dto

import "time"

// ShareToFeedDTO 分享到公共信息流请求
type ShareToFeedDTO struct {
	StoryID uint64 `json:"story_id" validate:"required"`
}

// PublicStoryDTO 信息流帖子
type PublicStoryDTO struct {
	ID           uint64    `json:"id"`
	StoryID      uint64    `json:"story_id"`
	UserID       uint64    `json:"user_id"`
	Title        string    `json:"title"`
	Excerpt      string    `json:"excerpt"`
	LikeCount    int       `json:"like_count"`
	CommentCount int       `json:"comment_count"`
	SharedAt     time.Time `json:"shared_at"`
}

// FeedShareResultDTO 分享结果，附带源故事全文供客户端立即展示
type FeedShareResultDTO struct {
	Post  *PublicStoryDTO `json:"post"`
	Story *StoryDTO       `json:"story"`
}

// CommentCreateDTO 发表评论请求
type CommentCreateDTO struct {
	Content string `json:"content" validate:"required,max=600"`
}

// CommentDTO 评论
type CommentDTO struct {
	ID            uint64    `json:"id"`
	PublicStoryID uint64    `json:"public_story_id"`
	UserID        uint64    `json:"user_id"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
}

// LikeStateDTO 点赞状态
type LikeStateDTO struct {
	Liked bool `json:"liked"`
}

// ThemeUnlockDTO 主题解锁投影
type ThemeUnlockDTO struct {
	ThemeID     string `json:"theme_id"`
	ThemeName   string `json:"theme_name"`
	XPThreshold int    `json:"xp_threshold"`
	Unlocked    bool   `json:"unlocked"`
}
