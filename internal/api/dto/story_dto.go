package dto

import "time"

// GenerateStoryDTO 生成故事请求
type GenerateStoryDTO struct {
	Prompt          string  `json:"prompt" validate:"required,min=1,max=2000"`
	Genre           *string `json:"genre,omitempty" validate:"omitempty,max=50"`
	Tone            *string `json:"tone,omitempty" validate:"omitempty,max=50"`
	Archetype       *string `json:"archetype,omitempty" validate:"omitempty,max=50"`
	ContinuedFromID *uint64 `json:"continuedFromId,omitempty"`
}

// StoryDTO 故事
type StoryDTO struct {
	ID              uint64    `json:"id"`
	UserID          uint64    `json:"user_id"`
	Prompt          string    `json:"prompt"`
	Content         string    `json:"content"`
	Title           *string   `json:"title"`
	Genre           *string   `json:"genre,omitempty"`
	Tone            *string   `json:"tone,omitempty"`
	ContinuedFromID *uint64   `json:"continued_from_id,omitempty"`
	WordCount       int       `json:"word_count"`
	ShareID         *string   `json:"share_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// StoryResultDTO 生成结果，remaining 为 nil 表示不限量
type StoryResultDTO struct {
	Story     *StoryDTO `json:"story"`
	Remaining *int      `json:"remaining"`
}

// StoryListDTO 故事列表
type StoryListDTO struct {
	Stories   []*StoryDTO `json:"stories"`
	Remaining *int        `json:"remaining"`
}

// ShareResultDTO 生成分享链接结果
type ShareResultDTO struct {
	Story    *StoryDTO `json:"story"`
	ShareURL string    `json:"shareUrl"`
}
