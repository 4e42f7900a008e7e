package dto

import "time"

// RegisterDTO 注册
type RegisterDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// CredentialDTO 登录凭证
type CredentialDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserDTO 用户
type UserDTO struct {
	UserID       uint64     `json:"user_id"`
	Email        string     `json:"email"`
	Tier         string     `json:"tier"`
	PremiumUntil *time.Time `json:"premium_until,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// AuthResultDTO 注册/登录结果
type AuthResultDTO struct {
	User  *UserDTO `json:"user"`
	Token string   `json:"token"`
}
