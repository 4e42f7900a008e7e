package model

import (
	"time"
)

const (
	TierFree    = "FREE"
	TierPremium = "PREMIUM"
)

type User struct {
	ID           uint64     `gorm:"primaryKey"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_email" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	Tier         string     `gorm:"type:varchar(10);not null;default:'FREE'" json:"tier"`
	PremiumUntil *time.Time `json:"premium_until,omitempty"` // nil + PREMIUM 表示永久会员
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// IsPremiumActive 判断会员是否处于有效期内
func (u *User) IsPremiumActive(now time.Time) bool {
	if u.Tier != TierPremium {
		return false
	}
	return u.PremiumUntil == nil || u.PremiumUntil.After(now)
}
