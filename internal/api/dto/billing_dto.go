package dto

import "time"

// CheckoutResultDTO 支付会话结果
type CheckoutResultDTO struct {
	CheckoutURL string `json:"checkoutUrl"`
}

// UpgradeResultDTO 会员开通结果
type UpgradeResultDTO struct {
	Tier         string     `json:"tier"`
	PremiumUntil *time.Time `json:"premium_until"`
}
