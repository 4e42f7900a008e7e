package model

// ThemeUnlock 主题解锁门槛，启动时种子化；是否解锁按请求方 XP 即时计算，不落库
type ThemeUnlock struct {
	ThemeID     string `gorm:"primaryKey;type:varchar(50)" json:"theme_id"`
	ThemeName   string `gorm:"type:varchar(100);not null" json:"theme_name"`
	XPThreshold int    `gorm:"column:xp_threshold;not null;default:0" json:"xp_threshold"`
}

func (ThemeUnlock) TableName() string {
	return "theme_unlocks"
}
