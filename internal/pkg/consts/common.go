package consts

import "time"

const (
	// StoryXPAward 每次成功生成故事获得的基础 XP
	StoryXPAward = 10

	// LoginBonusPerDay 登录连击奖励的线性系数与上限
	LoginBonusPerDay = 5
	LoginBonusCap    = 50

	// ShareXPAward 分享到公共信息流的奖励
	ShareXPAward = 5
)

const (
	ExcerptMaxLength = 200
	CommentMaxLength = 500
	TitleMaxLength   = 100
)

const (
	PremiumDuration = 30 * 24 * time.Hour
)

// DateLayout 日历日，全部按 UTC 归一
const DateLayout = "2006-01-02"
