package util

import (
	"Fable/internal/pkg/consts"
	"strings"
	"time"
)

// CountWords 按空白切分统计词数
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// DateOf 取 UTC 日历日
func DateOf(t time.Time) string {
	return t.UTC().Format(consts.DateLayout)
}

// SameCalendarDay 两个时间是否落在同一 UTC 日历日
func SameCalendarDay(a, b time.Time) bool {
	return DateOf(a) == DateOf(b)
}

// IsYesterdayOf 判断 earlier 是否为 later 的前一 UTC 日历日
func IsYesterdayOf(earlier, later time.Time) bool {
	return DateOf(earlier) == DateOf(later.AddDate(0, 0, -1))
}
