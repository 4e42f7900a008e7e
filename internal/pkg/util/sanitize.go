package util

import (
	"regexp"
	"strings"
)

var tagRegex = regexp.MustCompile(`<[^>]*>`)

// Sanitize 清洗用户输入：去首尾空白 → 截断 → 去除 <...> 标签片段 → 转义 &、<、>
// 先转义 & 再转义 < >，避免对引入的实体二次转义
func Sanitize(input string, maxLength int) string {
	s := strings.TrimSpace(input)

	if runes := []rune(s); len(runes) > maxLength {
		s = string(runes[:maxLength])
	}

	s = tagRegex.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")

	return s
}
