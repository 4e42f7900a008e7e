package llm

import (
	"regexp"
	"strings"
)

// 只认文本起始处的 **...** 标记（允许前导空白），正文中间的标记不是标题
var titleRegex = regexp.MustCompile(`^\s*\*\*(.+?)\*\*\s*`)

// ExtractTitle 从原始回复中提取标题并从正文剥离；无标记时标题为 nil，正文原样返回
func ExtractTitle(raw string) (*string, string) {
	m := titleRegex.FindStringSubmatch(raw)
	if m == nil {
		return nil, raw
	}

	title := strings.TrimSpace(m[1])
	content := strings.TrimSpace(raw[len(m[0]):])
	return &title, content
}
