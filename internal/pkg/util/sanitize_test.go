package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStripsTagsAndEscapes(t *testing.T) {
	assert.Equal(t, "hi &amp; bye", Sanitize("<script>hi</script> & bye", 50))
}

func TestSanitizeTrimsWhitespace(t *testing.T) {
	assert.Equal(t, "hello", Sanitize("   hello   ", 50))
}

func TestSanitizeTruncatesBeforeStripping(t *testing.T) {
	// 截断发生在去标签之前，超长输入裁到 maxLength 个 rune
	long := strings.Repeat("x", 300)
	assert.Equal(t, strings.Repeat("x", 200), Sanitize(long, 200))
}

func TestSanitizeTruncationCanSplitTag(t *testing.T) {
	// 截断切开标签后残缺的 "<b" 不再成对，按字面转义保留
	got := Sanitize("abc<b>def", 5)
	assert.Equal(t, "abc&lt;b", got)
}

func TestSanitizeEscapeOrder(t *testing.T) {
	// 先转义 & 再转义 < >，不会产生 &amp;lt;；孤立的尖括号不构成标签
	assert.Equal(t, "5 &gt; 3 &amp;&amp; 2 &lt; x", Sanitize("5 > 3 && 2 < x", 50))
}

func TestSanitizeEmptyAfterCleaning(t *testing.T) {
	assert.Equal(t, "", Sanitize("  <br/>  ", 50))
	assert.Equal(t, "", Sanitize("     ", 50))
}

func TestSanitizeMultibyte(t *testing.T) {
	// 按 rune 截断，多字节字符不被切坏
	assert.Equal(t, "你好世", Sanitize("你好世界", 3))
}
