package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterFixedWindow(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(250 * time.Millisecond)
	limiter.now = func() time.Time { return now }

	allowed, _ := limiter.Allow("1.2.3.4")
	assert.True(t, allowed)

	// 窗口内第二次被拒，并给出剩余等待时长
	now = now.Add(100 * time.Millisecond)
	allowed, wait := limiter.Allow("1.2.3.4")
	assert.False(t, allowed)
	assert.Equal(t, 150*time.Millisecond, wait)

	// 不同 IP 互不影响
	allowed, _ = limiter.Allow("5.6.7.8")
	assert.True(t, allowed)

	// 窗口过后放行
	now = now.Add(200 * time.Millisecond)
	allowed, _ = limiter.Allow("1.2.3.4")
	assert.True(t, allowed)
}

func TestRateLimiterRejectionDoesNotConsumeToken(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(250 * time.Millisecond)
	limiter.now = func() time.Time { return now }

	allowed, _ := limiter.Allow("1.2.3.4")
	assert.True(t, allowed)

	// 连续被拒不顺延恢复时间
	now = now.Add(100 * time.Millisecond)
	_, wait := limiter.Allow("1.2.3.4")
	assert.Equal(t, 150*time.Millisecond, wait)

	now = now.Add(50 * time.Millisecond)
	_, wait = limiter.Allow("1.2.3.4")
	assert.Equal(t, 100*time.Millisecond, wait)

	now = now.Add(100 * time.Millisecond)
	allowed, _ = limiter.Allow("1.2.3.4")
	assert.True(t, allowed)
}
