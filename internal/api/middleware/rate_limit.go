package middleware

import (
	"Fable/internal/pkg/response"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter 以来源 IP 为键的限流器，每个 IP 一个令牌桶（burst=1，
// 补充速率即请求窗口），构造后注入路由，不做包级单例
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	now      func() time.Time
}

func NewRateLimiter(window time.Duration) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(window),
		now:      time.Now,
	}
}

// Allow 窗口内的第二次请求被拒，返回剩余等待时长
func (r *RateLimiter) Allow(ip string) (bool, time.Duration) {
	r.mu.Lock()
	lim, ok := r.limiters[ip]
	if !ok {
		if len(r.limiters) > 65536 {
			r.limiters = make(map[string]*rate.Limiter)
		}
		lim = rate.NewLimiter(r.limit, 1)
		r.limiters[ip] = lim
	}
	r.mu.Unlock()

	now := r.now()
	reservation := lim.ReserveN(now, 1)
	if wait := reservation.DelayFrom(now); wait > 0 {
		// 拒绝的请求不占用令牌
		reservation.CancelAt(now)
		return false, wait
	}
	return true, 0
}

func RateLimitMiddleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, wait := limiter.Allow(c.ClientIP())
		if !allowed {
			seconds := int64(wait / time.Second)
			if wait%time.Second > 0 {
				seconds++
			}
			c.Header("Retry-After", strconv.FormatInt(seconds, 10))
			response.Fail(c, http.StatusTooManyRequests, "too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
