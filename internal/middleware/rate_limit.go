package middleware

import (
	"net/http"
	"sync"

	"go-reestr/internal/shared/apperror"
	"go-reestr/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type KeyedRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       *sync.Mutex
	r        rate.Limit
	b        int
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		mu:       &sync.Mutex{},
		r:        r,
		b:        b,
	}
}

func (l *KeyedRateLimiter) GetLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.limiters[key] = limiter
	}

	return limiter
}

var (
	errTooManyFromIP   = apperror.New(apperror.CodeTooMany, "Слишком много запросов с этого адреса", http.StatusTooManyRequests)
	errTooManyFromUser = apperror.New(apperror.CodeTooMany, "Слишком много запросов от пользователя", http.StatusTooManyRequests)
)

// RateLimitByIP: r = requests per second, b = burst
func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			response.Abort(c, errTooManyFromIP)
			return
		}
		c.Next()
	}
}

// RateLimitByUser keys on the session email and falls back to the client IP
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(callerKey(c)).Allow() {
			response.Abort(c, errTooManyFromUser)
			return
		}
		c.Next()
	}
}

// callerKey identifies the caller by session email, or by client IP for
// anonymous requests.
func callerKey(c *gin.Context) string {
	if email := c.GetString(UserEmailKey); email != "" {
		return email
	}
	return "ip:" + c.ClientIP()
}
