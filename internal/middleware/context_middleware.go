package middleware

import (
	"time"

	"go-reestr/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger attaches a request scoped logger to the request context and
// writes one access line per request. It must run after RequestID and
// SessionUser.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		rid := c.GetString(RequestIDKey)
		if rid == "" {
			rid = uuid.New().String()
			c.Header(RequestIDHeader, rid)
		}
		email := c.GetString(UserEmailKey)

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("user_email", email),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithUserEmail(ctx, email)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		reqLogger.Info("request handled",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
