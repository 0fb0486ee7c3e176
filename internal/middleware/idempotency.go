package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-reestr/internal/shared/apperror"
	"go-reestr/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyHeader       = "Idempotency-Key"
	IdempotencyReplayHeader = "Idempotent-Replayed"

	idempotencyTTL     = 24 * time.Hour
	idempotencyLockTTL = 30 * time.Second
)

var errRequestInFlight = apperror.New(apperror.CodeConflict,
	"Запрос с этим ключом идемпотентности ещё выполняется", http.StatusConflict)

type idempotentResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// IdempotencyCacheKey scopes key to the route and the caller.
func IdempotencyCacheKey(path, caller, key string) string {
	return fmt.Sprintf("idemp:%s:%s:%s", path, caller, key)
}

// Idempotency replays the stored response for a repeated POST carrying the
// same Idempotency-Key. Server errors are not stored.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader(IdempotencyHeader)
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := IdempotencyCacheKey(c.FullPath(), callerKey(c), idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached idempotentResponse
			if json.Unmarshal(val, &cached) == nil {
				c.Header(IdempotencyReplayHeader, "true")
				c.Data(cached.Status, cached.ContentType, cached.Body)
				c.Abort()
				return
			}
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			zap.L().Warn("idempotency lock unavailable", zap.Error(err), zap.String("key", lockKey))
			c.Next()
			return
		}
		if !isNew {
			response.Abort(c, errRequestInFlight)
			return
		}

		bg := context.WithoutCancel(ctx)
		defer rdb.Del(bg, lockKey)

		rec := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = rec

		c.Next()

		status := rec.Status()
		if status >= http.StatusInternalServerError {
			return
		}

		payload, err := json.Marshal(idempotentResponse{
			Status:      status,
			ContentType: rec.Header().Get("Content-Type"),
			Body:        rec.body.Bytes(),
		})
		if err != nil {
			return
		}
		if err := rdb.Set(bg, cacheKey, payload, idempotencyTTL).Err(); err != nil {
			zap.L().Warn("failed to store idempotent response", zap.Error(err), zap.String("key", cacheKey))
		}
	}
}
