package middleware

import (
	"math"
	"strconv"

	"github.com/haierkeys/quicknote/pkg/app"
	"github.com/haierkeys/quicknote/pkg/code"
	"github.com/haierkeys/quicknote/pkg/limiter"
	"github.com/haierkeys/quicknote/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimiter rejects a write with 429 when its route bucket is empty.
// Retry-After is the refill time of one token in whole seconds.
// RateLimiter 写接口限流，令牌不足时返回 429 并带上 Retry-After
func RateLimiter(l limiter.Face, lg *zap.Logger) gin.HandlerFunc {
	if lg == nil {
		lg = zap.NewNop()
	}
	return func(c *gin.Context) {
		key := l.Key(c)
		bucket, ok := l.GetBucket(key)
		if !ok || bucket.TakeAvailable(1) > 0 {
			c.Next()
			return
		}

		retry := 1
		if rate := bucket.Rate(); rate > 0 {
			retry = int(math.Max(1, math.Round(1/rate)))
		}
		lg.Warn("rate limited",
			zap.String(logger.FieldTraceID, GetTraceIDFromGin(c)),
			zap.String(logger.FieldMethod, c.Request.Method),
			zap.String(logger.FieldPath, key),
			zap.Int("retryAfter", retry))

		c.Header("Retry-After", strconv.Itoa(retry))
		app.NewResponse(c).ToResponse(code.ErrorTooManyRequests)
		c.Abort()
	}
}
