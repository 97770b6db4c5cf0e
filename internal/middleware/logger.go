package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"musicschool/internal/pkg/response"
)

// RequestLogger logs every request with latency and status, plus any
// errors handlers attached to the gin context.
func RequestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", latency,
			"client_ip", c.ClientIP(),
		}

		if len(c.Errors) > 0 {
			log.Errorw("request failed", append(fields, "errors", c.Errors.String())...)
			return
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			log.Errorw("request errored", fields...)
		} else {
			log.Infow("request", fields...)
		}
	}
}

// Recovery converts panics into a 500 response instead of killing the
// worker goroutine.
func Recovery(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("panic recovered",
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"panic", r,
				)
				response.Error(c, http.StatusInternalServerError, "internal_error", "internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
