package http

import (
	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/google/uuid"
	"time"
)

// requestLogger logs one line per request and tags the response with an X-Request-ID
func requestLogger(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		c.Next()

		logger.Log(
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(begin),
		)
	}
}
