package middleware

import (
	"mf-api/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "rqID"

	maxRequestIDLen = 128
)

// RequestID keeps the caller's X-Request-ID or assigns a new one, and
// stores it on the request context for logging.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rqID := c.GetHeader(RequestIDHeader)
		if rqID == "" || len(rqID) > maxRequestIDLen {
			rqID = uuid.NewString()
		}

		c.Set(requestIDKey, rqID)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), rqID))
		c.Header(RequestIDHeader, rqID)

		c.Next()
	}
}
