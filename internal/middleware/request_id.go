package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ridwanfathin/shelf-price-monitor/internal/logger"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	loggerKey       = "logger"
)

// RequestID assigns every request an id, honouring a valid incoming one, and
// attaches it to the request context logger
func RequestID(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Set(loggerKey, log)
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// GetLogger returns the logger installed by RequestID, or a discarding one
func GetLogger(c *gin.Context) *logger.Logger {
	if log, ok := c.Get(loggerKey); ok {
		if l, ok := log.(*logger.Logger); ok {
			return l
		}
	}
	return logger.Nop()
}
