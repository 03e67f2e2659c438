package apihandlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"querykeys/internal/downstream"
)

const requestIDKey = "request_id"

// RequestID tags every request with an id, reusing the caller's X-Request-ID
// when present, and echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(downstream.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(downstream.RequestIDHeader, id)
		c.Next()
	}
}
