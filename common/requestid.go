package common

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// RequestID propagates an incoming request id or generates one when absent.
// The id is set on the response header and stored in the gin context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(requestIDHeader, id)
		c.Set("request_id", id)
		c.Next()
	}
}
