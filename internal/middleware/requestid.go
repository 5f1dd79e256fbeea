package middleware

import (
	"github.com/google/uuid"

	"timewrap/internal/pipeline"
)

// RequestIDKey is the pipeline store key holding the request ID.
const RequestIDKey = "request_id"

// RequestID is a BeforeAll hook that ensures X-Request-ID is set on the request
// and echoed on the response.
func RequestID(c *pipeline.Context) {
	id := c.Request.Header.Get("X-Request-ID")
	if id == "" {
		id = uuid.New().String()
		c.Request.Header.Set("X-Request-ID", id)
	}
	c.Response.Header().Set("X-Request-ID", id)
	c.Set(RequestIDKey, id)
	c.Next()
}
