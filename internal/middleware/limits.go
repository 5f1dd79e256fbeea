package middleware

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"timewrap/internal/pipeline"
)

const (
	// MaxRequestSize limits request body size to 10MB
	MaxRequestSize = 10 * 1024 * 1024
)

// RequestSizeLimit returns a BeforeAll hook enforcing a maximum request body size.
// Oversized requests are answered with 413 and never reach the routes.
func RequestSizeLimit(maxBytes int64) pipeline.HookFunc {
	return func(c *pipeline.Context) {
		r := c.Request
		if r.ContentLength > maxBytes {
			log.Warn().
				Int64("content_length", r.ContentLength).
				Int64("max_size", maxBytes).
				Msg("request body too large")
			http.Error(c.Response, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		if r.Body != nil {
			r.Body = http.MaxBytesReader(c.Response, r.Body, maxBytes)
		}
		c.Next()
	}
}
