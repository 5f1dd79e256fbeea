package timewrap

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Response exposes what a Handler needs from the outgoing response.
type Response interface {
	Status() int
}

// Handler renders the log line for a finished request.
type Handler func(info *Info, req *http.Request, res Response) string

// DefaultHandler renders "<METHOD> <PATH> <STATUS> <ms> ms" with three decimals.
func DefaultHandler(info *Info, req *http.Request, res Response) string {
	return fmt.Sprintf("%s %s %d %.3f ms", req.Method, req.URL.Path, res.Status(), info.Duration())
}

// RequestIDHandler is DefaultHandler prefixed with the X-Request-ID header when set.
func RequestIDHandler(info *Info, req *http.Request, res Response) string {
	line := DefaultHandler(info, req, res)
	if id := req.Header.Get("X-Request-ID"); id != "" {
		return "[" + id + "] " + line
	}
	return line
}

// Options configures Use. The zero value is usable: nil fields take the defaults.
type Options struct {
	Handler Handler
	// Logger receives each line at info level. Nil means the global zerolog logger.
	Logger *zerolog.Logger
	// Clock stamps start and end times. Nil means time.Now.
	Clock func() time.Time
}

// DefaultOptions returns the options Use falls back to.
func DefaultOptions() Options {
	return Options{
		Handler: DefaultHandler,
		Logger:  &log.Logger,
		Clock:   time.Now,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Handler == nil {
		o.Handler = d.Handler
	}
	if o.Logger == nil {
		o.Logger = d.Logger
	}
	if o.Clock == nil {
		o.Clock = d.Clock
	}
	return o
}

// HandlerByName maps a configured formatter name to a Handler.
func HandlerByName(name string) (Handler, error) {
	switch name {
	case "", "default":
		return DefaultHandler, nil
	case "request-id":
		return RequestIDHandler, nil
	default:
		return nil, fmt.Errorf("unknown formatter %q", name)
	}
}
