package timewrap

import "timewrap/internal/pipeline"

// Registrar is the part of pipeline.Router that Use needs.
type Registrar interface {
	Use(event pipeline.Event, hook pipeline.HookFunc)
}

// Use installs request timing on r.
//
// Timing has to span every route handler, so it cannot be an ordinary wrapping
// middleware: it registers a BeforeAll hook that stamps the start and an
// AfterAll hook that stamps the end and logs opts.Handler's line at info level.
func Use(r Registrar, opts Options) {
	opts = opts.withDefaults()

	r.Use(pipeline.BeforeAll, func(c *pipeline.Context) {
		FromContext(c).StartAt(opts.Clock())
		c.Next()
	})
	r.Use(pipeline.AfterAll, func(c *pipeline.Context) {
		info := FromContext(c)
		info.EndAt(opts.Clock())
		opts.Logger.Info().Msg(opts.Handler(info, c.Request, c.Response))
		c.Next()
	})
}
