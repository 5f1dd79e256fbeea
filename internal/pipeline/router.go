package pipeline

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
)

// Event names a point in request processing where hooks run.
type Event int

const (
	// BeforeAll fires before any route handler.
	BeforeAll Event = iota
	// AfterAll fires once every route handler has returned.
	AfterAll
)

func (e Event) String() string {
	switch e {
	case BeforeAll:
		return "before_all"
	case AfterAll:
		return "after_all"
	default:
		return "unknown"
	}
}

// HookFunc is a lifecycle callback. It must call c.Next() for the request to continue.
type HookFunc func(c *Context)

type contextKey struct{}

// FromRequest returns the pipeline Context attached to r by Router.
func FromRequest(r *http.Request) (*Context, bool) {
	c, ok := r.Context().Value(contextKey{}).(*Context)
	return c, ok
}

// Router runs lifecycle hooks around a gorilla/mux route table.
type Router struct {
	mu    sync.RWMutex
	hooks map[Event][]HookFunc
	mux   *mux.Router
}

// NewRouter returns an empty Router.
func NewRouter() *Router {
	return &Router{
		hooks: make(map[Event][]HookFunc),
		mux:   mux.NewRouter(),
	}
}

// Use registers hook for event. Hooks of the same event run in registration order.
func (rt *Router) Use(event Event, hook HookFunc) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.hooks[event] = append(rt.hooks[event], hook)
}

// Handle registers h for path and returns the mux route for further matchers.
func (rt *Router) Handle(path string, h http.Handler) *mux.Route {
	return rt.mux.Handle(path, h)
}

// HandleFunc registers f for path.
func (rt *Router) HandleFunc(path string, f func(http.ResponseWriter, *http.Request)) *mux.Route {
	return rt.mux.HandleFunc(path, f)
}

// NotFoundHandler replaces the handler used when no route matches.
func (rt *Router) NotFoundHandler(h http.Handler) {
	rt.mux.NotFoundHandler = h
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c := newContext(w, nil)
	c.Request = r.WithContext(context.WithValue(r.Context(), contextKey{}, c))

	if !rt.run(BeforeAll, c) {
		return
	}
	rt.mux.ServeHTTP(c.Response.ResponseWriter, c.Request)
	rt.run(AfterAll, c)
}

// run invokes the hooks for event and reports whether every hook called Next.
func (rt *Router) run(event Event, c *Context) bool {
	rt.mu.RLock()
	hooks := rt.hooks[event]
	rt.mu.RUnlock()

	for _, h := range hooks {
		c.proceed = false
		h(c)
		if !c.proceed {
			return false
		}
	}
	return true
}
