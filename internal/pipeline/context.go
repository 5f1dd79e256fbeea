package pipeline

import "net/http"

// Context carries one request through the pipeline. Its store is shared by every
// hook and route handler that sees the request.
type Context struct {
	Request  *http.Request
	Response *Response

	values  map[string]any
	proceed bool
}

func newContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{
		Request:  r,
		Response: NewResponse(w),
		values:   make(map[string]any),
	}
}

// Get returns the value stored under key.
func (c *Context) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Set stores v under key, replacing any previous value.
func (c *Context) Set(key string, v any) {
	c.values[key] = v
}

// Delete removes key from the store.
func (c *Context) Delete(key string) {
	delete(c.values, key)
}

// Next tells the pipeline the current hook is done and the request may move on.
// A hook that returns without calling Next aborts the request.
func (c *Context) Next() {
	c.proceed = true
}
