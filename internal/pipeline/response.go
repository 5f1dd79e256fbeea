package pipeline

import (
	"io"
	"net/http"

	"github.com/felixge/httpsnoop"
)

// Response records the status code and body size of a request. The embedded
// writer keeps every optional interface (http.Flusher, http.Hijacker,
// io.ReaderFrom, ...) of the writer it wraps.
type Response struct {
	http.ResponseWriter

	orig    http.ResponseWriter
	status  int
	written int64
	wrote   bool
}

// NewResponse wraps w. Status reports 200 until a handler says otherwise.
func NewResponse(w http.ResponseWriter) *Response {
	r := &Response{orig: w, status: http.StatusOK}
	r.ResponseWriter = httpsnoop.Wrap(w, httpsnoop.Hooks{
		WriteHeader: func(next httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
			return func(code int) {
				if !r.wrote {
					r.status = code
					r.wrote = true
				}
				next(code)
			}
		},
		Write: func(next httpsnoop.WriteFunc) httpsnoop.WriteFunc {
			return func(b []byte) (int, error) {
				r.wrote = true
				n, err := next(b)
				r.written += int64(n)
				return n, err
			}
		},
		ReadFrom: func(next httpsnoop.ReadFromFunc) httpsnoop.ReadFromFunc {
			return func(src io.Reader) (int64, error) {
				r.wrote = true
				n, err := next(src)
				r.written += n
				return n, err
			}
		},
	})
	return r
}

// Status returns the status code sent (or to be sent) to the client.
func (r *Response) Status() int {
	return r.status
}

// BytesWritten returns the number of body bytes written so far.
func (r *Response) BytesWritten() int64 {
	return r.written
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (r *Response) Unwrap() http.ResponseWriter {
	return r.orig
}
