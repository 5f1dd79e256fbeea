package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"timewrap/internal/pipeline"
)

type Registry struct {
	Requests *prometheus.CounterVec

	reg *prometheus.Registry
}

func NewRegistry() *Registry {
	r := &Registry{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "timewrap_requests_total",
			Help: "Requests that reached the after-all stage",
		}, []string{"method", "code"}),
		reg: prometheus.NewRegistry(),
	}
	r.reg.MustRegister(r.Requests)
	return r
}

// CountRequest is an AfterAll hook.
func (r *Registry) CountRequest(c *pipeline.Context) {
	r.Requests.WithLabelValues(c.Request.Method, strconv.Itoa(c.Response.Status())).Inc()
	c.Next()
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
