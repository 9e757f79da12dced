package shell

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the server's collectors on a private registry so several
// servers (tests) can coexist in one process.
type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	panics   prometheus.Counter
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &metrics{
		registry: reg,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pokedex_shell_requests_total",
				Help: "HTTP requests served, by status class",
			},
			[]string{"class"},
		),
		panics: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "pokedex_shell_panics_total",
				Help: "Handler panics recovered",
			},
		),
	}
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *metrics) observe(status int) {
	m.requests.WithLabelValues(statusClass(status)).Inc()
}

// statusClass buckets a status code as "2xx", "4xx", and so on.
func statusClass(status int) string {
	if status < 100 || status > 599 {
		return "other"
	}
	return strconv.Itoa(status/100) + "xx"
}
