// Package metrics exposes name registry traffic as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector implements dnscache.Observer on top of Prometheus metrics.
type Collector struct {
	lookups    *prometheus.CounterVec
	adds       prometheus.Counter
	configured prometheus.Gauge

	registry *prometheus.Registry
}

// NewCollector registers the collector's metrics on a private registry.
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = "devproc"
	}

	c := &Collector{
		registry: prometheus.NewRegistry(),
	}

	c.lookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "name_lookups_total",
			Help:      "Total number of name registry lookups",
		},
		[]string{"result"},
	)

	c.adds = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "name_adds_total",
			Help:      "Total number of runtime name registry additions",
		},
	)

	c.configured = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "configured_processes",
			Help:      "Number of processes in the resolved configuration",
		},
	)

	c.registry.MustRegister(c.lookups, c.adds, c.configured)
	return c
}

// ObserveLookup counts a lookup as a hit or a miss.
func (c *Collector) ObserveLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.lookups.WithLabelValues(result).Inc()
}

// ObserveAdd counts a runtime addition.
func (c *Collector) ObserveAdd() {
	c.adds.Inc()
}

// SetConfiguredProcesses records the size of the resolved configuration.
func (c *Collector) SetConfiguredProcesses(n int) {
	c.configured.Set(float64(n))
}

// Registry returns the underlying Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the collector's metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
