// Package metrics exposes process-local Prometheus counters and
// gauges for decode attempts, successes, error counts and clock
// estimates. Grounded on the teacher's PrometheusMetrics struct
// (prometheus.go), which registers GaugeVec/CounterVec collectors via
// promauto and labels them by a domain key ("band", "mode"); here the
// label is "modulation".
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collectors bundles every metric this console records.
type Collectors struct {
	DemodAttempts  *prometheus.CounterVec
	DemodSuccesses *prometheus.CounterVec
	DemodErrors    prometheus.Gauge
	ClockEstimate  *prometheus.GaugeVec

	registry *prometheus.Registry
}

// New registers a fresh set of collectors against a private registry,
// so tests and multiple sessions never collide with the default
// global registry.
func New() *Collectors {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collectors{
		registry: reg,
		DemodAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "demod_attempts_total",
			Help: "Number of demodulation attempts per modulation.",
		}, []string{"modulation"}),
		DemodSuccesses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "demod_successes_total",
			Help: "Number of successful demodulations per modulation.",
		}, []string{"modulation"}),
		DemodErrors: factory.NewGauge(prometheus.GaugeOpts{
			Name: "demod_error_count",
			Help: "Error count reported by the most recent demodulation run.",
		}),
		ClockEstimate: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "clock_detect_estimate",
			Help: "Most recent bit-clock estimate per modulation.",
		}, []string{"modulation"}),
	}
}

// RecordAttempt increments the attempt counter for modulation.
func (c *Collectors) RecordAttempt(modulation string) {
	c.DemodAttempts.WithLabelValues(modulation).Inc()
}

// RecordSuccess increments the success counter and records the clock
// estimate for modulation.
func (c *Collectors) RecordSuccess(modulation string, clock int) {
	c.DemodSuccesses.WithLabelValues(modulation).Inc()
	c.ClockEstimate.WithLabelValues(modulation).Set(float64(clock))
}

// RecordErrorCount sets the last-run error-count gauge.
func (c *Collectors) RecordErrorCount(n int) {
	c.DemodErrors.Set(float64(n))
}

// Handler returns the HTTP handler serving this registry's metrics,
// for the CLI's opt-in --metrics-addr listener.
func (c *Collectors) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
