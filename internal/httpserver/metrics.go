package httpserver

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics contains the HTTP and conversion metrics of one server.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	ConversionsTotal      *prometheus.CounterVec
	ConversionIssues      *prometheus.CounterVec
	DocumentDefinitions   prometheus.Histogram
	ValidationErrorsTotal prometheus.Counter
}

// NewMetrics creates the server metrics. They are not registered.
func NewMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "apidocswagger",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests by route and status code",
			},
			[]string{"route", "code"},
		),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "apidocswagger",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),

		ConversionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "apidocswagger",
				Subsystem: "conversion",
				Name:      "total",
				Help:      "Total number of conversions (result=success, warnings, failed)",
			},
			[]string{"result"},
		),

		ConversionIssues: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "apidocswagger",
				Subsystem: "conversion",
				Name:      "issues_total",
				Help:      "Total number of conversion issues by severity",
			},
			[]string{"severity"},
		),

		DocumentDefinitions: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "apidocswagger",
				Subsystem: "conversion",
				Name:      "definitions",
				Help:      "Number of definitions per generated document",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
			},
		),

		ValidationErrorsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "apidocswagger",
				Subsystem: "validation",
				Name:      "errors_total",
				Help:      "Total number of validation errors reported",
			},
		),
	}
}

// Register adds every metric to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.RequestsTotal,
		m.RequestDuration,
		m.ConversionsTotal,
		m.ConversionIssues,
		m.DocumentDefinitions,
		m.ValidationErrorsTotal,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry holding m plus the Go runtime and process
// collectors.
func NewRegistry(m *Metrics) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}
	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, err
	}
	if err := m.Register(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// RecordRequest records one served request.
func (m *Metrics) RecordRequest(route, code string, d time.Duration) {
	m.RequestsTotal.WithLabelValues(route, code).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(d.Seconds())
}

// RecordConversion records the outcome of one conversion.
func (m *Metrics) RecordConversion(result string, definitions int) {
	m.ConversionsTotal.WithLabelValues(result).Inc()
	if result != "failed" {
		m.DocumentDefinitions.Observe(float64(definitions))
	}
}

// RecordIssues adds n issues of the given severity.
func (m *Metrics) RecordIssues(severity string, n int) {
	if n > 0 {
		m.ConversionIssues.WithLabelValues(severity).Add(float64(n))
	}
}

// RecordValidationErrors adds n validation errors.
func (m *Metrics) RecordValidationErrors(n int) {
	if n > 0 {
		m.ValidationErrorsTotal.Add(float64(n))
	}
}
