package driver

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eduplan/timetable-engine/internal/search"
)

// Metrics wraps a dedicated Prometheus registry for search-run
// instrumentation, kept separate from any HTTP-layer metrics so the core
// solver stays usable outside cmd/timetable-api.
type Metrics struct {
	registry     *prometheus.Registry
	handler      http.Handler
	runsTotal    *prometheus.CounterVec
	iterations   *prometheus.HistogramVec
	expanded     *prometheus.HistogramVec
	peakFrontier *prometheus.HistogramVec
	wallTime     *prometheus.HistogramVec
}

// NewMetrics registers the search-run collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	runsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "timetable_search_runs_total",
		Help: "Total number of search engine runs by strategy and outcome",
	}, []string{"strategy", "status"})

	iterations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "timetable_search_iterations",
		Help:    "Frontier pops per search run",
		Buckets: prometheus.ExponentialBuckets(8, 2, 16),
	}, []string{"strategy"})

	expanded := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "timetable_search_expanded_nodes",
		Help:    "Non-goal nodes expanded per search run",
		Buckets: prometheus.ExponentialBuckets(8, 2, 16),
	}, []string{"strategy"})

	peakFrontier := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "timetable_search_peak_frontier",
		Help:    "Peak frontier size reached during a search run",
		Buckets: prometheus.ExponentialBuckets(4, 2, 16),
	}, []string{"strategy"})

	wallTime := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "timetable_search_duration_seconds",
		Help:    "Wall-clock duration of a search run",
		Buckets: prometheus.DefBuckets,
	}, []string{"strategy"})

	registry.MustRegister(runsTotal, iterations, expanded, peakFrontier, wallTime)

	return &Metrics{
		registry:     registry,
		handler:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		runsTotal:    runsTotal,
		iterations:   iterations,
		expanded:     expanded,
		peakFrontier: peakFrontier,
		wallTime:     wallTime,
	}
}

// Handler exposes the Prometheus scrape endpoint for cmd/timetable-api.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Observe records one completed search run.
func (m *Metrics) Observe(strategy string, res search.Result, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.runsTotal.WithLabelValues(strategy, string(res.Status)).Inc()
	m.iterations.WithLabelValues(strategy).Observe(float64(res.Iterations))
	m.expanded.WithLabelValues(strategy).Observe(float64(res.Expanded))
	m.peakFrontier.WithLabelValues(strategy).Observe(float64(res.PeakFrontier))
	m.wallTime.WithLabelValues(strategy).Observe(elapsed.Seconds())
}
