// Package metrics exposes scheduler and HTTP counters through Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cook"

// Recorder implements ports.Metrics and telemetry.SpanObserver over its own registry.
type Recorder struct {
	registry *prometheus.Registry

	packagesCooked *prometheus.CounterVec
	queueDepth     prometheus.Gauge
	gcPasses       *prometheus.CounterVec
	childExits     *prometheus.CounterVec
	spanDuration   *prometheus.HistogramVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	httpInflight prometheus.Gauge
}

// New creates a Recorder and registers its collectors with reg.
func New(reg *prometheus.Registry) *Recorder {
	r := &Recorder{
		registry: reg,
		packagesCooked: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "scheduler",
				Name:      "packages_cooked_total",
				Help:      "Terminal package cook results by platform and status",
			},
			[]string{"platform", "status"},
		),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "queue_depth",
			Help:      "Pending cook requests",
		}),
		gcPasses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "scheduler",
				Name:      "gc_passes_total",
				Help:      "Garbage collection passes by trigger",
			},
			[]string{"reason"},
		),
		childExits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "children",
				Name:      "exits_total",
				Help:      "Child cooker terminations by exit code",
			},
			[]string{"code"},
		),
		spanDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "trace",
				Name:      "span_duration_seconds",
				Help:      "Duration of traced work in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"kind", "status"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"path", "method", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"path", "method", "status"},
		),
		httpInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "In-flight HTTP requests",
		}),
	}
	reg.MustRegister(
		r.packagesCooked, r.queueDepth, r.gcPasses, r.childExits, r.spanDuration,
		r.httpRequests, r.httpDuration, r.httpInflight,
	)
	return r
}

// PackageCooked counts one terminal (package, platform) result.
func (r *Recorder) PackageCooked(platform, status string) {
	r.packagesCooked.WithLabelValues(platform, status).Inc()
}

// QueueDepth reports the number of pending requests.
func (r *Recorder) QueueDepth(n int) {
	r.queueDepth.Set(float64(n))
}

// GarbageCollected counts one collection pass.
func (r *Recorder) GarbageCollected(reason string) {
	if reason == "" {
		reason = "unspecified"
	}
	r.gcPasses.WithLabelValues(reason).Inc()
}

// ChildExited counts one child cooker termination.
func (r *Recorder) ChildExited(code int) {
	r.childExits.WithLabelValues(strconv.Itoa(code)).Inc()
}

// ObserveSpan records the duration of a finished span.
func (r *Recorder) ObserveSpan(kind string, seconds float64, failed bool) {
	status := "ok"
	if failed {
		status = "error"
	}
	r.spanDuration.WithLabelValues(kind, status).Observe(seconds)
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// Middleware instruments requests.
func (r *Recorder) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		r.httpInflight.Inc()
		next.ServeHTTP(sr, req)
		r.httpInflight.Dec()

		// The route pattern is only known once chi has routed the request.
		path := routePatternOrPath(req)
		status := strconv.Itoa(sr.status)
		r.httpRequests.WithLabelValues(path, req.Method, status).Inc()
		r.httpDuration.WithLabelValues(path, req.Method, status).Observe(time.Since(start).Seconds())
	})
}

// routePatternOrPath keeps label cardinality low by preferring the chi route pattern.
func routePatternOrPath(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
