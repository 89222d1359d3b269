// ABOUTME: Prometheus recorder for render cycles, load failures, and widget counts.
// ABOUTME: Owns a private registry so tests and servers never share global state.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder observes render cycles. Implementations must be safe for
// concurrent use because the HTTP server renders on many goroutines.
type Recorder interface {
	ObserveCycle(role string, duration time.Duration)
	ObserveLoadFailure(dataset string)
	ObserveWidget(role, kind string)
}

// Nop discards every observation.
type Nop struct{}

func (Nop) ObserveCycle(string, time.Duration) {}
func (Nop) ObserveLoadFailure(string)          {}
func (Nop) ObserveWidget(string, string)       {}

// Prometheus records cycle metrics into its own registry.
type Prometheus struct {
	registry     *prometheus.Registry
	cycles       *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	loadFailures *prometheus.CounterVec
	widgets      *prometheus.CounterVec
}

// NewPrometheus creates a recorder with Go runtime and process collectors attached.
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		cycles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "galaxydash",
			Name:      "render_cycles_total",
			Help:      "Render cycles completed, by role.",
		}, []string{"role"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "galaxydash",
			Name:      "render_duration_seconds",
			Help:      "Wall time of one render cycle, by role.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"role"}),
		loadFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "galaxydash",
			Name:      "dataset_load_failures_total",
			Help:      "Datasets that could not be loaded, by dataset.",
		}, []string{"dataset"}),
		widgets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "galaxydash",
			Name:      "widgets_rendered_total",
			Help:      "Widgets placed on pages, by role and kind.",
		}, []string{"role", "kind"}),
	}

	p.registry.MustRegister(
		p.cycles,
		p.duration,
		p.loadFailures,
		p.widgets,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

func (p *Prometheus) ObserveCycle(role string, d time.Duration) {
	p.cycles.WithLabelValues(role).Inc()
	p.duration.WithLabelValues(role).Observe(d.Seconds())
}

func (p *Prometheus) ObserveLoadFailure(dataset string) {
	p.loadFailures.WithLabelValues(dataset).Inc()
}

func (p *Prometheus) ObserveWidget(role, kind string) {
	p.widgets.WithLabelValues(role, kind).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
