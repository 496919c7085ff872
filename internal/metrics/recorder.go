// Package metrics exports saved timer blocks as Prometheus metrics.
package metrics

import (
	"fmt"
	"log/slog"

	"github.com/MeKo-Tech/perfmon/internal/perf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultNamespace prefixes every metric name unless overridden.
const DefaultNamespace = "perfmon"

// Recorder observes saved blocks into a private registry.
type Recorder struct {
	registry *prometheus.Registry

	blockElapsed     *prometheus.HistogramVec
	blockSaves       *prometheus.CounterVec
	blockLastElapsed *prometheus.GaugeVec
}

var _ perf.Observer = (*Recorder)(nil)

// NewRecorder registers the block metrics on a fresh registry.
func NewRecorder(namespace string) *Recorder {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,

		blockElapsed: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "block_elapsed_seconds",
				Help:      "Elapsed time of saved timer blocks in seconds",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5, 10, 60},
			},
			[]string{"block"},
		),

		blockSaves: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "block_saves_total",
				Help:      "Total number of saved timer blocks",
			},
			[]string{"block"},
		),

		blockLastElapsed: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "block_last_elapsed_seconds",
				Help:      "Elapsed time of the most recent save per block in seconds",
			},
			[]string{"block"},
		),
	}
}

// ObserveBlock records one saved block.
func (r *Recorder) ObserveBlock(name string, b perf.Block) {
	seconds := b.Elapsed.Seconds()

	r.blockElapsed.WithLabelValues(name).Observe(seconds)
	r.blockSaves.WithLabelValues(name).Inc()
	r.blockLastElapsed.WithLabelValues(name).Set(seconds)

	slog.Debug("block observed", "block", name, "elapsed", b.Elapsed)
}

// Gatherer exposes the registry, e.g. for promhttp.HandlerFor.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile dumps all metrics in the node exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}
