package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds the renamer's metrics only, without the Go runtime
// collectors, so textfile output stays small.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// Renamer metrics.
var (
	FilesTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "renamer_files_total",
		Help: "Files processed by outcome",
	}, []string{"outcome", "variant"})

	RunDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "renamer_run_duration_seconds",
		Help:    "Duration of a whole renamer run in seconds",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30, 120},
	})

	CopyDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "renamer_copy_duration_seconds",
		Help:    "Time spent copying a single file in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	})

	LastRunTimestamp = factory.NewGauge(prometheus.GaugeOpts{
		Name: "renamer_last_run_timestamp_seconds",
		Help: "Unix time the last run finished",
	})
)

// WriteTextfile writes all metrics in the node_exporter textfile format.
// The file is written atomically.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
