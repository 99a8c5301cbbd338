// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics counts batch outcomes with Prometheus collectors and writes
// them in the text exposition format, for pickup by the node_exporter
// textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pdiddy/pdfslice/pkg/types"
)

// Recorder holds the collectors for one run on a private registry.
type Recorder struct {
	reg      *prometheus.Registry
	started  time.Time
	files    *prometheus.CounterVec
	pages    prometheus.Counter
	duration prometheus.Gauge
	lastRun  prometheus.Gauge
}

// New returns a Recorder whose run clock starts now.
func New() *Recorder {
	r := &Recorder{
		reg:     prometheus.NewRegistry(),
		started: time.Now(),
		files: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pdfslice_files_total",
			Help: "PDF files processed, by outcome.",
		}, []string{"outcome"}),
		pages: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pdfslice_pages_written_total",
			Help: "Pages written to excerpt files.",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pdfslice_run_duration_seconds",
			Help: "Wall time of the last batch run.",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pdfslice_last_run_timestamp_seconds",
			Help: "Unix time at which the last batch run finished.",
		}),
	}
	r.reg.MustRegister(r.files, r.pages, r.duration, r.lastRun)

	// Export both outcomes even when one of them never occurs.
	r.files.WithLabelValues(string(types.OutcomeSuccess))
	r.files.WithLabelValues(string(types.OutcomeFailure))
	return r
}

// Observe implements batch.Observer.
func (r *Recorder) Observe(res types.ExtractionResult) {
	r.files.WithLabelValues(string(res.Outcome)).Inc()
	if res.OK() {
		r.pages.Add(float64(res.PagesWritten))
	}
}

// Finish stamps the run duration and completion time.
func (r *Recorder) Finish() {
	now := time.Now()
	r.duration.Set(now.Sub(r.started).Seconds())
	r.lastRun.Set(float64(now.Unix()))
}

// WriteFile writes all collectors to path atomically.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
