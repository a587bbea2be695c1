// Package metrics records statistics about a report run and exports them in
// the Prometheus text format, for node_exporter's textfile collector or any
// other scraper that reads .prom files.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/inferbench/inference-report/internal/report"
)

const namespace = "inference_report"

// Recorder owns a private registry so repeated runs (and tests) never
// collide on the global one. A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	filesDiscovered *prometheus.CounterVec
	runsCollected   *prometheus.CounterVec
	gatherSeconds   *prometheus.GaugeVec
	reportRows      prometheus.Gauge
	bestThroughput  prometheus.Gauge
	bestSpeedup     prometheus.Gauge
}

// NewRecorder creates a Recorder with all metrics registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		filesDiscovered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_discovered_total",
			Help:      "Benchmark artifacts found during discovery, by root and file kind.",
		}, []string{"root", "kind"}),
		runsCollected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_collected_total",
			Help:      "Runs joined into a report, by discovery root.",
		}, []string{"root"}),
		gatherSeconds: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "gather_duration_seconds",
			Help:      "Wall time spent collecting a discovery root.",
		}, []string{"root"}),
		reportRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "report_rows",
			Help:      "Rows in the final report, baseline included.",
		}),
		bestThroughput: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_throughput",
			Help:      "Highest throughput(s^-1) in the report.",
		}),
		bestSpeedup: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_speedup",
			Help:      "Highest speedup over the baseline, 0 without a baseline.",
		}),
	}

	heapAlloc := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "heap_alloc_bytes",
		Help:      "Heap bytes in use when the metrics were written.",
	}, func() float64 { return float64(readMemory().HeapAlloc) })

	r.registry.MustRegister(
		r.filesDiscovered,
		r.runsCollected,
		r.gatherSeconds,
		r.reportRows,
		r.bestThroughput,
		r.bestSpeedup,
		heapAlloc,
	)
	return r
}

// FilesDiscovered records how many result and config files a root held.
func (r *Recorder) FilesDiscovered(root string, results, configs int) {
	if r == nil {
		return
	}
	r.filesDiscovered.WithLabelValues(root, "results").Add(float64(results))
	r.filesDiscovered.WithLabelValues(root, "config").Add(float64(configs))
}

// RunsCollected records the number of runs joined for a root.
func (r *Recorder) RunsCollected(root string, n int) {
	if r == nil {
		return
	}
	r.runsCollected.WithLabelValues(root).Add(float64(n))
}

// ObserveGather records the time spent collecting a root.
func (r *Recorder) ObserveGather(root string, d time.Duration) {
	if r == nil {
		return
	}
	r.gatherSeconds.WithLabelValues(root).Set(d.Seconds())
}

// ObserveReport records summary gauges of the final report.
func (r *Recorder) ObserveReport(rep *report.Report) {
	if r == nil || rep == nil {
		return
	}
	r.reportRows.Set(float64(rep.Len()))
	r.bestThroughput.Set(maxOf(rep, report.ThroughputColumn, func(*report.Record) bool { return true }))
	r.bestSpeedup.Set(maxOf(rep, report.SpeedupColumn, func(rec *report.Record) bool {
		isBaseline, _ := rec.Value(report.BaselineColumn).Truth()
		return !isBaseline
	}))
}

// Gatherer exposes the registry, mainly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes every metric to path in the Prometheus text format.
// The file is written to a temporary name and renamed into place.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}

func maxOf(rep *report.Report, column string, include func(*report.Record) bool) float64 {
	best := 0.0
	for _, rec := range rep.Records() {
		if !include(rec) {
			continue
		}
		if f, ok := rec.Value(column).Float(); ok && f > best {
			best = f
		}
	}
	return best
}
