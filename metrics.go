package main

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/callmeahab/scent-variants/variants"
)

var (
	// Engine runs by origin: file, rpc, catalog
	GroupRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fragrance_group_runs_total",
		Help: "Total number of grouping runs",
	}, []string{"source"})

	GroupRunSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "fragrance_group_run_seconds",
		Help:    "Duration of grouping runs",
		Buckets: prometheus.DefBuckets,
	})

	VariantsSkipped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fragrance_variants_skipped_total",
		Help: "Total number of variant records rejected by validation",
	})

	GroupsLastRun = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "fragrance_groups_last_run",
		Help: "Number of groups produced by the most recent run",
	})

	metricsOnce sync.Once
)

func initMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(
			GroupRuns,
			GroupRunSeconds,
			VariantsSkipped,
			GroupsLastRun,
		)
	})
}

func observeRun(source string, started time.Time, res *variants.Result) {
	GroupRuns.WithLabelValues(source).Inc()
	GroupRunSeconds.Observe(time.Since(started).Seconds())
	VariantsSkipped.Add(float64(len(res.Skipped)))
	GroupsLastRun.Set(float64(len(res.Groups)))
}
