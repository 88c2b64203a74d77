// SPDX-License-Identifier: MIT

// Package metrics holds the Prometheus collectors shared by the sky service,
// the HTTP server and the MCP tools. Collectors register with the default
// registry in init, so importing the package is enough to expose them on
// promhttp.Handler().
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ConstellationBuildsTotal counts constellation builds per policy label.
	ConstellationBuildsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zola_constellation_builds_total",
			Help: "Total number of constellation builds",
		},
		[]string{"policy"},
	)

	// ConstellationRepairEdgesTotal counts edges added by the repair pass.
	ConstellationRepairEdgesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "zola_constellation_repair_edges_total",
			Help: "Total number of edges added by connectivity repair",
		},
	)

	// ConstellationBuildSeconds tracks build latency.
	ConstellationBuildSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "zola_constellation_build_seconds",
			Help:    "Time spent building one constellation",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
	)

	// StarsAddedTotal counts stars accepted into any sky.
	StarsAddedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "zola_stars_added_total",
			Help: "Total number of stars added",
		},
	)
)

func init() {
	prometheus.MustRegister(ConstellationBuildsTotal)
	prometheus.MustRegister(ConstellationRepairEdgesTotal)
	prometheus.MustRegister(ConstellationBuildSeconds)
	prometheus.MustRegister(StarsAddedTotal)
}

// ObserveBuild records one finished build.
func ObserveBuild(policy string, repaired int, elapsed time.Duration) {
	ConstellationBuildsTotal.WithLabelValues(policy).Inc()
	if repaired > 0 {
		ConstellationRepairEdgesTotal.Add(float64(repaired))
	}
	ConstellationBuildSeconds.Observe(elapsed.Seconds())
}
