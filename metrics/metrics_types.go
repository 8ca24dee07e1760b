// SPDX-License-Identifier: MIT
// Package metrics exposes Prometheus metrics for protocol runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every qnetsim metric on a private Prometheus registry.
type Registry struct {
	TrialsTotal          *prometheus.CounterVec
	TrialSuccessTimestep *prometheus.HistogramVec
	TrialLinksUsed       *prometheus.HistogramVec

	RunsTotal   *prometheus.CounterVec
	RunRate     *prometheus.GaugeVec
	RunDuration *prometheus.HistogramVec

	TopologyNodes         prometheus.Gauge
	TopologyEdges         prometheus.Gauge
	TopologyMeanPEdge     prometheus.Gauge
	TopologyTotalLengthKm prometheus.Gauge
	TopologyMeanUsageFrac prometheus.Gauge

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all metrics initialized.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}
	r.initTrialMetrics()
	r.initRunMetrics()
	r.initTopologyMetrics()

	return r
}

// Prometheus returns the underlying Prometheus registry.
func (r *Registry) Prometheus() *prometheus.Registry {
	return r.registry
}

func (r *Registry) initTrialMetrics() {
	r.TrialsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "qnetsim_trials_total",
			Help: "Total number of simulated trials",
		},
		[]string{"protocol", "outcome"}, // success, failure
	)

	r.TrialSuccessTimestep = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "qnetsim_trial_success_timestep",
			Help:    "Timestep at which a successful trial distributed the GHZ state",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000},
		},
		[]string{"protocol"},
	)

	r.TrialLinksUsed = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "qnetsim_trial_links_used",
			Help:    "Entangled links consumed by a trial",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
		[]string{"protocol"},
	)
}

func (r *Registry) initRunMetrics() {
	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "qnetsim_runs_total",
			Help: "Total number of completed protocol runs",
		},
		[]string{"protocol"},
	)

	r.RunRate = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "qnetsim_run_rate",
			Help: "Entanglement rate (GHZ states per timestep) of the latest run",
		},
		[]string{"protocol"},
	)

	r.RunDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "qnetsim_run_duration_seconds",
			Help:    "Wall-clock duration of protocol runs",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"protocol"},
	)
}

func (r *Registry) initTopologyMetrics() {
	r.TopologyNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "qnetsim_topology_nodes",
			Help: "Number of nodes in the simulated topology",
		},
	)

	r.TopologyEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "qnetsim_topology_edges",
			Help: "Number of links in the simulated topology",
		},
	)

	r.TopologyMeanPEdge = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "qnetsim_topology_mean_p_edge",
			Help: "Mean per-timestep link generation probability",
		},
	)

	r.TopologyTotalLengthKm = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "qnetsim_topology_total_length_km",
			Help: "Total fibre length of the topology",
		},
	)

	r.TopologyMeanUsageFrac = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "qnetsim_topology_mean_usage_fraction",
			Help: "Mean node usage fraction after the latest run",
		},
	)
}
