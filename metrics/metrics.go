// SPDX-License-Identifier: MIT
package metrics

import (
	"time"

	"github.com/katalvlaran/qnetsim/core"
	"github.com/katalvlaran/qnetsim/protocol"
)

var _ protocol.Recorder = (*Registry)(nil)

// TrialFinished records one trial outcome. It implements protocol.Recorder.
func (r *Registry) TrialFinished(proto string, successTime int, linksUsed int) {
	if successTime == protocol.NoSuccess {
		r.TrialsTotal.WithLabelValues(proto, "failure").Inc()
		return
	}
	r.TrialsTotal.WithLabelValues(proto, "success").Inc()
	r.TrialSuccessTimestep.WithLabelValues(proto).Observe(float64(successTime))
	r.TrialLinksUsed.WithLabelValues(proto).Observe(float64(linksUsed))
}

// RunFinished records a completed run. It implements protocol.Recorder.
func (r *Registry) RunFinished(proto string, rate float64, elapsed time.Duration) {
	r.RunsTotal.WithLabelValues(proto).Inc()
	r.RunRate.WithLabelValues(proto).Set(rate)
	r.RunDuration.WithLabelValues(proto).Observe(elapsed.Seconds())
}

// ObserveTopology updates the topology gauges from a graph summary.
func (r *Registry) ObserveTopology(s *core.GraphStats) {
	if s == nil {
		return
	}
	r.TopologyNodes.Set(float64(s.NodeCount))
	r.TopologyEdges.Set(float64(s.EdgeCount))
	r.TopologyMeanPEdge.Set(s.MeanPEdge)
	r.TopologyTotalLengthKm.Set(s.TotalLength)
	r.TopologyMeanUsageFrac.Set(s.MeanUsageFraction)
}
