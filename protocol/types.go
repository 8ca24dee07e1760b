// SPDX-License-Identifier: MIT
// Package protocol runs multipartite entanglement distribution protocols
// over a quantum network and reports their entanglement rate.
//
// This file declares Result, the Recorder hook, functional options and
// sentinel errors.
//
// Errors:
//
//	ErrInvalidArgument  - bad reps, timesteps or user list; raised before any trial.
//	ErrUnknownProtocol  - RunProtocol called with an unknown protocol name.
package protocol

import (
	"errors"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/qnetsim/routing"
	"github.com/katalvlaran/qnetsim/stats"
)

// Sentinel errors for protocol runs.
var (
	// ErrInvalidArgument indicates a run configuration that cannot be simulated.
	ErrInvalidArgument = errors.New("protocol: invalid argument")

	// ErrUnknownProtocol indicates an unrecognised protocol name.
	ErrUnknownProtocol = errors.New("protocol: unknown protocol")
)

// NoSuccess is the recorded time of a trial that never succeeded.
const NoSuccess = stats.NoSuccess

// Protocol names.
const (
	// NameSP is the shortest-path star protocol.
	NameSP = "SP"
	// NameMPG is the multipath greedy protocol.
	NameMPG = "MPG"
	// NameMPC is the multipath cooperative (connected component) protocol.
	NameMPC = "MPC"
)

// Names lists the supported protocols in a stable order.
func Names() []string { return []string{NameSP, NameMPG, NameMPC} }

// Result summarises one protocol run.
type Result struct {
	// RunID identifies the run in logs, metrics and stored results.
	RunID uuid.UUID

	// Protocol is the protocol name, Strategy the routing strategy used.
	Protocol string
	Strategy string

	Users     []string
	Timesteps int
	Reps      int
	Seed      int64
	Workers   int

	// Rate is GHZ states per timestep over all trials.
	Rate float64

	// Times holds each trial's success timestep, or NoSuccess.
	Times []int

	// AvgLinksUsed is the number of links consumed per trial.
	AvgLinksUsed float64

	Successes       int
	MeanSuccessTime float64

	StartedAt time.Time
	Duration  time.Duration
}

// Recorder observes run progress; metrics.Registry implements it.
// TrialFinished is called once per trial in trial order after all trials
// completed; successTime is NoSuccess for failed trials.
type Recorder interface {
	TrialFinished(protocol string, successTime int, linksUsed int)
	RunFinished(protocol string, rate float64, elapsed time.Duration)
}

// Option configures a Runner.
type Option func(*Runner)

// WithSeed sets the run seed; trial i draws from entangle.TrialSource(seed, i).
func WithSeed(seed int64) Option {
	return func(r *Runner) { r.seed = seed }
}

// WithWorkers bounds the number of trials simulated concurrently.
// n ≤ 0 selects runtime.GOMAXPROCS(0). Results do not depend on n.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		r.workers = n
	}
}

// WithCountFusion makes fusing nodes count as used.
func WithCountFusion(on bool) Option {
	return func(r *Runner) { r.countFusion = on }
}

// WithRecorder attaches a progress recorder.
func WithRecorder(rec Recorder) Option {
	return func(r *Runner) { r.recorder = rec }
}

// WithLogger sets the structured logger; nil discards.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithStrategy overrides the routing strategy.
func WithStrategy(s routing.Strategy) Option {
	return func(r *Runner) {
		if s != nil {
			r.strategy = s
		}
	}
}

// WithIncludeNodes toggles node and used-path evolution in each step.
func WithIncludeNodes(on bool) Option {
	return func(r *Runner) { r.includeNodes = on }
}
