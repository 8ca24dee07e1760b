// SPDX-License-Identifier: MIT
// File: runner.go
// Role: Trial loop, parallel trial execution and aggregation.
// Determinism:
//   - Trial i always uses entangle.TrialSource(seed, i) on its own clone of
//     the topology; per-trial outcomes are folded in trial order, so the
//     Result is identical for every worker count.
// Concurrency:
//   - Trials run on an errgroup bounded by the worker count. The caller's
//     graph is only read while trials run and only written after they end.

package protocol

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qnetsim/core"
	"github.com/katalvlaran/qnetsim/entangle"
	"github.com/katalvlaran/qnetsim/logging"
	"github.com/katalvlaran/qnetsim/routing"
	"github.com/katalvlaran/qnetsim/stats"
)

// Runner executes repeated trials of one routing strategy.
type Runner struct {
	name         string
	strategy     routing.Strategy
	includeNodes bool
	countFusion  bool
	seed         int64
	workers      int
	recorder     Recorder
	logger       *slog.Logger
}

// NewRunner returns a Runner for strategy. By default node evolution is
// enabled, fusion is not counted, the seed is entangle.DefaultSeed and the
// worker count is runtime.GOMAXPROCS(0).
func NewRunner(name string, strategy routing.Strategy, opts ...Option) (*Runner, error) {
	if strategy == nil {
		return nil, fmt.Errorf("%w: nil strategy", ErrInvalidArgument)
	}
	r := &Runner{
		name:         name,
		strategy:     strategy,
		includeNodes: true,
		seed:         entangle.DefaultSeed,
		workers:      runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logging.OrDiscard(r.logger)

	return r, nil
}

// trialOutcome is what one trial contributes to the run totals.
type trialOutcome struct {
	time  int
	links int
	usage map[string]int
}

// Run simulates reps trials of at most timesteps steps each on g.
//
// Usage counters of g are reset first and, once all trials finished, hold
// the number of successful trials each node was used in, with
// UsageFraction = UsageCount / reps. Entangled/age state of g is reset.
//
// Returns ErrInvalidArgument before any trial for reps ≤ 0, timesteps ≤ 0,
// fewer than two users, duplicate users or users missing from g, and the
// context error if ctx is cancelled between trials.
func (r *Runner) Run(ctx context.Context, g *core.Graph, users []string, timesteps, reps int) (*Result, error) {
	if err := validate(g, users, timesteps, reps); err != nil {
		return nil, err
	}
	res := &Result{
		RunID:     uuid.New(),
		Protocol:  r.name,
		Strategy:  r.strategy.Name(),
		Users:     append([]string(nil), users...),
		Timesteps: timesteps,
		Reps:      reps,
		Seed:      r.seed,
		Workers:   r.workers,
		StartedAt: time.Now(),
	}
	log := r.logger.With("run_id", res.RunID.String(), "protocol", r.name)
	log.Info("protocol run started",
		"strategy", res.Strategy, "users", len(users), "nodes", g.NodeCount(),
		"edges", g.EdgeCount(), "timesteps", timesteps, "reps", reps, "workers", r.workers)

	g.ResetUsage()
	g.ResetState()

	outcomes := make([]trialOutcome, reps)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.workers)
	for i := 0; i < reps; i++ {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			out, err := r.trial(egCtx, log, g, users, timesteps, i)
			if err != nil {
				return err
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("protocol %s: %w", r.name, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("protocol %s: %w", r.name, err)
	}

	// Fold outcomes in trial order.
	res.Times = make([]int, reps)
	linksUsed := 0
	for i, out := range outcomes {
		res.Times[i] = out.time
		linksUsed += out.links
		for id, c := range out.usage {
			if n, ok := g.Node(id); ok {
				n.UsageCount += c
			}
		}
		log.Debug("trial finished", "trial", i, "time", out.time, "links", out.links)
		if r.recorder != nil {
			r.recorder.TrialFinished(r.name, out.time, out.links)
		}
	}
	if err := g.UpdateUsage(reps); err != nil {
		return nil, err
	}

	rate, err := stats.Rate(res.Times, timesteps)
	if err != nil {
		return nil, err
	}
	res.Rate = rate
	res.AvgLinksUsed = float64(linksUsed) / float64(reps)
	res.Successes = stats.SuccessCount(res.Times)
	res.MeanSuccessTime = stats.MeanSuccessTime(res.Times)
	res.Duration = time.Since(res.StartedAt)

	if r.recorder != nil {
		r.recorder.RunFinished(r.name, res.Rate, res.Duration)
	}
	log.Info("protocol run finished",
		"rate", res.Rate, "successes", res.Successes, "avg_links_used", res.AvgLinksUsed,
		"duration", res.Duration)

	return res, nil
}

// trial runs one independent trial on a private clone of g. Each timestep is
// logged at trace level.
func (r *Runner) trial(ctx context.Context, log *slog.Logger, g *core.Graph, users []string, timesteps, index int) (trialOutcome, error) {
	work := g.Clone()
	work.ResetState()
	eng, err := entangle.NewEngine(entangle.TrialSource(r.seed, index))
	if err != nil {
		return trialOutcome{}, err
	}

	var used []routing.UsedPath
	for t := 1; t <= timesteps; t++ {
		used = eng.Step(work, used, r.includeNodes)
		var ok bool
		used, ok = r.strategy.Attempt(work, work.EntangledSubgraph(), users, used, r.countFusion)
		if log.Enabled(ctx, logging.LevelTrace) {
			log.Log(ctx, logging.LevelTrace, "timestep",
				"trial", index, "t", t, "entangled_edges", work.Stats().EntangledEdges,
				"used_paths", len(used), "served", ok)
		}
		if !ok {
			continue
		}
		out := trialOutcome{time: t, usage: make(map[string]int)}
		for _, p := range used {
			out.links += p.EdgeCount
			for _, id := range p.Nodes {
				out.usage[id]++
			}
		}
		return out, nil
	}

	return trialOutcome{time: NoSuccess}, nil
}

// validate rejects configurations that cannot be simulated.
func validate(g *core.Graph, users []string, timesteps, reps int) error {
	switch {
	case g == nil:
		return fmt.Errorf("%w: graph is nil", ErrInvalidArgument)
	case reps <= 0:
		return fmt.Errorf("%w: reps=%d must be positive", ErrInvalidArgument, reps)
	case timesteps <= 0:
		return fmt.Errorf("%w: timesteps=%d must be positive", ErrInvalidArgument, timesteps)
	case len(users) < 2:
		return fmt.Errorf("%w: need at least 2 users, got %d", ErrInvalidArgument, len(users))
	}
	seen := make(map[string]bool, len(users))
	for _, u := range users {
		if seen[u] {
			return fmt.Errorf("%w: duplicate user %q", ErrInvalidArgument, u)
		}
		seen[u] = true
		if !g.HasNode(u) {
			return fmt.Errorf("%w: user %q not in topology", ErrInvalidArgument, u)
		}
	}

	return nil
}
