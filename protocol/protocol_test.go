// SPDX-License-Identifier: MIT
package protocol_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/qnetsim/core"
	"github.com/katalvlaran/qnetsim/logging"
	"github.com/katalvlaran/qnetsim/protocol"
	"github.com/katalvlaran/qnetsim/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runFunc func(context.Context, *core.Graph, []string, int, int, ...protocol.Option) (*protocol.Result, error)

var protocols = map[string]runFunc{
	protocol.NameSP:  protocol.SP,
	protocol.NameMPG: protocol.MPG,
	protocol.NameMPC: protocol.MPC,
}

// pair builds the single link A-B with probability p and Qc=1.
func pair(t *testing.T, p float64) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1, core.WithPEdge(p)))

	return g
}

// grid builds an n×n grid with row-major "r,c" IDs.
func grid(t *testing.T, n int, p float64, qc int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			id := fmt.Sprintf("%d,%d", r, c)
			if c+1 < n {
				require.NoError(t, g.AddEdge(id, fmt.Sprintf("%d,%d", r, c+1), 1))
			}
			if r+1 < n {
				require.NoError(t, g.AddEdge(id, fmt.Sprintf("%d,%d", r+1, c), 1))
			}
		}
	}
	require.NoError(t, g.SetParams(&p, &qc))

	return g
}

func TestScenarioA_CertainLink(t *testing.T) {
	for name, run := range protocols {
		t.Run(name, func(t *testing.T) {
			res, err := run(context.Background(), pair(t, 1), []string{"A", "B"}, 5, 3)
			require.NoError(t, err)
			assert.Equal(t, []int{1, 1, 1}, res.Times)
			assert.Equal(t, 1.0, res.Rate)
			assert.Equal(t, 1.0, res.AvgLinksUsed)
			assert.Equal(t, 3, res.Successes)
			assert.Equal(t, name, res.Protocol)
		})
	}
}

func TestScenarioB_ImpossibleLink(t *testing.T) {
	for name, run := range protocols {
		t.Run(name, func(t *testing.T) {
			res, err := run(context.Background(), pair(t, 0), []string{"A", "B"}, 5, 3)
			require.NoError(t, err)
			assert.Equal(t, []int{protocol.NoSuccess, protocol.NoSuccess, protocol.NoSuccess}, res.Times)
			assert.Zero(t, res.Rate)
			assert.Zero(t, res.AvgLinksUsed)
			assert.Zero(t, res.Successes)
		})
	}
}

func TestRun_InvalidArguments(t *testing.T) {
	g := pair(t, 1)
	ctx := context.Background()
	cases := []struct {
		name      string
		g         *core.Graph
		users     []string
		timesteps int
		reps      int
	}{
		{"zero reps", g, []string{"A", "B"}, 5, 0},
		{"zero timesteps", g, []string{"A", "B"}, 0, 3},
		{"one user", g, []string{"A"}, 5, 3},
		{"duplicate users", g, []string{"A", "A"}, 5, 3},
		{"unknown user", g, []string{"A", "Z"}, 5, 3},
		{"nil graph", nil, []string{"A", "B"}, 5, 3},
	}
	for _, tc := range cases {
		for name, run := range protocols {
			t.Run(tc.name+"/"+name, func(t *testing.T) {
				_, err := run(ctx, tc.g, tc.users, tc.timesteps, tc.reps)
				assert.ErrorIs(t, err, protocol.ErrInvalidArgument)
			})
		}
	}
}

func TestRun_UsageAccounting(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("C", "B", 1))
	require.NoError(t, g.AddEdge("B", "X", 1))

	for name, run := range protocols {
		t.Run(name, func(t *testing.T) {
			res, err := run(context.Background(), g, []string{"A", "B"}, 3, 4)
			require.NoError(t, err)
			assert.Equal(t, []int{1, 1, 1, 1}, res.Times)
			assert.Equal(t, 2.0, res.AvgLinksUsed)

			c, _ := g.Node("C")
			assert.Equal(t, 4, c.UsageCount)
			assert.Equal(t, 1.0, c.UsageFraction)
			for _, id := range []string{"A", "B", "X"} {
				n, _ := g.Node(id)
				assert.Zero(t, n.UsageCount, id)
			}
			assert.NoError(t, g.CheckState())
		})
	}
}

func TestRun_DeterministicAcrossWorkers(t *testing.T) {
	users := []string{"1,1", "0,0", "2,2", "0,2"}
	for name, run := range protocols {
		t.Run(name, func(t *testing.T) {
			var (
				base  *protocol.Result
				usage []int
			)
			for _, workers := range []int{1, 3, 8} {
				g := grid(t, 3, 0.35, 3)
				res, err := run(context.Background(), g, users, 12, 25,
					protocol.WithSeed(99), protocol.WithWorkers(workers))
				require.NoError(t, err)

				var u []int
				for _, n := range g.NodeList() {
					u = append(u, n.UsageCount)
				}
				if base == nil {
					base, usage = res, u
					continue
				}
				assert.Equal(t, base.Times, res.Times)
				assert.Equal(t, base.Rate, res.Rate)
				assert.Equal(t, base.AvgLinksUsed, res.AvgLinksUsed)
				assert.Equal(t, usage, u)
				assert.NotEqual(t, base.RunID, res.RunID)
			}
		})
	}
}

func TestRun_SeedChangesOutcome(t *testing.T) {
	users := []string{"0,0", "2,2", "0,2", "2,0"}
	a, err := protocol.MPC(context.Background(), grid(t, 3, 0.3, 2), users, 10, 40, protocol.WithSeed(1))
	require.NoError(t, err)
	b, err := protocol.MPC(context.Background(), grid(t, 3, 0.3, 2), users, 10, 40, protocol.WithSeed(2))
	require.NoError(t, err)
	assert.NotEqual(t, a.Times, b.Times)
}

type fakeRecorder struct {
	trials []int
	runs   int
	rate   float64
}

func (f *fakeRecorder) TrialFinished(_ string, successTime, _ int) {
	f.trials = append(f.trials, successTime)
}

func (f *fakeRecorder) RunFinished(_ string, rate float64, _ time.Duration) {
	f.runs++
	f.rate = rate
}

func TestRun_Recorder(t *testing.T) {
	rec := &fakeRecorder{}
	res, err := protocol.MPG(context.Background(), pair(t, 1), []string{"A", "B"}, 5, 4,
		protocol.WithRecorder(rec), protocol.WithWorkers(2))
	require.NoError(t, err)
	assert.Equal(t, res.Times, rec.trials)
	assert.Equal(t, 1, rec.runs)
	assert.Equal(t, res.Rate, rec.rate)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := protocol.MPG(ctx, pair(t, 1), []string{"A", "B"}, 5, 4)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunProtocol_Dispatch(t *testing.T) {
	res, err := protocol.RunProtocol(context.Background(), protocol.NameMPC, pair(t, 1), []string{"A", "B"}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, "connected-component-steiner", res.Strategy)

	_, err = protocol.RunProtocol(context.Background(), "QKD", pair(t, 1), []string{"A", "B"}, 2, 2)
	assert.ErrorIs(t, err, protocol.ErrUnknownProtocol)
}

func TestSP_StarBuildFailure(t *testing.T) {
	g := pair(t, 1)
	require.NoError(t, g.AddNode("island"))
	_, err := protocol.SP(context.Background(), g, []string{"A", "island"}, 5, 2)
	assert.ErrorIs(t, err, routing.ErrStarBuildFailure)
}

func TestNewRunner_NilStrategy(t *testing.T) {
	_, err := protocol.NewRunner("custom", nil)
	assert.ErrorIs(t, err, protocol.ErrInvalidArgument)
}

func TestNewRunner_CustomStrategy(t *testing.T) {
	r, err := protocol.NewRunner("custom", routing.ConnectedComponentSteiner{},
		protocol.WithIncludeNodes(false), protocol.WithCountFusion(true), protocol.WithLogger(nil))
	require.NoError(t, err)
	res, err := r.Run(context.Background(), pair(t, 1), []string{"A", "B"}, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, res.Times)
}

func TestRun_TraceLogsEveryTimestep(t *testing.T) {
	var buf bytes.Buffer
	_, err := protocol.MPG(context.Background(), pair(t, 0), []string{"A", "B"}, 3, 1,
		protocol.WithLogger(logging.NewLogger("trace", &buf)))
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(buf.String(), "msg=timestep"))
	assert.Contains(t, buf.String(), "served=false")

	buf.Reset()
	_, err = protocol.MPG(context.Background(), pair(t, 0), []string{"A", "B"}, 3, 1,
		protocol.WithLogger(logging.NewLogger("debug", &buf)))
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "msg=timestep")
}
