// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qnetsim/bfs"
	"github.com/katalvlaran/qnetsim/core"
	"github.com/katalvlaran/qnetsim/dfs"
	"github.com/katalvlaran/qnetsim/dijkstra"
	"github.com/katalvlaran/qnetsim/flow"
	"github.com/katalvlaran/qnetsim/prim_kruskal"
	"github.com/katalvlaran/qnetsim/routing"
	"github.com/katalvlaran/qnetsim/steiner"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Report the routing structure a topology offers its users",
		Long: `Inspect prints topology statistics and, for the configured users,
per-destination shortest paths, edge-disjoint path counts, the max-flow
bound on Bell pairs per timestep, the minimum spanning tree length, the
nodes within reach of the farthest user, the shortest-path star and the
Steiner tree that MPC fuses along.`,
		Example: `  qnetsim inspect --rows 6 --cols 6 --users 0,0 --users 5,5 --users 0,5
  qnetsim inspect --topology usnet.txt --users 1 --users 17 --users 22`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadExperiment(cmd)
			if err != nil {
				return err
			}
			applyRunFlags(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			g, err := buildTopology(cfg)
			if err != nil {
				return err
			}

			return inspect(cmd.OutOrStdout(), g, cfg.Run.Users)
		},
	}

	cmd.Flags().StringArray("users", nil, "User node ID; repeat for each user, source first")
	cmd.Flags().String("topology", "", "Topology file (.json, .json.sz, .tsv, .txt)")
	cmd.Flags().Int("rows", 0, "Grid rows when no topology file is given")
	cmd.Flags().Int("cols", 0, "Grid columns when no topology file is given")
	cmd.Flags().Float64("p", 0, "Link success probability")
	cmd.Flags().Int("qc", 0, "Decoherence threshold in timesteps")
	cmd.Flags().Float64("loss-db", 0, "Fibre attenuation in dB/km")
	cmd.Flags().Float64("length", 0, "Override every edge length in km")

	return cmd
}

func inspect(w io.Writer, g *core.Graph, users []string) error {
	for _, u := range users {
		if !g.HasNode(u) {
			return fmt.Errorf("user %q: %w", u, core.ErrNodeNotFound)
		}
	}
	st := g.Stats()
	comps, err := bfs.Components(g)
	if err != nil {
		return err
	}
	cyclic, _, err := dfs.DetectCycle(g)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "topology: %d nodes, %d edges, %d components, cyclic=%t\n",
		st.NodeCount, st.EdgeCount, len(comps), cyclic)
	fmt.Fprintf(w, "links: total length %.3f km, mean p %.4f\n", st.TotalLength, st.MeanPEdge)

	src := users[0]
	if _, weight, err := prim_kruskal.Compute(g,
		prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot(src)); err == nil {
		fmt.Fprintf(w, "mst: length %.3f km\n", weight)
	} else if !errors.Is(err, prim_kruskal.ErrDisconnected) {
		return err
	}

	bounds, err := flow.Connectivity(g, src, users[1:], flow.WithCapacity(flow.PEdgeCapacity))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "source %s\n", src)
	radius := 0.0
	for _, dst := range users[1:] {
		if !dijkstra.HasPath(g, src, dst) {
			fmt.Fprintf(w, "  -> %s: unreachable\n", dst)
			continue
		}
		path, err := dijkstra.ShortestPath(g, src, dst)
		if err != nil {
			return err
		}
		length, err := dijkstra.PathLength(g, path)
		if err != nil {
			return err
		}
		radius = math.Max(radius, length)
		disjoint, err := flow.EdgeDisjointPaths(g, src, dst)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  -> %s: hops=%d length=%.3f disjoint=%d pairs/step<=%.4f\n",
			dst, len(path)-1, length, disjoint, bounds[dst])
	}
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithMaxDistance(radius))
	if err != nil {
		return err
	}
	within := 0
	for _, d := range dist {
		if !math.IsInf(d, 1) {
			within++
		}
	}
	fmt.Fprintf(w, "reach: %d nodes within %.3f km of %s\n", within, radius, src)

	if star, err := routing.BuildStar(g, users); err == nil {
		fmt.Fprintf(w, "star: %d edges, edge-disjoint=%t\n", star.Graph.EdgeCount(), star.Disjoint)
	} else if !errors.Is(err, routing.ErrStarBuildFailure) {
		return err
	}

	tree, err := steiner.ApproxTree(g, users)
	if errors.Is(err, steiner.ErrDisconnected) {
		fmt.Fprintln(w, "steiner: users are not connected")
		return nil
	}
	if err != nil {
		return err
	}
	isTree, err := dfs.IsTree(tree)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "steiner: %d nodes, %d edges, length %.3f, tree=%t\n",
		tree.NodeCount(), tree.EdgeCount(), steiner.TotalLength(tree), isTree)

	return nil
}
