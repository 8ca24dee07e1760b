// SPDX-License-Identifier: MIT
// Package qnetsim is a discrete-time simulator of multipartite entanglement
// distribution over quantum networks.
//
// A network is an undirected graph of repeaters and users whose links
// generate Bell pairs with probability p per timestep and lose them after
// Qc timesteps. A protocol run repeats independent trials until the users
// share a GHZ state and reports the entanglement rate.
//
// Everything is organised in subpackages:
//
//	core/         - Graph, Node, Edge; link state, usage counters, views
//	bfs/, dfs/    - traversals, connected components, cycle and tree checks
//	dijkstra/     - length-weighted shortest paths
//	prim_kruskal/ - minimum spanning trees (sparse and dense)
//	steiner/      - Kou–Markowsky–Berman Steiner tree approximation
//	flow/         - Edmonds–Karp max flow, edge-disjoint path counts
//	entangle/     - link evolution engine and seeded random streams
//	routing/      - greedy, Steiner and star routing strategies
//	protocol/     - SP, MPG and MPC runners with parallel trials
//	stats/        - rate and success statistics
//	topology/     - generators, node-link JSON, TSV import
//	config/       - YAML experiments with validation and env overrides
//	metrics/      - Prometheus registry for runs and trials
//	resultstore/  - SQLite persistence of run results
//	logging/      - slog logger construction
//
// Quick ASCII example:
//
//	  alice───r1
//	    │      │
//	   r2────bob
//
// With p = 1 every link is entangled after the first timestep, so MPG
// delivers a Bell pair between alice and bob at t = 1:
//
//	g, _ := topology.Build(nil, topology.Cycle(4))
//	res, _ := protocol.MPG(ctx, g, []string{"0", "2"}, 10, 100)
//	fmt.Println(res.Rate) // 1
//
// The qnetsim command (cmd/qnetsim) wraps all of this behind run, inspect,
// grid, prune and runs subcommands.
package qnetsim
