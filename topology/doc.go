// SPDX-License-Identifier: MIT
// Package topology builds and persists quantum network topologies.
//
// Generators (Grid, Path, Cycle, Star, RandomSparse) compose through Build
// the same way for every family: each Constructor adds its nodes and edges
// to a fresh *core.Graph using the link parameters resolved from Options.
//
// Persistence uses the node-link JSON layout
//
//	{"directed":false,"multigraph":false,"graph":{},
//	 "nodes":[{"id":"a","Qc":1,...}],
//	 "links":[{"source":"a","target":"b","length":1,"p_edge":1,"Qc":1,...}]}
//
// Files whose name ends in ".sz" are snappy-compressed. ReadTSV imports the
// tab-separated edge lists of published reference networks.
package topology
