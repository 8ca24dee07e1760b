// SPDX-License-Identifier: MIT
package flow_test

import (
	"fmt"

	"github.com/katalvlaran/qnetsim/core"
	"github.com/katalvlaran/qnetsim/flow"
)

// ExampleEdgeDisjointPaths counts the independent routes around a square.
func ExampleEdgeDisjointPaths() {
	g := core.NewGraph()
	_ = g.AddEdge("alice", "r1", 1)
	_ = g.AddEdge("r1", "bob", 1)
	_ = g.AddEdge("alice", "r2", 1)
	_ = g.AddEdge("r2", "bob", 1)

	n, err := flow.EdgeDisjointPaths(g, "alice", "bob")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n)
	// Output: 2
}
