// SPDX-License-Identifier: MIT
package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/qnetsim/bfs"
	"github.com/katalvlaran/qnetsim/core"
)

// ExampleConnectedComponent lists the nodes sharing entanglement with the source.
func ExampleConnectedComponent() {
	g := core.NewGraph()
	_ = g.AddEdge("src", "r1", 1)
	_ = g.AddEdge("r1", "alice", 1)
	_ = g.AddNode("bob")

	comp, _ := bfs.ConnectedComponent(g, "src")
	fmt.Println(comp)
	// Output: [alice r1 src]
}
