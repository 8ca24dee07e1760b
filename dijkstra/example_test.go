// SPDX-License-Identifier: MIT
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/qnetsim/core"
	"github.com/katalvlaran/qnetsim/dijkstra"
)

// ExampleShortestPath picks the shorter fibre route between two users.
func ExampleShortestPath() {
	g := core.NewGraph()
	_ = g.AddEdge("alice", "r1", 10)
	_ = g.AddEdge("r1", "bob", 10)
	_ = g.AddEdge("alice", "bob", 50)

	path, err := dijkstra.ShortestPath(g, "alice", "bob")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output: [alice r1 bob]
}
