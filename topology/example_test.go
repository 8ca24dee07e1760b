// SPDX-License-Identifier: MIT
package topology_test

import (
	"fmt"

	"github.com/katalvlaran/qnetsim/topology"
)

// ExampleGrid builds the 2×2 lattice used in the protocol scenarios.
func ExampleGrid() {
	g, err := topology.Grid(2, 2, topology.WithPEdge(0.5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Nodes(), g.EdgeCount())
	// Output: [0,0 0,1 1,0 1,1] 4
}
