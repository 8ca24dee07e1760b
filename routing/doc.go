// SPDX-License-Identifier: MIT
// Package routing decides, once per timestep, whether the entangled links of
// a quantum network suffice for the users to share a GHZ state.
//
// Strategies:
//
//   - ShortestPathGreedy: serve each destination over its shortest entangled
//     path from the source; consumed links are released immediately.
//   - ConnectedComponentSteiner: succeed when every user is in the source's
//     entangled component, fusing along an approximate Steiner tree.
//
// BuildStar reduces a topology to a (preferably edge-disjoint) star of
// shortest paths from the source, for the star protocol.
//
// A missing path is never an error inside a strategy: Attempt simply
// reports no success for that timestep.
package routing
