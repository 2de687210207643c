// Package maze generates perfect mazes on a grid.Grid by randomized
// depth-first carving.
//
// A perfect maze is a spanning tree over the carved lattice: every Empty
// cell is reachable from the seed through cardinal Empty moves and there
// are no cycles. Carving runs on the live grid, so a grid.Listener sees
// every Wall→Empty change as it happens and OnVisit fires per carved cell.
//
// The random source comes from search.WithRand or search.WithSeed; the
// default source is seeded deterministically.
package maze
