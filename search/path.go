package search

import (
	"math"

	"github.com/katalvlaran/gridwalk/grid"
)

// TracePath follows predecessor links from goal back to the first cell
// without one and returns the cells in Start→Goal order.
// The walk is bounded by the grid size, so a corrupted link set cannot loop.
//
// Complexity: O(path length).
func TracePath(g *grid.Grid, goal *grid.Cell) []grid.Coord {
	if g == nil || goal == nil {
		return nil
	}
	path := []grid.Coord{goal.Coord()}
	cur := goal
	for i := 0; i < g.Size(); i++ {
		prev, ok := cur.Previous()
		if !ok {
			break
		}
		next, ok := g.CellAt(prev)
		if !ok {
			break
		}
		path = append(path, prev)
		cur = next
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// StepCost is the cost of moving between two neighboring cells:
// 1 for a cardinal move and √2 for a diagonal one.
func StepCost(from, to *grid.Cell) float64 {
	if from.X() != to.X() && from.Y() != to.Y() {
		return math.Sqrt2
	}
	return 1
}

// PathCost sums StepCost along consecutive coordinates of path.
// Wrapped moves count by whether both axes change, like StepCost.
func PathCost(path []grid.Coord) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		if a.X != b.X && a.Y != b.Y {
			total += math.Sqrt2
		} else {
			total++
		}
	}
	return total
}
