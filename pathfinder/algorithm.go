package pathfinder

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for orchestration.
var (
	// ErrUnknownAlgorithm is returned for a name no registry entry matches.
	ErrUnknownAlgorithm = errors.New("pathfinder: unknown algorithm")

	// ErrRunInProgress is returned when a run or grid edit is attempted
	// while another run owns the grid.
	ErrRunInProgress = errors.New("pathfinder: a run is already in progress")

	// ErrInvalidSize is returned for non-positive grid dimensions.
	ErrInvalidSize = errors.New("pathfinder: grid dimensions must be positive")

	// ErrOutOfRange is returned when an edit targets a cell outside the grid.
	ErrOutOfRange = errors.New("pathfinder: coordinate out of range")

	// ErrNilSearcher is returned when registering a nil searcher.
	ErrNilSearcher = errors.New("pathfinder: searcher is nil")
)

// Algorithm names a registered search. The values match the algorithm
// selector of the interactive visualizer.
type Algorithm string

const (
	DFSStack     Algorithm = "dfs-stack"
	DFSRecursive Algorithm = "dfs-recursive"
	BFS          Algorithm = "bfs"
	Dijkstra     Algorithm = "dijkstra"
	AStar        Algorithm = "astar"
	Maze         Algorithm = "dfs-maze"
	Count        Algorithm = "count"
)

// Algorithms returns every built-in algorithm in selector order.
func Algorithms() []Algorithm {
	return []Algorithm{Maze, DFSStack, DFSRecursive, BFS, Dijkstra, AStar, Count}
}

// ParseAlgorithm resolves a case-insensitive name. "a*" is accepted for AStar.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "a*" {
		return AStar, nil
	}
	for _, a := range Algorithms() {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// String returns the selector name.
func (a Algorithm) String() string { return string(a) }

// FindsPath reports whether the algorithm searches for Goal and can
// produce a path.
func (a Algorithm) FindsPath() bool {
	switch a {
	case BFS, Dijkstra, AStar:
		return true
	}
	return false
}
