package pathfinder

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/gridwalk/astar"
	"github.com/katalvlaran/gridwalk/bfs"
	"github.com/katalvlaran/gridwalk/dfs"
	"github.com/katalvlaran/gridwalk/dijkstra"
	"github.com/katalvlaran/gridwalk/maze"
	"github.com/katalvlaran/gridwalk/search"
)

// Registry maps algorithm names to searchers. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	searcher map[Algorithm]search.Searcher
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{searcher: make(map[Algorithm]search.Searcher)}
}

// DefaultRegistry returns a registry holding every built-in algorithm.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	builtins := map[Algorithm]search.Searcher{
		DFSStack:     dfs.StackSearcher,
		DFSRecursive: dfs.RecursiveSearcher,
		Count:        dfs.CountSearcher,
		BFS:          bfs.Searcher,
		Dijkstra:     dijkstra.Searcher,
		AStar:        astar.Searcher,
		Maze:         maze.Searcher,
	}
	for a, s := range builtins {
		_ = r.Register(a, s)
	}
	return r
}

// Register binds s to a, replacing any previous binding.
func (r *Registry) Register(a Algorithm, s search.Searcher) error {
	if s == nil {
		return fmt.Errorf("%w: %q", ErrNilSearcher, a)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.searcher[a] = s
	return nil
}

// Lookup returns the searcher bound to a.
func (r *Registry) Lookup(a Algorithm) (search.Searcher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.searcher[a]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, a)
	}
	return s, nil
}

// Names returns the registered algorithms sorted by name.
func (r *Registry) Names() []Algorithm {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Algorithm, 0, len(r.searcher))
	for a := range r.searcher {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
