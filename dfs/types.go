package dfs

import "github.com/katalvlaran/gridwalk/search"

// Algorithm names as shown in the selector.
const (
	NameStack     = "dfs-stack"
	NameRecursive = "dfs-recursive"
	NameCount     = "count"
)

// Searchers over the Start cell, for uniform dispatch.
var (
	StackSearcher     = search.NewSearcher(NameStack, Stack)
	RecursiveSearcher = search.NewSearcher(NameRecursive, Recursive)
	CountSearcher     = search.NewSearcher(NameCount, CountGroups)
)
