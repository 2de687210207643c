package compare

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/pathfinder"
	"github.com/katalvlaran/gridwalk/search"
)

// ErrNoGrid is returned when the grid builder yields nothing to search.
var ErrNoGrid = errors.New("compare: builder returned no grid")

// Summary aggregates the repeated runs of one algorithm. The search
// outcome fields come from the last run; algorithms are deterministic on
// equal grids, so every run agrees on them.
type Summary struct {
	Algorithm pathfinder.Algorithm
	Runs      int
	Found     bool
	Hops      int
	Cost      float64
	Visited   int
	Steps     int
	Mean      time.Duration
	Median    time.Duration
	P90       time.Duration
	Max       time.Duration
}

// Run searches a fresh grid from build repeat times per algorithm and
// returns one Summary per entry of algs, in order. Algorithms are looked up
// in the default registry. repeat below 1 is treated as 1.
func Run(ctx context.Context, build func() *grid.Grid, algs []pathfinder.Algorithm, repeat int, opts ...search.Option) ([]Summary, error) {
	if repeat < 1 {
		repeat = 1
	}
	reg := pathfinder.DefaultRegistry()
	out := make([]Summary, 0, len(algs))
	for _, alg := range algs {
		s, err := reg.Lookup(alg)
		if err != nil {
			return out, err
		}
		sum, err := measure(ctx, s, build, repeat, opts)
		if err != nil {
			return out, fmt.Errorf("compare: %s: %w", alg, err)
		}
		sum.Algorithm = alg
		out = append(out, sum)
	}
	return out, nil
}

func measure(ctx context.Context, s search.Searcher, build func() *grid.Grid, repeat int, opts []search.Option) (Summary, error) {
	var sum Summary
	all := append([]search.Option{search.WithContext(ctx)}, opts...)
	data := make([]float64, 0, repeat)
	for i := 0; i < repeat; i++ {
		g := build()
		if g == nil || g.Size() == 0 {
			return sum, ErrNoGrid
		}
		start := time.Now()
		res, err := s.Search(g, all...)
		elapsed := time.Since(start)
		if err != nil {
			return sum, err
		}
		data = append(data, float64(elapsed.Nanoseconds()))
		sum.Runs++
		sum.Found = res.Found
		sum.Hops = res.Hops()
		sum.Cost = res.Cost
		sum.Visited = len(res.Visited)
		sum.Steps = res.Steps
	}

	var err error
	if sum.Mean, err = duration(stats.Mean(data)); err != nil {
		return sum, fmt.Errorf("mean: %w", err)
	}
	if sum.Median, err = duration(stats.Median(data)); err != nil {
		return sum, fmt.Errorf("median: %w", err)
	}
	// Percentile has no defined rank for a single sample.
	if len(data) == 1 {
		sum.P90 = sum.Median
	} else if sum.P90, err = duration(stats.Percentile(data, 90)); err != nil {
		return sum, fmt.Errorf("percentile 90: %w", err)
	}
	if sum.Max, err = duration(stats.Max(data)); err != nil {
		return sum, fmt.Errorf("max: %w", err)
	}
	return sum, nil
}

func duration(ns float64, err error) (time.Duration, error) {
	return time.Duration(ns), err
}

// WriteTable prints sums as an aligned table.
func WriteTable(w io.Writer, sums []Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tRUNS\tFOUND\tHOPS\tCOST\tVISITED\tSTEPS\tMEAN\tMEDIAN\tP90\tMAX")
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t%d\t%t\t%d\t%.3f\t%d\t%d\t%v\t%v\t%v\t%v\n",
			s.Algorithm, s.Runs, s.Found, s.Hops, s.Cost, s.Visited, s.Steps,
			s.Mean.Round(time.Microsecond), s.Median.Round(time.Microsecond),
			s.P90.Round(time.Microsecond), s.Max.Round(time.Microsecond))
	}
	return tw.Flush()
}
