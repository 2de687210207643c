// Command gridwalk runs a path search over a terminal grid and prints the
// explored region and the path found.
//
// Settings come from an optional .env file, an optional YAML file
// (-config), GRIDWALK_* variables and finally the flags below.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridwalk/compare"
	"github.com/katalvlaran/gridwalk/config"
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/pathfinder"
	"github.com/katalvlaran/gridwalk/render"
	"github.com/katalvlaran/gridwalk/search"
)

// PNG geometry for -png.
const (
	pngCellSize = 12
	pngBorder   = 4
)

type flags struct {
	configFile string
	envFile    string
	algorithm  string
	columns    int
	rows       int
	maze       bool
	animate    bool
	delay      time.Duration
	diagonal   bool
	wrap       bool
	seed       int64
	layoutFile string
	pngFile    string
	compare    int
	list       bool
}

func parseFlags() *flags {
	f := &flags{}
	flag.StringVar(&f.configFile, "config", "",
		"Optional YAML settings file.")
	flag.StringVar(&f.envFile, "env", ".env",
		"Optional dotenv file with GRIDWALK_* variables.")
	flag.StringVar(&f.algorithm, "algorithm", "",
		"Algorithm to run. See -list.")
	flag.IntVar(&f.columns, "columns", 0, "Grid width in cells.")
	flag.IntVar(&f.rows, "rows", 0, "Grid height in cells.")
	flag.BoolVar(&f.maze, "maze", false,
		"Carve a maze before running the algorithm.")
	flag.BoolVar(&f.animate, "animate", false,
		"Redraw the grid after every search step.")
	flag.DurationVar(&f.delay, "delay", 0,
		"Pause after every search step, e.g. 20ms.")
	flag.BoolVar(&f.diagonal, "diagonal", false,
		"Allow diagonal moves.")
	flag.BoolVar(&f.wrap, "wrap", false,
		"Let moves wrap around the grid edges.")
	flag.Int64Var(&f.seed, "seed", 0,
		"Random seed for mazes and goal placement.")
	flag.StringVar(&f.layoutFile, "layout_file", "",
		"Read the grid from an ASCII layout file instead of -columns/-rows.")
	flag.StringVar(&f.pngFile, "png", "",
		"Also write the final grid to this PNG file.")
	flag.IntVar(&f.compare, "compare", 0,
		"Run every path algorithm this many times on the final grid and print timings.")
	flag.BoolVar(&f.list, "list", false,
		"List the available algorithms and exit.")
	flag.Parse()
	return f
}

// apply copies the flags the user actually set over cfg.
func (f *flags) apply(cfg *config.Config) error {
	var err error
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "algorithm":
			cfg.Algorithm = f.algorithm
		case "columns":
			cfg.Columns = f.columns
		case "rows":
			cfg.Rows = f.rows
		case "maze":
			cfg.Maze = f.maze
		case "animate":
			cfg.Animate = f.animate
		case "delay":
			cfg.Delay = f.delay
		case "diagonal":
			cfg.Diagonal = f.diagonal
		case "wrap":
			cfg.Boundaries = !f.wrap
		case "seed":
			cfg.Seed = f.seed
		case "layout_file":
			b, rerr := os.ReadFile(f.layoutFile)
			if rerr != nil {
				err = rerr
				return
			}
			cfg.Layout = string(b)
		}
	})
	if err != nil {
		return err
	}
	return cfg.Validate()
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(cfg.Level())
	zc.Encoding = "console"
	zc.DisableStacktrace = true
	return zc.Build()
}

func run() int {
	f := parseFlags()
	if f.list {
		for _, a := range pathfinder.DefaultRegistry().Names() {
			fmt.Println(a)
		}
		return 0
	}

	cfg, e := config.Load(f.configFile, f.envFile)
	if e != nil {
		fmt.Printf("Error loading settings: %s\n", e)
		return 1
	}
	if e = f.apply(&cfg); e != nil {
		fmt.Printf("Error in flags: %s\n", e)
		return 1
	}
	log, e := newLogger(cfg)
	if e != nil {
		fmt.Printf("Error creating logger: %s\n", e)
		return 1
	}
	defer log.Sync()

	sess, e := newSession(cfg, log)
	if e != nil {
		fmt.Printf("Error creating grid: %s\n", e)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	alg := cfg.AlgorithmName()
	opts := cfg.SearchOptions()
	if cfg.Maze && alg != pathfinder.Maze {
		rep, e := sess.Run(ctx, pathfinder.Maze, opts...)
		if e != nil {
			fmt.Printf("Error carving maze: %s\n", e)
			return 1
		}
		fmt.Printf("Maze carved: %d cells opened.\n", len(rep.Result.Visited))
	}

	runOpts := opts
	if cfg.Animate {
		frames := render.NewFrames(os.Stdout, sess.Grid(), true)
		runOpts = append(append([]search.Option{}, opts...), frames.Options()...)
	}
	rep, e := sess.Run(ctx, alg, runOpts...)
	if e != nil {
		if errors.Is(e, context.Canceled) {
			fmt.Println("Interrupted.")
		} else {
			fmt.Printf("Error running %s: %s\n", alg, e)
		}
		return 1
	}

	g := sess.Grid()
	fmt.Print(g.RenderPath(rep.Result.Path))
	printReport(rep)

	if f.pngFile != "" {
		if e = writePNG(f.pngFile, g, rep.Result.Path); e != nil {
			fmt.Printf("Error writing image to %s: %s\n", f.pngFile, e)
			return 1
		}
		fmt.Printf("Image %s written OK.\n", f.pngFile)
	}

	if f.compare > 0 {
		layout := g.Render(false)
		build := func() *grid.Grid {
			out, err := grid.Parse(layout)
			if err != nil {
				return nil
			}
			return out
		}
		sums, e := compare.Run(ctx, build, pathAlgorithms(), f.compare,
			append(opts, search.WithDelay(0))...)
		if e != nil {
			fmt.Printf("Error comparing algorithms: %s\n", e)
			return 1
		}
		if e = compare.WriteTable(os.Stdout, sums); e != nil {
			return 1
		}
	}
	return 0
}

func newSession(cfg config.Config, log *zap.Logger) (*pathfinder.Session, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	opts := []pathfinder.SessionOption{
		pathfinder.WithLogger(log),
		pathfinder.WithGridOptions(grid.WithRand(rng)),
	}
	columns, rows := cfg.Columns, cfg.Rows
	if cfg.Layout != "" {
		// placeholder size, replaced by Load
		columns, rows = 1, 1
	}
	sess, err := pathfinder.NewSession(columns, rows, opts...)
	if err != nil {
		return nil, err
	}
	if cfg.Layout != "" {
		if err = sess.Load(cfg.Layout); err != nil {
			return nil, err
		}
	}
	return sess, nil
}

func printReport(rep *pathfinder.Report) {
	res := rep.Result
	parts := []string{
		fmt.Sprintf("algorithm=%s", rep.Algorithm),
		fmt.Sprintf("visited=%d", len(res.Visited)),
		fmt.Sprintf("steps=%d", res.Steps),
	}
	switch {
	case rep.Algorithm == pathfinder.Count:
		parts = append(parts, fmt.Sprintf("groups=%d", res.Groups))
	case rep.Algorithm.FindsPath():
		parts = append(parts, fmt.Sprintf("found=%t", res.Found))
		if res.Found {
			parts = append(parts, fmt.Sprintf("hops=%d", res.Hops()), fmt.Sprintf("cost=%.3f", res.Cost))
		}
	}
	if rep.GoalPlaced {
		parts = append(parts, "goal=replaced")
	}
	parts = append(parts, fmt.Sprintf("elapsed=%v", rep.Elapsed.Round(time.Microsecond)))
	fmt.Println(strings.Join(parts, " "))
}

func writePNG(path string, g *grid.Grid, route []grid.Coord) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = render.WritePNG(out, g, route, pngCellSize, pngBorder); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// pathAlgorithms lists the registered algorithms that look for Goal.
func pathAlgorithms() []pathfinder.Algorithm {
	var out []pathfinder.Algorithm
	for _, a := range pathfinder.DefaultRegistry().Names() {
		if a.FindsPath() {
			out = append(out, a)
		}
	}
	return out
}

func main() {
	os.Exit(run())
}
