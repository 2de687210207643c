package grid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/gridwalk/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_PlacesMarkers checks default Start/Goal placement at opposite corners.
func TestNew_PlacesMarkers(t *testing.T) {
	g := grid.New(4, 3)
	if g.Columns() != 4 || g.Rows() != 3 || g.Size() != 12 {
		t.Fatalf("dims = %dx%d (%d); want 4x3 (12)", g.Columns(), g.Rows(), g.Size())
	}
	s, ok := g.StartNode()
	if !ok || s.Coord() != (grid.Coord{X: 0, Y: 0}) {
		t.Errorf("StartNode = %v,%v; want 0,0", s, ok)
	}
	e, ok := g.EndNode()
	if !ok || e.Coord() != (grid.Coord{X: 3, Y: 2}) {
		t.Errorf("EndNode = %v,%v; want 3,2", e, ok)
	}
}

// TestNew_Degenerate covers empty, negative and single-cell grids.
func TestNew_Degenerate(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 5}, {5, 0}, {-1, 3}} {
		g := grid.New(dims[0], dims[1])
		if g.Size() != 0 {
			t.Errorf("New(%d,%d).Size() = %d; want 0", dims[0], dims[1], g.Size())
		}
		if _, ok := g.StartNode(); ok {
			t.Errorf("New(%d,%d) has a start node", dims[0], dims[1])
		}
		if g.UpdateNode(0, 0, grid.Wall) {
			t.Errorf("UpdateNode on empty grid reported success")
		}
		g.ResetAllNodes() // must not panic
	}

	one := grid.New(1, 1)
	if _, ok := one.StartNode(); !ok {
		t.Error("1x1 grid: missing start")
	}
	if _, ok := one.EndNode(); ok {
		t.Error("1x1 grid: goal must not overwrite start")
	}
}

// TestNew_WithoutMarkers leaves every cell Empty.
func TestNew_WithoutMarkers(t *testing.T) {
	g := grid.New(3, 3, grid.WithoutMarkers())
	if n := len(g.CellsByType(grid.Empty)); n != 9 {
		t.Errorf("empty cells = %d; want 9", n)
	}
}

// TestCell_Defaults verifies scores start at +Inf with no predecessor.
func TestCell_Defaults(t *testing.T) {
	g := grid.New(2, 2)
	c, _ := g.At(1, 0)
	for name, v := range map[string]float64{"G": c.G, "H": c.H, "F": c.F, "Distance": c.Distance} {
		if !math.IsInf(v, 1) {
			t.Errorf("%s = %v; want +Inf", name, v)
		}
	}
	if _, ok := c.Previous(); ok {
		t.Error("new cell has a predecessor")
	}
	if c.State() != grid.Unvisited {
		t.Errorf("state = %v; want unvisited", c.State())
	}
}

//----------------------------------------------------------------------------//
// Mutation
//----------------------------------------------------------------------------//

// TestUpdateNode_MarkerUniqueness moves Start on a 3×3 grid.
func TestUpdateNode_MarkerUniqueness(t *testing.T) {
	g := grid.New(3, 3, grid.WithoutMarkers())
	g.UpdateNode(0, 0, grid.Start)
	g.UpdateNode(2, 2, grid.Start)

	starts := g.CellsByType(grid.Start)
	if len(starts) != 1 || starts[0].Coord() != (grid.Coord{X: 2, Y: 2}) {
		t.Fatalf("starts = %v; want exactly (2,2)", starts)
	}
	old, _ := g.At(0, 0)
	if old.Type() != grid.Empty {
		t.Errorf("old start type = %v; want empty", old.Type())
	}

	g.UpdateNode(1, 1, grid.Goal)
	g.UpdateNode(0, 1, grid.Goal)
	if goals := g.CellsByType(grid.Goal); len(goals) != 1 {
		t.Errorf("goals = %d; want 1", len(goals))
	}
}

// TestUpdateNode_OutOfRange is a silent no-op.
func TestUpdateNode_OutOfRange(t *testing.T) {
	g := grid.New(2, 2)
	before := g.String()
	for _, xy := range [][2]int{{-1, 0}, {2, 0}, {0, 2}, {5, 5}} {
		if g.UpdateNode(xy[0], xy[1], grid.Wall) {
			t.Errorf("UpdateNode(%d,%d) reported success", xy[0], xy[1])
		}
	}
	if g.String() != before {
		t.Errorf("grid changed:\n%s\nwant\n%s", g.String(), before)
	}
}

// TestSetState_Transitions enforces forward-only state moves.
func TestSetState_Transitions(t *testing.T) {
	g := grid.New(2, 1)
	c, _ := g.At(1, 0)

	if !g.SetState(c, grid.Queued) {
		t.Fatal("unvisited→queued refused")
	}
	if g.SetState(c, grid.Unvisited) {
		t.Error("queued→unvisited accepted")
	}
	if !g.Visit(c) {
		t.Fatal("queued→visited refused")
	}
	if g.SetState(c, grid.Queued) {
		t.Error("visited→queued accepted")
	}
	if c.State() != grid.Visited {
		t.Errorf("state = %v; want visited", c.State())
	}
}

// TestResetAllNodes clears state, scores and predecessors but keeps types.
func TestResetAllNodes(t *testing.T) {
	g := grid.New(3, 3)
	g.UpdateNode(1, 1, grid.Wall)
	for _, c := range g.Cells() {
		g.Visit(c)
		c.G, c.Distance = 3, 4
		c.SetPrevious(grid.Coord{X: 0, Y: 0})
	}
	g.ResetAllNodes()

	for _, c := range g.Cells() {
		if c.State() != grid.Unvisited {
			t.Errorf("%v state = %v; want unvisited", c.Coord(), c.State())
		}
		if _, ok := c.Previous(); ok {
			t.Errorf("%v still has a predecessor", c.Coord())
		}
		if !math.IsInf(c.G, 1) || !math.IsInf(c.Distance, 1) {
			t.Errorf("%v scores not reset", c.Coord())
		}
	}
	if w, _ := g.At(1, 1); w.Type() != grid.Wall {
		t.Error("reset changed a cell type")
	}
}

// TestUpdateAllNodes forces a single type everywhere.
func TestUpdateAllNodes(t *testing.T) {
	g := grid.New(3, 2)
	g.UpdateAllNodes(grid.Wall)
	if n := len(g.CellsByType(grid.Wall)); n != 6 {
		t.Errorf("walls = %d; want 6", n)
	}
	if _, ok := g.StartNode(); ok {
		t.Error("start survived UpdateAllNodes(Wall)")
	}
}

// TestRandomize moves the markers onto Empty cells and keeps them unique.
func TestRandomize(t *testing.T) {
	g := grid.New(5, 5)
	for i := 0; i < 10; i++ {
		if !g.RandomizeStart() || !g.RandomizeEnd() {
			t.Fatal("randomize reported no empty cell")
		}
		if len(g.CellsByType(grid.Start)) != 1 || len(g.CellsByType(grid.Goal)) != 1 {
			t.Fatalf("markers not unique:\n%s", g)
		}
	}

	full := grid.New(2, 1)
	if full.RandomizeStart() {
		t.Error("RandomizeStart succeeded without empty cells")
	}
}

//----------------------------------------------------------------------------//
// Listener
//----------------------------------------------------------------------------//

// TestListener_ReceivesEffectiveChanges counts notifications.
func TestListener_ReceivesEffectiveChanges(t *testing.T) {
	var types, states int
	g := grid.New(3, 3, grid.WithListener(grid.ListenerFuncs{
		OnType:  func(grid.Coord, grid.CellType) { types++ },
		OnState: func(grid.Coord, grid.CellState) { states++ },
	}))

	g.UpdateNode(1, 1, grid.Wall)
	g.UpdateNode(1, 1, grid.Wall) // unchanged: silent
	g.UpdateNode(2, 0, grid.Start) // clears (0,0) then sets (2,0)
	if types != 3 {
		t.Errorf("type events = %d; want 3", types)
	}

	c, _ := g.At(0, 1)
	g.SetState(c, grid.Queued)
	g.Visit(c)
	g.ResetAllNodes()
	if states != 3 {
		t.Errorf("state events = %d; want 3", states)
	}
}

//----------------------------------------------------------------------------//
// Connect
//----------------------------------------------------------------------------//

// TestConnect carves the wall between cells two steps apart.
func TestConnect(t *testing.T) {
	g := grid.New(5, 5, grid.WithoutMarkers())
	g.UpdateAllNodes(grid.Wall)
	src, _ := g.At(2, 2)

	cases := []struct {
		to, mid grid.Coord
	}{
		{grid.Coord{X: 2, Y: 0}, grid.Coord{X: 2, Y: 1}},
		{grid.Coord{X: 4, Y: 2}, grid.Coord{X: 3, Y: 2}},
		{grid.Coord{X: 0, Y: 4}, grid.Coord{X: 1, Y: 3}},
	}
	for _, tc := range cases {
		dst, _ := g.CellAt(tc.to)
		if !g.Connect(src, dst) {
			t.Errorf("Connect(%v,%v) = false; want true", src.Coord(), tc.to)
		}
		mid, _ := g.CellAt(tc.mid)
		if mid.Type() != grid.Empty || mid.State() != grid.Visited {
			t.Errorf("mid %v = %v/%v; want empty/visited", tc.mid, mid.Type(), mid.State())
		}
		if g.Connect(src, dst) {
			t.Errorf("second Connect(%v,%v) removed a wall again", src.Coord(), tc.to)
		}
	}

	// Not exactly two steps away: ignored.
	adj, _ := g.At(2, 3)
	far, _ := g.At(2, 4)
	if g.Connect(src, adj) {
		t.Error("Connect accepted an adjacent cell")
	}
	if g.Connect(adj, far) {
		t.Error("Connect accepted an adjacent cell")
	}
}

//----------------------------------------------------------------------------//
// Parse / Render
//----------------------------------------------------------------------------//

// TestParse_Errors rejects malformed layouts.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name   string
		layout string
		err    error
	}{
		{"Empty", "\n  \n", grid.ErrEmptyGrid},
		{"Ragged", "S..\n..", grid.ErrNonRectangular},
		{"Glyph", "S.x\n..G", grid.ErrUnknownGlyph},
		{"TwoStarts", "S.S\n..G", grid.ErrDuplicateMarker},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := grid.Parse(tc.layout); !errors.Is(err, tc.err) {
				t.Errorf("Parse error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestParse_RoundTrip renders a parsed layout unchanged.
func TestParse_RoundTrip(t *testing.T) {
	layout := "S.#.\n.#..\n...G\n"
	g, err := grid.Parse(layout)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Columns() != 4 || g.Rows() != 3 {
		t.Fatalf("dims = %dx%d; want 4x3", g.Columns(), g.Rows())
	}
	if got := g.String(); got != layout {
		t.Errorf("String() =\n%s\nwant\n%s", got, layout)
	}
	if w, _ := g.At(2, 0); w.Type() != grid.Wall {
		t.Errorf("(2,0) = %v; want wall", w.Type())
	}
}

// TestRenderPath overlays a path and state glyphs.
func TestRenderPath(t *testing.T) {
	g, _ := grid.Parse("S..\n...\n..G")
	c, _ := g.At(2, 0)
	g.Visit(c)
	q, _ := g.At(0, 2)
	g.SetState(q, grid.Queued)

	path := []grid.Coord{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}}
	want := "S.*\n@@@\no.G\n"
	if got := g.RenderPath(path); got != want {
		t.Errorf("RenderPath =\n%s\nwant\n%s", got, want)
	}
}

// TestParseCellType accepts both goal spellings.
func TestParseCellType(t *testing.T) {
	for in, want := range map[string]grid.CellType{
		"empty": grid.Empty, "Wall": grid.Wall, " start ": grid.Start, "end": grid.Goal, "GOAL": grid.Goal,
	} {
		got, err := grid.ParseCellType(in)
		if err != nil || got != want {
			t.Errorf("ParseCellType(%q) = %v,%v; want %v", in, got, err, want)
		}
	}
	if _, err := grid.ParseCellType("lava"); !errors.Is(err, grid.ErrUnknownCellType) {
		t.Errorf("ParseCellType(lava) error = %v; want ErrUnknownCellType", err)
	}
}
