package game

import (
	"strings"
	"testing"
)

func TestNewWorld_SeedDeterminism(t *testing.T) {
	a := NewWorld(42, defaultMazeSize)
	b := NewWorld(42, defaultMazeSize)
	if a.Maze.String() != b.Maze.String() {
		t.Fatal("same seed produced different mazes")
	}
	if len(a.Decor) != len(b.Decor) {
		t.Fatalf("same seed produced %d vs %d decorations", len(a.Decor), len(b.Decor))
	}
	for i := range a.Decor {
		if a.Decor[i] != b.Decor[i] {
			t.Fatalf("decoration %d differs between identical seeds: %+v vs %+v",
				i, a.Decor[i], b.Decor[i])
		}
	}
}

func TestNewWorld_ZeroSeedAssigned(t *testing.T) {
	w := NewWorld(0, defaultMazeSize)
	if w.Seed == 0 {
		t.Fatal("zero seed request kept as-is; want a generated seed recorded")
	}
}

func TestNewWorld_MazeCenteredOnPlateau(t *testing.T) {
	w := NewWorld(1, defaultMazeSize)
	cx, cz := w.Placement.CellCenter((w.Maze.Width-1)/2, (w.Maze.Height-1)/2)
	if cx != mazeCenterX || cz != mazeCenterZ {
		t.Fatalf("maze centre at (%v, %v), want (%v, %v)", cx, cz, mazeCenterX, mazeCenterZ)
	}
	// Every wall cell must sit on the flat plateau elevation.
	for row := 0; row < w.Maze.Height; row++ {
		for col := 0; col < w.Maze.Width; col++ {
			x, z := w.Placement.CellCenter(col, row)
			if h := w.Height(x, z); h != mazePlateauHeight {
				t.Fatalf("cell (%d,%d) ground %v, want flat %v", col, row, h, mazePlateauHeight)
			}
		}
	}
}

func TestNewWorld_DecorKeepsClear(t *testing.T) {
	w := NewWorld(6, defaultMazeSize)
	if len(w.Decor) == 0 {
		t.Fatal("no decorations placed")
	}
	for _, d := range w.Decor {
		if dist(d.X, d.Z, mazeCenterX, mazeCenterZ) < w.plateauRadius {
			t.Fatalf("decoration on the maze plateau at (%v, %v)", d.X, d.Z)
		}
		if w.Height(d.X, d.Z) <= lakeWaterLevel {
			t.Fatalf("decoration under water at (%v, %v)", d.X, d.Z)
		}
		if d.Y != w.Height(d.X, d.Z) {
			t.Fatalf("decoration floats: y=%v ground=%v", d.Y, w.Height(d.X, d.Z))
		}
	}
}

func TestNewWorld_LandmarksAnchored(t *testing.T) {
	w := NewWorld(2, defaultMazeSize)
	if len(w.Landmarks) == 0 {
		t.Fatal("no landmarks")
	}
	for _, lm := range w.Landmarks {
		if lm.Y != w.Height(lm.X, lm.Z) {
			t.Fatalf("landmark %s anchored at %v, ground is %v", lm.Name, lm.Y, w.Height(lm.X, lm.Z))
		}
	}
}

func TestWorld_EntranceAndGoalOnOpenCells(t *testing.T) {
	w := NewWorld(13, defaultMazeSize)
	ex, ez := w.Entrance()
	if w.Placement.IsWall(ex, ez) {
		t.Fatal("entrance resolves to a wall cell")
	}
	gx, gz := w.GoalPos()
	if !w.Placement.IsGoal(gx, gz) {
		t.Fatal("goal position does not resolve to the end cell")
	}
}

func TestWorld_ClampToBounds(t *testing.T) {
	w := NewWorld(1, defaultMazeSize)
	x, z := w.ClampToBounds(worldHalf+50, -worldHalf-50)
	if x != worldHalf || z != -worldHalf {
		t.Fatalf("clamp produced (%v, %v)", x, z)
	}
	if !w.InBounds(x, z) {
		t.Fatal("clamped position out of bounds")
	}
}

func TestWorldReport_Contents(t *testing.T) {
	w := NewWorld(99, defaultMazeSize)
	r := BuildWorldReport(w)
	if r.Seed != 99 {
		t.Fatalf("report seed %d, want 99", r.Seed)
	}
	if r.SolutionLen == 0 {
		t.Fatal("report missing solution length")
	}
	total := 0
	for _, n := range r.DecorCounts {
		total += n
	}
	if total != len(w.Decor) {
		t.Fatalf("decor counts sum %d, want %d", total, len(w.Decor))
	}
	s := r.String()
	if !strings.Contains(s, "seed=99") || !strings.Contains(s, "maze:") {
		t.Fatalf("report text missing fields:\n%s", s)
	}
}
