package game

import "testing"

// testGrid builds a fixed 5x5 grid directly:
//
//	#####
//	#S..#
//	###.#
//	#E..#
//	#####
func testGrid() *MazeGrid {
	const (
		w = MazeWall
		o = MazeOpen
	)
	return &MazeGrid{
		Width:  5,
		Height: 5,
		Start:  GridPos{1, 1},
		End:    GridPos{1, 3},
		cells: []MazeCell{
			w, w, w, w, w,
			w, o, o, o, w,
			w, w, w, o, w,
			w, o, o, o, w,
			w, w, w, w, w,
		},
	}
}

func testPlacement() MazePlacement {
	return MazePlacement{Grid: testGrid(), OriginX: 0, OriginZ: 0, CellSize: 1}
}

func TestMazePlacement_CellCentering(t *testing.T) {
	p := testPlacement()
	cases := []struct {
		x, z     float64
		col, row int
	}{
		{0, 0, 0, 0},
		{0.49, 0, 0, 0},
		{0.51, 0, 1, 0},
		{1.0, 1.0, 1, 1},
		{-0.51, 0, -1, 0},
		{3.49, 2.51, 3, 3},
	}
	for _, c := range cases {
		col, row := p.CellAt(c.x, c.z)
		if col != c.col || row != c.row {
			t.Fatalf("CellAt(%v, %v) = (%d,%d), want (%d,%d)", c.x, c.z, col, row, c.col, c.row)
		}
	}
}

func TestMazePlacement_FailClosed(t *testing.T) {
	p := testPlacement()
	far := [][2]float64{{1e6, 1e6}, {-1e6, 0}, {0, -1e6}, {500, 2}, {2, -500}}
	for _, f := range far {
		if !p.IsWall(f[0], f[1]) {
			t.Fatalf("IsWall(%v, %v) = false, want fail-closed true", f[0], f[1])
		}
	}
}

func TestMazePlacement_IsGoal(t *testing.T) {
	p := testPlacement()
	if !p.IsGoal(1.0, 3.0) {
		t.Fatal("end cell centre not recognized as goal")
	}
	if !p.IsGoal(1.3, 2.8) {
		t.Fatal("offset inside end cell not recognized as goal")
	}
	if p.IsGoal(2.0, 3.0) {
		t.Fatal("neighbour cell misreported as goal")
	}
}

func TestMazePlacement_SlidingResolution(t *testing.T) {
	p := testPlacement()
	// Standing in the start cell, wall directly ahead (+Z), open to the
	// east. A forward-leaning diagonal displacement must shed its forward
	// component and keep the lateral one.
	x, z := 1.0, 1.0
	nx, nz := p.ResolveMove(x, z, 0.6, 0.9)
	if nz != z {
		t.Fatalf("forward component not cancelled: z moved %v -> %v", z, nz)
	}
	if nx != x+0.6 {
		t.Fatalf("lateral component lost: x %v -> %v, want %v", x, nx, x+0.6)
	}
}

func TestMazePlacement_SlidingPrefersZ(t *testing.T) {
	p := testPlacement()
	// In the corridor cell (3,1), moving diagonally into the wall at
	// (2,2): the Z-only candidate (3,2) is open and wins.
	x, z := 3.0, 1.0
	nx, nz := p.ResolveMove(x, z, -0.8, 0.8)
	if nx != x || nz != z+0.8 {
		t.Fatalf("expected Z-only slide to (%v, %v), got (%v, %v)", x, z+0.8, nx, nz)
	}
}

func TestMazePlacement_FullBlockStops(t *testing.T) {
	p := testPlacement()
	// Start cell pushing into the corner: both single-axis moves blocked.
	x, z := 1.0, 1.0
	nx, nz := p.ResolveMove(x, z, -0.9, 0.9)
	if nx != x || nz != z {
		t.Fatalf("fully blocked move changed position: (%v, %v) -> (%v, %v)", x, z, nx, nz)
	}
}

func TestMazePlacement_OpenMovePasses(t *testing.T) {
	p := testPlacement()
	nx, nz := p.ResolveMove(1.0, 1.0, 0.9, 0.0)
	if nx != 1.9 || nz != 1.0 {
		t.Fatalf("unobstructed move altered: got (%v, %v)", nx, nz)
	}
}

func TestPlaceMaze_CentersGrid(t *testing.T) {
	m := GenerateMaze(MazeConfig{Width: 21, Height: 21, Seed: 1})
	p := PlaceMaze(m, mazeCenterX, mazeCenterZ, mazeCellSize)
	cx, cz := p.CellCenter((m.Width-1)/2, (m.Height-1)/2)
	if cx != mazeCenterX || cz != mazeCenterZ {
		t.Fatalf("centre cell at (%v, %v), want (%v, %v)", cx, cz, mazeCenterX, mazeCenterZ)
	}
}
