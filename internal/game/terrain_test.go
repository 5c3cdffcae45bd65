package game

import (
	"math"
	"testing"
)

func testField() *TerrainField {
	return NewTerrainField(float64(defaultMazeSize) * mazeCellSize)
}

func TestTerrainField_Deterministic(t *testing.T) {
	f := testField()
	points := [][2]float64{
		{0, 0}, {-315.5, 310.25}, {keepX, keepZ}, {12.125, -260.75},
		{mazeCenterX, mazeCenterZ}, {0.1, 0.2},
	}
	for _, p := range points {
		a := f.Height(p[0], p[1])
		b := f.Height(p[0], p[1])
		if a != b {
			t.Fatalf("Height(%v, %v) not deterministic: %v vs %v", p[0], p[1], a, b)
		}
	}
}

func TestTerrainField_BaseSurfaceOutsideOverrides(t *testing.T) {
	f := testField()
	// (300, 300) is outside every override footprint.
	got := f.Height(300, 300)
	want := baseSurface(300, 300)
	if got != want {
		t.Fatalf("unmodified point altered: got %v, want base %v", got, want)
	}
}

func TestTerrainField_KeepCourtFlat(t *testing.T) {
	f := testField()
	// Inside the inner radius the target elevation applies exactly.
	for _, d := range []float64{0, 10, 30} {
		if got := f.Height(keepX+d, keepZ); got != 14.0 {
			t.Fatalf("keep court at offset %v: got %v, want 14.0", d, got)
		}
	}
	// Beyond the outer radius the court has no influence; the point below
	// is clear of every other override footprint too.
	got := f.Height(keepX, keepZ-120)
	if got == 14.0 {
		t.Fatalf("keep court leaked past outer radius")
	}
}

func TestTerrainField_BlendBandMonotonic(t *testing.T) {
	f := testField()
	// Crossing the keep's blend ring, each step should move away from the
	// target smoothly, with no jumps back to the full target height.
	prev := f.Height(keepX+36, keepZ)
	for d := 38.0; d <= 90; d += 2 {
		h := f.Height(keepX+d, keepZ)
		if math.Abs(h-prev) > 1.5 {
			t.Fatalf("blend band discontinuity at d=%v: %v -> %v", d, prev, h)
		}
		prev = h
	}
}

func TestTerrainField_LakeBedBelowWater(t *testing.T) {
	f := testField()
	// Inside the lake rectangle, away from the island.
	if got := f.Height(-40, -300); got > lakeBedCap {
		t.Fatalf("lake bed not clamped: got %v, cap %v", got, lakeBedCap)
	}
}

func TestTerrainField_IslandRisesFromLake(t *testing.T) {
	f := testField()
	// The island rule runs after the lake clamp, so its floor wins.
	if got := f.Height(islandX, islandZ); got <= lakeWaterLevel {
		t.Fatalf("island summit below water: %v", got)
	}
}

func TestTerrainField_MoundMinimum(t *testing.T) {
	f := testField()
	if got := f.Height(moundX, moundZ); got < 7.0 {
		t.Fatalf("mound summit below minimum: got %v, want >= 7", got)
	}
}

func TestTerrainField_MazePlateauExactlyFlat(t *testing.T) {
	footprint := float64(defaultMazeSize) * mazeCellSize
	f := NewTerrainField(footprint)
	flatRadius := math.Hypot(footprint, footprint)/2 + mazePlateauMargin

	for _, d := range []float64{0, flatRadius * 0.5, flatRadius * 0.99} {
		if got := f.Height(mazeCenterX+d, mazeCenterZ); got != mazePlateauHeight {
			t.Fatalf("plateau not flat at d=%v: got %v, want %v", d, got, mazePlateauHeight)
		}
	}
	// Beyond the blend band the plateau has no influence.
	far := f.Height(mazeCenterX+flatRadius+mazeBlendBand+5, mazeCenterZ)
	if far == mazePlateauHeight {
		t.Fatalf("plateau clamp leaked past blend band")
	}
}

func TestTerrainField_NaNPropagates(t *testing.T) {
	f := testField()
	if got := f.Height(math.NaN(), 0); !math.IsNaN(got) {
		t.Fatalf("NaN input produced finite height %v", got)
	}
}

func TestTerrainField_RuleOrderStable(t *testing.T) {
	f := testField()
	names := f.RuleNames()
	if len(names) == 0 || names[len(names)-1] != "maze-plateau" {
		t.Fatalf("maze plateau must be the final rule, got order %v", names)
	}
	if names[0] != "keep-court" {
		t.Fatalf("blend rules must precede clamps, got order %v", names)
	}
}
