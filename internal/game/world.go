package game

import (
	"math"
	"math/rand"
	"time"
)

// World extent: the map spans [-worldHalf, worldHalf] on both horizontal
// axes, in world units.
const worldHalf = 320.0

// Default maze parameters for a standard session.
const (
	defaultMazeSize = 21
	mazeCellSize    = 4.0
)

// Landmark is a named point of interest anchored to the terrain.
type Landmark struct {
	Name        string
	X, Z        float64
	Y           float64 // ground elevation at the anchor, sampled at build time
	ClearRadius float64 // decoration keep-out radius
}

// World is one exploration session: the terrain oracle, a generated maze
// bound into world space, landmark anchors and scattered decoration. Built
// once per session; everything except the explorer state is immutable
// afterwards.
type World struct {
	Seed      int64
	Terrain   *TerrainField
	Maze      *MazeGrid
	Placement MazePlacement
	Landmarks []Landmark
	Decor     []DecorInstance

	plateauRadius float64
}

// NewWorld builds a session world from a seed. Seed 0 derives one from
// the wall clock; any other value reproduces the session exactly.
func NewWorld(seed int64, mazeSize int) *World {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if mazeSize <= 0 {
		mazeSize = defaultMazeSize
	}

	maze := GenerateMaze(MazeConfig{Width: mazeSize, Height: mazeSize, Seed: seed})
	footprint := float64(maze.Width) * mazeCellSize

	w := &World{
		Seed:          seed,
		Terrain:       NewTerrainField(footprint),
		Maze:          maze,
		Placement:     PlaceMaze(maze, mazeCenterX, mazeCenterZ, mazeCellSize),
		plateauRadius: math.Hypot(footprint, footprint)/2 + mazePlateauMargin,
	}

	w.Landmarks = []Landmark{
		{Name: "keep", X: keepX, Z: keepZ, ClearRadius: 40},
		{Name: "village", X: villageX, Z: villageZ, ClearRadius: 54},
		{Name: "station", X: stationX, Z: stationZ, ClearRadius: 44},
		{Name: "pitch", X: pitchX, Z: pitchZ, ClearRadius: 38},
		{Name: "island", X: islandX, Z: islandZ, ClearRadius: 0},
		{Name: "mound", X: moundX, Z: moundZ, ClearRadius: 0},
	}
	for i := range w.Landmarks {
		lm := &w.Landmarks[i]
		lm.Y = w.Height(lm.X, lm.Z)
	}

	// Decoration scatter: seeded independently of maze carving so maze
	// layout and vegetation can be varied without coupling.
	rng := rand.New(rand.NewSource(seed + 7777)) // #nosec G404 -- cosmetic placement
	w.Decor = scatterDecor(w, rng, defaultDecorConfig)

	return w
}

// Height returns the ground elevation at (x, z).
func (w *World) Height(x, z float64) float64 {
	return w.Terrain.Height(x, z)
}

// Entrance returns the world position of the maze start cell, which
// doubles as the entrance prompt anchor.
func (w *World) Entrance() (x, z float64) {
	return w.Placement.CellCenter(w.Maze.Start.Col, w.Maze.Start.Row)
}

// GoalPos returns the world position of the maze end cell.
func (w *World) GoalPos() (x, z float64) {
	return w.Placement.CellCenter(w.Maze.End.Col, w.Maze.End.Row)
}

// Extent returns the world's horizontal coordinate range, shared by both
// axes.
func (w *World) Extent() (min, max float64) {
	return -worldHalf, worldHalf
}

// InBounds reports whether (x, z) lies inside the world extent.
func (w *World) InBounds(x, z float64) bool {
	return x >= -worldHalf && x <= worldHalf && z >= -worldHalf && z <= worldHalf
}

// ClampToBounds pulls a position back inside the world extent.
func (w *World) ClampToBounds(x, z float64) (float64, float64) {
	return math.Min(math.Max(x, -worldHalf), worldHalf),
		math.Min(math.Max(z, -worldHalf), worldHalf)
}

// BlocksWalker reports whether ground movement may not stand at (x, z):
// hedge cells are solid to a walker even when approached from outside the
// maze. Open cells and everything beyond the grid footprint are free.
func (w *World) BlocksWalker(x, z float64) bool {
	return w.Placement.Contains(x, z) && w.Placement.IsWall(x, z)
}

// DecorCount returns the number of placed decorations of the given kind.
func (w *World) DecorCount(kind DecorKind) int {
	n := 0
	for _, d := range w.Decor {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
