package game

import (
	"fmt"
	"math"
)

// TestSim is a headless exploration session used by tests and the
// headless-report command. It mirrors the interactive game's tick but has
// no Ebiten dependency: an autopilot walks the explorer to the maze
// entrance, enters, and follows the solution path to the goal, logging
// structured events along the way.
type TestSim struct {
	World    *World
	Explorer *Explorer
	SimLog   *SimLog
	Tick     int

	seed     int64
	mazeSize int
	spawnX   float64
	spawnZ   float64
	verbose  bool

	solution []GridPos
	wpIndex  int
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptConfig simOptionKind = iota // seed, maze size, verbosity; applied before world build
	simOptActor                       // spawn placement; applied after the world exists
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSeed sets the world seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) { ts.seed = seed }}
}

// WithMazeSize sets the requested maze dimensions (coerced odd by the
// generator as usual).
func WithMazeSize(n int) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) { ts.mazeSize = n }}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) { ts.verbose = v }}
}

// WithSpawn places the explorer at (x, z) instead of the default spawn
// near the village.
func WithSpawn(x, z float64) SimOption {
	return SimOption{simOptActor, func(ts *TestSim) {
		ts.Explorer.X, ts.Explorer.Z = ts.World.ClampToBounds(x, z)
		ts.Explorer.Y = ts.World.Height(ts.Explorer.X, ts.Explorer.Z) + eyeHeight
	}}
}

// NewTestSim constructs a TestSim from the given options in two ordered
// passes: configuration first, then the world build, then actor placement.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		seed:     1,
		mazeSize: defaultMazeSize,
		spawnX:   villageX,
		spawnZ:   villageZ,
	}
	for _, o := range opts {
		if o.kind == simOptConfig {
			o.fn(ts)
		}
	}

	ts.World = NewWorld(ts.seed, ts.mazeSize)
	ts.SimLog = NewSimLog(ts.verbose)
	ts.Explorer = NewExplorer(ts.World, ts.spawnX, ts.spawnZ)
	ts.Explorer.SetLog(ts.SimLog)
	ts.solution = ts.World.Maze.Solve()

	for _, o := range opts {
		if o.kind == simOptActor {
			o.fn(ts)
		}
	}
	return ts
}

// Step runs one autopilot tick. The autopilot walks straight toward the
// entrance over open terrain, enters when the prompt fires, then tracks
// the solution path waypoint by waypoint until the goal latches.
func (ts *TestSim) Step() {
	ts.Tick++
	e := ts.Explorer

	if e.GoalReached {
		return
	}

	var tx, tz float64
	switch {
	case !e.InsideMaze:
		tx, tz = ts.World.Entrance()
		if e.NearEntrance {
			e.EnterMaze()
			ts.wpIndex = 0
			return
		}
	default:
		// Advance the waypoint when the current one is reached.
		for ts.wpIndex < len(ts.solution) {
			wp := ts.solution[ts.wpIndex]
			wx, wz := ts.World.Placement.CellCenter(wp.Col, wp.Row)
			if dist(e.X, e.Z, wx, wz) > ts.World.Placement.CellSize*0.25 {
				tx, tz = wx, wz
				break
			}
			ts.wpIndex++
		}
		if ts.wpIndex >= len(ts.solution) {
			tx, tz = ts.World.GoalPos()
		}
	}

	e.Heading = math.Atan2(tx-e.X, tz-e.Z)
	e.Update(MoveInput{Forward: 1})
}

// Run executes up to the given number of ticks, stopping early once the
// goal latches. Returns the tick count actually executed.
func (ts *TestSim) Run(maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Step()
		if ts.Explorer.GoalReached {
			break
		}
	}
	return ts.Tick
}

// Summary returns a one-line result for report tables.
func (ts *TestSim) Summary() string {
	goal := ts.SimLog.FirstTick("maze", "goal_reached")
	entered := ts.SimLog.FirstTick("maze", "entered")
	return fmt.Sprintf("seed=%d maze=%dx%d entered=%d goal=%d path=%d slides=%d",
		ts.World.Seed, ts.World.Maze.Width, ts.World.Maze.Height,
		entered, goal, len(ts.solution), ts.Explorer.SlideCount())
}
