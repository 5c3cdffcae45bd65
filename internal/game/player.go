package game

import (
	"fmt"
	"math"
)

// MoveMode selects the explorer's vertical behaviour.
type MoveMode uint8

const (
	ModeWalk MoveMode = iota // ground-clamped to the terrain field
	ModeFly                  // free climb, never below ground clearance
)

// Explorer tuning constants.
const (
	walkSpeed     = 0.9  // world units per tick
	mazeWalkSpeed = 0.55 // slower inside the corridors
	turnRate      = 0.06 // radians per tick at full turn input
	climbRate     = 0.5  // fly-mode vertical units per tick
	eyeHeight     = 1.6
	flyClearance  = 0.8  // minimum gap between ground and fly-mode feet
	promptRadius  = 12.0 // entrance prompt margin beyond the plateau edge
)

// MoveInput is one tick of control input, normalized to [-1, 1] per axis.
// Keeping it a plain value type lets the headless harness drive the
// explorer exactly the way the interactive input handler does.
type MoveInput struct {
	Forward float64 // + ahead, - back
	Strafe  float64 // + right, - left
	Turn    float64 // + clockwise
	Ascend  float64 // fly mode only
}

// Explorer is the player avatar: a position, a heading and a movement
// mode. Each tick it proposes a displacement from input, gates it through
// the terrain field or the maze collision queries, and surfaces boundary
// events for the UI layer.
type Explorer struct {
	X, Y, Z float64
	Heading float64 // radians on the XZ plane, 0 = +Z
	Mode    MoveMode

	InsideMaze   bool
	GoalReached  bool // latched once true for the session
	NearEntrance bool

	// Edge-triggered callbacks, invoked at most once per boundary crossing.
	OnNearEntrance func()
	OnGoalReached  func()

	world    *World
	log      *SimLog
	tick     int
	prevNear bool
	slideCnt int // collision ticks resolved by axis sliding
}

// NewExplorer spawns an explorer on the ground at (x, z).
func NewExplorer(w *World, x, z float64) *Explorer {
	e := &Explorer{world: w, X: x, Z: z, log: NewSimLog(false)}
	e.Y = w.Height(x, z) + eyeHeight
	return e
}

// SetLog attaches a structured event log (harness and tests).
func (e *Explorer) SetLog(sl *SimLog) { e.log = sl }

// Update advances the explorer one tick.
func (e *Explorer) Update(in MoveInput) {
	e.tick++
	e.Heading += in.Turn * turnRate

	sin, cos := math.Sincos(e.Heading)
	speed := walkSpeed
	if e.InsideMaze {
		speed = mazeWalkSpeed
	}
	dx := (sin*in.Forward + cos*in.Strafe) * speed
	dz := (cos*in.Forward - sin*in.Strafe) * speed

	if e.InsideMaze {
		e.updateInMaze(dx, dz)
	} else {
		e.updateOutside(dx, dz, in.Ascend)
	}

	e.updateEntrancePrompt()
	e.log.AddVerbose(e.tick, "move", "pos",
		fmt.Sprintf("(%.1f, %.1f, %.1f)", e.X, e.Y, e.Z), 0)
}

// updateInMaze gates the displacement through the wall grid with sliding
// resolution, keeps the eye on the plateau, and checks the win condition.
func (e *Explorer) updateInMaze(dx, dz float64) {
	p := &e.world.Placement
	nx, nz := p.ResolveMove(e.X, e.Z, dx, dz)
	if (nx != e.X+dx || nz != e.Z+dz) && (nx != e.X || nz != e.Z) {
		e.slideCnt++
		e.log.AddVerbose(e.tick, "maze", "slide", "", 0)
	}
	e.X, e.Z = nx, nz
	e.Y = mazePlateauHeight + eyeHeight

	if !e.GoalReached && p.IsGoal(e.X, e.Z) {
		e.GoalReached = true
		e.log.Add(e.tick, "maze", "goal_reached",
			fmt.Sprintf("cell=(%d,%d)", e.world.Maze.End.Col, e.world.Maze.End.Row), 0)
		if e.OnGoalReached != nil {
			e.OnGoalReached()
		}
	}
}

// updateOutside applies open-terrain movement: the candidate position is
// clamped to the world extent and the eye follows the height field. A
// walker is solid against hedge cells even from outside, with the same
// axis-separated sliding as in-maze movement; fly mode passes over. Fly
// mode climbs freely but never dips below ground clearance.
func (e *Explorer) updateOutside(dx, dz, ascend float64) {
	nx, nz := e.world.ClampToBounds(e.X+dx, e.Z+dz)
	if e.Mode == ModeWalk && e.world.BlocksWalker(nx, nz) {
		switch {
		case !e.world.BlocksWalker(e.X, nz):
			nx = e.X
		case !e.world.BlocksWalker(nx, e.Z):
			nz = e.Z
		default:
			nx, nz = e.X, e.Z
		}
	}
	e.X, e.Z = nx, nz

	ground := e.world.Height(e.X, e.Z)
	switch e.Mode {
	case ModeFly:
		e.Y += ascend * climbRate
		if e.Y < ground+flyClearance {
			e.Y = ground + flyClearance
		}
	default:
		e.Y = ground + eyeHeight
	}
}

// updateEntrancePrompt maintains the edge-triggered entrance event. The
// prompt fires at the plateau ring, which a walker can always reach: the
// solid hedge footprint starts further in.
func (e *Explorer) updateEntrancePrompt() {
	near := !e.InsideMaze &&
		dist(e.X, e.Z, mazeCenterX, mazeCenterZ) < e.world.plateauRadius+promptRadius
	e.NearEntrance = near
	if near && !e.prevNear {
		e.log.Add(e.tick, "maze", "near_entrance", "", 0)
		if e.OnNearEntrance != nil {
			e.OnNearEntrance()
		}
	}
	e.prevNear = near
}

// EnterMaze drops the explorer onto the start cell. Walking in through the
// outer wall is impossible because the border ring is closed, so entry is
// an explicit transition triggered from the entrance prompt.
func (e *Explorer) EnterMaze() {
	sx, sz := e.world.Entrance()
	e.X, e.Z = sx, sz
	e.Y = mazePlateauHeight + eyeHeight
	e.InsideMaze = true
	e.Mode = ModeWalk
	e.log.Add(e.tick, "maze", "entered", "", 0)
}

// ExitMaze returns the explorer to open terrain just outside the plateau.
func (e *Explorer) ExitMaze() {
	e.InsideMaze = false
	exitDist := e.world.plateauRadius + mazeBlendBand + 2
	sin, cos := math.Sincos(e.Heading)
	e.X, e.Z = e.world.ClampToBounds(mazeCenterX-sin*exitDist, mazeCenterZ-cos*exitDist)
	e.Y = e.world.Height(e.X, e.Z) + eyeHeight
	e.log.Add(e.tick, "maze", "exited", "", 0)
}

// SlideCount returns how many blocked moves resolved by wall sliding.
func (e *Explorer) SlideCount() int { return e.slideCnt }
