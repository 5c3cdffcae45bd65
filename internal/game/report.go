package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// WorldReport is a snapshot of a session's generated content, used by the
// in-game debug copy key and the headless-report command.
type WorldReport struct {
	Seed        int64
	MazeWidth   int
	MazeHeight  int
	SolutionLen int
	Landmarks   []Landmark
	DecorCounts [decorKindCount]int
	MazeDiagram string
}

// BuildWorldReport collects the report from a world.
func BuildWorldReport(w *World) WorldReport {
	r := WorldReport{
		Seed:        w.Seed,
		MazeWidth:   w.Maze.Width,
		MazeHeight:  w.Maze.Height,
		SolutionLen: len(w.Maze.Solve()),
		Landmarks:   w.Landmarks,
		MazeDiagram: w.Maze.String(),
	}
	for k := DecorKind(0); k < decorKindCount; k++ {
		r.DecorCounts[k] = w.DecorCount(k)
	}
	return r
}

// String renders the report as plain text.
func (r WorldReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Hollowmere world report ---\n")
	fmt.Fprintf(&b, "seed=%d maze=%dx%d solution_len=%d\n",
		r.Seed, r.MazeWidth, r.MazeHeight, r.SolutionLen)
	fmt.Fprintf(&b, "decor: grass=%d rock=%d bush=%d tree=%d\n",
		r.DecorCounts[DecorGrass], r.DecorCounts[DecorRock],
		r.DecorCounts[DecorBush], r.DecorCounts[DecorTree])
	b.WriteString("landmarks:\n")
	for _, lm := range r.Landmarks {
		fmt.Fprintf(&b, "  %-8s (%7.1f, %7.1f) ground=%.2f\n", lm.Name, lm.X, lm.Z, lm.Y)
	}
	b.WriteString("maze:\n")
	b.WriteString(r.MazeDiagram)
	return b.String()
}

// CopyToClipboard puts the rendered report on the system clipboard.
func (r WorldReport) CopyToClipboard() error {
	return clipboard.WriteAll(r.String())
}
