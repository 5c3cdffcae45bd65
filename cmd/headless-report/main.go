package main

import (
	"flag"
	"fmt"

	"github.com/mwhitby/hollowmere/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	mazeW       int
	mazeH       int
	solutionLen int

	enteredTick int
	goalTick    int
	slides      int
	reached     bool
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var mazeSize int
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless exploration runs")
	flag.IntVar(&ticks, "ticks", 6000, "tick budget per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "world seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&mazeSize, "maze-size", 21, "requested maze dimensions")
	flag.BoolVar(&verbose, "v", false, "dump per-run event logs")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	fmt.Printf("=== Headless Exploration Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d maze_size=%d\n\n",
		runs, ticks, seedBase, seedStep, mazeSize)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runSession(i+1, seed, mazeSize, ticks, verbose)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func runSession(runIndex int, seed int64, mazeSize, ticks int, verbose bool) runStats {
	ts := game.NewTestSim(
		game.WithSeed(seed),
		game.WithMazeSize(mazeSize),
		game.WithVerbose(verbose),
	)
	ts.Run(ticks)

	if verbose {
		fmt.Print(ts.SimLog.Dump())
	}

	return runStats{
		runIndex:    runIndex,
		seed:        seed,
		mazeW:       ts.World.Maze.Width,
		mazeH:       ts.World.Maze.Height,
		solutionLen: len(ts.World.Maze.Solve()),
		enteredTick: ts.SimLog.FirstTick("maze", "entered"),
		goalTick:    ts.SimLog.FirstTick("maze", "goal_reached"),
		slides:      ts.Explorer.SlideCount(),
		reached:     ts.Explorer.GoalReached,
	}
}

func printRun(s runStats) {
	status := "TIMEOUT"
	if s.reached {
		status = "GOAL"
	}
	fmt.Printf("run %d  seed=%-6d maze=%dx%-3d path=%-4d entered=T%-5d goal=T%-5d slides=%-4d %s\n",
		s.runIndex, s.seed, s.mazeW, s.mazeH, s.solutionLen, s.enteredTick, s.goalTick, s.slides, status)
}

func printAggregate(all []runStats) {
	reached := 0
	totalGoal := 0
	goalRuns := 0
	totalSlides := 0
	for _, s := range all {
		if s.reached {
			reached++
		}
		if s.goalTick >= 0 {
			totalGoal += s.goalTick
			goalRuns++
		}
		totalSlides += s.slides
	}

	fmt.Printf("\n=== Aggregate ===\n")
	fmt.Printf("goal reached: %d/%d runs\n", reached, len(all))
	if goalRuns > 0 {
		fmt.Printf("mean goal tick: %.1f\n", float64(totalGoal)/float64(goalRuns))
	}
	fmt.Printf("total wall slides: %d\n", totalSlides)
}
