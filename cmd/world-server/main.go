package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/mwhitby/hollowmere/internal/game"
	"github.com/mwhitby/hollowmere/internal/netview"
)

func main() {
	var addr string
	var seed int64
	var mazeSize int
	var tickRate int

	flag.StringVar(&addr, "addr", ":8765", "listen address")
	flag.Int64Var(&seed, "seed", 0, "world seed (0 = random)")
	flag.IntVar(&mazeSize, "maze-size", 21, "requested maze dimensions")
	flag.IntVar(&tickRate, "tick-rate", 30, "autopilot ticks per second")
	flag.Parse()

	if tickRate <= 0 {
		tickRate = 30
	}

	ts := game.NewTestSim(
		game.WithSeed(seed),
		game.WithMazeSize(mazeSize),
	)
	srv := netview.NewServer(ts.World)

	http.HandleFunc("/ws", srv.HandleWS)

	go func() {
		interval := time.Second / time.Duration(tickRate)
		for range time.Tick(interval) {
			ts.Step()
			e := ts.Explorer
			srv.Broadcast(netview.PlayerMessage{
				Tick:        ts.Tick,
				X:           e.X,
				Y:           e.Y,
				Z:           e.Z,
				Heading:     e.Heading,
				InsideMaze:  e.InsideMaze,
				GoalReached: e.GoalReached,
			})
		}
	}()

	log.Printf("world-server listening on %s (seed=%d)", addr, ts.World.Seed)
	log.Fatal(http.ListenAndServe(addr, nil))
}
