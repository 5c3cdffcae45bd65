package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mwhitby/hollowmere/internal/game"
)

func main() {
	var seed int64
	flag.Int64Var(&seed, "seed", 0, "world seed (0 = random)")
	flag.Parse()

	ebiten.SetWindowTitle("Hollowmere")
	ebiten.SetWindowSize(1312, 832)

	if err := ebiten.RunGame(game.NewWithSeed(seed)); err != nil {
		log.Fatal(err)
	}
}
