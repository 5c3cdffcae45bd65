package game

import (
	"math"
	"math/rand"
)

// DecorKind identifies a decorative instance scattered over the terrain.
type DecorKind uint8

const (
	DecorGrass DecorKind = iota
	DecorRock
	DecorBush
	DecorTree
	decorKindCount // sentinel
)

// DecorInstance is one placed decoration. Y is sampled from the terrain
// field at placement time so instances always sit on the ground.
type DecorInstance struct {
	Kind  DecorKind
	X     float64
	Y     float64
	Z     float64
	Scale float64
}

// decorConfig holds tuneable scatter parameters.
type decorConfig struct {
	// Noise layer scales (smaller = broader features).
	VegetationScale float64
	RockScale       float64

	// Density thresholds on the [0,1] noise value.
	TreeThreshold  float64 // tree stands above this
	BushThreshold  float64 // bush clusters above this
	GrassThreshold float64 // grass tufts above this
	RockThreshold  float64

	// Sample stride in world units between placement candidates.
	Stride float64
}

var defaultDecorConfig = decorConfig{
	VegetationScale: 0.05,
	RockScale:       0.09,

	TreeThreshold:  0.74,
	BushThreshold:  0.64,
	GrassThreshold: 0.42,
	RockThreshold:  0.70,

	Stride: 8.0,
}

// scatterDecor walks a candidate lattice over the world and places
// decorations by noise density. Two independent noise fields drive
// vegetation and rock, with a high-frequency detail field breaking up
// uniform blobs. Placement skips water, the maze plateau, and built-up
// landmark ground.
func scatterDecor(w *World, rng *rand.Rand, cfg decorConfig) []DecorInstance {
	vegSeed := rng.Int63()
	rockSeed := rng.Int63()

	var out []DecorInstance
	for z := -worldHalf; z <= worldHalf; z += cfg.Stride {
		for x := -worldHalf; x <= worldHalf; x += cfg.Stride {
			// Jitter the candidate off the lattice so rows don't read as rows.
			px := x + (rng.Float64()-0.5)*cfg.Stride
			pz := z + (rng.Float64()-0.5)*cfg.Stride

			if !w.decorAllowed(px, pz) {
				continue
			}

			veg := valueNoise2D(px*cfg.VegetationScale, pz*cfg.VegetationScale, vegSeed)
			rock := valueNoise2D(px*cfg.RockScale, pz*cfg.RockScale, rockSeed)
			detail := valueNoise2D(px*0.23, pz*0.23, vegSeed+1)

			y := w.Height(px, pz)
			scale := 0.7 + 0.6*detail

			switch {
			case rock > cfg.RockThreshold && detail > 0.6:
				out = append(out, DecorInstance{DecorRock, px, y, pz, scale})
			case veg > cfg.TreeThreshold && detail > 0.5:
				out = append(out, DecorInstance{DecorTree, px, y, pz, scale})
			case veg > cfg.BushThreshold && detail > 0.4 && detail < 0.7:
				out = append(out, DecorInstance{DecorBush, px, y, pz, scale})
			case veg > cfg.GrassThreshold:
				out = append(out, DecorInstance{DecorGrass, px, y, pz, scale})
			}
		}
	}
	return out
}

// decorAllowed reports whether decoration may be placed at (x, z): dry
// land, off the maze plateau, clear of landmark courts and the causeway.
func (w *World) decorAllowed(x, z float64) bool {
	if w.Height(x, z) <= lakeWaterLevel+0.2 {
		return false
	}
	if dist(x, z, mazeCenterX, mazeCenterZ) < w.plateauRadius+mazeBlendBand {
		return false
	}
	for _, lm := range w.Landmarks {
		if dist(x, z, lm.X, lm.Z) < lm.ClearRadius {
			return false
		}
	}
	if x >= causewayMinX && x <= causewayMaxX && z >= causewayMinZ && z <= causewayMaxZ {
		return false
	}
	return true
}

// --- Value noise (hash lattice, no external deps) ---

// valueNoise2D returns a smooth noise value in [0,1] for the given
// coordinates. Lattice-based value noise with hermite interpolation.
func valueNoise2D(x, y float64, seed int64) float64 {
	xi := int(math.Floor(x))
	yi := int(math.Floor(y))
	xf := x - float64(xi)
	yf := y - float64(yi)

	// Hermite smoothstep.
	u := xf * xf * (3 - 2*xf)
	v := yf * yf * (3 - 2*yf)

	n00 := latticeValue(xi, yi, seed)
	n10 := latticeValue(xi+1, yi, seed)
	n01 := latticeValue(xi, yi+1, seed)
	n11 := latticeValue(xi+1, yi+1, seed)

	nx0 := n00*(1-u) + n10*u
	nx1 := n01*(1-u) + n11*u
	return nx0*(1-v) + nx1*v
}

// latticeValue returns a pseudo-random value in [0,1] for integer coordinates.
func latticeValue(x, y int, seed int64) float64 {
	h := uint64(seed)
	h ^= uint64(x) * 0x517cc1b727220a95
	h ^= uint64(y) * 0x6c62272e07bb0142
	h = h*0x2545f4914f6cdd1d + 0x14057b7ef767814f
	h ^= h >> 16
	h *= 0xd6e8feb86659fd93
	h ^= h >> 16
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}
