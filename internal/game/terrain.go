package game

import "math"

// Landmark anchor positions on the horizontal plane. The terrain override
// chain below and the world assembly in world.go both key off these, so a
// landmark moves by editing exactly one pair of constants.
const (
	keepX, keepZ             = -140.0, -180.0 // hilltop keep courtyard
	villageX, villageZ       = 120.0, 60.0    // valley village hollow
	stationX, stationZ       = 230.0, -40.0   // railway station plain
	pitchX, pitchZ           = -40.0, 200.0   // sports pitch
	forestX, forestZ         = -260.0, 120.0  // old forest floor
	moundX, moundZ           = 60.0, -120.0   // bare hill mound
	islandX, islandZ         = 10.0, -260.0   // island rock in the lake
	mazeCenterX, mazeCenterZ = -40.0, 40.0    // hedge maze plateau centre
)

// Lake footprint (axis-aligned) and the causeway path flattened across
// the eastern shore.
const (
	lakeMinX, lakeMaxX = -60.0, 80.0
	lakeMinZ, lakeMaxZ = -320.0, -200.0
	lakeBedCap         = -2.5 // water sits at 0; bed is forced below it
	lakeWaterLevel     = 0.0

	causewayMinX, causewayMaxX = 80.0, 96.0
	causewayMinZ, causewayMaxZ = -280.0, -236.0
	causewayDeck               = 2.2
)

// Maze plateau geometry. The flat radius is derived from the maze world
// footprint so the plateau always fully contains the wall grid.
const (
	mazePlateauHeight = 6.0
	mazePlateauMargin = 6.0  // flat apron beyond the wall grid
	mazeBlendBand     = 18.0 // linear falloff back to open terrain
)

// heightRule is one step of the terrain override chain. Rules run in the
// declared order and each one sees the height produced by its predecessors,
// so min/max clamps with overlapping footprints resolve by position in the
// chain, not by magnitude.
type heightRule struct {
	name  string
	when  func(x, z float64) bool
	apply func(h, x, z float64) float64
}

// TerrainField is the elevation oracle for the whole map: a layered
// sinusoidal base surface with named landmark overrides applied on top.
// Height is pure and call-order independent, so placement code may sample
// it per vertex and per decoration instance without caching concerns.
type TerrainField struct {
	rules []heightRule
}

// NewTerrainField builds the field with the standard override chain.
func NewTerrainField(mazeFootprint float64) *TerrainField {
	f := &TerrainField{}
	flatRadius := math.Hypot(mazeFootprint, mazeFootprint)/2 + mazePlateauMargin

	f.rules = []heightRule{
		// Blend-to-flat landmarks. Each soft-levels a disc of ground for a
		// built-up area, interpolating to the surrounding terrain over an
		// outer ring.
		blendFlat("keep-court", keepX, keepZ, 14.0, 36, 90),
		blendFlat("village-hollow", villageX, villageZ, 1.5, 50, 110),
		blendFlat("station-plain", stationX, stationZ, 2.0, 40, 80),
		blendFlat("sports-pitch", pitchX, pitchZ, 3.0, 34, 60),

		// Lake bed: hard floor. Everything inside the rectangle is clamped
		// below water level; the shoreline is the visible hard edge.
		{
			name: "lake-bed",
			when: func(x, z float64) bool {
				return x >= lakeMinX && x <= lakeMaxX && z >= lakeMinZ && z <= lakeMaxZ
			},
			apply: func(h, _, _ float64) float64 { return math.Min(h, lakeBedCap) },
		},

		// Causeway: shaves terrain bumps down to a level walking deck.
		{
			name: "causeway",
			when: func(x, z float64) bool {
				return x >= causewayMinX && x <= causewayMaxX && z >= causewayMinZ && z <= causewayMaxZ
			},
			apply: func(h, _, _ float64) float64 { return math.Min(h, causewayDeck) },
		},

		// Island rock: hard ceiling rising out of the lake. Runs after the
		// lake rule on purpose so the floor value wins over the bed clamp.
		{
			name: "island-rock",
			when: func(x, z float64) bool { return dist(x, z, islandX, islandZ) < 24 },
			apply: func(h, x, z float64) float64 {
				d := dist(x, z, islandX, islandZ)
				floor := 3.5 - 0.22*d + 0.3*math.Sin(x*0.9)*math.Cos(z*0.8)
				return math.Max(h, floor)
			},
		},

		// Forest floor minimum: keeps tree roots out of terrain dips.
		{
			name: "forest-floor",
			when: func(x, z float64) bool { return dist(x, z, forestX, forestZ) < 80 },
			apply: func(h, x, z float64) float64 {
				floor := 0.6 + 0.2*math.Sin(x*0.17)*math.Cos(z*0.19)
				return math.Max(h, floor)
			},
		},

		// Hill mound: conical minimum with linear falloff from the summit.
		{
			name: "hill-mound",
			when: func(x, z float64) bool { return dist(x, z, moundX, moundZ) < 30 },
			apply: func(h, x, z float64) float64 {
				d := dist(x, z, moundX, moundZ)
				return math.Max(h, 7.0-0.3*d)
			},
		},

		// Maze plateau, last in the chain: an exact flat disc under the wall
		// grid with a linear blend band back out to whatever the earlier
		// rules produced.
		{
			name: "maze-plateau",
			when: func(x, z float64) bool {
				return dist(x, z, mazeCenterX, mazeCenterZ) < flatRadius+mazeBlendBand
			},
			apply: func(h, x, z float64) float64 {
				d := dist(x, z, mazeCenterX, mazeCenterZ)
				if d <= flatRadius {
					return mazePlateauHeight
				}
				t := (d - flatRadius) / mazeBlendBand
				return mazePlateauHeight*(1-t) + h*t
			},
		},
	}
	return f
}

// Height returns the ground elevation at (x, z). Total for finite input;
// NaN propagates (callers own that precondition).
func (f *TerrainField) Height(x, z float64) float64 {
	h := baseSurface(x, z)
	for _, r := range f.rules {
		if r.when(x, z) {
			h = r.apply(h, x, z)
		}
	}
	return h
}

// RuleNames returns the override chain in evaluation order.
func (f *TerrainField) RuleNames() []string {
	names := make([]string, len(f.rules))
	for i, r := range f.rules {
		names[i] = r.name
	}
	return names
}

// baseSurface is the unmodified rolling terrain: rolling hills plus
// offset-phase mountains plus fine detail, each at its own frequency.
func baseSurface(x, z float64) float64 {
	hills := 2.2 * math.Sin(x*0.045) * math.Cos(z*0.045)
	mountains := 5.5 * math.Sin(x*0.011+1.7) * math.Cos(z*0.013+0.6)
	detail := 0.35 * math.Sin(x*0.31) * math.Cos(z*0.27)
	return hills + mountains + detail
}

// blendFlat builds a blend-to-flat rule: full target inside the inner
// radius, linear interpolation between the accumulated height and the
// target across the outer ring.
func blendFlat(name string, cx, cz, target, inner, outer float64) heightRule {
	return heightRule{
		name: name,
		when: func(x, z float64) bool { return dist(x, z, cx, cz) < outer },
		apply: func(h, x, z float64) float64 {
			d := dist(x, z, cx, cz)
			if d <= inner {
				return target
			}
			t := (d - inner) / (outer - inner)
			return target*(1-t) + h*t
		},
	}
}

func dist(x, z, cx, cz float64) float64 {
	return math.Hypot(x-cx, z-cz)
}
