package game

import (
	"math/rand"
	"strings"
	"time"
)

// MazeCell is one unit of the maze grid.
type MazeCell uint8

const (
	MazeWall MazeCell = iota
	MazeOpen
)

// mazeMinSize is the smallest accepted maze dimension. Requests below it
// are clamped; 5 is the smallest grid with a non-trivial interior.
const mazeMinSize = 5

// GridPos is a cell coordinate in a MazeGrid.
type GridPos struct {
	Col int
	Row int
}

// MazeConfig configures one maze generation.
type MazeConfig struct {
	Width  int
	Height int
	Seed   int64 // 0 = derive from wall clock
}

// MazeGrid is an immutable perfect maze: open cells form a spanning tree,
// so exactly one simple path connects any two of them. Built once per
// session and read-only afterwards.
type MazeGrid struct {
	Width  int
	Height int
	Start  GridPos
	End    GridPos
	cells  []MazeCell // row-major: index = row*Width + col
}

// At returns the cell at (col, row). Out-of-bounds reads are walls.
func (m *MazeGrid) At(col, row int) MazeCell {
	if col < 0 || col >= m.Width || row < 0 || row >= m.Height {
		return MazeWall
	}
	return m.cells[row*m.Width+col]
}

// IsWall reports whether (col, row) is a wall cell, fail-closed.
func (m *MazeGrid) IsWall(col, row int) bool {
	return m.At(col, row) == MazeWall
}

// OpenCount returns the number of open cells in the grid.
func (m *MazeGrid) OpenCount() int {
	n := 0
	for _, c := range m.cells {
		if c == MazeOpen {
			n++
		}
	}
	return n
}

// GenerateMaze carves a maze with a randomized iterative depth-first
// backtracker over the odd-cell lattice. Even dimensions are coerced up to
// the next odd integer; dimensions below the minimum are clamped.
func GenerateMaze(cfg MazeConfig) *MazeGrid {
	w := normalizeMazeDim(cfg.Width)
	h := normalizeMazeDim(cfg.Height)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- reproducible world gen, not crypto

	m := &MazeGrid{
		Width:  w,
		Height: h,
		Start:  GridPos{1, 1},
		End:    GridPos{w - 2, h - 2},
		cells:  make([]MazeCell, w*h),
	}
	carve(m, rng)

	// The end corner is an odd-lattice cell, so the backtracker has always
	// visited it. Forcing it open is a safeguard, and the connectivity
	// check below repairs the grid if that ever stops holding.
	m.set(m.End, MazeOpen)
	m.ensureEndConnected()

	return m
}

func (m *MazeGrid) set(p GridPos, c MazeCell) {
	m.cells[p.Row*m.Width+p.Col] = c
}

// carve runs the backtracker: start at (1,1), step to unvisited neighbours
// two cells away in shuffled order, opening the wall unit in between; pop
// when boxed in. Visiting is tracked by the cell state itself: a wall cell
// on the odd lattice is exactly an unvisited one.
func carve(m *MazeGrid, rng *rand.Rand) {
	m.set(m.Start, MazeOpen)
	stack := []GridPos{m.Start}

	dirs := [4]GridPos{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]

		order := dirs
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		advanced := false
		for _, d := range order {
			nc, nr := curr.Col+d.Col, curr.Row+d.Row
			if nc <= 0 || nc >= m.Width-1 || nr <= 0 || nr >= m.Height-1 {
				continue
			}
			if m.At(nc, nr) == MazeOpen {
				continue
			}
			m.set(GridPos{curr.Col + d.Col/2, curr.Row + d.Row/2}, MazeOpen)
			m.set(GridPos{nc, nr}, MazeOpen)
			stack = append(stack, GridPos{nc, nr})
			advanced = true
			break
		}
		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}
}

// ensureEndConnected verifies the end cell is reachable from start and, if
// it is not, carves a connection through an adjacent interior wall toward
// the nearest open cell. Shipping an unreachable goal is never acceptable.
func (m *MazeGrid) ensureEndConnected() {
	if m.pathExists(m.Start, m.End) {
		return
	}
	dirs := [4]GridPos{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for _, d := range dirs {
		wc, wr := m.End.Col+d.Col, m.End.Row+d.Row
		oc, or := m.End.Col+2*d.Col, m.End.Row+2*d.Row
		if wc <= 0 || wc >= m.Width-1 || wr <= 0 || wr >= m.Height-1 {
			continue
		}
		if m.At(oc, or) == MazeOpen {
			m.set(GridPos{wc, wr}, MazeOpen)
			if m.pathExists(m.Start, m.End) {
				return
			}
		}
	}
}

// pathExists runs a breadth-first search over open cells.
func (m *MazeGrid) pathExists(from, to GridPos) bool {
	return m.bfsPath(from, to) != nil
}

// Solve returns the unique open-cell path from Start to End, inclusive,
// or nil if the grid is somehow disconnected.
func (m *MazeGrid) Solve() []GridPos {
	return m.bfsPath(m.Start, m.End)
}

func (m *MazeGrid) bfsPath(from, to GridPos) []GridPos {
	if m.IsWall(from.Col, from.Row) || m.IsWall(to.Col, to.Row) {
		return nil
	}
	idx := func(p GridPos) int { return p.Row*m.Width + p.Col }

	cameFrom := make([]int, m.Width*m.Height)
	for i := range cameFrom {
		cameFrom[i] = -1
	}
	cameFrom[idx(from)] = idx(from)

	queue := []GridPos{from}
	dirs := [4]GridPos{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		if curr == to {
			var path []GridPos
			for p := curr; ; {
				path = append(path, p)
				prev := cameFrom[idx(p)]
				if prev == idx(p) {
					break
				}
				p = GridPos{prev % m.Width, prev / m.Width}
			}
			// Reverse into start-to-end order.
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}
		for _, d := range dirs {
			n := GridPos{curr.Col + d.Col, curr.Row + d.Row}
			if m.IsWall(n.Col, n.Row) || cameFrom[idx(n)] != -1 {
				continue
			}
			cameFrom[idx(n)] = idx(curr)
			queue = append(queue, n)
		}
	}
	return nil
}

// String renders the grid as ASCII art, one rune per cell: '#' wall,
// '.' open, 'S' start, 'E' end. Used by reports and test failures.
func (m *MazeGrid) String() string {
	var b strings.Builder
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			p := GridPos{col, row}
			switch {
			case p == m.Start:
				b.WriteByte('S')
			case p == m.End:
				b.WriteByte('E')
			case m.At(col, row) == MazeWall:
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// normalizeMazeDim clamps to the minimum size and coerces even values up
// to the next odd integer so the wall/cell parity stays consistent.
func normalizeMazeDim(n int) int {
	if n < mazeMinSize {
		n = mazeMinSize
	}
	if n%2 == 0 {
		n++
	}
	return n
}
