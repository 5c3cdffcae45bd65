package game

import "math"

// MazePlacement binds a MazeGrid into world space: the grid's (0,0) cell
// centre sits at (OriginX, OriginZ) and cells are CellSize world units
// apart. All queries are cell-centred: a cell's footprint extends half a
// cell in every direction from its nominal coordinate.
type MazePlacement struct {
	Grid     *MazeGrid
	OriginX  float64
	OriginZ  float64
	CellSize float64
}

// PlaceMaze centres a grid on the given world point.
func PlaceMaze(grid *MazeGrid, centerX, centerZ, cellSize float64) MazePlacement {
	return MazePlacement{
		Grid:     grid,
		OriginX:  centerX - float64(grid.Width-1)/2*cellSize,
		OriginZ:  centerZ - float64(grid.Height-1)/2*cellSize,
		CellSize: cellSize,
	}
}

// CellAt converts a world position to grid coordinates. The half-cell
// offset before flooring keeps the conversion cell-centred.
func (p *MazePlacement) CellAt(worldX, worldZ float64) (col, row int) {
	col = int(math.Floor((worldX - p.OriginX + p.CellSize/2) / p.CellSize))
	row = int(math.Floor((worldZ - p.OriginZ + p.CellSize/2) / p.CellSize))
	return col, row
}

// CellCenter returns the world position of a cell's centre.
func (p *MazePlacement) CellCenter(col, row int) (x, z float64) {
	return p.OriginX + float64(col)*p.CellSize, p.OriginZ + float64(row)*p.CellSize
}

// IsWall reports whether the world position lies in a wall cell.
// Coordinates outside the grid footprint answer true: the maze boundary is
// closed and cannot be escaped by extrapolating coordinates.
func (p *MazePlacement) IsWall(worldX, worldZ float64) bool {
	col, row := p.CellAt(worldX, worldZ)
	return p.Grid.IsWall(col, row)
}

// IsGoal reports whether the world position resolves to the end cell.
func (p *MazePlacement) IsGoal(worldX, worldZ float64) bool {
	col, row := p.CellAt(worldX, worldZ)
	return GridPos{col, row} == p.Grid.End
}

// Contains reports whether the world position is inside the grid footprint.
func (p *MazePlacement) Contains(worldX, worldZ float64) bool {
	col, row := p.CellAt(worldX, worldZ)
	return col >= 0 && col < p.Grid.Width && row >= 0 && row < p.Grid.Height
}

// ResolveMove applies a displacement with axis-separated sliding: if the
// full move is blocked, the Z-only and then X-only components are tried so
// the walker slides along walls instead of stopping dead. Returns the
// accepted position (unchanged when every candidate is blocked).
func (p *MazePlacement) ResolveMove(x, z, dx, dz float64) (nx, nz float64) {
	if !p.IsWall(x+dx, z+dz) {
		return x + dx, z + dz
	}
	if !p.IsWall(x, z+dz) {
		return x, z + dz
	}
	if !p.IsWall(x+dx, z) {
		return x + dx, z
	}
	return x, z
}
