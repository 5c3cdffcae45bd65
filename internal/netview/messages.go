package netview

// MessageType discriminates viewer protocol messages.
type MessageType string

const (
	MessageTypeSnapshot MessageType = "snapshot"
	MessageTypePlayer   MessageType = "player"
	MessageTypeError    MessageType = "error"
)

// BaseMessage is the envelope for all viewer messages.
type BaseMessage struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// SnapshotMessage carries the full generated world to a freshly connected
// viewer: the maze grid, its world placement, landmark anchors and a
// coarse lattice of terrain height samples for shading.
type SnapshotMessage struct {
	Seed       int64       `json:"seed"`
	MazeWidth  int         `json:"maze_width"`
	MazeHeight int         `json:"maze_height"`
	MazeCells  []uint8     `json:"maze_cells"` // row-major, 0 = wall, 1 = open
	Start      [2]int      `json:"start"`      // col, row
	End        [2]int      `json:"end"`
	OriginX    float64     `json:"origin_x"`
	OriginZ    float64     `json:"origin_z"`
	CellSize   float64     `json:"cell_size"`
	Landmarks  []Landmark  `json:"landmarks"`
	Heights    HeightField `json:"heights"`
}

// Landmark is a named anchor in the snapshot.
type Landmark struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
}

// HeightField is a row-major lattice of terrain samples over the world
// extent: sample (i, j) sits at (MinX + i*Step, MinZ + j*Step).
type HeightField struct {
	MinX    float64   `json:"min_x"`
	MinZ    float64   `json:"min_z"`
	Step    float64   `json:"step"`
	Columns int       `json:"columns"`
	Rows    int       `json:"rows"`
	Values  []float64 `json:"values"`
}

// PlayerMessage is a per-tick position update.
type PlayerMessage struct {
	Tick        int     `json:"tick"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Z           float64 `json:"z"`
	Heading     float64 `json:"heading"`
	InsideMaze  bool    `json:"inside_maze"`
	GoalReached bool    `json:"goal_reached"`
}

// ErrorMessage reports a server-side failure to the viewer.
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
