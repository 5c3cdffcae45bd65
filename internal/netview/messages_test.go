package netview

import (
	"encoding/json"
	"testing"

	"github.com/mwhitby/hollowmere/internal/game"
)

func TestBuildSnapshot_Shape(t *testing.T) {
	w := game.NewWorld(7, 21)
	snap := BuildSnapshot(w)

	if snap.Seed != 7 {
		t.Fatalf("seed %d, want 7", snap.Seed)
	}
	if snap.MazeWidth != w.Maze.Width || snap.MazeHeight != w.Maze.Height {
		t.Fatalf("maze dims %dx%d, want %dx%d",
			snap.MazeWidth, snap.MazeHeight, w.Maze.Width, w.Maze.Height)
	}
	if len(snap.MazeCells) != snap.MazeWidth*snap.MazeHeight {
		t.Fatalf("cell count %d, want %d", len(snap.MazeCells), snap.MazeWidth*snap.MazeHeight)
	}
	if snap.Start != [2]int{w.Maze.Start.Col, w.Maze.Start.Row} {
		t.Fatalf("start %v, want %v", snap.Start, w.Maze.Start)
	}
	if snap.CellSize <= 0 {
		t.Fatal("placement cell size missing")
	}
	if len(snap.Heights.Values) != snap.Heights.Columns*snap.Heights.Rows {
		t.Fatalf("height lattice %d values for %dx%d",
			len(snap.Heights.Values), snap.Heights.Columns, snap.Heights.Rows)
	}
	if len(snap.Landmarks) == 0 {
		t.Fatal("snapshot missing landmarks")
	}

	// Start and end must be open in the wire encoding.
	if snap.MazeCells[snap.Start[1]*snap.MazeWidth+snap.Start[0]] != 1 {
		t.Fatal("start cell encoded as wall")
	}
	if snap.MazeCells[snap.End[1]*snap.MazeWidth+snap.End[0]] != 1 {
		t.Fatal("end cell encoded as wall")
	}
}

func TestSnapshot_EnvelopeEncodes(t *testing.T) {
	w := game.NewWorld(3, 11)
	msg := BaseMessage{Type: MessageTypeSnapshot, Payload: BuildSnapshot(w)}
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var env struct {
		Type MessageType `json:"type"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if env.Type != MessageTypeSnapshot {
		t.Fatalf("envelope type %q, want %q", env.Type, MessageTypeSnapshot)
	}
}
