package netview

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/mwhitby/hollowmere/internal/game"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Viewer is a local observer tool; any origin may connect.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Connection wraps one viewer's websocket with a buffered send channel so
// the broadcast path never blocks on a slow client. The closed flag keeps
// late sends from touching the channel after the connection is dropped.
type Connection struct {
	ws *websocket.Conn

	mu     sync.Mutex
	closed bool
	send   chan []byte
}

func newConnection(ws *websocket.Conn) *Connection {
	return &Connection{
		ws:   ws,
		send: make(chan []byte, 256),
	}
}

// writePump drains the send channel onto the socket.
func (c *Connection) writePump() {
	defer c.ws.Close()
	for message := range c.send {
		if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.ws.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump rejects inbound frames (the viewer protocol is one-way) and
// tears the connection down when the client goes away.
func (c *Connection) readPump(onClose func(*Connection)) {
	defer func() {
		onClose(c)
		c.ws.Close()
	}()
	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("viewer read error: %v", err)
			}
			return
		}
		c.sendMessage(BaseMessage{
			Type: MessageTypeError,
			Payload: ErrorMessage{
				Code:    "read_only",
				Message: "viewer protocol is broadcast only",
			},
		})
	}
}

// sendMessage marshals and queues a message, dropping the connection if
// its buffer is full. Queuing on a dropped connection is a no-op: a
// disconnect can race the snapshot send during connection setup.
func (c *Connection) sendMessage(msg BaseMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("marshal %s: %v", msg.Type, err)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- data:
	default:
		c.ws.Close()
	}
}

// closeSend shuts the send channel exactly once.
func (c *Connection) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// Server broadcasts one world session to any number of viewers. New
// connections receive the snapshot immediately; Broadcast fans player
// updates out to everyone.
type Server struct {
	snapshot BaseMessage

	mu    sync.Mutex
	conns map[*Connection]struct{}
}

// NewServer builds a viewer server for the given world.
func NewServer(w *game.World) *Server {
	return &Server{
		snapshot: BaseMessage{Type: MessageTypeSnapshot, Payload: BuildSnapshot(w)},
		conns:    make(map[*Connection]struct{}),
	}
}

// HandleWS upgrades an HTTP request into a viewer connection.
func (s *Server) HandleWS(rw http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(rw, req, nil)
	if err != nil {
		log.Printf("upgrade: %v", err)
		return
	}
	c := newConnection(ws)

	s.mu.Lock()
	s.conns[c] = struct{}{}
	s.mu.Unlock()

	// Queue the snapshot before the read pump can observe a disconnect
	// and tear the connection down.
	go c.writePump()
	c.sendMessage(s.snapshot)
	go c.readPump(s.drop)
}

// Broadcast sends a player update to every connected viewer.
func (s *Server) Broadcast(p PlayerMessage) {
	msg := BaseMessage{Type: MessageTypePlayer, Payload: p}
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.conns {
		c.sendMessage(msg)
	}
}

// ViewerCount returns the number of connected viewers.
func (s *Server) ViewerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

func (s *Server) drop(c *Connection) {
	s.mu.Lock()
	if _, ok := s.conns[c]; ok {
		delete(s.conns, c)
		c.closeSend()
	}
	s.mu.Unlock()
}

// BuildSnapshot flattens a world into the wire snapshot. The height
// lattice samples every 8 world units, enough for a shaded minimap.
func BuildSnapshot(w *game.World) SnapshotMessage {
	m := w.Maze
	cells := make([]uint8, m.Width*m.Height)
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			if !m.IsWall(col, row) {
				cells[row*m.Width+col] = 1
			}
		}
	}

	lms := make([]Landmark, 0, len(w.Landmarks))
	for _, lm := range w.Landmarks {
		lms = append(lms, Landmark{Name: lm.Name, X: lm.X, Y: lm.Y, Z: lm.Z})
	}

	return SnapshotMessage{
		Seed:       w.Seed,
		MazeWidth:  m.Width,
		MazeHeight: m.Height,
		MazeCells:  cells,
		Start:      [2]int{m.Start.Col, m.Start.Row},
		End:        [2]int{m.End.Col, m.End.Row},
		OriginX:    w.Placement.OriginX,
		OriginZ:    w.Placement.OriginZ,
		CellSize:   w.Placement.CellSize,
		Landmarks:  lms,
		Heights:    sampleHeights(w, 8.0),
	}
}

// sampleHeights builds the coarse terrain lattice for the snapshot.
func sampleHeights(w *game.World, step float64) HeightField {
	min, max := w.Extent()
	cols := int((max-min)/step) + 1
	hf := HeightField{
		MinX:    min,
		MinZ:    min,
		Step:    step,
		Columns: cols,
		Rows:    cols,
		Values:  make([]float64, 0, cols*cols),
	}
	for j := 0; j < cols; j++ {
		z := min + float64(j)*step
		for i := 0; i < cols; i++ {
			x := min + float64(i)*step
			hf.Values = append(hf.Values, w.Height(x, z))
		}
	}
	return hf
}
