package netview

import (
	"testing"

	"github.com/mwhitby/hollowmere/internal/game"
)

func TestServer_SendAfterDropIsNoOp(t *testing.T) {
	s := NewServer(game.NewWorld(5, 11))
	c := newConnection(nil)

	s.mu.Lock()
	s.conns[c] = struct{}{}
	s.mu.Unlock()

	s.drop(c)
	if n := s.ViewerCount(); n != 0 {
		t.Fatalf("viewer count %d after drop, want 0", n)
	}

	// A client that disconnects immediately tears the connection down
	// while the snapshot is still being queued. The late send must not
	// touch the closed channel.
	c.sendMessage(s.snapshot)

	// drop is idempotent.
	s.drop(c)
}

func TestServer_BroadcastSkipsDropped(t *testing.T) {
	s := NewServer(game.NewWorld(5, 11))
	c := newConnection(nil)

	s.mu.Lock()
	s.conns[c] = struct{}{}
	s.mu.Unlock()
	s.drop(c)

	s.Broadcast(PlayerMessage{Tick: 1})
	if n := s.ViewerCount(); n != 0 {
		t.Fatalf("viewer count %d, want 0", n)
	}
}
