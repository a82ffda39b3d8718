package realtime

import (
	"sync"
	"testing"
)

// fakeConn records frames written to it instead of hitting a socket.
type fakeConn struct {
	id     string
	mu     sync.Mutex
	frames []any
	err    error
}

func newFakeConn(id string) *fakeConn {
	return &fakeConn{id: id}
}

func (c *fakeConn) ID() string { return c.id }

func (c *fakeConn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.frames = append(c.frames, v)
	return nil
}

func (c *fakeConn) received() []any {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]any, len(c.frames))
	copy(out, c.frames)
	return out
}

func TestRegistryRoomIsolation(t *testing.T) {
	r := NewRegistry()

	a := newFakeConn("conn-a")
	b := newFakeConn("conn-b")
	unjoined := newFakeConn("conn-c")

	r.Connect(a)
	r.Connect(b)
	r.Connect(unjoined)
	r.Join(a, "alice")
	r.Join(b, "bob")

	room := r.Room("alice")
	if len(room) != 1 || room[0].ID() != "conn-a" {
		t.Fatalf("Room(alice) = %v, want only conn-a", room)
	}
	if got := r.Room("bob"); len(got) != 1 || got[0].ID() != "conn-b" {
		t.Fatalf("Room(bob) = %v, want only conn-b", got)
	}
	if got := r.All(); len(got) != 3 {
		t.Fatalf("All() returned %d connections, want 3", len(got))
	}
}

func TestRegistryJoinIdempotent(t *testing.T) {
	r := NewRegistry()
	c := newFakeConn("conn-1")

	r.Connect(c)
	r.Join(c, "42")
	r.Join(c, "42")

	if got := r.Room("42"); len(got) != 1 {
		t.Fatalf("Room(42) has %d members after double join, want 1", len(got))
	}
}

func TestRegistryJoinReplacesPersonalRoom(t *testing.T) {
	r := NewRegistry()
	c := newFakeConn("conn-1")

	r.Connect(c)
	r.Join(c, "alice")
	r.Join(c, "bob")

	if got := r.Room("alice"); len(got) != 0 {
		t.Fatalf("Room(alice) still has %d members after rejoining as bob", len(got))
	}
	room := r.Room("bob")
	if len(room) != 1 || room[0].ID() != "conn-1" {
		t.Fatalf("Room(bob) = %v, want only conn-1", room)
	}

	// switching back leaves bob's room too
	r.Join(c, "alice")
	if got := r.Room("bob"); len(got) != 0 {
		t.Fatalf("Room(bob) still has %d members after rejoining as alice", len(got))
	}
	if got := r.Room("alice"); len(got) != 1 {
		t.Fatalf("Room(alice) has %d members, want 1", len(got))
	}
}

func TestRegistryJoinEmptyUserID(t *testing.T) {
	r := NewRegistry()
	c := newFakeConn("conn-1")

	r.Connect(c)
	r.Join(c, "")

	if got := r.Room(""); len(got) != 0 {
		t.Fatalf("empty user id created a room with %d members", len(got))
	}
	if got := r.All(); len(got) != 1 {
		t.Fatalf("connection should stay broadcast-reachable, All() = %d", len(got))
	}
}

func TestRegistryDisconnectCleanup(t *testing.T) {
	r := NewRegistry()
	c := newFakeConn("conn-1")
	other := newFakeConn("conn-2")

	r.Connect(c)
	r.Connect(other)
	r.Join(c, "42")
	r.Join(other, "42")

	r.Disconnect(c)

	room := r.Room("42")
	if len(room) != 1 || room[0].ID() != "conn-2" {
		t.Fatalf("Room(42) = %v after disconnect, want only conn-2", room)
	}
	if got := r.All(); len(got) != 1 {
		t.Fatalf("All() = %d after disconnect, want 1", len(got))
	}

	// second disconnect must be harmless
	r.Disconnect(c)
	if got := r.Room("42"); len(got) != 1 {
		t.Fatalf("repeat disconnect changed room size to %d", len(got))
	}
}
