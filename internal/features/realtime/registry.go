package realtime

import "sync"

// Connection is a live transport session capable of receiving pushed
// frames. The websocket controller provides the real implementation;
// tests substitute fakes.
type Connection interface {
	ID() string
	WriteJSON(v any) error
}

// Registry maps transport connections to logical delivery targets: the
// broadcast-wide audience plus at most one personal room per user.
// State is purely in-memory; a restart drops everything and clients are
// expected to re-run the connect+join handshake.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]Connection            // connection id -> connection
	rooms map[string]map[string]Connection // room key -> connection id -> connection
	joins map[string][]string              // connection id -> room keys
}

func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[string]Connection),
		rooms: make(map[string]map[string]Connection),
		joins: make(map[string][]string),
	}
}

func roomKey(userID string) string {
	return "user:" + userID
}

// Connect registers the connection with no room memberships.
func (r *Registry) Connect(c Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[c.ID()] = c
}

// Join adds the connection to room user:{userID}. A connection belongs
// to at most one personal room: joining as a different user leaves the
// previous room first. Joining the same room twice has no additional
// effect. An empty userID is a no-op; the connection stays
// broadcast-reachable only.
func (r *Registry) Join(c Connection, userID string) {
	if userID == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := c.ID()
	key := roomKey(userID)

	for _, prev := range r.joins[id] {
		if prev == key {
			return
		}
		if room, ok := r.rooms[prev]; ok {
			delete(room, id)
			if len(room) == 0 {
				delete(r.rooms, prev)
			}
		}
	}

	room, ok := r.rooms[key]
	if !ok {
		room = make(map[string]Connection)
		r.rooms[key] = room
	}
	room[c.ID()] = c
	r.joins[id] = []string{key}
}

// Disconnect removes the connection and all its room memberships.
// Calling it twice for the same connection is harmless.
func (r *Registry) Disconnect(c Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := c.ID()
	for _, key := range r.joins[id] {
		if room, ok := r.rooms[key]; ok {
			delete(room, id)
			if len(room) == 0 {
				delete(r.rooms, key)
			}
		}
	}
	delete(r.joins, id)
	delete(r.conns, id)
}

// Room returns the connections currently in user:{userID}. An empty
// result is normal: the recipient may simply be offline, with the
// persisted notification as the fallback delivery path.
func (r *Registry) Room(userID string) []Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room := r.rooms[roomKey(userID)]
	out := make([]Connection, 0, len(room))
	for _, c := range room {
		out = append(out, c)
	}
	return out
}

// All returns every registered connection.
func (r *Registry) All() []Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Connection, 0, len(r.conns))
	for _, c := range r.conns {
		out = append(out, c)
	}
	return out
}
