package realtime

import (
	"sync"

	"go.uber.org/zap"
)

// Target selects the delivery audience for a publish.
type Target struct {
	userID    string
	broadcast bool
}

// Broadcast targets every registered connection.
func Broadcast() Target {
	return Target{broadcast: true}
}

// User targets the connections in the user's personal room.
func User(userID string) Target {
	return Target{userID: userID}
}

// Handler receives events published on the bus in-process, without a
// transport. Handlers run synchronously on the publisher's goroutine.
type Handler func(event string, payload any)

// Publisher is the narrow interface services depend on, so delivery can
// be faked in tests.
type Publisher interface {
	Publish(event string, payload any, target Target)
}

// Bus fans a domain event out to the resolved connections. Delivery is
// fire-and-forget: no acknowledgment, no retry, and a connection that
// dropped between resolution and the write fails silently for that
// connection only.
type Bus struct {
	registry *Registry
	log      *zap.Logger

	mu          sync.RWMutex
	subscribers map[string][]Handler
}

func NewBus(registry *Registry, log *zap.Logger) *Bus {
	return &Bus{
		registry:    registry,
		log:         log,
		subscribers: make(map[string][]Handler),
	}
}

// Subscribe registers an in-process handler for an event name.
func (b *Bus) Subscribe(event string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[event] = append(b.subscribers[event], h)
}

// Publish pushes payload tagged with event to the target's connections
// and to any in-process subscribers.
func (b *Bus) Publish(event string, payload any, target Target) {
	b.mu.RLock()
	handlers := b.subscribers[event]
	b.mu.RUnlock()
	for _, h := range handlers {
		h(event, payload)
	}

	var conns []Connection
	if target.broadcast {
		conns = b.registry.All()
	} else {
		conns = b.registry.Room(target.userID)
	}

	frame := outbound{Event: event, Data: payload}
	for _, c := range conns {
		if err := c.WriteJSON(frame); err != nil {
			b.log.Debug("realtime push failed",
				zap.String("event", event),
				zap.String("connection", c.ID()),
				zap.Error(err))
		}
	}
}
