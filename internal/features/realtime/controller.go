package realtime

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// wsConnection adapts a websocket conn to the Connection interface.
// Writes are serialized: the bus may push from any request goroutine.
type wsConnection struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsConnection) ID() string {
	return c.id
}

func (c *wsConnection) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

type WebSocketController struct {
	registry *Registry
	log      *zap.Logger
}

func NewWebSocketController(registry *Registry, log *zap.Logger) *WebSocketController {
	return &WebSocketController{
		registry: registry,
		log:      log,
	}
}

// HandleWebSocket runs the read loop for one connection: register,
// process join frames, deregister on close. The user id in a join frame
// is trusted as-is; authentication happened at the HTTP layer upstream.
func (h *WebSocketController) HandleWebSocket(c *websocket.Conn) {
	conn := &wsConnection{id: uuid.NewString(), conn: c}
	h.registry.Connect(conn)
	defer h.registry.Disconnect(conn)

	h.log.Debug("websocket connected", zap.String("connection", conn.id))

	for {
		_, msg, err := c.ReadMessage()
		if err != nil {
			break
		}

		var env Envelope
		if err := json.Unmarshal(msg, &env); err != nil {
			continue
		}

		if env.Event == EventJoin {
			var userID string
			// Malformed join is a no-op: the connection stays
			// broadcast-reachable only.
			if err := json.Unmarshal(env.Data, &userID); err != nil {
				continue
			}
			h.registry.Join(conn, userID)
		}
	}

	h.log.Debug("websocket disconnected", zap.String("connection", conn.id))
}
