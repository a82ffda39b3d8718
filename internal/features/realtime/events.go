package realtime

import "encoding/json"

// Server -> client event catalogue. Each carries the created/updated
// domain object as payload; notification:new carries the persisted
// Notification for the targeted user's room.
const (
	EventAnnouncementNew     = "announcement:new"
	EventAnnouncementUpdated = "announcement:updated"
	EventAssignmentNew       = "assignment:new"
	EventSubmissionNew       = "submission:new"
	EventEventNew            = "event:new"
	EventProjectNew          = "project:new"
	EventResourceNew         = "resource:new"
	EventFormNew             = "form:new"
	EventForumNew            = "forum:new"
	EventNotificationNew     = "notification:new"
)

// Client -> server handshake establishing the personal room.
const EventJoin = "join"

// Envelope is the wire frame in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// outbound is the frame written to connections; Data is marshalled
// together with the envelope.
type outbound struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}
