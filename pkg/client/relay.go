package client

import (
	"encoding/json"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	// BroadcastLogKey holds the JSON-serialized append log of broadcasts.
	BroadcastLogKey = "portal:broadcasts"
	// LastSeenKeyPrefix prefixes each session's private last-seen marker.
	LastSeenKeyPrefix = "portal:broadcasts:seen:"

	// BroadcastLogMax bounds the append log; oldest entries drop first.
	BroadcastLogMax = 20
)

// BroadcastRecord is one entry in the shared cross-tab append log.
type BroadcastRecord struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	Category  string `json:"category"`
	Priority  string `json:"priority"`
	Link      string `json:"link,omitempty"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds
}

// Relay moves content broadcasts between sessions of the same user
// through shared storage, without a server round trip. Publish appends
// to the shared log and fires the local listener for the publishing
// session; Wake is how a woken session pulls the newest entry it has
// not yet surfaced.
type Relay struct {
	storage   Storage
	sessionID string
	log       *zap.Logger
	local     func(BroadcastRecord)
}

func NewRelay(storage Storage, sessionID string, log *zap.Logger) *Relay {
	return &Relay{
		storage:   storage,
		sessionID: sessionID,
		log:       log,
	}
}

// OnLocal registers the same-session listener fired synchronously on
// every Publish from this relay.
func (r *Relay) OnLocal(fn func(BroadcastRecord)) {
	r.local = fn
}

// Publish appends rec to the shared log, trims the log to its bound,
// and notifies the local listener. Other sessions learn about rec
// through the storage change signal, not through this call.
func (r *Relay) Publish(rec BroadcastRecord) {
	entries := r.readLog()
	entries = append(entries, rec)
	if len(entries) > BroadcastLogMax {
		entries = entries[len(entries)-BroadcastLogMax:]
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		r.log.Warn("failed to serialize broadcast log", zap.Error(err))
		return
	}
	r.storage.Set(BroadcastLogKey, string(raw))

	if r.local != nil {
		r.local(rec)
	}
}

// Wake reads the tail of the shared log and returns it only when its
// timestamp is strictly newer than this session's last-seen marker,
// advancing the marker afterward. A nil return means nothing new.
func (r *Relay) Wake() *BroadcastRecord {
	entries := r.readLog()
	if len(entries) == 0 {
		return nil
	}

	last := entries[len(entries)-1]
	if last.Timestamp <= r.lastSeen() {
		return nil
	}

	r.storage.Set(r.seenKey(), strconv.FormatInt(last.Timestamp, 10))
	return &last
}

func (r *Relay) seenKey() string {
	return LastSeenKeyPrefix + r.sessionID
}

func (r *Relay) lastSeen() int64 {
	raw, ok := r.storage.Get(r.seenKey())
	if !ok {
		return 0
	}
	ts, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		r.log.Warn("corrupt last-seen marker, resetting", zap.String("value", raw))
		return 0
	}
	return ts
}

func (r *Relay) readLog() []BroadcastRecord {
	raw, ok := r.storage.Get(BroadcastLogKey)
	if !ok || raw == "" {
		return nil
	}
	var entries []BroadcastRecord
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		r.log.Warn("corrupt broadcast log, discarding", zap.Error(err))
		return nil
	}
	return entries
}

// NewBroadcastRecord stamps a record with the current time.
func NewBroadcastRecord(title, message, category, priority, link string) BroadcastRecord {
	return BroadcastRecord{
		Title:     title,
		Message:   message,
		Category:  category,
		Priority:  priority,
		Link:      link,
		Timestamp: time.Now().UnixMilli(),
	}
}
