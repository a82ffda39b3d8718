package client

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StoreState tracks the notification store's lifecycle.
type StoreState int

const (
	StateUninitialized StoreState = iota
	StateLoading
	StateReady
)

const (
	// MaxEntries bounds the in-memory list; the oldest entry is evicted
	// on overflow. A memory cap, not a product rule.
	MaxEntries = 100

	// DedupTolerance is how far apart two timestamps may be for a pushed
	// notification to still count as a duplicate of a listed one with
	// the same title and message.
	DedupTolerance = 5 * time.Second

	statusApproved = "approved"
	roleStudent    = "student"
)

// ContentEvent is a content-created push as seen by the client, before
// any translation into a notification.
type ContentEvent struct {
	Event  string
	Title  string
	Status string
	Link   string
}

type contentKind struct {
	label    string
	category string
	priority string
	statused bool
}

var contentKinds = map[string]contentKind{
	"announcement:new": {"New Announcement", "announcement", "medium", true},
	"assignment:new":   {"New Assignment", "assignment", "high", false},
	"event:new":        {"New Event", "event", "medium", false},
	"project:new":      {"New Project", "project", "medium", true},
	"resource:new":     {"New Resource", "resource", "low", false},
	"form:new":         {"New Form", "form", "medium", false},
	"forum:new":        {"New Forum Thread", "forum", "low", false},
}

// Store holds the session's notification list and unread count. All
// methods are expected to run on a single goroutine, mirroring a UI
// event loop; the store does no locking of its own.
type Store struct {
	api   API
	role  string
	log   *zap.Logger
	state StoreState
	items []Notification // newest first
	now   func() time.Time
}

func NewStore(api API, role string, log *zap.Logger) *Store {
	return &Store{
		api:  api,
		role: role,
		log:  log,
		now:  time.Now,
	}
}

func (s *Store) State() StoreState { return s.state }

// List returns a copy of the current list, newest first.
func (s *Store) List() []Notification {
	out := make([]Notification, len(s.items))
	copy(out, s.items)
	return out
}

// Unread counts entries not yet marked read.
func (s *Store) Unread() int {
	n := 0
	for _, item := range s.items {
		if !item.IsRead {
			n++
		}
	}
	return n
}

// Load performs the one initial durable fetch. The store ends up Ready
// whether the fetch succeeds or not; a failed fetch leaves the list
// empty rather than retrying.
func (s *Store) Load(ctx context.Context) {
	if s.state != StateUninitialized {
		return
	}
	s.state = StateLoading

	items, err := s.api.List(ctx)
	if err != nil {
		s.log.Warn("initial notification fetch failed", zap.Error(err))
		items = nil
	}
	if len(items) > MaxEntries {
		items = items[:MaxEntries]
	}
	s.items = items
	s.state = StateReady
}

// Ingest admits a pushed notification unless the dedup filter matches
// an existing entry: same id, or same title and message with timestamps
// within DedupTolerance. Returns whether the entry was appended.
func (s *Store) Ingest(n Notification) bool {
	for _, item := range s.items {
		if item.ID == n.ID {
			return false
		}
		if item.Title == n.Title && item.Message == n.Message {
			delta := n.CreatedAt.Sub(item.CreatedAt)
			if delta < 0 {
				delta = -delta
			}
			if delta <= DedupTolerance {
				return false
			}
		}
	}

	s.items = append([]Notification{n}, s.items...)
	if len(s.items) > MaxEntries {
		s.items = s.items[:MaxEntries]
	}
	return true
}

// IngestContent translates a content-created event into a synthetic
// notification when this session's user is the intended audience:
// students only, and for statused content only the approved status.
// The synthetic entry gets a client-generated id and flows through the
// same dedup filter as server pushes.
func (s *Store) IngestContent(ev ContentEvent) bool {
	kind, ok := contentKinds[ev.Event]
	if !ok {
		return false
	}
	if s.role != roleStudent {
		return false
	}
	if kind.statused && ev.Status != statusApproved {
		return false
	}

	return s.Ingest(Notification{
		ID:        uuid.NewString(),
		Title:     kind.label,
		Message:   kind.label + ": " + ev.Title,
		Category:  kind.category,
		Priority:  kind.priority,
		Link:      ev.Link,
		CreatedAt: s.now(),
	})
}

// IngestBroadcast feeds a cross-tab relay record through the same
// filter as socket pushes, so overlapping deliveries collapse to one
// visible entry.
func (s *Store) IngestBroadcast(rec BroadcastRecord) bool {
	return s.Ingest(Notification{
		ID:        uuid.NewString(),
		Title:     rec.Title,
		Message:   rec.Message,
		Category:  rec.Category,
		Priority:  rec.Priority,
		Link:      rec.Link,
		CreatedAt: time.UnixMilli(rec.Timestamp),
	})
}

// MarkRead flips one entry to read locally, then issues the durable
// mutation. A failed mutation is logged and not rolled back.
func (s *Store) MarkRead(ctx context.Context, id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].IsRead = true
			break
		}
	}
	if err := s.api.MarkRead(ctx, id); err != nil {
		s.log.Warn("mark-read failed", zap.String("id", id), zap.Error(err))
	}
}

// MarkAllRead flips every entry to read locally, then issues the
// durable mutation. Calling it with nothing unread is a no-op locally
// but still hits the durable store.
func (s *Store) MarkAllRead(ctx context.Context) {
	for i := range s.items {
		s.items[i].IsRead = true
	}
	if err := s.api.MarkAllRead(ctx); err != nil {
		s.log.Warn("mark-all-read failed", zap.Error(err))
	}
}

// Delete removes one entry locally, then issues the durable mutation.
func (s *Store) Delete(ctx context.Context, id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	if err := s.api.Delete(ctx, id); err != nil {
		s.log.Warn("delete failed", zap.String("id", id), zap.Error(err))
	}
}

// ClearAll empties the list locally, then issues the durable mutation.
func (s *Store) ClearAll(ctx context.Context) {
	s.items = nil
	if err := s.api.ClearAll(ctx); err != nil {
		s.log.Warn("clear-all failed", zap.Error(err))
	}
}
