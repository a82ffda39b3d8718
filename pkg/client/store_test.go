package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

// fakeAPI serves a canned list and records mutations; any method can be
// forced to fail.
type fakeAPI struct {
	list    []Notification
	listErr error

	failMutations bool
	markedRead    []string
	markedAllRead int
	deleted       []string
	cleared       int
}

func (f *fakeAPI) List(ctx context.Context) ([]Notification, error) {
	return f.list, f.listErr
}

func (f *fakeAPI) mutationErr() error {
	if f.failMutations {
		return errors.New("durable store unavailable")
	}
	return nil
}

func (f *fakeAPI) MarkRead(ctx context.Context, id string) error {
	f.markedRead = append(f.markedRead, id)
	return f.mutationErr()
}

func (f *fakeAPI) MarkAllRead(ctx context.Context) error {
	f.markedAllRead++
	return f.mutationErr()
}

func (f *fakeAPI) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.mutationErr()
}

func (f *fakeAPI) ClearAll(ctx context.Context) error {
	f.cleared++
	return f.mutationErr()
}

func newTestStore(api *fakeAPI, role string) *Store {
	return NewStore(api, role, zap.NewNop())
}

func TestStoreLoadTransitions(t *testing.T) {
	api := &fakeAPI{list: []Notification{
		{ID: "n1", Title: "New Event", Message: "Tech talk", CreatedAt: time.Now()},
	}}
	s := newTestStore(api, roleStudent)

	if s.State() != StateUninitialized {
		t.Fatalf("fresh store state = %d, want Uninitialized", s.State())
	}

	s.Load(context.Background())

	if s.State() != StateReady {
		t.Fatalf("state after load = %d, want Ready", s.State())
	}
	if len(s.List()) != 1 {
		t.Fatalf("list length = %d, want 1", len(s.List()))
	}
}

func TestStoreLoadFailureLeavesListEmpty(t *testing.T) {
	api := &fakeAPI{listErr: errors.New("network down")}
	s := newTestStore(api, roleStudent)

	s.Load(context.Background())

	if s.State() != StateReady {
		t.Fatalf("state after failed load = %d, want Ready", s.State())
	}
	if len(s.List()) != 0 {
		t.Fatalf("failed load left %d entries, want 0", len(s.List()))
	}
}

func TestStoreIngestDedupByContent(t *testing.T) {
	s := newTestStore(&fakeAPI{}, roleStudent)
	t0 := time.Now()

	s.Ingest(Notification{ID: "n1", Title: "X", Message: "Y", CreatedAt: t0})

	if s.Ingest(Notification{ID: "n2", Title: "X", Message: "Y", CreatedAt: t0.Add(2 * time.Second)}) {
		t.Fatal("push within tolerance was not discarded")
	}
	if len(s.List()) != 1 || s.Unread() != 1 {
		t.Fatalf("list/unread = %d/%d after duplicate, want 1/1", len(s.List()), s.Unread())
	}

	if !s.Ingest(Notification{ID: "n3", Title: "X", Message: "Y", CreatedAt: t0.Add(60 * time.Second)}) {
		t.Fatal("push outside tolerance was discarded")
	}
	if len(s.List()) != 2 || s.Unread() != 2 {
		t.Fatalf("list/unread = %d/%d after distinct push, want 2/2", len(s.List()), s.Unread())
	}
}

func TestStoreIngestDedupByID(t *testing.T) {
	s := newTestStore(&fakeAPI{}, roleStudent)

	s.Ingest(Notification{ID: "n1", Title: "A", Message: "B", CreatedAt: time.Now()})
	if s.Ingest(Notification{ID: "n1", Title: "different", Message: "payload", CreatedAt: time.Now().Add(time.Hour)}) {
		t.Fatal("same-id push was not discarded")
	}
}

func TestStoreMarkAllReadIdempotent(t *testing.T) {
	api := &fakeAPI{}
	s := newTestStore(api, roleStudent)

	now := time.Now()
	for i := 0; i < 5; i++ {
		s.Ingest(Notification{ID: fmt.Sprintf("n%d", i), Title: fmt.Sprintf("t%d", i), Message: "m", CreatedAt: now})
	}
	s.MarkRead(context.Background(), "n0")
	s.MarkRead(context.Background(), "n1")

	s.MarkAllRead(context.Background())
	if s.Unread() != 0 {
		t.Fatalf("unread = %d after mark-all-read, want 0", s.Unread())
	}
	for _, n := range s.List() {
		if !n.IsRead {
			t.Fatalf("entry %s still unread", n.ID)
		}
	}

	s.MarkAllRead(context.Background())
	if s.Unread() != 0 {
		t.Fatalf("unread = %d after repeat mark-all-read, want 0", s.Unread())
	}
}

func TestStoreMutationFailureIsNotRolledBack(t *testing.T) {
	api := &fakeAPI{failMutations: true}
	s := newTestStore(api, roleStudent)

	s.Ingest(Notification{ID: "n1", Title: "A", Message: "B", CreatedAt: time.Now()})
	s.MarkRead(context.Background(), "n1")

	if s.Unread() != 0 {
		t.Fatal("optimistic mark-read was rolled back on durable failure")
	}

	s.Delete(context.Background(), "n1")
	if len(s.List()) != 0 {
		t.Fatal("optimistic delete was rolled back on durable failure")
	}
}

func TestStoreCapEvictsOldestFirst(t *testing.T) {
	s := newTestStore(&fakeAPI{}, roleStudent)

	base := time.Now()
	for i := 0; i < MaxEntries+10; i++ {
		s.Ingest(Notification{
			ID:        fmt.Sprintf("n%d", i),
			Title:     fmt.Sprintf("title %d", i),
			Message:   "m",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if got := len(s.List()); got > MaxEntries {
			t.Fatalf("list grew to %d, cap is %d", got, MaxEntries)
		}
	}

	items := s.List()
	if len(items) != MaxEntries {
		t.Fatalf("list length = %d, want %d", len(items), MaxEntries)
	}
	// newest first: the most recent insert leads, the oldest survivors trail
	if items[0].ID != fmt.Sprintf("n%d", MaxEntries+9) {
		t.Fatalf("newest entry is %s, want n%d", items[0].ID, MaxEntries+9)
	}
	for _, n := range items {
		if n.ID == "n0" || n.ID == "n9" {
			t.Fatalf("evicted entry %s still present", n.ID)
		}
	}
}

func TestStoreContentEventForStudent(t *testing.T) {
	s := newTestStore(&fakeAPI{}, roleStudent)

	ok := s.IngestContent(ContentEvent{
		Event:  "assignment:new",
		Title:  "DB Design",
		Link:   "/assignments/abc",
		Status: "",
	})
	if !ok {
		t.Fatal("approved assignment event was not surfaced to a student")
	}

	items := s.List()
	if len(items) != 1 {
		t.Fatalf("list length = %d, want 1", len(items))
	}
	n := items[0]
	if n.Title != "New Assignment" {
		t.Fatalf("title = %q, want %q", n.Title, "New Assignment")
	}
	if !strings.Contains(n.Message, "DB Design") {
		t.Fatalf("message %q does not mention the assignment", n.Message)
	}
	if n.Category != "assignment" || n.IsRead {
		t.Fatalf("unexpected synthetic entry: %+v", n)
	}
	if n.ID == "" {
		t.Fatal("synthetic entry has no client-generated id")
	}
	if s.Unread() != 1 {
		t.Fatalf("unread = %d, want 1", s.Unread())
	}
}

func TestStoreContentEventRoleGating(t *testing.T) {
	faculty := newTestStore(&fakeAPI{}, "faculty")

	if faculty.IngestContent(ContentEvent{Event: "assignment:new", Title: "DB Design"}) {
		t.Fatal("faculty session synthesized a notification for its own content kind")
	}
	if len(faculty.List()) != 0 {
		t.Fatal("faculty list should stay empty")
	}
}

func TestStoreContentEventStatusGating(t *testing.T) {
	s := newTestStore(&fakeAPI{}, roleStudent)

	if s.IngestContent(ContentEvent{Event: "announcement:new", Title: "Draft", Status: "pending"}) {
		t.Fatal("pending announcement was surfaced")
	}
	if !s.IngestContent(ContentEvent{Event: "announcement:new", Title: "Final", Status: "approved"}) {
		t.Fatal("approved announcement was not surfaced")
	}
}

func TestStoreSocketAndRelayCollapse(t *testing.T) {
	s := newTestStore(&fakeAPI{}, roleStudent)
	base := time.Now()
	s.now = func() time.Time { return base }

	// socket push path
	if !s.IngestContent(ContentEvent{Event: "assignment:new", Title: "DB Design"}) {
		t.Fatal("socket path rejected the event")
	}

	// relay path for the same logical event, a moment later
	rec := BroadcastRecord{
		Title:     "New Assignment",
		Message:   "New Assignment: DB Design",
		Category:  "assignment",
		Timestamp: base.Add(time.Second).UnixMilli(),
	}
	if s.IngestBroadcast(rec) {
		t.Fatal("overlapping relay delivery was not collapsed")
	}
	if len(s.List()) != 1 || s.Unread() != 1 {
		t.Fatalf("list/unread = %d/%d, want 1/1", len(s.List()), s.Unread())
	}
}
