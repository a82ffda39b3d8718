package notification

import (
	"context"
	"testing"
	"time"

	common_models "go-portal/internal/common/models"
	"go-portal/internal/features/realtime"
	"go-portal/internal/features/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockRepository keeps notifications in a slice and mirrors the
// dedup-relevant query behavior of the Mongo implementation.
type mockRepository struct {
	rows    []Notification
	creates int
}

func (m *mockRepository) Create(ctx context.Context, n *Notification) error {
	n.ID = primitive.NewObjectID()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	m.rows = append(m.rows, *n)
	m.creates++
	return nil
}

func (m *mockRepository) FindRecentDuplicate(ctx context.Context, userID primitive.ObjectID, title, message string, since time.Time) (*Notification, error) {
	for i := len(m.rows) - 1; i >= 0; i-- {
		row := m.rows[i]
		if row.UserID == userID && row.Title == title && row.Message == message && !row.CreatedAt.Before(since) {
			found := row
			return &found, nil
		}
	}
	return nil, nil
}

func (m *mockRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID, limit int64) ([]Notification, int64, error) {
	var out []Notification
	for _, row := range m.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockRepository) GetUnreadCount(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	var n int64
	for _, row := range m.rows {
		if row.UserID == userID && !row.IsRead {
			n++
		}
	}
	return n, nil
}

func (m *mockRepository) MarkAsRead(ctx context.Context, id, userID primitive.ObjectID) error {
	for i := range m.rows {
		if m.rows[i].ID == id && m.rows[i].UserID == userID {
			m.rows[i].IsRead = true
		}
	}
	return nil
}

func (m *mockRepository) MarkAllAsRead(ctx context.Context, userID primitive.ObjectID) error {
	for i := range m.rows {
		if m.rows[i].UserID == userID {
			m.rows[i].IsRead = true
		}
	}
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	for i := range m.rows {
		if m.rows[i].ID == id && m.rows[i].UserID == userID {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockRepository) DeleteAllForUser(ctx context.Context, userID primitive.ObjectID) error {
	var kept []Notification
	for _, row := range m.rows {
		if row.UserID != userID {
			kept = append(kept, row)
		}
	}
	m.rows = kept
	return nil
}

type mockUserRepository struct {
	idsByRole map[common_models.Role][]primitive.ObjectID
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*user.User, error) {
	return nil, nil
}
func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}
func (m *mockUserRepository) FindAll(ctx context.Context) ([]user.User, error) { return nil, nil }
func (m *mockUserRepository) FindIDsByRole(ctx context.Context, role common_models.Role) ([]primitive.ObjectID, error) {
	return m.idsByRole[role], nil
}
func (m *mockUserRepository) UpsertByRegistrationNo(ctx context.Context, u *user.User) error {
	return nil
}

// fakePublisher records publishes instead of pushing frames.
type fakePublisher struct {
	events []string
}

func (f *fakePublisher) Publish(event string, payload any, target realtime.Target) {
	f.events = append(f.events, event)
}

func newTestService(repo *mockRepository, pub *fakePublisher) *NotificationServiceImpl {
	svc := NewNotificationService(repo, &mockUserRepository{}, pub)
	return svc.(*NotificationServiceImpl)
}

func TestCreateSuppressesDuplicateWithinWindow(t *testing.T) {
	repo := &mockRepository{}
	pub := &fakePublisher{}
	svc := newTestService(repo, pub)

	base := time.Now()
	svc.now = func() time.Time { return base }

	recipient := primitive.NewObjectID()
	first, err := svc.CreateForRecipients(context.Background(), []primitive.ObjectID{recipient}, "New Assignment", "DB Design due Friday", CategoryAssignment, PriorityHigh, "")
	if err != nil {
		t.Fatalf("first create: %v", err)
	}

	svc.now = func() time.Time { return base.Add(2 * time.Second) }
	second, err := svc.CreateForRecipients(context.Background(), []primitive.ObjectID{recipient}, "New Assignment", "DB Design due Friday", CategoryAssignment, PriorityHigh, "")
	if err != nil {
		t.Fatalf("second create: %v", err)
	}

	if repo.creates != 1 {
		t.Fatalf("persisted %d rows, want 1", repo.creates)
	}
	if first[0].ID != second[0].ID {
		t.Fatalf("second call returned a different row: %s vs %s", first[0].ID.Hex(), second[0].ID.Hex())
	}
	if len(pub.events) != 1 {
		t.Fatalf("published %d events, want 1 (no push for a suppressed write)", len(pub.events))
	}
}

func TestCreateAfterWindowPersistsNewRow(t *testing.T) {
	repo := &mockRepository{}
	pub := &fakePublisher{}
	svc := newTestService(repo, pub)

	base := time.Now()
	svc.now = func() time.Time { return base }

	recipient := primitive.NewObjectID()
	first, err := svc.CreateForRecipients(context.Background(), []primitive.ObjectID{recipient}, "New Event", "Tech talk at 5pm", CategoryEvent, PriorityMedium, "")
	if err != nil {
		t.Fatalf("first create: %v", err)
	}

	svc.now = func() time.Time { return base.Add(DedupWindow + time.Second) }
	later, err := svc.CreateForRecipients(context.Background(), []primitive.ObjectID{recipient}, "New Event", "Tech talk at 5pm", CategoryEvent, PriorityMedium, "")
	if err != nil {
		t.Fatalf("later create: %v", err)
	}

	if repo.creates != 2 {
		t.Fatalf("persisted %d rows, want 2", repo.creates)
	}
	if first[0].ID == later[0].ID {
		t.Fatal("post-window create reused the old row")
	}
	if len(pub.events) != 2 {
		t.Fatalf("published %d events, want 2", len(pub.events))
	}
}

func TestDedupIsPerRecipient(t *testing.T) {
	repo := &mockRepository{}
	pub := &fakePublisher{}
	svc := newTestService(repo, pub)

	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	out, err := svc.CreateForRecipients(context.Background(), []primitive.ObjectID{a, b}, "New Resource", "Lecture slides", CategoryResource, PriorityLow, "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(out) != 2 || repo.creates != 2 {
		t.Fatalf("got %d results and %d rows, want 2 and 2", len(out), repo.creates)
	}
	if out[0].UserID == out[1].UserID {
		t.Fatal("both rows went to the same recipient")
	}
}

func TestNotifyRoleFansOut(t *testing.T) {
	repo := &mockRepository{}
	pub := &fakePublisher{}
	students := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()}
	svc := NewNotificationService(repo, &mockUserRepository{
		idsByRole: map[common_models.Role][]primitive.ObjectID{
			common_models.RoleStudent: students,
		},
	}, pub)

	if err := svc.NotifyRole(context.Background(), common_models.RoleStudent, "New Announcement", "Midterm schedule", CategoryAnnouncement, PriorityMedium, ""); err != nil {
		t.Fatalf("NotifyRole: %v", err)
	}

	if repo.creates != len(students) {
		t.Fatalf("persisted %d rows, want %d", repo.creates, len(students))
	}
	if len(pub.events) != len(students) {
		t.Fatalf("published %d events, want %d", len(pub.events), len(students))
	}
}
