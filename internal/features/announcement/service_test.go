package announcement

import (
	"context"
	"errors"
	"testing"

	common_models "go-portal/internal/common/models"
	"go-portal/internal/features/notification"
	"go-portal/internal/features/realtime"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockAnnouncementRepository struct {
	rows map[primitive.ObjectID]*Announcement
}

func newMockAnnouncementRepository() *mockAnnouncementRepository {
	return &mockAnnouncementRepository{rows: make(map[primitive.ObjectID]*Announcement)}
}

func (m *mockAnnouncementRepository) Create(ctx context.Context, a *Announcement) error {
	a.ID = primitive.NewObjectID()
	m.rows[a.ID] = a
	return nil
}

func (m *mockAnnouncementRepository) FindAll(ctx context.Context, approvedOnly bool) ([]Announcement, error) {
	var out []Announcement
	for _, a := range m.rows {
		if approvedOnly && a.Status != common_models.StatusApproved {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (m *mockAnnouncementRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Announcement, error) {
	a, ok := m.rows[id]
	if !ok {
		return nil, errors.New("not found")
	}
	copied := *a
	return &copied, nil
}

func (m *mockAnnouncementRepository) Update(ctx context.Context, id primitive.ObjectID, title, content string) error {
	a, ok := m.rows[id]
	if !ok {
		return errors.New("not found")
	}
	a.Title = title
	a.Content = content
	return nil
}

func (m *mockAnnouncementRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status common_models.ContentStatus) error {
	a, ok := m.rows[id]
	if !ok {
		return errors.New("not found")
	}
	a.Status = status
	return nil
}

func (m *mockAnnouncementRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(m.rows, id)
	return nil
}

type recordingNotifier struct {
	notified []common_models.Role
}

func (r *recordingNotifier) CreateForRecipients(ctx context.Context, recipients []primitive.ObjectID, title, message string, category notification.Category, priority notification.Priority, link string) ([]notification.Notification, error) {
	return nil, nil
}
func (r *recordingNotifier) NotifyRole(ctx context.Context, role common_models.Role, title, message string, category notification.Category, priority notification.Priority, link string) error {
	r.notified = append(r.notified, role)
	return nil
}
func (r *recordingNotifier) GetUserNotifications(ctx context.Context, userID primitive.ObjectID) ([]notification.Notification, int64, error) {
	return nil, 0, nil
}
func (r *recordingNotifier) GetUnreadCount(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return 0, nil
}
func (r *recordingNotifier) MarkAsRead(ctx context.Context, id string, userID primitive.ObjectID) error {
	return nil
}
func (r *recordingNotifier) MarkAllAsRead(ctx context.Context, userID primitive.ObjectID) error {
	return nil
}
func (r *recordingNotifier) Delete(ctx context.Context, id string, userID primitive.ObjectID) error {
	return nil
}
func (r *recordingNotifier) ClearAll(ctx context.Context, userID primitive.ObjectID) error {
	return nil
}

type recordingPublisher struct {
	events []string
}

func (r *recordingPublisher) Publish(event string, payload any, target realtime.Target) {
	r.events = append(r.events, event)
}

func TestCreateByFacultyStaysPending(t *testing.T) {
	repo := newMockAnnouncementRepository()
	notifier := &recordingNotifier{}
	pub := &recordingPublisher{}
	svc := NewAnnouncementService(repo, notifier, pub)

	a := &Announcement{Title: "Lab closed", Content: "Maintenance on Friday"}
	if err := svc.Create(context.Background(), a, common_models.RoleFaculty); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if a.Status != common_models.StatusPending {
		t.Fatalf("status = %s, want pending", a.Status)
	}
	if len(pub.events) != 0 || len(notifier.notified) != 0 {
		t.Fatal("pending announcement must not publish or notify")
	}
}

func TestCreateByHODPublishesImmediately(t *testing.T) {
	repo := newMockAnnouncementRepository()
	notifier := &recordingNotifier{}
	pub := &recordingPublisher{}
	svc := NewAnnouncementService(repo, notifier, pub)

	a := &Announcement{Title: "Semester dates", Content: "Term starts Monday"}
	if err := svc.Create(context.Background(), a, common_models.RoleHOD); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if a.Status != common_models.StatusApproved {
		t.Fatalf("status = %s, want approved", a.Status)
	}
	if len(pub.events) != 1 || pub.events[0] != realtime.EventAnnouncementNew {
		t.Fatalf("published %v, want one %s", pub.events, realtime.EventAnnouncementNew)
	}
	if len(notifier.notified) != 1 || notifier.notified[0] != common_models.RoleStudent {
		t.Fatalf("notified %v, want students once", notifier.notified)
	}
}

func TestApprovePublishesOnce(t *testing.T) {
	repo := newMockAnnouncementRepository()
	notifier := &recordingNotifier{}
	pub := &recordingPublisher{}
	svc := NewAnnouncementService(repo, notifier, pub)

	a := &Announcement{Title: "Lab closed", Content: "Maintenance on Friday"}
	if err := svc.Create(context.Background(), a, common_models.RoleFaculty); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Approve(context.Background(), a.ID); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if len(pub.events) != 1 {
		t.Fatalf("published %d events after approve, want 1", len(pub.events))
	}

	// approving an approved announcement is a no-op
	if err := svc.Approve(context.Background(), a.ID); err != nil {
		t.Fatalf("repeat Approve: %v", err)
	}
	if len(pub.events) != 1 || len(notifier.notified) != 1 {
		t.Fatal("repeat approve re-published")
	}
}

func TestGetAllFiltersForStudents(t *testing.T) {
	repo := newMockAnnouncementRepository()
	svc := NewAnnouncementService(repo, &recordingNotifier{}, &recordingPublisher{})

	pending := &Announcement{Title: "Draft", Content: "x"}
	if err := svc.Create(context.Background(), pending, common_models.RoleFaculty); err != nil {
		t.Fatalf("Create pending: %v", err)
	}
	approved := &Announcement{Title: "Live", Content: "y"}
	if err := svc.Create(context.Background(), approved, common_models.RoleDean); err != nil {
		t.Fatalf("Create approved: %v", err)
	}

	studentView, err := svc.GetAll(context.Background(), common_models.RoleStudent)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(studentView) != 1 || studentView[0].Title != "Live" {
		t.Fatalf("student view = %v, want only the approved announcement", studentView)
	}

	facultyView, err := svc.GetAll(context.Background(), common_models.RoleFaculty)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(facultyView) != 2 {
		t.Fatalf("faculty view has %d announcements, want 2", len(facultyView))
	}
}
