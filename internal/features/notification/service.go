package notification

import (
	"context"
	"errors"
	"time"

	common_models "go-portal/internal/common/models"
	"go-portal/internal/features/realtime"
	"go-portal/internal/features/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DedupWindow is the trailing interval within which identical
// (recipient, title, message) creations collapse to one persisted row.
const DedupWindow = 5 * time.Second

// ListLimit is the server-side cap on the durable fetch.
const ListLimit = 50

type NotificationService interface {
	// CreateForRecipients persists one notification per recipient,
	// reusing an existing row when an identical one was persisted within
	// the dedup window. The result always holds one entry per recipient.
	CreateForRecipients(ctx context.Context, recipients []primitive.ObjectID, title, message string, category Category, priority Priority, link string) ([]Notification, error)
	// NotifyRole fans a notification out to every user holding the role.
	NotifyRole(ctx context.Context, role common_models.Role, title, message string, category Category, priority Priority, link string) error
	GetUserNotifications(ctx context.Context, userID primitive.ObjectID) ([]Notification, int64, error)
	GetUnreadCount(ctx context.Context, userID primitive.ObjectID) (int64, error)
	MarkAsRead(ctx context.Context, id string, userID primitive.ObjectID) error
	MarkAllAsRead(ctx context.Context, userID primitive.ObjectID) error
	Delete(ctx context.Context, id string, userID primitive.ObjectID) error
	ClearAll(ctx context.Context, userID primitive.ObjectID) error
}

type NotificationServiceImpl struct {
	repo     NotificationRepository
	userRepo user.UserRepository
	bus      realtime.Publisher
	now      func() time.Time
}

func NewNotificationService(repo NotificationRepository, userRepo user.UserRepository, bus realtime.Publisher) NotificationService {
	return &NotificationServiceImpl{
		repo:     repo,
		userRepo: userRepo,
		bus:      bus,
		now:      time.Now,
	}
}

func (s *NotificationServiceImpl) CreateForRecipients(ctx context.Context, recipients []primitive.ObjectID, title, message string, category Category, priority Priority, link string) ([]Notification, error) {
	if title == "" {
		return nil, errors.New("notification title is required")
	}
	if priority == "" {
		priority = PriorityMedium
	}
	if category == "" {
		category = CategoryGeneral
	}

	out := make([]Notification, 0, len(recipients))
	for _, recipient := range recipients {
		since := s.now().Add(-DedupWindow)
		existing, err := s.repo.FindRecentDuplicate(ctx, recipient, title, message, since)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			// Suppressed write: reuse the row, no second push.
			out = append(out, *existing)
			continue
		}

		n := Notification{
			UserID:   recipient,
			Title:    title,
			Message:  message,
			Category: category,
			Priority: priority,
			Link:     link,
		}
		if err := s.repo.Create(ctx, &n); err != nil {
			return nil, err
		}
		out = append(out, n)

		s.bus.Publish(realtime.EventNotificationNew, n, realtime.User(recipient.Hex()))
	}

	return out, nil
}

func (s *NotificationServiceImpl) NotifyRole(ctx context.Context, role common_models.Role, title, message string, category Category, priority Priority, link string) error {
	recipients, err := s.userRepo.FindIDsByRole(ctx, role)
	if err != nil {
		return err
	}
	_, err = s.CreateForRecipients(ctx, recipients, title, message, category, priority, link)
	return err
}

func (s *NotificationServiceImpl) GetUserNotifications(ctx context.Context, userID primitive.ObjectID) ([]Notification, int64, error) {
	return s.repo.GetByUserID(ctx, userID, ListLimit)
}

func (s *NotificationServiceImpl) GetUnreadCount(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.repo.GetUnreadCount(ctx, userID)
}

func (s *NotificationServiceImpl) MarkAsRead(ctx context.Context, id string, userID primitive.ObjectID) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	return s.repo.MarkAsRead(ctx, objID, userID)
}

func (s *NotificationServiceImpl) MarkAllAsRead(ctx context.Context, userID primitive.ObjectID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *NotificationServiceImpl) Delete(ctx context.Context, id string, userID primitive.ObjectID) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, objID, userID)
}

func (s *NotificationServiceImpl) ClearAll(ctx context.Context, userID primitive.ObjectID) error {
	return s.repo.DeleteAllForUser(ctx, userID)
}
