package announcement

import (
	"context"
	"errors"

	common_models "go-portal/internal/common/models"
	"go-portal/internal/features/notification"
	"go-portal/internal/features/realtime"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AnnouncementService interface {
	Create(ctx context.Context, announcement *Announcement, creatorRole common_models.Role) error
	GetAll(ctx context.Context, viewerRole common_models.Role) ([]Announcement, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Announcement, error)
	Update(ctx context.Context, id primitive.ObjectID, title, content string) error
	Approve(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type AnnouncementServiceImpl struct {
	repo     AnnouncementRepository
	notifier notification.NotificationService
	bus      realtime.Publisher
}

func NewAnnouncementService(repo AnnouncementRepository, notifier notification.NotificationService, bus realtime.Publisher) AnnouncementService {
	return &AnnouncementServiceImpl{
		repo:     repo,
		notifier: notifier,
		bus:      bus,
	}
}

// Create persists the announcement. Faculty posts start pending and only
// go live through Approve; HOD/DEAN posts are approved immediately and
// published right away.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, announcement *Announcement, creatorRole common_models.Role) error {
	if announcement.Title == "" {
		return errors.New("announcement title is required")
	}

	if creatorRole == common_models.RoleHOD || creatorRole == common_models.RoleDean {
		announcement.Status = common_models.StatusApproved
	} else {
		announcement.Status = common_models.StatusPending
	}

	if err := s.repo.Create(ctx, announcement); err != nil {
		return err
	}

	if announcement.Status == common_models.StatusApproved {
		s.publish(ctx, announcement)
	}
	return nil
}

func (s *AnnouncementServiceImpl) GetAll(ctx context.Context, viewerRole common_models.Role) ([]Announcement, error) {
	// Students only see approved announcements
	approvedOnly := viewerRole == common_models.RoleStudent
	return s.repo.FindAll(ctx, approvedOnly)
}

func (s *AnnouncementServiceImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*Announcement, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AnnouncementServiceImpl) Update(ctx context.Context, id primitive.ObjectID, title, content string) error {
	if title == "" {
		return errors.New("announcement title is required")
	}

	if err := s.repo.Update(ctx, id, title, content); err != nil {
		return err
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if updated.Status == common_models.StatusApproved {
		s.bus.Publish(realtime.EventAnnouncementUpdated, updated, realtime.Broadcast())
	}
	return nil
}

func (s *AnnouncementServiceImpl) Approve(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Status == common_models.StatusApproved {
		return nil
	}

	if err := s.repo.SetStatus(ctx, id, common_models.StatusApproved); err != nil {
		return err
	}

	existing.Status = common_models.StatusApproved
	s.publish(ctx, existing)
	return nil
}

func (s *AnnouncementServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}

func (s *AnnouncementServiceImpl) publish(ctx context.Context, announcement *Announcement) {
	s.bus.Publish(realtime.EventAnnouncementNew, announcement, realtime.Broadcast())

	// Durable fan-out to students; push failures are invisible, the
	// persisted rows are the fallback delivery path.
	_ = s.notifier.NotifyRole(ctx, common_models.RoleStudent,
		"New Announcement",
		announcement.Title,
		notification.CategoryAnnouncement,
		notification.PriorityMedium,
		"/announcements/"+announcement.ID.Hex())
}
