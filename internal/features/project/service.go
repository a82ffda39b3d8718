package project

import (
	"context"
	"errors"

	common_models "go-portal/internal/common/models"
	"go-portal/internal/features/notification"
	"go-portal/internal/features/realtime"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProjectService interface {
	Create(ctx context.Context, project *Project, creatorRole common_models.Role) error
	GetAll(ctx context.Context, viewerRole common_models.Role) ([]Project, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Project, error)
	Approve(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ProjectServiceImpl struct {
	repo     ProjectRepository
	notifier notification.NotificationService
	bus      realtime.Publisher
}

func NewProjectService(repo ProjectRepository, notifier notification.NotificationService, bus realtime.Publisher) ProjectService {
	return &ProjectServiceImpl{
		repo:     repo,
		notifier: notifier,
		bus:      bus,
	}
}

func (s *ProjectServiceImpl) Create(ctx context.Context, project *Project, creatorRole common_models.Role) error {
	if project.Title == "" {
		return errors.New("project title is required")
	}

	if creatorRole == common_models.RoleHOD || creatorRole == common_models.RoleDean {
		project.Status = common_models.StatusApproved
	} else {
		project.Status = common_models.StatusPending
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return err
	}

	if project.Status == common_models.StatusApproved {
		s.publish(ctx, project)
	}
	return nil
}

func (s *ProjectServiceImpl) GetAll(ctx context.Context, viewerRole common_models.Role) ([]Project, error) {
	approvedOnly := viewerRole == common_models.RoleStudent
	return s.repo.FindAll(ctx, approvedOnly)
}

func (s *ProjectServiceImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectServiceImpl) Approve(ctx context.Context, id primitive.ObjectID) error {
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

func (s *ProjectServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}

func (s *ProjectServiceImpl) publish(ctx context.Context, project *Project) {
	s.bus.Publish(realtime.EventProjectNew, project, realtime.Broadcast())
	_ = s.notifier.NotifyRole(ctx, common_models.RoleStudent,
		"New Project",
		project.Title,
		notification.CategoryProject,
		notification.PriorityMedium,
		"/projects/"+project.ID.Hex())
}
