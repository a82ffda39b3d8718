package resource

import (
	"context"
	"errors"

	common_models "go-portal/internal/common/models"
	"go-portal/internal/features/notification"
	"go-portal/internal/features/realtime"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ResourceService interface {
	Create(ctx context.Context, resource *Resource) error
	GetAll(ctx context.Context) ([]Resource, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Resource, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ResourceServiceImpl struct {
	repo     ResourceRepository
	notifier notification.NotificationService
	bus      realtime.Publisher
}

func NewResourceService(repo ResourceRepository, notifier notification.NotificationService, bus realtime.Publisher) ResourceService {
	return &ResourceServiceImpl{
		repo:     repo,
		notifier: notifier,
		bus:      bus,
	}
}

func (s *ResourceServiceImpl) Create(ctx context.Context, resource *Resource) error {
	if resource.Title == "" {
		return errors.New("resource title is required")
	}
	if resource.FileURL == "" {
		return errors.New("resource file URL is required")
	}

	if err := s.repo.Create(ctx, resource); err != nil {
		return err
	}

	s.bus.Publish(realtime.EventResourceNew, resource, realtime.Broadcast())
	_ = s.notifier.NotifyRole(ctx, common_models.RoleStudent,
		"New Resource",
		resource.Title,
		notification.CategoryResource,
		notification.PriorityLow,
		"/resources/"+resource.ID.Hex())

	return nil
}

func (s *ResourceServiceImpl) GetAll(ctx context.Context) ([]Resource, error) {
	return s.repo.FindAll(ctx)
}

func (s *ResourceServiceImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*Resource, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ResourceServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
