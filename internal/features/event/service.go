package event

import (
	"context"
	"errors"

	common_models "go-portal/internal/common/models"
	"go-portal/internal/features/notification"
	"go-portal/internal/features/realtime"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventService interface {
	Create(ctx context.Context, event *Event) error
	GetAll(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Event, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type EventServiceImpl struct {
	repo     EventRepository
	notifier notification.NotificationService
	bus      realtime.Publisher
}

func NewEventService(repo EventRepository, notifier notification.NotificationService, bus realtime.Publisher) EventService {
	return &EventServiceImpl{
		repo:     repo,
		notifier: notifier,
		bus:      bus,
	}
}

func (s *EventServiceImpl) Create(ctx context.Context, event *Event) error {
	if event.Title == "" {
		return errors.New("event title is required")
	}
	if event.StartsAt.IsZero() {
		return errors.New("event start time is required")
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return err
	}

	s.bus.Publish(realtime.EventEventNew, event, realtime.Broadcast())
	_ = s.notifier.NotifyRole(ctx, common_models.RoleStudent,
		"New Event",
		event.Title,
		notification.CategoryEvent,
		notification.PriorityMedium,
		"/events/"+event.ID.Hex())

	return nil
}

func (s *EventServiceImpl) GetAll(ctx context.Context) ([]Event, error) {
	return s.repo.FindAll(ctx)
}

func (s *EventServiceImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EventServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
