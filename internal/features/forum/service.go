package forum

import (
	"context"
	"errors"

	"go-portal/internal/features/notification"
	"go-portal/internal/features/realtime"
	"go-portal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ForumService interface {
	CreateThread(ctx context.Context, thread *Thread) error
	GetThreads(ctx context.Context) ([]Thread, error)
	GetThread(ctx context.Context, id primitive.ObjectID) (*Thread, []Reply, error)
	DeleteThread(ctx context.Context, id primitive.ObjectID) error
	Reply(ctx context.Context, reply *Reply) error
}

type ForumServiceImpl struct {
	repo     ForumRepository
	notifier notification.NotificationService
	bus      realtime.Publisher
}

func NewForumService(repo ForumRepository, notifier notification.NotificationService, bus realtime.Publisher) ForumService {
	return &ForumServiceImpl{
		repo:     repo,
		notifier: notifier,
		bus:      bus,
	}
}

func (s *ForumServiceImpl) CreateThread(ctx context.Context, thread *Thread) error {
	if thread.Title == "" {
		return errors.New("thread title is required")
	}

	thread.Slug = utils.Slugify(thread.Title) + "-" + primitive.NewObjectID().Hex()[:4]

	if err := s.repo.CreateThread(ctx, thread); err != nil {
		return err
	}

	s.bus.Publish(realtime.EventForumNew, thread, realtime.Broadcast())
	return nil
}

func (s *ForumServiceImpl) GetThreads(ctx context.Context) ([]Thread, error) {
	return s.repo.FindThreads(ctx)
}

func (s *ForumServiceImpl) GetThread(ctx context.Context, id primitive.ObjectID) (*Thread, []Reply, error) {
	thread, err := s.repo.FindThreadByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	replies, err := s.repo.FindReplies(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return thread, replies, nil
}

func (s *ForumServiceImpl) DeleteThread(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.DeleteThread(ctx, id)
}

// Reply stores the reply and notifies the thread author, unless they
// replied to their own thread.
func (s *ForumServiceImpl) Reply(ctx context.Context, reply *Reply) error {
	if reply.Body == "" {
		return errors.New("reply body is required")
	}

	thread, err := s.repo.FindThreadByID(ctx, reply.ThreadID)
	if err != nil {
		return errors.New("thread not found")
	}

	if err := s.repo.CreateReply(ctx, reply); err != nil {
		return err
	}

	if thread.AuthorID != reply.AuthorID {
		_, _ = s.notifier.CreateForRecipients(ctx,
			[]primitive.ObjectID{thread.AuthorID},
			"New Reply",
			"Someone replied to "+thread.Title,
			notification.CategoryForum,
			notification.PriorityLow,
			"/forum/"+thread.ID.Hex())
	}

	return nil
}
