package assignment

import (
	"context"
	"errors"

	common_models "go-portal/internal/common/models"
	"go-portal/internal/features/notification"
	"go-portal/internal/features/realtime"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AssignmentService interface {
	Create(ctx context.Context, assignment *Assignment) error
	GetAll(ctx context.Context) ([]Assignment, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Assignment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	Submit(ctx context.Context, submission *Submission) error
	GetSubmissions(ctx context.Context, assignmentID primitive.ObjectID) ([]Submission, error)
	GetStudentSubmissions(ctx context.Context, studentID primitive.ObjectID) ([]Submission, error)
	Grade(ctx context.Context, id primitive.ObjectID, grade, feedback string) error
}

type AssignmentServiceImpl struct {
	repo     AssignmentRepository
	subRepo  SubmissionRepository
	notifier notification.NotificationService
	bus      realtime.Publisher
}

func NewAssignmentService(repo AssignmentRepository, subRepo SubmissionRepository, notifier notification.NotificationService, bus realtime.Publisher) AssignmentService {
	return &AssignmentServiceImpl{
		repo:     repo,
		subRepo:  subRepo,
		notifier: notifier,
		bus:      bus,
	}
}

func (s *AssignmentServiceImpl) Create(ctx context.Context, assignment *Assignment) error {
	if assignment.Title == "" {
		return errors.New("assignment title is required")
	}
	if assignment.DueDate.IsZero() {
		return errors.New("assignment due date is required")
	}

	if err := s.repo.Create(ctx, assignment); err != nil {
		return err
	}

	s.bus.Publish(realtime.EventAssignmentNew, assignment, realtime.Broadcast())
	_ = s.notifier.NotifyRole(ctx, common_models.RoleStudent,
		"New Assignment",
		assignment.Title,
		notification.CategoryAssignment,
		notification.PriorityHigh,
		"/assignments/"+assignment.ID.Hex())

	return nil
}

func (s *AssignmentServiceImpl) GetAll(ctx context.Context) ([]Assignment, error) {
	return s.repo.FindAll(ctx)
}

func (s *AssignmentServiceImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*Assignment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AssignmentServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}

// Submit stores the submission and pushes submission:new to the
// assignment creator's room only.
func (s *AssignmentServiceImpl) Submit(ctx context.Context, submission *Submission) error {
	assignment, err := s.repo.FindByID(ctx, submission.AssignmentID)
	if err != nil {
		return errors.New("assignment not found")
	}

	if err := s.subRepo.Create(ctx, submission); err != nil {
		return err
	}

	s.bus.Publish(realtime.EventSubmissionNew, submission, realtime.User(assignment.PostedBy.Hex()))
	_, _ = s.notifier.CreateForRecipients(ctx,
		[]primitive.ObjectID{assignment.PostedBy},
		"New Submission",
		"A submission was received for "+assignment.Title,
		notification.CategoryAssignment,
		notification.PriorityMedium,
		"/assignments/"+assignment.ID.Hex()+"/submissions")

	return nil
}

func (s *AssignmentServiceImpl) GetSubmissions(ctx context.Context, assignmentID primitive.ObjectID) ([]Submission, error) {
	return s.subRepo.FindByAssignment(ctx, assignmentID)
}

func (s *AssignmentServiceImpl) GetStudentSubmissions(ctx context.Context, studentID primitive.ObjectID) ([]Submission, error) {
	return s.subRepo.FindByStudent(ctx, studentID)
}

func (s *AssignmentServiceImpl) Grade(ctx context.Context, id primitive.ObjectID, grade, feedback string) error {
	if grade == "" {
		return errors.New("grade is required")
	}
	return s.subRepo.SetGrade(ctx, id, grade, feedback)
}
