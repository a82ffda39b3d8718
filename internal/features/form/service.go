package form

import (
	"context"
	"errors"
	"fmt"

	common_models "go-portal/internal/common/models"
	"go-portal/internal/features/notification"
	"go-portal/internal/features/realtime"

	"github.com/d5/tengo/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FormService interface {
	Create(ctx context.Context, form *Form) error
	GetAll(ctx context.Context) ([]Form, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Form, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	Submit(ctx context.Context, submission *FormSubmission) error
	GetSubmissions(ctx context.Context, formID primitive.ObjectID) ([]FormSubmission, error)
}

type FormServiceImpl struct {
	repo     FormRepository
	notifier notification.NotificationService
	bus      realtime.Publisher
}

func NewFormService(repo FormRepository, notifier notification.NotificationService, bus realtime.Publisher) FormService {
	return &FormServiceImpl{
		repo:     repo,
		notifier: notifier,
		bus:      bus,
	}
}

func (s *FormServiceImpl) Create(ctx context.Context, form *Form) error {
	if form.Title == "" {
		return errors.New("form title is required")
	}

	if err := s.repo.Create(ctx, form); err != nil {
		return err
	}

	s.bus.Publish(realtime.EventFormNew, form, realtime.Broadcast())
	_ = s.notifier.NotifyRole(ctx, common_models.RoleStudent,
		"New Form",
		form.Title,
		notification.CategoryForm,
		notification.PriorityMedium,
		"/forms/"+form.ID.Hex())

	return nil
}

func (s *FormServiceImpl) GetAll(ctx context.Context) ([]Form, error) {
	return s.repo.FindAll(ctx)
}

func (s *FormServiceImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*Form, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *FormServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}

func (s *FormServiceImpl) Submit(ctx context.Context, submission *FormSubmission) error {
	form, err := s.repo.FindByID(ctx, submission.FormID)
	if err != nil {
		return errors.New("form not found")
	}

	for _, field := range form.Fields {
		if !field.Required {
			continue
		}
		if _, ok := submission.Answers[field.Name]; !ok {
			return fmt.Errorf("missing required field: %s", field.Name)
		}
	}

	if form.ValidationScript != "" {
		if err := runValidationScript(form.ValidationScript, submission.Answers); err != nil {
			return err
		}
	}

	return s.repo.CreateSubmission(ctx, submission)
}

func (s *FormServiceImpl) GetSubmissions(ctx context.Context, formID primitive.ObjectID) ([]FormSubmission, error) {
	return s.repo.FindSubmissions(ctx, formID)
}

// runValidationScript executes the form's Tengo script against the
// answers. The script must set `valid`; a false result rejects the
// submission with the script's `reason`.
func runValidationScript(scriptContent string, answers map[string]any) error {
	script := tengo.NewScript([]byte(scriptContent))

	if err := script.Add("answers", answers); err != nil {
		return fmt.Errorf("failed to bind answers: %w", err)
	}

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("failed to compile validation script: %w", err)
	}

	if err := compiled.Run(); err != nil {
		return fmt.Errorf("failed to run validation script: %w", err)
	}

	if !compiled.Get("valid").Bool() {
		reason := compiled.Get("reason").String()
		if reason == "" || reason == "<undefined>" {
			reason = "submission rejected by form validation"
		}
		return errors.New(reason)
	}

	return nil
}
