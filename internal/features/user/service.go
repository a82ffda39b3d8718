package user

import (
	"context"

	common_models "go-portal/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService interface {
	GetUser(ctx context.Context, id primitive.ObjectID) (*User, error)
	GetAllUsers(ctx context.Context) ([]User, error)
	GetIDsByRole(ctx context.Context, role common_models.Role) ([]primitive.ObjectID, error)
}

type UserServiceImpl struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) UserService {
	return &UserServiceImpl{
		repo: repo,
	}
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id primitive.ObjectID) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserServiceImpl) GetAllUsers(ctx context.Context) ([]User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserServiceImpl) GetIDsByRole(ctx context.Context, role common_models.Role) ([]primitive.ObjectID, error) {
	return s.repo.FindIDsByRole(ctx, role)
}
