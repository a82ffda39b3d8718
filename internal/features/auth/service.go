package auth

import (
	"context"
	"errors"

	common_models "go-portal/internal/common/models"
	"go-portal/internal/features/user"
	"go-portal/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password, role, registrationNo, department string) (*user.User, error)
	Login(ctx context.Context, email, password string) (string, *user.User, error)
}

type AuthServiceImpl struct {
	UserRepo user.UserRepository
}

func NewAuthService(userRepo user.UserRepository) AuthService {
	return &AuthServiceImpl{
		UserRepo: userRepo,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password, role, registrationNo, department string) (*user.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, errors.New("name, email and password are required")
	}
	if !common_models.ValidRole(role) {
		return nil, errors.New("invalid role")
	}

	_, err := s.UserRepo.FindByEmail(ctx, email)
	switch err {
	case nil:
		return nil, errors.New("email already registered")
	case mongo.ErrNoDocuments:
	default:
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	newUser := user.User{
		Name:           name,
		Email:          email,
		Password:       string(hashed),
		Role:           common_models.Role(role),
		RegistrationNo: registrationNo,
		Department:     department,
	}

	if err := s.UserRepo.Create(ctx, &newUser); err != nil {
		return nil, err
	}

	return &newUser, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, *user.User, error) {
	usr, err := s.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(usr.ID, string(usr.Role))
	if err != nil {
		return "", nil, err
	}

	return token, usr, nil
}
