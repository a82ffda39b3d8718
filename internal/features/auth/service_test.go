package auth

import (
	"context"
	"testing"

	common_models "go-portal/internal/common/models"
	"go-portal/internal/features/user"
	"go-portal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mockUserRepository struct {
	byEmail map[string]*user.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{byEmail: make(map[string]*user.User)}
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	u.ID = primitive.NewObjectID()
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*user.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return u, nil
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]user.User, error) { return nil, nil }

func (m *mockUserRepository) FindIDsByRole(ctx context.Context, role common_models.Role) ([]primitive.ObjectID, error) {
	return nil, nil
}

func (m *mockUserRepository) UpsertByRegistrationNo(ctx context.Context, u *user.User) error {
	return nil
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewAuthService(repo)

	u, err := svc.Register(context.Background(), "Asha", "asha@example.edu", "secret123", "student", "21CS001", "CSE")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Password == "secret123" {
		t.Fatal("password stored in plaintext")
	}
	if u.Role != common_models.RoleStudent {
		t.Fatalf("role = %s, want student", u.Role)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	repo := newMockUserRepository()
	svc := NewAuthService(repo)

	if _, err := svc.Register(context.Background(), "Asha", "asha@example.edu", "secret123", "student", "", ""); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(context.Background(), "Someone", "asha@example.edu", "other", "student", "", ""); err == nil {
		t.Fatal("duplicate email accepted")
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := NewAuthService(newMockUserRepository())

	if _, err := svc.Register(context.Background(), "X", "x@example.edu", "pw", "superuser", "", ""); err == nil {
		t.Fatal("unknown role accepted")
	}
}

func TestLogin(t *testing.T) {
	utils.SetSecret("test-secret")

	repo := newMockUserRepository()
	svc := NewAuthService(repo)

	if _, err := svc.Register(context.Background(), "Asha", "asha@example.edu", "secret123", "student", "", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{name: "valid credentials", email: "asha@example.edu", password: "secret123"},
		{name: "wrong password", email: "asha@example.edu", password: "nope", wantErr: true},
		{name: "unknown email", email: "ghost@example.edu", password: "secret123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, u, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Login succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Login: %v", err)
			}
			if token == "" {
				t.Fatal("empty token")
			}
			claims, err := utils.ValidateToken(token)
			if err != nil {
				t.Fatalf("ValidateToken: %v", err)
			}
			if claims.UserID != u.ID.Hex() {
				t.Fatalf("token subject = %s, want %s", claims.UserID, u.ID.Hex())
			}
		})
	}
}
