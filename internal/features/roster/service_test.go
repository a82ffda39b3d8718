package roster

import (
	"context"
	"testing"

	common_models "go-portal/internal/common/models"
	"go-portal/internal/config"
	"go-portal/internal/connectors"
	"go-portal/internal/features/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fakeConnector struct {
	rows   []connectors.Row
	closed bool
}

func (f *fakeConnector) Connect(ctx context.Context, dsn string) error { return nil }
func (f *fakeConnector) Close() error {
	f.closed = true
	return nil
}
func (f *fakeConnector) FetchRows(ctx context.Context, query string) ([]connectors.Row, error) {
	return f.rows, nil
}

type upsertRecorder struct {
	upserted []*user.User
}

func (u *upsertRecorder) Create(ctx context.Context, usr *user.User) error { return nil }
func (u *upsertRecorder) FindByID(ctx context.Context, id primitive.ObjectID) (*user.User, error) {
	return nil, nil
}
func (u *upsertRecorder) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}
func (u *upsertRecorder) FindAll(ctx context.Context) ([]user.User, error) { return nil, nil }
func (u *upsertRecorder) FindIDsByRole(ctx context.Context, role common_models.Role) ([]primitive.ObjectID, error) {
	return nil, nil
}
func (u *upsertRecorder) UpsertByRegistrationNo(ctx context.Context, usr *user.User) error {
	u.upserted = append(u.upserted, usr)
	return nil
}

func newTestRosterService(conn *fakeConnector, repo *upsertRecorder) *RosterServiceImpl {
	return &RosterServiceImpl{
		cfg: &config.Config{
			RosterDriver: "postgresql",
			RosterDSN:    "postgres://erp",
			RosterQuery:  "SELECT reg_no, name, email, role, department FROM members",
		},
		userRepo:  repo,
		connector: func(dbType string) connectors.Connector { return conn },
		log:       zap.NewNop(),
	}
}

func TestImportUpsertsValidRows(t *testing.T) {
	conn := &fakeConnector{rows: []connectors.Row{
		{"reg_no": "21CS001", "name": "Asha", "email": "asha@example.edu", "role": "student", "department": "CSE"},
		{"reg_no": "FAC042", "name": "Dr. Rao", "email": "rao@example.edu", "role": "faculty", "department": "CSE"},
		{"reg_no": "", "name": "missing", "email": "x@example.edu"},                // no reg_no
		{"reg_no": "21CS002", "name": "noemail"},                                  // no email
		{"reg_no": "21CS003", "name": "Kiran", "email": "kiran@example.edu", "role": "superuser"}, // unknown role
	}}
	repo := &upsertRecorder{}
	svc := newTestRosterService(conn, repo)

	imported, skipped, err := svc.Import(context.Background())
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if imported != 3 || skipped != 2 {
		t.Fatalf("imported/skipped = %d/%d, want 3/2", imported, skipped)
	}
	if !conn.closed {
		t.Fatal("connector was not closed")
	}

	byReg := make(map[string]*user.User)
	for _, u := range repo.upserted {
		byReg[u.RegistrationNo] = u
	}
	if byReg["FAC042"].Role != common_models.RoleFaculty {
		t.Fatalf("FAC042 role = %s, want faculty", byReg["FAC042"].Role)
	}
	if byReg["21CS003"].Role != common_models.RoleStudent {
		t.Fatalf("unknown role mapped to %s, want student", byReg["21CS003"].Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(byReg["21CS001"].Password), []byte("21CS001")); err != nil {
		t.Fatal("initial password is not the bcrypt hash of the registration number")
	}
}

func TestImportWithoutDSNFails(t *testing.T) {
	svc := &RosterServiceImpl{
		cfg:      &config.Config{},
		userRepo: &upsertRecorder{},
		log:      zap.NewNop(),
	}

	if _, _, err := svc.Import(context.Background()); err == nil {
		t.Fatal("Import with no DSN configured should fail")
	}
}
