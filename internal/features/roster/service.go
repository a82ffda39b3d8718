package roster

import (
	"context"
	"errors"
	"fmt"

	common_models "go-portal/internal/common/models"
	"go-portal/internal/config"
	"go-portal/internal/connectors"
	"go-portal/internal/features/user"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ConnectorFactory builds a connector per import run, so the external
// connection is not held open between imports.
type ConnectorFactory func(dbType string) connectors.Connector

type RosterService interface {
	// Import pulls member rows from the ERP database and upserts them
	// into the users collection, keyed by registration number.
	// Returns the number of rows imported and the number skipped.
	Import(ctx context.Context) (imported int, skipped int, err error)
}

type RosterServiceImpl struct {
	cfg       *config.Config
	userRepo  user.UserRepository
	connector ConnectorFactory
	log       *zap.Logger
}

func NewRosterService(cfg *config.Config, userRepo user.UserRepository, log *zap.Logger) RosterService {
	return &RosterServiceImpl{
		cfg:       cfg,
		userRepo:  userRepo,
		connector: connectors.NewExternalDBConnector,
		log:       log,
	}
}

func (s *RosterServiceImpl) Import(ctx context.Context) (int, int, error) {
	if s.cfg.RosterDSN == "" {
		return 0, 0, errors.New("roster import is not configured")
	}

	conn := s.connector(s.cfg.RosterDriver)
	if err := conn.Connect(ctx, s.cfg.RosterDSN); err != nil {
		return 0, 0, fmt.Errorf("roster source unavailable: %w", err)
	}
	defer conn.Close()

	rows, err := conn.FetchRows(ctx, s.cfg.RosterQuery)
	if err != nil {
		return 0, 0, err
	}

	imported, skipped := 0, 0
	for _, row := range rows {
		usr, ok := s.rowToUser(row)
		if !ok {
			skipped++
			continue
		}

		if err := s.userRepo.UpsertByRegistrationNo(ctx, usr); err != nil {
			s.log.Warn("roster upsert failed",
				zap.String("registration_no", usr.RegistrationNo),
				zap.Error(err))
			skipped++
			continue
		}
		imported++
	}

	s.log.Info("roster import finished",
		zap.Int("imported", imported),
		zap.Int("skipped", skipped))

	return imported, skipped, nil
}

func (s *RosterServiceImpl) rowToUser(row connectors.Row) (*user.User, bool) {
	regNo, _ := row["reg_no"].(string)
	name, _ := row["name"].(string)
	email, _ := row["email"].(string)
	role, _ := row["role"].(string)
	department, _ := row["department"].(string)

	if regNo == "" || email == "" {
		return nil, false
	}
	if !common_models.ValidRole(role) {
		role = string(common_models.RoleStudent)
	}

	// Initial password is the registration number; users are expected
	// to change it on first login.
	hashed, err := bcrypt.GenerateFromPassword([]byte(regNo), bcrypt.DefaultCost)
	if err != nil {
		return nil, false
	}

	return &user.User{
		Name:           name,
		Email:          email,
		Password:       string(hashed),
		Role:           common_models.Role(role),
		RegistrationNo: regNo,
		Department:     department,
	}, true
}
