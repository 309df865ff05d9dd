package setup

import (
	"context"
	"fmt"

	"github.com/drgilson/gascrm-backend/api/validators"
	"github.com/drgilson/gascrm-backend/internal/users"
	"github.com/drgilson/gascrm-backend/pkg/config"
	"github.com/drgilson/gascrm-backend/pkg/db/models"
	pkgerrors "github.com/drgilson/gascrm-backend/pkg/errors"
	"github.com/drgilson/gascrm-backend/pkg/security"
)

// Service defines the behavior needed by the setup controller.
type Service interface {
	VerifyStatus(ctx context.Context) *StatusResponse
	CreateAdmin(ctx context.Context, req CreateAdminRequest) (*CreateAdminResponse, error)
}

type service struct {
	users       userRepository
	session     sessionCreator
	passwordCfg config.PasswordConfig
}

type userRepository interface {
	CountAdmins(ctx context.Context) (int64, error)
	Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
}

type sessionCreator interface {
	Create(ctx context.Context, userID int64) (string, error)
}

// ServiceParams bundles the dependencies required to build a setup service.
type ServiceParams struct {
	UserRepo       userRepository
	SessionManager sessionCreator
	PasswordConfig config.PasswordConfig
}

// NewService constructs a setup service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if params.SessionManager == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	return &service{
		users:       params.UserRepo,
		session:     params.SessionManager,
		passwordCfg: params.PasswordConfig,
	}, nil
}

// VerifyStatus reports whether the one-time admin bootstrap has run. A
// persistence failure is reported in-band so a fresh deploy can detect an
// uninitialized schema instead of receiving a 500.
func (s *service) VerifyStatus(ctx context.Context) *StatusResponse {
	count, err := s.users.CountAdmins(ctx)
	if err != nil {
		needsInit := true
		msg := err.Error()
		return &StatusResponse{Configured: false, DBError: &msg, NeedsInit: &needsInit}
	}
	return &StatusResponse{Configured: count > 0}
}

func (s *service) CreateAdmin(ctx context.Context, req CreateAdminRequest) (*CreateAdminResponse, error) {
	count, err := s.users.CountAdmins(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count admins")
	}
	if count > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "Sistema já configurado")
	}

	hash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	// Email is stored in the same canonical form login looks it up with,
	// otherwise a mixed-case bootstrap email could never authenticate.
	admin, err := s.users.Create(ctx, users.CreateUserDTO{
		Name:         validators.SanitizeString(req.Name, 100),
		Email:        validators.NormalizeEmail(req.Email),
		PasswordHash: hash,
		Level:        "admin",
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create admin")
	}

	sessionID, err := s.session.Create(ctx, admin.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create session")
	}

	return &CreateAdminResponse{
		Message:   "Administrador criado com sucesso",
		User:      users.FromModel(admin),
		SessionID: sessionID,
	}, nil
}
