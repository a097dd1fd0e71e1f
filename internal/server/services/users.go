package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/logging"
	"github.com/oluccaa/qualidade-sub001/internal/models"
	"github.com/oluccaa/qualidade-sub001/internal/server/auth"
	"github.com/oluccaa/qualidade-sub001/internal/server/metrics"
	srvmodels "github.com/oluccaa/qualidade-sub001/internal/server/models"
	"github.com/oluccaa/qualidade-sub001/internal/server/repositories/repomanager"
)

// MinPasswordLength is enforced when a password is set.
const MinPasswordLength = 8

// UserService authenticates users and maintains the user and organization
// directory.
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	logger                      logging.Logger
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, secret string, tokenValidity time.Duration, logger logging.Logger) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(secret),
		accessTokenValidityDuration: tokenValidity,
		logger:                      logger.With("service", "users"),
	}
}

// Login verifies the credentials and returns a signed access token. Unknown
// emails and wrong passwords both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	account, err := s.repomanager.Users(s.db).GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		metrics.RecordLogin(false)
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorUnauthorized
		}
		return "", nil, err
	}
	if err := auth.CheckPassword(account.PasswordHash, password); err != nil {
		metrics.RecordLogin(false)
		return "", nil, err
	}

	token, err := auth.GenerateToken(account.User, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrorInternal
	}
	metrics.RecordLogin(true)
	s.logger.Info(ctx, "user logged in", "user", account.ID)
	return token, &account.User, nil
}

// WhoAmI reloads the profile of the token holder.
func (s *UserService) WhoAmI(ctx context.Context, user models.User) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, user.ID)
}

func (s *UserService) ListUsers(ctx context.Context, actor models.User) ([]models.User, error) {
	if err := authorize(actor, models.ActionManageUsers); err != nil {
		return nil, err
	}
	return s.repomanager.Users(s.db).List(ctx)
}

// UserInput carries the editable fields of a user. An empty ID creates a
// user; an empty Password keeps the current one on update.
type UserInput struct {
	ID             string
	Name           string
	Email          string
	Password       string
	Role           models.Role
	OrganizationID string
}

func (in *UserInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.OrganizationID = strings.TrimSpace(in.OrganizationID)
}

func (in UserInput) validate() error {
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return fmt.Errorf("%w: invalid email %q", common.ErrorValidation, in.Email)
	}
	if !in.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", common.ErrorValidation, in.Role)
	}
	if in.Role == models.RoleClient && in.OrganizationID == "" {
		return common.ErrNoOrganization
	}
	if (in.ID == "" || in.Password != "") && len(in.Password) < MinPasswordLength {
		return fmt.Errorf("%w: password must have at least %d characters", common.ErrorValidation, MinPasswordLength)
	}
	return nil
}

// SaveUser creates or updates a user.
func (s *UserService) SaveUser(ctx context.Context, actor models.User, in UserInput) (*models.User, error) {
	if err := authorize(actor, models.ActionManageUsers); err != nil {
		return nil, err
	}
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}
	if in.OrganizationID != "" {
		if _, err := s.repomanager.Organizations(s.db).Get(ctx, in.OrganizationID); err != nil {
			return nil, err
		}
	}

	user := models.User{ID: in.ID, Name: in.Name, Email: in.Email, Role: in.Role, OrganizationID: in.OrganizationID}
	repo := s.repomanager.Users(s.db)

	var hash *string
	if in.Password != "" {
		h, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, common.ErrorInternal
		}
		hash = &h
	}

	if in.ID == "" {
		account := &srvmodels.Account{User: user, PasswordHash: *hash}
		if err := repo.Create(ctx, account); err != nil {
			return nil, err
		}
		s.logger.Info(ctx, "user created", "user", account.ID, "role", account.Role, "by", actor.ID)
		return &account.User, nil
	}

	if err := repo.Update(ctx, &user, hash); err != nil {
		return nil, err
	}
	return repo.GetByID(ctx, user.ID)
}

// DeleteUser removes a user. Actors cannot delete themselves and the last
// administrator cannot be removed.
func (s *UserService) DeleteUser(ctx context.Context, actor models.User, id string) error {
	if err := authorize(actor, models.ActionManageUsers); err != nil {
		return err
	}
	if id == actor.ID {
		return fmt.Errorf("%w: cannot delete your own account", common.ErrorValidation)
	}

	repo := s.repomanager.Users(s.db)
	target, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if target.Role == models.RoleAdmin {
		n, err := repo.CountByRole(ctx, models.RoleAdmin)
		if err != nil {
			return err
		}
		if n <= 1 {
			return fmt.Errorf("%w: cannot delete the last administrator", common.ErrorValidation)
		}
	}
	if err := repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info(ctx, "user deleted", "user", id, "by", actor.ID)
	return nil
}

// ListOrganizations returns every organization to administrators and the
// caller's own organization to everyone else.
func (s *UserService) ListOrganizations(ctx context.Context, actor models.User) ([]models.Organization, error) {
	repo := s.repomanager.Organizations(s.db)
	if actor.Can(models.ActionManageUsers) || actor.Can(models.ActionUpload) {
		return repo.List(ctx)
	}
	if !actor.HasOrganization() {
		return []models.Organization{}, nil
	}
	org, err := repo.Get(ctx, actor.OrganizationID)
	if err != nil {
		return nil, err
	}
	return []models.Organization{*org}, nil
}

// OrganizationInput carries the editable fields of an organization.
type OrganizationInput struct {
	ID     string
	Name   string
	TaxID  string
	Status models.OrganizationStatus
}

func (s *UserService) SaveOrganization(ctx context.Context, actor models.User, in OrganizationInput) (*models.Organization, error) {
	if err := authorize(actor, models.ActionManageUsers); err != nil {
		return nil, err
	}
	org := &models.Organization{
		ID:     in.ID,
		Name:   strings.TrimSpace(in.Name),
		TaxID:  strings.TrimSpace(in.TaxID),
		Status: in.Status,
	}
	if org.Status == "" {
		org.Status = models.OrganizationActive
	}
	if org.Name == "" || org.TaxID == "" {
		return nil, fmt.Errorf("%w: name and tax id are required", common.ErrorValidation)
	}
	if org.Status != models.OrganizationActive && org.Status != models.OrganizationInactive {
		return nil, fmt.Errorf("%w: unknown status %q", common.ErrorValidation, org.Status)
	}

	repo := s.repomanager.Organizations(s.db)
	if org.ID == "" {
		if err := repo.Create(ctx, org); err != nil {
			return nil, err
		}
		return org, nil
	}
	if err := repo.Update(ctx, org); err != nil {
		return nil, err
	}
	return repo.Get(ctx, org.ID)
}

// EnsureAdmin creates the bootstrap administrator when no administrator
// exists yet.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password string) error {
	repo := s.repomanager.Users(s.db)
	n, err := repo.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	in := UserInput{Name: "Administrator", Email: email, Password: password, Role: models.RoleAdmin}
	in.normalize()
	if err := in.validate(); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return err
	}
	account := &srvmodels.Account{
		User:         models.User{Name: in.Name, Email: in.Email, Role: models.RoleAdmin},
		PasswordHash: hash,
	}
	if err := repo.Create(ctx, account); err != nil {
		return err
	}
	s.logger.Warn(ctx, "bootstrap administrator created; change its password", "email", in.Email)
	return nil
}
