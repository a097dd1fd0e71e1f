package users

import (
	"context"

	"github.com/oluccaa/qualidade-sub001/internal/models"
	srvmodels "github.com/oluccaa/qualidade-sub001/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, account *srvmodels.Account) error
	GetByEmail(ctx context.Context, email string) (*srvmodels.Account, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	// Update stores the profile fields; a non-nil passwordHash replaces the password.
	Update(ctx context.Context, user *models.User, passwordHash *string) error
	Delete(ctx context.Context, id string) error
	CountByRole(ctx context.Context, role models.Role) (int, error)
}
