package organizations

import (
	"context"

	"github.com/oluccaa/qualidade-sub001/internal/models"
)

type Repository interface {
	Create(ctx context.Context, org *models.Organization) error
	Get(ctx context.Context, id string) (*models.Organization, error)
	List(ctx context.Context) ([]models.Organization, error)
	Update(ctx context.Context, org *models.Organization) error
}
