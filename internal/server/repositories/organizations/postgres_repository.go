package organizations

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/oluccaa/qualidade-sub001/internal/dbx"
	"github.com/oluccaa/qualidade-sub001/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, org *models.Organization) error {
	if org.ID == "" {
		org.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO organizations (id, name, tax_id, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query, org.ID, org.Name, org.TaxID, org.Status).Scan(&org.CreatedAt)
	return dbx.MapError("create organization", err)
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Organization, error) {
	query := `SELECT id, name, tax_id, status, created_at FROM organizations WHERE id = $1`

	o := &models.Organization{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.Name, &o.TaxID, &o.Status, &o.CreatedAt)
	if err != nil {
		return nil, dbx.MapError("get organization", err)
	}
	return o, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Organization, error) {
	query := `SELECT id, name, tax_id, status, created_at FROM organizations ORDER BY lower(name)`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, dbx.MapError("list organizations", err)
	}
	defer rows.Close()

	var result []models.Organization
	for rows.Next() {
		var o models.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.TaxID, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.MapError("list organizations", err)
	}
	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, org *models.Organization) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE organizations SET name = $2, tax_id = $3, status = $4 WHERE id = $1`,
		org.ID, org.Name, org.TaxID, org.Status)
	if err != nil {
		return dbx.MapError("update organization", err)
	}
	return dbx.ExpectOne("update organization", res)
}
