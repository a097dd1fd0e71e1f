package users

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/oluccaa/qualidade-sub001/internal/dbx"
	"github.com/oluccaa/qualidade-sub001/internal/models"
	srvmodels "github.com/oluccaa/qualidade-sub001/internal/server/models"
)

// PostgresRepository stores accounts in the users table.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, name, email, role, COALESCE(organization_id::text, ''), created_at`

func scanUser(row interface{ Scan(...any) error }, u *models.User, extra ...any) error {
	return row.Scan(append([]any{&u.ID, &u.Name, &u.Email, &u.Role, &u.OrganizationID, &u.CreatedAt}, extra...)...)
}

func (r *PostgresRepository) Create(ctx context.Context, a *srvmodels.Account) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO users (id, name, email, password_hash, role, organization_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		a.ID, a.Name, a.Email, a.PasswordHash, a.Role, dbx.Nullable(a.OrganizationID)).Scan(&a.CreatedAt)
	return dbx.MapError("create user", err)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*srvmodels.Account, error) {
	query := `SELECT ` + userColumns + `, password_hash FROM users WHERE lower(email) = lower($1)`

	a := &srvmodels.Account{}
	if err := scanUser(r.db.QueryRowContext(ctx, query, email), &a.User, &a.PasswordHash); err != nil {
		return nil, dbx.MapError("get user by email", err)
	}
	return a, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u := &models.User{}
	if err := scanUser(r.db.QueryRowContext(ctx, query, id), u); err != nil {
		return nil, dbx.MapError("get user", err)
	}
	return u, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY lower(name)`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, dbx.MapError("list users", err)
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		var u models.User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.MapError("list users", err)
	}
	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, u *models.User, passwordHash *string) error {
	var (
		res sql.Result
		err error
	)
	if passwordHash != nil {
		res, err = r.db.ExecContext(ctx,
			`UPDATE users SET name = $2, email = $3, role = $4, organization_id = $5, password_hash = $6 WHERE id = $1`,
			u.ID, u.Name, u.Email, u.Role, dbx.Nullable(u.OrganizationID), *passwordHash)
	} else {
		res, err = r.db.ExecContext(ctx,
			`UPDATE users SET name = $2, email = $3, role = $4, organization_id = $5 WHERE id = $1`,
			u.ID, u.Name, u.Email, u.Role, dbx.Nullable(u.OrganizationID))
	}
	if err != nil {
		return dbx.MapError("update user", err)
	}
	return dbx.ExpectOne("update user", res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return dbx.MapError("delete user", err)
	}
	return dbx.ExpectOne("delete user", res)
}

func (r *PostgresRepository) CountByRole(ctx context.Context, role models.Role) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&n)
	if err != nil {
		return 0, dbx.MapError("count users", err)
	}
	return n, nil
}
