package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/models"
	srvmodels "github.com/oluccaa/qualidade-sub001/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

var userCols = []string{"id", "name", "email", "role", "organization_id", "created_at"}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+users\s*\(id,\s*name,\s*email,\s*password_hash,\s*role,\s*organization_id\).*RETURNING\s+created_at$`).
		WithArgs(sqlmock.AnyArg(), "Ana", "ana@steel.io", "hash", models.RoleQuality, nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	a := &srvmodels.Account{User: models.User{Name: "Ana", Email: "ana@steel.io", Role: models.RoleQuality}, PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), a))
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, created, a.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err := repo.Create(context.Background(), &srvmodels.Account{User: models.User{ID: "u1", Name: "Ana", Email: "ana@steel.io", Role: models.RoleQuality}})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestGetByEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT .* password_hash FROM users WHERE lower\(email\) = lower\(\$1\)`).
		WithArgs("Ana@Steel.io").
		WillReturnRows(sqlmock.NewRows(append(userCols, "password_hash")).
			AddRow("u1", "Ana", "ana@steel.io", "QUALITY", "org1", time.Now(), "hash"))

	a, err := repo.GetByEmail(context.Background(), "Ana@Steel.io")
	require.NoError(t, err)
	assert.Equal(t, "u1", a.ID)
	assert.Equal(t, models.RoleQuality, a.Role)
	assert.Equal(t, "org1", a.OrganizationID)
	assert.Equal(t, "hash", a.PasswordHash)
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM users WHERE lower\(email\)`).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@x.io")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestList(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT .* FROM users ORDER BY lower\(name\)`).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow("u1", "Ana", "ana@steel.io", "QUALITY", "", time.Now()).
			AddRow("u2", "Bo", "bo@acme.io", "CLIENT", "acme", time.Now()))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.False(t, got[0].HasOrganization())
	assert.Equal(t, "acme", got[1].OrganizationID)
}

func TestUpdate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	u := &models.User{ID: "u1", Name: "Ana", Email: "ana@steel.io", Role: models.RoleAdmin}

	mock.ExpectExec(`UPDATE users SET name = \$2, email = \$3, role = \$4, organization_id = \$5 WHERE id = \$1`).
		WithArgs("u1", "Ana", "ana@steel.io", models.RoleAdmin, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Update(context.Background(), u, nil))

	hash := "new-hash"
	mock.ExpectExec(`UPDATE users SET .* password_hash = \$6 WHERE id = \$1`).
		WithArgs("u1", "Ana", "ana@steel.io", models.RoleAdmin, nil, "new-hash").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Update(context.Background(), u, &hash), common.ErrorNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAndCount(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).WithArgs("u1").WillReturnError(errors.New("db down"))
	err := repo.Delete(context.Background(), "u1")
	assert.ErrorContains(t, err, "delete user: db down")

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users WHERE role = \$1`).WithArgs(models.RoleAdmin).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	n, err := repo.CountByRole(context.Background(), models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
