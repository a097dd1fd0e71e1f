package admin

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/logging"
	"github.com/oluccaa/qualidade-sub001/internal/models"
)

type fakeUsers struct{ user models.User }

func (f fakeUsers) CurrentUser() (models.User, error) { return f.user, nil }

type fakeService struct {
	mu    sync.Mutex
	users []models.User
	orgs  []models.Organization
	lists int
	err   error
}

func (f *fakeService) ListUsers(ctx context.Context, actor models.User) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	return append([]models.User(nil), f.users...), f.err
}

func (f *fakeService) SaveUser(ctx context.Context, actor models.User, form UserFormData) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := models.User{ID: form.ID, Name: form.Name, Email: form.Email, Role: form.Role, OrganizationID: form.OrganizationID}
	if form.IsNew() {
		u.ID = fmt.Sprintf("u%d", len(f.users)+1)
		f.users = append(f.users, u)
		return u, nil
	}
	for i := range f.users {
		if f.users[i].ID == form.ID {
			f.users[i] = u
			return u, nil
		}
	}
	return models.User{}, common.ErrorNotFound
}

func (f *fakeService) DeleteUser(ctx context.Context, actor models.User, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeService) ListOrganizations(ctx context.Context, actor models.User) ([]models.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Organization(nil), f.orgs...), f.err
}

func (f *fakeService) SaveOrganization(ctx context.Context, actor models.User, form ClientFormData) (models.Organization, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o := models.Organization{ID: form.ID, Name: form.Name, TaxID: form.TaxID, Status: form.Status}
	if form.IsNew() {
		o.ID = fmt.Sprintf("o%d", len(f.orgs)+1)
	}
	f.orgs = append(f.orgs, o)
	return o, nil
}

var admin = models.User{ID: "root", Name: "Root", Email: "root@portal.io", Role: models.RoleAdmin}

func seeded() *fakeService {
	return &fakeService{
		users: []models.User{
			admin,
			{ID: "q1", Name: "ana quality", Email: "ana@steel.io", Role: models.RoleQuality},
			{ID: "c1", Name: "Bruno", Email: "bruno@acme.com", Role: models.RoleClient, OrganizationID: "acme"},
		},
		orgs: []models.Organization{{ID: "acme", Name: "Acme Tubes", TaxID: "12.345.678/0001-90", Status: models.OrganizationActive}},
	}
}

func TestUserFormValidate(t *testing.T) {
	valid := UserFormData{Name: "Ana", Email: "ana@steel.io", Password: "s3cretpass", Role: models.RoleQuality}

	tests := []struct {
		name    string
		mutate  func(*UserFormData)
		wantErr error
	}{
		{name: "valid", mutate: func(*UserFormData) {}},
		{name: "no name", mutate: func(f *UserFormData) { f.Name = "" }, wantErr: common.ErrorValidation},
		{name: "bad email", mutate: func(f *UserFormData) { f.Email = "ana" }, wantErr: common.ErrorValidation},
		{name: "bad role", mutate: func(f *UserFormData) { f.Role = "GUEST" }, wantErr: common.ErrorValidation},
		{name: "short password", mutate: func(f *UserFormData) { f.Password = "123" }, wantErr: common.ErrorValidation},
		{name: "client without org", mutate: func(f *UserFormData) { f.Role = models.RoleClient }, wantErr: common.ErrNoOrganization},
		{name: "edit keeps password", mutate: func(f *UserFormData) { f.ID = "u1"; f.Password = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)
			err := f.Normalize().Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientFormNormalize(t *testing.T) {
	f := ClientFormData{Name: "  Acme ", TaxID: " 123 "}.Normalize()
	assert.Equal(t, "Acme", f.Name)
	assert.Equal(t, "123", f.TaxID)
	assert.Equal(t, models.OrganizationActive, f.Status)
	assert.NoError(t, f.Validate())

	assert.ErrorIs(t, ClientFormData{Name: "Acme"}.Normalize().Validate(), common.ErrorValidation)
	assert.ErrorIs(t, ClientFormData{Name: "Acme", TaxID: "1", Status: "GONE"}.Validate(), common.ErrorValidation)
}

func TestDirectoryFilter(t *testing.T) {
	d := NewDirectory(seeded(), fakeUsers{admin}, logging.Nop())
	require.NoError(t, d.Refresh(context.Background()))

	assert.Len(t, d.Users(), 3)
	assert.Equal(t, "ana quality", d.Users()[0].Name, "sorted case-insensitively")

	d.SetFilter(Filter{Text: "ACME"})
	users := d.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "c1", users[0].ID)
	assert.Len(t, d.Organizations(), 1)

	d.SetFilter(Filter{Role: models.RoleQuality})
	users = d.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "q1", users[0].ID)

	assert.Equal(t, "Acme Tubes", d.OrganizationName("acme"))
	assert.Empty(t, d.OrganizationName("nope"))
}

func TestDirectorySaveRefetches(t *testing.T) {
	svc := seeded()
	d := NewDirectory(svc, fakeUsers{admin}, logging.Nop())
	ctx := context.Background()
	require.NoError(t, d.Refresh(ctx))

	saved, err := d.SaveUser(ctx, UserFormData{Name: " Carla ", Email: "Carla@Acme.com ", Password: "longenough", Role: models.RoleClient, OrganizationID: "acme"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "carla@acme.com", saved.Email)
	assert.Len(t, d.Users(), 4)
	assert.Equal(t, 2, svc.lists)

	edit := UserForm(saved)
	edit.Name = "Carla M."
	_, err = d.SaveUser(ctx, edit)
	require.NoError(t, err)

	d.SetFilter(Filter{Text: "carla m"})
	require.Len(t, d.Users(), 1)

	org, err := d.SaveOrganization(ctx, ClientFormData{Name: "Beta Steel", TaxID: "99"})
	require.NoError(t, err)
	assert.Equal(t, models.OrganizationActive, org.Status)
}

func TestDirectoryValidationMakesNoCall(t *testing.T) {
	svc := seeded()
	d := NewDirectory(svc, fakeUsers{admin}, logging.Nop())

	_, err := d.SaveUser(context.Background(), UserFormData{Name: "x", Email: "bad"})
	assert.ErrorIs(t, err, common.ErrorValidation)
	assert.Zero(t, svc.lists)
}

func TestDirectoryRequiresAdmin(t *testing.T) {
	svc := seeded()
	d := NewDirectory(svc, fakeUsers{models.User{ID: "q1", Role: models.RoleQuality}}, logging.Nop())

	assert.ErrorIs(t, d.Refresh(context.Background()), common.ErrorForbidden)
	assert.ErrorIs(t, d.DeleteUser(context.Background(), "c1"), common.ErrorForbidden)
	assert.Zero(t, svc.lists)
}

func TestDirectoryDelete(t *testing.T) {
	svc := seeded()
	d := NewDirectory(svc, fakeUsers{admin}, logging.Nop())
	ctx := context.Background()

	assert.ErrorIs(t, d.DeleteUser(ctx, admin.ID), common.ErrorValidation)
	require.NoError(t, d.DeleteUser(ctx, "c1"))
	assert.Len(t, d.Users(), 2)

	err := d.DeleteUser(ctx, "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Error(t, d.Err())
}

func TestDirectoryRefreshFailure(t *testing.T) {
	svc := seeded()
	svc.err = errors.New("db down")
	d := NewDirectory(svc, fakeUsers{admin}, logging.Nop())

	require.Error(t, d.Refresh(context.Background()))
	assert.Empty(t, d.Users())
	assert.Error(t, d.Err())
}
