package admin

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/logging"
	"github.com/oluccaa/qualidade-sub001/internal/models"
)

// Service is the backend used by the directory.
type Service interface {
	ListUsers(ctx context.Context, actor models.User) ([]models.User, error)
	SaveUser(ctx context.Context, actor models.User, form UserFormData) (models.User, error)
	DeleteUser(ctx context.Context, actor models.User, id string) error
	ListOrganizations(ctx context.Context, actor models.User) ([]models.Organization, error)
	SaveOrganization(ctx context.Context, actor models.User, form ClientFormData) (models.Organization, error)
}

// UserProvider supplies the acting user.
type UserProvider interface {
	CurrentUser() (models.User, error)
}

// Filter narrows the directory listings. Text matches user name or email,
// and organization name or tax id, case-insensitively. An empty Role
// matches every role.
type Filter struct {
	Text string
	Role models.Role
}

// Directory caches users and organizations for the admin screens.
type Directory struct {
	svc    Service
	users  UserProvider
	logger logging.Logger

	mu      sync.Mutex
	all     []models.User
	orgs    []models.Organization
	filter  Filter
	loading bool
	err     error
}

// NewDirectory returns an empty directory. Call Refresh to load it.
func NewDirectory(svc Service, users UserProvider, logger logging.Logger) *Directory {
	return &Directory{svc: svc, users: users, logger: logger.With("module", "admin")}
}

func (d *Directory) actor() (models.User, error) {
	u, err := d.users.CurrentUser()
	if err != nil {
		return models.User{}, err
	}
	if !u.Can(models.ActionManageUsers) {
		return models.User{}, fmt.Errorf("%w: role %s cannot manage users", common.ErrorForbidden, u.Role)
	}
	return u, nil
}

// Refresh reloads users and organizations concurrently.
func (d *Directory) Refresh(ctx context.Context) error {
	actor, err := d.actor()
	if err != nil {
		return err
	}

	var users []models.User
	var orgs []models.Organization
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		users, err = d.svc.ListUsers(gctx, actor)
		return err
	})
	g.Go(func() (err error) {
		orgs, err = d.svc.ListOrganizations(gctx, actor)
		return err
	})
	err = g.Wait()

	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.err = fmt.Errorf("load directory: %w", err)
		d.logger.Error(ctx, "directory refresh failed", "error", err)
		return d.err
	}
	sort.Slice(users, func(i, j int) bool { return strings.ToLower(users[i].Name) < strings.ToLower(users[j].Name) })
	sort.Slice(orgs, func(i, j int) bool { return strings.ToLower(orgs[i].Name) < strings.ToLower(orgs[j].Name) })
	d.all, d.orgs, d.err = users, orgs, nil
	return nil
}

// SetFilter replaces the active filter.
func (d *Directory) SetFilter(f Filter) {
	d.mu.Lock()
	defer d.mu.Unlock()
	f.Text = strings.TrimSpace(f.Text)
	d.filter = f
}

// Users returns the cached users matching the filter.
func (d *Directory) Users() []models.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	text := strings.ToLower(d.filter.Text)
	var out []models.User
	for _, u := range d.all {
		if d.filter.Role != "" && u.Role != d.filter.Role {
			continue
		}
		if text != "" && !strings.Contains(strings.ToLower(u.Name), text) && !strings.Contains(strings.ToLower(u.Email), text) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// Organizations returns the cached organizations matching the filter text.
func (d *Directory) Organizations() []models.Organization {
	d.mu.Lock()
	defer d.mu.Unlock()
	text := strings.ToLower(d.filter.Text)
	var out []models.Organization
	for _, o := range d.orgs {
		if text != "" && !strings.Contains(strings.ToLower(o.Name), text) && !strings.Contains(strings.ToLower(o.TaxID), text) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// OrganizationName resolves an organization id for display.
func (d *Directory) OrganizationName(id string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, o := range d.orgs {
		if o.ID == id {
			return o.Name
		}
	}
	return ""
}

// Err returns the last error.
func (d *Directory) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

// SaveUser validates and stores form, then reloads the directory.
func (d *Directory) SaveUser(ctx context.Context, form UserFormData) (models.User, error) {
	form = form.Normalize()
	if err := form.Validate(); err != nil {
		return models.User{}, err
	}
	var saved models.User
	err := d.mutate(ctx, "save user", func(ctx context.Context, actor models.User) (err error) {
		saved, err = d.svc.SaveUser(ctx, actor, form)
		return err
	})
	return saved, err
}

// SaveOrganization validates and stores form, then reloads the directory.
func (d *Directory) SaveOrganization(ctx context.Context, form ClientFormData) (models.Organization, error) {
	form = form.Normalize()
	if err := form.Validate(); err != nil {
		return models.Organization{}, err
	}
	var saved models.Organization
	err := d.mutate(ctx, "save organization", func(ctx context.Context, actor models.User) (err error) {
		saved, err = d.svc.SaveOrganization(ctx, actor, form)
		return err
	})
	return saved, err
}

// DeleteUser removes a user. Admins cannot delete themselves.
func (d *Directory) DeleteUser(ctx context.Context, id string) error {
	return d.mutate(ctx, "delete user", func(ctx context.Context, actor models.User) error {
		if actor.ID == id {
			return fmt.Errorf("%w: cannot delete the signed-in user", common.ErrorValidation)
		}
		return d.svc.DeleteUser(ctx, actor, id)
	})
}

func (d *Directory) mutate(ctx context.Context, op string, fn func(context.Context, models.User) error) error {
	actor, err := d.actor()
	if err != nil {
		return err
	}

	d.mu.Lock()
	if d.loading {
		d.mu.Unlock()
		return common.ErrBusy
	}
	d.loading = true
	d.mu.Unlock()

	err = fn(ctx, actor)

	d.mu.Lock()
	d.loading = false
	if err != nil {
		d.err = fmt.Errorf("%s: %w", op, err)
		err = d.err
	}
	d.mu.Unlock()

	if err != nil {
		d.logger.Error(ctx, "admin mutation failed", "op", op, "error", err)
		return err
	}
	d.logger.Info(ctx, "admin mutation completed", "op", op, "actor", actor.ID)
	return d.Refresh(ctx)
}
