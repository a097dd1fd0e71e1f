package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/oluccaa/qualidade-sub001/internal/client/admin"
	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/models"
	"github.com/oluccaa/qualidade-sub001/internal/shared"
)

// prompt asks for a field, keeping cur when the answer is empty.
func (a *App) prompt(label, cur string) (string, error) {
	return GetTextDefault(a.reader, label, cur, a.out)
}

func directoryFilter(args []string) admin.Filter {
	var f admin.Filter
	var text []string
	for _, arg := range args {
		if r := models.Role(strings.ToUpper(arg)); r.Valid() {
			f.Role = r
			continue
		}
		text = append(text, arg)
	}
	f.Text = strings.Join(text, " ")
	return f
}

func (a *App) refreshDirectory(ctx context.Context, f admin.Filter) error {
	a.directory.SetFilter(f)
	return a.directory.Refresh(ctx)
}

// Users lists users. Role names among the arguments filter by role, the
// rest is matched against name and email.
func (a *App) Users(ctx context.Context, args []string) error {
	if err := a.refreshDirectory(ctx, directoryFilter(args)); err != nil {
		return err
	}
	t := newTable("ID", "Name", "Email", "Role", "Organization")
	for _, u := range a.directory.Users() {
		t.Row(u.ID, u.Name, u.Email, string(u.Role), a.directory.OrganizationName(u.OrganizationID))
	}
	fmt.Fprintln(a.out, t.String())
	return nil
}

func (a *App) Orgs(ctx context.Context, args []string) error {
	if err := a.refreshDirectory(ctx, admin.Filter{Text: strings.Join(args, " ")}); err != nil {
		return err
	}
	t := newTable("ID", "Name", "Tax ID", "Status")
	for _, o := range a.directory.Organizations() {
		t.Row(o.ID, o.Name, o.TaxID, string(o.Status))
	}
	fmt.Fprintln(a.out, t.String())
	return nil
}

// SaveUser creates a user, or edits the one whose id is given.
func (a *App) SaveUser(ctx context.Context, args []string) error {
	if err := a.refreshDirectory(ctx, admin.Filter{}); err != nil {
		return err
	}

	var form admin.UserFormData
	if len(args) > 0 {
		found := false
		for _, u := range a.directory.Users() {
			if u.ID == args[0] {
				form, found = admin.UserForm(u), true
				break
			}
		}
		if !found {
			return fmt.Errorf("user %s: %w", args[0], common.ErrorNotFound)
		}
	}

	var err error
	if form.Name, err = a.prompt("Name", form.Name); err != nil {
		return err
	}
	if form.Email, err = a.prompt("Email", form.Email); err != nil {
		return err
	}
	role, err := a.prompt("Role (ADMIN, QUALITY, CLIENT)", string(form.Role))
	if err != nil {
		return err
	}
	form.Role = models.Role(strings.ToUpper(role))
	if form.OrganizationID, err = a.prompt("Organization id", form.OrganizationID); err != nil {
		return err
	}
	if !form.IsNew() {
		fmt.Fprintln(a.out, "Leave the password empty to keep the current one.")
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	form.Password = string(password)
	shared.WipeByteArray(password)

	saved, err := a.directory.SaveUser(ctx, form)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved user %s (%s)\n", saved.Name, saved.ID)
	return nil
}

func (a *App) DeleteUser(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if err := a.directory.DeleteUser(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted user", args[0])
	return nil
}

// SaveOrg creates an organization, or edits the one whose id is given.
func (a *App) SaveOrg(ctx context.Context, args []string) error {
	if err := a.refreshDirectory(ctx, admin.Filter{}); err != nil {
		return err
	}

	var form admin.ClientFormData
	if len(args) > 0 {
		found := false
		for _, o := range a.directory.Organizations() {
			if o.ID == args[0] {
				form, found = admin.ClientForm(o), true
				break
			}
		}
		if !found {
			return fmt.Errorf("organization %s: %w", args[0], common.ErrorNotFound)
		}
	}

	var err error
	if form.Name, err = a.prompt("Name", form.Name); err != nil {
		return err
	}
	if form.TaxID, err = a.prompt("Tax id", form.TaxID); err != nil {
		return err
	}
	status, err := a.prompt("Status (ACTIVE, INACTIVE)", string(form.Status))
	if err != nil {
		return err
	}
	form.Status = models.OrganizationStatus(strings.ToUpper(status))

	saved, err := a.directory.SaveOrganization(ctx, form)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved organization %s (%s)\n", saved.Name, saved.ID)
	return nil
}
