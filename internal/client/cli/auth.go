package cli

import (
	"context"
	"fmt"

	"github.com/oluccaa/qualidade-sub001/internal/shared"
)

// Login prompts for the password (and the email unless given as the first
// argument) and signs in. Page 1 of the root is loaded on success.
func (a *App) Login(ctx context.Context, args []string) error {
	var email string
	if len(args) > 0 {
		email = args[0]
	} else {
		var err error
		email, err = GetTextDefault(a.reader, "Email", a.lastEmail(ctx), a.out)
		if err != nil {
			return err
		}
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	user, err := a.backend.Login(ctx, email, string(password))
	if err != nil {
		a.logger.Error(ctx, "login failed", "email", email, "error", err)
		return fmt.Errorf("login: %w", err)
	}
	fmt.Fprintf(a.out, "Signed in as %s (%s)\n", user.Name, user.Role)
	if a.prefs != nil {
		if err := a.prefs.SetLastEmail(ctx, email); err != nil {
			a.logger.Warn(ctx, "could not remember email", "error", err)
		}
	}

	return a.explorer.Navigate(ctx, "")
}

func (a *App) lastEmail(ctx context.Context) string {
	if a.prefs == nil {
		return ""
	}
	email, err := a.prefs.LastEmail(ctx)
	if err != nil {
		a.logger.Warn(ctx, "could not read last email", "error", err)
	}
	return email
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	a.viewer.Close()
	a.backend.Logout()
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context, _ []string) error {
	u := a.currentUser()
	org := u.OrganizationID
	if org == "" {
		org = "-"
	}
	fmt.Fprintf(a.out, "%s <%s>\nrole: %s\norganization: %s\n", u.Name, u.Email, u.Role, org)
	return nil
}
