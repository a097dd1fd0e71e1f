// Package admin implements the user and organization management screens:
// typed forms and a filterable directory.
package admin

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/models"
)

// MinPasswordLength applies to new accounts and password changes.
const MinPasswordLength = 8

// UserFormData is the create/edit form for a user. An empty ID creates a
// new user; an empty Password on edit keeps the current one.
type UserFormData struct {
	ID             string
	Name           string
	Email          string
	Password       string
	Role           models.Role
	OrganizationID string
}

// UserForm pre-fills the edit form for u.
func UserForm(u models.User) UserFormData {
	return UserFormData{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, OrganizationID: u.OrganizationID}
}

// IsNew reports whether saving the form creates a user.
func (f UserFormData) IsNew() bool { return f.ID == "" }

// Normalize trims the free-text fields and lowercases the email.
func (f UserFormData) Normalize() UserFormData {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.OrganizationID = strings.TrimSpace(f.OrganizationID)
	return f
}

// Validate checks the form before it is sent.
func (f UserFormData) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	if _, err := mail.ParseAddress(f.Email); err != nil {
		return fmt.Errorf("%w: invalid email %q", common.ErrorValidation, f.Email)
	}
	if !f.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", common.ErrorValidation, f.Role)
	}
	if f.Role == models.RoleClient && f.OrganizationID == "" {
		return fmt.Errorf("%w: client users need an organization", common.ErrNoOrganization)
	}
	if f.IsNew() || f.Password != "" {
		if len(f.Password) < MinPasswordLength {
			return fmt.Errorf("%w: password must have at least %d characters", common.ErrorValidation, MinPasswordLength)
		}
	}
	return nil
}

// ClientFormData is the create/edit form for a client organization.
type ClientFormData struct {
	ID     string
	Name   string
	TaxID  string
	Status models.OrganizationStatus
}

// ClientForm pre-fills the edit form for o.
func ClientForm(o models.Organization) ClientFormData {
	return ClientFormData{ID: o.ID, Name: o.Name, TaxID: o.TaxID, Status: o.Status}
}

// IsNew reports whether saving the form creates an organization.
func (f ClientFormData) IsNew() bool { return f.ID == "" }

// Normalize trims the fields and defaults the status to ACTIVE.
func (f ClientFormData) Normalize() ClientFormData {
	f.Name = strings.TrimSpace(f.Name)
	f.TaxID = strings.TrimSpace(f.TaxID)
	if f.Status == "" {
		f.Status = models.OrganizationActive
	}
	return f
}

// Validate checks the form before it is sent.
func (f ClientFormData) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	if f.TaxID == "" {
		return fmt.Errorf("%w: tax id is required", common.ErrorValidation)
	}
	if f.Status != models.OrganizationActive && f.Status != models.OrganizationInactive {
		return fmt.Errorf("%w: unknown status %q", common.ErrorValidation, f.Status)
	}
	return nil
}
