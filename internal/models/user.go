package models

import "time"

// Role is the portal role of a user.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleQuality Role = "QUALITY"
	RoleClient  Role = "CLIENT"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleQuality, RoleClient:
		return true
	}
	return false
}

// User is the signed-in principal as seen by the core.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	OrganizationID string    `json:"organization_id,omitempty"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

// HasOrganization reports whether the user belongs to an organization.
func (u User) HasOrganization() bool { return u.OrganizationID != "" }

// OrganizationStatus tracks whether a client organization may use the portal.
type OrganizationStatus string

const (
	OrganizationActive   OrganizationStatus = "ACTIVE"
	OrganizationInactive OrganizationStatus = "INACTIVE"
)

// Organization is a client company (or the portal operator itself).
type Organization struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	TaxID     string             `json:"tax_id"`
	Status    OrganizationStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}
