// Package models defines server-side records that carry persistence-only
// fields on top of the shared domain types.
package models

import "github.com/oluccaa/qualidade-sub001/internal/models"

// Account is a user together with its password hash.
type Account struct {
	models.User
	PasswordHash string
}
