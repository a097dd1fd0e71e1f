// Package auth issues and verifies access tokens and password hashes and
// carries the authenticated user through request contexts.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/models"
)

// Claims are the registered JWT claims plus the portal identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID         string      `json:"uid"`
	Name           string      `json:"name"`
	OrganizationID string      `json:"org,omitempty"`
	Role           models.Role `json:"role"`
}

// User rebuilds the principal encoded in the claims.
func (c *Claims) User() models.User {
	return models.User{ID: c.UserID, Name: c.Name, OrganizationID: c.OrganizationID, Role: c.Role}
}

// GenerateToken signs an HS256 access token for user.
func GenerateToken(user models.User, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID:         user.ID,
		Name:           user.Name,
		OrganizationID: user.OrganizationID,
		Role:           user.Role,
	})

	return token.SignedString(secretKey)
}

// ParseToken verifies tokenString and returns its claims. Expired tokens
// yield common.ErrTokenExpired; every other failure common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}
	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
