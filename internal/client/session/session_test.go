package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/models"
)

func TestSession(t *testing.T) {
	s := New()
	_, err := s.CurrentUser()
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.False(t, s.SignedIn())

	u := models.User{ID: "u1", Name: "Ana", Role: models.RoleAdmin}
	s.SignIn(u, "tok")

	got, err := s.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, u, got)
	assert.Equal(t, "tok", s.Token())
	assert.True(t, s.SignedIn())

	// Mutating the caller's copy does not leak into the session.
	u.Name = "changed"
	got, _ = s.CurrentUser()
	assert.Equal(t, "Ana", got.Name)

	s.SignOut()
	_, err = s.CurrentUser()
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.Empty(t, s.Token())
}
