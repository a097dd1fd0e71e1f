// Package session keeps the signed-in user and access token of a client
// process.
package session

import (
	"sync"

	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/models"
)

// Session is safe for concurrent use. Controllers receive it through the
// narrow CurrentUser method only.
type Session struct {
	mu    sync.RWMutex
	user  *models.User
	token string
}

// New returns a signed-out session.
func New() *Session { return &Session{} }

// SignIn stores the authenticated user and its access token.
func (s *Session) SignIn(user models.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	s.token = token
}

// SignOut forgets the user and token.
func (s *Session) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
}

// CurrentUser returns the signed-in user or common.ErrorUnauthorized.
func (s *Session) CurrentUser() (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, common.ErrorUnauthorized
	}
	return *s.user, nil
}

// Token returns the access token, empty while signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SignedIn reports whether a user is signed in.
func (s *Session) SignedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}
