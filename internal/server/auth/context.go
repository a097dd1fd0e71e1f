package auth

import (
	"context"

	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/models"
)

type ctxKey struct{}

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// UserFromContext returns the user stored by WithUser.
func UserFromContext(ctx context.Context) (models.User, error) {
	u, ok := ctx.Value(ctxKey{}).(models.User)
	if !ok {
		return models.User{}, common.ErrorUnauthorized
	}
	return u, nil
}
