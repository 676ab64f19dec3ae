package context

import (
	"context"

	"hauspet/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyCurrentUser is the key under which the authenticated account is stored.
const KeyCurrentUser ContextKey = "current_user"

// SetCurrentUser stores the authenticated user on both the echo context and the request context.
func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyCurrentUser), user)
	c.SetRequest(c.Request().WithContext(WithCurrentUser(c.Request().Context(), user)))
}

// CurrentUser returns the user stored by the auth middleware.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyCurrentUser)).(*entity.User)

	return user, ok && user != nil
}

// WithCurrentUser returns a new context carrying the user.
func WithCurrentUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, KeyCurrentUser, user)
}

// CurrentUserFromContext returns the user carried by ctx.
func CurrentUserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(KeyCurrentUser).(*entity.User)

	return user, ok && user != nil
}
