package ports

import (
	"context"

	"github.com/plantvision/plantvision-api/internal/core/domain"
)

type AuthService interface {
	// Register creates a new account and returns it. Fails with
	// domain.ErrInvalidInput on empty fields and domain.ErrEmailTaken when the
	// email is already registered.
	Register(ctx context.Context, email, password string) (*domain.User, error)

	// Login verifies credentials and returns a signed bearer token together
	// with the user. Unknown email and wrong password both fail with the same
	// domain.ErrInvalidCredentials so callers cannot tell the cases apart.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// Profile returns the account for an authenticated user id.
	Profile(ctx context.Context, userID int64) (*domain.User, error)
}
