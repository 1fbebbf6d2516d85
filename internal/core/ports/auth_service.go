package ports

import (
	"context"

	"github.com/minimart/storefront/internal/core/domain"
)

// AuthService implements the credential exchange: account creation and
// token issue. Both return the redacted user view only.
type AuthService interface {
	// Register creates a user with the regular role. Fails with
	// domain.ErrEmailTaken, domain.ErrWeakPassword, or a
	// *domain.ValidationError for missing fields.
	Register(ctx context.Context, name, email, password string) (*domain.PublicUser, error)
	// Login verifies credentials and issues a signed session token.
	// Unknown email and wrong password are indistinguishable: both fail
	// with domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.PublicUser, error)
}
