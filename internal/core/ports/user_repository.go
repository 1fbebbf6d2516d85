package ports

import (
	"context"

	"github.com/minimart/storefront/internal/core/domain"
)

// UserRepository defines persistence for user records. The repository
// stores records verbatim; hashing, redaction and patch semantics belong
// to the services above it.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrEmailTaken when a
	// record with the same email already exists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail returns domain.ErrUserNotFound when no record matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID returns domain.ErrUserNotFound when no record matches.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Update replaces the stored record with user, matched by user.ID.
	// Returns domain.ErrUserNotFound when the id has no record and
	// domain.ErrEmailTaken when the new email collides with another user.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}
