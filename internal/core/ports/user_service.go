package ports

import (
	"context"

	"github.com/minimart/storefront/internal/core/domain"
)

// UserService implements self-service profile updates.
type UserService interface {
	// UpdateProfile applies the present fields of patch to the caller's
	// own record. Fails with domain.ErrEmptyPatch, domain.ErrWeakPassword,
	// domain.ErrEmailTaken, or domain.ErrUserNotFound.
	UpdateProfile(ctx context.Context, userID string, patch domain.UserPatch) (*domain.PublicUser, error)
}
