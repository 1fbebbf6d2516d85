package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/minimart/storefront/internal/core/domain"
	"github.com/minimart/storefront/internal/core/ports"
)

// UserService implements self-service profile updates.
type UserService struct {
	repo      ports.UserRepository
	foldEmail bool
	logger    zerolog.Logger
}

// UserOption configures optional UserService behaviour.
type UserOption func(*UserService)

// WithUserCaseInsensitiveEmail folds email case on profile updates, to
// match the same policy on the auth side.
func WithUserCaseInsensitiveEmail() UserOption {
	return func(s *UserService) { s.foldEmail = true }
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger, opts ...UserOption) *UserService {
	s := &UserService{repo: repo, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UpdateProfile merges the present fields of patch into the user's own
// record. Validation happens before the record is touched, so a failed
// update leaves no partial state.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, patch domain.UserPatch) (*domain.PublicUser, error) {
	if patch.Empty() {
		return nil, domain.ErrEmptyPatch
	}

	var newHash string
	if patch.Password != nil && *patch.Password != "" {
		if len(*patch.Password) < domain.MinPasswordLength {
			return nil, domain.ErrWeakPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		newHash = string(hash)
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		email := *patch.Email
		if s.foldEmail {
			email = strings.ToLower(email)
		}
		user.Email = email
	}
	if newHash != "" {
		user.PasswordHash = newHash
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Msg("profile updated")

	public := updated.Public()
	return &public, nil
}
