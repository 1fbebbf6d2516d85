package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/minimart/storefront/internal/core/domain"
	"github.com/minimart/storefront/internal/core/ports"
)

// AuthService implements registration and login against a UserRepository.
type AuthService struct {
	repo     ports.UserRepository
	secret   string
	tokenTTL time.Duration
	// foldEmail lowercases emails before storage and lookup. Default is
	// off: email equality is case-sensitive.
	foldEmail bool
	logger    zerolog.Logger
}

// AuthOption configures optional AuthService behaviour.
type AuthOption func(*AuthService)

// WithCaseInsensitiveEmail makes email uniqueness and lookup fold case.
func WithCaseInsensitiveEmail() AuthOption {
	return func(s *AuthService) { s.foldEmail = true }
}

func NewAuthService(repo ports.UserRepository, secret string, tokenTTL time.Duration, logger zerolog.Logger, opts ...AuthOption) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	s := &AuthService{repo: repo, secret: secret, tokenTTL: tokenTTL, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.PublicUser, error) {
	if name == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "is required"}
	}
	if email == "" {
		return nil, &domain.ValidationError{Field: "email", Reason: "is required"}
	}
	if password == "" {
		return nil, &domain.ValidationError{Field: "password", Reason: "is required"}
	}
	if len(password) < domain.MinPasswordLength {
		return nil, domain.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        s.canonicalEmail(email),
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")

	public := created.Public()
	return &public, nil
}

// RegisterAdmin creates an admin account, bypassing the regular-role rule
// of Register. Used only for bootstrap seeding at startup; there is no
// route to it. Existing accounts are left untouched.
func (s *AuthService) RegisterAdmin(ctx context.Context, name, email, password string) (*domain.PublicUser, error) {
	if email == "" || len(password) < domain.MinPasswordLength {
		return nil, domain.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        s.canonicalEmail(email),
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	public := created.Public()
	return &public, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.PublicUser, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, s.canonicalEmail(email))
	if err != nil {
		// Unknown email and wrong password must be indistinguishable.
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")

	public := user.Public()
	return token, &public, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"name": user.Name,
		"role": string(user.Role),
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}

func (s *AuthService) canonicalEmail(email string) string {
	if s.foldEmail {
		return strings.ToLower(email)
	}
	return email
}
