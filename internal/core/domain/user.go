package domain

import (
	"errors"
	"time"
)

// Role is the closed set of privilege levels a user can hold.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole validates a raw role string against the closed set. Unknown
// values are rejected here, once, so no call site re-interprets them.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

var ErrUnknownRole = errors.New("unknown role")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrWeakPassword = errors.New("password must be at least 8 characters long")
var ErrEmptyPatch = errors.New("no data provided for update")

// MinPasswordLength is the minimum accepted plaintext password length.
const MinPasswordLength = 8

// User models a registered account. PasswordHash holds the bcrypt digest
// and must never leave the credential layer; responses use PublicUser.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the redacted view of a User. It structurally has no
// secret field, so redaction cannot be forgotten at a call site.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Public projects the redacted view of u.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserPatch is a partial update to a user record. Nil fields are absent;
// non-nil fields are applied as-is. Password carries a new plaintext
// password that the service re-hashes before storage.
type UserPatch struct {
	Name     *string
	Email    *string
	Password *string
}

// Empty reports whether the patch carries no fields at all.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Password == nil
}
