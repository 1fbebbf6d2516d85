// Package authz holds the pure authorization decision table. It depends
// on nothing but the domain types, so every layer (middleware, services,
// tests) shares exactly one source of allow/deny truth.
package authz

import (
	"errors"

	"github.com/minimart/storefront/internal/core/domain"
)

// Action is the closed set of guarded operations.
type Action string

const (
	ActionListProducts  Action = "products.list"
	ActionReadProduct   Action = "products.read"
	ActionWriteProduct  Action = "products.write"
	ActionAccessCart    Action = "cart.access"
	ActionUpdateProfile Action = "profile.update"
)

// ErrUnauthenticated means authentication was required and the caller is
// anonymous; it maps to 401. ErrForbidden means the caller is known but
// lacks the role or ownership for the action; it maps to 403. The two
// must never be conflated.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access forbidden")
)

// Allow reports whether caller may perform action. ownerID identifies the
// owning user of the target resource for ownership-scoped actions; it is
// ignored for catalog actions.
func Allow(caller domain.Caller, action Action, ownerID string) bool {
	switch action {
	case ActionListProducts, ActionReadProduct:
		return true
	case ActionWriteProduct:
		return caller.IsAdmin()
	case ActionAccessCart, ActionUpdateProfile:
		return !caller.IsAnonymous() && caller.ID == ownerID
	}
	return false
}

// Check is the error-typed form of Allow: it distinguishes "not logged
// in" from "logged in but not permitted" so handlers can map 401 vs 403.
func Check(caller domain.Caller, action Action, ownerID string) error {
	if Allow(caller, action, ownerID) {
		return nil
	}
	if caller.IsAnonymous() {
		return ErrUnauthenticated
	}
	return ErrForbidden
}
