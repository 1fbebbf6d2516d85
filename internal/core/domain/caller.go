package domain

import "time"

// Caller is the per-request identity projection resolved by the session
// middleware. The zero value is the anonymous caller.
type Caller struct {
	ID   string
	Role Role
}

// Anonymous is the caller used when no valid session token is present.
var Anonymous = Caller{}

// IsAnonymous reports whether the caller carries no resolved identity.
func (c Caller) IsAnonymous() bool {
	return c.ID == ""
}

// IsAdmin reports whether the caller holds the admin role.
func (c Caller) IsAdmin() bool {
	return !c.IsAnonymous() && c.Role == RoleAdmin
}

// AuditEntry records a mutation performed against a shared resource,
// written asynchronously by the audit pipeline.
type AuditEntry struct {
	ID       string    `json:"id"`
	ActorID  string    `json:"actor_id"`
	Action   string    `json:"action"`
	EntityID string    `json:"entity_id"`
	Detail   string    `json:"detail,omitempty"`
	At       time.Time `json:"at"`
}
