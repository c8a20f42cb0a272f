package entity

import "time"

// Role is the editorial role of an authenticated principal. A principal holds
// exactly one role at a time; the role is resolved once per session and treated
// as immutable for the session's duration.
type Role string

const (
	// RoleReporter authors and edits articles up to ready-for-review.
	RoleReporter Role = "reporter"
	// RoleEditor publishes and deactivates articles and manages sections.
	RoleEditor Role = "editor"
	// RolePublic is the absence of a role: unauthenticated callers, or
	// principals whose role record is missing. Unknown roles degrade to this
	// view everywhere, so an unrecognized role can never widen access.
	RolePublic Role = ""
)

// Valid reports whether r is a role that grants editorial access.
func (r Role) Valid() bool {
	return r == RoleReporter || r == RoleEditor
}

// Principal is an authenticated identity with a resolved role.
type Principal struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
