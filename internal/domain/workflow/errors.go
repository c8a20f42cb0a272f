// Package workflow is the single authority on the editorial lifecycle. It
// decides, as a pure function, whether a (role, article, action) combination is
// legal and what status results. No other package inspects or mutates article
// status directly.
package workflow

import (
	"errors"
	"fmt"

	"newsroom-cms/internal/domain/entity"
)

// Sentinel errors callers match with errors.Is. The typed errors below wrap
// them and carry the details needed for user-facing messages.
var (
	// ErrForbidden means the role can never perform the action, regardless of
	// the article's current status.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidTransition means the role is permitted to perform the action,
	// but the article's current status disallows it.
	ErrInvalidTransition = errors.New("invalid transition")
)

// ForbiddenError reports a structural permission failure: the role (or a
// non-author, for author-only actions) cannot perform the action at all.
type ForbiddenError struct {
	Role   entity.Role
	Action Action
	Reason string
}

func (e *ForbiddenError) Error() string {
	role := string(e.Role)
	if role == "" {
		role = "public"
	}
	if e.Reason != "" {
		return fmt.Sprintf("role %s may not %s: %s", role, e.Action, e.Reason)
	}
	return fmt.Sprintf("role %s may not %s", role, e.Action)
}

func (e *ForbiddenError) Unwrap() error { return ErrForbidden }

// InvalidTransitionError reports that a permitted action was requested in a
// status that disallows it. It names the current status, the requested action
// and the caller's role, so the rejection is never a silent no-op.
type InvalidTransitionError struct {
	Role   entity.Role
	From   entity.Status
	Action Action
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s an article in status %q as role %s", e.Action, e.From, e.Role)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }
