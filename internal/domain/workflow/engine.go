package workflow

import "newsroom-cms/internal/domain/entity"

// Action is a requested operation on an article's lifecycle.
type Action string

const (
	// ActionCreate brings a new article into existence as a draft.
	ActionCreate Action = "create"
	// ActionEdit changes article content without changing its status.
	ActionEdit Action = "edit"
	// ActionMarkReady moves a draft into the review queue.
	ActionMarkReady Action = "mark_ready"
	// ActionPublish makes an article publicly visible.
	ActionPublish Action = "publish"
	// ActionDeactivate withdraws an article from public view.
	ActionDeactivate Action = "deactivate"
	// ActionDelete removes an article outright, in any status.
	ActionDelete Action = "delete"
)

// Apply decides whether role may perform action on an article currently in
// status current, and returns the resulting status. isAuthor reports whether
// the caller is the article's author; it only matters for author-only actions
// (mark_ready, reporter edit, reporter delete). For ActionCreate, current is
// ignored and the result is always StatusDraft.
//
// Apply is pure: no I/O, no hidden state, identical inputs always produce
// identical outputs. Failures are exactly one of two kinds. A *ForbiddenError
// means the role is structurally disallowed, independent of status. An
// *InvalidTransitionError means the role is right but the current status
// disallows the action. Structural checks run first, so a reporter publishing
// a draft is Forbidden, not an invalid transition.
func Apply(role entity.Role, isAuthor bool, current entity.Status, action Action) (entity.Status, error) {
	switch action {
	case ActionCreate:
		if role != entity.RoleReporter {
			return "", &ForbiddenError{Role: role, Action: action, Reason: "only reporters create articles"}
		}
		return entity.StatusDraft, nil

	case ActionMarkReady:
		if role != entity.RoleReporter {
			return "", &ForbiddenError{Role: role, Action: action, Reason: "only reporters mark articles ready"}
		}
		if !isAuthor {
			return "", &ForbiddenError{Role: role, Action: action, Reason: "only the author may mark an article ready"}
		}
		if current != entity.StatusDraft {
			return "", &InvalidTransitionError{Role: role, From: current, Action: action}
		}
		return entity.StatusReadyForReview, nil

	case ActionPublish:
		if role != entity.RoleEditor {
			return "", &ForbiddenError{Role: role, Action: action, Reason: "only editors publish"}
		}
		if current != entity.StatusReadyForReview && current != entity.StatusDeactivated {
			return "", &InvalidTransitionError{Role: role, From: current, Action: action}
		}
		return entity.StatusPublished, nil

	case ActionDeactivate:
		if role != entity.RoleEditor {
			return "", &ForbiddenError{Role: role, Action: action, Reason: "only editors deactivate"}
		}
		// ReadyForReview is included: an editor may resolve a queued article
		// straight to deactivated instead of publishing it.
		if current != entity.StatusPublished && current != entity.StatusReadyForReview {
			return "", &InvalidTransitionError{Role: role, From: current, Action: action}
		}
		return entity.StatusDeactivated, nil

	case ActionEdit:
		// Editing never changes status. Reporters edit their own drafts;
		// editors edit deactivated articles. Everything else is frozen.
		switch role {
		case entity.RoleReporter:
			if !isAuthor {
				return "", &ForbiddenError{Role: role, Action: action, Reason: "only the author may edit"}
			}
			if current != entity.StatusDraft {
				return "", &InvalidTransitionError{Role: role, From: current, Action: action}
			}
			return current, nil
		case entity.RoleEditor:
			if current != entity.StatusDeactivated {
				return "", &InvalidTransitionError{Role: role, From: current, Action: action}
			}
			return current, nil
		default:
			return "", &ForbiddenError{Role: role, Action: action}
		}

	case ActionDelete:
		// Deletion is unconditional on status: a published article may be
		// deleted directly, bypassing deactivation.
		switch role {
		case entity.RoleEditor:
			return current, nil
		case entity.RoleReporter:
			if !isAuthor {
				return "", &ForbiddenError{Role: role, Action: action, Reason: "only the author may delete"}
			}
			return current, nil
		default:
			return "", &ForbiddenError{Role: role, Action: action}
		}

	default:
		return "", &ForbiddenError{Role: role, Action: action, Reason: "unknown action"}
	}
}
