package workflow

import (
	"slices"
	"strings"

	"newsroom-cms/internal/domain/entity"
)

// Visible computes the subset of articles the caller may see, in the order
// their view presents them. The input is never mutated; the result is a fresh
// slice.
//
//   - Editors see every article, newest created first.
//   - Reporters see only their own articles, newest created first.
//   - Everyone else (public, missing or unknown roles) sees published articles
//     only, most recently updated first.
//
// Ties are broken by id ascending so the ordering is total and stable across
// calls.
func Visible(role entity.Role, principalID string, articles []*entity.Article) []*entity.Article {
	var out []*entity.Article
	switch role {
	case entity.RoleEditor:
		out = slices.Clone(articles)
		sortByCreatedAtDesc(out)
	case entity.RoleReporter:
		out = make([]*entity.Article, 0, len(articles))
		for _, a := range articles {
			if a.AuthorID == principalID {
				out = append(out, a)
			}
		}
		sortByCreatedAtDesc(out)
	default:
		out = make([]*entity.Article, 0, len(articles))
		for _, a := range articles {
			if a.Status == entity.StatusPublished {
				out = append(out, a)
			}
		}
		slices.SortStableFunc(out, func(a, b *entity.Article) int {
			if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
				return c
			}
			return strings.Compare(a.ID, b.ID)
		})
	}
	return out
}

// CanView reports whether the caller may fetch a single article. It applies
// the same policy as Visible to one element.
func CanView(role entity.Role, principalID string, a *entity.Article) bool {
	switch role {
	case entity.RoleEditor:
		return true
	case entity.RoleReporter:
		return a.AuthorID == principalID
	default:
		return a.Status == entity.StatusPublished
	}
}

// PendingReview returns the review queue: every article waiting in
// ready_for_review, newest created first. The queue is visible to editors
// only. Any other caller receives an empty, non-nil slice rather than an
// error: the queue is invisible to non-editors by policy, which is distinct
// from a hard permission failure.
func PendingReview(role entity.Role, articles []*entity.Article) []*entity.Article {
	out := make([]*entity.Article, 0)
	if role != entity.RoleEditor {
		return out
	}
	for _, a := range articles {
		if a.Status == entity.StatusReadyForReview {
			out = append(out, a)
		}
	}
	sortByCreatedAtDesc(out)
	return out
}

func sortByCreatedAtDesc(articles []*entity.Article) {
	slices.SortStableFunc(articles, func(a, b *entity.Article) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}
