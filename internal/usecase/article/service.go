package article

import (
	"context"
	"fmt"
	"time"

	"newsroom-cms/internal/domain/entity"
	"newsroom-cms/internal/domain/workflow"
	"newsroom-cms/internal/repository"
	"newsroom-cms/internal/usecase/media"
)

// Caller is the explicit session object passed into every operation. There is
// no ambient "current user": role and identity are arguments, resolved once
// per session by the auth service.
type Caller struct {
	PrincipalID string
	Role        entity.Role
}

// Public is the caller value for unauthenticated requests.
var Public = Caller{Role: entity.RolePublic}

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title    string
	Subtitle string
	Body     string
	Section  string
	Image    *media.Upload
}

// UpdateInput represents the input parameters for a content edit.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID       string
	Title    *string
	Subtitle *string
	Body     *string
	Section  *string
	Image    *media.Upload
}

// Service provides article management use cases. Every status decision is
// delegated to workflow.Apply and every read goes through the visibility
// filter; persistence is delegated to the repository.
type Service struct {
	Repo  repository.ArticleRepository
	Media *media.Service
}

// Create validates the input, attaches the offered image and persists a new
// article. The status is forced to draft server-side regardless of input, and
// the caller becomes the immutable author. Only reporters may create; anyone
// else gets a ForbiddenError from the workflow engine.
func (s *Service) Create(ctx context.Context, caller Caller, in CreateInput) (*entity.Article, error) {
	status, err := workflow.Apply(caller.Role, true, "", workflow.ActionCreate)
	if err != nil {
		recordDecision(workflow.ActionCreate, err)
		return nil, err
	}

	now := time.Now()
	art := &entity.Article{
		Title:     in.Title,
		Subtitle:  in.Subtitle,
		Body:      in.Body,
		Section:   in.Section,
		AuthorID:  caller.PrincipalID,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := art.Validate(); err != nil {
		return nil, err
	}

	// Upload before the document write: a failed upload aborts the save, so
	// the store never holds an image reference that points at nothing.
	if err := s.Media.Attach(ctx, art, in.Image); err != nil {
		return nil, fmt.Errorf("attach image: %w", err)
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	recordDecision(workflow.ActionCreate, nil)
	return art, nil
}

// Get retrieves a single article, subject to the caller's visibility: an
// article outside it is reported as not found rather than forbidden, so
// unpublished work does not leak its existence.
func (s *Service) Get(ctx context.Context, caller Caller, id string) (*entity.Article, error) {
	art, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !workflow.CanView(caller.Role, caller.PrincipalID, art) {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// List returns the caller's view of the article set: all articles for
// editors, own articles for reporters, published only for the public. The
// repository query narrows the fetch; the visibility filter remains the
// authority on membership and order.
func (s *Service) List(ctx context.Context, caller Caller) ([]*entity.Article, error) {
	var (
		articles []*entity.Article
		err      error
	)
	switch caller.Role {
	case entity.RoleEditor:
		articles, err = s.Repo.List(ctx)
	case entity.RoleReporter:
		articles, err = s.Repo.ListByAuthor(ctx, caller.PrincipalID)
	default:
		articles, err = s.Repo.ListByStatus(ctx, entity.StatusPublished)
	}
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return workflow.Visible(caller.Role, caller.PrincipalID, articles), nil
}

// PendingReview returns the editor review queue. Non-editors receive an empty
// sequence without a store round trip: the queue is invisible to them by
// policy, not forbidden.
func (s *Service) PendingReview(ctx context.Context, caller Caller) ([]*entity.Article, error) {
	if caller.Role != entity.RoleEditor {
		return []*entity.Article{}, nil
	}
	articles, err := s.Repo.ListByStatus(ctx, entity.StatusReadyForReview)
	if err != nil {
		return nil, fmt.Errorf("list pending articles: %w", err)
	}
	return workflow.PendingReview(caller.Role, articles), nil
}

// Update performs a content edit. Whether editing is allowed at all is the
// workflow engine's call (reporter on own draft, editor on deactivated);
// editing never changes status. An image replacement uploads before deleting
// the old blob, and an upload failure aborts the whole save with nothing
// partially persisted.
func (s *Service) Update(ctx context.Context, caller Caller, in UpdateInput) (*entity.Article, error) {
	art, err := s.load(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if _, err := workflow.Apply(caller.Role, art.AuthorID == caller.PrincipalID, art.Status, workflow.ActionEdit); err != nil {
		recordDecision(workflow.ActionEdit, err)
		return nil, err
	}

	if in.Title != nil {
		if err := entity.ValidateTitle(*in.Title); err != nil {
			return nil, err
		}
		art.Title = *in.Title
	}
	if in.Subtitle != nil {
		if err := entity.ValidateSubtitle(*in.Subtitle); err != nil {
			return nil, err
		}
		art.Subtitle = *in.Subtitle
	}
	if in.Body != nil {
		if *in.Body == "" {
			return nil, &entity.ValidationError{Field: "body", Message: "cannot be empty"}
		}
		art.Body = *in.Body
	}
	if in.Section != nil {
		art.Section = *in.Section
	}

	if err := s.Media.Attach(ctx, art, in.Image); err != nil {
		return nil, fmt.Errorf("attach image: %w", err)
	}

	art.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	recordDecision(workflow.ActionEdit, nil)
	return art, nil
}

// MarkReady moves the author's draft into the review queue.
func (s *Service) MarkReady(ctx context.Context, caller Caller, id string) (*entity.Article, error) {
	return s.transition(ctx, caller, id, workflow.ActionMarkReady)
}

// Publish makes a reviewed or deactivated article publicly visible.
func (s *Service) Publish(ctx context.Context, caller Caller, id string) (*entity.Article, error) {
	return s.transition(ctx, caller, id, workflow.ActionPublish)
}

// Deactivate withdraws an article from public view.
func (s *Service) Deactivate(ctx context.Context, caller Caller, id string) (*entity.Article, error) {
	return s.transition(ctx, caller, id, workflow.ActionDeactivate)
}

func (s *Service) transition(ctx context.Context, caller Caller, id string, action workflow.Action) (*entity.Article, error) {
	art, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := workflow.Apply(caller.Role, art.AuthorID == caller.PrincipalID, art.Status, action)
	if err != nil {
		recordDecision(action, err)
		return nil, err
	}

	art.Status = next
	art.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("%s article: %w", action, err)
	}
	recordDecision(action, nil)
	return art, nil
}

// Delete removes an article in any status; a published article is deleted
// directly, bypassing deactivation. The image blob is detached best-effort
// first — the document delete proceeds regardless of blob cleanup outcome.
func (s *Service) Delete(ctx context.Context, caller Caller, id string) error {
	art, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if _, err := workflow.Apply(caller.Role, art.AuthorID == caller.PrincipalID, art.Status, workflow.ActionDelete); err != nil {
		recordDecision(workflow.ActionDelete, err)
		return err
	}

	s.Media.Detach(ctx, art)

	if err := s.Repo.Delete(ctx, art.ID); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	recordDecision(workflow.ActionDelete, nil)
	return nil
}

func (s *Service) load(ctx context.Context, id string) (*entity.Article, error) {
	if id == "" {
		return nil, ErrInvalidArticleID
	}
	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}
