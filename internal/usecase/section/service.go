package section

import (
	"context"
	"fmt"
	"time"

	"newsroom-cms/internal/domain/entity"
	"newsroom-cms/internal/repository"
)

// CreateInput represents the input parameters for creating a new section.
// Status defaults to active when empty.
type CreateInput struct {
	Name   string
	Status entity.SectionStatus
}

// UpdateInput represents the input parameters for updating a section.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID     string
	Name   *string
	Status *entity.SectionStatus
}

// Service provides section registry use cases.
type Service struct {
	Repo repository.SectionRepository
}

// List retrieves all sections ordered by name.
func (s *Service) List(ctx context.Context) ([]*entity.Section, error) {
	sections, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	return sections, nil
}

// Create creates a new section. The status defaults to active when omitted.
// Name uniqueness is conventional, not enforced.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Section, error) {
	if in.Status == "" {
		in.Status = entity.SectionActive
	}
	sec := &entity.Section{
		Name:      in.Name,
		Status:    in.Status,
		CreatedAt: time.Now(),
	}
	if err := sec.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, sec); err != nil {
		return nil, fmt.Errorf("create section: %w", err)
	}
	return sec, nil
}

// Update modifies an existing section. The status flag is a free toggle with
// no side effects on referencing articles.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Section, error) {
	if in.ID == "" {
		return nil, ErrInvalidSectionID
	}
	sec, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get section: %w", err)
	}
	if sec == nil {
		return nil, ErrSectionNotFound
	}

	if in.Name != nil {
		sec.Name = *in.Name
	}
	if in.Status != nil {
		sec.Status = *in.Status
	}
	if err := sec.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(ctx, sec); err != nil {
		return nil, fmt.Errorf("update section: %w", err)
	}
	return sec, nil
}

// Delete removes a section. Articles referencing it keep their dangling
// section name; no cascade or validation happens here.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidSectionID
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	return nil
}
