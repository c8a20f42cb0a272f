// Package section provides HTTP handlers for the section registry. Listing
// is open; create, update and delete are editor-only.
package section

import (
	"time"

	"newsroom-cms/internal/domain/entity"
)

type DTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func toDTO(s *entity.Section) DTO {
	return DTO{
		ID:        s.ID,
		Name:      s.Name,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
	}
}
