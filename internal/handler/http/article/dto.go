// Package article provides HTTP handlers for the article endpoints: CRUD,
// status transitions and the editor review queue. Handlers stay thin — they
// decode the request, resolve the caller session and delegate every decision
// to the article usecase.
package article

import (
	"time"

	"newsroom-cms/internal/domain/entity"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle,omitempty"`
	Body      string    `json:"body"`
	Section   string    `json:"section,omitempty"`
	AuthorID  string    `json:"author_id"`
	Status    string    `json:"status"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:        a.ID,
		Title:     a.Title,
		Subtitle:  a.Subtitle,
		Body:      a.Body,
		Section:   a.Section,
		AuthorID:  a.AuthorID,
		Status:    string(a.Status),
		ImageURL:  a.ImageURL,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toDTOs(articles []*entity.Article) []DTO {
	dtos := make([]DTO, 0, len(articles))
	for _, a := range articles {
		dtos = append(dtos, toDTO(a))
	}
	return dtos
}
