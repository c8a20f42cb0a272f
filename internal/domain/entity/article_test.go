package entity_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"newsroom-cms/internal/domain/entity"
)

func validArticle() *entity.Article {
	return &entity.Article{
		ID:        "a-1",
		Title:     "Title",
		Subtitle:  "Subtitle",
		Body:      "Body text",
		Section:   "politics",
		AuthorID:  "p-1",
		Status:    entity.StatusDraft,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestStatusValid(t *testing.T) {
	valid := []entity.Status{
		entity.StatusDraft,
		entity.StatusReadyForReview,
		entity.StatusPublished,
		entity.StatusDeactivated,
	}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("Status(%q).Valid() = false, want true", s)
		}
	}
	for _, s := range []entity.Status{"", "archived", "Draft"} {
		if s.Valid() {
			t.Errorf("Status(%q).Valid() = true, want false", s)
		}
	}
}

func TestArticleValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*entity.Article)
		wantErr bool
		field   string
	}{
		{name: "valid", mutate: func(*entity.Article) {}},
		{name: "missing title", mutate: func(a *entity.Article) { a.Title = "" }, wantErr: true, field: "title"},
		{name: "missing subtitle", mutate: func(a *entity.Article) { a.Subtitle = "" }, wantErr: true, field: "subtitle"},
		{name: "missing body", mutate: func(a *entity.Article) { a.Body = "" }, wantErr: true, field: "body"},
		{name: "oversized title", mutate: func(a *entity.Article) { a.Title = strings.Repeat("t", 301) }, wantErr: true, field: "title"},
		{name: "oversized subtitle", mutate: func(a *entity.Article) { a.Subtitle = strings.Repeat("s", 501) }, wantErr: true, field: "subtitle"},
		{name: "missing author", mutate: func(a *entity.Article) { a.AuthorID = "" }, wantErr: true, field: "authorID"},
		{name: "unknown status", mutate: func(a *entity.Article) { a.Status = "archived" }, wantErr: true, field: "status"},
		{name: "url without key", mutate: func(a *entity.Article) { a.ImageURL = "https://img.example/x.jpg" }, wantErr: true, field: "image"},
		{name: "key without url", mutate: func(a *entity.Article) { a.ImageKey = "k-1" }, wantErr: true, field: "image"},
		{
			name: "url and key together",
			mutate: func(a *entity.Article) {
				a.ImageURL = "https://img.example/x.jpg"
				a.ImageKey = "k-1"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validArticle()
			tt.mutate(a)
			err := a.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var ve *entity.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if ve.Field != tt.field {
				t.Errorf("ValidationError.Field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

func TestArticleHasImage(t *testing.T) {
	a := validArticle()
	if a.HasImage() {
		t.Error("HasImage() = true for article without attachment")
	}
	a.ImageURL = "https://img.example/x.jpg"
	a.ImageKey = "k-1"
	if !a.HasImage() {
		t.Error("HasImage() = false for article with attachment")
	}
}
