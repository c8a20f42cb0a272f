package entity

import "time"

// SectionStatus is the active/inactive toggle on a section. It has no side
// effects on referencing articles.
type SectionStatus string

const (
	SectionActive   SectionStatus = "active"
	SectionInactive SectionStatus = "inactive"
)

// Valid reports whether s is a known section status.
func (s SectionStatus) Valid() bool {
	return s == SectionActive || s == SectionInactive
}

// Section is a named category articles reference by name. The reference is not
// validated at write time and deleting a section leaves referencing articles
// with a dangling name, which is accepted behavior.
type Section struct {
	ID        string
	Name      string
	Status    SectionStatus
	CreatedAt time.Time
}

// Validate checks the section's field invariants.
func (s *Section) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if !s.Status.Valid() {
		return &ValidationError{Field: "status", Message: "unknown status " + string(s.Status)}
	}
	return nil
}
