package model

import (
	"fmt"
	"strings"
	"time"
)

// Business constraints
const (
	// MinPublicationYear is the oldest year accepted for a catalog entry.
	MinPublicationYear = 1000
)

// Book represents a catalog entry identified by ISBN
type Book struct {
	ISBN            string `json:"isbn"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationYear int    `json:"publication_year"`
	Available       bool   `json:"available"`
}

// NewBook creates a validated catalog entry. New books start out available.
func NewBook(isbn, title, author string, publicationYear int, now time.Time) (*Book, error) {
	b := &Book{
		ISBN:            isbn,
		Title:           title,
		Author:          author,
		PublicationYear: publicationYear,
		Available:       true,
	}
	if fieldErrors := b.Validate(now); len(fieldErrors) > 0 {
		return nil, NewValidationError(fieldErrors)
	}
	return b, nil
}

// Validate checks the current field values under the construction rules, so
// fields mutated directly can be re-checked. The current year bound comes
// from the caller's clock.
func (b *Book) Validate(now time.Time) []FieldError {
	var fieldErrors []FieldError

	if strings.TrimSpace(b.ISBN) == "" {
		fieldErrors = append(fieldErrors, FieldError{Field: "isbn", Message: "ISBN cannot be empty"})
	}
	if strings.TrimSpace(b.Title) == "" {
		fieldErrors = append(fieldErrors, FieldError{Field: "title", Message: "title cannot be empty"})
	}
	if strings.TrimSpace(b.Author) == "" {
		fieldErrors = append(fieldErrors, FieldError{Field: "author", Message: "author cannot be empty"})
	}
	if b.PublicationYear < MinPublicationYear || b.PublicationYear > now.Year() {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   "publication_year",
			Message: fmt.Sprintf("publication year must be between %d and %d", MinPublicationYear, now.Year()),
		})
	}

	return fieldErrors
}

// String renders the catalog line for human consumption.
func (b *Book) String() string {
	availability := "Available"
	if !b.Available {
		availability = "Checked out"
	}
	return fmt.Sprintf("[%s] %s by %s (%d) - %s", b.ISBN, b.Title, b.Author, b.PublicationYear, availability)
}
