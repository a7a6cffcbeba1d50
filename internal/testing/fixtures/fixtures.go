// Package fixtures provides test data factories for the library core.
//
// Each factory creates a valid entity with sensible defaults while allowing
// customization via option functions. Factories fail the test immediately if
// the entity does not validate, so tests never start from broken data.
//
// Usage:
//
//	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
//	book := fixtures.Book(t, now)
//	member := fixtures.StudentMember(t, now, func(o *MemberOpts) { o.MemberID = "M042" })
package fixtures

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/athenaeum-project/athenaeum/internal/model"
)

var sequence atomic.Int64

// nextID disambiguates entities created without explicit identifiers. Atomic
// because fixtures are shared by parallel tests.
func nextID() int {
	return int(sequence.Add(1))
}

// ============================================================================
// Book Fixtures
// ============================================================================

// BookOpts customizes book creation
type BookOpts struct {
	ISBN            string
	Title           string
	Author          string
	PublicationYear int
}

// Book creates a valid book with optional customizations.
func Book(t *testing.T, now time.Time, opts ...func(*BookOpts)) *model.Book {
	t.Helper()

	n := nextID()
	o := BookOpts{
		ISBN:            fmt.Sprintf("978-0-000-%05d-0", n),
		Title:           fmt.Sprintf("Test Book %d", n),
		Author:          "Test Author",
		PublicationYear: 2000,
	}
	for _, opt := range opts {
		opt(&o)
	}

	book, err := model.NewBook(o.ISBN, o.Title, o.Author, o.PublicationYear, now)
	if err != nil {
		t.Fatalf("book fixture: %v", err)
	}
	return book
}

// ============================================================================
// Member Fixtures
// ============================================================================

// MemberOpts customizes member creation
type MemberOpts struct {
	MemberID   string
	Name       string
	Email      string
	Phone      string // regular members
	StudentID  string // student members
	University string // student members
}

// RegularMember creates a valid regular member with optional customizations.
func RegularMember(t *testing.T, now time.Time, opts ...func(*MemberOpts)) *model.RegularMember {
	t.Helper()

	o := defaultMemberOpts()
	for _, opt := range opts {
		opt(&o)
	}

	member, err := model.NewRegularMember(o.MemberID, o.Name, o.Email, o.Phone, now)
	if err != nil {
		t.Fatalf("regular member fixture: %v", err)
	}
	return member
}

// StudentMember creates a valid student member with optional customizations.
func StudentMember(t *testing.T, now time.Time, opts ...func(*MemberOpts)) *model.StudentMember {
	t.Helper()

	o := defaultMemberOpts()
	for _, opt := range opts {
		opt(&o)
	}

	member, err := model.NewStudentMember(o.MemberID, o.Name, o.Email, o.StudentID, o.University, now)
	if err != nil {
		t.Fatalf("student member fixture: %v", err)
	}
	return member
}

func defaultMemberOpts() MemberOpts {
	n := nextID()
	return MemberOpts{
		MemberID:   fmt.Sprintf("M%03d", n),
		Name:       fmt.Sprintf("Member %d", n),
		Email:      fmt.Sprintf("member%d@example.com", n),
		Phone:      "+381600000000",
		StudentID:  fmt.Sprintf("S%05d", n),
		University: "University of Belgrade",
	}
}
