package model

import (
	"fmt"
	"strings"
	"time"
)

// Business constraints
const (
	RegularMemberMaxBooks = 3
	StudentMemberMaxBooks = 5
)

// Member type labels
const (
	MemberTypeGeneral = "General Member"
	MemberTypeRegular = "Regular Member"
	MemberTypeStudent = "Student Member"
)

// Member is the closed set of membership variants. Only RegularMember and
// StudentMember satisfy it; MemberProfile on its own does not, so the base
// profile cannot enter a library's membership directly.
type Member interface {
	// Profile returns the fields shared by every variant.
	Profile() *MemberProfile
	// MaxBooksAllowed is the variant's cap on concurrent unreturned loans.
	MaxBooksAllowed() int
	// MemberType is the display label of the variant.
	MemberType() string
}

// MemberProfile holds the fields shared by every membership variant.
type MemberProfile struct {
	MemberID       string    `json:"member_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	MembershipDate time.Time `json:"membership_date"`
}

// Profile returns the shared profile; embedding types inherit it.
func (p *MemberProfile) Profile() *MemberProfile { return p }

// MemberType returns the fallback label for an untyped profile.
func (p *MemberProfile) MemberType() string { return MemberTypeGeneral }

// Validate checks the shared profile fields.
func (p *MemberProfile) Validate() []FieldError {
	var fieldErrors []FieldError

	if strings.TrimSpace(p.MemberID) == "" {
		fieldErrors = append(fieldErrors, FieldError{Field: "member_id", Message: "member ID cannot be empty"})
	}
	if strings.TrimSpace(p.Name) == "" {
		fieldErrors = append(fieldErrors, FieldError{Field: "name", Message: "name cannot be empty"})
	}
	if strings.TrimSpace(p.Email) == "" || !strings.Contains(p.Email, "@") {
		fieldErrors = append(fieldErrors, FieldError{Field: "email", Message: "invalid email address"})
	}

	return fieldErrors
}

// RegularMember is a member of the general public. Cap: 3 concurrent loans.
type RegularMember struct {
	MemberProfile
	PhoneNumber string `json:"phone_number"`
}

// NewRegularMember creates a validated regular member. The membership date is
// taken from the caller's clock.
func NewRegularMember(memberID, name, email, phoneNumber string, now time.Time) (*RegularMember, error) {
	m := &RegularMember{
		MemberProfile: MemberProfile{
			MemberID:       memberID,
			Name:           name,
			Email:          email,
			MembershipDate: now,
		},
		PhoneNumber: phoneNumber,
	}
	if fieldErrors := m.Validate(); len(fieldErrors) > 0 {
		return nil, NewValidationError(fieldErrors)
	}
	return m, nil
}

// Validate checks the current field values under the construction rules.
func (m *RegularMember) Validate() []FieldError {
	fieldErrors := m.MemberProfile.Validate()
	if strings.TrimSpace(m.PhoneNumber) == "" {
		fieldErrors = append(fieldErrors, FieldError{Field: "phone_number", Message: "phone number cannot be empty"})
	}
	return fieldErrors
}

// MaxBooksAllowed returns the regular member loan cap.
func (m *RegularMember) MaxBooksAllowed() int { return RegularMemberMaxBooks }

// MemberType returns the display label for regular members.
func (m *RegularMember) MemberType() string { return MemberTypeRegular }

func (m *RegularMember) String() string {
	return fmt.Sprintf("%s | Phone: %s", memberLine(m), m.PhoneNumber)
}

// StudentMember is an enrolled student. Cap: 5 concurrent loans.
type StudentMember struct {
	MemberProfile
	StudentID  string `json:"student_id"`
	University string `json:"university"`
}

// NewStudentMember creates a validated student member. The membership date is
// taken from the caller's clock.
func NewStudentMember(memberID, name, email, studentID, university string, now time.Time) (*StudentMember, error) {
	m := &StudentMember{
		MemberProfile: MemberProfile{
			MemberID:       memberID,
			Name:           name,
			Email:          email,
			MembershipDate: now,
		},
		StudentID:  studentID,
		University: university,
	}
	if fieldErrors := m.Validate(); len(fieldErrors) > 0 {
		return nil, NewValidationError(fieldErrors)
	}
	return m, nil
}

// Validate checks the current field values under the construction rules.
func (m *StudentMember) Validate() []FieldError {
	fieldErrors := m.MemberProfile.Validate()
	if strings.TrimSpace(m.StudentID) == "" {
		fieldErrors = append(fieldErrors, FieldError{Field: "student_id", Message: "student ID cannot be empty"})
	}
	if strings.TrimSpace(m.University) == "" {
		fieldErrors = append(fieldErrors, FieldError{Field: "university", Message: "university cannot be empty"})
	}
	return fieldErrors
}

// MaxBooksAllowed returns the student member loan cap.
func (m *StudentMember) MaxBooksAllowed() int { return StudentMemberMaxBooks }

// MemberType returns the display label for student members.
func (m *StudentMember) MemberType() string { return MemberTypeStudent }

func (m *StudentMember) String() string {
	return fmt.Sprintf("%s | %s", memberLine(m), m.University)
}

// memberLine renders the shared portion of a member's display line.
func memberLine(m Member) string {
	p := m.Profile()
	return fmt.Sprintf("[%s] %s (%s) - Max books: %d", p.MemberID, p.Name, m.MemberType(), m.MaxBooksAllowed())
}

// CloneMember returns an independent copy of a membership variant so query
// results cannot mutate library-owned state.
func CloneMember(m Member) Member {
	switch v := m.(type) {
	case *RegularMember:
		clone := *v
		return &clone
	case *StudentMember:
		clone := *v
		return &clone
	default:
		return m
	}
}
