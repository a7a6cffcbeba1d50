package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Business constraints
const (
	// DefaultLoanDurationDays is the loan period used when a checkout does
	// not specify one.
	DefaultLoanDurationDays = 14

	loanIDLength = 8
)

// DefaultLateFeePerDay is the flat daily rate charged once a loan is overdue.
var DefaultLateFeePerDay = decimal.RequireFromString("0.50")

// Loan is a checkout record binding one book to one member. The library
// aggregate owns the referenced Book and Member; the loan only reads them
// for reporting and fee computation.
type Loan struct {
	LoanID     string     `json:"loan_id"`
	Book       *Book      `json:"book"`
	Member     Member     `json:"member"`
	LoanDate   time.Time  `json:"loan_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
	Returned   bool       `json:"returned"`
}

// NewLoanID generates a short loan token.
func NewLoanID() string {
	return uuid.NewString()[:loanIDLength]
}

// NewLoan creates a checkout record starting at now. A non-positive duration
// selects DefaultLoanDurationDays. The caller resolves book and member first;
// nil references are a validation failure, not a state one.
func NewLoan(book *Book, member Member, durationDays int, now time.Time) (*Loan, error) {
	var fieldErrors []FieldError
	if book == nil {
		fieldErrors = append(fieldErrors, FieldError{Field: "book", Message: "book is required"})
	}
	if member == nil {
		fieldErrors = append(fieldErrors, FieldError{Field: "member", Message: "member is required"})
	}
	if len(fieldErrors) > 0 {
		return nil, NewValidationError(fieldErrors)
	}

	if durationDays <= 0 {
		durationDays = DefaultLoanDurationDays
	}

	return &Loan{
		LoanID:   NewLoanID(),
		Book:     book,
		Member:   member,
		LoanDate: now,
		DueDate:  now.AddDate(0, 0, durationDays),
		Returned: false,
	}, nil
}

// MarkReturned closes the loan at now. It does not touch the referenced
// book; freeing the copy is the aggregate's job.
func (l *Loan) MarkReturned(now time.Time) error {
	if l.Returned {
		return NewInvalidStateError("this book has already been returned")
	}

	l.Returned = true
	returnedAt := now
	l.ReturnDate = &returnedAt
	return nil
}

// IsOverdue reports whether the loan is unreturned and past its due date.
func (l *Loan) IsOverdue(now time.Time) bool {
	if l.Returned {
		return false
	}
	return now.After(l.DueDate)
}

// DaysLate returns the number of whole days past the due date, zero when the
// loan is not overdue.
func (l *Loan) DaysLate(now time.Time) int {
	if !l.IsOverdue(now) {
		return 0
	}
	return int(now.Sub(l.DueDate).Hours() / 24)
}

// LateFee computes days late times the per-day rate. A non-positive rate
// selects DefaultLateFeePerDay. The fee is informational; nothing is ever
// collected.
func (l *Loan) LateFee(feePerDay decimal.Decimal, now time.Time) decimal.Decimal {
	if feePerDay.Sign() <= 0 {
		feePerDay = DefaultLateFeePerDay
	}
	if !l.IsOverdue(now) {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(l.DaysLate(now))).Mul(feePerDay)
}

// StatusLine renders the loan's state relative to now.
func (l *Loan) StatusLine(now time.Time) string {
	var status string
	switch {
	case l.Returned:
		status = fmt.Sprintf("Returned on %s", l.ReturnDate.Format("02/01/2006"))
	case l.IsOverdue(now):
		status = fmt.Sprintf("OVERDUE! Due: %s", l.DueDate.Format("02/01/2006"))
	default:
		status = fmt.Sprintf("Due: %s", l.DueDate.Format("02/01/2006"))
	}

	return fmt.Sprintf("[%s] %s -> %s | %s", l.LoanID, l.Book.Title, l.Member.Profile().Name, status)
}

// Clone returns an independent copy of the loan, including copies of the
// referenced book and member, so callers cannot reach library-owned state.
func (l *Loan) Clone() *Loan {
	clone := *l
	if l.Book != nil {
		bookCopy := *l.Book
		clone.Book = &bookCopy
	}
	if l.Member != nil {
		clone.Member = CloneMember(l.Member)
	}
	if l.ReturnDate != nil {
		returnedAt := *l.ReturnDate
		clone.ReturnDate = &returnedAt
	}
	return &clone
}
