package service

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/athenaeum-project/athenaeum/internal/model"
)

// ReturnReceipt reports the outcome of a return. The late fee is purely
// informational; nothing is charged or persisted.
type ReturnReceipt struct {
	Loan    *model.Loan     `json:"loan"`
	LateFee decimal.Decimal `json:"late_fee"`
}

// CheckoutBook lends the book with the given ISBN to the given member and
// returns a snapshot of the new loan. A non-positive duration selects
// model.DefaultLoanDurationDays.
//
// Preconditions, checked in order before anything is mutated: the book
// exists, the member exists, the book is available, and the member is below
// their variant's loan cap.
func (s *LibraryService) CheckoutBook(isbn, memberID string, durationDays int) (*model.Loan, error) {
	book := s.findBook(isbn)
	if book == nil {
		return nil, errBookNotFound(isbn)
	}
	member := s.findMember(memberID)
	if member == nil {
		return nil, errMemberNotFound(memberID)
	}
	if !book.Available {
		return nil, errBookUnavailable(book.Title)
	}
	if s.activeLoanCount(memberID) >= member.MaxBooksAllowed() {
		return nil, errLoanLimitReached(member.MaxBooksAllowed())
	}

	loan, err := model.NewLoan(book, member, durationDays, s.clock.Now())
	if err != nil {
		return nil, err
	}
	// The history is the ID namespace; regenerate on the off chance the
	// short token collides.
	for s.findLoan(loan.LoanID) != nil {
		loan.LoanID = model.NewLoanID()
	}

	book.Available = false
	s.loans = append(s.loans, loan)

	s.logger.Info("book checked out",
		slog.String("loan_id", loan.LoanID),
		slog.String("isbn", book.ISBN),
		slog.String("title", book.Title),
		slog.String("member_id", memberID),
		slog.Time("due_date", loan.DueDate),
	)
	return loan.Clone(), nil
}

// ReturnBook closes the loan with the given ID, frees the book, and reports
// any late fee accrued at the default daily rate.
func (s *LibraryService) ReturnBook(loanID string) (*ReturnReceipt, error) {
	loan := s.findLoan(loanID)
	if loan == nil {
		return nil, errLoanNotFound(loanID)
	}
	if loan.Returned {
		return nil, errLoanAlreadyReturned()
	}

	now := s.clock.Now()
	lateFee := loan.LateFee(model.DefaultLateFeePerDay, now)

	if err := loan.MarkReturned(now); err != nil {
		return nil, err
	}
	// The loan references the library-owned book, so this flips the same
	// entry the catalog holds.
	loan.Book.Available = true

	if lateFee.IsPositive() {
		s.logger.Warn("late fee due",
			slog.String("loan_id", loan.LoanID),
			slog.String("late_fee", lateFee.StringFixed(2)),
		)
	}
	s.logger.Info("book returned",
		slog.String("loan_id", loan.LoanID),
		slog.String("isbn", loan.Book.ISBN),
		slog.String("title", loan.Book.Title),
	)

	return &ReturnReceipt{Loan: loan.Clone(), LateFee: lateFee}, nil
}

// AllLoans returns a snapshot of the full loan history, oldest first.
func (s *LibraryService) AllLoans() []*model.Loan {
	return s.copyLoans(func(*model.Loan) bool { return true })
}

// ActiveLoans returns a snapshot of the unreturned loans.
func (s *LibraryService) ActiveLoans() []*model.Loan {
	return s.copyLoans(func(l *model.Loan) bool { return !l.Returned })
}

// OverdueLoans returns a snapshot of the unreturned loans past their due
// date at the current clock reading.
func (s *LibraryService) OverdueLoans() []*model.Loan {
	now := s.clock.Now()
	return s.copyLoans(func(l *model.Loan) bool { return l.IsOverdue(now) })
}

// LoansByMember returns a snapshot of every loan, returned or not, ever made
// to the given member.
func (s *LibraryService) LoansByMember(memberID string) []*model.Loan {
	return s.copyLoans(func(l *model.Loan) bool {
		return l.Member.Profile().MemberID == memberID
	})
}

// activeLoanCount counts the member's unreturned loans.
func (s *LibraryService) activeLoanCount(memberID string) int {
	count := 0
	for _, l := range s.loans {
		if !l.Returned && l.Member.Profile().MemberID == memberID {
			count++
		}
	}
	return count
}

// findLoan returns the library-owned loan for loanID, nil when absent.
func (s *LibraryService) findLoan(loanID string) *model.Loan {
	for _, l := range s.loans {
		if l.LoanID == loanID {
			return l
		}
	}
	return nil
}

func (s *LibraryService) copyLoans(keep func(*model.Loan) bool) []*model.Loan {
	result := make([]*model.Loan, 0, len(s.loans))
	for _, l := range s.loans {
		if keep(l) {
			result = append(result, l.Clone())
		}
	}
	return result
}
