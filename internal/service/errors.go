package service

import (
	"fmt"

	"github.com/athenaeum-project/athenaeum/internal/model"
)

// Centralized errors for library operations.
// All errors returned by LibraryService methods are built here for
// consistency, so callers see stable details and the right kind for each
// violated precondition.

// ===== Catalog Errors =====

func errBookNotFound(isbn string) *model.Error {
	return model.NewNotFoundError(fmt.Sprintf("book with ISBN %s", isbn))
}

func errBookExists(isbn string) *model.Error {
	return model.NewConflictError(fmt.Sprintf("book with ISBN %s already exists", isbn))
}

func errBookOnLoan() *model.Error {
	return model.NewInvalidStateError("cannot remove a book that is currently on loan")
}

// ===== Member Errors =====

func errMemberNotFound(memberID string) *model.Error {
	return model.NewNotFoundError(fmt.Sprintf("member with ID %s", memberID))
}

func errMemberExists(memberID string) *model.Error {
	return model.NewConflictError(fmt.Sprintf("member with ID %s already exists", memberID))
}

func errMemberHasActiveLoans() *model.Error {
	return model.NewInvalidStateError("cannot remove member with active loans")
}

// ===== Lending Errors =====

func errLoanNotFound(loanID string) *model.Error {
	return model.NewNotFoundError(fmt.Sprintf("loan with ID %s", loanID))
}

func errBookUnavailable(title string) *model.Error {
	return model.NewInvalidStateError(fmt.Sprintf("book %q is currently unavailable", title))
}

func errLoanLimitReached(maxBooks int) *model.Error {
	return model.NewInvalidStateError(fmt.Sprintf("member has reached maximum loan limit (%d books)", maxBooks))
}

func errLoanAlreadyReturned() *model.Error {
	return model.NewInvalidStateError("this book has already been returned")
}
