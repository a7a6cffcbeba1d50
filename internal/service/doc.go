// Package service implements the business logic of the library system.
//
// The package is dominated by LibraryService, the aggregate root that owns
// the book, member, and loan collections and enforces every cross-entity
// invariant: ISBN and member-ID uniqueness, book availability, per-member
// loan caps, and the loan lifecycle.
//
// # Service Pattern
//
//   - Constructor function (NewLibraryService) accepts a config struct with
//     its dependencies (name, clock, logger)
//   - Methods validate every precondition before mutating anything, so a
//     failed call leaves the aggregate unchanged
//   - Errors are kinded domain errors from the model package; callers branch
//     on the kind
//   - "Now" is read once per operation from the injected clock
//
// # Ownership
//
// The service owns every entity it holds: entities are copied on insert and
// on read, so neither the caller's originals nor returned snapshots alias
// internal state. Book availability is flipped only here, never by Loan.
//
// # Example Usage
//
//	library, err := service.NewLibraryService(service.LibraryServiceConfig{
//	    Name: "Belgrade City Library",
//	})
//	loan, err := library.CheckoutBook("978-0-141-43951-8", "M003", 0)
//	receipt, err := library.ReturnBook(loan.LoanID)
package service
