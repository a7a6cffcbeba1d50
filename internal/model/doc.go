// Package model defines the domain entities of the library system.
//
// The model package contains the catalog and membership entities (Book,
// RegularMember, StudentMember), the Loan record that binds them, and the
// error definitions shared by every layer.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - Book: a catalog entry identified by ISBN with an availability flag
//   - Member: the closed set of membership variants, each with its own
//     concurrent-loan cap
//   - Loan: a checkout record with due-date tracking and late-fee computation
//
// # Validation
//
// Entity constructors validate their inputs and return a *Error of kind
// KindValidation carrying one FieldError per rejected field:
//
//	book, err := model.NewBook("978-1", "1984", "George Orwell", 1949, now)
//
// Entities also expose Validate methods so fields mutated after construction
// can be re-checked under the same rules.
//
// # Business Constants
//
// The package defines the lending constraints:
//
//	const (
//	    RegularMemberMaxBooks   = 3
//	    StudentMemberMaxBooks   = 5
//	    DefaultLoanDurationDays = 14
//	)
//
// # Error Types
//
// Kinded domain errors are defined in errors.go. Callers branch on the kind
// rather than matching message strings:
//
//	if model.IsKind(err, model.KindNotFound) { ... }
package model
