package service

import (
	"log/slog"
	"strings"

	"github.com/athenaeum-project/athenaeum/internal/clock"
	"github.com/athenaeum-project/athenaeum/internal/model"
)

// LibraryService is the aggregate root of the library system. It owns the
// catalog, the membership, and the loan history, and is the only place where
// cross-entity invariants are checked and entity state is mutated.
//
// Collections are ordered slices: listing order is insertion order, and the
// popularity ranking's tie-break depends on loan-history order. The service
// is not safe for concurrent use; it models a single-user session.
type LibraryService struct {
	name   string
	clock  clock.Clock
	logger *slog.Logger

	books   []*model.Book
	members []model.Member
	loans   []*model.Loan // append-only history, never shrinks
}

// LibraryServiceConfig holds configuration for the library service
type LibraryServiceConfig struct {
	Name   string
	Clock  clock.Clock  // defaults to the system clock
	Logger *slog.Logger // defaults to slog.Default()
}

// NewLibraryService creates an empty library. The name is required.
func NewLibraryService(cfg LibraryServiceConfig) (*LibraryService, error) {
	if strings.TrimSpace(cfg.Name) == "" {
		return nil, model.NewValidationError([]model.FieldError{
			{Field: "name", Message: "library name cannot be empty"},
		})
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.System()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &LibraryService{
		name:   cfg.Name,
		clock:  cfg.Clock,
		logger: cfg.Logger,
	}, nil
}

// Name returns the library's display name.
func (s *LibraryService) Name() string { return s.name }

// Clock returns the service's time source, so callers constructing entities
// share the library's notion of now.
func (s *LibraryService) Clock() clock.Clock { return s.clock }

// ==================== Catalog ====================

// AddBook inserts a book into the catalog. The service stores its own copy,
// so later mutation of the caller's value has no effect.
func (s *LibraryService) AddBook(book *model.Book) error {
	if book == nil {
		return model.NewValidationError([]model.FieldError{
			{Field: "book", Message: "book is required"},
		})
	}
	if s.findBook(book.ISBN) != nil {
		return errBookExists(book.ISBN)
	}

	owned := *book
	s.books = append(s.books, &owned)

	s.logger.Info("book added",
		slog.String("isbn", owned.ISBN),
		slog.String("title", owned.Title),
	)
	return nil
}

// RemoveBook deletes a catalog entry. Books on loan cannot be removed.
func (s *LibraryService) RemoveBook(isbn string) error {
	book := s.findBook(isbn)
	if book == nil {
		return errBookNotFound(isbn)
	}
	if !book.Available {
		return errBookOnLoan()
	}

	for i, b := range s.books {
		if b == book {
			s.books = append(s.books[:i], s.books[i+1:]...)
			break
		}
	}

	s.logger.Info("book removed",
		slog.String("isbn", book.ISBN),
		slog.String("title", book.Title),
	)
	return nil
}

// AllBooks returns a snapshot of the catalog in insertion order.
func (s *LibraryService) AllBooks() []*model.Book {
	return s.copyBooks(func(*model.Book) bool { return true })
}

// AvailableBooks returns a snapshot of the books not currently on loan.
func (s *LibraryService) AvailableBooks() []*model.Book {
	return s.copyBooks(func(b *model.Book) bool { return b.Available })
}

// SearchBooksByTitle returns the books whose title contains the query,
// case-insensitively.
func (s *LibraryService) SearchBooksByTitle(title string) []*model.Book {
	query := strings.ToLower(title)
	return s.copyBooks(func(b *model.Book) bool {
		return strings.Contains(strings.ToLower(b.Title), query)
	})
}

// SearchBooksByAuthor returns the books whose author contains the query,
// case-insensitively.
func (s *LibraryService) SearchBooksByAuthor(author string) []*model.Book {
	query := strings.ToLower(author)
	return s.copyBooks(func(b *model.Book) bool {
		return strings.Contains(strings.ToLower(b.Author), query)
	})
}

// BookByISBN returns a copy of the catalog entry with the given ISBN.
func (s *LibraryService) BookByISBN(isbn string) (*model.Book, error) {
	book := s.findBook(isbn)
	if book == nil {
		return nil, errBookNotFound(isbn)
	}
	bookCopy := *book
	return &bookCopy, nil
}

// findBook returns the library-owned entry for isbn, nil when absent.
func (s *LibraryService) findBook(isbn string) *model.Book {
	for _, b := range s.books {
		if b.ISBN == isbn {
			return b
		}
	}
	return nil
}

func (s *LibraryService) copyBooks(keep func(*model.Book) bool) []*model.Book {
	result := make([]*model.Book, 0, len(s.books))
	for _, b := range s.books {
		if keep(b) {
			bookCopy := *b
			result = append(result, &bookCopy)
		}
	}
	return result
}

// ==================== Membership ====================

// AddMember registers a membership variant. The service stores its own copy.
func (s *LibraryService) AddMember(member model.Member) error {
	if member == nil {
		return model.NewValidationError([]model.FieldError{
			{Field: "member", Message: "member is required"},
		})
	}
	memberID := member.Profile().MemberID
	if s.findMember(memberID) != nil {
		return errMemberExists(memberID)
	}

	s.members = append(s.members, model.CloneMember(member))

	s.logger.Info("member added",
		slog.String("member_id", memberID),
		slog.String("name", member.Profile().Name),
		slog.String("member_type", member.MemberType()),
	)
	return nil
}

// RemoveMember deletes a membership. Members with unreturned loans cannot be
// removed; their loan history stays in the ledger either way.
func (s *LibraryService) RemoveMember(memberID string) error {
	member := s.findMember(memberID)
	if member == nil {
		return errMemberNotFound(memberID)
	}
	if s.activeLoanCount(memberID) > 0 {
		return errMemberHasActiveLoans()
	}

	for i, m := range s.members {
		if m == member {
			s.members = append(s.members[:i], s.members[i+1:]...)
			break
		}
	}

	s.logger.Info("member removed",
		slog.String("member_id", memberID),
		slog.String("name", member.Profile().Name),
	)
	return nil
}

// AllMembers returns a snapshot of the membership in insertion order.
func (s *LibraryService) AllMembers() []model.Member {
	result := make([]model.Member, 0, len(s.members))
	for _, m := range s.members {
		result = append(result, model.CloneMember(m))
	}
	return result
}

// MemberByID returns a copy of the member with the given ID.
func (s *LibraryService) MemberByID(memberID string) (model.Member, error) {
	member := s.findMember(memberID)
	if member == nil {
		return nil, errMemberNotFound(memberID)
	}
	return model.CloneMember(member), nil
}

// findMember returns the library-owned member for memberID, nil when absent.
func (s *LibraryService) findMember(memberID string) model.Member {
	for _, m := range s.members {
		if m.Profile().MemberID == memberID {
			return m
		}
	}
	return nil
}
