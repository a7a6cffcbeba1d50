package service

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athenaeum-project/athenaeum/internal/clock"
	"github.com/athenaeum-project/athenaeum/internal/model"
	"github.com/athenaeum-project/athenaeum/internal/testing/fixtures"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// newTestLibrary builds an empty library on a frozen clock with discarded
// logs.
func newTestLibrary(t *testing.T) (*LibraryService, *clock.Frozen) {
	t.Helper()

	frozen := clock.NewFrozen(testNow)
	library, err := NewLibraryService(LibraryServiceConfig{
		Name:   "Test Library",
		Clock:  frozen,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return library, frozen
}

// ============================================================================
// Construction Tests
// ============================================================================

func TestNewLibraryService_RequiresName(t *testing.T) {
	t.Parallel()

	_, err := NewLibraryService(LibraryServiceConfig{Name: "   "})
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindValidation))
}

func TestNewLibraryService_Defaults(t *testing.T) {
	t.Parallel()

	library, err := NewLibraryService(LibraryServiceConfig{Name: "City Library"})
	require.NoError(t, err)
	assert.Equal(t, "City Library", library.Name())
	assert.NotNil(t, library.Clock())
}

// ============================================================================
// Catalog Tests
// ============================================================================

func TestAddBook_DuplicateISBN(t *testing.T) {
	t.Parallel()
	library, _ := newTestLibrary(t)

	book := fixtures.Book(t, testNow)
	require.NoError(t, library.AddBook(book))

	err := library.AddBook(book)
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindConflict))
	assert.Len(t, library.AllBooks(), 1)
}

func TestAddBook_Nil(t *testing.T) {
	t.Parallel()
	library, _ := newTestLibrary(t)

	err := library.AddBook(nil)
	assert.True(t, model.IsKind(err, model.KindValidation))
}

func TestAddBook_StoresACopy(t *testing.T) {
	t.Parallel()
	library, _ := newTestLibrary(t)

	book := fixtures.Book(t, testNow)
	require.NoError(t, library.AddBook(book))

	// Mutating the caller's value must not reach the catalog.
	book.Title = "Defaced"
	stored, err := library.BookByISBN(book.ISBN)
	require.NoError(t, err)
	assert.NotEqual(t, "Defaced", stored.Title)
}

func TestRemoveBook(t *testing.T) {
	t.Parallel()
	library, _ := newTestLibrary(t)

	book := fixtures.Book(t, testNow)
	require.NoError(t, library.AddBook(book))
	require.NoError(t, library.RemoveBook(book.ISBN))
	assert.Empty(t, library.AllBooks())

	err := library.RemoveBook(book.ISBN)
	assert.True(t, model.IsKind(err, model.KindNotFound))
}

func TestRemoveBook_OnLoan(t *testing.T) {
	t.Parallel()
	library, _ := newTestLibrary(t)

	book := fixtures.Book(t, testNow)
	member := fixtures.StudentMember(t, testNow)
	require.NoError(t, library.AddBook(book))
	require.NoError(t, library.AddMember(member))
	_, err := library.CheckoutBook(book.ISBN, member.MemberID, 0)
	require.NoError(t, err)

	err = library.RemoveBook(book.ISBN)
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindInvalidState))
	assert.Len(t, library.AllBooks(), 1, "failed removal must leave the catalog unchanged")
}

func TestSearchBooks_CaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()
	library, _ := newTestLibrary(t)

	gatsby := fixtures.Book(t, testNow, func(o *fixtures.BookOpts) {
		o.Title = "The Great Gatsby"
		o.Author = "F. Scott Fitzgerald"
	})
	mockingbird := fixtures.Book(t, testNow, func(o *fixtures.BookOpts) {
		o.Title = "To Kill a Mockingbird"
		o.Author = "Harper Lee"
	})
	require.NoError(t, library.AddBook(gatsby))
	require.NoError(t, library.AddBook(mockingbird))

	byTitle := library.SearchBooksByTitle("GREAT")
	require.Len(t, byTitle, 1)
	assert.Equal(t, gatsby.ISBN, byTitle[0].ISBN)

	byAuthor := library.SearchBooksByAuthor("lee")
	require.Len(t, byAuthor, 1)
	assert.Equal(t, mockingbird.ISBN, byAuthor[0].ISBN)

	assert.Empty(t, library.SearchBooksByTitle("nonexistent"))
}

func TestAvailableBooks_FiltersOnLoan(t *testing.T) {
	t.Parallel()
	library, _ := newTestLibrary(t)

	first := fixtures.Book(t, testNow)
	second := fixtures.Book(t, testNow)
	member := fixtures.StudentMember(t, testNow)
	require.NoError(t, library.AddBook(first))
	require.NoError(t, library.AddBook(second))
	require.NoError(t, library.AddMember(member))

	_, err := library.CheckoutBook(first.ISBN, member.MemberID, 0)
	require.NoError(t, err)

	available := library.AvailableBooks()
	require.Len(t, available, 1)
	assert.Equal(t, second.ISBN, available[0].ISBN)
}

func TestAllBooks_SnapshotIsIndependent(t *testing.T) {
	t.Parallel()
	library, _ := newTestLibrary(t)

	require.NoError(t, library.AddBook(fixtures.Book(t, testNow)))

	snapshot := library.AllBooks()
	snapshot[0].Available = false

	fresh := library.AllBooks()
	assert.True(t, fresh[0].Available, "mutating a snapshot must not reach the catalog")
}

// ============================================================================
// Membership Tests
// ============================================================================

func TestAddMember_DuplicateID(t *testing.T) {
	t.Parallel()
	library, _ := newTestLibrary(t)

	student := fixtures.StudentMember(t, testNow, func(o *fixtures.MemberOpts) { o.MemberID = "M001" })
	regular := fixtures.RegularMember(t, testNow, func(o *fixtures.MemberOpts) { o.MemberID = "M001" })

	require.NoError(t, library.AddMember(student))
	err := library.AddMember(regular)
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindConflict))
	assert.Len(t, library.AllMembers(), 1)
}

func TestMemberByID(t *testing.T) {
	t.Parallel()
	library, _ := newTestLibrary(t)

	member := fixtures.RegularMember(t, testNow)
	require.NoError(t, library.AddMember(member))

	found, err := library.MemberByID(member.MemberID)
	require.NoError(t, err)
	assert.Equal(t, member.Name, found.Profile().Name)

	_, err = library.MemberByID("missing")
	assert.True(t, model.IsKind(err, model.KindNotFound))
}

func TestRemoveMember_WithActiveLoanThenAfterReturn(t *testing.T) {
	t.Parallel()
	library, _ := newTestLibrary(t)

	book := fixtures.Book(t, testNow)
	member := fixtures.RegularMember(t, testNow)
	require.NoError(t, library.AddBook(book))
	require.NoError(t, library.AddMember(member))

	loan, err := library.CheckoutBook(book.ISBN, member.MemberID, 0)
	require.NoError(t, err)

	err = library.RemoveMember(member.MemberID)
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindInvalidState))
	assert.Len(t, library.AllMembers(), 1)

	_, err = library.ReturnBook(loan.LoanID)
	require.NoError(t, err)

	require.NoError(t, library.RemoveMember(member.MemberID))
	assert.Empty(t, library.AllMembers())

	// The loan history survives the membership.
	assert.Len(t, library.AllLoans(), 1)
}
