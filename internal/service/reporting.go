package service

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/athenaeum-project/athenaeum/internal/model"
)

// DefaultTopBooks is the ranking size used when a popularity query does not
// specify one.
const DefaultTopBooks = 5

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Statistics is a point-in-time report over the library's collections. Every
// count is recomputed on request; nothing is cached.
type Statistics struct {
	LibraryName    string `json:"library_name"`
	TotalBooks     int    `json:"total_books"`
	AvailableBooks int    `json:"available_books"`
	BooksOnLoan    int    `json:"books_on_loan"`
	TotalMembers   int    `json:"total_members"`
	ActiveLoans    int    `json:"active_loans"`
	OverdueLoans   int    `json:"overdue_loans"`
}

// Statistics derives the current report from the collections.
func (s *LibraryService) Statistics() Statistics {
	now := s.clock.Now()

	stats := Statistics{
		LibraryName:  s.name,
		TotalBooks:   len(s.books),
		TotalMembers: len(s.members),
	}
	for _, b := range s.books {
		if b.Available {
			stats.AvailableBooks++
		} else {
			stats.BooksOnLoan++
		}
	}
	for _, l := range s.loans {
		if !l.Returned {
			stats.ActiveLoans++
		}
		if l.IsOverdue(now) {
			stats.OverdueLoans++
		}
	}
	return stats
}

// Render returns the human-readable statistics block. The format is for
// console consumption only and carries no compatibility promise.
func (st Statistics) Render() string {
	var b strings.Builder
	rule := strings.Repeat("=", 50)

	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "Library: %s\n", st.LibraryName)
	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "Total Books: %d\n", st.TotalBooks)
	fmt.Fprintf(&b, "Available Books: %d\n", st.AvailableBooks)
	fmt.Fprintf(&b, "Books on Loan: %d\n", st.BooksOnLoan)
	fmt.Fprintf(&b, "Total Members: %d\n", st.TotalMembers)
	fmt.Fprintf(&b, "Active Loans: %d\n", st.ActiveLoans)
	fmt.Fprintf(&b, "Overdue Loans: %d\n", st.OverdueLoans)
	fmt.Fprintf(&b, "%s", rule)
	return b.String()
}

// JSON serializes the report for structured consumers.
func (st Statistics) JSON() ([]byte, error) {
	return json.Marshal(st)
}

// LogStatistics emits the current report through the service logger.
func (s *LibraryService) LogStatistics() {
	st := s.Statistics()
	s.logger.Info("library statistics",
		slog.String("library", st.LibraryName),
		slog.Int("total_books", st.TotalBooks),
		slog.Int("available_books", st.AvailableBooks),
		slog.Int("books_on_loan", st.BooksOnLoan),
		slog.Int("total_members", st.TotalMembers),
		slog.Int("active_loans", st.ActiveLoans),
		slog.Int("overdue_loans", st.OverdueLoans),
	)
}

// BookPopularity is one row of the popularity ranking.
type BookPopularity struct {
	Book        model.Book `json:"book"`
	TimesLoaned int        `json:"times_loaned"`
}

// MostPopularBooks groups the loan history by ISBN and returns the topN most
// loaned books, most loaned first. Ties keep first-loan order. Books removed
// from the catalog still rank, since the history keeps its book references.
// A non-positive topN selects DefaultTopBooks.
func (s *LibraryService) MostPopularBooks(topN int) []BookPopularity {
	if topN <= 0 {
		topN = DefaultTopBooks
	}

	byISBN := make(map[string]int)
	var ranking []BookPopularity
	for _, l := range s.loans {
		isbn := l.Book.ISBN
		if i, seen := byISBN[isbn]; seen {
			ranking[i].TimesLoaned++
			continue
		}
		byISBN[isbn] = len(ranking)
		ranking = append(ranking, BookPopularity{Book: *l.Book, TimesLoaned: 1})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].TimesLoaned > ranking[j].TimesLoaned
	})

	if len(ranking) > topN {
		ranking = ranking[:topN]
	}
	return ranking
}
