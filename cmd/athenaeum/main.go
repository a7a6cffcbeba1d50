// Command athenaeum runs a scripted demonstration of the library core: it
// seeds a sample catalog and membership, walks the lending workflow, and
// prints the reports. It is a caller of the service API, not part of it.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/athenaeum-project/athenaeum/internal/model"
	"github.com/athenaeum-project/athenaeum/internal/service"
)

var (
	flagTop     int
	flagJSON    bool
	flagVerbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "athenaeum",
		Short: "Library lending core demo",
		Long: "athenaeum seeds a sample library and walks the full lending " +
			"workflow: catalog management, membership, checkouts, returns, and reports.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
	rootCmd.Flags().IntVar(&flagTop, "top", 3, "size of the popularity ranking")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "print statistics as JSON instead of text")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDemo() error {
	// Initialize structured logging
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	library, err := service.NewLibraryService(service.LibraryServiceConfig{
		Name:   "Belgrade City Library",
		Logger: logger,
	})
	if err != nil {
		return err
	}

	if err := seed(library); err != nil {
		return err
	}

	printStatistics(library)

	fmt.Println("=== CHECKING OUT BOOKS ===")
	checkouts := []struct{ isbn, memberID string }{
		{"978-0-545-01022-1", "M001"}, // Harry Potter -> Marko
		{"978-0-061-96436-7", "M001"}, // To Kill a Mockingbird -> Marko
		{"978-0-141-43951-8", "M003"}, // 1984 -> Ana
		{"978-0-743-27356-5", "M002"}, // The Great Gatsby -> Jovana
	}
	var firstLoan *model.Loan
	for _, c := range checkouts {
		loan, err := library.CheckoutBook(c.isbn, c.memberID, 0)
		if err != nil {
			return err
		}
		if firstLoan == nil {
			firstLoan = loan
		}
		fmt.Printf("Checked out: %s -> %s\n", loan.Book.Title, loan.Member.Profile().Name)
	}

	fmt.Println("\n=== AVAILABLE BOOKS ===")
	for _, book := range library.AvailableBooks() {
		fmt.Println(book)
	}

	fmt.Println("\n=== ACTIVE LOANS ===")
	for _, loan := range library.ActiveLoans() {
		fmt.Println(loan.StatusLine(loan.LoanDate))
	}

	fmt.Println("\n=== SEARCH: Books containing 'the' ===")
	for _, book := range library.SearchBooksByTitle("the") {
		fmt.Println(book)
	}

	fmt.Println("\n=== RETURNING BOOKS ===")
	receipt, err := library.ReturnBook(firstLoan.LoanID)
	if err != nil {
		return err
	}
	fmt.Printf("Returned: %s\n", receipt.Loan.Book.Title)
	if receipt.LateFee.IsPositive() {
		fmt.Printf("Late fee: %s\n", receipt.LateFee.StringFixed(2))
	}

	printStatistics(library)

	fmt.Printf("\n=== Top %d Most Popular Books ===\n", flagTop)
	for _, row := range library.MostPopularBooks(flagTop) {
		fmt.Printf("%s - Loaned %d times\n", row.Book.Title, row.TimesLoaned)
	}

	// The over-limit checkout is expected to fail; the demo shows the error
	// kind a caller gets back.
	fmt.Println("\n=== TESTING ERROR HANDLING ===")
	if _, err := library.CheckoutBook("978-0-141-43951-8", "M004", 0); err != nil {
		fmt.Printf("Expected error (%v kind): %v\n", model.KindOf(err), err)
	}

	fmt.Println("\n=== LOANS BY MEMBER (Marko) ===")
	for _, loan := range library.LoansByMember("M001") {
		fmt.Println(loan.StatusLine(loan.LoanDate))
	}

	return nil
}

// seed fills the library with the demo catalog and membership.
func seed(library *service.LibraryService) error {
	now := library.Clock().Now()

	books := []struct {
		isbn, title, author string
		year                int
	}{
		{"978-0-545-01022-1", "Harry Potter and the Philosopher's Stone", "J.K. Rowling", 1997},
		{"978-0-061-96436-7", "To Kill a Mockingbird", "Harper Lee", 1960},
		{"978-0-141-43951-8", "1984", "George Orwell", 1949},
		{"978-0-743-27356-5", "The Great Gatsby", "F. Scott Fitzgerald", 1925},
		{"978-0-316-76948-0", "The Catcher in the Rye", "J.D. Salinger", 1951},
	}
	for _, b := range books {
		book, err := model.NewBook(b.isbn, b.title, b.author, b.year, now)
		if err != nil {
			return err
		}
		if err := library.AddBook(book); err != nil {
			return err
		}
	}

	students := []struct {
		id, name, email, studentID, university string
	}{
		{"M001", "Marko Petrovic", "marko@student.rs", "S12345", "University of Belgrade"},
		{"M002", "Jovana Nikolic", "jovana@student.rs", "S12346", "University of Novi Sad"},
	}
	for _, m := range students {
		member, err := model.NewStudentMember(m.id, m.name, m.email, m.studentID, m.university, now)
		if err != nil {
			return err
		}
		if err := library.AddMember(member); err != nil {
			return err
		}
	}

	regulars := []struct {
		id, name, email, phone string
	}{
		{"M003", "Ana Jovanovic", "ana@email.com", "+381601234567"},
		{"M004", "Nikola Djordjevic", "nikola@email.com", "+381602345678"},
	}
	for _, m := range regulars {
		member, err := model.NewRegularMember(m.id, m.name, m.email, m.phone, now)
		if err != nil {
			return err
		}
		if err := library.AddMember(member); err != nil {
			return err
		}
	}

	return nil
}

func printStatistics(library *service.LibraryService) {
	stats := library.Statistics()
	if flagJSON {
		out, err := stats.JSON()
		if err != nil {
			slog.Error("failed to render statistics", slog.String("error", err.Error()))
			return
		}
		fmt.Println(string(out))
		return
	}
	fmt.Println()
	fmt.Println(stats.Render())
	fmt.Println()
}
