package repository

import (
	"context"
	"time"

	"library-api/internal/domains/loan/model"
	"library-api/internal/shared"
)

// RepositoryInterface is the storage contract for the loan ledger.
type RepositoryInterface interface {
	// Create persists a new loan. The partial unique index on open loans is
	// the authoritative availability guard; its violation surfaces as
	// loan.ErrBookAlreadyLoaned.
	Create(ctx context.Context, l *model.Loan) (*model.Loan, error)

	// GetByID returns the loan with its book hydrated, or loan.ErrLoanNotFound.
	GetByID(ctx context.Context, id int64) (*model.Loan, error)

	// Update persists the given loan snapshot unconditionally.
	Update(ctx context.Context, l *model.Loan) (*model.Loan, error)

	// ExistsOpenLoanByBook reports whether the book has a loan whose
	// returned flag is null or false.
	ExistsOpenLoanByBook(ctx context.Context, bookID int64) (bool, error)

	// Find returns a page of loans matching the query-by-example filter,
	// including the nested book isbn predicate.
	Find(ctx context.Context, filter model.LoanFilter, page shared.PageRequest) ([]model.Loan, int64, error)

	// FindByBook returns all loans, open or returned, referencing the book.
	FindByBook(ctx context.Context, bookID int64, page shared.PageRequest) ([]model.Loan, int64, error)

	// FindAllLate returns loans with loan_date strictly before the cutoff
	// and the returned flag explicitly false. A null flag does not count as
	// late, even though it counts as open.
	FindAllLate(ctx context.Context, cutoff time.Time) ([]model.Loan, error)
}
