package service

import (
	"context"
	"time"

	"library-api/internal/domains/loan/model"
	"library-api/internal/shared"
)

// CreateLoanInput carries a checkout request. The book is referenced by its
// business key.
type CreateLoanInput struct {
	Customer      string
	CustomerEmail string
	ISBN          string
}

// ServiceInterface is the loan ledger's business contract.
type ServiceInterface interface {
	// Create resolves the isbn against the catalog and checks availability
	// before committing the loan. Fails with loan.ErrBookNotFoundForISBN or
	// loan.ErrBookAlreadyLoaned; nothing is written on a rejection.
	Create(ctx context.Context, in CreateLoanInput) (*model.Loan, error)

	// GetByID returns the loan or loan.ErrLoanNotFound.
	GetByID(ctx context.Context, id int64) (*model.Loan, error)

	// Return marks the loan returned. The caller-facing flag transition is
	// false to true; business rules are not re-validated.
	Return(ctx context.Context, id int64) (*model.Loan, error)

	// Update persists the given loan snapshot without re-validation.
	Update(ctx context.Context, l *model.Loan) (*model.Loan, error)

	// Find returns a page of loans matching the query-by-example filter.
	Find(ctx context.Context, filter model.LoanFilter, page shared.PageRequest) ([]model.Loan, int64, error)

	// FindByBook returns all loans referencing the book, open or returned.
	FindByBook(ctx context.Context, bookID int64, page shared.PageRequest) ([]model.Loan, int64, error)

	// GetAllLateLoans returns loans with a loan date strictly before the
	// cutoff and a returned flag explicitly false.
	GetAllLateLoans(ctx context.Context, cutoff time.Time) ([]model.Loan, error)
}
