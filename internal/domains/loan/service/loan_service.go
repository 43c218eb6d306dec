package service

import (
	"context"
	"errors"
	"time"

	"library-api/internal/domains/book"
	bookservice "library-api/internal/domains/book/service"
	"library-api/internal/domains/loan"
	"library-api/internal/domains/loan/model"
	"library-api/internal/domains/loan/repository"
	"library-api/internal/shared"
)

type loanService struct {
	repo  repository.RepositoryInterface
	books bookservice.ServiceInterface
}

func NewLoanService(repo repository.RepositoryInterface, books bookservice.ServiceInterface) ServiceInterface {
	return &loanService{
		repo:  repo,
		books: books,
	}
}

func (s *loanService) Create(ctx context.Context, in CreateLoanInput) (*model.Loan, error) {
	b, err := s.books.GetByISBN(ctx, in.ISBN)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			return nil, loan.ErrBookNotFoundForISBN
		}
		return nil, err
	}

	// Advisory check; the storage-level partial unique index is what closes
	// the race between concurrent checkouts of the same book.
	open, err := s.repo.ExistsOpenLoanByBook(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, loan.ErrBookAlreadyLoaned
	}

	l := &model.Loan{
		Customer:      in.Customer,
		CustomerEmail: in.CustomerEmail,
		BookID:        b.ID,
		LoanDate:      today(),
	}

	created, err := s.repo.Create(ctx, l)
	if err != nil {
		return nil, err
	}

	created.Book = b
	return created, nil
}

func (s *loanService) GetByID(ctx context.Context, id int64) (*model.Loan, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *loanService) Return(ctx context.Context, id int64) (*model.Loan, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	returned := true
	l.Returned = &returned

	return s.repo.Update(ctx, l)
}

func (s *loanService) Update(ctx context.Context, l *model.Loan) (*model.Loan, error) {
	return s.repo.Update(ctx, l)
}

func (s *loanService) Find(ctx context.Context, filter model.LoanFilter, page shared.PageRequest) ([]model.Loan, int64, error) {
	return s.repo.Find(ctx, filter, page.Normalize())
}

func (s *loanService) FindByBook(ctx context.Context, bookID int64, page shared.PageRequest) ([]model.Loan, int64, error) {
	return s.repo.FindByBook(ctx, bookID, page.Normalize())
}

func (s *loanService) GetAllLateLoans(ctx context.Context, cutoff time.Time) ([]model.Loan, error) {
	return s.repo.FindAllLate(ctx, cutoff)
}

// today truncates now to the calendar date, matching the DATE column.
func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
