package service

import (
	"context"

	"library-api/internal/domains/book"
	"library-api/internal/domains/book/model"
	"library-api/internal/domains/book/repository"
	"library-api/internal/shared"
)

type bookService struct {
	repo repository.RepositoryInterface
}

func NewBookService(repo repository.RepositoryInterface) ServiceInterface {
	return &bookService{
		repo: repo,
	}
}

func (s *bookService) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	exists, err := s.repo.ExistsByISBN(ctx, b.ISBN)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, book.ErrDuplicateISBN
	}

	return s.repo.Create(ctx, b)
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) GetByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	return s.repo.GetByISBN(ctx, isbn)
}

func (s *bookService) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	if b == nil || b.ID == 0 {
		return nil, book.ErrMissingBookID
	}

	return s.repo.Update(ctx, b)
}

func (s *bookService) Delete(ctx context.Context, b *model.Book) error {
	if b == nil || b.ID == 0 {
		return book.ErrMissingBookID
	}

	return s.repo.Delete(ctx, b.ID)
}

func (s *bookService) Find(ctx context.Context, filter model.BookFilter, page shared.PageRequest) ([]model.Book, int64, error) {
	return s.repo.Find(ctx, filter, page.Normalize())
}
