package repository

import (
	"context"

	"library-api/internal/domains/book/model"
	"library-api/internal/shared"
)

// RepositoryInterface is the storage contract for the book catalog. Any
// engine providing these operations is substitutable.
type RepositoryInterface interface {
	Create(ctx context.Context, b *model.Book) (*model.Book, error)
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	GetByISBN(ctx context.Context, isbn string) (*model.Book, error)
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
	Update(ctx context.Context, b *model.Book) (*model.Book, error)
	Delete(ctx context.Context, id int64) error
	Find(ctx context.Context, filter model.BookFilter, page shared.PageRequest) ([]model.Book, int64, error)
}
