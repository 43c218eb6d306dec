package service

import (
	"context"

	"library-api/internal/domains/book/model"
	"library-api/internal/shared"
)

// ServiceInterface is the book catalog's business contract.
type ServiceInterface interface {
	// Create persists a new book. Fails with book.ErrDuplicateISBN when the
	// isbn is already registered.
	Create(ctx context.Context, b *model.Book) (*model.Book, error)

	// GetByID returns the book or book.ErrBookNotFound.
	GetByID(ctx context.Context, id int64) (*model.Book, error)

	// GetByISBN resolves the business key into a book record, or returns
	// book.ErrBookNotFound.
	GetByISBN(ctx context.Context, isbn string) (*model.Book, error)

	// Update overwrites title and author. Fails with book.ErrMissingBookID
	// when the book carries no identity.
	Update(ctx context.Context, b *model.Book) (*model.Book, error)

	// Delete removes the book. Fails with book.ErrMissingBookID when the
	// book carries no identity.
	Delete(ctx context.Context, b *model.Book) error

	// Find returns a page of books matching the query-by-example filter.
	Find(ctx context.Context, filter model.BookFilter, page shared.PageRequest) ([]model.Book, int64, error)
}
