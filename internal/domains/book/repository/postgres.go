package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-api/internal/domains/book"
	"library-api/internal/domains/book/model"
	"library-api/internal/shared"
	"library-api/internal/shared/query"
	"library-api/pkg/cache"
	"library-api/pkg/database"
)

// Cache key constants
const (
	bookCacheKeyPrefix = "book:"
	bookISBNKeyPrefix  = "book:isbn:"
	cacheTTL           = 15 * time.Minute
)

var dialect = goqu.Dialect("postgres")

// postgresRepository implements the book storage contract with raw SQL over
// pgxpool plus a Redis read-through cache for point lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache) RepositoryInterface {
	return &postgresRepository{
		pool:  pool,
		cache: c,
	}
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	sqlStr := `
        INSERT INTO books (title, author, isbn)
        VALUES ($1, $2, $3)
        RETURNING id, title, author, isbn
    `

	var created model.Book
	err := r.pool.QueryRow(ctx, sqlStr, b.Title, b.Author, b.ISBN).Scan(
		&created.ID,
		&created.Title,
		&created.Author,
		&created.ISBN,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "isbn") {
				return nil, book.ErrDuplicateISBN
			}
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	cacheKey := fmt.Sprintf("%s%d", bookCacheKeyPrefix, id)

	var b model.Book
	if found, err := r.cache.Get(ctx, cacheKey, &b); err == nil && found {
		return &b, nil
	}

	sqlStr := `SELECT id, title, author, isbn FROM books WHERE id = $1`

	err := r.pool.QueryRow(ctx, sqlStr, id).Scan(&b.ID, &b.Title, &b.Author, &b.ISBN)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, &b, cacheTTL)

	return &b, nil
}

func (r *postgresRepository) GetByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	cacheKey := bookISBNKeyPrefix + isbn

	var b model.Book
	if found, err := r.cache.Get(ctx, cacheKey, &b); err == nil && found {
		return &b, nil
	}

	sqlStr := `SELECT id, title, author, isbn FROM books WHERE isbn = $1`

	err := r.pool.QueryRow(ctx, sqlStr, isbn).Scan(&b.ID, &b.Title, &b.Author, &b.ISBN)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by isbn: %w", err)
	}

	// Cache both by isbn and by id
	_ = r.cache.Set(ctx, cacheKey, &b, cacheTTL)
	_ = r.cache.Set(ctx, fmt.Sprintf("%s%d", bookCacheKeyPrefix, b.ID), &b, cacheTTL)

	return &b, nil
}

func (r *postgresRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	sqlStr := `SELECT EXISTS(SELECT 1 FROM books WHERE isbn = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, sqlStr, isbn).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check isbn existence: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	sqlStr := `
        UPDATE books
        SET title = $1, author = $2
        WHERE id = $3
        RETURNING id, title, author, isbn
    `

	var updated model.Book
	err := r.pool.QueryRow(ctx, sqlStr, b.Title, b.Author, b.ID).Scan(
		&updated.ID,
		&updated.Title,
		&updated.Author,
		&updated.ISBN,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	r.invalidateBookCache(ctx, updated.ID, updated.ISBN)

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	// The isbn is needed for cache invalidation; read and delete run in one
	// transaction so the row cannot change in between.
	isbn, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (string, error) {
		var isbn string
		if err := tx.QueryRow(ctx, `SELECT isbn FROM books WHERE id = $1`, id).Scan(&isbn); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return "", book.ErrBookNotFound
			}
			return "", fmt.Errorf("failed to load book for delete: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
		if err != nil {
			return "", fmt.Errorf("failed to delete book: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return "", book.ErrBookNotFound
		}

		return isbn, nil
	})
	if err != nil {
		return err
	}

	r.invalidateBookCache(ctx, id, isbn)

	return nil
}

func (r *postgresRepository) Find(ctx context.Context, filter model.BookFilter, page shared.PageRequest) ([]model.Book, int64, error) {
	f := query.NewFilter().
		Contains("title", filter.Title).
		Contains("author", filter.Author).
		Contains("isbn", filter.ISBN)

	ds := f.Apply(dialect.From("books").Select("id", "title", "author", "isbn")).
		Order(goqu.I("id").Asc()).
		Limit(uint(page.Limit())).
		Offset(uint(page.Offset()))

	sqlStr, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build book query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN); err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating books: %w", err)
	}

	countSQL, countArgs, err := f.Apply(dialect.From("books").Select(goqu.COUNT("*"))).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build book count query: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	return books, total, nil
}

func (r *postgresRepository) invalidateBookCache(ctx context.Context, id int64, isbn string) {
	_ = r.cache.Delete(ctx,
		fmt.Sprintf("%s%d", bookCacheKeyPrefix, id),
		bookISBNKeyPrefix+isbn,
	)
}
