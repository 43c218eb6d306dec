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

	bookmodel "library-api/internal/domains/book/model"
	"library-api/internal/domains/loan"
	"library-api/internal/domains/loan/model"
	"library-api/internal/shared"
	"library-api/internal/shared/query"
)

var dialect = goqu.Dialect("postgres")

// loanColumns are the joined columns every loan read selects, loan first,
// book second.
var loanColumns = []interface{}{
	"l.id", "l.customer", "l.customer_email", "l.book_id", "l.loan_date", "l.returned",
	"b.id", "b.title", "b.author", "b.isbn",
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{
		pool: pool,
	}
}

func (r *postgresRepository) Create(ctx context.Context, l *model.Loan) (*model.Loan, error) {
	sqlStr := `
        INSERT INTO loans (customer, customer_email, book_id, loan_date)
        VALUES ($1, $2, $3, $4)
        RETURNING id, customer, customer_email, book_id, loan_date, returned
    `

	var created model.Loan
	err := r.pool.QueryRow(ctx, sqlStr, l.Customer, l.CustomerEmail, l.BookID, l.LoanDate).Scan(
		&created.ID,
		&created.Customer,
		&created.CustomerEmail,
		&created.BookID,
		&created.LoanDate,
		&created.Returned,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Violation of the one-open-loan-per-book partial index: a
			// concurrent checkout won the race.
			if strings.Contains(pgErr.ConstraintName, "one_open") {
				return nil, loan.ErrBookAlreadyLoaned
			}
		}
		return nil, fmt.Errorf("failed to create loan: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Loan, error) {
	sqlStr := `
        SELECT l.id, l.customer, l.customer_email, l.book_id, l.loan_date, l.returned,
               b.id, b.title, b.author, b.isbn
        FROM loans l
        JOIN books b ON b.id = l.book_id
        WHERE l.id = $1
    `

	l, err := scanLoan(r.pool.QueryRow(ctx, sqlStr, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, loan.ErrLoanNotFound
		}
		return nil, fmt.Errorf("failed to get loan by id: %w", err)
	}

	return l, nil
}

func (r *postgresRepository) Update(ctx context.Context, l *model.Loan) (*model.Loan, error) {
	sqlStr := `
        UPDATE loans
        SET customer = $1, customer_email = $2, book_id = $3, loan_date = $4, returned = $5
        WHERE id = $6
        RETURNING id, customer, customer_email, book_id, loan_date, returned
    `

	var updated model.Loan
	err := r.pool.QueryRow(ctx, sqlStr,
		l.Customer, l.CustomerEmail, l.BookID, l.LoanDate, l.Returned, l.ID,
	).Scan(
		&updated.ID,
		&updated.Customer,
		&updated.CustomerEmail,
		&updated.BookID,
		&updated.LoanDate,
		&updated.Returned,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, loan.ErrLoanNotFound
		}
		return nil, fmt.Errorf("failed to update loan: %w", err)
	}

	updated.Book = l.Book

	return &updated, nil
}

func (r *postgresRepository) ExistsOpenLoanByBook(ctx context.Context, bookID int64) (bool, error) {
	// IS NOT TRUE covers both explicit false and never-set flags.
	sqlStr := `SELECT EXISTS(SELECT 1 FROM loans WHERE book_id = $1 AND returned IS NOT TRUE)`

	var exists bool
	if err := r.pool.QueryRow(ctx, sqlStr, bookID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check open loan: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) Find(ctx context.Context, filter model.LoanFilter, page shared.PageRequest) ([]model.Loan, int64, error) {
	f := query.NewFilter().
		Contains("l.customer", filter.Customer).
		Contains("b.isbn", filter.ISBN)

	return r.findPage(ctx, f, page)
}

func (r *postgresRepository) FindByBook(ctx context.Context, bookID int64, page shared.PageRequest) ([]model.Loan, int64, error) {
	f := query.NewFilter().Eq("l.book_id", bookID)

	return r.findPage(ctx, f, page)
}

func (r *postgresRepository) FindAllLate(ctx context.Context, cutoff time.Time) ([]model.Loan, error) {
	// Only an explicit false counts as late; a null returned flag does not,
	// even though it blocks a new checkout.
	sqlStr := `
        SELECT l.id, l.customer, l.customer_email, l.book_id, l.loan_date, l.returned,
               b.id, b.title, b.author, b.isbn
        FROM loans l
        JOIN books b ON b.id = l.book_id
        WHERE l.loan_date < $1 AND l.returned = FALSE
    `

	rows, err := r.pool.Query(ctx, sqlStr, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query late loans: %w", err)
	}
	defer rows.Close()

	return collectLoans(rows)
}

// findPage runs the joined page and count queries for a composed filter.
func (r *postgresRepository) findPage(ctx context.Context, f *query.Filter, page shared.PageRequest) ([]model.Loan, int64, error) {
	base := dialect.From(goqu.T("loans").As("l")).
		Join(goqu.T("books").As("b"), goqu.On(goqu.I("b.id").Eq(goqu.I("l.book_id"))))

	ds := f.Apply(base.Select(loanColumns...)).
		Order(goqu.I("l.id").Asc()).
		Limit(uint(page.Limit())).
		Offset(uint(page.Offset()))

	sqlStr, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build loan query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query loans: %w", err)
	}
	defer rows.Close()

	loans, err := collectLoans(rows)
	if err != nil {
		return nil, 0, err
	}

	countSQL, countArgs, err := f.Apply(base.Select(goqu.COUNT("*"))).Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build loan count query: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count loans: %w", err)
	}

	return loans, total, nil
}

func scanLoan(row pgx.Row) (*model.Loan, error) {
	var l model.Loan
	var b bookmodel.Book

	err := row.Scan(
		&l.ID, &l.Customer, &l.CustomerEmail, &l.BookID, &l.LoanDate, &l.Returned,
		&b.ID, &b.Title, &b.Author, &b.ISBN,
	)
	if err != nil {
		return nil, err
	}

	l.Book = &b
	return &l, nil
}

func collectLoans(rows pgx.Rows) ([]model.Loan, error) {
	var loans []model.Loan
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, *l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loans: %w", err)
	}

	return loans, nil
}
