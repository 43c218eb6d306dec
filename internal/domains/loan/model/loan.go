package model

import (
	"time"

	bookmodel "library-api/internal/domains/book/model"
)

// Loan records one checkout of one book. Returned is tri-state at the
// storage level: nil means the flag was never set, which still counts as
// "not returned" for availability.
type Loan struct {
	ID            int64           `json:"id" db:"id"`
	Customer      string          `json:"customer" db:"customer"`
	CustomerEmail string          `json:"customer_email" db:"customer_email"`
	BookID        int64           `json:"book_id" db:"book_id"`
	Book          *bookmodel.Book `json:"book,omitempty"`
	LoanDate      time.Time       `json:"loan_date" db:"loan_date"`
	Returned      *bool           `json:"returned,omitempty" db:"returned"`
}

// IsReturned reports whether the returned flag was explicitly set to true.
func (l *Loan) IsReturned() bool {
	return l.Returned != nil && *l.Returned
}

// LoanFilter is a query-by-example filter over loans. ISBN constrains the
// nested book reference.
type LoanFilter struct {
	Customer string
	ISBN     string
}
