package loan

import "errors"

var (
	ErrLoanNotFound = errors.New("loan not found")

	// ErrBookAlreadyLoaned rejects a checkout while the book has an open
	// loan (returned flag false or never set).
	ErrBookAlreadyLoaned = errors.New("Book already loaned")

	// ErrBookNotFoundForISBN rejects a checkout whose isbn resolves to no
	// catalog record.
	ErrBookNotFoundForISBN = errors.New("Book not found for passed isbn")
)

// ToErrorCode converts an error to an API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrLoanNotFound):
		return "LOAN_NOT_FOUND"
	case errors.Is(err, ErrBookAlreadyLoaned):
		return "BOOK_ALREADY_LOANED"
	case errors.Is(err, ErrBookNotFoundForISBN):
		return "BOOK_NOT_FOUND_FOR_ISBN"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code. Business rule
// violations map to 400, absence to 404.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrLoanNotFound):
		return 404
	case errors.Is(err, ErrBookAlreadyLoaned), errors.Is(err, ErrBookNotFoundForISBN):
		return 400
	default:
		return 500
	}
}
