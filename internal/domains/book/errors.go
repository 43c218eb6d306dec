package book

import "errors"

var (
	// Business rule errors
	ErrBookNotFound  = errors.New("book not found")
	ErrDuplicateISBN = errors.New("isbn already registered")

	// ErrMissingBookID signals a caller programming error: update and
	// delete require a persisted identity.
	ErrMissingBookID = errors.New("Book id cant be null.")
)

// ToErrorCode converts an error to an API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrDuplicateISBN):
		return "DUPLICATE_ISBN"
	case errors.Is(err, ErrMissingBookID):
		return "MISSING_BOOK_ID"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return 404
	case errors.Is(err, ErrDuplicateISBN):
		return 409
	case errors.Is(err, ErrMissingBookID):
		return 400
	default:
		return 500
	}
}
