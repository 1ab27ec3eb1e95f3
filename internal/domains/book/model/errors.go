package model

import "errors"

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrDuplicateTitle = errors.New("book with this title already exists for this author")
	ErrAuthorNotFound = errors.New("referenced author does not exist")
)

// ToErrorCode converts an error to an API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrDuplicateTitle):
		return "DUPLICATE_TITLE"
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code. A create or update
// pointing at a missing author is a caller mistake, not a missing resource,
// so it maps to 400.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return 404
	case errors.Is(err, ErrDuplicateTitle):
		return 400
	case errors.Is(err, ErrAuthorNotFound):
		return 400
	default:
		return 500
	}
}
