package app

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned for a wrong email or password.
	// One message for both so responses cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrForbidden means the caller is authenticated but not permitted,
	// distinct from the unauthenticated case handled at the router.
	ErrForbidden = errors.New("forbidden")

	ErrUserNotFound    = errors.New("user not found")
	ErrBookNotFound    = errors.New("book not found")
	ErrReviewNotFound  = errors.New("review not found")
	ErrStatusNotFound  = errors.New("book status not found")
	ErrContactNotFound = errors.New("contact message not found")

	// ErrNoBooksMatched signals an empty search result. Callers branch on
	// this distinctly from both an empty success list and a store fault.
	ErrNoBooksMatched = errors.New("no books matched")

	// ErrNoReviews signals a book with zero reviews, mirroring the search
	// contract.
	ErrNoReviews = errors.New("no reviews for this book")
)

// ValidationError carries a user-facing message for malformed input.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
