package usecases

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotFound marks lookups for rows that do not exist; handlers map it to 404.
var ErrNotFound = errors.New("not found")

func notFound(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

// ValidationError covers failed input validation and violated business rules;
// handlers map it to 400.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func invalid(msg string) error {
	return &ValidationError{msg: msg}
}

func invalidf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// UnauthorizedError covers failed credential checks; handlers map it to 401.
type UnauthorizedError struct {
	msg string
}

func (e *UnauthorizedError) Error() string { return e.msg }

func unauthorized(msg string) error {
	return &UnauthorizedError{msg: msg}
}

func IsUnauthorized(err error) bool {
	var u *UnauthorizedError
	return errors.As(err, &u)
}

// Pagination describes one page of an offset-paginated listing.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func paginate(page, limit int, total int64) Pagination {
	return Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
	}
}

// normalizePage clamps page/limit to sane bounds: page >= 1, 1 <= limit <= 100,
// defaulting to page 1, limit 10.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
