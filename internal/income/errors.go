package income

import "errors"

var (
	ErrNotFound     = errors.New("income not found")
	ErrInvalidInput = errors.New("invalid income")
)

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
