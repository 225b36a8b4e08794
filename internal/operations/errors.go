package operations

import "errors"

var (
	ErrNotFound = errors.New("operation not found")
)
