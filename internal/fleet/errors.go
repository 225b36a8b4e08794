package fleet

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
)
