package projects

import "errors"

var (
	ErrNotFound         = errors.New("project not found")
	ErrInvalidRemoteURL = errors.New("invalid remote url")
	ErrDuplicateName    = errors.New("duplicate project name")
)
