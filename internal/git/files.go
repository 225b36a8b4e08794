package git

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	securejoin "github.com/cyphar/filepath-securejoin"
)

// ReadFile returns the content of a file inside the working copy at path.
// The relative name can not escape the working copy root.
func (s *Service) ReadFile(path, name string) ([]byte, error) {
	if !Exists(path) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	full, err := securejoin.SecureJoin(path, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackend, err)
	}

	info, err := os.Stat(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: file %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackend, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, name)
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackend, err)
	}

	return data, nil
}
