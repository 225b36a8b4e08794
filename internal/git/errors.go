package git

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/transport"
)

var (
	ErrNotFound              = errors.New("working copy not found")
	ErrRemoteNotFound        = errors.New("remote repository not found")
	ErrAuthenticationFailure = errors.New("authentication failed")
	ErrNetworkFailure        = errors.New("network failure")
	ErrMergeConflict         = errors.New("merge conflict")
	ErrRefAlreadyExists      = errors.New("ref already exists")
	ErrRefNotFound           = errors.New("ref not found")
	ErrNoCommitsYet          = errors.New("repository has no commits yet")
	ErrClassificationFailure = errors.New("branch classification failed")
	ErrProtectedBranch       = errors.New("branch is protected")
	ErrDirtyWorkingTree      = errors.New("working tree has uncommitted changes")
	ErrTimeout               = errors.New("operation timeout")
	ErrBackend               = errors.New("git backend error")
)

// classify maps a transport or storage error onto the package taxonomy.
// Errors that already carry a taxonomy sentinel are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	for _, known := range []error{
		ErrNotFound, ErrRemoteNotFound, ErrAuthenticationFailure, ErrNetworkFailure, ErrMergeConflict,
		ErrRefAlreadyExists, ErrRefNotFound, ErrNoCommitsYet, ErrProtectedBranch,
		ErrDirtyWorkingTree, ErrTimeout, ErrBackend,
	} {
		if errors.Is(err, known) {
			return err
		}
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case errors.Is(err, transport.ErrAuthenticationRequired),
		errors.Is(err, transport.ErrAuthorizationFailed):
		return fmt.Errorf("%w: %w", ErrAuthenticationFailure, err)
	case errors.Is(err, transport.ErrRepositoryNotFound):
		return fmt.Errorf("%w: %w", ErrRemoteNotFound, err)
	case errors.Is(err, git.ErrUnstagedChanges):
		return fmt.Errorf("%w: %w", ErrDirtyWorkingTree, err)
	case errors.Is(err, git.ErrTagExists), errors.Is(err, git.ErrBranchExists):
		return fmt.Errorf("%w: %w", ErrRefAlreadyExists, err)
	case errors.Is(err, git.ErrTagNotFound), errors.Is(err, plumbing.ErrReferenceNotFound):
		return fmt.Errorf("%w: %w", ErrRefNotFound, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", ErrNetworkFailure, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, "authentication", "authorization", "permission denied", "access denied", "credential"):
		return fmt.Errorf("%w: %w", ErrAuthenticationFailure, err)
	case containsAny(msg, "could not resolve host", "no such host", "connection refused",
		"network is unreachable", "connection reset", "tls handshake"):
		return fmt.Errorf("%w: %w", ErrNetworkFailure, err)
	case containsAny(msg, "timeout", "timed out", "deadline exceeded"):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	return fmt.Errorf("%w: %w", ErrBackend, err)
}

func containsAny(msg string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(msg, needle) {
			return true
		}
	}
	return false
}
