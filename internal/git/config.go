package git

import (
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	DefaultRemote     = "origin"
	DefaultSafeBranch = "master"
)

type AuthorConfig struct {
	Name  string
	Email string
}

type CredentialsConfig struct {
	Username string
	Password string
}

type Config struct {
	// Timeout bounds every network call (clone, pull, fetch, push, ls-remote).
	// Zero disables the bound.
	Timeout time.Duration

	// SafeBranch is checked out before the current branch is deleted.
	SafeBranch string
	// ProtectedBranches can never be deleted. Entries are exact names or
	// doublestar patterns such as "release/**".
	ProtectedBranches []string

	// Credentials seed the runtime credential pair.
	Credentials CredentialsConfig

	// Author signs merge commits, push commits and annotated tags.
	Author AuthorConfig
}

func (c Config) safeBranch() string {
	if c.SafeBranch == "" {
		return DefaultSafeBranch
	}
	return c.SafeBranch
}

func (c Config) isProtected(branch string) bool {
	for _, pattern := range c.ProtectedBranches {
		if pattern == branch {
			return true
		}
		if ok, err := doublestar.Match(pattern, branch); err == nil && ok {
			return true
		}
	}
	return false
}
