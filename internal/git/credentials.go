package git

import (
	"sync"

	"github.com/go-git/go-git/v6/plumbing/transport"
	"github.com/go-git/go-git/v6/plumbing/transport/http"
)

// Credentials is the process-wide username/password pair used for every
// network call. Each call reads the current value; a call that already
// captured a value keeps it even if Set runs concurrently.
type Credentials struct {
	mu       sync.RWMutex
	username string
	password string
}

func NewCredentials(username, password string) *Credentials {
	return &Credentials{
		username: username,
		password: password,
	}
}

// Set replaces the pair. Last writer wins.
func (c *Credentials) Set(username, password string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.username = username
	c.password = password
}

// Username returns the current username.
func (c *Credentials) Username() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.username
}

// Auth returns a transport auth method for the current pair, or nil when no
// username is configured.
func (c *Credentials) Auth() transport.AuthMethod {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.username == "" {
		return nil
	}

	return &http.BasicAuth{
		Username: c.username,
		Password: c.password,
	}
}
