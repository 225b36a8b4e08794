package git

import (
	"testing"

	"github.com/go-git/go-git/v6/plumbing/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentials(t *testing.T) {
	c := NewCredentials("", "")
	assert.Nil(t, c.Auth())

	c.Set("alice", "secret")
	first := c.Auth()
	require.IsType(t, &http.BasicAuth{}, first)
	assert.Equal(t, "alice", first.(*http.BasicAuth).Username)

	// a captured auth keeps its value after the pair changes
	c.Set("bob", "other")
	assert.Equal(t, "alice", first.(*http.BasicAuth).Username)
	assert.Equal(t, "bob", c.Username())
	assert.Equal(t, "other", c.Auth().(*http.BasicAuth).Password)
}
