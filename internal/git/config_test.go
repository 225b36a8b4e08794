package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsProtected(t *testing.T) {
	config := Config{ProtectedBranches: []string{"develop", "release/**", "hotfix-*", "[bad"}}

	tests := []struct {
		branch    string
		protected bool
	}{
		{branch: "develop", protected: true},
		{branch: "release/1.2", protected: true},
		{branch: "release/1.2/rc1", protected: true},
		{branch: "hotfix-42", protected: true},
		{branch: "hotfix/42", protected: false},
		{branch: "feature", protected: false},
		{branch: "[bad", protected: true},
	}

	for _, tt := range tests {
		t.Run(tt.branch, func(t *testing.T) {
			assert.Equal(t, tt.protected, config.isProtected(tt.branch))
		})
	}
}

func TestConfig_SafeBranch(t *testing.T) {
	assert.Equal(t, DefaultSafeBranch, Config{}.safeBranch())
	assert.Equal(t, "main", Config{SafeBranch: "main"}.safeBranch())
}
