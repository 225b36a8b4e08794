package git

import (
	"time"
)

// BranchType is the outcome of classifying a branch name against a working copy.
type BranchType int

const (
	BranchTypeError BranchType = iota
	BranchTypeLocal
	BranchTypeRemote
	BranchTypeLocalAndRemote
	BranchTypeNotExist
)

func (t BranchType) String() string {
	switch t {
	case BranchTypeLocal:
		return "LOCAL"
	case BranchTypeRemote:
		return "REMOTE"
	case BranchTypeLocalAndRemote:
		return "LOCAL_AND_REMOTE"
	case BranchTypeNotExist:
		return "NOT_EXIST"
	case BranchTypeError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Commit describes a single commit.
type Commit struct {
	ID           string    // Full commit hash
	ShortMessage string    // First line of the message
	AuthorName   string    // Author name
	AuthorEmail  string    // Author email
	CommitTime   time.Time // Committer timestamp
}

// WorkingTreeStatus holds relative file paths grouped by state.
type WorkingTreeStatus struct {
	Untracked   []string
	Modified    []string
	Missing     []string
	Conflicting []string
}

// IsClean reports whether all four sets are empty.
func (s WorkingTreeStatus) IsClean() bool {
	return len(s.Untracked) == 0 && len(s.Modified) == 0 && len(s.Missing) == 0 && len(s.Conflicting) == 0
}

// Snapshot is the derived state of one working copy.
type Snapshot struct {
	LastCommit    *Commit // nil when the repository has no commits yet
	CurrentBranch string
	Branches      []string
	Tags          []string
	Status        WorkingTreeStatus
}
