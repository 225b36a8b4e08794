package operations

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusRunning Status = "running" // Operation is in progress
	StatusSuccess Status = "success" // Every project succeeded
	StatusPartial Status = "partial" // Some projects failed
	StatusFailed  Status = "failed"  // Every project failed
)

type Kind string

const (
	KindSync                Kind = "sync"
	KindRefresh             Kind = "refresh"
	KindCreateBranch        Kind = "create_branch"
	KindSwitchBranch        Kind = "switch_branch"
	KindDeleteBranch        Kind = "delete_branch"
	KindCreateTag           Kind = "create_tag"
	KindDeleteTag           Kind = "delete_tag"
	KindCreateBranchFromTag Kind = "create_branch_from_tag"
	KindMerge               Kind = "merge"
	KindPush                Kind = "push"
)

// Outcome is the result of one operation on one project.
type Outcome struct {
	Project  string
	Success  bool
	Error    string // Error message if failed
	Detail   string // Operation specific result, e.g. deleted branch or merge commit
	Duration time.Duration
}

type OperationDraft struct {
	Kind       Kind
	Parameters map[string]string

	// Status
	Status      Status
	StartedAt   time.Time
	CompletedAt *time.Time

	Outcomes []Outcome
}

type Operation struct {
	OperationDraft

	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Failed returns the outcomes of projects that failed.
func (o *Operation) Failed() []Outcome {
	failed := []Outcome{}
	for _, outcome := range o.Outcomes {
		if !outcome.Success {
			failed = append(failed, outcome)
		}
	}
	return failed
}

// Complete records outcomes and derives the final status.
func (o *Operation) Complete(outcomes []Outcome, completedAt time.Time) {
	o.Outcomes = outcomes
	o.Status = StatusOf(outcomes)
	o.CompletedAt = &completedAt
}

// StatusOf derives the aggregate status of per-project outcomes. An
// operation over no projects is successful.
func StatusOf(outcomes []Outcome) Status {
	failed := 0
	for _, outcome := range outcomes {
		if !outcome.Success {
			failed++
		}
	}

	switch {
	case failed == 0:
		return StatusSuccess
	case failed == len(outcomes):
		return StatusFailed
	default:
		return StatusPartial
	}
}
