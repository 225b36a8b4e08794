package fleet

import (
	"time"

	"github.com/gitfleet/gitfleet/internal/operations"
	"github.com/google/uuid"
)

// Report is the outcome of one fleet-wide operation.
type Report struct {
	OperationID uuid.UUID
	Kind        operations.Kind
	Status      operations.Status
	StartedAt   time.Time
	CompletedAt time.Time
	Results     []operations.Outcome
}

func newReport(op *operations.Operation) *Report {
	report := &Report{
		OperationID: op.ID,
		Kind:        op.Kind,
		Status:      op.Status,
		StartedAt:   op.StartedAt,
		Results:     op.Outcomes,
	}
	if op.CompletedAt != nil {
		report.CompletedAt = *op.CompletedAt
	}
	return report
}

// CommitLogEntry is one commit of one project.
type CommitLogEntry struct {
	ProjectName string
	Username    string
	CommitID    string
	Message     string
	CommitTime  time.Time
}

// PageRequest selects a commit log page. Empty filters match everything.
type PageRequest struct {
	Index    int // zero based
	Size     int // DefaultPageSize when not positive
	Username string
	Project  string
}

// Page is one slice of an ordered result set.
type Page[T any] struct {
	Index      int
	Size       int
	Data       []T
	AllData    []T
	TotalData  int
	TotalPages int
}

// CommitLog is a commit log page with the distinct authors on it.
type CommitLog struct {
	Page[CommitLogEntry]

	Users []string
}
