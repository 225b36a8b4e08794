// Package reports renders fleet operation reports for the HTTP API.
package reports

import (
	"time"

	"github.com/gitfleet/gitfleet/internal/fleet"
	"github.com/gitfleet/gitfleet/internal/operations"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type OutcomeResponse struct {
	Project    string `json:"project"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
	Detail     string `json:"detail,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

// Response represents the result of a fleet-wide operation.
type Response struct {
	OperationID uuid.UUID         `json:"operation_id"`
	Kind        string            `json:"kind"`
	Status      string            `json:"status"` // success, partial, failed
	StartedAt   time.Time         `json:"started_at"`
	CompletedAt time.Time         `json:"completed_at"`
	Results     []OutcomeResponse `json:"results"`
}

func New(report *fleet.Report) Response {
	return Response{
		OperationID: report.OperationID,
		Kind:        string(report.Kind),
		Status:      string(report.Status),
		StartedAt:   report.StartedAt,
		CompletedAt: report.CompletedAt,
		Results:     Outcomes(report.Results),
	}
}

func Outcomes(outcomes []operations.Outcome) []OutcomeResponse {
	return lo.Map(outcomes, func(o operations.Outcome, _ int) OutcomeResponse {
		return OutcomeResponse{
			Project:    o.Project,
			Success:    o.Success,
			Error:      o.Error,
			Detail:     o.Detail,
			DurationMS: o.Duration.Milliseconds(),
		}
	})
}
