package operations

import (
	"time"

	"github.com/gitfleet/gitfleet/internal/operations"
	"github.com/gitfleet/gitfleet/internal/server/handlers/reports"
	"github.com/google/uuid"
)

// ListRequest filters the operation history.
type ListRequest struct {
	Kind  string `query:"kind"  validate:"omitempty,oneof=sync refresh create_branch switch_branch delete_branch create_tag delete_tag create_branch_from_tag merge push"`
	Limit int    `query:"limit" validate:"gte=0,lte=1000"`
}

// OperationResponse represents a recorded fleet operation.
type OperationResponse struct {
	ID          uuid.UUID                 `json:"id"`
	Kind        string                    `json:"kind"`
	Parameters  map[string]string         `json:"parameters,omitempty"`
	Status      string                    `json:"status"` // running, success, partial, failed
	StartedAt   time.Time                 `json:"started_at"`
	CompletedAt *time.Time                `json:"completed_at,omitempty"`
	Outcomes    []reports.OutcomeResponse `json:"outcomes"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}

func newOperationResponse(op *operations.Operation) OperationResponse {
	return OperationResponse{
		ID:          op.ID,
		Kind:        string(op.Kind),
		Parameters:  op.Parameters,
		Status:      string(op.Status),
		StartedAt:   op.StartedAt,
		CompletedAt: op.CompletedAt,
		Outcomes:    reports.Outcomes(op.Outcomes),
		CreatedAt:   op.CreatedAt,
		UpdatedAt:   op.UpdatedAt,
	}
}
