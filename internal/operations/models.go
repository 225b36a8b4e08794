package operations

import (
	"encoding/json"
	"time"

	"github.com/gitfleet/gitfleet/internal/storage"
)

type outcomeModel struct {
	Project  string        `json:"project"`
	Success  bool          `json:"success"`
	Error    string        `json:"error,omitempty"`
	Detail   string        `json:"detail,omitempty"`
	Duration time.Duration `json:"duration"`
}

// operationModel represents a recorded fleet operation.
type operationModel struct {
	storage.BaseEntity

	Kind       Kind              `json:"kind"`
	Parameters map[string]string `json:"parameters"`

	Status      Status     `json:"status"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`

	Outcomes []outcomeModel `json:"outcomes"`
}

// StorageIndexes indexes operations by kind; UUIDv7 keeps each index in
// creation order.
func (m *operationModel) StorageIndexes() []string {
	return []string{kindIndexPrefix(m.Kind) + m.ID.String()}
}

func (m *operationModel) MarshalStorage() ([]byte, error) {
	return json.Marshal(m)
}

func (m *operationModel) UnmarshalStorage(data []byte) error {
	return json.Unmarshal(data, m)
}

func newOperationModel(draft *OperationDraft) *operationModel {
	if draft == nil {
		return nil
	}

	return &operationModel{
		BaseEntity:  storage.NewBaseEntity(time.Now()),
		Kind:        draft.Kind,
		Parameters:  draft.Parameters,
		Status:      draft.Status,
		StartedAt:   draft.StartedAt,
		CompletedAt: draft.CompletedAt,
		Outcomes:    newOutcomeModels(draft.Outcomes),
	}
}

func newOperationUpdateModel(source *operationModel, draft *OperationDraft) *operationModel {
	updated := newOperationModel(draft)
	updated.Inherit(source.BaseEntity, time.Now())

	return updated
}

func newOutcomeModels(outcomes []Outcome) []outcomeModel {
	models := make([]outcomeModel, len(outcomes))
	for i, o := range outcomes {
		models[i] = outcomeModel{
			Project:  o.Project,
			Success:  o.Success,
			Error:    o.Error,
			Detail:   o.Detail,
			Duration: o.Duration,
		}
	}
	return models
}

func newOperation(model *operationModel) *Operation {
	if model == nil {
		return nil
	}

	outcomes := make([]Outcome, len(model.Outcomes))
	for i, o := range model.Outcomes {
		outcomes[i] = Outcome{
			Project:  o.Project,
			Success:  o.Success,
			Error:    o.Error,
			Detail:   o.Detail,
			Duration: o.Duration,
		}
	}

	return &Operation{
		OperationDraft: OperationDraft{
			Kind:        model.Kind,
			Parameters:  model.Parameters,
			Status:      model.Status,
			StartedAt:   model.StartedAt,
			CompletedAt: model.CompletedAt,
			Outcomes:    outcomes,
		},
		ID:        model.ID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
