package operations

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/gitfleet/gitfleet/pkg/badgerfx"
	"github.com/google/uuid"
)

const (
	prefix = "operation:"

	prefixByKind = prefix + "kind:"
)

func kindIndexPrefix(kind Kind) string {
	return prefixByKind + string(kind) + ":"
}

type Repository struct {
	db *badger.DB

	operations *badgerfx.Repository[*operationModel]
}

func NewRepository(db *badger.DB) *Repository {
	return &Repository{
		db: db,

		operations: badgerfx.NewRepository(prefix, func() *operationModel { return &operationModel{} }),
	}
}

// Create stores a new operation.
func (r *Repository) Create(_ context.Context, draft *OperationDraft) (*Operation, error) {
	model := newOperationModel(draft)

	err := r.db.Update(func(txn *badger.Txn) error {
		return r.operations.Write(txn, model)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create operation: %w", err)
	}

	return newOperation(model), nil
}

// GetByID retrieves an operation by its ID.
func (r *Repository) GetByID(_ context.Context, id uuid.UUID) (*Operation, error) {
	var model *operationModel

	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		model, err = r.getByID(txn, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return newOperation(model), nil
}

// Update applies updater to a stored operation.
func (r *Repository) Update(_ context.Context, id uuid.UUID, updater func(*Operation) error) (*Operation, error) {
	var updated *operationModel

	err := r.db.Update(func(txn *badger.Txn) error {
		old, err := r.getByID(txn, id)
		if err != nil {
			return fmt.Errorf("failed to get operation before update: %w", err)
		}

		operation := newOperation(old)
		if updErr := updater(operation); updErr != nil {
			return fmt.Errorf("failed to update operation: %w", updErr)
		}

		if operation.Kind != old.Kind {
			return fmt.Errorf("cannot change operation kind (old=%s new=%s)", old.Kind, operation.Kind)
		}

		updated = newOperationUpdateModel(old, &operation.OperationDraft)
		return r.operations.Write(txn, updated)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update operation: %w", err)
	}

	return newOperation(updated), nil
}

// List returns operations newest first, optionally restricted to one kind.
// A non-positive limit returns all of them.
func (r *Repository) List(_ context.Context, kind Kind, limit int) ([]Operation, error) {
	var models []*operationModel

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		var err error
		if kind == "" {
			models, err = r.operations.List(txn, opts)
		} else {
			models, err = r.operations.ListByIndex(txn, kindIndexPrefix(kind), opts)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}

	if limit > 0 && len(models) > limit {
		models = models[:limit]
	}

	operations := make([]Operation, len(models))
	for i, m := range models {
		operations[i] = *newOperation(m)
	}

	return operations, nil
}

func (r *Repository) getByID(txn *badger.Txn, id uuid.UUID) (*operationModel, error) {
	model, err := r.operations.Read(txn, id.String())
	if errors.Is(err, badgerfx.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get operation: %w", err)
	}

	return model, nil
}
