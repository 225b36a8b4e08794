package projects

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/gitfleet/gitfleet/pkg/badgerfx"
)

const prefix = "project:"

// Repository caches project snapshots so state survives restarts.
type Repository struct {
	db *badger.DB

	snapshots *badgerfx.Repository[*snapshotModel]
}

func NewRepository(db *badger.DB) *Repository {
	return &Repository{
		db: db,

		snapshots: badgerfx.NewRepository(prefix, func() *snapshotModel { return &snapshotModel{} }),
	}
}

// Save stores the derived state of project.
func (r *Repository) Save(_ context.Context, project Project) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return r.snapshots.Write(txn, newSnapshotModel(project))
	})
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// List returns every cached snapshot by project name.
func (r *Repository) List(_ context.Context) (map[string]*snapshotModel, error) {
	var models []*snapshotModel

	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		models, err = r.snapshots.List(txn, badger.DefaultIteratorOptions)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	byName := make(map[string]*snapshotModel, len(models))
	for _, m := range models {
		byName[m.Name] = m
	}

	return byName, nil
}
