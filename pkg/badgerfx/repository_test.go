package badgerfx_test

import (
	"encoding/json"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/gitfleet/gitfleet/pkg/badgerfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID    string `json:"id"`
	Topic string `json:"topic"`
}

func (n *note) StorageID() string { return n.ID }

func (n *note) StorageIndexes() []string {
	return []string{"note:topic:" + n.Topic + ":" + n.ID}
}

func (n *note) MarshalStorage() ([]byte, error) { return json.Marshal(n) }

func (n *note) UnmarshalStorage(data []byte) error { return json.Unmarshal(data, n) }

func openDB(t *testing.T) *badger.DB {
	t.Helper()

	db, err := badger.Open(badgerfx.Config{InMemory: true}.Build().WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestRepository(t *testing.T) {
	db := openDB(t)
	repo := badgerfx.NewRepository("note:", func() *note { return &note{} })

	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		for _, n := range []*note{{ID: "a", Topic: "x"}, {ID: "b", Topic: "y"}, {ID: "c", Topic: "x"}} {
			if err := repo.Write(txn, n); err != nil {
				return err
			}
		}
		return nil
	}))

	require.NoError(t, db.View(func(txn *badger.Txn) error {
		all, err := repo.List(txn, badger.DefaultIteratorOptions)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "a", all[0].ID)

		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		reversed, err := repo.List(txn, opts)
		require.NoError(t, err)
		assert.Equal(t, "c", reversed[0].ID)

		byTopic, err := repo.ListByIndex(txn, repo.IndexPrefix("topic")+"x:", badger.DefaultIteratorOptions)
		require.NoError(t, err)
		assert.Len(t, byTopic, 2)

		got, err := repo.Read(txn, "b")
		require.NoError(t, err)
		assert.Equal(t, "y", got.Topic)

		_, err = repo.Read(txn, "missing")
		assert.ErrorIs(t, err, badgerfx.ErrNotFound)
		return nil
	}))

	// moving an entity between index values drops the stale index entry
	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		return repo.Write(txn, &note{ID: "a", Topic: "y"})
	}))
	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		return repo.Delete(txn, "b")
	}))

	require.NoError(t, db.View(func(txn *badger.Txn) error {
		byX, err := repo.ListByIndex(txn, repo.IndexPrefix("topic")+"x:", badger.DefaultIteratorOptions)
		require.NoError(t, err)
		require.Len(t, byX, 1)
		assert.Equal(t, "c", byX[0].ID)

		byY, err := repo.ListByIndex(txn, repo.IndexPrefix("topic")+"y:", badger.DefaultIteratorOptions)
		require.NoError(t, err)
		require.Len(t, byY, 1)
		assert.Equal(t, "a", byY[0].ID)
		return nil
	}))
}
