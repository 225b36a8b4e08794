package storage_test

import (
	"testing"
	"time"

	"github.com/gitfleet/gitfleet/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseEntity(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	first := storage.NewBaseEntity(created)
	second := storage.NewBaseEntity(created)
	require.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, created, first.CreatedAt)
	assert.Equal(t, created, first.UpdatedAt)
	assert.Less(t, first.StorageID(), second.StorageID())

	updated := created.Add(time.Hour)
	next := storage.NewBaseEntity(updated)
	next.Inherit(first, updated)
	assert.Equal(t, first.ID, next.ID)
	assert.Equal(t, created, next.CreatedAt)
	assert.Equal(t, updated, next.UpdatedAt)
}
