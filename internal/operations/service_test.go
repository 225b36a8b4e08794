package operations

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/gitfleet/gitfleet/pkg/badgerfx"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := badger.Open(badgerfx.Config{InMemory: true}.Build().WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewService(NewRepository(db), zaptest.NewLogger(t))
}

func TestStatusOf(t *testing.T) {
	ok := Outcome{Project: "a", Success: true}
	bad := Outcome{Project: "b", Success: false, Error: "boom"}

	assert.Equal(t, StatusSuccess, StatusOf(nil))
	assert.Equal(t, StatusSuccess, StatusOf([]Outcome{ok, ok}))
	assert.Equal(t, StatusPartial, StatusOf([]Outcome{ok, bad}))
	assert.Equal(t, StatusFailed, StatusOf([]Outcome{bad, bad}))
}

func TestService_Lifecycle(t *testing.T) {
	svc := newTestService(t)

	started, err := svc.Start(t.Context(), KindCreateBranch, map[string]string{"branch": "feature"})
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, started.Status)
	assert.Nil(t, started.CompletedAt)

	completed, err := svc.Complete(t.Context(), started.ID, []Outcome{
		{Project: "alpha", Success: true},
		{Project: "beta", Success: false, Error: "ref already exists"},
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPartial, completed.Status)
	assert.NotNil(t, completed.CompletedAt)
	assert.Equal(t, started.CreatedAt.Unix(), completed.CreatedAt.Unix())

	got, err := svc.Get(t.Context(), started.ID)
	require.NoError(t, err)
	assert.Equal(t, "feature", got.Parameters["branch"])
	require.Len(t, got.Outcomes, 2)
	assert.Equal(t, []Outcome{{Project: "beta", Success: false, Error: "ref already exists"}}, got.Failed())

	_, err = svc.Get(t.Context(), uuid.Must(uuid.NewV7()))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_List(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.Start(t.Context(), KindSync, nil)
	require.NoError(t, err)
	second, err := svc.Start(t.Context(), KindPush, nil)
	require.NoError(t, err)
	third, err := svc.Start(t.Context(), KindSync, nil)
	require.NoError(t, err)

	all, err := svc.List(t.Context(), "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, third.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, first.ID, all[2].ID)

	syncs, err := svc.List(t.Context(), KindSync, 0)
	require.NoError(t, err)
	require.Len(t, syncs, 2)
	assert.Equal(t, third.ID, syncs[0].ID)

	limited, err := svc.List(t.Context(), "", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, third.ID, limited[0].ID)
}
