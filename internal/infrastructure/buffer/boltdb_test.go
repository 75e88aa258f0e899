package buffer

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "buffer.db"), "")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestEnqueueAndGetBatch(t *testing.T) {
	store := openTestStore(t)

	payload, _ := json.Marshal(map[string]string{"title": "write report"})
	require.NoError(t, store.Enqueue(Item{
		UserID:    "u1",
		Entity:    EntityTask,
		Operation: OperationCreate,
		Data:      payload,
	}))

	items, err := store.GetBatch(10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, EntityTask, items[0].Entity)
	assert.Equal(t, OperationCreate, items[0].Operation)
	assert.NotEmpty(t, items[0].ID)
	assert.False(t, items[0].Timestamp.IsZero())
}

func TestReplayOrderFollowsPriority(t *testing.T) {
	store := openTestStore(t)

	// A toggle gets priority 1 and must drain before an earlier goal edit.
	require.NoError(t, store.Enqueue(Item{Entity: EntityGoal, Operation: OperationUpdate}))
	require.NoError(t, store.Enqueue(Item{Entity: EntityTask, Operation: OperationToggle}))
	require.NoError(t, store.Enqueue(Item{Entity: EntityTask, Operation: OperationCreate}))

	items, err := store.GetBatch(10)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, OperationToggle, items[0].Operation)
	assert.Equal(t, EntityTask, items[1].Entity)
	assert.Equal(t, EntityGoal, items[2].Entity)
}

func TestRemoveAndSize(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Enqueue(Item{Entity: EntityTask, Operation: OperationCreate}))
	require.NoError(t, store.Enqueue(Item{Entity: EntityTask, Operation: OperationDelete}))

	size, err := store.Size()
	require.NoError(t, err)
	assert.Equal(t, 2, size)

	items, err := store.GetBatch(1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NoError(t, store.Remove(items[0]))

	size, err = store.Size()
	require.NoError(t, err)
	assert.Equal(t, 1, size)
}

func TestCleanupDropsStaleItems(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Enqueue(Item{
		Entity:    EntityTask,
		Operation: OperationCreate,
		Timestamp: time.Now().Add(-48 * time.Hour),
	}))
	require.NoError(t, store.Enqueue(Item{Entity: EntityTask, Operation: OperationCreate}))

	require.NoError(t, store.Cleanup(time.Now().Add(-24*time.Hour)))

	size, err := store.Size()
	require.NoError(t, err)
	assert.Equal(t, 1, size)
}

func TestRequeueBumpsTimestamp(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Enqueue(Item{Entity: EntityGoal, Operation: OperationCreate}))
	items, err := store.GetBatch(1)
	require.NoError(t, err)
	require.Len(t, items, 1)

	original := items[0].Timestamp
	items[0].Retries++
	require.NoError(t, store.Remove(items[0]))
	require.NoError(t, store.Requeue(items[0]))

	items, err = store.GetBatch(1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Retries)
	assert.True(t, !items[0].Timestamp.Before(original))
}
