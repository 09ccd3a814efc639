package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AppendAndRecent(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	first := &Record{
		Method:    "GET",
		URL:       "http://api.test/users/1",
		Route:     "getUser",
		Status:    200,
		Duration:  42 * time.Millisecond,
		CreatedAt: time.Now().UTC().Add(-time.Minute),
	}
	require.NoError(t, store.Append(first))
	assert.NotEmpty(t, first.ID)

	second := &Record{
		Method: "POST",
		URL:    "http://api.test/users",
		Error:  "connection refused",
	}
	require.NoError(t, store.Append(second))

	records, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first.
	assert.Equal(t, "POST", records[0].Method)
	assert.Equal(t, "connection refused", records[0].Error)
	assert.Equal(t, 0, records[0].Status)

	assert.Equal(t, "getUser", records[1].Route)
	assert.Equal(t, 200, records[1].Status)
	assert.Equal(t, 42*time.Millisecond, records[1].Duration)

	count, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestStore_RecentLimit(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Append(&Record{
			Method:    "GET",
			URL:       "http://api.test/ping",
			Status:    200,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	records, err := store.Recent(3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestOpen_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waypost.db")

	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Append(&Record{Method: "GET", URL: "http://api.test"}))

	count, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
