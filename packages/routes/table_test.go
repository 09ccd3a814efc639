package routes

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Resolve(t *testing.T) {
	table := NewTable(map[string]Definition{
		"getUser":    {URL: "/users/{id}", Method: "get"},
		"createUser": {URL: "/users", Method: "POST"},
		"listUsers":  {URL: "/users"},
	})

	t.Run("known route with params", func(t *testing.T) {
		resolved := table.Resolve("getUser", Params{"id": "42"})
		assert.Equal(t, "/users/42", resolved.URL)
		assert.Equal(t, MethodGet, resolved.Method)
		assert.Equal(t, "getUser", resolved.Name)
	})

	t.Run("method normalized to upper case", func(t *testing.T) {
		resolved := table.Resolve("createUser", nil)
		assert.Equal(t, MethodPost, resolved.Method)
	})

	t.Run("missing method defaults to GET", func(t *testing.T) {
		resolved := table.Resolve("listUsers", nil)
		assert.Equal(t, MethodGet, resolved.Method)
	})

	t.Run("unknown route resolves to empty fallback", func(t *testing.T) {
		resolved := table.Resolve("missingName", Params{})
		assert.Equal(t, "", resolved.URL)
		assert.Equal(t, MethodGet, resolved.Method)
		assert.Equal(t, "", resolved.Name)
	})
}

func TestTable_SetAndReplace(t *testing.T) {
	table := NewTable(nil)
	assert.Equal(t, 0, table.Len())

	table.Set("ping", Definition{URL: "/ping"})
	def, ok := table.Get("ping")
	require.True(t, ok)
	assert.Equal(t, "ping", def.Name)

	table.ReplaceAll(map[string]Definition{
		"a": {URL: "/a"},
		"b": {URL: "/b"},
	})
	assert.Equal(t, []string{"a", "b"}, table.Names())
	_, ok = table.Get("ping")
	assert.False(t, ok)
}

func TestLoadDefinitions_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yaml")
	content := `
getUser:
  url: /users/{id}
  method: GET
createUser:
  url: /users
  method: POST
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	defs, err := LoadDefinitions(path)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "/users/{id}", defs["getUser"].URL)
	assert.Equal(t, "getUser", defs["getUser"].Name)
	assert.Equal(t, "POST", defs["createUser"].Method)
}

func TestLoadDefinitions_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.json")
	content := `{"getUser": {"url": "/users/{id}", "method": "GET"}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	defs, err := LoadDefinitions(path)
	require.NoError(t, err)
	assert.Equal(t, "/users/{id}", defs["getUser"].URL)
}

func TestLoadDefinitions_MissingFile(t *testing.T) {
	_, err := LoadDefinitions(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestTable_Watch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "routes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ping:\n  url: /ping\n"), 0644))

	table, err := LoadTable(path)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan error, 1)
	require.NoError(t, table.Watch(ctx, path, func(err error) {
		reloaded <- err
	}))

	require.NoError(t, os.WriteFile(path, []byte("ping:\n  url: /ping\npong:\n  url: /pong\n"), 0644))

	select {
	case err := <-reloaded:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for route file reload")
	}

	assert.Equal(t, 2, table.Len())
	def, ok := table.Get("pong")
	require.True(t, ok)
	assert.Equal(t, "/pong", def.URL)
}
