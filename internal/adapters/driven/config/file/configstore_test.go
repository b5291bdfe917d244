package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(t *testing.T) *ConfigStore {
	t.Helper()

	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	return store
}

func TestNewConfigStore_EmptyFile(t *testing.T) {
	store := setupTestConfig(t)

	_, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, "", store.GetString("missing"))
	assert.Equal(t, 0, store.GetInt("missing"))
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := setupTestConfig(t)

	err := store.Set("data.dir", "/tmp/stacks")
	require.NoError(t, err)
	err = store.Set("search.timeout", 45)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/stacks", store.GetString("data.dir"))
	assert.Equal(t, 45, store.GetInt("search.timeout"))
}

func TestConfigStore_SetPersistsImmediately(t *testing.T) {
	store := setupTestConfig(t)

	err := store.Set("search.timeout", 60)
	require.NoError(t, err)

	assert.FileExists(t, store.Path())

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "60")
}

func TestConfigStore_ReloadAfterSave(t *testing.T) {
	dir := t.TempDir()

	store1, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("history.max_entries", 50))
	require.NoError(t, store1.Set("data.dir", "/var/lib/stacks"))

	// A fresh store reads the persisted values back.
	store2, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 50, store2.GetInt("history.max_entries"))
	assert.Equal(t, "/var/lib/stacks", store2.GetString("data.dir"))
}

func TestConfigStore_NestedTablesFlattened(t *testing.T) {
	dir := t.TempDir()
	content := "[search]\ntimeout = 30\n\n[search.suggestions]\nlimit = 10\n"
	err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, 30, store.GetInt("search.timeout"))
	assert.Equal(t, 10, store.GetInt("search.suggestions.limit"))
}

func TestConfigStore_TypeMismatchReturnsZero(t *testing.T) {
	store := setupTestConfig(t)

	require.NoError(t, store.Set("search.timeout", "not a number"))
	assert.Equal(t, 0, store.GetInt("search.timeout"))

	require.NoError(t, store.Set("data.dir", 42))
	assert.Equal(t, "", store.GetString("data.dir"))
}

func TestConfigStore_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [valid"), 0600)
	require.NoError(t, err)

	_, err = NewConfigStore(dir)
	assert.Error(t, err)
}
