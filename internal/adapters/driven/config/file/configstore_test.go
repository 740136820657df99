package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DoesNotCreateFileUntilSet(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "nested", "config")

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, err = os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, store.Set("lookup.top_n", 3))
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("dataset.path", "/data/prompts.csv"))

	val, ok := store.Get("dataset.path")
	assert.True(t, ok)
	assert.Equal(t, "/data/prompts.csv", val)
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	val, ok := store.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("string_key", "hello world"))
	require.NoError(t, store.Set("int_key", 42))
	require.NoError(t, store.Set("slice_key", []string{"a.csv", "b.csv"}))

	assert.Equal(t, "hello world", store.GetString("string_key"))
	assert.Equal(t, 42, store.GetInt("int_key"))
	assert.Equal(t, []string{"a.csv", "b.csv"}, store.GetStringSlice("slice_key"))

	// Wrong type
	assert.Equal(t, "", store.GetString("int_key"))
	assert.Equal(t, 0, store.GetInt("string_key"))
	assert.Nil(t, store.GetStringSlice("int_key"))

	// Non-existent key
	assert.Equal(t, "", store.GetString("nonexistent"))
	assert.Equal(t, 0, store.GetInt("nonexistent"))
	assert.Nil(t, store.GetStringSlice("nonexistent"))
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("dataset.path", "prompts.csv"))
	require.NoError(t, store1.Set("dataset.search_paths", []string{"a.csv", "data/a.csv"}))
	require.NoError(t, store1.Set("lookup.top_n", 7))

	// New instance loads from file
	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "prompts.csv", store2.GetString("dataset.path"))
	assert.Equal(t, []string{"a.csv", "data/a.csv"}, store2.GetStringSlice("dataset.search_paths"))
	assert.Equal(t, 7, store2.GetInt("lookup.top_n"))
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("dataset.path", "prompts.csv"))
	require.NoError(t, store.Set("lookup.top_n", 3))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[dataset]")
	assert.Contains(t, string(data), "[lookup]")
	assert.Contains(t, string(data), "top_n = 3")
}

func TestConfigStore_LoadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[dataset]
path = "/srv/prompts.csv"
search_paths = ["one.csv", "two.csv"]

[lookup]
top_n = 2
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "/srv/prompts.csv", store.GetString("dataset.path"))
	assert.Equal(t, []string{"one.csv", "two.csv"}, store.GetStringSlice("dataset.search_paths"))
	assert.Equal(t, 2, store.GetInt("lookup.top_n"))
	assert.Equal(t, []string{"dataset.path", "dataset.search_paths", "lookup.top_n"}, store.Keys())
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("test", "value"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte{}, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Empty(t, store.Keys())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			key := "key" + string(rune('0'+id))
			_ = store.Set(key, id)
			_ = store.GetInt(key)
			_ = store.GetString(key)
			_, _ = store.Get(key)
			_ = store.Keys()
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestNewConfigStore_UnreadablePath(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("this is not valid TOML {{{[["), 0600))

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_Set_WriteFileError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	// A directory in place of the file makes the write fail.
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	err = store.Set("another", "value")
	assert.Error(t, err)
}

func TestNestMap(t *testing.T) {
	tests := []struct {
		name string
		flat map[string]any
		want map[string]any
	}{
		{
			name: "single level",
			flat: map[string]any{"a": 1},
			want: map[string]any{"a": 1},
		},
		{
			name: "dotted keys share a table",
			flat: map[string]any{"dataset.path": "p", "dataset.search_paths": []string{"x"}},
			want: map[string]any{"dataset": map[string]any{"path": "p", "search_paths": []string{"x"}}},
		},
		{
			name: "scalar prefix keeps key flat",
			flat: map[string]any{"a": 1, "a.b": 2},
			want: map[string]any{"a": 1, "a.b": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nestMap(tt.flat))
		})
	}
}

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"dataset": map[string]any{"path": "p"},
		"top":     1,
	}

	assert.Equal(t, map[string]any{"dataset.path": "p", "top": 1}, flattenMap(nested, ""))
}
