package sqlite

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSONL_ThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")
	records := []json.RawMessage{
		json.RawMessage(`{"a":1}`),
		json.RawMessage(`{"b":2}`),
	}

	require.NoError(t, writeJSONL(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\"a\":1}\n{\"b\":2}\n", string(data))

	got, err := readJSONL(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestWriteJSONL_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeJSONL(filepath.Join(dir, "x.jsonl"), nil))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "x.jsonl", entries[0].Name())
}

func TestWriteJSONL_MissingDirectory(t *testing.T) {
	err := writeJSONL(filepath.Join(t.TempDir(), "nope", "x.jsonl"), nil)
	assert.Error(t, err)
}

func TestReadJSONL_SkipsBlankAndMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixed.jsonl")
	content := "{\"ok\":1}\n\nnot json\n{\"ok\":2}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := readJSONL(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.JSONEq(t, `{"ok":2}`, string(got[1]))
}

func TestReadJSONL_MissingFile(t *testing.T) {
	_, err := readJSONL(filepath.Join(t.TempDir(), "absent.jsonl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
