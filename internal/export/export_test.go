package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaemin/econquiz/internal/api"
)

type fakeSource struct {
	data []byte
	err  error
}

func (f *fakeSource) ExportAttempt(context.Context, string, api.ExportFormat) ([]byte, error) {
	return f.data, f.err
}

func TestSaveWritesNamedFile(t *testing.T) {
	dir := t.TempDir()
	src := &fakeSource{data: []byte(`{"attempt_id":"att-1"}`)}

	path, err := Save(context.Background(), src, "att-1", api.ExportJSON, dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "quiz_attempt_att-1.json"), path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, src.data, raw)
}

func TestSaveCSVExtension(t *testing.T) {
	dir := t.TempDir()
	src := &fakeSource{data: []byte("a,b\n")}

	path, err := Save(context.Background(), src, "att-2", api.ExportCSV, dir)
	require.NoError(t, err)
	assert.Equal(t, "quiz_attempt_att-2.csv", filepath.Base(path))
}

func TestSaveRepeatable(t *testing.T) {
	dir := t.TempDir()
	src := &fakeSource{data: []byte("one")}

	_, err := Save(context.Background(), src, "att-3", api.ExportJSON, dir)
	require.NoError(t, err)

	src.data = []byte("two")
	path, err := Save(context.Background(), src, "att-3", api.ExportJSON, dir)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(raw), "a repeated export must overwrite")
}

func TestSaveFetchFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	src := &fakeSource{err: errors.New("backend down")}

	_, err := Save(context.Background(), src, "att-4", api.ExportJSON, dir)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no file or temp residue may remain on failure")
}
