package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errspkg "github.com/fnasraoui/logicaldecoding/internal/compiler/errors"
	"github.com/fnasraoui/logicaldecoding/internal/compiler/gen"
)

func TestWriteCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	files := []gen.File{
		{Name: "pg_logicaldec.ldpb.go", Content: []byte("package decoderbufs\n")},
		{Name: "geo/point.ldpb.go", Content: []byte("package geo\n")},
	}
	require.NoError(t, Write(dir, files))

	for _, f := range files {
		got, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(f.Name)))
		require.NoError(t, err)
		assert.Equal(t, f.Content, got)
	}

	assert.Equal(t, []string{"geo", "pg_logicaldec.ldpb.go"}, dirNames(t, dir), "staged file left behind")
	assert.Equal(t, []string{"point.ldpb.go"}, dirNames(t, filepath.Join(dir, "geo")))

	info, err := os.Stat(filepath.Join(dir, "pg_logicaldec.ldpb.go"))
	require.NoError(t, err)
	assert.Zero(t, info.Mode().Perm()&^0o644)
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestWriteOverwrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a.ldpb.go")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o644))

	require.NoError(t, Write(dir, []gen.File{{Name: "a.ldpb.go", Content: []byte("new")}}))
	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestWriteLeavesNothingOnFailure(t *testing.T) {
	dir := t.TempDir()
	// A regular file where a directory is needed makes the second file fail.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blocked"), nil, 0o644))

	err := Write(dir, []gen.File{
		{Name: "a.ldpb.go", Content: []byte("a")},
		{Name: "blocked/b.ldpb.go", Content: []byte("b")},
	})
	require.Error(t, err)
	kind, ok := errspkg.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, errspkg.KindOutput, kind)

	assert.Equal(t, []string{"blocked"}, dirNames(t, dir))
}

func TestWriteRejectsEscapingNames(t *testing.T) {
	err := Write(t.TempDir(), []gen.File{{Name: "../escape.ldpb.go"}})
	require.Error(t, err)
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	files := []gen.File{
		{Name: "a.ldpb.go", Content: []byte("a")},
		{Name: "b.ldpb.go", Content: []byte("b")},
	}
	require.NoError(t, Write(dir, files))
	require.NoError(t, Verify(dir, files))

	drifted := []gen.File{
		{Name: "a.ldpb.go", Content: []byte("a2")},
		{Name: "b.ldpb.go", Content: []byte("b")},
		{Name: "c.ldpb.go", Content: []byte("c")},
	}
	err := Verify(dir, drifted)
	require.Error(t, err)
	assert.ErrorIs(t, err, errspkg.ErrOutOfDate)
	assert.Contains(t, err.Error(), "a.ldpb.go, c.ldpb.go (missing)")

	got, readErr := os.ReadFile(filepath.Join(dir, "a.ldpb.go"))
	require.NoError(t, readErr)
	assert.Equal(t, "a", string(got), "verify must not write")
}
