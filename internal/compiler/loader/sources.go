package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	errspkg "github.com/fnasraoui/logicaldecoding/internal/compiler/errors"
)

// Sources opens schema files by import name and maps user-supplied schema
// paths onto import names.
type Sources interface {
	// Open returns the content of the schema with the given import name. A
	// missing schema yields an error wrapping fs.ErrNotExist.
	Open(name string) (io.ReadCloser, error)
	// ImportName maps a schema path as given by the user to the name it is
	// compiled under.
	ImportName(schemaPath string) (string, error)
}

// IncludePaths resolves import names against directories, first match wins.
type IncludePaths []string

func (p IncludePaths) Open(name string) (io.ReadCloser, error) {
	for _, dir := range p {
		f, err := os.Open(filepath.Join(dir, filepath.FromSlash(name)))
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%s: %w", name, fs.ErrNotExist)
}

// ImportName returns schemaPath relative to the first include directory that
// contains it.
func (p IncludePaths) ImportName(schemaPath string) (string, error) {
	abs, err := filepath.Abs(schemaPath)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errspkg.ErrSchemaNotFound
		}
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: is a directory", errspkg.ErrSchemaNotFound)
	}
	for _, dir := range p {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return "", err
		}
		rel, err := filepath.Rel(absDir, abs)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		return filepath.ToSlash(rel), nil
	}
	return "", fmt.Errorf("%w: not inside any include path %v", errspkg.ErrSchemaNotFound, []string(p))
}

// MapSources serves schemas from memory, keyed by import name.
type MapSources map[string]string

func (m MapSources) Open(name string) (io.ReadCloser, error) {
	text, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, fs.ErrNotExist)
	}
	return io.NopCloser(strings.NewReader(text)), nil
}

func (m MapSources) ImportName(schemaPath string) (string, error) {
	name := cleanName(schemaPath)
	if _, ok := m[name]; !ok {
		return "", errspkg.ErrSchemaNotFound
	}
	return name, nil
}

// Names returns every schema name, sorted.
func (m MapSources) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, cleanName(name))
	}
	sort.Strings(names)
	return names
}

func cleanName(name string) string {
	return strings.TrimPrefix(path.Clean(filepath.ToSlash(name)), "./")
}
