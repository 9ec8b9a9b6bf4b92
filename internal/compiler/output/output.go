// Package output writes generated files to disk. A write either replaces
// every file or leaves the output directory untouched, unless replacing one
// of the staged files fails.
package output

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"

	errspkg "github.com/fnasraoui/logicaldecoding/internal/compiler/errors"
	"github.com/fnasraoui/logicaldecoding/internal/compiler/gen"
)

const filePerm = 0o644

// Write stages every file next to its target and replaces the targets once
// all of them were written. Staged files are removed on failure.
func Write(dir string, files []gen.File) error {
	pending := make([]*renameio.PendingFile, 0, len(files))
	defer func() {
		for _, p := range pending {
			_ = p.Cleanup()
		}
	}()

	names := make([]string, 0, len(files))
	for _, f := range files {
		target, err := targetPath(dir, f.Name)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return outputError(f.Name, err)
		}
		p, err := renameio.NewPendingFile(target, renameio.WithPermissions(filePerm))
		if err != nil {
			return outputError(f.Name, err)
		}
		pending = append(pending, p)
		names = append(names, f.Name)
		if _, err := p.Write(f.Content); err != nil {
			return outputError(f.Name, err)
		}
	}

	for i, p := range pending {
		if err := p.CloseAtomicallyReplace(); err != nil {
			return outputError(names[i], err)
		}
	}
	return nil
}

// Verify compares files with their counterparts under dir. Every missing or
// differing file is listed in the returned error, which wraps ErrOutOfDate.
func Verify(dir string, files []gen.File) error {
	var stale []string
	for _, f := range files {
		target, err := targetPath(dir, f.Name)
		if err != nil {
			return err
		}
		onDisk, err := os.ReadFile(target)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			stale = append(stale, f.Name+" (missing)")
		case err != nil:
			return outputError(f.Name, err)
		case !bytes.Equal(onDisk, f.Content):
			stale = append(stale, f.Name)
		}
	}
	if len(stale) > 0 {
		return errspkg.NewSchemaCompilationError(errspkg.KindOutput, "",
			fmt.Errorf("%w: %s", errspkg.ErrOutOfDate, strings.Join(stale, ", ")))
	}
	return nil
}

// targetPath joins a generated name onto dir, refusing names that would
// escape it.
func targetPath(dir, name string) (string, error) {
	rel := filepath.FromSlash(name)
	if filepath.IsAbs(rel) || !filepath.IsLocal(rel) {
		return "", outputError(name, errors.New("generated file name escapes the output directory"))
	}
	return filepath.Join(dir, rel), nil
}

func outputError(file string, err error) error {
	return errspkg.NewSchemaCompilationError(errspkg.KindOutput, file, err)
}
