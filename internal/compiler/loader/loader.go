// Package loader turns schema files into linked descriptors. It reads the
// requested schemas and everything they import, checks the grammar, rejects
// missing imports and import cycles, and links the result with protocompile.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/bufbuild/protocompile"
	"github.com/bufbuild/protocompile/ast"
	"github.com/bufbuild/protocompile/linker"
	"github.com/bufbuild/protocompile/parser"
	"github.com/bufbuild/protocompile/reporter"
	"google.golang.org/protobuf/reflect/protoreflect"

	errspkg "github.com/fnasraoui/logicaldecoding/internal/compiler/errors"
)

// Result is the outcome of a successful load.
type Result struct {
	// Roots are the import names of the requested schemas, sorted.
	Roots []string
	// Files holds every loaded file, dependencies before dependents. Ties are
	// broken by name, so the order depends only on the schema contents.
	Files []protoreflect.FileDescriptor
}

// Loader loads schema files from Sources.
type Loader struct {
	src Sources
}

// New returns a Loader reading from src.
func New(src Sources) *Loader {
	return &Loader{src: src}
}

// ImportNames maps schema paths onto sorted, de-duplicated import names.
// A path that cannot be found is an input error.
func (l *Loader) ImportNames(schemaPaths []string) ([]string, error) {
	seen := make(map[string]struct{}, len(schemaPaths))
	names := make([]string, 0, len(schemaPaths))
	for _, p := range schemaPaths {
		name, err := l.src.ImportName(p)
		if err != nil {
			return nil, errspkg.NewSchemaCompilationError(errspkg.KindInput, p, err)
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

type pendingFile struct {
	name string
	// from and pos locate the import statement that requested the file; both
	// are zero for roots.
	from string
	pos  ast.SourcePos
}

type importEdge struct {
	to  string
	pos ast.SourcePos
}

// Load parses the schemas with the given import names and every file they
// import transitively, then links them.
func (l *Loader) Load(ctx context.Context, roots []string) (*Result, error) {
	parsed := make(map[string]parser.Result)
	edges := make(map[string][]importEdge)

	queue := make([]pendingFile, 0, len(roots))
	for _, r := range roots {
		queue = append(queue, pendingFile{name: r})
	}
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next := queue[0]
		queue = queue[1:]
		if _, ok := parsed[next.name]; ok {
			continue
		}

		res, err := l.parse(next)
		if err != nil {
			return nil, err
		}
		parsed[next.name] = res

		imports := importsOf(res.AST())
		edges[next.name] = imports
		for _, imp := range imports {
			if _, ok := parsed[imp.to]; !ok {
				queue = append(queue, pendingFile{name: imp.to, from: next.name, pos: imp.pos})
			}
		}
	}

	if err := detectCycle(roots, edges); err != nil {
		return nil, err
	}

	files, err := link(ctx, parsed)
	if err != nil {
		return nil, err
	}

	return &Result{Roots: roots, Files: topoSort(files)}, nil
}

func (l *Loader) parse(f pendingFile) (parser.Result, error) {
	rc, err := l.src.Open(f.name)
	if err != nil {
		if f.from == "" {
			if errors.Is(err, fs.ErrNotExist) {
				err = errspkg.ErrSchemaNotFound
			}
			return nil, errspkg.NewSchemaCompilationError(errspkg.KindInput, f.name, err)
		}
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %q", errspkg.ErrImportNotFound, f.name)
		}
		return nil, positioned(errspkg.KindResolution, f.pos, f.from, err)
	}
	defer rc.Close()

	handler := reporter.NewHandler(nil)
	fileNode, err := parser.Parse(f.name, rc, handler)
	if err != nil {
		return nil, fromReporter(errspkg.KindGrammar, f.name, err)
	}
	res, err := parser.ResultFromAST(fileNode, true, handler)
	if err != nil {
		return nil, fromReporter(errspkg.KindGrammar, f.name, err)
	}
	return res, nil
}

// importsOf lists the import statements of a file in declaration order.
func importsOf(file *ast.FileNode) []importEdge {
	var out []importEdge
	for _, decl := range file.Decls {
		imp, ok := decl.(*ast.ImportNode)
		if !ok {
			continue
		}
		out = append(out, importEdge{
			to:  imp.Name.AsString(),
			pos: file.NodeInfo(imp).Start(),
		})
	}
	return out
}

func link(ctx context.Context, parsed map[string]parser.Result) (linker.Files, error) {
	names := make([]string, 0, len(parsed))
	for name := range parsed {
		names = append(names, name)
	}
	sort.Strings(names)

	compiler := protocompile.Compiler{
		Resolver: protocompile.ResolverFunc(func(name string) (protocompile.SearchResult, error) {
			res, ok := parsed[name]
			if !ok {
				return protocompile.SearchResult{}, fmt.Errorf("%w: %q", errspkg.ErrImportNotFound, name)
			}
			return protocompile.SearchResult{ParseResult: res}, nil
		}),
		MaxParallelism: 1,
		Reporter: reporter.NewReporter(
			func(err reporter.ErrorWithPos) error { return err },
			nil,
		),
		SourceInfoMode: protocompile.SourceInfoStandard,
	}
	files, err := compiler.Compile(ctx, names...)
	if err != nil {
		return nil, fromReporter(errspkg.KindResolution, "", err)
	}
	return files, nil
}

// topoSort orders files so that every file follows its imports. Files are
// visited by name, so the result does not depend on input order.
func topoSort(files linker.Files) []protoreflect.FileDescriptor {
	byName := make(map[string]protoreflect.FileDescriptor, len(files))
	names := make([]string, 0, len(files))
	for _, f := range files {
		byName[f.Path()] = f
		names = append(names, f.Path())
	}
	sort.Strings(names)

	out := make([]protoreflect.FileDescriptor, 0, len(files))
	done := make(map[string]bool, len(files))
	var visit func(fd protoreflect.FileDescriptor)
	visit = func(fd protoreflect.FileDescriptor) {
		if done[fd.Path()] {
			return
		}
		done[fd.Path()] = true
		imports := fd.Imports()
		deps := make([]string, 0, imports.Len())
		for i := 0; i < imports.Len(); i++ {
			deps = append(deps, imports.Get(i).Path())
		}
		sort.Strings(deps)
		for _, dep := range deps {
			if d, ok := byName[dep]; ok {
				visit(d)
			}
		}
		out = append(out, fd)
	}
	for _, name := range names {
		visit(byName[name])
	}
	return out
}

// fromReporter converts a protocompile failure into a SchemaCompilationError,
// keeping the position when the reporter supplied one.
func fromReporter(kind errspkg.Kind, file string, err error) error {
	var withPos reporter.ErrorWithPos
	if errors.As(err, &withPos) {
		pos := withPos.GetPosition()
		return positioned(kind, pos, file, withPos.Unwrap())
	}
	return errspkg.NewSchemaCompilationError(kind, file, err)
}

func positioned(kind errspkg.Kind, pos ast.SourcePos, file string, err error) *errspkg.SchemaCompilationError {
	if pos.Filename != "" {
		file = pos.Filename
	}
	return &errspkg.SchemaCompilationError{
		Kind:   kind,
		File:   file,
		Line:   pos.Line,
		Column: pos.Col,
		Err:    err,
	}
}
