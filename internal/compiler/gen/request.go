package gen

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"

	errspkg "github.com/fnasraoui/logicaldecoding/internal/compiler/errors"
)

// File is one generated Go source file.
type File struct {
	// Name is the output path relative to the output directory, using '/'.
	Name    string
	Content []byte
}

// NewRequest builds the plugin request for files, which must be ordered so
// that every file follows its imports. Every file is generated. Files without
// a go_package option are mapped to goImportPrefix joined with their
// directory.
func NewRequest(files []protoreflect.FileDescriptor, goImportPrefix string) *pluginpb.CodeGeneratorRequest {
	req := &pluginpb.CodeGeneratorRequest{}
	params := []string{"paths=source_relative"}
	for _, fd := range files {
		req.ProtoFile = append(req.ProtoFile, protodesc.ToFileDescriptorProto(fd))
		req.FileToGenerate = append(req.FileToGenerate, fd.Path())
		if goPackage(fd) == "" && goImportPrefix != "" {
			params = append(params, "M"+fd.Path()+"="+importPathFor(goImportPrefix, fd.Path()))
		}
	}
	sort.Strings(req.FileToGenerate)
	req.Parameter = ptr(strings.Join(params, ","))
	return req
}

func goPackage(fd protoreflect.FileDescriptor) string {
	opts, _ := fd.Options().(*descriptorpb.FileOptions)
	return opts.GetGoPackage()
}

func importPathFor(prefix, file string) string {
	dir := path.Dir(file)
	if dir == "." {
		return prefix
	}
	return prefix + "/" + dir
}

// Run generates Go sources for files in-process. Files are returned sorted by
// name.
func Run(files []protoreflect.FileDescriptor, goImportPrefix string, opts Options) ([]File, Summary, error) {
	if goImportPrefix == "" {
		for _, fd := range files {
			if goPackage(fd) == "" {
				return nil, Summary{}, errspkg.NewSchemaCompilationError(errspkg.KindResolution, fd.Path(),
					fmt.Errorf("%w: %s has no go_package option and no Go import prefix is configured", errspkg.ErrNoGoImportPath, fd.Path()))
			}
		}
	}

	req := NewRequest(files, goImportPrefix)
	plugin, err := protogen.Options{}.New(req)
	if err != nil {
		return nil, Summary{}, errspkg.NewSchemaCompilationError(errspkg.KindResolution, "", err)
	}
	summary, err := Generate(plugin, opts)
	if err != nil {
		return nil, summary, errspkg.NewSchemaCompilationError(errspkg.KindOutput, "", err)
	}
	resp := plugin.Response()
	if resp.Error != nil {
		return nil, summary, errspkg.NewSchemaCompilationError(errspkg.KindOutput, "", fmt.Errorf("generate: %s", resp.GetError()))
	}

	out := make([]File, 0, len(resp.File))
	for _, f := range resp.File {
		out = append(out, File{Name: f.GetName(), Content: []byte(f.GetContent())})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, summary, nil
}

func ptr[T any](v T) *T { return &v }
