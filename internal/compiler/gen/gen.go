// Package gen generates Go types from linked schema descriptors. Every message
// gets protobuf wire methods; selected map fields become key-ordered
// btreemap.Map values and selected messages and enums get JSON methods.
package gen

import (
	"fmt"
	"slices"
	"strconv"

	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/reflect/protoreflect"

	errspkg "github.com/fnasraoui/logicaldecoding/internal/compiler/errors"
)

// FileSuffix is appended to the schema path, minus its extension, to name the
// generated file.
const FileSuffix = ".ldpb.go"

// Generate emits one Go file for every file the plugin was asked to generate.
func Generate(plugin *protogen.Plugin, opts Options) (Summary, error) {
	var total Summary
	for _, f := range plugin.Files {
		if !f.Generate {
			continue
		}
		s, err := generateFile(plugin, f, opts)
		if err != nil {
			return total, fmt.Errorf("%s: %w", f.Desc.Path(), err)
		}
		total.Add(s)
	}
	return total, nil
}

type fileContext struct {
	g       *protogen.GeneratedFile
	file    *protogen.File
	opts    Options
	summary Summary
}

func (c *fileContext) ordered(field *protogen.Field) bool {
	return c.opts.OrderedMaps.Match(field.Desc.FullName())
}

func (c *fileContext) structured(m *protogen.Message) bool {
	return c.opts.StructuredFormat.Match(m.Desc.FullName())
}

func (c *fileContext) structuredEnum(e *protogen.Enum) bool {
	return c.opts.StructuredFormat.Match(e.Desc.FullName())
}

func generateFile(plugin *protogen.Plugin, file *protogen.File, opts Options) (Summary, error) {
	g := plugin.NewGeneratedFile(file.GeneratedFilenamePrefix+FileSuffix, file.GoImportPath)
	c := &fileContext{g: g, file: file, opts: opts, summary: Summary{Files: 1}}

	g.P("// Code generated by protoc-gen-go-ldpb. DO NOT EDIT.")
	g.P("// source: ", file.Desc.Path())
	g.P()
	g.P("package ", file.GoPackageName)
	g.P()

	for _, e := range file.Enums {
		c.genEnum(e)
	}
	for _, m := range file.Messages {
		if err := c.genMessage(m); err != nil {
			return c.summary, err
		}
	}
	return c.summary, nil
}

func (c *fileContext) genEnum(e *protogen.Enum) {
	g := c.g
	c.summary.Enums++
	name := e.GoIdent.GoName

	g.P(e.Comments.Leading, "type ", name, " int32")
	g.P()
	g.P("const (")
	for _, v := range e.Values {
		g.P(v.Comments.Leading, v.GoIdent.GoName, " ", name, " = ", v.Desc.Number())
	}
	g.P(")")
	g.P()

	// Aliases share a number; the name table keeps the first declared one.
	g.P("var ", name, "_name = map[int32]string{")
	seen := make(map[int32]bool, len(e.Values))
	for _, v := range e.Values {
		n := int32(v.Desc.Number())
		if seen[n] {
			continue
		}
		seen[n] = true
		g.P(n, ": ", strconv.Quote(string(v.Desc.Name())), ",")
	}
	g.P("}")
	g.P()
	g.P("var ", name, "_value = map[string]int32{")
	for _, v := range e.Values {
		g.P(strconv.Quote(string(v.Desc.Name())), ": ", v.Desc.Number(), ",")
	}
	g.P("}")
	g.P()

	g.P("func (x ", name, ") Enum() *", name, " {")
	g.P("p := new(", name, ")")
	g.P("*p = x")
	g.P("return p")
	g.P("}")
	g.P()
	g.P("func (x ", name, ") String() string {")
	g.P("if s, ok := ", name, "_name[int32(x)]; ok {")
	g.P("return s")
	g.P("}")
	g.P("return ", strconvPackage.Ident("Itoa"), "(int(x))")
	g.P("}")
	g.P()

	if c.structuredEnum(e) {
		c.summary.StructuredTypes++
		g.P("func (x ", name, ") MarshalJSON() ([]byte, error) {")
		g.P("return ", jsoncodecPackage.Ident("MarshalEnum"), "(int32(x), ", name, "_name)")
		g.P("}")
		g.P()
		g.P("func (x *", name, ") UnmarshalJSON(b []byte) error {")
		g.P("v, err := ", jsoncodecPackage.Ident("UnmarshalEnum"), "(b, ", strconv.Quote(string(e.Desc.FullName())), ", ", name, "_value)")
		g.P("if err != nil {")
		g.P("return err")
		g.P("}")
		g.P("*x = ", name, "(v)")
		g.P("return nil")
		g.P("}")
		g.P()
	}
}

func (c *fileContext) genMessage(m *protogen.Message) error {
	if m.Desc.IsMapEntry() {
		return nil
	}
	c.summary.Messages++

	if err := c.genStruct(m); err != nil {
		return err
	}
	if err := c.genOneofTypes(m); err != nil {
		return err
	}
	if err := c.genGetters(m); err != nil {
		return err
	}
	if err := c.genWire(m); err != nil {
		return err
	}
	if c.structured(m) {
		c.summary.StructuredTypes++
		if err := c.genJSON(m); err != nil {
			return err
		}
	}

	for _, e := range m.Enums {
		c.genEnum(e)
	}
	for _, nested := range m.Messages {
		if err := c.genMessage(nested); err != nil {
			return err
		}
	}
	return nil
}

func (c *fileContext) genStruct(m *protogen.Message) error {
	g := c.g
	json := c.structured(m)
	if err := checkFieldNames(m, json); err != nil {
		return err
	}

	g.P(m.Comments.Leading, "type ", m.GoIdent.GoName, " struct {")
	for _, field := range m.Fields {
		if isRealOneof(field) {
			if field.Oneof.Fields[0] != field {
				continue
			}
			oneof := field.Oneof
			g.P(oneof.Comments.Leading, "// Types that are valid to be assigned to ", oneof.GoName, ":")
			g.P("//")
			for _, f := range oneof.Fields {
				g.P("//\t*", f.GoIdent.GoName)
			}
			tag := ""
			if json {
				tag = " `json:\"-\"`"
			}
			g.P(oneof.GoName, " ", oneofInterface(m, oneof), tag)
			continue
		}

		typ, err := c.fieldType(field)
		if err != nil {
			return err
		}
		if field.Desc.IsMap() {
			if c.ordered(field) {
				c.summary.OrderedMaps++
			} else {
				c.summary.HashMaps++
			}
		}
		tag := ""
		if json {
			tag = " `json:\"" + jsonName(field) + "\"`"
		}
		g.P(field.Comments.Leading, field.GoName, " ", typ, tag)
	}
	g.P("}")
	g.P()
	return nil
}

var (
	wireMethods = []string{"AppendWire", "MarshalWire", "UnmarshalWire"}
	jsonMethods = []string{"MarshalJSON", "UnmarshalJSON"}
)

// checkFieldNames rejects struct fields that would share a name with a
// method generated on the same type. protogen only reserves the method names
// of its own runtime.
func checkFieldNames(m *protogen.Message, json bool) error {
	methods := wireMethods
	if json {
		methods = append(slices.Clone(wireMethods), jsonMethods...)
	}
	for _, field := range m.Fields {
		name, schemaName := field.GoName, field.Desc.Name()
		if isRealOneof(field) {
			name, schemaName = field.Oneof.GoName, field.Oneof.Desc.Name()
		}
		if slices.Contains(methods, name) {
			return fmt.Errorf("%w: %s.%s becomes %s", errspkg.ErrNameConflict, m.Desc.FullName(), schemaName, name)
		}
	}
	return nil
}

func jsonName(field *protogen.Field) string {
	name := field.Desc.JSONName()
	if field.Desc.Cardinality() == protoreflect.Required {
		return name
	}
	return name + ",omitempty"
}

// oneofInterface is the name of the sealed interface of a tagged union.
func oneofInterface(m *protogen.Message, oneof *protogen.Oneof) string {
	return "is" + m.GoIdent.GoName + "_" + oneof.GoName
}

func (c *fileContext) genOneofTypes(m *protogen.Message) error {
	g := c.g
	for _, oneof := range m.Oneofs {
		if oneof.Desc.IsSynthetic() {
			continue
		}
		iface := oneofInterface(m, oneof)
		g.P("type ", iface, " interface {")
		g.P(iface, "()")
		g.P("}")
		g.P()
		for _, field := range oneof.Fields {
			typ, err := elemType(g, field)
			if err != nil {
				return err
			}
			g.P(field.Comments.Leading, "type ", field.GoIdent.GoName, " struct {")
			g.P(field.GoName, " ", typ)
			g.P("}")
			g.P()
		}
		for _, field := range oneof.Fields {
			g.P("func (*", field.GoIdent.GoName, ") ", iface, "() {}")
			g.P()
		}
	}
	return nil
}

func (c *fileContext) genGetters(m *protogen.Message) error {
	g := c.g
	name := m.GoIdent.GoName
	for _, oneof := range m.Oneofs {
		if oneof.Desc.IsSynthetic() {
			continue
		}
		g.P("func (x *", name, ") Get", oneof.GoName, "() ", oneofInterface(m, oneof), " {")
		g.P("if x != nil {")
		g.P("return x.", oneof.GoName)
		g.P("}")
		g.P("return nil")
		g.P("}")
		g.P()
	}
	for _, field := range m.Fields {
		if isRealOneof(field) {
			typ, err := elemType(g, field)
			if err != nil {
				return err
			}
			g.P("func (x *", name, ") Get", field.GoName, "() ", typ, " {")
			g.P("if v, ok := x.Get", field.Oneof.GoName, "().(*", field.GoIdent.GoName, "); ok {")
			g.P("return v.", field.GoName)
			g.P("}")
			g.P("return ", c.zeroValue(field))
			g.P("}")
			g.P()
			continue
		}

		typ, err := c.fieldType(field)
		if err != nil {
			return err
		}
		pointer := !field.Desc.IsList() && !field.Desc.IsMap() && shapeOf(field) == shapePointer
		if pointer {
			typ = typ[1:]
		}
		g.P("func (x *", name, ") Get", field.GoName, "() ", typ, " {")
		if pointer {
			g.P("if x != nil && x.", field.GoName, " != nil {")
			g.P("return *x.", field.GoName)
		} else {
			g.P("if x != nil {")
			g.P("return x.", field.GoName)
		}
		g.P("}")
		g.P("return ", c.zeroValue(field))
		g.P("}")
		g.P()
	}
	return nil
}
