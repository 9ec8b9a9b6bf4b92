package gen

import (
	"fmt"

	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/reflect/protoreflect"

	errspkg "github.com/fnasraoui/logicaldecoding/internal/compiler/errors"
)

const (
	wirecodecPackage = protogen.GoImportPath("github.com/fnasraoui/logicaldecoding/wirecodec")
	jsoncodecPackage = protogen.GoImportPath("github.com/fnasraoui/logicaldecoding/jsoncodec")
	btreemapPackage  = protogen.GoImportPath("github.com/fnasraoui/logicaldecoding/btreemap")
	protowirePackage = protogen.GoImportPath("google.golang.org/protobuf/encoding/protowire")
	strconvPackage   = protogen.GoImportPath("strconv")
)

type scalarInfo struct {
	goType string
	codec  string
}

var scalars = map[protoreflect.Kind]scalarInfo{
	protoreflect.BoolKind:     {"bool", "Bool"},
	protoreflect.Int32Kind:    {"int32", "Int32"},
	protoreflect.Sint32Kind:   {"int32", "Sint32"},
	protoreflect.Sfixed32Kind: {"int32", "Sfixed32"},
	protoreflect.Uint32Kind:   {"uint32", "Uint32"},
	protoreflect.Fixed32Kind:  {"uint32", "Fixed32"},
	protoreflect.Int64Kind:    {"int64", "Int64"},
	protoreflect.Sint64Kind:   {"int64", "Sint64"},
	protoreflect.Sfixed64Kind: {"int64", "Sfixed64"},
	protoreflect.Uint64Kind:   {"uint64", "Uint64"},
	protoreflect.Fixed64Kind:  {"uint64", "Fixed64"},
	protoreflect.FloatKind:    {"float32", "Float"},
	protoreflect.DoubleKind:   {"float64", "Double"},
	protoreflect.StringKind:   {"string", "String"},
	protoreflect.BytesKind:    {"[]byte", "Bytes"},
}

// fieldShape is how a singular, non-oneof field is stored.
type fieldShape int

const (
	// shapeValue stores the value directly: required fields and fields without
	// presence.
	shapeValue fieldShape = iota
	// shapePointer stores *T so that absence can be told apart from zero.
	shapePointer
	// shapeNilable covers bytes and messages, whose nil value marks absence.
	shapeNilable
)

// isRealOneof reports whether field belongs to a oneof that is generated as a
// tagged union. proto3 optional fields live in synthetic oneofs and are
// plain pointer fields instead.
func isRealOneof(field *protogen.Field) bool {
	return field.Oneof != nil && !field.Oneof.Desc.IsSynthetic()
}

func shapeOf(field *protogen.Field) fieldShape {
	d := field.Desc
	switch {
	case d.Kind() == protoreflect.MessageKind, d.Kind() == protoreflect.BytesKind:
		return shapeNilable
	case d.Cardinality() == protoreflect.Required:
		return shapeValue
	case d.HasPresence():
		return shapePointer
	default:
		return shapeValue
	}
}

// elemType is the Go type of one value of field, ignoring cardinality.
func elemType(g *protogen.GeneratedFile, field *protogen.Field) (string, error) {
	switch field.Desc.Kind() {
	case protoreflect.EnumKind:
		return g.QualifiedGoIdent(field.Enum.GoIdent), nil
	case protoreflect.MessageKind:
		return "*" + g.QualifiedGoIdent(field.Message.GoIdent), nil
	case protoreflect.GroupKind:
		return "", fmt.Errorf("%w: group field %s", errspkg.ErrUnsupportedKind, field.Desc.FullName())
	}
	s, ok := scalars[field.Desc.Kind()]
	if !ok {
		return "", fmt.Errorf("%w: %v field %s", errspkg.ErrUnsupportedKind, field.Desc.Kind(), field.Desc.FullName())
	}
	return s.goType, nil
}

// codecExpr is the wirecodec expression that encodes one value of field.
func codecExpr(g *protogen.GeneratedFile, field *protogen.Field) (string, error) {
	switch field.Desc.Kind() {
	case protoreflect.EnumKind:
		return g.QualifiedGoIdent(wirecodecPackage.Ident("Enum")) + "[" + g.QualifiedGoIdent(field.Enum.GoIdent) + "]()", nil
	case protoreflect.MessageKind:
		return g.QualifiedGoIdent(wirecodecPackage.Ident("MessageOf")) + "[" + g.QualifiedGoIdent(field.Message.GoIdent) + "]()", nil
	case protoreflect.GroupKind:
		return "", fmt.Errorf("%w: group field %s", errspkg.ErrUnsupportedKind, field.Desc.FullName())
	}
	s, ok := scalars[field.Desc.Kind()]
	if !ok {
		return "", fmt.Errorf("%w: %v field %s", errspkg.ErrUnsupportedKind, field.Desc.Kind(), field.Desc.FullName())
	}
	return g.QualifiedGoIdent(wirecodecPackage.Ident(s.codec)), nil
}

// mapTypes returns the key and value Go types of a map field.
func mapTypes(g *protogen.GeneratedFile, field *protogen.Field) (key, value string, err error) {
	key, err = elemType(g, field.Message.Fields[0])
	if err != nil {
		return "", "", err
	}
	value, err = elemType(g, field.Message.Fields[1])
	if err != nil {
		return "", "", err
	}
	return key, value, nil
}

// fieldType is the Go type of a struct field. Oneof members are not struct
// fields and must not be passed here.
func (c *fileContext) fieldType(field *protogen.Field) (string, error) {
	g := c.g
	if field.Desc.IsMap() {
		k, v, err := mapTypes(g, field)
		if err != nil {
			return "", err
		}
		if c.ordered(field) {
			return g.QualifiedGoIdent(btreemapPackage.Ident("Map")) + "[" + k + ", " + v + "]", nil
		}
		return "map[" + k + "]" + v, nil
	}
	elem, err := elemType(g, field)
	if err != nil {
		return "", err
	}
	if field.Desc.IsList() {
		return "[]" + elem, nil
	}
	if shapeOf(field) == shapePointer {
		return "*" + elem, nil
	}
	return elem, nil
}

// zeroValue is the literal returned by a getter on a nil message.
func (c *fileContext) zeroValue(field *protogen.Field) string {
	if field.Desc.IsMap() && c.ordered(field) {
		typ, _ := c.fieldType(field)
		return typ + "{}"
	}
	if field.Desc.IsList() || field.Desc.IsMap() {
		return "nil"
	}
	switch field.Desc.Kind() {
	case protoreflect.MessageKind, protoreflect.BytesKind:
		return "nil"
	case protoreflect.BoolKind:
		return "false"
	case protoreflect.StringKind:
		return `""`
	default:
		return "0"
	}
}
