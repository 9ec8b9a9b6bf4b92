package gen

import (
	"sort"

	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// byNumber returns the fields of m sorted by field number.
func byNumber(m *protogen.Message) []*protogen.Field {
	fields := append([]*protogen.Field(nil), m.Fields...)
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Desc.Number() < fields[j].Desc.Number()
	})
	return fields
}

func (c *fileContext) genWire(m *protogen.Message) error {
	if err := c.genAppendWire(m); err != nil {
		return err
	}
	name := m.GoIdent.GoName
	g := c.g
	g.P("func (x *", name, ") MarshalWire() ([]byte, error) {")
	g.P("return x.AppendWire(nil), nil")
	g.P("}")
	g.P()
	return c.genUnmarshalWire(m)
}

func (c *fileContext) genAppendWire(m *protogen.Message) error {
	g := c.g
	g.P("// AppendWire appends the protobuf encoding of x to b. Fields are written")
	g.P("// in field number order and map entries in key order.")
	g.P("func (x *", m.GoIdent.GoName, ") AppendWire(b []byte) []byte {")
	g.P("if x == nil {")
	g.P("return b")
	g.P("}")

	written := make(map[*protogen.Oneof]bool)
	for _, field := range byNumber(m) {
		if isRealOneof(field) {
			if written[field.Oneof] {
				continue
			}
			written[field.Oneof] = true
			if err := c.appendOneof(m, field.Oneof); err != nil {
				return err
			}
			continue
		}
		if err := c.appendField(field); err != nil {
			return err
		}
	}
	g.P("return b")
	g.P("}")
	g.P()
	return nil
}

func (c *fileContext) appendOneof(m *protogen.Message, oneof *protogen.Oneof) error {
	g := c.g
	fields := append([]*protogen.Field(nil), oneof.Fields...)
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Desc.Number() < fields[j].Desc.Number()
	})
	g.P("switch o := x.", oneof.GoName, ".(type) {")
	for _, field := range fields {
		codec, err := codecExpr(g, field)
		if err != nil {
			return err
		}
		g.P("case *", field.GoIdent.GoName, ":")
		g.P("b = ", codec, ".AppendField(b, ", field.Desc.Number(), ", o.", field.GoName, ")")
	}
	g.P("}")
	return nil
}

func (c *fileContext) appendField(field *protogen.Field) error {
	g := c.g
	num := field.Desc.Number()
	ref := "x." + field.GoName

	if field.Desc.IsMap() {
		key, value := field.Message.Fields[0], field.Message.Fields[1]
		kt, vt, err := mapTypes(g, field)
		if err != nil {
			return err
		}
		kc, err := codecExpr(g, key)
		if err != nil {
			return err
		}
		vc, err := codecExpr(g, value)
		if err != nil {
			return err
		}
		fn := "AppendGoMap"
		if c.ordered(field) {
			fn = "AppendMap"
		}
		g.P("b = ", wirecodecPackage.Ident(fn), "[", kt, ", ", vt, "](b, ", num, ", ", ref, ", ", kc, ", ", vc, ")")
		return nil
	}

	codec, err := codecExpr(g, field)
	if err != nil {
		return err
	}
	if field.Desc.IsList() {
		if field.Desc.IsPacked() {
			g.P("b = ", codec, ".AppendPacked(b, ", num, ", ", ref, ")")
		} else {
			g.P("b = ", codec, ".AppendRepeated(b, ", num, ", ", ref, ")")
		}
		return nil
	}

	switch {
	case field.Desc.Cardinality() == protoreflect.Required && field.Desc.Kind() != protoreflect.MessageKind:
		g.P("b = ", codec, ".AppendField(b, ", num, ", ", ref, ")")
	case shapeOf(field) == shapePointer:
		g.P("if ", ref, " != nil {")
		g.P("b = ", codec, ".AppendField(b, ", num, ", *", ref, ")")
		g.P("}")
	case field.Desc.HasPresence():
		// Messages and bytes with presence: nil is absent.
		g.P("if ", ref, " != nil {")
		g.P("b = ", codec, ".AppendField(b, ", num, ", ", ref, ")")
		g.P("}")
	default:
		g.P("if ", implicitPresent(field, ref), " {")
		g.P("b = ", codec, ".AppendField(b, ", num, ", ", ref, ")")
		g.P("}")
	}
	return nil
}

// implicitPresent is the condition under which a field without presence is
// written: its value differs from the zero value.
func implicitPresent(field *protogen.Field, ref string) string {
	switch field.Desc.Kind() {
	case protoreflect.BoolKind:
		return ref
	case protoreflect.StringKind, protoreflect.BytesKind:
		return "len(" + ref + ") > 0"
	default:
		return ref + " != 0"
	}
}

func (c *fileContext) genUnmarshalWire(m *protogen.Message) error {
	g := c.g
	name := m.GoIdent.GoName

	g.P("// UnmarshalWire replaces x with the message encoded in b. Unknown fields")
	g.P("// are skipped.")
	g.P("func (x *", name, ") UnmarshalWire(b []byte) error {")
	g.P("*x = ", name, "{}")
	g.P("return ", wirecodecPackage.Ident("DecodeFields"), "(b, func(num ", protowirePackage.Ident("Number"), ", typ ", protowirePackage.Ident("Type"), ", b []byte) (int, error) {")
	if fields := byNumber(m); len(fields) > 0 {
		g.P("switch num {")
		for _, field := range fields {
			g.P("case ", field.Desc.Number(), ":")
			if err := c.consumeField(field); err != nil {
				return err
			}
		}
		g.P("}")
	}
	g.P("return ", wirecodecPackage.Ident("SkipField"), "(num, typ, b)")
	g.P("})")
	g.P("}")
	g.P()
	return nil
}

func (c *fileContext) consumeField(field *protogen.Field) error {
	g := c.g
	ref := "&x." + field.GoName

	if field.Desc.IsMap() {
		key, value := field.Message.Fields[0], field.Message.Fields[1]
		kt, vt, err := mapTypes(g, field)
		if err != nil {
			return err
		}
		kc, err := codecExpr(g, key)
		if err != nil {
			return err
		}
		vc, err := codecExpr(g, value)
		if err != nil {
			return err
		}
		fn := "ConsumeGoMapEntry"
		if c.ordered(field) {
			fn = "ConsumeMapEntry"
		}
		g.P("return ", wirecodecPackage.Ident(fn), "[", kt, ", ", vt, "](typ, b, ", ref, ", ", kc, ", ", vc, ")")
		return nil
	}

	codec, err := codecExpr(g, field)
	if err != nil {
		return err
	}
	switch {
	case isRealOneof(field):
		g.P("v, n, err := ", codec, ".ConsumeField(typ, b)")
		g.P("if err != nil {")
		g.P("return 0, err")
		g.P("}")
		g.P("x.", field.Oneof.GoName, " = &", field.GoIdent.GoName, "{", field.GoName, ": v}")
		g.P("return n, nil")
	case field.Desc.IsList():
		g.P("return ", codec, ".ConsumeRepeated(typ, b, ", ref, ")")
	case shapeOf(field) == shapePointer:
		g.P("return ", codec, ".ConsumeOptional(typ, b, ", ref, ")")
	default:
		g.P("return ", codec, ".ConsumeInto(typ, b, ", ref, ")")
	}
	return nil
}
