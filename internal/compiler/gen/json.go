package gen

import (
	"strconv"
	"strings"

	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// genJSON emits MarshalJSON and UnmarshalJSON. Messages without tagged unions
// go through a method-less copy of the struct. Tagged unions have no natural
// JSON form, so their active variant is flattened into the message object
// under the variant's JSON name.
func (c *fileContext) genJSON(m *protogen.Message) error {
	g := c.g
	name := m.GoIdent.GoName

	var oneofs []*protogen.Oneof
	for _, o := range m.Oneofs {
		if !o.Desc.IsSynthetic() {
			oneofs = append(oneofs, o)
		}
	}

	if len(oneofs) == 0 {
		g.P("func (x ", name, ") MarshalJSON() ([]byte, error) {")
		g.P("type plain ", name)
		g.P("return ", jsoncodecPackage.Ident("Marshal"), "(plain(x))")
		g.P("}")
		g.P()
		g.P("func (x *", name, ") UnmarshalJSON(b []byte) error {")
		g.P("type plain ", name)
		g.P("var v plain")
		g.P("if err := ", jsoncodecPackage.Ident("Unmarshal"), "(b, &v); err != nil {")
		g.P("return err")
		g.P("}")
		g.P("*x = ", name, "(v)")
		g.P("return nil")
		g.P("}")
		g.P()
		return nil
	}

	fields, err := c.variantFields(oneofs)
	if err != nil {
		return err
	}

	g.P("func (x ", name, ") MarshalJSON() ([]byte, error) {")
	g.P("type plain ", name)
	g.P("v := struct {")
	g.P("plain")
	g.P(fields)
	g.P("}{plain: plain(x)}")
	for _, o := range oneofs {
		g.P("switch o := x.", o.GoName, ".(type) {")
		for _, f := range o.Fields {
			g.P("case *", f.GoIdent.GoName, ":")
			if f.Desc.Kind() == protoreflect.MessageKind {
				g.P("v.", f.GoName, " = o.", f.GoName)
				g.P("if v.", f.GoName, " == nil {")
				g.P("v.", f.GoName, " = new(", g.QualifiedGoIdent(f.Message.GoIdent), ")")
				g.P("}")
			} else {
				g.P("v.", f.GoName, " = &o.", f.GoName)
			}
		}
		g.P("}")
	}
	g.P("return ", jsoncodecPackage.Ident("Marshal"), "(v)")
	g.P("}")
	g.P()

	g.P("func (x *", name, ") UnmarshalJSON(b []byte) error {")
	g.P("type plain ", name)
	g.P("var v struct {")
	g.P("plain")
	g.P(fields)
	g.P("}")
	g.P("if err := ", jsoncodecPackage.Ident("Unmarshal"), "(b, &v); err != nil {")
	g.P("return err")
	g.P("}")
	g.P("*x = ", name, "(v.plain)")
	for _, o := range oneofs {
		set := make([]string, 0, len(o.Fields))
		for _, f := range o.Fields {
			set = append(set, "v."+f.GoName+" != nil")
		}
		g.P("if err := ", jsoncodecPackage.Ident("CheckOneof"), "(", strconv.Quote(string(o.Desc.Name())), ", ", strings.Join(set, ", "), "); err != nil {")
		g.P("return err")
		g.P("}")
		g.P("switch {")
		for _, f := range o.Fields {
			g.P("case v.", f.GoName, " != nil:")
			if f.Desc.Kind() == protoreflect.MessageKind {
				g.P("x.", o.GoName, " = &", f.GoIdent.GoName, "{", f.GoName, ": v.", f.GoName, "}")
			} else {
				g.P("x.", o.GoName, " = &", f.GoIdent.GoName, "{", f.GoName, ": *v.", f.GoName, "}")
			}
		}
		g.P("}")
	}
	g.P("return nil")
	g.P("}")
	g.P()
	return nil
}

// variantFields renders one optional struct field per oneof variant, used by
// both JSON methods. Message variants are already pointers.
func (c *fileContext) variantFields(oneofs []*protogen.Oneof) (string, error) {
	var b strings.Builder
	for _, o := range oneofs {
		for _, f := range o.Fields {
			typ, err := elemType(c.g, f)
			if err != nil {
				return "", err
			}
			if f.Desc.Kind() != protoreflect.MessageKind {
				typ = "*" + typ
			}
			b.WriteString(f.GoName + " " + typ + " `json:\"" + f.Desc.JSONName() + ",omitempty\"`\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}
