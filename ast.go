package main

import "strings"

// Module is the root of a parsed source file.
type Module struct {
	Name string
	// In source order.
	Decls []Decl
}

// Decl is a top-level declaration inside a module. The set of
// implementations is closed to this package.
type Decl interface {
	DeclLine() int
	declNode()
}

// ProcDecl declares a procedure.
type ProcDecl struct {
	Name   string
	Line   int
	Export bool
	// Unresolved return type identifier, "" when absent.
	ReturnTypeID string
}

func (d *ProcDecl) DeclLine() int { return d.Line }
func (*ProcDecl) declNode()       {}

// ModuleBuilder accumulates the parts of a Module.
type ModuleBuilder struct {
	name  string
	decls []Decl
}

func NewModuleBuilder() *ModuleBuilder {
	return &ModuleBuilder{}
}

func (b *ModuleBuilder) SetName(name string) *ModuleBuilder {
	b.name = name
	return b
}

func (b *ModuleBuilder) AddDecl(decl Decl) *ModuleBuilder {
	b.decls = append(b.decls, decl)
	return b
}

// Build hands the accumulated fields to a new Module and resets the builder.
func (b *ModuleBuilder) Build() *Module {
	m := &Module{Name: b.name, Decls: b.decls}
	*b = ModuleBuilder{}
	return m
}

// ProcDeclBuilder accumulates the parts of a ProcDecl.
type ProcDeclBuilder struct {
	decl ProcDecl
}

func NewProcDeclBuilder() *ProcDeclBuilder {
	return &ProcDeclBuilder{}
}

// SetName sets the procedure name and the line it is declared on.
func (b *ProcDeclBuilder) SetName(name string, line int) *ProcDeclBuilder {
	b.decl.Name = name
	b.decl.Line = line
	return b
}

func (b *ProcDeclBuilder) SetExport(export bool) *ProcDeclBuilder {
	b.decl.Export = export
	return b
}

func (b *ProcDeclBuilder) SetReturnTypeID(id string) *ProcDeclBuilder {
	b.decl.ReturnTypeID = id
	return b
}

// Build returns the procedure and resets the builder.
func (b *ProcDeclBuilder) Build() *ProcDecl {
	d := b.decl
	b.decl = ProcDecl{}
	return &d
}

// BuildDecl is Build typed as a Decl, for ModuleBuilder.AddDecl.
func (b *ProcDeclBuilder) BuildDecl() Decl {
	return b.Build()
}

// ToSExpr converts a source module to its s-expression form, e.g.
//
//	(module "M" (proc "P" export (returns "INTEGER")))
func ToSExpr(m *Module) string {
	var sb strings.Builder
	sb.WriteString("(module " + quote(m.Name))
	for _, decl := range m.Decls {
		sb.WriteString(" " + DeclToSExpr(decl))
	}
	sb.WriteString(")")
	return sb.String()
}

// DeclToSExpr converts a single declaration to its s-expression form.
func DeclToSExpr(decl Decl) string {
	switch d := decl.(type) {
	case *ProcDecl:
		result := "(proc " + quote(d.Name)
		if d.Export {
			result += " export"
		}
		if d.ReturnTypeID != "" {
			result += " (returns " + quote(d.ReturnTypeID) + ")"
		}
		return result + ")"
	default:
		return ""
	}
}

func quote(s string) string {
	return "\"" + s + "\""
}
