package main

import "strings"

// WatType is a WebAssembly value type.
type WatType string

const (
	I32 WatType = "i32"
)

// WatModule is a WebAssembly text-format module.
type WatModule struct {
	Name  string
	Funcs []WatFunc
	// A subsequence of Funcs, by name.
	Exports []WatExport
}

// WatFunc is a function without a body.
type WatFunc struct {
	Name string
	// Result is "" for a function without a result.
	Result WatType
}

// WatExport exports the function of the same name.
type WatExport struct {
	Name string
}

// FuncBuilder accumulates the parts of a WatFunc.
type FuncBuilder struct {
	fn WatFunc
}

func NewFuncBuilder() *FuncBuilder {
	return &FuncBuilder{}
}

func (b *FuncBuilder) SetName(name string) *FuncBuilder {
	b.fn.Name = name
	return b
}

func (b *FuncBuilder) SetResult(result WatType) *FuncBuilder {
	b.fn.Result = result
	return b
}

// Build returns the function and resets the builder.
func (b *FuncBuilder) Build() WatFunc {
	fn := b.fn
	b.fn = WatFunc{}
	return fn
}

// WatToSExpr converts a target module to its s-expression form, e.g.
//
//	(module "M" (func "P" (result i32)) (export "P"))
func WatToSExpr(m *WatModule) string {
	var sb strings.Builder
	sb.WriteString("(module " + quote(m.Name))
	for _, fn := range m.Funcs {
		sb.WriteString(" (func " + quote(fn.Name))
		if fn.Result != "" {
			sb.WriteString(" (result " + string(fn.Result) + ")")
		}
		sb.WriteString(")")
	}
	for _, export := range m.Exports {
		sb.WriteString(" (export " + quote(export.Name) + ")")
	}
	sb.WriteString(")")
	return sb.String()
}
