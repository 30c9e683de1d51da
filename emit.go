package main

import (
	"bytes"
	"fmt"
)

const indent = "    "

// EmitOptions controls the text produced by the emitter.
type EmitOptions struct {
	// Render (result ...) for functions with a declared return type.
	ResultTypes bool
}

// EmitModule serializes m to the WebAssembly text format.
func EmitModule(m *WatModule) string {
	return EmitModuleWith(m, EmitOptions{})
}

// EmitModuleWith serializes m: all functions in order, then all exports.
func EmitModuleWith(m *WatModule, opts EmitOptions) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "(module $%s\n", m.Name)
	for _, fn := range m.Funcs {
		emitFunc(&buf, fn, opts)
	}
	for _, export := range m.Exports {
		fmt.Fprintf(&buf, "%s(export %q (func $%s))\n", indent, export.Name, export.Name)
	}
	buf.WriteString(")\n")
	return buf.String()
}

func emitFunc(buf *bytes.Buffer, fn WatFunc, opts EmitOptions) {
	fmt.Fprintf(buf, "%s(func $%s", indent, fn.Name)
	if opts.ResultTypes && fn.Result != "" {
		fmt.Fprintf(buf, " (result %s)", fn.Result)
	}
	buf.WriteString("\n")
	buf.WriteString(indent + ")\n")
}
