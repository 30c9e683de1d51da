package main

// Compiler translates a source Module into a WatModule. A Compiler holds the
// tables of one compilation and must not be reused.
type Compiler struct {
	// Builtin types, by source name.
	Types *Table[Type]
	// Signatures of the procedures compiled so far.
	Procs *Table[Type]

	funcBuilder *FuncBuilder
}

// NewCompiler returns a compiler with the builtin type table and an empty
// procedure table.
func NewCompiler() *Compiler {
	return &Compiler{
		Types:       NewBuiltinTypeTable(),
		Procs:       NewTable[Type](),
		funcBuilder: NewFuncBuilder(),
	}
}

// Compile translates module, stopping at the first semantic error.
func Compile(module *Module) (*WatModule, error) {
	return NewCompiler().CompileModule(module)
}

// CompileModule compiles the declarations of module in source order.
func (c *Compiler) CompileModule(module *Module) (*WatModule, error) {
	out := &WatModule{Name: module.Name}
	for _, decl := range module.Decls {
		fn, export, err := c.compileDecl(decl)
		if err != nil {
			return nil, err
		}
		out.Funcs = append(out.Funcs, fn)
		if export != nil {
			out.Exports = append(out.Exports, *export)
		}
	}
	return out, nil
}

func (c *Compiler) compileDecl(decl Decl) (WatFunc, *WatExport, error) {
	switch d := decl.(type) {
	case *ProcDecl:
		return c.compileProc(d)
	default:
		return WatFunc{}, nil, errUnsupportedDeclaration(decl)
	}
}

func (c *Compiler) compileProc(decl *ProcDecl) (WatFunc, *WatExport, error) {
	if _, ok := c.Procs.Lookup(decl.Name); ok {
		return WatFunc{}, nil, errNameRedefinition(decl.Name, decl.Line)
	}

	var ret Type
	var result WatType
	if decl.ReturnTypeID != "" {
		t, ok := c.Types.Lookup(decl.ReturnTypeID)
		if !ok {
			return WatFunc{}, nil, errUnknownType(decl.ReturnTypeID, decl.Line)
		}
		wt, err := toWatType(t, decl.Line)
		if err != nil {
			return WatFunc{}, nil, err
		}
		ret, result = t, wt
	}
	c.Procs.Push(decl.Name, NewProcType(ret))

	var export *WatExport
	if decl.Export {
		export = &WatExport{Name: decl.Name}
	}
	fn := c.funcBuilder.SetName(decl.Name).SetResult(result).Build()
	return fn, export, nil
}

// toWatType maps a semantic type to its WebAssembly value type.
func toWatType(t Type, line int) (WatType, error) {
	switch t.Kind() {
	case TypeInt:
		return I32, nil
	default:
		return "", errUnsupportedType(t, line)
	}
}
