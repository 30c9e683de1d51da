package main

// Options configures one run of the pipeline.
type Options struct {
	EmitResultTypes bool
}

// Result holds the product of every pipeline stage.
type Result struct {
	Source string
	Module *Module
	Wat    *WatModule
	// Procedure signatures recorded while compiling.
	Procs *Table[Type]
	Code  string
}

// CompileSource runs the scanner, parser, compiler and emitter over source.
// Each call owns all of its state, so calls may run concurrently.
func CompileSource(source string, opts Options) (*Result, error) {
	module, err := Parse(source)
	if err != nil {
		return nil, err
	}

	c := NewCompiler()
	wat, err := c.CompileModule(module)
	if err != nil {
		return nil, err
	}

	code := EmitModuleWith(wat, EmitOptions{ResultTypes: opts.EmitResultTypes})
	return &Result{
		Source: source,
		Module: module,
		Wat:    wat,
		Procs:  c.Procs,
		Code:   code,
	}, nil
}

// CheckSource runs every stage before emission and reports the first error.
func CheckSource(source string) (*Module, error) {
	module, err := Parse(source)
	if err != nil {
		return nil, err
	}
	if _, err := Compile(module); err != nil {
		return nil, err
	}
	return module, nil
}

// OutputFileName derives the name of the emitted file from the module name.
func OutputFileName(m *WatModule, ext string) string {
	return m.Name + ext
}
