package main

// Parser builds a Module from a source text with one token of lookahead.
//
//	Module   = "MODULE" Identifier ";" { Decl } "END" "." Eof .
//	Decl     = "PROCEDURE" ProcBody ";" .
//	ProcBody = Identifier [ "*" ] [ ":" Identifier ] ";" "END" .
type Parser struct {
	scanner *Scanner
	current Token

	procBuilder *ProcDeclBuilder
}

// NewParser creates a parser for source and reads its first token.
func NewParser(source string) (*Parser, error) {
	p := &Parser{
		scanner:     NewScanner(source),
		procBuilder: NewProcDeclBuilder(),
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// ParseModule parses a whole module, which must be followed by the end of
// the input.
func (p *Parser) ParseModule() (*Module, error) {
	b := NewModuleBuilder()

	if err := p.expect(MODULE); err != nil {
		return nil, err
	}
	name, _, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	b.SetName(name)
	if err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}

	for {
		decl, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		if decl == nil {
			break
		}
		b.AddDecl(decl)
	}

	if err := p.expect(END); err != nil {
		return nil, err
	}
	if err := p.expect(DOT); err != nil {
		return nil, err
	}
	if err := p.expect(EOF); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// parseDecl parses one declaration, or returns nil without consuming
// anything when the current token does not start one.
func (p *Parser) parseDecl() (Decl, error) {
	ok, err := p.isMatch(PROCEDURE)
	if err != nil || !ok {
		return nil, err
	}
	decl, err := p.parseProcBody()
	if err != nil {
		return nil, err
	}
	if err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return decl, nil
}

// parseProcBody parses what follows the PROCEDURE keyword.
func (p *Parser) parseProcBody() (Decl, error) {
	name, line, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	p.procBuilder.SetName(name, line)

	export, err := p.isMatch(ASTERISK)
	if err != nil {
		return nil, err
	}
	p.procBuilder.SetExport(export)

	hasResult, err := p.isMatch(COLON)
	if err != nil {
		return nil, err
	}
	if hasResult {
		typeID, _, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		p.procBuilder.SetReturnTypeID(typeID)
	}

	if err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	if err := p.expect(END); err != nil {
		return nil, err
	}
	return p.procBuilder.BuildDecl(), nil
}

// expect consumes the current token if it has the given kind.
func (p *Parser) expect(kind TokenKind) error {
	if p.current.Kind != kind {
		return errExpectedToken(kind, p.current)
	}
	return p.advance()
}

// expectIdentifier consumes an identifier and returns its text and line.
func (p *Parser) expectIdentifier() (string, int, error) {
	if p.current.Kind != IDENT {
		return "", 0, errExpectedIdentifier(p.current)
	}
	name, line := p.current.Text, p.current.Line
	if err := p.advance(); err != nil {
		return "", 0, err
	}
	return name, line, nil
}

// isMatch consumes the current token and reports true if it has the given
// kind. Otherwise nothing is consumed.
func (p *Parser) isMatch(kind TokenKind) (bool, error) {
	if p.current.Kind != kind {
		return false, nil
	}
	return true, p.advance()
}

func (p *Parser) advance() error {
	tok, err := p.scanner.NextToken()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

// Parse parses source into a Module.
func Parse(source string) (*Module, error) {
	p, err := NewParser(source)
	if err != nil {
		return nil, err
	}
	return p.ParseModule()
}
