package main

// TokenKind is the type of token (keyword, punctuation, identifier, literal).
type TokenKind string

// Definition of token kinds
const (
	// Special tokens
	EOF TokenKind = "EOF"

	// Identifiers + literals
	IDENT TokenKind = "IDENT" // M, P, abc123
	INT   TokenKind = "INT"   // 12345

	// Delimiters
	SEMICOLON TokenKind = ";"
	DOT       TokenKind = "."
	COLON     TokenKind = ":"
	ASTERISK  TokenKind = "*"

	// Keywords
	BEGIN     TokenKind = "BEGIN"
	END       TokenKind = "END"
	MODULE    TokenKind = "MODULE"
	PROCEDURE TokenKind = "PROCEDURE"
	RETURN    TokenKind = "RETURN"
)

// keywords maps reserved words to their token kinds. Matching is case-sensitive.
var keywords = map[string]TokenKind{
	"BEGIN":     BEGIN,
	"END":       END,
	"MODULE":    MODULE,
	"PROCEDURE": PROCEDURE,
	"RETURN":    RETURN,
}

// Token is a classified lexical unit with the line it starts on.
type Token struct {
	Kind TokenKind
	// IDENT, INT:
	Text string
	Line int
}

// Tag renders the token the way diagnostics quote it, e.g. "identifier(P)".
func (t Token) Tag() string {
	switch t.Kind {
	case IDENT:
		return "identifier(" + t.Text + ")"
	case INT:
		return "integer(" + t.Text + ")"
	default:
		return string(t.Kind)
	}
}
