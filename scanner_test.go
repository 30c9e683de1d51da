package main

import (
	"testing"

	"github.com/nalgeon/be"
)

// scanAll returns every token of input up to and including EOF.
func scanAll(t *testing.T, input string) []Token {
	t.Helper()
	s := NewScanner(input)
	var tokens []Token
	for {
		tok, err := s.NextToken()
		be.Err(t, err, nil)
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens
		}
	}
}

func TestScanKeywords(t *testing.T) {
	tokens := scanAll(t, "BEGIN END MODULE PROCEDURE RETURN")
	kinds := []TokenKind{BEGIN, END, MODULE, PROCEDURE, RETURN, EOF}

	be.Equal(t, len(tokens), len(kinds))
	for i, kind := range kinds {
		be.Equal(t, tokens[i].Kind, kind)
		be.Equal(t, tokens[i].Text, "")
	}
}

func TestScanKeywordsAreCaseSensitive(t *testing.T) {
	tokens := scanAll(t, "module Module END")

	be.Equal(t, tokens[0], Token{Kind: IDENT, Text: "module", Line: 1})
	be.Equal(t, tokens[1], Token{Kind: IDENT, Text: "Module", Line: 1})
	be.Equal(t, tokens[2].Kind, END)
}

func TestScanIdentifiersAndIntegers(t *testing.T) {
	tokens := scanAll(t, "abc123 M 42 007")

	be.Equal(t, tokens[0], Token{Kind: IDENT, Text: "abc123", Line: 1})
	be.Equal(t, tokens[1], Token{Kind: IDENT, Text: "M", Line: 1})
	be.Equal(t, tokens[2], Token{Kind: INT, Text: "42", Line: 1})
	be.Equal(t, tokens[3], Token{Kind: INT, Text: "007", Line: 1})
	be.Equal(t, tokens[4].Kind, EOF)
}

func TestScanIntegerFollowedByLetters(t *testing.T) {
	tokens := scanAll(t, "12ab")

	be.Equal(t, tokens[0], Token{Kind: INT, Text: "12", Line: 1})
	be.Equal(t, tokens[1], Token{Kind: IDENT, Text: "ab", Line: 1})
}

func TestScanSymbols(t *testing.T) {
	tokens := scanAll(t, "; . : *")
	kinds := []TokenKind{SEMICOLON, DOT, COLON, ASTERISK, EOF}

	be.Equal(t, len(tokens), len(kinds))
	for i, kind := range kinds {
		be.Equal(t, tokens[i].Kind, kind)
	}
}

func TestScanSymbolsWithoutSpaces(t *testing.T) {
	tokens := scanAll(t, "P*:INTEGER;END.")
	kinds := []TokenKind{IDENT, ASTERISK, COLON, IDENT, SEMICOLON, END, DOT, EOF}

	be.Equal(t, len(tokens), len(kinds))
	for i, kind := range kinds {
		be.Equal(t, tokens[i].Kind, kind)
	}
}

func TestScanLineNumbers(t *testing.T) {
	tokens := scanAll(t, "a\nb\nc")

	be.Equal(t, tokens[0].Line, 1)
	be.Equal(t, tokens[1].Line, 2)
	be.Equal(t, tokens[2].Line, 3)
	be.Equal(t, tokens[3].Line, 3) // EOF
}

func TestScanLineNumbersAcrossComments(t *testing.T) {
	tokens := scanAll(t, "(* one\ntwo\n*) a\n\nb")

	be.Equal(t, tokens[0], Token{Kind: IDENT, Text: "a", Line: 3})
	be.Equal(t, tokens[1], Token{Kind: IDENT, Text: "b", Line: 5})
}

func TestScanComments(t *testing.T) {
	tests := []struct {
		input string
		want  []TokenKind
	}{
		{"(* x *) id", []TokenKind{IDENT, EOF}},
		{"(**) id", []TokenKind{IDENT, EOF}},
		{"(***) id", []TokenKind{IDENT, EOF}},
		{"a (* b *) (* c *) d", []TokenKind{IDENT, IDENT, EOF}},
		{"(* only a comment *)", []TokenKind{EOF}},
		// "(*" inside a comment does not open a nested one
		{"(* (* *) END", []TokenKind{END, EOF}},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			tokens := scanAll(t, test.input)
			be.Equal(t, len(tokens), len(test.want))
			for i, kind := range test.want {
				be.Equal(t, tokens[i].Kind, kind)
			}
		})
	}
}

func TestScanEmptyInput(t *testing.T) {
	s := NewScanner("")

	for i := 0; i < 3; i++ {
		tok, err := s.NextToken()
		be.Err(t, err, nil)
		be.Equal(t, tok, Token{Kind: EOF, Line: 1})
	}
}

func TestScanUnterminatedComment(t *testing.T) {
	tests := []struct {
		input string
		line  int
	}{
		{"(**", 1},
		{"(*", 1},
		{"a (* b", 1},
		{"(* a\nb\n", 3},
	}

	for _, test := range tests {
		s := NewScanner(test.input)
		var err error
		for err == nil {
			var tok Token
			tok, err = s.NextToken()
			if tok.Kind == EOF && err == nil {
				t.Fatalf("%q: reached EOF without an error", test.input)
			}
		}

		e, ok := err.(*Error)
		be.True(t, ok)
		be.Equal(t, e.Kind, ErrUnterminatedComment)
		be.Equal(t, e.Line, test.line)
	}
}

func TestScanUnexpectedCharacter(t *testing.T) {
	tests := []struct {
		input string
		char  rune
		line  int
	}{
		{"#", '#', 1},
		{"a\n  =", '=', 2},
		{"( x", '(', 1},
		{")", ')', 1},
		{"é", 'é', 1},
	}

	for _, test := range tests {
		s := NewScanner(test.input)
		var err error
		for err == nil {
			_, err = s.NextToken()
		}

		e, ok := err.(*Error)
		be.True(t, ok)
		be.Equal(t, e.Kind, ErrUnexpectedCharacter)
		be.Equal(t, e.Char, test.char)
		be.Equal(t, e.Line, test.line)
	}
}

func TestTokenTag(t *testing.T) {
	be.Equal(t, Token{Kind: IDENT, Text: "x"}.Tag(), "identifier(x)")
	be.Equal(t, Token{Kind: INT, Text: "12"}.Tag(), "integer(12)")
	be.Equal(t, Token{Kind: SEMICOLON}.Tag(), ";")
	be.Equal(t, Token{Kind: END}.Tag(), "END")
	be.Equal(t, Token{Kind: EOF}.Tag(), "EOF")
}
