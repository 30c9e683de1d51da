package main

import (
	"fmt"
	"strings"
)

// ErrorKind enumerates every failure the pipeline can report.
type ErrorKind int

const (
	ErrUnexpectedCharacter ErrorKind = iota
	ErrUnterminatedComment
	ErrExpectedToken
	ErrExpectedIdentifier
	ErrNameRedefinition
	ErrUnknownType
	ErrUnsupportedType
	ErrUnsupportedDeclaration
)

var errorKindNames = map[ErrorKind]string{
	ErrUnexpectedCharacter:    "UnexpectedCharacter",
	ErrUnterminatedComment:    "UnterminatedComment",
	ErrExpectedToken:          "ExpectedToken",
	ErrExpectedIdentifier:     "ExpectedIdentifier",
	ErrNameRedefinition:       "NameRedefinition",
	ErrUnknownType:            "UnknownType",
	ErrUnsupportedType:        "UnsupportedType",
	ErrUnsupportedDeclaration: "UnsupportedDeclaration",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a failure located on a line of the source text. Only the fields
// belonging to Kind are meaningful.
type Error struct {
	Kind ErrorKind
	Line int

	// ErrUnexpectedCharacter:
	Char rune
	// ErrExpectedToken:
	Expected TokenKind
	// ErrExpectedToken, ErrExpectedIdentifier:
	Got Token
	// ErrNameRedefinition, ErrUnknownType:
	Name string
	// ErrUnsupportedType:
	Type Type
	// ErrUnsupportedDeclaration:
	Decl Decl
}

func (e *Error) Error() string {
	return fmt.Sprintf("error at line %d: %s", e.Line, e.Description())
}

// Description is the message without the line prefix.
func (e *Error) Description() string {
	switch e.Kind {
	case ErrUnexpectedCharacter:
		return fmt.Sprintf("unexpected character `%c`", e.Char)
	case ErrUnterminatedComment:
		return "unterminated comment"
	case ErrExpectedToken:
		return fmt.Sprintf("expected `%s` but got `%s`", e.Expected, e.Got.Tag())
	case ErrExpectedIdentifier:
		return fmt.Sprintf("expected an identifier but got `%s`", e.Got.Tag())
	case ErrNameRedefinition:
		return fmt.Sprintf("name `%s` was previously defined", e.Name)
	case ErrUnknownType:
		return fmt.Sprintf("unknown type `%s`", e.Name)
	case ErrUnsupportedType:
		return fmt.Sprintf("type `%s` has no WebAssembly representation", e.Type)
	case ErrUnsupportedDeclaration:
		return fmt.Sprintf("unsupported declaration %T", e.Decl)
	default:
		return strings.ToLower(e.Kind.String())
	}
}

func errUnexpectedCharacter(c rune, line int) *Error {
	return &Error{Kind: ErrUnexpectedCharacter, Line: line, Char: c}
}

func errUnterminatedComment(line int) *Error {
	return &Error{Kind: ErrUnterminatedComment, Line: line}
}

func errExpectedToken(expected TokenKind, got Token) *Error {
	return &Error{Kind: ErrExpectedToken, Line: got.Line, Expected: expected, Got: got}
}

func errExpectedIdentifier(got Token) *Error {
	return &Error{Kind: ErrExpectedIdentifier, Line: got.Line, Got: got}
}

func errNameRedefinition(name string, line int) *Error {
	return &Error{Kind: ErrNameRedefinition, Line: line, Name: name}
}

func errUnknownType(name string, line int) *Error {
	return &Error{Kind: ErrUnknownType, Line: line, Name: name}
}

func errUnsupportedType(t Type, line int) *Error {
	return &Error{Kind: ErrUnsupportedType, Line: line, Type: t}
}

func errUnsupportedDeclaration(d Decl) *Error {
	return &Error{Kind: ErrUnsupportedDeclaration, Line: d.DeclLine(), Decl: d}
}
