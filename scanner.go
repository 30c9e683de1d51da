package main

import "unicode/utf8"

// eof marks the absence of a character in the lookahead buffer.
const eof rune = -1

// Scanner converts a source text into a stream of tokens.
type Scanner struct {
	input string
	pos   int // byte offset just past next

	// Two-character lookahead and the byte offsets they start at.
	current    rune
	next       rune
	currentOff int
	nextOff    int

	line int // line of the current character, 1-based
}

// NewScanner returns a scanner positioned before the first token of source.
func NewScanner(source string) *Scanner {
	s := &Scanner{input: source, line: 1, current: eof, next: eof}
	s.advance()
	s.advance()
	return s
}

// NextToken scans the next token. After the end of the input it keeps
// returning EOF.
func (s *Scanner) NextToken() (Token, error) {
	if err := s.skipWhitespaceAndComments(); err != nil {
		return Token{}, err
	}

	if isLetter(s.current) {
		return s.readIdentifier(), nil
	} else if isDigit(s.current) {
		return s.readNumber(), nil
	}
	return s.readSymbol()
}

// skipWhitespaceAndComments consumes whitespace and (* ... *) comments.
// Comments do not nest: a "(*" inside a comment is ordinary comment text.
func (s *Scanner) skipWhitespaceAndComments() error {
	inComment := false
	for {
		switch {
		case !inComment && s.current == '(' && s.next == '*':
			inComment = true
			s.advance()
			s.advance()
		case inComment && s.current == '*' && s.next == ')':
			inComment = false
			s.advance()
			s.advance()
		case inComment && s.current == eof:
			return errUnterminatedComment(s.line)
		case inComment || isWhitespace(s.current):
			s.advance()
		default:
			return nil
		}
	}
}

func (s *Scanner) readIdentifier() Token {
	line := s.line
	start := s.offset()
	for isLetter(s.current) || isDigit(s.current) {
		s.advance()
	}
	lit := s.input[start:s.offset()]

	// keyword check
	if kind, ok := keywords[lit]; ok {
		return Token{Kind: kind, Line: line}
	}
	return Token{Kind: IDENT, Text: lit, Line: line}
}

func (s *Scanner) readNumber() Token {
	line := s.line
	start := s.offset()
	for isDigit(s.current) {
		s.advance()
	}
	return Token{Kind: INT, Text: s.input[start:s.offset()], Line: line}
}

func (s *Scanner) readSymbol() (Token, error) {
	tok := Token{Line: s.line}
	switch s.current {
	case eof:
		tok.Kind = EOF
		return tok, nil
	case ':':
		tok.Kind = COLON
	case '.':
		tok.Kind = DOT
	case ';':
		tok.Kind = SEMICOLON
	case '*':
		tok.Kind = ASTERISK
	default:
		return Token{}, errUnexpectedCharacter(s.current, s.line)
	}
	s.advance()
	return tok, nil
}

// advance shifts the lookahead buffer by one character, counting the line
// break being consumed.
func (s *Scanner) advance() {
	if s.current == '\n' {
		s.line++
	}
	s.current, s.currentOff = s.next, s.nextOff
	s.nextOff = s.pos
	if s.pos >= len(s.input) {
		s.next = eof
		return
	}
	r, size := utf8.DecodeRuneInString(s.input[s.pos:])
	s.next = r
	s.pos += size
}

// offset returns the byte offset of the current character.
func (s *Scanner) offset() int {
	return s.currentOff
}

func isLetter(c rune) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
