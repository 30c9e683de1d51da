package sexy

import (
	"fmt"
	"strings"
	"unicode"
)

// NodeType represents the type of a Node
type NodeType int

const (
	NodeSymbol NodeType = iota
	NodeString
	NodeInteger
	NodeList
)

func (t NodeType) String() string {
	switch t {
	case NodeSymbol:
		return "symbol"
	case NodeString:
		return "string"
	case NodeInteger:
		return "integer"
	case NodeList:
		return "list"
	default:
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
}

// Node is an s-expression datum.
type Node struct {
	Type NodeType

	Text  string  // NodeSymbol, NodeString, NodeInteger
	Items []*Node // NodeList
}

// String renders n in canonical form: single spaces between list items,
// strings quoted with \" and \\ escaped.
func (n *Node) String() string {
	switch n.Type {
	case NodeSymbol, NodeInteger:
		return n.Text
	case NodeString:
		escaped := strings.ReplaceAll(n.Text, "\\", "\\\\")
		escaped = strings.ReplaceAll(escaped, "\"", "\\\"")
		return "\"" + escaped + "\""
	case NodeList:
		parts := make([]string, len(n.Items))
		for i, item := range n.Items {
			parts[i] = item.String()
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return fmt.Sprintf("UNKNOWN_NODE_TYPE_%d", n.Type)
	}
}

func NewSymbol(name string) *Node {
	return &Node{Type: NodeSymbol, Text: name}
}

func NewString(value string) *Node {
	return &Node{Type: NodeString, Text: value}
}

func NewInteger(text string) *Node {
	return &Node{Type: NodeInteger, Text: text}
}

func NewList(items ...*Node) *Node {
	return &Node{Type: NodeList, Items: items}
}

// Head returns the leading symbol of a list, or "".
func (n *Node) Head() string {
	if n.Type != NodeList || len(n.Items) == 0 || n.Items[0].Type != NodeSymbol {
		return ""
	}
	return n.Items[0].Text
}

// Equal reports whether two data are structurally identical.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type || a.Text != b.Text || len(a.Items) != len(b.Items) {
		return false
	}
	for i := range a.Items {
		if !Equal(a.Items[i], b.Items[i]) {
			return false
		}
	}
	return true
}

type parser struct {
	lexer        *lexer
	currentToken token
}

// Parse parses the entire input, which must hold exactly one datum.
func Parse(input string) (*Node, error) {
	p := &parser{lexer: newLexer(input)}
	if err := p.nextToken(); err != nil {
		return nil, err
	}

	result, err := p.parseDatum()
	if err != nil {
		return nil, err
	}
	if p.currentToken.Type != tokenEOF {
		return nil, fmt.Errorf("expected EOF but got %s at offset %d", p.currentToken.Type, p.currentToken.Position)
	}
	return result, nil
}

func (p *parser) nextToken() error {
	tok, err := p.lexer.nextToken()
	if err != nil {
		return err
	}
	p.currentToken = tok
	return nil
}

func (p *parser) parseDatum() (*Node, error) {
	tok := p.currentToken
	switch tok.Type {
	case tokenSymbol:
		return NewSymbol(tok.Value), p.nextToken()
	case tokenString:
		return NewString(tok.Value), p.nextToken()
	case tokenInteger:
		return NewInteger(tok.Value), p.nextToken()
	case tokenLParen:
		return p.parseList()
	default:
		return nil, fmt.Errorf("unexpected %s at offset %d", tok.Type, tok.Position)
	}
}

func (p *parser) parseList() (*Node, error) {
	if err := p.nextToken(); err != nil { // consume '('
		return nil, err
	}

	list := NewList()
	for p.currentToken.Type != tokenRParen {
		if p.currentToken.Type == tokenEOF {
			return nil, fmt.Errorf("expected ')' but got EOF")
		}
		item, err := p.parseDatum()
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, item)
	}
	return list, p.nextToken() // consume ')'
}

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenSymbol
	tokenString
	tokenInteger
	tokenLParen
	tokenRParen
)

func (t tokenType) String() string {
	switch t {
	case tokenEOF:
		return "EOF"
	case tokenSymbol:
		return "symbol"
	case tokenString:
		return "string"
	case tokenInteger:
		return "integer"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	default:
		return fmt.Sprintf("unknown token %d", int(t))
	}
}

type token struct {
	Type     tokenType
	Value    string
	Position int
}

type lexer struct {
	input    []rune
	position int
}

func newLexer(input string) *lexer {
	return &lexer{input: []rune(input)}
}

func (l *lexer) peek() rune {
	if l.position >= len(l.input) {
		return 0
	}
	return l.input[l.position]
}

func (l *lexer) skipWhitespaceAndComments() {
	for l.position < len(l.input) {
		c := l.input[l.position]
		if c == ';' {
			// line comment
			for l.position < len(l.input) && l.input[l.position] != '\n' {
				l.position++
			}
		} else if unicode.IsSpace(c) {
			l.position++
		} else {
			return
		}
	}
}

func (l *lexer) nextToken() (token, error) {
	l.skipWhitespaceAndComments()

	pos := l.position
	c := l.peek()
	switch {
	case l.position >= len(l.input):
		return token{Type: tokenEOF, Position: pos}, nil
	case c == '(':
		l.position++
		return token{Type: tokenLParen, Value: "(", Position: pos}, nil
	case c == ')':
		l.position++
		return token{Type: tokenRParen, Value: ")", Position: pos}, nil
	case c == '"':
		str, err := l.readString()
		if err != nil {
			return token{}, err
		}
		return token{Type: tokenString, Value: str, Position: pos}, nil
	case unicode.IsDigit(c) || ((c == '-' || c == '+') && l.position+1 < len(l.input) && unicode.IsDigit(l.input[l.position+1])):
		l.position++
		for unicode.IsDigit(l.peek()) {
			l.position++
		}
		return token{Type: tokenInteger, Value: string(l.input[pos:l.position]), Position: pos}, nil
	case isSymbolChar(c):
		for isSymbolChar(l.peek()) {
			l.position++
		}
		return token{Type: tokenSymbol, Value: string(l.input[pos:l.position]), Position: pos}, nil
	default:
		return token{}, fmt.Errorf("unexpected character '%c' at offset %d", c, pos)
	}
}

func (l *lexer) readString() (string, error) {
	var sb strings.Builder
	l.position++ // skip opening quote

	for l.position < len(l.input) {
		c := l.input[l.position]
		switch c {
		case '"':
			l.position++
			return sb.String(), nil
		case '\\':
			l.position++
			switch l.peek() {
			case '"':
				sb.WriteRune('"')
			case '\\':
				sb.WriteRune('\\')
			default:
				return "", fmt.Errorf("invalid escape sequence: \\%c", l.peek())
			}
		default:
			sb.WriteRune(c)
		}
		l.position++
	}
	return "", fmt.Errorf("unterminated string")
}

func isSymbolChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '+' || r == '*'
}
