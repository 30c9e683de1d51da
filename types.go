package main

// TypeKind identifies the variant of a Type.
type TypeKind int

const (
	TypeInt TypeKind = iota + 1
	TypeProc
)

// Type is an immutable semantic type. Copies share one backing node, and two
// types are equal when their structure is equal (see TypesEqual). The zero
// Type means "no type", e.g. a procedure without a declared return type.
type Type struct {
	node *typeNode
}

type typeNode struct {
	kind TypeKind
	// TypeProc:
	ret Type
}

var intNode = &typeNode{kind: TypeInt}

// NewIntType returns the INTEGER type.
func NewIntType() Type {
	return Type{node: intNode}
}

// NewProcType returns the type of a procedure returning ret. Pass the zero
// Type for a procedure without a result.
func NewProcType(ret Type) Type {
	return Type{node: &typeNode{kind: TypeProc, ret: ret}}
}

// IsNone reports whether t is the absent type.
func (t Type) IsNone() bool {
	return t.node == nil
}

// Kind returns the variant of t, or 0 for the absent type.
func (t Type) Kind() TypeKind {
	if t.node == nil {
		return 0
	}
	return t.node.kind
}

// Return returns the result type of a procedure type.
func (t Type) Return() (Type, bool) {
	if t.Kind() != TypeProc || t.node.ret.IsNone() {
		return Type{}, false
	}
	return t.node.ret, true
}

func (t Type) String() string {
	switch t.Kind() {
	case TypeInt:
		return "int"
	case TypeProc:
		if ret, ok := t.Return(); ok {
			return "procedure: " + ret.String()
		}
		return "procedure"
	default:
		return "none"
	}
}

// Equal reports whether t and u have the same structure.
func (t Type) Equal(u Type) bool {
	return TypesEqual(t, u)
}

// TypesEqual compares two types structurally.
func TypesEqual(a, b Type) bool {
	if a.node == b.node {
		return true
	}
	if a.IsNone() || b.IsNone() {
		return false
	}
	if a.node.kind != b.node.kind {
		return false
	}
	switch a.node.kind {
	case TypeProc:
		return TypesEqual(a.node.ret, b.node.ret)
	default:
		return true
	}
}
