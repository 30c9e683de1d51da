package main

// TableEntry is one name binding in a Table.
type TableEntry[T any] struct {
	Name  string
	Value T
}

// Table is an append-only list of name bindings. A later binding of a name
// shadows earlier ones without removing them.
type Table[T any] struct {
	entries []TableEntry[T]
}

// NewTable returns an empty table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{}
}

// Push binds name to value.
func (t *Table[T]) Push(name string, value T) {
	t.entries = append(t.entries, TableEntry[T]{Name: name, Value: value})
}

// Lookup returns the most recently pushed value bound to name.
func (t *Table[T]) Lookup(name string) (T, bool) {
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i].Name == name {
			return t.entries[i].Value, true
		}
	}
	var zero T
	return zero, false
}

// Len returns the number of entries, shadowed ones included.
func (t *Table[T]) Len() int {
	return len(t.entries)
}

// Entries returns the bindings in push order.
func (t *Table[T]) Entries() []TableEntry[T] {
	return t.entries
}

// NewBuiltinTypeTable returns a type table seeded with the builtin types.
func NewBuiltinTypeTable() *Table[Type] {
	t := NewTable[Type]()
	t.Push("INTEGER", NewIntType())
	return t
}
