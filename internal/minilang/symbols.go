package minilang

import "sort"

// SymbolTable maps identifiers to their values. Entries are never removed.
type SymbolTable struct {
	values map[string]float64
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{make(map[string]float64)}
}

// Define sets the value of name, creating the entry if needed.
func (st *SymbolTable) Define(name string, value float64) {
	st.values[name] = value
}

// Get returns the value of name and whether it has one.
func (st *SymbolTable) Get(name string) (float64, bool) {
	value, ok := st.values[name]
	return value, ok
}

func (st *SymbolTable) Len() int {
	return len(st.values)
}

// Names returns the defined identifiers in sorted order.
func (st *SymbolTable) Names() []string {
	names := make([]string, 0, len(st.values))
	for name := range st.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of the table's content.
func (st *SymbolTable) Snapshot() map[string]float64 {
	values := make(map[string]float64, len(st.values))
	for name, value := range st.values {
		values[name] = value
	}
	return values
}
