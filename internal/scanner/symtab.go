package scanner

import "github.com/minic-lang/minic/internal/token"

// SymbolTable is an order-preserving, deduplicating list of identifier
// lexemes, pre-seeded with the MiniC keywords so lookups never need a
// special case for reserved words.
type SymbolTable struct {
	names  []string
	lookup map[string]bool
}

func newSymbolTable() *SymbolTable {
	st := &SymbolTable{lookup: make(map[string]bool)}
	for _, kw := range token.Keywords {
		st.insert(kw)
	}
	return st
}

// insert adds name if it is not already present; a no-op otherwise.
func (st *SymbolTable) insert(name string) {
	if st.lookup[name] {
		return
	}
	st.lookup[name] = true
	st.names = append(st.names, name)
}

// Names returns the symbol table in insertion order.
func (st *SymbolTable) Names() []string {
	return st.names
}
