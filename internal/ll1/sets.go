// Package ll1 computes FIRST, FOLLOW, and PREDICT sets for a grammar.Grammar
// and builds its LL(1) parse table. Action symbols are transparent to every
// set: they neither contribute terminals nor block nullability, so a
// production's predictive behavior is exactly what it would be with the
// actions erased.
package ll1

import "github.com/minic-lang/minic/internal/grammar"

// termSet is a set of terminals, including the sentinel grammar.EOFSymbol.
type termSet map[grammar.Terminal]bool

func (s termSet) add(t grammar.Terminal) bool {
	if s[t] {
		return false
	}
	s[t] = true
	return true
}

func (s termSet) addAll(other termSet) bool {
	changed := false
	for t := range other {
		if s.add(t) {
			changed = true
		}
	}
	return changed
}

// FirstSets holds FIRST(X) for every terminal and nonterminal of a grammar.
type FirstSets struct {
	sets     map[grammar.Symbol]termSet
	nullable map[grammar.NonTerminal]bool
}

// Get returns FIRST(sym).
func (fs *FirstSets) Get(sym grammar.Symbol) termSet {
	if s, ok := fs.sets[sym]; ok {
		return s
	}
	return termSet{}
}

// Nullable reports whether nt can derive the empty string.
func (fs *FirstSets) Nullable(nt grammar.NonTerminal) bool {
	return fs.nullable[nt]
}

// ComputeFirst computes FIRST sets for every symbol in g by fixpoint
// iteration over its productions.
func ComputeFirst(g *grammar.Grammar) *FirstSets {
	fs := &FirstSets{
		sets:     make(map[grammar.Symbol]termSet),
		nullable: make(map[grammar.NonTerminal]bool),
	}
	for _, nt := range g.Nonterminals() {
		fs.sets[nt] = termSet{}
	}

	changed := true
	for changed {
		changed = false
		for _, p := range g.Productions {
			first, nullable := fs.firstOfBody(p.Body)
			if fs.sets[p.Head].addAll(first) {
				changed = true
			}
			if nullable && !fs.nullable[p.Head] {
				fs.nullable[p.Head] = true
				changed = true
			}
		}
	}
	return fs
}

// firstOfBody computes FIRST of a production body, skipping Action symbols
// entirely, and reports whether the (action-erased) body is nullable.
func (fs *FirstSets) firstOfBody(body []grammar.Symbol) (termSet, bool) {
	result := termSet{}
	nullable := true
	for _, sym := range body {
		switch s := sym.(type) {
		case grammar.Action:
			continue
		case grammar.Terminal:
			if s == grammar.Epsilon {
				continue
			}
			result.add(s)
			nullable = false
		case grammar.NonTerminal:
			result.addAll(fs.Get(s))
			if !fs.nullable[s] {
				nullable = false
			}
		}
		if !nullable {
			break
		}
	}
	return result, nullable
}

// FollowSets holds FOLLOW(A) for every nonterminal of a grammar.
type FollowSets struct {
	sets map[grammar.NonTerminal]termSet
}

// Get returns FOLLOW(nt).
func (fo *FollowSets) Get(nt grammar.NonTerminal) termSet {
	if s, ok := fo.sets[nt]; ok {
		return s
	}
	return termSet{}
}

// ComputeFollow computes FOLLOW sets for every nonterminal in g, given its
// precomputed FIRST sets.
func ComputeFollow(g *grammar.Grammar, first *FirstSets) *FollowSets {
	fo := &FollowSets{sets: make(map[grammar.NonTerminal]termSet)}
	for _, nt := range g.Nonterminals() {
		fo.sets[nt] = termSet{}
	}
	fo.sets[g.Start].add(grammar.EOFSymbol)

	changed := true
	for changed {
		changed = false
		for _, p := range g.Productions {
			nonActionBody := stripActions(p.Body)
			for i, sym := range nonActionBody {
				nt, ok := sym.(grammar.NonTerminal)
				if !ok {
					continue
				}
				rest := nonActionBody[i+1:]
				firstRest, restNullable := first.firstOfBody(rest)
				if fo.sets[nt].addAll(firstRest) {
					changed = true
				}
				if restNullable {
					if fo.sets[nt].addAll(fo.Get(p.Head)) {
						changed = true
					}
				}
			}
		}
	}
	return fo
}

func stripActions(body []grammar.Symbol) []grammar.Symbol {
	out := make([]grammar.Symbol, 0, len(body))
	for _, s := range body {
		if _, ok := s.(grammar.Action); ok {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Predict computes PREDICT(p): the set of terminals (possibly including
// EOFSymbol) on which production p should be chosen.
func Predict(p grammar.Production, first *FirstSets, follow *FollowSets) termSet {
	firstBody, nullable := first.firstOfBody(p.Body)
	if !nullable {
		return firstBody
	}
	result := termSet{}
	result.addAll(firstBody)
	result.addAll(follow.Get(p.Head))
	return result
}
