package ll1

import (
	"fmt"
	"strings"

	"github.com/minic-lang/minic/internal/grammar"
)

// tableKey is a composite key into a ParseTable.
type tableKey struct {
	nt   grammar.NonTerminal
	term grammar.Terminal
}

// ParseTable maps (nonterminal, lookahead) pairs to the production the
// parser should expand.
type ParseTable struct {
	cells map[tableKey]grammar.Production
}

// Lookup returns the production to expand for nt on lookahead term, and
// whether an entry exists.
func (pt *ParseTable) Lookup(nt grammar.NonTerminal, term grammar.Terminal) (grammar.Production, bool) {
	p, ok := pt.cells[tableKey{nt, term}]
	return p, ok
}

// Conflict records two productions of the same nonterminal that both claim
// the same lookahead terminal, which makes the grammar not LL(1).
type Conflict struct {
	NonTerminal grammar.NonTerminal
	Lookahead   grammar.Terminal
	First       grammar.Production
	Second      grammar.Production
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s on lookahead %q: %v vs %v", c.NonTerminal, c.Lookahead, c.First.Body, c.Second.Body)
}

// GrammarNotLL1Error reports every conflict found while building a
// ParseTable; a well-formed MiniC grammar never produces this error, but
// building the table always checks for it rather than assuming the
// grammar's LL(1)-ness.
type GrammarNotLL1Error struct {
	Conflicts []Conflict
}

func (e *GrammarNotLL1Error) Error() string {
	lines := make([]string, 0, len(e.Conflicts)+1)
	lines = append(lines, fmt.Sprintf("grammar is not LL(1): %d conflict(s)", len(e.Conflicts)))
	for _, c := range e.Conflicts {
		lines = append(lines, "  "+c.String())
	}
	return strings.Join(lines, "\n")
}

// BuildTable constructs the LL(1) parse table for g from its FIRST and
// FOLLOW sets, reporting every PREDICT-set collision as a conflict rather
// than silently keeping the first production seen.
func BuildTable(g *grammar.Grammar, first *FirstSets, follow *FollowSets) (*ParseTable, error) {
	pt := &ParseTable{cells: make(map[tableKey]grammar.Production)}
	var conflicts []Conflict

	for _, p := range g.Productions {
		for term := range Predict(p, first, follow) {
			key := tableKey{p.Head, term}
			if existing, ok := pt.cells[key]; ok {
				conflicts = append(conflicts, Conflict{
					NonTerminal: p.Head,
					Lookahead:   term,
					First:       existing,
					Second:      p,
				})
				continue
			}
			pt.cells[key] = p
		}
	}

	if len(conflicts) > 0 {
		return nil, &GrammarNotLL1Error{Conflicts: conflicts}
	}
	return pt, nil
}
