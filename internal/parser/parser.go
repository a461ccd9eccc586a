// Package parser implements MiniC's predictive parser: one procedure per
// grammar nonterminal, each selecting its production from a precomputed
// PREDICT table and recovering from errors in panic mode.
package parser

import (
	"fmt"

	"github.com/minic-lang/minic/internal/grammar"
	"github.com/minic-lang/minic/internal/ll1"
	"github.com/minic-lang/minic/internal/parsetree"
	"github.com/minic-lang/minic/internal/token"
)

// TokenSource is anything that can feed the parser one token at a time,
// satisfied by *scanner.Scanner and by the recording wrapper the frontend
// uses to build tokens.txt from the same pass the parser consumes.
type TokenSource interface {
	Next() token.Token
}

// SyntaxError is one recorded panic-mode diagnostic.
type SyntaxError struct {
	Line    int
	Message string
}

// CodeGenerator receives semantic-action dispatches as the parser crosses
// them. lexeme is the most recently matched terminal's text, meaningful
// only to actions that consume one (PID, PNUM, SA_ASSIGN_NAME, ...).
type CodeGenerator interface {
	Dispatch(action grammar.Action, line int, lexeme string)
}

// Parser drives a Scanner through MiniC's grammar, building a parse tree
// and dispatching semantic actions to a CodeGenerator as it goes.
type Parser struct {
	sc     TokenSource
	gram   *grammar.Grammar
	first  *ll1.FirstSets
	follow *ll1.FollowSets
	table  *ll1.ParseTable
	gen    CodeGenerator

	look       token.Token
	lastLexeme string
	lastLine   int

	Errors []SyntaxError

	dispatch map[grammar.NonTerminal]func() *parsetree.Node

	trace bool
}

// SetTrace enables/disables a one-line-per-expansion trace on stdout, for
// the driver's --trace-parse flag.
func (p *Parser) SetTrace(enabled bool) {
	p.trace = enabled
}

// New builds a Parser over sc, using gen as the code generator sink. It
// panics if the MiniC grammar is not LL(1); that would be a defect in the
// grammar table, not a condition the parser can recover from per-input.
func New(sc TokenSource, gen CodeGenerator) *Parser {
	g := grammar.MiniC()
	first := ll1.ComputeFirst(g)
	follow := ll1.ComputeFollow(g, first)
	table, err := ll1.BuildTable(g, first, follow)
	if err != nil {
		panic(err)
	}

	p := &Parser{
		sc:     sc,
		gram:   g,
		first:  first,
		follow: follow,
		table:  table,
		gen:    gen,
	}
	p.dispatch = p.nonTerminalProcedures()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.look = p.sc.Next()
}

func (p *Parser) lookaheadTerminal() grammar.Terminal {
	switch p.look.Kind {
	case token.EOF:
		return grammar.EOFSymbol
	case token.ID:
		return grammar.TermID
	case token.NUM:
		return grammar.TermNum
	default:
		return grammar.Terminal(p.look.Lexeme)
	}
}

func (p *Parser) reportError(line int, message string) {
	p.Errors = append(p.Errors, SyntaxError{Line: line, Message: message})
}

// match consumes the lookahead if it is t, returning a terminal leaf. On
// mismatch it reports "missing t", leaves the lookahead untouched, and
// returns a placeholder leaf so the caller can keep building its tree.
func (p *Parser) match(t grammar.Terminal) *parsetree.Node {
	if p.lookaheadTerminal() == t {
		label := p.look.Lexeme
		if t == grammar.EOFSymbol {
			label = "$"
		}
		leaf := parsetree.NewLeaf(label)
		p.lastLexeme = p.look.Lexeme
		p.lastLine = p.look.Line
		p.advance()
		return leaf
	}
	p.reportError(p.look.Line, fmt.Sprintf("missing %s", t))
	return parsetree.NewLeaf(string(t))
}

// Parse runs the parser from the grammar's start symbol and returns the
// completed parse tree, whose root carries a trailing "$" leaf.
func (p *Parser) Parse() *parsetree.Node {
	root := p.expand(p.gram.Start)
	eof := p.match(grammar.EOFSymbol)
	root.Children = append(root.Children, eof)
	return root
}

// expand is the generic body of every per-nonterminal procedure: select a
// production by PREDICT set, recovering in panic mode when none applies,
// then walk the selected production's right-hand side.
func (p *Parser) expand(nt grammar.NonTerminal) *parsetree.Node {
	la := p.lookaheadTerminal()
	if p.trace {
		fmt.Printf("expand %s, lookahead %s\n", nt, la)
	}
	prod, ok := p.table.Lookup(nt, la)

	for !ok {
		switch {
		case p.follow.Get(nt)[la]:
			p.reportError(p.look.Line, fmt.Sprintf("missing %s", nt))
			return parsetree.NewLeaf(string(nt))
		case la == grammar.EOFSymbol:
			p.reportError(p.look.Line, "Unexpected EOF")
			return parsetree.NewLeaf(string(nt))
		default:
			p.reportError(p.look.Line, fmt.Sprintf("illegal %s", la))
			p.advance()
		}
		la = p.lookaheadTerminal()
		prod, ok = p.table.Lookup(nt, la)
	}

	return p.walk(nt, prod)
}

func (p *Parser) walk(nt grammar.NonTerminal, prod grammar.Production) *parsetree.Node {
	var children []*parsetree.Node
	for _, sym := range prod.Body {
		switch s := sym.(type) {
		case grammar.Terminal:
			if s == grammar.Epsilon {
				children = append(children, parsetree.NewLeaf("epsilon"))
				continue
			}
			children = append(children, p.match(s))
		case grammar.NonTerminal:
			proc, ok := p.dispatch[s]
			if !ok {
				panic(fmt.Sprintf("parser: no procedure registered for nonterminal %s", s))
			}
			children = append(children, proc())
		case grammar.Action:
			line := p.lastLine
			if line == 0 {
				line = p.look.Line
			}
			p.gen.Dispatch(s, line, p.lastLexeme)
		}
	}
	return parsetree.NewNonTerminal(string(nt), children...)
}
