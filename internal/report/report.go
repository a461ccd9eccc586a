// Package report renders the seven MiniC compiler output files. Each
// Render function is a pure function over already-collected data. Tokens
// and lexical errors are grouped by source line the way a line-buffered
// writer frames them: a "N.\t" prefix each time the line number changes,
// with each group on its own line. The error reports print a fixed
// fallback message when there is nothing to report.
package report

import (
	"fmt"
	"strings"

	"github.com/minic-lang/minic/internal/codegen"
	"github.com/minic-lang/minic/internal/parser"
	"github.com/minic-lang/minic/internal/parsetree"
	"github.com/minic-lang/minic/internal/scanner"
	"github.com/minic-lang/minic/internal/token"
)

// TokenEntry is one token as recorded for tokens.txt: the kind/lexeme pair
// the grammar actually saw, tagged with its source line.
type TokenEntry struct {
	Line   int
	Kind   token.Kind
	Lexeme string
}

// lineGrouper accumulates entries framed by line number, matching the
// original writer's "N.\t" grouping: a new group starts a fresh line and
// gets the "N.\t" prefix only when the line number changes from the last
// entry written.
type lineGrouper struct {
	b        strings.Builder
	lastLine int
	started  bool
}

func (g *lineGrouper) write(content string, line int) {
	if !g.started || line != g.lastLine {
		if g.started {
			g.b.WriteString("\n")
		}
		fmt.Fprintf(&g.b, "%d.\t", line)
	}
	g.b.WriteString(content)
	g.lastLine = line
	g.started = true
}

func (g *lineGrouper) String() string { return g.b.String() }

// RenderTokens renders tokens.txt: one (KIND, LEXEME) entry per token,
// grouped by source line.
func RenderTokens(entries []TokenEntry) string {
	var g lineGrouper
	for _, e := range entries {
		g.write(fmt.Sprintf("(%s, %s) ", e.Kind, e.Lexeme), e.Line)
	}
	return g.String()
}

// RenderLexicalErrors renders lexical_errors.txt.
func RenderLexicalErrors(errs []scanner.LexError) string {
	if len(errs) == 0 {
		return "There is no lexical error."
	}
	var g lineGrouper
	for _, e := range errs {
		g.write(fmt.Sprintf("(%s, %s) ", e.Lexeme, e.Category), e.Line)
	}
	return g.String()
}

// RenderSymbolTable renders symbol_table.txt: every symbol in insertion
// order (keywords first), one per line, 1-indexed.
func RenderSymbolTable(names []string) string {
	var b strings.Builder
	for i, name := range names {
		fmt.Fprintf(&b, "%d.\t%s\n", i+1, name)
	}
	return b.String()
}

// RenderParseTree renders parse_tree.txt: the indented tree produced by
// the parser, unconditionally (even in the presence of syntax errors, the
// tree built so far is still reported).
func RenderParseTree(root *parsetree.Node) string {
	var b strings.Builder
	parsetree.Write(&b, root)
	return b.String()
}

// RenderSyntaxErrors renders syntax_errors.txt.
func RenderSyntaxErrors(errs []parser.SyntaxError) string {
	if len(errs) == 0 {
		return "There is no syntax error."
	}
	var b strings.Builder
	for _, e := range errs {
		fmt.Fprintf(&b, "#%d : syntax error, %s\n", e.Line, e.Message)
	}
	return b.String()
}

// RenderSemanticErrors renders semantic_errors.txt.
func RenderSemanticErrors(errs []codegen.SemanticError) string {
	if len(errs) == 0 {
		return "The input program is semantically correct."
	}
	var b strings.Builder
	for _, e := range errs {
		fmt.Fprintf(&b, "#%d : Semantic Error! %s\n", e.Line, e.Message)
	}
	return b.String()
}

// RenderOutput renders output.txt. If any semantic error was raised, code
// generation is considered to have failed entirely regardless of what PB
// holds. Otherwise PB is listed index by index, preserving gaps as blank
// lines and rendering empty operands as a single space.
func RenderOutput(pb []*codegen.Instruction, hasSemanticErrors bool) string {
	if hasSemanticErrors {
		return "The code has not been generated."
	}
	var b strings.Builder
	for i, instr := range pb {
		if instr == nil {
			b.WriteString("\n")
			continue
		}
		fmt.Fprintf(&b, "%d\t(%s, %s, %s, %s )\n", i,
			instr.Op, operandOrBlank(instr.A1), operandOrBlank(instr.A2), operandOrBlank(instr.A3))
	}
	return b.String()
}

func operandOrBlank(s string) string {
	if s == "" {
		return " "
	}
	return s
}
