// Package frontend wires the scanner, parser, and code generator into one
// pass over a MiniC source file and renders the seven report files.
package frontend

import (
	"github.com/pkg/errors"

	"github.com/minic-lang/minic/internal/codegen"
	"github.com/minic-lang/minic/internal/parser"
	"github.com/minic-lang/minic/internal/parsetree"
	"github.com/minic-lang/minic/internal/report"
	"github.com/minic-lang/minic/internal/scanner"
	"github.com/minic-lang/minic/internal/token"
)

// Result holds everything a compilation pass produced, already in the
// shape report.Render* expects.
type Result struct {
	Tokens         []report.TokenEntry
	LexicalErrors  []scanner.LexError
	SymbolTable    []string
	ParseTree      *parsetree.Node
	SyntaxErrors   []parser.SyntaxError
	SemanticErrors []codegen.SemanticError
	ProgramBlock   []*codegen.Instruction
}

// Reports renders every report file from a completed Result.
func (r *Result) Reports() map[string]string {
	return map[string]string{
		"tokens.txt":          report.RenderTokens(r.Tokens),
		"lexical_errors.txt":  report.RenderLexicalErrors(r.LexicalErrors),
		"symbol_table.txt":    report.RenderSymbolTable(r.SymbolTable),
		"parse_tree.txt":      report.RenderParseTree(r.ParseTree),
		"syntax_errors.txt":   report.RenderSyntaxErrors(r.SyntaxErrors),
		"semantic_errors.txt": report.RenderSemanticErrors(r.SemanticErrors),
		"output.txt":          report.RenderOutput(r.ProgramBlock, len(r.SemanticErrors) > 0),
	}
}

// recordingScanner wraps a *scanner.Scanner so the single lexical pass the
// parser drives also builds tokens.txt's entries, without the parser
// needing to know reporting exists.
type recordingScanner struct {
	*scanner.Scanner
	tokens []report.TokenEntry
}

func (r *recordingScanner) Next() token.Token {
	tok := r.Scanner.Next()
	if tok.Kind != token.EOF {
		r.tokens = append(r.tokens, report.TokenEntry{Line: tok.Line, Kind: tok.Kind, Lexeme: tok.Lexeme})
	}
	return tok
}

// Compile runs the full scan/parse/generate pipeline over source and
// returns the collected diagnostics and program block. It never returns a
// non-nil error for malformed MiniC input — lexical, syntax, and semantic
// errors are expected outcomes carried in Result. A non-nil error means an
// internal invariant of the compiler itself was violated.
func Compile(source string) (*Result, error) {
	return CompileTraced(source, false)
}

// CompileTraced is Compile with the parser's expansion trace optionally
// turned on, for the driver's --trace-parse flag.
func CompileTraced(source string, traceParse bool) (res *Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.Errorf("frontend: internal error: %v", rec)
		}
	}()

	sc := &recordingScanner{Scanner: scanner.New(source)}
	gen := codegen.New()
	p := parser.New(sc, gen)
	if traceParse {
		p.SetTrace(true)
	}
	tree := p.Parse()

	res = &Result{
		Tokens:         sc.tokens,
		LexicalErrors:  sc.Errors,
		SymbolTable:    sc.SymbolNames(),
		ParseTree:      tree,
		SyntaxErrors:   p.Errors,
		SemanticErrors: gen.Errors,
		ProgramBlock:   gen.PB(),
	}
	return res, nil
}
