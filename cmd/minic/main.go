// Command minic is the MiniC compiler driver: it reads a source file,
// runs internal/frontend.Compile, writes the seven report files, and prints
// a one-line colorized summary. It contains no compiler logic of its own.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/minic-lang/minic/internal/frontend"
	"github.com/minic-lang/minic/internal/grammar"
	"github.com/minic-lang/minic/internal/ll1"
)

func main() {
	var (
		inPath     = pflag.StringP("in", "i", "input.txt", "MiniC source file to compile")
		outDir     = pflag.StringP("out", "o", ".", "directory to write the report files into")
		debug      = pflag.Bool("debug", false, "print FIRST/FOLLOW set sizes and any PREDICT conflicts before compiling")
		traceParse = pflag.Bool("trace-parse", false, "print each parser expansion and its lookahead to stdout")
	)
	pflag.Parse()

	source, err := os.ReadFile(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "minic: %v\n", err)
		os.Exit(1)
	}

	if *debug {
		printDebugSets(os.Stderr)
	}

	result, err := frontend.CompileTraced(string(source), *traceParse)
	if err != nil {
		fmt.Fprintf(os.Stderr, "minic: %+v\n", err)
		os.Exit(1)
	}

	for name, content := range result.Reports() {
		path := filepath.Join(*outDir, name)
		if werr := os.WriteFile(path, []byte(content), 0o644); werr != nil {
			fmt.Fprintf(os.Stderr, "minic: writing %s: %v\n", name, werr)
			os.Exit(1)
		}
	}

	printSummary(result)
}

func printDebugSets(w *os.File) {
	g := grammar.MiniC()
	first := ll1.ComputeFirst(g)
	follow := ll1.ComputeFollow(g, first)
	fmt.Fprintln(w, "FIRST/FOLLOW SETS:")
	for _, nt := range g.Nonterminals() {
		fmt.Fprintf(w, "  FIRST(%s) has %d terminal(s), FOLLOW(%s) has %d terminal(s)\n",
			nt, len(first.Get(nt)), nt, len(follow.Get(nt)))
	}
	if _, err := ll1.BuildTable(g, first, follow); err != nil {
		fmt.Fprintf(w, "PREDICT conflicts: %v\n", err)
	}
}

func printSummary(result *frontend.Result) {
	lexical := len(result.LexicalErrors)
	syntax := len(result.SyntaxErrors)
	semantic := len(result.SemanticErrors)
	total := lexical + syntax + semantic

	if total == 0 {
		color.Green("minic: compiled cleanly (0 errors)")
		return
	}
	color.Red("minic: %d error(s) — %d lexical, %d syntax, %d semantic", total, lexical, syntax, semantic)
}
