package frontend

import (
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileSimpleOutput(t *testing.T) {
	res, err := Compile(`void main(void){ output(42); }`)
	require.NoError(t, err)
	require.Empty(t, res.SemanticErrors)
	require.Empty(t, res.SyntaxErrors)

	reports := res.Reports()
	// "main" is not in MiniC's keyword list, so the scanner classifies it
	// as a plain ID rather than a KEYWORD.
	assert.True(t, strings.HasPrefix(reports["tokens.txt"], "1.\t(KEYWORD, void) (ID, main) (SYMBOL, () "),
		"got: %q", reports["tokens.txt"])

	require.NotEmpty(t, res.ProgramBlock)
	require.NotNil(t, res.ProgramBlock[0])
	if diff := cmp.Diff("ASSIGN", res.ProgramBlock[0].Op); diff != "" {
		t.Errorf("PB[0].Op mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "#4", res.ProgramBlock[0].A1)
	assert.Equal(t, "0", res.ProgramBlock[0].A2)

	var sawPrint42 bool
	for _, instr := range res.ProgramBlock {
		if instr != nil && instr.Op == "PRINT" && instr.A1 == "#42" {
			sawPrint42 = true
		}
	}
	assert.True(t, sawPrint42, "expected a (PRINT, #42, , ) instruction")
	assert.NotContains(t, reports["output.txt"], "The code has not been generated.")
}

func TestCompileIfElseEmitsOneJPFAndOneExtraJP(t *testing.T) {
	src := `void main(void){ int x; x=1; if (x==1) output(1); else output(2); endif; }`
	res, err := Compile(src)
	require.NoError(t, err)
	require.Empty(t, res.SemanticErrors)
	require.Empty(t, res.SyntaxErrors)

	var jpfCount, jpCount int
	for _, instr := range res.ProgramBlock {
		if instr == nil {
			continue
		}
		switch instr.Op {
		case "JPF":
			jpfCount++
		case "JP":
			jpCount++
		}
	}
	assert.Equal(t, 1, jpfCount, "exactly one JPF for the if/else test")
	// jumpToMainIndex always contributes one JP (the jump to main's entry);
	// the if/else construct contributes exactly one more, past the else branch.
	assert.Equal(t, 2, jpCount)
}

func TestCompileForWithBreakTargetsSameExit(t *testing.T) {
	src := `void main(void){ int i; for (i=0; i<3; i=i+1) { if (i==2) { break; } endif; output(i); } }`
	res, err := Compile(src)
	require.NoError(t, err)
	require.Empty(t, res.SemanticErrors)
	require.Empty(t, res.SyntaxErrors)

	exit := strconv.Itoa(len(res.ProgramBlock))
	var exitTargeters int
	for _, instr := range res.ProgramBlock {
		if instr == nil {
			continue
		}
		if instr.Op == "JP" && instr.A1 == exit {
			exitTargeters++
		}
		if instr.Op == "JPF" && instr.A2 == exit {
			exitTargeters++
		}
	}
	// One JPF is the loop's own conditional exit test; one JP is break's
	// unconditional exit. Both land on the instruction right after the loop.
	assert.Equal(t, 2, exitTargeters)
}

// A self-recursive call must save and restore the caller's live locals
// around the call, since the callee reuses the same function's memory.
func TestCompileRecursionSavesAndRestoresAroundCall(t *testing.T) {
	src := `int f(int n){ if (n==0) return 1; endif return n* f(n+ -1); }`
	res, err := Compile(src)
	require.NoError(t, err)
	require.Empty(t, res.SemanticErrors)
	require.Empty(t, res.SyntaxErrors)

	var sawPush, sawPop bool
	for _, instr := range res.ProgramBlock {
		if instr == nil {
			continue
		}
		if instr.Op == "ADD" && instr.A1 == "#4" && instr.A2 == "0" && instr.A3 == "0" {
			sawPush = true
		}
		if instr.Op == "SUB" && instr.A1 == "0" && instr.A2 == "#4" && instr.A3 == "0" {
			sawPop = true
		}
	}
	assert.True(t, sawPush, "expected an SP-increment instruction saving a live local before the recursive call")
	assert.True(t, sawPop, "expected an SP-decrement instruction restoring a live local after the recursive call")
}

func TestCompileLexicalErrorStillTokenizesRemainder(t *testing.T) {
	res, err := Compile(`123abc ;`)
	require.NoError(t, err)
	reports := res.Reports()
	assert.Contains(t, reports["lexical_errors.txt"], "1.\t(123abc, Invalid number)")
	assert.Contains(t, reports["tokens.txt"], "(SYMBOL, ;)")
}

func TestCompileUndefinedIdentifierSuppressesOutput(t *testing.T) {
	res, err := Compile(`void main(void){ output(q); }`)
	require.NoError(t, err)
	reports := res.Reports()
	assert.Contains(t, reports["semantic_errors.txt"], "#1 : Semantic Error! 'q' is not defined.")
	assert.Equal(t, "The code has not been generated.", reports["output.txt"])
}

func TestCompileNoErrorsReportsCleanFiles(t *testing.T) {
	res, err := Compile(`void main(void){ }`)
	require.NoError(t, err)
	reports := res.Reports()
	assert.Equal(t, "There is no lexical error.", reports["lexical_errors.txt"])
	assert.Equal(t, "There is no syntax error.", reports["syntax_errors.txt"])
	assert.Equal(t, "The input program is semantically correct.", reports["semantic_errors.txt"])
}

func TestCompileSymbolTableKeywordsFirst(t *testing.T) {
	res, err := Compile(`void main(void){ int total; total=1; }`)
	require.NoError(t, err)
	require.True(t, len(res.SymbolTable) >= 10)
	assert.Equal(t, "if", res.SymbolTable[0])
	assert.Contains(t, res.SymbolTable, "main")
	assert.Contains(t, res.SymbolTable, "total")
}
