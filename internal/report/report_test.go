package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minic-lang/minic/internal/codegen"
	"github.com/minic-lang/minic/internal/parser"
	"github.com/minic-lang/minic/internal/scanner"
	"github.com/minic-lang/minic/internal/token"
)

func TestRenderTokensGroupsByLine(t *testing.T) {
	entries := []TokenEntry{
		{Line: 1, Kind: token.KEYWORD, Lexeme: "void"},
		{Line: 1, Kind: token.ID, Lexeme: "main"},
		{Line: 2, Kind: token.SYMBOL, Lexeme: "{"},
	}
	got := RenderTokens(entries)
	assert.Equal(t, "1.\t(KEYWORD, void) (ID, main) \n2.\t(SYMBOL, {) ", got)
}

func TestRenderLexicalErrorsEmpty(t *testing.T) {
	assert.Equal(t, "There is no lexical error.", RenderLexicalErrors(nil))
}

func TestRenderLexicalErrorsNonEmpty(t *testing.T) {
	errs := []scanner.LexError{{Line: 3, Lexeme: "123x", Category: scanner.InvalidNumber}}
	got := RenderLexicalErrors(errs)
	assert.Equal(t, "3.\t(123x, Invalid number) ", got)
}

func TestRenderSymbolTable(t *testing.T) {
	got := RenderSymbolTable([]string{"if", "else", "main"})
	assert.Equal(t, "1.\tif\n2.\telse\n3.\tmain\n", got)
}

func TestRenderSyntaxErrorsEmpty(t *testing.T) {
	assert.Equal(t, "There is no syntax error.", RenderSyntaxErrors(nil))
}

func TestRenderSyntaxErrorsNonEmpty(t *testing.T) {
	errs := []parser.SyntaxError{{Line: 5, Message: "missing ;"}}
	got := RenderSyntaxErrors(errs)
	assert.Equal(t, "#5 : syntax error, missing ;\n", got)
}

func TestRenderSemanticErrorsEmpty(t *testing.T) {
	assert.Equal(t, "The input program is semantically correct.", RenderSemanticErrors(nil))
}

func TestRenderSemanticErrorsNonEmpty(t *testing.T) {
	errs := []codegen.SemanticError{{Line: 2, Message: "'q' is not defined."}}
	got := RenderSemanticErrors(errs)
	assert.Equal(t, "#2 : Semantic Error! 'q' is not defined.\n", got)
}

func TestRenderOutputSuppressedOnSemanticError(t *testing.T) {
	pb := []*codegen.Instruction{{Op: "ASSIGN", A1: "#4", A2: "0"}}
	assert.Equal(t, "The code has not been generated.", RenderOutput(pb, true))
}

func TestRenderOutputPreservesGapsAndBlankOperands(t *testing.T) {
	pb := []*codegen.Instruction{
		{Op: "ASSIGN", A1: "#4", A2: "0"},
		nil,
		{Op: "PRINT", A1: "#42"},
	}
	got := RenderOutput(pb, false)
	assert.Equal(t, "0\t(ASSIGN, #4, 0,   )\n\n2\t(PRINT, #42,  ,   )\n", got)
}
