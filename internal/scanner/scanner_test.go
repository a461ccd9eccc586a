package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minic-lang/minic/internal/token"
)

func collectTokens(s *Scanner) []token.Token {
	var out []token.Token
	for {
		tok := s.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return out
}

func TestScannerSymbolsAndKeywords(t *testing.T) {
	s := New("void main(void){ int x; x=1; }")
	toks := collectTokens(s)
	require.NotEmpty(t, toks)

	var got []string
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			break
		}
		got = append(got, tok.Lexeme)
	}
	assert.Equal(t, []string{"void", "main", "(", "void", ")", "{", "int", "x", ";", "x", "=", "1", ";", "}"}, got)
}

func TestScannerEqEqAndBareAssign(t *testing.T) {
	s := New("a==b a=b")
	toks := collectTokens(s)
	var lexemes []string
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			break
		}
		lexemes = append(lexemes, tok.Lexeme)
	}
	assert.Equal(t, []string{"a", "==", "b", "a", "=", "b"}, lexemes)
}

func TestScannerStarNotComment(t *testing.T) {
	s := New("a*b")
	toks := collectTokens(s)
	var lexemes []string
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			break
		}
		lexemes = append(lexemes, tok.Lexeme)
	}
	assert.Equal(t, []string{"a", "*", "b"}, lexemes)
}

func TestScannerCommentDiscarded(t *testing.T) {
	s := New("int /* comment here */ x;")
	toks := collectTokens(s)
	var kinds []token.Kind
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			break
		}
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{token.KEYWORD, token.ID, token.SYMBOL}, kinds)
}

func TestScannerUnclosedCommentTruncated(t *testing.T) {
	s := New("/* this comment never closes")
	_ = collectTokens(s)
	require.Len(t, s.Errors, 1)
	assert.Equal(t, UnclosedComment, s.Errors[0].Category)
	assert.Equal(t, "/* this…", s.Errors[0].Lexeme)
}

func TestScannerUnmatchedComment(t *testing.T) {
	s := New("*/")
	_ = collectTokens(s)
	require.Len(t, s.Errors, 1)
	assert.Equal(t, UnmatchedComment, s.Errors[0].Category)
}

func TestScannerInvalidNumber(t *testing.T) {
	// A digit run immediately followed by a letter is an invalid number;
	// the scanner still recovers and tokenizes what follows it.
	s := New("123abc ;")
	toks := collectTokens(s)
	require.Len(t, s.Errors, 1)
	assert.Equal(t, InvalidNumber, s.Errors[0].Category)
	assert.Equal(t, "123abc", s.Errors[0].Lexeme)
	assert.Equal(t, 1, s.Errors[0].Line)

	require.Len(t, toks, 2) // ';' then EOF
	assert.Equal(t, token.SYMBOL, toks[0].Kind)
	assert.Equal(t, ";", toks[0].Lexeme)
}

func TestScannerInvalidInput(t *testing.T) {
	s := New("a ? b")
	_ = collectTokens(s)
	require.Len(t, s.Errors, 1)
	assert.Equal(t, InvalidInput, s.Errors[0].Category)
	assert.Equal(t, "?", s.Errors[0].Lexeme)
}

func TestScannerLineTracking(t *testing.T) {
	s := New("int x;\nint y;\n")
	toks := collectTokens(s)
	require.True(t, len(toks) >= 6)
	assert.Equal(t, 1, toks[0].Line)
	// "y" on the second physical line should report line 2.
	var secondLineSeen bool
	for _, tok := range toks {
		if tok.Lexeme == "y" {
			assert.Equal(t, 2, tok.Line)
			secondLineSeen = true
		}
	}
	assert.True(t, secondLineSeen)
}

func TestScannerEOFRepeats(t *testing.T) {
	s := New("")
	first := s.Next()
	second := s.Next()
	assert.Equal(t, token.EOF, first.Kind)
	assert.Equal(t, token.EOF, second.Kind)
}

func TestSymbolTableIdempotentAndOrdered(t *testing.T) {
	s := New("foo bar foo baz bar")
	collectTokens(s)
	names := s.SymbolNames()

	require.True(t, len(names) >= len(token.Keywords)+3)
	for i, kw := range token.Keywords {
		assert.Equal(t, kw, names[i])
	}

	tail := names[len(token.Keywords):]
	assert.Equal(t, []string{"foo", "bar", "baz"}, tail)
}
