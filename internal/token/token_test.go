package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{NUM, "NUM"},
		{ID, "ID"},
		{KEYWORD, "KEYWORD"},
		{SYMBOL, "SYMBOL"},
		{COMMENT, "COMMENT"},
		{WHITESPACE, "WHITESPACE"},
		{EOF, "EOF"},
		{Kind(99), "UNKNOWN"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.kind.String())
	}
}

func TestIsKeyword(t *testing.T) {
	for _, kw := range Keywords {
		assert.True(t, IsKeyword(kw), "%q should be a keyword", kw)
	}
	assert.False(t, IsKeyword("output"))
	assert.False(t, IsKeyword("x"))
	assert.False(t, IsKeyword(""))
}
