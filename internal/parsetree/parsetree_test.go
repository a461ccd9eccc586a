package parsetree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteLeaf(t *testing.T) {
	var b strings.Builder
	Write(&b, NewLeaf("epsilon"))
	assert.Equal(t, "epsilon\n", b.String())
}

func TestWriteBranchesLastChildDiffers(t *testing.T) {
	tree := NewNonTerminal("Expression",
		NewLeaf("a"),
		NewLeaf("+"),
		NewLeaf("b"),
	)
	var b strings.Builder
	Write(&b, tree)
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")

	assert.Equal(t, "Expression", lines[0])
	assert.Equal(t, "├── a", lines[1])
	assert.Equal(t, "├── +", lines[2])
	assert.Equal(t, "└── b", lines[3])
}

func TestWriteNestedIndentation(t *testing.T) {
	inner := NewNonTerminal("B", NewLeaf("x"))
	tree := NewNonTerminal("A", inner, NewLeaf("y"))

	var b strings.Builder
	Write(&b, tree)
	got := b.String()

	assert.True(t, strings.Contains(got, "├── B"))
	assert.True(t, strings.Contains(got, "│   └── x"))
	assert.True(t, strings.Contains(got, "└── y"))
}
