// Package parsetree defines the concrete syntax tree the parser builds as
// it recognizes a program, and renders it as an indented listing.
package parsetree

import (
	"fmt"
	"io"
)

// Node is one parse tree node: a nonterminal with its matched children, or
// a leaf labelled with a terminal's lexeme, "epsilon", or "$".
type Node struct {
	Label    string
	Children []*Node
}

// NewNonTerminal creates an interior node labelled name with the given
// children in left-to-right production order.
func NewNonTerminal(name string, children ...*Node) *Node {
	return &Node{Label: name, Children: children}
}

// NewLeaf creates a leaf node labelled text (a terminal's lexeme, the
// literal "epsilon", or the literal "$").
func NewLeaf(text string) *Node {
	return &Node{Label: text}
}

// Write renders the tree rooted at n as an indented listing, one label per
// line, each depth marked by a ruled branch.
func Write(w io.Writer, n *Node) {
	writeNode(w, n, "", "")
}

func writeNode(w io.Writer, n *Node, ruledLine, childPrefix string) {
	if n == nil {
		return
	}
	fmt.Fprintf(w, "%s%s\n", ruledLine, n.Label)

	count := len(n.Children)
	for i, child := range n.Children {
		var branch, nextPrefix string
		if i < count-1 {
			branch = "├── "
			nextPrefix = childPrefix + "│   "
		} else {
			branch = "└── "
			nextPrefix = childPrefix + "    "
		}
		writeNode(w, child, childPrefix+branch, nextPrefix)
	}
}
