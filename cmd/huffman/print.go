package main

import (
	"fmt"
	"io"
	"strings"

	huffman "github.com/chronos-tachyon/huffmantree"
)

// printTree draws t rotated 90 degrees: right subtree first, then the node,
// then the left subtree, indenting each level by indent spaces.  Leaves are
// labeled with symbol and frequency, internal nodes with frequency only.
func printTree(w io.Writer, t *huffman.Tree, indent int) {
	var visit func(id huffman.NodeID, depth int)
	visit = func(id huffman.NodeID, depth int) {
		if id == huffman.NoNode {
			return
		}
		node := t.Node(id)
		visit(node.Right, depth+1)
		pad := strings.Repeat(" ", depth*indent)
		if node.IsLeaf() {
			fmt.Fprintf(w, "%s%v:%d\n", pad, node.Symbol, node.Frequency)
		} else {
			fmt.Fprintf(w, "%s%d\n", pad, node.Frequency)
		}
		visit(node.Left, depth+1)
	}
	visit(t.Root(), 0)
}
