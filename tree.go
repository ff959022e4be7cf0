package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/huffmantree/pqueue"
)

// NodeID is the index of a Node within its Tree.
type NodeID int32

// NoNode marks an absent child.
const NoNode = NodeID(-1)

// Node is a single node of a Tree.  A leaf has no children and carries a
// Symbol; an internal node has two children, carries InvalidSymbol, and its
// Frequency is the sum of its children's.
type Node struct {
	Symbol    Symbol
	Frequency uint64
	Left      NodeID
	Right     NodeID
}

// IsLeaf reports whether n has no children.
func (n Node) IsLeaf() bool {
	return n.Left == NoNode && n.Right == NoNode
}

// Tree is a Huffman tree stored as an arena of nodes.  Every node other than
// the root is the child of exactly one other node.
type Tree struct {
	nodes []Node
	root  NodeID
}

// BuildTree builds the Huffman tree for freq.
//
// One leaf is created per symbol, in freq's order.  The two nodes with the
// lowest frequency are then merged repeatedly: the first one removed becomes
// the left child, the second the right child.  Ties are broken by node
// creation order, leaves first.
//
// If freq holds exactly one symbol, the root is that symbol's leaf.  A
// negative symbol fails with an *InvalidSymbolError.
//
func BuildTree(freq *Frequencies) (*Tree, error) {
	if freq == nil || freq.Len() == 0 {
		return nil, ErrEmptyAlphabet
	}
	for _, s := range freq.order {
		if s < 0 {
			return nil, &InvalidSymbolError{Symbol: s}
		}
	}

	numLeaves := freq.Len()
	t := &Tree{
		nodes: make([]Node, 0, 2*numLeaves-1),
		root:  NoNode,
	}

	less := func(a, b NodeID) bool {
		x, y := t.nodes[a], t.nodes[b]
		if x.Frequency != y.Frequency {
			return x.Frequency < y.Frequency
		}
		return a < b
	}

	q := pqueue.New(numLeaves, less)
	for _, s := range freq.order {
		id := t.add(Node{Symbol: s, Frequency: freq.counts[s], Left: NoNode, Right: NoNode})
		mustAdd(q, id)
	}

	for q.Size() > 1 {
		x := mustPop(q)
		y := mustPop(q)
		id := t.add(Node{
			Symbol:    InvalidSymbol,
			Frequency: saturatingAdd(t.nodes[x].Frequency, t.nodes[y].Frequency),
			Left:      x,
			Right:     y,
		})
		mustAdd(q, id)
	}

	t.root = mustPop(q)
	return t, nil
}

func mustAdd(q *pqueue.Queue[NodeID], id NodeID) {
	err := q.Add(id)
	assert.Assertf(err == nil, "queue rejected node %d: %v", id, err)
}

func mustPop(q *pqueue.Queue[NodeID]) NodeID {
	id, err := q.Pop()
	assert.Assertf(err == nil, "queue ran dry: %v", err)
	return id
}

func (t *Tree) add(n Node) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return id
}

// Root returns the ID of the root node.
func (t *Tree) Root() NodeID {
	return t.root
}

// Node returns the node with the given ID.
func (t *Tree) Node(id NodeID) Node {
	assert.Assertf(id >= 0 && int(id) < len(t.nodes), "node %d out of range [0, %d)", id, len(t.nodes))
	return t.nodes[id]
}

// Len returns the total number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NumLeaves returns the number of leaves, which equals the number of
// distinct symbols.
func (t *Tree) NumLeaves() int {
	var n int
	for _, node := range t.nodes {
		if node.IsLeaf() {
			n++
		}
	}
	return n
}

// IsSingleLeaf reports whether the root itself is a leaf, i.e. the
// alphabet has exactly one symbol.
func (t *Tree) IsSingleLeaf() bool {
	return len(t.nodes) != 0 && t.nodes[t.root].IsLeaf()
}

// Walk visits every node reachable from the root in depth-first order, left
// subtree before right, calling fn with the node's ID and the path leading
// to it.  Walk stops early if fn returns false.
//
// The walk uses an explicit stack, so deep (skewed) trees are fine.
//
func (t *Tree) Walk(fn func(id NodeID, path BitString) bool) {
	if len(t.nodes) == 0 {
		return
	}

	type stackItem struct {
		id   NodeID
		path BitString
	}

	stack := make([]stackItem, 0, log2uint(uint(len(t.nodes)))+1)
	stack = append(stack, stackItem{t.root, ""})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(top.id, top.path) {
			return
		}

		node := t.nodes[top.id]
		// Right is pushed first so that left is popped first.
		if node.Right != NoNode {
			stack = append(stack, stackItem{node.Right, top.path.Append(1)})
		}
		if node.Left != NoNode {
			stack = append(stack, stackItem{node.Left, top.path.Append(0)})
		}
	}
}

// Depth returns the length of the longest root-to-leaf path.
func (t *Tree) Depth() int {
	var depth int
	t.Walk(func(_ NodeID, path BitString) bool {
		if path.Len() > depth {
			depth = path.Len()
		}
		return true
	})
	return depth
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.root)
	for id, node := range t.nodes {
		if node.IsLeaf() {
			fmt.Fprintf(&buf, "\tNode(%d) = {symbol=%d freq=%d}\n", id, node.Symbol, node.Frequency)
		} else {
			fmt.Fprintf(&buf, "\tNode(%d) = {freq=%d left=%d right=%d}\n", id, node.Frequency, node.Left, node.Right)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the Dump output as a string.
func (t *Tree) DebugString() string {
	var buf bytes.Buffer
	_, _ = t.Dump(&buf)
	return buf.String()
}

// String returns a short description of the Tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d leaves and %d nodes, depth %d)", t.NumLeaves(), t.Len(), t.Depth())
}

var _ fmt.Stringer = (*Tree)(nil)
