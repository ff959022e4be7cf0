package huffman

import (
	"errors"
	"strings"
	"testing"
)

func makeTestTree(t *testing.T, text string) *Tree {
	t.Helper()
	tree, err := BuildTree(AnalyzeFrequencies(Symbols(text)))
	if err != nil {
		t.Fatalf("BuildTree(%q) failed: %v", text, err)
	}
	return tree
}

func TestBuildTree_Empty(t *testing.T) {
	_, err := BuildTree(AnalyzeFrequencies(Symbols("")))
	if !errors.Is(err, ErrEmptyAlphabet) {
		t.Errorf("expected ErrEmptyAlphabet, got %v", err)
	}

	_, err = BuildTree(nil)
	if !errors.Is(err, ErrEmptyAlphabet) {
		t.Errorf("expected ErrEmptyAlphabet for nil, got %v", err)
	}
}

func TestBuildTree_DebugString(t *testing.T) {
	tree := makeTestTree(t, "aaab")

	expectDebug := strings.Join([]string{
		"Tree{\n",
		"\tRoot() = 2\n",
		"\tNode(0) = {symbol=97 freq=3}\n",
		"\tNode(1) = {symbol=98 freq=1}\n",
		"\tNode(2) = {freq=4 left=1 right=0}\n",
		"}\n",
	}, "")
	actualDebug := tree.DebugString()
	if expectDebug != actualDebug {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDebug, actualDebug)
	}
}

func TestBuildTree_String(t *testing.T) {
	tree := makeTestTree(t, "abracadabra")

	expectString := "(Huffman tree with 5 leaves and 9 nodes, depth 3)"
	actualString := tree.String()
	if expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	tree := makeTestTree(t, "zzzz")

	if !tree.IsSingleLeaf() {
		t.Fatalf("expected a single leaf, got %s", tree)
	}
	root := tree.Node(tree.Root())
	if root.Symbol != 'z' || root.Frequency != 4 {
		t.Errorf("wrong root: %+v", root)
	}
	if tree.Depth() != 0 {
		t.Errorf("expected depth 0, got %d", tree.Depth())
	}
}

// Equal frequencies merge in creation order: a+b, then c+d, then the two
// merged nodes.
func TestBuildTree_TieBreak(t *testing.T) {
	tree := makeTestTree(t, "abcd")

	expectDebug := strings.Join([]string{
		"Tree{\n",
		"\tRoot() = 6\n",
		"\tNode(0) = {symbol=97 freq=1}\n",
		"\tNode(1) = {symbol=98 freq=1}\n",
		"\tNode(2) = {symbol=99 freq=1}\n",
		"\tNode(3) = {symbol=100 freq=1}\n",
		"\tNode(4) = {freq=2 left=0 right=1}\n",
		"\tNode(5) = {freq=2 left=2 right=3}\n",
		"\tNode(6) = {freq=4 left=4 right=5}\n",
		"}\n",
	}, "")
	actualDebug := tree.DebugString()
	if expectDebug != actualDebug {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDebug, actualDebug)
	}
}

func TestBuildTree_Invariants(t *testing.T) {
	inputs := []string{
		"a",
		"ab",
		"aaab",
		"abracadabra",
		"the quick brown fox jumps over the lazy dog",
		"mississippi river",
		"ééé ü ü ñ",
	}
	for _, text := range inputs {
		t.Run(text, func(t *testing.T) {
			freq := AnalyzeFrequencies(Symbols(text))
			tree, err := BuildTree(freq)
			if err != nil {
				t.Fatalf("BuildTree failed: %v", err)
			}

			if tree.NumLeaves() != freq.Len() {
				t.Errorf("expected %d leaves, got %d", freq.Len(), tree.NumLeaves())
			}
			if tree.Len() != 2*freq.Len()-1 {
				t.Errorf("expected %d nodes, got %d", 2*freq.Len()-1, tree.Len())
			}

			root := tree.Node(tree.Root())
			if root.Frequency != freq.Total() {
				t.Errorf("root frequency %d != total %d", root.Frequency, freq.Total())
			}

			visited := 0
			tree.Walk(func(id NodeID, _ BitString) bool {
				visited++
				node := tree.Node(id)
				if node.IsLeaf() {
					if node.Frequency != freq.Count(node.Symbol) {
						t.Errorf("leaf %v: frequency %d != count %d", node.Symbol, node.Frequency, freq.Count(node.Symbol))
					}
					return true
				}
				if node.Left == NoNode || node.Right == NoNode {
					t.Errorf("internal node %d has a missing child", id)
					return true
				}
				sum := tree.Node(node.Left).Frequency + tree.Node(node.Right).Frequency
				if node.Frequency != sum {
					t.Errorf("internal node %d: frequency %d != children's sum %d", id, node.Frequency, sum)
				}
				return true
			})
			if visited != tree.Len() {
				t.Errorf("walk visited %d of %d nodes", visited, tree.Len())
			}
		})
	}
}

// A maximally skewed distribution produces a tree as deep as the alphabet
// is large, less one.
func TestBuildTree_Skewed(t *testing.T) {
	m := make(map[Symbol]uint64)
	var f uint64 = 1
	for s := Symbol(0); s < 40; s++ {
		m[s] = f
		f *= 2
	}
	tree, err := BuildTree(FrequenciesFromMap(m))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if tree.Depth() != 39 {
		t.Errorf("expected depth 39, got %d", tree.Depth())
	}
}

func TestTree_WalkStops(t *testing.T) {
	tree := makeTestTree(t, "abracadabra")

	var visited []NodeID
	tree.Walk(func(id NodeID, _ BitString) bool {
		visited = append(visited, id)
		return len(visited) < 3
	})
	if len(visited) != 3 {
		t.Errorf("expected walk to stop after 3 nodes, visited %v", visited)
	}
	if visited[0] != tree.Root() {
		t.Errorf("expected walk to start at root %d, got %d", tree.Root(), visited[0])
	}
}

func TestBuildTree_NegativeSymbol(t *testing.T) {
	_, err := BuildTree(AnalyzeFrequencies([]Symbol{InvalidSymbol, InvalidSymbol, 5}))
	if !errors.Is(err, ErrInvalidSymbol) {
		t.Fatalf("expected ErrInvalidSymbol, got %v", err)
	}
	var ise *InvalidSymbolError
	if !errors.As(err, &ise) || ise.Symbol != InvalidSymbol {
		t.Errorf("wrong error details: %v", err)
	}

	if _, err := NewCodec([]Symbol{7, -3}); !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("NewCodec: expected ErrInvalidSymbol, got %v", err)
	}
}

// Every table the builder produces must be accepted back by NewCodeTable.
func TestBuildTree_TableReloads(t *testing.T) {
	c, err := NewCodec(Symbols("abracadabra"))
	if err != nil {
		t.Fatalf("NewCodec failed: %v", err)
	}
	if _, err := NewCodeTable(c.Table().Codes()); err != nil {
		t.Errorf("generated table rejected: %v", err)
	}
}
