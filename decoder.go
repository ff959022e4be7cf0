package huffman

// Decode walks t once per bit, starting at the root: '0' moves to the left
// child and '1' to the right child.  Each time a leaf is reached its symbol
// is emitted and the walk restarts at the root.
//
// If the root is itself a leaf, every bit decodes to the root's symbol
// regardless of its value.
//
// Decode fails with a *MalformedBitstreamError if a character is not a
// binary digit, if a bit leads to a missing child, or if the input ends in
// the middle of a code.  No partial output is returned on failure.
//
func Decode(bits BitString, t *Tree) ([]Symbol, error) {
	if t == nil || len(t.nodes) == 0 {
		return nil, ErrEmptyAlphabet
	}

	root := t.nodes[t.root]
	if root.IsLeaf() {
		out := make([]Symbol, 0, len(bits))
		for i := 0; i < len(bits); i++ {
			if !isBit(bits[i]) {
				return nil, &MalformedBitstreamError{Offset: i, Reason: "not a binary digit: " + quoteByte(bits[i])}
			}
			out = append(out, root.Symbol)
		}
		return out, nil
	}

	out := make([]Symbol, 0, len(bits)/(int(log2uint(uint(len(t.nodes))))+1))
	cursor := t.root
	for i := 0; i < len(bits); i++ {
		node := t.nodes[cursor]
		switch bits[i] {
		case '0':
			cursor = node.Left
		case '1':
			cursor = node.Right
		default:
			return nil, &MalformedBitstreamError{Offset: i, Reason: "not a binary digit: " + quoteByte(bits[i])}
		}

		if cursor == NoNode {
			return nil, &MalformedBitstreamError{Offset: i, Reason: "no branch for bit " + quoteByte(bits[i])}
		}

		if next := t.nodes[cursor]; next.IsLeaf() {
			out = append(out, next.Symbol)
			cursor = t.root
		}
	}

	if cursor != t.root {
		return nil, &MalformedBitstreamError{Offset: len(bits), Reason: "input ends in the middle of a code"}
	}
	return out, nil
}

// TreeFromCodeTable rebuilds a decoding tree from a code table, as when the
// table was stored apart from the frequencies that produced it.  The nodes
// of the returned tree carry zero frequencies.
//
// A table with exactly one symbol and a one-bit code yields a single-leaf
// tree, matching BuildTree.  A lone longer code gets its full path, so a
// stream holding any other bits fails in Decode.  Tables that are not
// prefix-free are rejected with an *InvalidCodeError.  Codes need not be
// complete; bits that lead to a missing branch are reported by Decode.
//
func TreeFromCodeTable(table *CodeTable) (*Tree, error) {
	if table == nil || table.Len() == 0 {
		return nil, ErrEmptyAlphabet
	}

	symbols := table.Symbols()
	if len(symbols) == 1 && table.codes[symbols[0]].Len() == 1 {
		t := &Tree{root: 0}
		t.add(Node{Symbol: symbols[0], Left: NoNode, Right: NoNode})
		return t, nil
	}

	t := &Tree{root: 0}
	t.add(Node{Symbol: InvalidSymbol, Left: NoNode, Right: NoNode})
	for _, s := range symbols {
		code := table.codes[s]
		cursor := t.root
		for i := 0; i < code.Len(); i++ {
			if i != 0 && t.nodes[cursor].Symbol != InvalidSymbol {
				return nil, &InvalidCodeError{Symbol: s, Code: code, Reason: "prefixed by code of symbol " + t.nodes[cursor].Symbol.String()}
			}

			bit := code.Bit(i)
			next := t.nodes[cursor].Left
			if bit == 1 {
				next = t.nodes[cursor].Right
			}
			if next == NoNode {
				next = t.add(Node{Symbol: InvalidSymbol, Left: NoNode, Right: NoNode})
				if bit == 1 {
					t.nodes[cursor].Right = next
				} else {
					t.nodes[cursor].Left = next
				}
			}
			cursor = next
		}

		if node := t.nodes[cursor]; !node.IsLeaf() || node.Symbol != InvalidSymbol {
			return nil, &InvalidCodeError{Symbol: s, Code: code, Reason: "collides with another code"}
		}
		t.nodes[cursor].Symbol = s
	}
	return t, nil
}
