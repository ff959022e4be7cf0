package huffman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// CodeTable maps each Symbol to its prefix-free code.
type CodeTable struct {
	codes   map[Symbol]BitString
	minSize int
	maxSize int
}

// GenerateCodeTable assigns each leaf of t the path leading to it: '0' for
// each step to a left child, '1' for each step to a right child.
//
// If the root is itself a leaf, its symbol is assigned the code "0", so that
// every symbol still costs one bit.
//
func GenerateCodeTable(t *Tree) *CodeTable {
	ct := &CodeTable{codes: make(map[Symbol]BitString, t.NumLeaves())}
	if t.IsSingleLeaf() {
		ct.set(t.nodes[t.root].Symbol, "0")
		return ct
	}

	t.Walk(func(id NodeID, path BitString) bool {
		if node := t.nodes[id]; node.IsLeaf() {
			ct.set(node.Symbol, path)
		}
		return true
	})
	return ct
}

// NewCodeTable builds a CodeTable from explicit codes.  Every code must be a
// non-empty string of binary digits, and no code may be a prefix of
// another.
func NewCodeTable(codes map[Symbol]BitString) (*CodeTable, error) {
	type entry struct {
		symbol Symbol
		code   BitString
	}

	entries := make([]entry, 0, len(codes))
	for s, code := range codes {
		if s < 0 {
			return nil, &InvalidCodeError{Symbol: s, Code: code, Reason: "negative symbol"}
		}
		if code.Len() == 0 {
			return nil, &InvalidCodeError{Symbol: s, Code: code, Reason: "empty code"}
		}
		if _, err := ParseBitString(string(code)); err != nil {
			return nil, &InvalidCodeError{Symbol: s, Code: code, Reason: "not a bit string"}
		}
		entries = append(entries, entry{s, code})
	}

	// After sorting, any code that is a prefix of another is a prefix of
	// its immediate successor.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].code != entries[j].code {
			return entries[i].code < entries[j].code
		}
		return entries[i].symbol < entries[j].symbol
	})
	for i := 1; i < len(entries); i++ {
		prev, next := entries[i-1], entries[i]
		if prev.code == next.code {
			return nil, &InvalidCodeError{Symbol: next.symbol, Code: next.code, Reason: "duplicate of symbol " + prev.symbol.String()}
		}
		if prev.code.IsPrefixOf(next.code) {
			return nil, &InvalidCodeError{Symbol: next.symbol, Code: next.code, Reason: "prefixed by code of symbol " + prev.symbol.String()}
		}
	}

	ct := &CodeTable{codes: make(map[Symbol]BitString, len(entries))}
	for _, e := range entries {
		ct.set(e.symbol, e.code)
	}
	return ct, nil
}

func (ct *CodeTable) set(s Symbol, code BitString) {
	size := code.Len()
	if len(ct.codes) == 0 {
		ct.minSize, ct.maxSize = size, size
	} else if ct.minSize > size {
		ct.minSize = size
	} else if ct.maxSize < size {
		ct.maxSize = size
	}
	ct.codes[s] = code
}

// Lookup returns the code for s.
func (ct *CodeTable) Lookup(s Symbol) (BitString, bool) {
	code, found := ct.codes[s]
	return code, found
}

// Len returns the number of symbols with a code.
func (ct *CodeTable) Len() int {
	return len(ct.codes)
}

// Symbols returns the coded symbols in ascending order.
func (ct *CodeTable) Symbols() []Symbol {
	keys := make([]Symbol, 0, len(ct.codes))
	for s := range ct.codes {
		keys = append(keys, s)
	}
	slices.Sort(keys)
	return keys
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() int {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() int {
	return ct.maxSize
}

// Codes returns a copy of the symbol to code mapping.
func (ct *CodeTable) Codes() map[Symbol]BitString {
	return maps.Clone(ct.codes)
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, s := range ct.Symbols() {
		fmt.Fprintf(&buf, "\tLookup(%d) = %s\n", s, strconv.Quote(string(ct.codes[s])))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the Dump output as a string.
func (ct *CodeTable) DebugString() string {
	var buf bytes.Buffer
	_, _ = ct.Dump(&buf)
	return buf.String()
}

// GoString returns a Go expression that reconstructs this CodeTable.
func (ct *CodeTable) GoString() string {
	var buf bytes.Buffer
	buf.WriteString("NewCodeTable(map[Symbol]BitString{")
	for i, s := range ct.Symbols() {
		if i != 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%d:%s", s, strconv.Quote(string(ct.codes[s])))
	}
	buf.WriteString("})")
	return buf.String()
}

// String returns a short description of the CodeTable.
func (ct *CodeTable) String() string {
	return fmt.Sprintf("(Huffman code table with %d symbols, with code lengths of %d .. %d bits)", len(ct.codes), ct.minSize, ct.maxSize)
}

// MarshalJSON encodes the table as an object from decimal symbol to code.
func (ct *CodeTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(ct.codes)
}

// UnmarshalJSON decodes a table written by MarshalJSON, rejecting tables
// that are not prefix-free.
func (ct *CodeTable) UnmarshalJSON(raw []byte) error {
	var codes map[Symbol]BitString
	if err := json.Unmarshal(raw, &codes); err != nil {
		return err
	}
	parsed, err := NewCodeTable(codes)
	if err != nil {
		return err
	}
	*ct = *parsed
	return nil
}

var (
	_ fmt.Stringer     = (*CodeTable)(nil)
	_ fmt.GoStringer   = (*CodeTable)(nil)
	_ json.Marshaler   = (*CodeTable)(nil)
	_ json.Unmarshaler = (*CodeTable)(nil)
)
