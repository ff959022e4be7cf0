package huffman

import (
	"strings"
)

// Encode replaces each symbol with its code from table and concatenates the
// results, preserving input order.
//
// If a symbol has no code, Encode returns an *UnknownSymbolError naming the
// first such symbol and its index, and no partial output.
//
func Encode(symbols []Symbol, table *CodeTable) (BitString, error) {
	var size int
	for index, s := range symbols {
		code, found := table.codes[s]
		if !found {
			return "", &UnknownSymbolError{Symbol: s, Index: index}
		}
		size += code.Len()
	}

	var sb strings.Builder
	sb.Grow(size)
	for _, s := range symbols {
		sb.WriteString(string(table.codes[s]))
	}
	return BitString(sb.String()), nil
}

// EncodedSize returns the number of bits Encode would produce for an input
// with the given frequencies, or false if some symbol has no code.
func EncodedSize(freq *Frequencies, table *CodeTable) (uint64, bool) {
	var total uint64
	for _, s := range freq.order {
		code, found := table.codes[s]
		if !found {
			return 0, false
		}
		total = saturatingAdd(total, freq.counts[s]*uint64(code.Len()))
	}
	return total, true
}
