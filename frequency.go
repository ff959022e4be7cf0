package huffman

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Frequencies maps each Symbol to its number of occurrences.  It remembers
// the order in which symbols were first added; BuildTree uses that order to
// break ties between equal frequencies.
//
// The zero value is not usable; call NewFrequencies.
type Frequencies struct {
	counts map[Symbol]uint64
	order  []Symbol
}

// NewFrequencies returns an empty Frequencies.
func NewFrequencies() *Frequencies {
	return &Frequencies{counts: make(map[Symbol]uint64)}
}

// AnalyzeFrequencies counts the occurrences of each symbol.  Symbols are
// ordered by first occurrence.
func AnalyzeFrequencies(symbols []Symbol) *Frequencies {
	f := NewFrequencies()
	for _, s := range symbols {
		f.Add(s, 1)
	}
	return f
}

// FrequenciesFromMap builds a Frequencies from a plain map.  Symbols are
// ordered by ascending value, and zero counts are omitted.
func FrequenciesFromMap(m map[Symbol]uint64) *Frequencies {
	keys := make([]Symbol, 0, len(m))
	for s := range m {
		keys = append(keys, s)
	}
	slices.Sort(keys)

	f := NewFrequencies()
	for _, s := range keys {
		f.Add(s, m[s])
	}
	return f
}

// Add increments the count of s by n.  Counts saturate at math.MaxUint64.
// Adding 0 is a no-op.
func (f *Frequencies) Add(s Symbol, n uint64) {
	if n == 0 {
		return
	}
	old, found := f.counts[s]
	if !found {
		f.order = append(f.order, s)
	}
	f.counts[s] = saturatingAdd(old, n)
}

// Count returns the number of occurrences of s.
func (f *Frequencies) Count(s Symbol) uint64 {
	return f.counts[s]
}

// Len returns the number of distinct symbols.
func (f *Frequencies) Len() int {
	return len(f.order)
}

// Total returns the sum of all counts.
func (f *Frequencies) Total() uint64 {
	var sum uint64
	for _, n := range f.counts {
		sum = saturatingAdd(sum, n)
	}
	return sum
}

// Symbols returns the distinct symbols in insertion order.
func (f *Frequencies) Symbols() []Symbol {
	return slices.Clone(f.order)
}

// Map returns a copy of the counts.
func (f *Frequencies) Map() map[Symbol]uint64 {
	return maps.Clone(f.counts)
}
