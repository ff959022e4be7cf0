package huffman

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.  Text is handled one rune per Symbol.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is carried by internal tree nodes, and is returned by some
// functions to clearly indicate that no symbol is being returned.
const InvalidSymbol = Symbol(-1)

// String returns the quoted rune for printable symbols, or the numeric form
// otherwise.
func (s Symbol) String() string {
	if s < 0 {
		return "InvalidSymbol"
	}
	if r := rune(s); utf8.ValidRune(r) {
		return strconv.QuoteRune(r)
	}
	return "Symbol(" + strconv.FormatInt(int64(s), 10) + ")"
}

// Symbols splits text into one Symbol per rune.
func Symbols(text string) []Symbol {
	out := make([]Symbol, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		out = append(out, Symbol(r))
	}
	return out
}

// SymbolsToString is the inverse of Symbols.
func SymbolsToString(symbols []Symbol) string {
	var sb strings.Builder
	sb.Grow(len(symbols))
	for _, s := range symbols {
		sb.WriteRune(rune(s))
	}
	return sb.String()
}
