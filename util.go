package huffman

import (
	"math"
	mathbits "math/bits"
	"strconv"
)

func log2uint(x uint) uint {
	if x == 0 {
		x = 1
	}
	return uint(mathbits.UintSize - mathbits.LeadingZeros(x))
}

// saturatingAdd adds two frequencies, clamping at math.MaxUint64.
func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return math.MaxUint64
	}
	return sum
}

func isBit(c byte) bool {
	return c == '0' || c == '1'
}

func quoteByte(c byte) string {
	return strconv.QuoteRune(rune(c))
}
