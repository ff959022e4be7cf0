package huffman

import (
	"strings"
)

// BitString is an ordered sequence of bits, written as the characters '0'
// and '1'.  The first character is the first bit.
type BitString string

// ParseBitString validates s and returns it as a BitString.
func ParseBitString(s string) (BitString, error) {
	for i := 0; i < len(s); i++ {
		if !isBit(s[i]) {
			return "", &MalformedBitstreamError{Offset: i, Reason: "not a binary digit: " + quoteByte(s[i])}
		}
	}
	return BitString(s), nil
}

// Len returns the number of bits.
func (bs BitString) Len() int {
	return len(bs)
}

// Bit returns the i'th bit as 0 or 1.  It panics if i is out of range or the
// character at i is not a binary digit.
func (bs BitString) Bit(i int) byte {
	c := bs[i]
	if !isBit(c) {
		panic("huffman: not a binary digit: " + quoteByte(c))
	}
	return c - '0'
}

// IsPrefixOf reports whether bs is a proper prefix of other.
func (bs BitString) IsPrefixOf(other BitString) bool {
	return len(bs) < len(other) && strings.HasPrefix(string(other), string(bs))
}

// Append returns bs with a single bit appended.
func (bs BitString) Append(bit byte) BitString {
	if bit == 0 {
		return bs + "0"
	}
	return bs + "1"
}
