package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyAlphabet is returned when a tree is requested for an input
	// with no symbols.
	ErrEmptyAlphabet = errors.New("empty alphabet: no symbols to build a Huffman tree from")

	// ErrInvalidSymbol is matched by *InvalidSymbolError.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrUnknownSymbol is matched by *UnknownSymbolError.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrMalformedBitstream is matched by *MalformedBitstreamError.
	ErrMalformedBitstream = errors.New("malformed bitstream")

	// ErrInvalidCode is matched by *InvalidCodeError.
	ErrInvalidCode = errors.New("invalid code table")
)

// InvalidSymbolError reports a negative symbol in the input alphabet.
type InvalidSymbolError struct {
	Symbol Symbol
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %d: symbols must not be negative", int32(e.Symbol))
}

func (e *InvalidSymbolError) Is(target error) bool {
	return target == ErrInvalidSymbol
}

// UnknownSymbolError reports a symbol with no entry in the code table.
type UnknownSymbolError struct {
	Symbol Symbol
	Index  int
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %v at index %d: no code in table", e.Symbol, e.Index)
}

func (e *UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}

// MalformedBitstreamError reports a bit string that cannot be decoded with
// the given tree.  Offset is the index of the offending bit, or the length
// of the input if the input ended in the middle of a code.
type MalformedBitstreamError struct {
	Offset int
	Reason string
}

func (e *MalformedBitstreamError) Error() string {
	return fmt.Sprintf("malformed bitstream at bit %d: %s", e.Offset, e.Reason)
}

func (e *MalformedBitstreamError) Is(target error) bool {
	return target == ErrMalformedBitstream
}

// InvalidCodeError reports a code table entry that breaks the prefix-free
// property or is not a non-empty string of binary digits.
type InvalidCodeError struct {
	Symbol Symbol
	Code   BitString
	Reason string
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid code %q for symbol %v: %s", string(e.Code), e.Symbol, e.Reason)
}

func (e *InvalidCodeError) Is(target error) bool {
	return target == ErrInvalidCode
}
