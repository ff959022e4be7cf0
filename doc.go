// Package huffman builds Huffman codes from observed symbol frequencies and
// uses them to turn a sequence of symbols into a string of bits and back.
//
// The pipeline is:
//
//     AnalyzeFrequencies → BuildTree → GenerateCodeTable → Encode
//     BuildTree → Decode
//
// Codec bundles the stages for one input.  Bits are represented as text
// ("0" and "1"); there is no header and no packing into bytes.
//
// Equal-frequency nodes are merged in a fixed order: leaves in the order of
// Frequencies.Symbols, then internal nodes in the order they were created.
// The tree for a given Frequencies is therefore reproducible.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
