package huffman

// Codec holds everything derived from one input: its frequencies, its
// Huffman tree, and the code table generated from that tree.
//
// None of Codec's methods modify it.
type Codec struct {
	freq  *Frequencies
	tree  *Tree
	table *CodeTable
}

// NewCodec analyzes symbols and builds the tree and code table for them.
// It fails with ErrEmptyAlphabet if symbols is empty.
func NewCodec(symbols []Symbol) (*Codec, error) {
	return NewCodecFromFrequencies(AnalyzeFrequencies(symbols))
}

// NewCodecFromFrequencies builds the tree and code table for freq.
func NewCodecFromFrequencies(freq *Frequencies) (*Codec, error) {
	tree, err := BuildTree(freq)
	if err != nil {
		return nil, err
	}
	return &Codec{
		freq:  freq,
		tree:  tree,
		table: GenerateCodeTable(tree),
	}, nil
}

// Encode encodes symbols with this Codec's code table.
func (c *Codec) Encode(symbols []Symbol) (BitString, error) {
	return Encode(symbols, c.table)
}

// Decode decodes bits with this Codec's tree.
func (c *Codec) Decode(bits BitString) ([]Symbol, error) {
	return Decode(bits, c.tree)
}

// Frequencies returns the frequencies the Codec was built from.
func (c *Codec) Frequencies() *Frequencies {
	return c.freq
}

// Tree returns the Codec's Huffman tree.
func (c *Codec) Tree() *Tree {
	return c.tree
}

// Table returns the Codec's code table.
func (c *Codec) Table() *CodeTable {
	return c.table
}

// EncodedBits returns the number of bits needed to encode the analyzed
// input, i.e. the sum over all symbols of frequency × code length.
func (c *Codec) EncodedBits() uint64 {
	n, _ := EncodedSize(c.freq, c.table)
	return n
}
