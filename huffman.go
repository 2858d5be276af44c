// Package huffman builds a prefix-free code from the byte frequencies of
// a buffer, then uses that code to pack the buffer into a bit stream and
// to recover the original bytes from one.
//
// A Codec and everything it owns are immutable once built, so concurrent
// Encode and Decode calls against the same instance need no locking.
// Re-coding with fresh statistics means building a new Codec.
package huffman

import (
	"errors"
	"fmt"
	"io"

	"github.com/PhashaD/huffman/bitstream"
)

var (
	// ErrUnknownSymbol indicates Encode saw a byte with no code, i.e. a
	// byte that never occurred in the buffer the codec was built from.
	ErrUnknownSymbol = errors.New("huffman: symbol not in code table")
	// ErrTruncatedStream indicates the bit stream ended in the middle of
	// a code during Decode.
	ErrTruncatedStream = errors.New("huffman: truncated bit stream")
	// ErrInvalidInput indicates Decode was given a non-empty stream, but
	// the codec was built from an empty buffer and has no tree.
	ErrInvalidInput = errors.New("huffman: non-empty stream for empty codec")
	// ErrCorruptTree indicates a tree walk hit a node that is neither a
	// leaf nor fully branched. It signals a construction bug, not bad
	// input, and is not recoverable.
	ErrCorruptTree = errors.New("huffman: corrupt tree")
)

// Codec holds a Huffman tree and the code table derived from it, both
// computed from the frequency statistics of a single buffer.
type Codec struct {
	root   *node
	codes  [alphabetSize]*code
	freq   [alphabetSize]int
	bitLen int
}

// New builds a codec from the byte frequencies of data. It never fails:
// an empty buffer yields a degenerate codec with no tree, no codes and
// BitLength 0, whose Encode and Decode accept only empty input.
//
// Equal-frequency ties resolve by insertion order (leaves in ascending
// symbol value, merged subtrees in creation order), so two codecs built
// from the same buffer assign identical codes.
func New(data []byte) *Codec {
	c := &Codec{freq: countFrequencies(data)}
	c.root = buildTree(&c.freq)
	c.bitLen = deriveCodes(c.root, &c.codes)
	return c
}

// BitLength returns the total number of bits Encode produces for the
// exact buffer the codec was built from.
func (c *Codec) BitLength() int { return c.bitLen }

// Frequency returns how many times b occurred in the build buffer.
func (c *Codec) Frequency(b byte) int { return c.freq[b] }

// Code returns the bit string assigned to b, one '0' or '1' per bit, and
// whether b has a code at all.
func (c *Codec) Code(b byte) (string, bool) {
	cd := c.codes[b]
	if cd == nil {
		return "", false
	}
	return cd.String(), true
}

// Encode concatenates the code of every byte of data, in input order,
// into a packed bit stream. Every byte of data must have occurred in the
// build buffer; a foreign byte fails with ErrUnknownSymbol.
func (c *Codec) Encode(data []byte) (*bitstream.Stream, error) {
	b := bitstream.NewBuilder()
	for _, sym := range data {
		cd := c.codes[sym]
		if cd == nil {
			return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownSymbol, sym)
		}
		for i := 0; i < cd.length; i++ {
			if err := b.WriteBool(cd.bit(i)); err != nil {
				return nil, err
			}
		}
	}
	return b.Stream()
}

// Decode walks the tree once per stream bit, going left on 0 and right
// on 1, emitting a symbol and restarting at the root each time a leaf is
// reached. After the last bit the walk must be back at the root exactly;
// a walk left mid-code fails with ErrTruncatedStream.
func (c *Codec) Decode(s *bitstream.Stream) ([]byte, error) {
	if s.Len() == 0 {
		return []byte{}, nil
	}
	if c.root == nil {
		return nil, ErrInvalidInput
	}

	// A single-leaf tree records no branching decisions: every bit is
	// one occurrence of the only symbol.
	if c.root.leaf() {
		out := make([]byte, s.Len())
		for i := range out {
			out[i] = c.root.symbol
		}
		return out, nil
	}

	out := make([]byte, 0, s.Len()/2)
	r := s.Reader()
	cur := c.root
	for {
		bit, err := r.ReadBool()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if bit {
			cur = cur.right
		} else {
			cur = cur.left
		}
		if cur == nil {
			return nil, ErrCorruptTree
		}
		if cur.leaf() {
			out = append(out, cur.symbol)
			cur = c.root
		}
	}
	if cur != c.root {
		return nil, ErrTruncatedStream
	}
	return out, nil
}
