package huffman

import (
	"strings"
	"testing"

	iczahuffman "github.com/icza/huffman"
)

// The frequency-weighted total code length of a Huffman tree is the same
// for every valid tie-break, so BitLength must agree with the tree an
// independent implementation builds from the same counts.
func TestBitLengthMatchesReference(t *testing.T) {
	buffers := [][]byte{
		[]byte("AAABBCF"),
		[]byte("the quick brown fox jumps over the lazy dog"),
		[]byte("aabbccddeeff"),
		[]byte(strings.Repeat("abcabcab", 100)),
	}

	for _, data := range buffers {
		codec := New(data)

		var leaves []*iczahuffman.Node
		for sym := 0; sym < alphabetSize; sym++ {
			if n := codec.Frequency(byte(sym)); n > 0 {
				leaves = append(leaves, &iczahuffman.Node{
					Value: iczahuffman.ValueType(sym),
					Count: n,
				})
			}
		}
		if len(leaves) < 2 {
			t.Fatalf("%q: want at least 2 distinct symbols", data)
		}

		root := iczahuffman.Build(leaves)
		if want := weightedLength(root, 0); codec.BitLength() != want {
			t.Errorf("%q: BitLength %d, reference tree says %d", data, codec.BitLength(), want)
		}
	}
}

func weightedLength(n *iczahuffman.Node, depth int) int {
	if n.Left == nil && n.Right == nil {
		return n.Count * depth
	}
	return weightedLength(n.Left, depth+1) + weightedLength(n.Right, depth+1)
}
