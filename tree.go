package huffman

import "container/heap"

// alphabetSize is the number of distinct symbol values. Symbols are
// unsigned bytes, so a symbol is its own index into frequency and code
// tables.
const alphabetSize = 256

// node is a Huffman tree node. A leaf carries a symbol; an internal node
// carries two children and the sum of their frequencies.
type node struct {
	symbol      byte
	freq        int
	seq         int // insertion sequence, breaks frequency ties
	left, right *node
}

func (n *node) leaf() bool { return n.left == nil && n.right == nil }

// nodeHeap orders nodes by frequency, then by insertion sequence.
// The sequence numbers are unique, so the order is total and the tree
// shape is deterministic for a given input.
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) {
	*h = append(*h, x.(*node))
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

func countFrequencies(data []byte) [alphabetSize]int {
	var freq [alphabetSize]int
	for _, b := range data {
		freq[b]++
	}
	return freq
}

// buildTree repeatedly merges the two lowest-frequency nodes until a
// single root remains. Symbols with zero frequency never enter the heap
// and never become leaves. Returns nil for an all-zero frequency table.
//
// Leaves enter in ascending symbol order and merged nodes in creation
// order, so equal-frequency ties resolve the same way on every build.
func buildTree(freq *[alphabetSize]int) *node {
	h := make(nodeHeap, 0, alphabetSize)
	seq := 0
	for sym := 0; sym < alphabetSize; sym++ {
		if freq[sym] == 0 {
			continue
		}
		h = append(h, &node{symbol: byte(sym), freq: freq[sym], seq: seq})
		seq++
	}
	if len(h) == 0 {
		return nil
	}
	heap.Init(&h)

	for h.Len() > 1 {
		left := heap.Pop(&h).(*node)
		right := heap.Pop(&h).(*node)
		heap.Push(&h, &node{
			freq:  left.freq + right.freq,
			seq:   seq,
			left:  left,
			right: right,
		})
		seq++
	}
	return heap.Pop(&h).(*node)
}
