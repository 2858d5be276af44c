package huffman

// code is one symbol's root-to-leaf path, packed MSB-first.
type code struct {
	bits   []byte
	length int
}

// bit returns bit i of the code: false = left, true = right.
func (c *code) bit(i int) bool {
	return c.bits[i>>3]&(0x80>>uint(i&7)) != 0
}

// String renders the code as "0"/"1" characters.
func (c *code) String() string {
	buf := make([]byte, c.length)
	for i := range buf {
		if c.bit(i) {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// deriveCodes walks the tree depth-first, assigning every leaf the path
// taken to reach it (0 = left, 1 = right), and returns the total
// frequency-weighted code length. A root that is itself a leaf gets the
// single-bit code 0 by convention, since a one-node tree has no branches
// to record.
func deriveCodes(root *node, table *[alphabetSize]*code) int {
	if root == nil {
		return 0
	}
	if root.leaf() {
		table[root.symbol] = &code{bits: []byte{0x00}, length: 1}
		return root.freq
	}

	total := 0
	var path []byte // one 0/1 value per element, packed at each leaf
	var walk func(n *node)
	walk = func(n *node) {
		if n.leaf() {
			table[n.symbol] = packCode(path)
			total += n.freq * len(path)
			return
		}
		path = append(path, 0)
		walk(n.left)
		path[len(path)-1] = 1
		walk(n.right)
		path = path[:len(path)-1]
	}
	walk(root)
	return total
}

func packCode(path []byte) *code {
	c := &code{
		bits:   make([]byte, (len(path)+7)/8),
		length: len(path),
	}
	for i, b := range path {
		if b != 0 {
			c.bits[i>>3] |= 0x80 >> uint(i&7)
		}
	}
	return c
}
