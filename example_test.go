package huffman_test

import (
	"bytes"
	"fmt"

	"github.com/PhashaD/huffman"
	"github.com/PhashaD/huffman/bitstream"
)

// ExampleCodec demonstrates the basic build/encode/decode round trip.
func ExampleCodec() {
	data := []byte("AAABBCF")

	// Step 1: Build a codec from the buffer's byte frequencies
	codec := huffman.New(data)

	// Step 2: Encode the same buffer into a packed bit stream
	encoded, err := codec.Encode(data)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d bytes -> %d bits (%d bytes)\n", len(data), encoded.Len(), encoded.Size())

	// Step 3: Decode back to the original bytes
	decoded, err := codec.Decode(encoded)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Round trip: %v\n", bytes.Equal(decoded, data))

	// Output:
	// 7 bytes -> 13 bits (2 bytes)
	// Round trip: true
}

// ExampleCodec_serialization demonstrates carrying an encoded stream over
// a byte boundary and decoding it on the other side.
func ExampleCodec_serialization() {
	data := []byte("AAABBCF")
	codec := huffman.New(data)

	encoded, err := codec.Encode(data)
	if err != nil {
		panic(err)
	}

	// Serialize the stream; the exact bit count travels with the bytes.
	var buf bytes.Buffer
	if _, err := encoded.WriteTo(&buf); err != nil {
		panic(err)
	}
	fmt.Printf("Serialized stream: %d bytes\n", buf.Len())

	// Later, load the stream and decode it with an identically built codec.
	loaded := &bitstream.Stream{}
	if _, err := loaded.ReadFrom(&buf); err != nil {
		panic(err)
	}
	decoded, err := codec.Decode(loaded)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Decoded: %s\n", decoded)

	// Output:
	// Serialized stream: 28 bytes
	// Decoded: AAABBCF
}
