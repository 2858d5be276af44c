// Package bitstream provides a bit sequence packed MSB-first into bytes
// that carries its exact bit count, so trailing padding in the final
// partial byte is never mistaken for data.
package bitstream

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// Stream is an immutable packed bit sequence. Bits beyond Len in the
// final byte are zero padding.
type Stream struct {
	data   []byte
	bitLen int
}

// New wraps already-packed bytes as a stream of exactly bitLen bits.
// data must hold at least ceil(bitLen/8) bytes; extra bytes are dropped.
// The stream aliases data rather than copying it, so the caller must not
// modify the slice afterwards.
func New(data []byte, bitLen int) (*Stream, error) {
	if bitLen < 0 {
		return nil, fmt.Errorf("bitstream: negative bit length %d", bitLen)
	}
	need := (bitLen + 7) / 8
	if need > len(data) {
		return nil, fmt.Errorf("bitstream: bit length %d needs %d bytes, have %d", bitLen, need, len(data))
	}
	return &Stream{data: data[:need], bitLen: bitLen}, nil
}

// Len returns the number of bits in the stream.
func (s *Stream) Len() int { return s.bitLen }

// Size returns the number of bytes the packed bits occupy.
func (s *Stream) Size() int { return (s.bitLen + 7) / 8 }

// Bytes returns the packed representation. The caller must not modify
// the returned slice.
func (s *Stream) Bytes() []byte { return s.data }

// Builder accumulates bits and produces a Stream.
type Builder struct {
	buf bytes.Buffer
	w   *bitio.Writer
	n   int
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	b := &Builder{}
	b.w = bitio.NewWriter(&b.buf)
	return b
}

// WriteBool appends one bit.
func (b *Builder) WriteBool(bit bool) error {
	if err := b.w.WriteBool(bit); err != nil {
		return err
	}
	b.n++
	return nil
}

// Len returns the number of bits written so far.
func (b *Builder) Len() int { return b.n }

// Stream flushes the final partial byte, padding it with zeros, and
// returns the finished stream. The builder must not be reused afterwards.
func (b *Builder) Stream() (*Stream, error) {
	if err := b.w.Close(); err != nil {
		return nil, err
	}
	return &Stream{data: b.buf.Bytes(), bitLen: b.n}, nil
}

// Reader yields the bits of a stream in order and refuses to read into
// the padding.
type Reader struct {
	r         *bitio.Reader
	remaining int
}

// Reader returns a sequential bit reader over the stream.
func (s *Stream) Reader() *Reader {
	return &Reader{
		r:         bitio.NewReader(bytes.NewReader(s.data)),
		remaining: s.bitLen,
	}
}

// ReadBool returns the next bit, or io.EOF once all Len bits have been
// consumed.
func (r *Reader) ReadBool() (bool, error) {
	if r.remaining == 0 {
		return false, io.EOF
	}
	bit, err := r.r.ReadBool()
	if err != nil {
		return false, err
	}
	r.remaining--
	return bit, nil
}

// Remaining returns how many bits are left to read.
func (r *Reader) Remaining() int { return r.remaining }
