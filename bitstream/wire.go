package bitstream

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
)

const (
	wireMagic   = "HFBS"
	wireVersion = uint16(1)

	maxWirePayloadBytes = 1 << 30 // 1 GiB
)

// Wire format (version 1):
//
//	magic    = "HFBS"
//	version  = uint16 little-endian
//	bitLen   = uint64 little-endian
//	dataLen  = uint32 little-endian, must equal ceil(bitLen/8)
//	payload  = dataLen bytes, bits packed MSB-first
//	checksum = uint64 little-endian, xxhash64 of payload
//
// The format carries only the encoded bits; the reader is expected to
// hold a codec built from the same frequency statistics.

func writeBytes(w io.Writer, b []byte) (int64, error) {
	n, err := w.Write(b)
	if err != nil {
		return int64(n), err
	}
	if n != len(b) {
		return int64(n), io.ErrShortWrite
	}
	return int64(n), nil
}

// WriteTo serializes the stream.
func (s *Stream) WriteTo(w io.Writer) (int64, error) {
	if len(s.data) > maxWirePayloadBytes {
		return 0, fmt.Errorf("bitstream: payload too large: %d bytes", len(s.data))
	}

	var total int64
	n, err := writeBytes(w, []byte(wireMagic))
	total += n
	if err != nil {
		return total, err
	}

	if err := binary.Write(w, binary.LittleEndian, wireVersion); err != nil {
		return total, err
	}
	total += 2

	if err := binary.Write(w, binary.LittleEndian, uint64(s.bitLen)); err != nil {
		return total, err
	}
	total += 8

	if err := binary.Write(w, binary.LittleEndian, uint32(len(s.data))); err != nil {
		return total, err
	}
	total += 4

	n, err = writeBytes(w, s.data)
	total += n
	if err != nil {
		return total, err
	}

	if err := binary.Write(w, binary.LittleEndian, xxhash.Sum64(s.data)); err != nil {
		return total, err
	}
	total += 8

	return total, nil
}

// ReadFrom deserializes a stream, replacing the receiver's contents.
func (s *Stream) ReadFrom(r io.Reader) (int64, error) {
	var total int64

	magic := make([]byte, len(wireMagic))
	n, err := io.ReadFull(r, magic)
	total += int64(n)
	if err != nil {
		return total, err
	}
	if string(magic) != wireMagic {
		return total, fmt.Errorf("bitstream: bad magic %q", magic)
	}

	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return total, err
	}
	total += 2
	if version != wireVersion {
		return total, fmt.Errorf("bitstream: unsupported version %d", version)
	}

	var bitLen uint64
	if err := binary.Read(r, binary.LittleEndian, &bitLen); err != nil {
		return total, err
	}
	total += 8

	var dataLen uint32
	if err := binary.Read(r, binary.LittleEndian, &dataLen); err != nil {
		return total, err
	}
	total += 4
	if dataLen > uint32(maxWirePayloadBytes) {
		return total, fmt.Errorf("bitstream: payload too large: %d bytes", dataLen)
	}
	// ceil(bitLen/8) must equal dataLen, checked without bitLen+7 so a
	// header near 2^64 cannot wrap past the comparison. dataLen is capped
	// above, so dataLen*8 cannot overflow.
	if bitLen > uint64(dataLen)*8 || uint64(dataLen)*8-bitLen >= 8 {
		return total, fmt.Errorf("bitstream: bit length %d does not fit %d payload bytes", bitLen, dataLen)
	}

	payload := make([]byte, dataLen)
	n, err = io.ReadFull(r, payload)
	total += int64(n)
	if err != nil {
		return total, err
	}

	var sum uint64
	if err := binary.Read(r, binary.LittleEndian, &sum); err != nil {
		return total, err
	}
	total += 8
	if got := xxhash.Sum64(payload); got != sum {
		return total, fmt.Errorf("bitstream: checksum mismatch: got %016x, want %016x", got, sum)
	}

	s.data = payload
	s.bitLen = int(bitLen)
	return total, nil
}
