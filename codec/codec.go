// Package codec converts between storage cells and fixed-width native scalars.
//
// Every conversion starts at offset 0 of the cell and touches exactly the
// width of the native kind: 1, 2 or 4 bytes for the integers and the
// caller-supplied length for raw bytes. Integers are two's-complement,
// big-endian, regardless of the host byte order.
//
// Extraction never mutates the cell. Injection replaces the cell content
// through Cell.WriteBytes, which rejects oversized writes before touching
// anything, so a failed call leaves the cell as it was.
package codec

import (
	"github.com/quickwritereader/CobolGlue/storage"
)

// ErrOutOfRange is the only failure the codec reports. Match with errors.Is.
var ErrOutOfRange = storage.ErrOutOfRange

// readPrefix reads the first n bytes of c.
func readPrefix(op string, c storage.Cell, n int) ([]byte, error) {
	if size := c.Size(); n < 0 || n > size {
		return nil, &storage.RangeError{Op: op, Offset: 0, Length: n, Size: size}
	}
	if n == 0 {
		return []byte{}, nil
	}
	return c.ReadBytes(0, n)
}

// ExtractBytes returns a copy of the first length bytes of the cell.
// A zero length always succeeds with an empty slice.
func ExtractBytes(c storage.Cell, length int) ([]byte, error) {
	return readPrefix("extract bytes", c, length)
}

// ExtractInt8 returns byte 0 reinterpreted as signed.
func ExtractInt8(c storage.Cell) (int8, error) {
	b, err := readPrefix("extract int8", c, 1)
	if err != nil {
		return 0, err
	}
	return ReadInt8(b, 0), nil
}

// ExtractInt16 decodes bytes 0..1 as a big-endian int16.
func ExtractInt16(c storage.Cell) (int16, error) {
	b, err := readPrefix("extract int16", c, 2)
	if err != nil {
		return 0, err
	}
	return ReadInt16(b, 0), nil
}

// ExtractInt32 decodes bytes 0..3 as a big-endian int32.
func ExtractInt32(c storage.Cell) (int32, error) {
	b, err := readPrefix("extract int32", c, 4)
	if err != nil {
		return 0, err
	}
	return ReadInt32(b, 0), nil
}

// InjectBytes replaces the whole cell content with b. The cell size becomes len(b).
func InjectBytes(c storage.Cell, b []byte) error {
	return c.WriteBytes(b)
}

// InjectInt8 replaces the cell content with the single byte of v.
func InjectInt8(c storage.Cell, v int8) error {
	var buf [1]byte
	WriteInt8(buf[:], 0, v)
	return InjectBytes(c, buf[:])
}

// InjectInt16 replaces the cell content with v as 2 big-endian bytes.
func InjectInt16(c storage.Cell, v int16) error {
	var buf [2]byte
	WriteInt16(buf[:], 0, v)
	return InjectBytes(c, buf[:])
}

// InjectInt32 replaces the cell content with v as 4 big-endian bytes.
func InjectInt32(c storage.Cell, v int32) error {
	var buf [4]byte
	WriteInt32(buf[:], 0, v)
	return InjectBytes(c, buf[:])
}
