package packable

import (
	"fmt"

	"github.com/quickwritereader/CobolGlue/codec"
	"github.com/quickwritereader/CobolGlue/storage"
	"github.com/quickwritereader/CobolGlue/typetags"
)

// Native is a scalar value on the native side of a call.
type Native interface {
	Kind() typetags.Kind
	Width() int
	InjectInto(c storage.Cell) error
}

// Int8 implements the Native interface for int8.
type Int8 int8

func (v Int8) Kind() typetags.Kind { return typetags.KindInt8 }
func (v Int8) Width() int          { return 1 }
func (v Int8) InjectInto(c storage.Cell) error {
	return codec.InjectInt8(c, int8(v))
}

// Int16 implements the Native interface for int16.
type Int16 int16

func (v Int16) Kind() typetags.Kind { return typetags.KindInt16 }
func (v Int16) Width() int          { return 2 }
func (v Int16) InjectInto(c storage.Cell) error {
	return codec.InjectInt16(c, int16(v))
}

// Int32 implements the Native interface for int32.
type Int32 int32

func (v Int32) Kind() typetags.Kind { return typetags.KindInt32 }
func (v Int32) Width() int          { return 4 }
func (v Int32) InjectInto(c storage.Cell) error {
	return codec.InjectInt32(c, int32(v))
}

// Bytes implements the Native interface for a raw byte sequence.
// It holds a reference so a routine can replace the contents in place
// and have them written back to the cell afterwards.
type Bytes struct {
	ref *[]byte
}

func NewBytes(b []byte) Bytes {
	return Bytes{ref: &b}
}

func (v Bytes) Kind() typetags.Kind { return typetags.KindBytes }
func (v Bytes) Width() int          { return len(v.Value()) }
func (v Bytes) InjectInto(c storage.Cell) error {
	return codec.InjectBytes(c, v.Value())
}

// Value returns the referenced slice; nil for a zero Bytes.
func (v Bytes) Value() []byte {
	if v.ref == nil {
		return nil
	}
	return *v.ref
}

// Set replaces the referenced slice. It panics on a zero Bytes.
func (v Bytes) Set(b []byte) {
	*v.ref = b
}

// Extract reads a value of the given kind from c. length is only used for KindBytes.
func Extract(c storage.Cell, kind typetags.Kind, length int) (Native, error) {
	var (
		v   Native
		err error
	)
	switch kind {
	case typetags.KindInt8:
		var i int8
		i, err = codec.ExtractInt8(c)
		v = Int8(i)
	case typetags.KindInt16:
		var i int16
		i, err = codec.ExtractInt16(c)
		v = Int16(i)
	case typetags.KindInt32:
		var i int32
		i, err = codec.ExtractInt32(c)
		v = Int32(i)
	case typetags.KindBytes:
		var b []byte
		b, err = codec.ExtractBytes(c, length)
		v = NewBytes(b)
	default:
		return nil, fmt.Errorf("extract: unsupported kind %d", kind)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// bounded is satisfied by cells that know their write limit.
type bounded interface {
	Capacity() int
}

// InjectAll writes values[i] into cells[i]. Widths are checked first against
// every cell that exposes a non-negative Capacity() (a bounded DataStorage), so
// such a cell never causes earlier cells to be modified. Other cells are only
// checked by their own WriteBytes; if one of them rejects a value, the cells
// before it have already been written.
func InjectAll(cells []storage.Cell, values []Native) error {
	if len(cells) != len(values) {
		return fmt.Errorf("inject: %d cells for %d values", len(cells), len(values))
	}
	for i, c := range cells {
		b, ok := c.(bounded)
		if !ok || b.Capacity() < 0 {
			continue
		}
		if w := values[i].Width(); w > b.Capacity() {
			return fmt.Errorf("inject: value %d (%s): %w",
				i, values[i].Kind(), &storage.RangeError{Op: "write", Length: w, Size: b.Capacity()})
		}
	}
	for i, c := range cells {
		if err := values[i].InjectInto(c); err != nil {
			return fmt.Errorf("inject: value %d (%s): %w", i, values[i].Kind(), err)
		}
	}
	return nil
}
