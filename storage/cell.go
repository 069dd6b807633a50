package storage

// Cell is the backing storage of one COBOL data item as seen from the native side.
//
// A Cell is borrowed for a single conversion; implementations are not expected
// to lock. Callers serialize access to the same cell.
type Cell interface {
	// Size is the current logical size in bytes.
	Size() int
	// ReadBytes returns a copy of length bytes starting at offset.
	// It never mutates the cell, even on failure.
	ReadBytes(offset, length int) ([]byte, error)
	// WriteBytes replaces the whole content with b. A cell that cannot hold
	// len(b) bytes must reject the write before touching its content.
	WriteBytes(b []byte) error
}

const unbounded = -1

// DataStorage is a slice-backed Cell.
type DataStorage struct {
	data     []byte
	capacity int
}

var _ Cell = (*DataStorage)(nil)

// New returns a zero-filled cell of the given size that accepts writes of any length.
func New(size int) *DataStorage {
	if size < 0 {
		size = 0
	}
	return &DataStorage{data: make([]byte, size), capacity: unbounded}
}

// FromBytes returns an unbounded cell holding a copy of b.
func FromBytes(b []byte) *DataStorage {
	data := make([]byte, len(b))
	copy(data, b)
	return &DataStorage{data: data, capacity: unbounded}
}

// NewBounded returns an empty cell that rejects writes longer than capacity.
func NewBounded(capacity int) *DataStorage {
	if capacity < 0 {
		capacity = 0
	}
	return &DataStorage{data: make([]byte, 0, capacity), capacity: capacity}
}

// Size returns the current content length.
func (s *DataStorage) Size() int { return len(s.data) }

// Capacity returns the write limit, or -1 when the cell is unbounded.
func (s *DataStorage) Capacity() int { return s.capacity }

// Bytes returns a copy of the current content.
func (s *DataStorage) Bytes() []byte {
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out
}

// ReadBytes returns a copy of length bytes at offset, or a *RangeError.
func (s *DataStorage) ReadBytes(offset, length int) ([]byte, error) {
	if offset < 0 || length < 0 || offset > len(s.data) || length > len(s.data)-offset {
		return nil, rangeErr("read", offset, length, len(s.data))
	}
	out := make([]byte, length)
	copy(out, s.data[offset:offset+length])
	return out, nil
}

// WriteBytes replaces the content with a copy of b. A bounded cell rejects
// len(b) > Capacity() without changing its content.
func (s *DataStorage) WriteBytes(b []byte) error {
	if s.capacity != unbounded && len(b) > s.capacity {
		return rangeErr("write", 0, len(b), s.capacity)
	}
	if cap(s.data) >= len(b) {
		s.data = s.data[:len(b)]
	} else {
		s.data = make([]byte, len(b))
	}
	copy(s.data, b)
	return nil
}
