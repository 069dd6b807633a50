package storage

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is reported whenever a read or write width exceeds what the cell can hold.
var ErrOutOfRange = errors.New("out of range")

// RangeError carries the widths involved in a rejected access.
//
// It matches ErrOutOfRange through errors.Is.
type RangeError struct {
	Op     string
	Offset int
	Length int
	Size   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %v: offset %d length %d, cell size %d", e.Op, ErrOutOfRange, e.Offset, e.Length, e.Size)
}

func (e *RangeError) Is(target error) bool { return target == ErrOutOfRange }

func rangeErr(op string, offset, length, size int) error {
	return &RangeError{Op: op, Offset: offset, Length: length, Size: size}
}
