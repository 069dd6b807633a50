package codec

import "encoding/binary"

// All multi-byte values cross the native-call boundary most significant byte first.
var order = binary.BigEndian

// WriteInt8 writes an int8 value to the buffer.
func WriteInt8(buffer []byte, pos int, v int8) int {
	buffer[pos] = byte(v)
	return pos + 1
}

// WriteInt16 writes an int16 value to the buffer.
func WriteInt16(buffer []byte, pos int, v int16) int {
	order.PutUint16(buffer[pos:], uint16(v))
	return pos + 2
}

// WriteInt32 writes an int32 value to the buffer.
func WriteInt32(buffer []byte, pos int, v int32) int {
	order.PutUint32(buffer[pos:], uint32(v))
	return pos + 4
}

// ReadInt8 reads an int8 value from the buffer.
func ReadInt8(buffer []byte, pos int) int8 {
	return int8(buffer[pos])
}

// ReadInt16 reads an int16 value from the buffer.
func ReadInt16(buffer []byte, pos int) int16 {
	return int16(order.Uint16(buffer[pos:]))
}

// ReadInt32 reads an int32 value from the buffer.
func ReadInt32(buffer []byte, pos int) int32 {
	return int32(order.Uint32(buffer[pos:]))
}
