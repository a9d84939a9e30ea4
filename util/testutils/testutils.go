package testutils

import (
	"encoding/binary"
	"math"
)

/*
Test utilities for assembling binary buffers. The *b helpers encode
little-endian, matching the container format; big-endian variants carry a BE
suffix.
*/

////////////////////////////////////////////////////////////////////////////////

// Flatten concatenates slices of the same type.
func Flatten[T any](slices ...[]T) []T {
	var result []T
	for _, s := range slices {
		result = append(result, s...)
	}
	return result
}

// PadB returns n zero bytes.
func PadB(n int) []byte {
	return make([]byte, n)
}

// Boolb returns a byte slice containing a single bool value.
func Boolb(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// U8b returns a byte slice containing a single uint8 value.
func U8b(v uint8) []byte {
	return []byte{v}
}

// I8b returns a byte slice containing a single int8 value.
func I8b(v int8) []byte {
	return []byte{uint8(v)}
}

// I16b returns a byte slice containing a single int16 value.
func I16b(v int16) []byte {
	return U16b(uint16(v))
}

// U16b returns a byte slice containing a single uint16 value.
func U16b(v uint16) []byte {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, v)
	return buf
}

// U32b returns a byte slice containing a single uint32 value.
func U32b(v uint32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, v)
	return buf
}

func U64b(v uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, v)
	return buf
}

func I32b(v int32) []byte {
	return U32b(uint32(v))
}

func I64b(v int64) []byte {
	return U64b(uint64(v))
}

func F32b(v float32) []byte {
	return U32b(math.Float32bits(v))
}

func F64b(v float64) []byte {
	return U64b(math.Float64bits(v))
}

// U32be returns a byte slice containing a single big-endian uint32 value.
func U32be(v uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, v)
	return buf
}

// CStr returns s as a NUL-padded byte string of the given total length.
func CStr(s string, length int) []byte {
	buf := make([]byte, length)
	copy(buf, s)
	return buf
}
