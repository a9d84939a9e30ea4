package decode

import "math"

// float16to32 widens an IEEE 754 binary16 value to float32. Subnormals flush
// to signed zero; NaN payloads are preserved.
func float16to32(h uint16) float32 {
	sign := uint32(h>>15) & 0x1
	exp := uint32(h>>10) & 0x1f
	mant := uint32(h) & 0x3ff

	var bits uint32
	switch exp {
	case 0:
		bits = sign << 31
	case 0x1f:
		bits = sign<<31 | 0x7f800000
		if mant != 0 {
			bits |= mant << 13
		}
	default:
		bits = sign<<31 | (exp+127-15)<<23 | mant<<13
	}
	return math.Float32frombits(bits)
}
