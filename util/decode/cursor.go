package decode

import (
	"math"

	"github.com/wkalt/easytau/util/schema"
)

/*
Cursor over a fully-buffered byte sequence. The cursor does not copy or
mutate the buffer; it owns only the read offset. One cursor serves one decode
operation - concurrent decodes each take their own cursor over their own
buffer.
*/

////////////////////////////////////////////////////////////////////////////////

// Cursor is a byte buffer plus a read position.
type Cursor struct {
	buf    []byte
	offset int
}

// NewCursor returns a cursor over buf positioned at offset 0.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Offset returns the current read position.
func (c *Cursor) Offset() int {
	return c.offset
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.offset
}

// Read consumes the descriptor's bytes from the buffer, advances the offset,
// and returns the decoded value. PAD descriptors consume their width and
// return nil. Reading past the end of the buffer is a ShortReadError and
// leaves the offset unchanged.
func (c *Cursor) Read(d Descriptor) (any, error) {
	size := d.Size()
	if c.Remaining() < size {
		return nil, NewShortReadError(d.Primitive.String())
	}
	data := c.buf[c.offset : c.offset+size]
	c.offset += size

	switch d.Primitive {
	case schema.PAD:
		return nil, nil
	case schema.BOOL:
		return data[0] != 0, nil
	case schema.CHAR:
		return data[0], nil
	case schema.BYTES:
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil
	case schema.U8:
		return data[0], nil
	case schema.U16:
		return d.Order.Uint16(data), nil
	case schema.U32:
		return d.Order.Uint32(data), nil
	case schema.U64:
		return d.Order.Uint64(data), nil
	case schema.I8:
		return int8(data[0]), nil
	case schema.I16:
		return int16(d.Order.Uint16(data)), nil
	case schema.I32:
		return int32(d.Order.Uint32(data)), nil
	case schema.I64:
		return int64(d.Order.Uint64(data)), nil
	case schema.F16:
		return float16to32(d.Order.Uint16(data)), nil
	case schema.F32:
		return math.Float32frombits(d.Order.Uint32(data)), nil
	case schema.F64:
		return math.Float64frombits(d.Order.Uint64(data)), nil
	default:
		c.offset -= size
		return nil, schemaErrorf("", "unknown primitive type %d", int(d.Primitive))
	}
}
