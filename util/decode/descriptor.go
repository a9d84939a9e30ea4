package decode

import (
	"encoding/binary"

	"github.com/wkalt/easytau/util/schema"
)

/*
Descriptor construction. A Descriptor is the low-level read recipe handed to
the cursor: primitive kind, resolved byte order, and repeat count. For BYTES
the count is a byte length read as one opaque value; for PAD it is a skip
width. Every other primitive is a single scalar and the count must be 1 -
runs of numeric primitives are expressed at the schema level, not here.
*/

////////////////////////////////////////////////////////////////////////////////

// Descriptor tells the cursor exactly how many bytes to read and how to
// interpret them.
type Descriptor struct {
	Primitive schema.PrimitiveType
	Order     binary.ByteOrder
	Count     int
}

// NewDescriptor builds a descriptor for the primitive under the given
// byte-order profile. The mapping from primitive to recipe is total: an
// unrecognized primitive or an unsupported repeat count is a SchemaError,
// never a silent miscoding.
func NewDescriptor(p schema.PrimitiveType, order schema.ByteOrder, count int) (Descriptor, error) {
	switch p {
	case schema.PAD, schema.BYTES:
		if count < 0 {
			return Descriptor{}, schemaErrorf("", "%s length %d is negative", p, count)
		}
	case schema.BOOL, schema.CHAR,
		schema.U8, schema.U16, schema.U32, schema.U64,
		schema.I8, schema.I16, schema.I32, schema.I64,
		schema.F16, schema.F32, schema.F64:
		if count != 1 {
			return Descriptor{}, schemaErrorf(
				"", "%s does not support repeat count %d; only byte strings decode in bulk", p, count,
			)
		}
	default:
		return Descriptor{}, schemaErrorf("", "unknown primitive type %d", int(p))
	}
	return Descriptor{Primitive: p, Order: order.Order(), Count: count}, nil
}

// Size returns the exact number of bytes the descriptor consumes.
func (d Descriptor) Size() int {
	switch d.Primitive {
	case schema.PAD, schema.BYTES:
		return d.Count
	default:
		return d.Primitive.Width()
	}
}
