package schema

import (
	"encoding/binary"
	"strings"
)

/*
Declarative schema model for binary record layouts. A schema is an ordered
list of named fields, each either a bare primitive, a length-qualified field
(opaque byte string, optional scalar, or list of sub-records, with the length
fixed at definition time or taken from a previously-decoded sibling), or a
nested record carrying its own byte-order profile.

The tree is explicit data built once by the caller - the decoder dispatches on
kind tags, never on reflection.
*/

////////////////////////////////////////////////////////////////////////////////

// PrimitiveType enumerates the scalar wire types the decoder understands.
type PrimitiveType int

const (
	PAD PrimitiveType = iota + 1
	BOOL
	CHAR
	BYTES
	U8
	U16
	U32
	U64
	I8
	I16
	I32
	I64
	F16
	F32
	F64
)

// String returns the name of the primitive type.
func (p PrimitiveType) String() string {
	switch p {
	case PAD:
		return "pad"
	case BOOL:
		return "bool"
	case CHAR:
		return "char"
	case BYTES:
		return "bytes"
	case U8:
		return "uint8"
	case U16:
		return "uint16"
	case U32:
		return "uint32"
	case U64:
		return "uint64"
	case I8:
		return "int8"
	case I16:
		return "int16"
	case I32:
		return "int32"
	case I64:
		return "int64"
	case F16:
		return "float16"
	case F32:
		return "float32"
	case F64:
		return "float64"
	default:
		return "unknown"
	}
}

// Width returns the per-element byte width of the primitive. PAD and BYTES
// scale with their repeat count; the value here is the one-element width.
func (p PrimitiveType) Width() int {
	switch p {
	case PAD, BOOL, CHAR, BYTES, U8, I8:
		return 1
	case U16, I16, F16:
		return 2
	case U32, I32, F32:
		return 4
	case U64, I64, F64:
		return 8
	default:
		return 0
	}
}

// ByteOrder is a named byte-order/size/alignment profile. Since the decoder
// reads discrete standard-width fields, the native-size profile degrades to
// native byte order; alignment padding is expressed with explicit PAD fields.
type ByteOrder int

const (
	// Unset inherits the enclosing record's profile.
	Unset ByteOrder = iota
	// NativeSize is the platform byte order with native sizes and alignment.
	NativeSize
	// Native is the platform byte order with standard sizes.
	Native
	// LittleEndian is little-endian byte order with standard sizes.
	LittleEndian
	// BigEndian is big-endian byte order with standard sizes.
	BigEndian
	// Network is network (big-endian) byte order with standard sizes.
	Network
)

// String returns the name of the byte-order profile.
func (o ByteOrder) String() string {
	switch o {
	case NativeSize:
		return "native_size"
	case Native:
		return "native"
	case LittleEndian:
		return "little_endian"
	case BigEndian:
		return "big_endian"
	case Network:
		return "network"
	default:
		return "unset"
	}
}

// Resolve returns the profile itself, or the fallback when unset.
func (o ByteOrder) Resolve(fallback ByteOrder) ByteOrder {
	if o == Unset {
		return fallback
	}
	return o
}

// Order maps the profile to an encoding/binary byte order.
func (o ByteOrder) Order() binary.ByteOrder {
	switch o {
	case NativeSize, Native:
		return binary.NativeEndian
	case BigEndian, Network:
		return binary.BigEndian
	default:
		return binary.LittleEndian
	}
}

// Type is a schema node.
type Type struct {
	// If it's a bare primitive...
	Primitive PrimitiveType

	// If it's length-qualified...
	Qualified   bool
	List        bool
	Length      int
	LengthField string
	Elem        *Type

	// If it's a record...
	Record    bool
	ByteOrder ByteOrder
	Fields    []Field
}

// Field is a named schema node within a record.
type Field struct {
	Name string
	Type Type
}

// Schema is the root record type decoded against a buffer.
type Schema struct {
	Name      string
	ByteOrder ByteOrder
	Fields    []Field
}

// IsPrimitive reports whether the node is a bare primitive.
func (t Type) IsPrimitive() bool {
	return !t.Qualified && !t.Record && t.Primitive > 0
}

// Root returns the schema as a record-kind Type, for recursive dispatch.
func (s *Schema) Root() Type {
	return Type{Record: true, ByteOrder: s.ByteOrder, Fields: s.Fields}
}

// Internal reports whether a field name marks metadata excluded from decoding.
func Internal(name string) bool {
	return strings.HasPrefix(name, "_")
}

// MinSize returns the minimum number of bytes a successful decode of the
// schema consumes: the sum of fixed-width field costs, counting every
// sibling-resolved length as zero since it may decode to zero.
func (s *Schema) MinSize() int {
	return minSize(s.Root())
}

func minSize(t Type) int {
	if t.IsPrimitive() {
		return t.Primitive.Width()
	}
	if t.Qualified {
		if t.LengthField != "" || t.Length == 0 {
			return 0
		}
		if t.Elem.IsPrimitive() && t.Elem.Primitive == BYTES {
			return t.Length
		}
		return t.Length * minSize(*t.Elem)
	}
	size := 0
	for _, f := range t.Fields {
		if Internal(f.Name) {
			continue
		}
		size += minSize(f.Type)
	}
	return size
}
