package schema_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wkalt/easytau/util/schema"
)

func TestPrimitiveWidths(t *testing.T) {
	cases := []struct {
		assertion string
		primitive schema.PrimitiveType
		expected  int
	}{
		{"pad", schema.PAD, 1},
		{"bool", schema.BOOL, 1},
		{"char", schema.CHAR, 1},
		{"bytes", schema.BYTES, 1},
		{"uint8", schema.U8, 1},
		{"uint16", schema.U16, 2},
		{"uint32", schema.U32, 4},
		{"uint64", schema.U64, 8},
		{"int8", schema.I8, 1},
		{"int16", schema.I16, 2},
		{"int32", schema.I32, 4},
		{"int64", schema.I64, 8},
		{"float16", schema.F16, 2},
		{"float32", schema.F32, 4},
		{"float64", schema.F64, 8},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			require.Equal(t, c.expected, c.primitive.Width())
		})
	}
	require.Equal(t, 0, schema.PrimitiveType(0).Width())
}

func TestByteOrderResolution(t *testing.T) {
	require.Equal(t, schema.BigEndian, schema.Unset.Resolve(schema.BigEndian))
	require.Equal(t, schema.LittleEndian, schema.LittleEndian.Resolve(schema.BigEndian))

	require.Equal(t, binary.ByteOrder(binary.LittleEndian), schema.LittleEndian.Order())
	require.Equal(t, binary.ByteOrder(binary.BigEndian), schema.BigEndian.Order())
	require.Equal(t, binary.ByteOrder(binary.BigEndian), schema.Network.Order())
	require.Equal(t, binary.ByteOrder(binary.NativeEndian), schema.Native.Order())
	require.Equal(t, binary.ByteOrder(binary.NativeEndian), schema.NativeSize.Order())
}

func TestInternal(t *testing.T) {
	require.True(t, schema.Internal("_doc"))
	require.False(t, schema.Internal("doc"))
}

func TestMinSize(t *testing.T) {
	sub := schema.Type{
		Record: true,
		Fields: []schema.Field{
			{Name: "a", Type: schema.Type{Primitive: schema.I32}},
			{Name: "b", Type: schema.Type{Primitive: schema.I32}},
		},
	}
	s := &schema.Schema{
		Name:      "container",
		ByteOrder: schema.LittleEndian,
		Fields: []schema.Field{
			{Name: "_doc", Type: schema.Type{Primitive: schema.U64}},
			{Name: "magic", Type: schema.Type{
				Qualified: true,
				Length:    16,
				Elem:      &schema.Type{Primitive: schema.BYTES},
			}},
			{Name: "version", Type: schema.Type{Primitive: schema.I32}},
			{Name: "count", Type: schema.Type{Primitive: schema.I32}},
			{Name: "items", Type: schema.Type{
				Qualified:   true,
				List:        true,
				LengthField: "count",
				Elem:        &sub,
			}},
			{Name: "pair", Type: schema.Type{
				Qualified: true,
				Length:    2,
				Elem:      &sub,
			}},
		},
	}
	// 16 magic + 4 version + 4 count + 0 items + 2*8 pair; _doc is metadata.
	require.Equal(t, 40, s.MinSize())
}
