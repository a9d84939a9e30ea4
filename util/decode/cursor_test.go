package decode_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wkalt/easytau/util/decode"
	"github.com/wkalt/easytau/util/schema"
	"github.com/wkalt/easytau/util/testutils"
)

func mustDescriptor(t *testing.T, p schema.PrimitiveType, order schema.ByteOrder, count int) decode.Descriptor {
	t.Helper()
	d, err := decode.NewDescriptor(p, order, count)
	require.NoError(t, err)
	return d
}

func TestCursorRead(t *testing.T) {
	t.Run("bool", func(t *testing.T) {
		cur := decode.NewCursor([]byte{1, 0})
		d := mustDescriptor(t, schema.BOOL, schema.LittleEndian, 1)

		v, err := cur.Read(d)
		require.NoError(t, err)
		require.Equal(t, true, v)

		v, err = cur.Read(d)
		require.NoError(t, err)
		require.Equal(t, false, v)

		_, err = cur.Read(d)
		require.ErrorIs(t, err, decode.NewShortReadError(""))
	})

	t.Run("uint16 little endian", func(t *testing.T) {
		cur := decode.NewCursor([]byte{0, 1})
		v, err := cur.Read(mustDescriptor(t, schema.U16, schema.LittleEndian, 1))
		require.NoError(t, err)
		require.Equal(t, uint16(256), v)
	})

	t.Run("uint16 big endian", func(t *testing.T) {
		cur := decode.NewCursor([]byte{0, 1})
		v, err := cur.Read(mustDescriptor(t, schema.U16, schema.BigEndian, 1))
		require.NoError(t, err)
		require.Equal(t, uint16(1), v)
	})

	t.Run("int32", func(t *testing.T) {
		cur := decode.NewCursor(testutils.I32b(-5))
		v, err := cur.Read(mustDescriptor(t, schema.I32, schema.LittleEndian, 1))
		require.NoError(t, err)
		require.Equal(t, int32(-5), v)
	})

	t.Run("int64", func(t *testing.T) {
		cur := decode.NewCursor(testutils.I64b(-1 << 40))
		v, err := cur.Read(mustDescriptor(t, schema.I64, schema.LittleEndian, 1))
		require.NoError(t, err)
		require.Equal(t, int64(-1<<40), v)
	})

	t.Run("float32", func(t *testing.T) {
		cur := decode.NewCursor(testutils.F32b(2.5))
		v, err := cur.Read(mustDescriptor(t, schema.F32, schema.LittleEndian, 1))
		require.NoError(t, err)
		require.Equal(t, float32(2.5), v)
	})

	t.Run("float64", func(t *testing.T) {
		cur := decode.NewCursor(testutils.F64b(-0.25))
		v, err := cur.Read(mustDescriptor(t, schema.F64, schema.LittleEndian, 1))
		require.NoError(t, err)
		require.Equal(t, -0.25, v)
	})

	t.Run("float16", func(t *testing.T) {
		cases := []struct {
			assertion string
			in        []byte
			expected  float32
		}{
			{"one", []byte{0x00, 0x3c}, 1.0},
			{"negative two", []byte{0x00, 0xc0}, -2.0},
			{"zero", []byte{0x00, 0x00}, 0.0},
			{"half", []byte{0x00, 0x38}, 0.5},
		}
		for _, c := range cases {
			t.Run(c.assertion, func(t *testing.T) {
				cur := decode.NewCursor(c.in)
				v, err := cur.Read(mustDescriptor(t, schema.F16, schema.LittleEndian, 1))
				require.NoError(t, err)
				require.Equal(t, c.expected, v)
			})
		}
	})

	t.Run("char", func(t *testing.T) {
		cur := decode.NewCursor([]byte("x"))
		v, err := cur.Read(mustDescriptor(t, schema.CHAR, schema.LittleEndian, 1))
		require.NoError(t, err)
		require.Equal(t, byte('x'), v)
	})

	t.Run("bytes", func(t *testing.T) {
		cur := decode.NewCursor([]byte("hello world"))
		v, err := cur.Read(mustDescriptor(t, schema.BYTES, schema.LittleEndian, 5))
		require.NoError(t, err)
		require.Equal(t, []byte("hello"), v)
		require.Equal(t, 5, cur.Offset())
	})

	t.Run("bytes returns a copy", func(t *testing.T) {
		buf := []byte("abcd")
		cur := decode.NewCursor(buf)
		v, err := cur.Read(mustDescriptor(t, schema.BYTES, schema.LittleEndian, 4))
		require.NoError(t, err)
		buf[0] = 'z'
		require.Equal(t, []byte("abcd"), v)
	})

	t.Run("pad yields no value", func(t *testing.T) {
		cur := decode.NewCursor([]byte{0xff, 0xff, 0xff, 7})
		v, err := cur.Read(mustDescriptor(t, schema.PAD, schema.LittleEndian, 3))
		require.NoError(t, err)
		require.Nil(t, v)
		require.Equal(t, 3, cur.Offset())
	})

	t.Run("short read leaves offset unchanged", func(t *testing.T) {
		cur := decode.NewCursor([]byte{1, 2})
		_, err := cur.Read(mustDescriptor(t, schema.U32, schema.LittleEndian, 1))
		require.ErrorIs(t, err, decode.NewShortReadError(""))
		require.Equal(t, 0, cur.Offset())
		require.Equal(t, 2, cur.Remaining())
	})
}

func TestDescriptor(t *testing.T) {
	t.Run("sizes", func(t *testing.T) {
		cases := []struct {
			assertion string
			primitive schema.PrimitiveType
			count     int
			expected  int
		}{
			{"bool", schema.BOOL, 1, 1},
			{"uint8", schema.U8, 1, 1},
			{"uint16", schema.U16, 1, 2},
			{"uint32", schema.U32, 1, 4},
			{"uint64", schema.U64, 1, 8},
			{"float16", schema.F16, 1, 2},
			{"float32", schema.F32, 1, 4},
			{"float64", schema.F64, 1, 8},
			{"char", schema.CHAR, 1, 1},
			{"bytes", schema.BYTES, 32, 32},
			{"pad", schema.PAD, 3, 3},
		}
		for _, c := range cases {
			t.Run(c.assertion, func(t *testing.T) {
				d := mustDescriptor(t, c.primitive, schema.LittleEndian, c.count)
				require.Equal(t, c.expected, d.Size())
			})
		}
	})

	t.Run("unknown primitive rejected", func(t *testing.T) {
		_, err := decode.NewDescriptor(schema.PrimitiveType(0), schema.LittleEndian, 1)
		require.ErrorIs(t, err, decode.SchemaError{})

		_, err = decode.NewDescriptor(schema.PrimitiveType(99), schema.LittleEndian, 1)
		require.ErrorIs(t, err, decode.SchemaError{})
	})

	t.Run("numeric repeat counts rejected", func(t *testing.T) {
		for _, p := range []schema.PrimitiveType{
			schema.BOOL, schema.CHAR,
			schema.U8, schema.U16, schema.U32, schema.U64,
			schema.I8, schema.I16, schema.I32, schema.I64,
			schema.F16, schema.F32, schema.F64,
		} {
			_, err := decode.NewDescriptor(p, schema.LittleEndian, 2)
			require.ErrorIs(t, err, decode.SchemaError{}, "primitive %s", p)
		}
	})

	t.Run("negative bytes length rejected", func(t *testing.T) {
		_, err := decode.NewDescriptor(schema.BYTES, schema.LittleEndian, -1)
		require.ErrorIs(t, err, decode.SchemaError{})
	})
}
