package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wkalt/easytau/util/schema"
)

func TestValidate(t *testing.T) {
	t.Run("valid schema", func(t *testing.T) {
		s := &schema.Schema{
			Name:      "ok",
			ByteOrder: schema.LittleEndian,
			Fields: []schema.Field{
				{Name: "n", Type: schema.Type{Primitive: schema.I32}},
				{Name: "data", Type: schema.Type{
					Qualified:   true,
					LengthField: "n",
					Elem:        &schema.Type{Primitive: schema.BYTES},
				}},
			},
		}
		require.NoError(t, s.Validate())
	})

	t.Run("forward length reference", func(t *testing.T) {
		s := &schema.Schema{
			Name: "forward",
			Fields: []schema.Field{
				{Name: "data", Type: schema.Type{
					Qualified:   true,
					LengthField: "n",
					Elem:        &schema.Type{Primitive: schema.BYTES},
				}},
				{Name: "n", Type: schema.Type{Primitive: schema.I32}},
			},
		}
		err := s.Validate()
		require.Error(t, err)
		require.ErrorContains(t, err, "preceding sibling")
	})

	t.Run("length reference across record boundary", func(t *testing.T) {
		s := &schema.Schema{
			Name: "crossing",
			Fields: []schema.Field{
				{Name: "n", Type: schema.Type{Primitive: schema.I32}},
				{Name: "inner", Type: schema.Type{
					Record: true,
					Fields: []schema.Field{
						{Name: "data", Type: schema.Type{
							Qualified:   true,
							LengthField: "n",
							Elem:        &schema.Type{Primitive: schema.BYTES},
						}},
					},
				}},
			},
		}
		// Length references resolve in the enclosing record only; the
		// inner record cannot see the outer "n".
		require.Error(t, s.Validate())
	})

	t.Run("bulk numeric primitive", func(t *testing.T) {
		s := &schema.Schema{
			Name: "bulk",
			Fields: []schema.Field{
				{Name: "xs", Type: schema.Type{
					Qualified: true,
					Length:    8,
					Elem:      &schema.Type{Primitive: schema.F32},
				}},
			},
		}
		err := s.Validate()
		require.Error(t, err)
		require.ErrorContains(t, err, "bulk")
	})

	t.Run("bulk byte string allowed", func(t *testing.T) {
		s := &schema.Schema{
			Name: "magic",
			Fields: []schema.Field{
				{Name: "ident", Type: schema.Type{
					Qualified: true,
					Length:    32,
					Elem:      &schema.Type{Primitive: schema.BYTES},
				}},
			},
		}
		require.NoError(t, s.Validate())
	})

	t.Run("kindless node", func(t *testing.T) {
		s := &schema.Schema{
			Name:   "kindless",
			Fields: []schema.Field{{Name: "x", Type: schema.Type{}}},
		}
		require.Error(t, s.Validate())
	})

	t.Run("qualified node without element", func(t *testing.T) {
		s := &schema.Schema{
			Name:   "noelem",
			Fields: []schema.Field{{Name: "x", Type: schema.Type{Qualified: true}}},
		}
		require.Error(t, s.Validate())
	})

	t.Run("internal fields ignored", func(t *testing.T) {
		s := &schema.Schema{
			Name: "meta",
			Fields: []schema.Field{
				{Name: "_doc", Type: schema.Type{}},
				{Name: "n", Type: schema.Type{Primitive: schema.I32}},
			},
		}
		require.NoError(t, s.Validate())
	})
}
