package decode

import (
	"fmt"

	"github.com/Velocidex/ordereddict"
	"github.com/wkalt/easytau/util/schema"
)

/*
Recursive decode engine. Decode walks a schema type against a cursor,
producing an ordered field-name -> value mapping. Byte order is threaded
through every call as an explicit parameter: each record resolves its own
profile against the caller's and hands the result to the scalars directly
inside it. Length references are resolved against the partially-built
enclosing record, passed explicitly down the recursion - fields decode in
declared order, so a reference can only see siblings that precede it.
*/

////////////////////////////////////////////////////////////////////////////////

// Decode decodes data against the schema and returns the nested record. The
// buffer must hold at least the schema's minimum fixed-size prefix. Trailing
// bytes beyond what the schema consumes are left unread.
func Decode(s *schema.Schema, data []byte) (*ordereddict.Dict, error) {
	return DecodeAt(s, NewCursor(data))
}

// DecodeAt decodes the schema against an existing cursor, leaving the cursor
// positioned after the record's last byte. The cursor must not be shared with
// another in-flight decode.
func DecodeAt(s *schema.Schema, cur *Cursor) (*ordereddict.Dict, error) {
	if min := s.MinSize(); cur.Remaining() < min {
		return nil, fmt.Errorf(
			"buffer holds %d bytes but schema %s requires at least %d: %w",
			cur.Remaining(), s.Name, min, NewShortReadError(s.Name),
		)
	}
	return decodeRecord(s.Name, s.Root(), cur, schema.Native)
}

func decodeType(
	path string,
	t schema.Type,
	cur *Cursor,
	order schema.ByteOrder,
	enclosing *ordereddict.Dict,
) (any, error) {
	switch {
	case t.IsPrimitive():
		return decodePrimitive(path, t.Primitive, cur, order, 1)
	case t.Qualified:
		return decodeQualified(path, t, cur, order, enclosing)
	case t.Record:
		return decodeRecord(path, t, cur, order)
	default:
		return nil, schemaErrorf(path, "schema node has no kind")
	}
}

func decodePrimitive(
	path string,
	p schema.PrimitiveType,
	cur *Cursor,
	order schema.ByteOrder,
	count int,
) (any, error) {
	d, err := NewDescriptor(p, order, count)
	if err != nil {
		return nil, attach(path, err)
	}
	v, err := cur.Read(d)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return v, nil
}

func decodeQualified(
	path string,
	t schema.Type,
	cur *Cursor,
	order schema.ByteOrder,
	enclosing *ordereddict.Dict,
) (any, error) {
	if t.Elem == nil {
		return nil, schemaErrorf(path, "length-qualified node has no element type")
	}
	length := t.Length
	if t.LengthField != "" {
		n, err := resolveLength(path, t.LengthField, enclosing)
		if err != nil {
			return nil, err
		}
		length = n
	}
	if length < 0 {
		return nil, fmt.Errorf(
			"field %s: resolved length %d is negative: %w", path, length, NewShortReadError(path),
		)
	}
	if length == 0 {
		if t.List {
			return []any{}, nil
		}
		return nil, nil
	}
	if t.Elem.IsPrimitive() {
		// Only byte strings decode in bulk; NewDescriptor rejects any
		// other primitive with length != 1.
		return decodePrimitive(path, t.Elem.Primitive, cur, order, length)
	}
	if !t.Elem.Record {
		return nil, schemaErrorf(path, "unsupported element type")
	}
	out := make([]any, 0, length)
	for i := 0; i < length; i++ {
		v, err := decodeRecord(fmt.Sprintf("%s[%d]", path, i), *t.Elem, cur, order)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func decodeRecord(
	path string,
	t schema.Type,
	cur *Cursor,
	order schema.ByteOrder,
) (*ordereddict.Dict, error) {
	order = t.ByteOrder.Resolve(order)
	record := ordereddict.NewDict()
	for _, f := range t.Fields {
		if schema.Internal(f.Name) {
			continue
		}
		v, err := decodeType(path+"."+f.Name, f.Type, cur, order, record)
		if err != nil {
			return nil, err
		}
		if isPadding(f.Type) {
			continue
		}
		record.Set(f.Name, v)
	}
	return record, nil
}

// isPadding reports whether a field yields no value: a bare PAD primitive or
// a length-qualified run of padding.
func isPadding(t schema.Type) bool {
	if t.IsPrimitive() && t.Primitive == schema.PAD {
		return true
	}
	return t.Qualified && t.Elem != nil && t.Elem.Primitive == schema.PAD
}

func resolveLength(path string, name string, enclosing *ordereddict.Dict) (int, error) {
	if enclosing == nil {
		return 0, schemaErrorf(path, "length reference %q used outside a record context", name)
	}
	v, ok := enclosing.Get(name)
	if !ok {
		return 0, schemaErrorf(path, "length reference %q does not name a preceding sibling", name)
	}
	n, ok := asLength(v)
	if !ok {
		return 0, schemaErrorf(path, "length reference %q is not an integer field", name)
	}
	return n, nil
}

func asLength(v any) (int, bool) {
	switch n := v.(type) {
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}

func attach(path string, err error) error {
	if serr, ok := err.(SchemaError); ok && serr.Field == "" {
		serr.Field = path
		return serr
	}
	return err
}
