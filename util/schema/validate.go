package schema

import "fmt"

/*
Definition-time validation. The decoder reports the same defects at decode
time, but schemas are built once and reused, so catching a forward length
reference or an unsupported repeat count when the schema is assembled locates
the fault at its source.
*/

////////////////////////////////////////////////////////////////////////////////

// Validate walks the schema and rejects structural defects: a length
// reference naming a sibling that does not precede the field, a
// non-byte-string primitive with a literal length other than 0 or 1, and
// nodes with no kind at all.
func (s *Schema) Validate() error {
	return validateRecord(s.Name, s.Fields)
}

func validateRecord(name string, fields []Field) error {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if Internal(f.Name) {
			continue
		}
		if err := validateType(name+"."+f.Name, f.Type, seen); err != nil {
			return err
		}
		seen[f.Name] = true
	}
	return nil
}

func validateType(path string, t Type, seen map[string]bool) error {
	switch {
	case t.IsPrimitive():
		return nil
	case t.Qualified:
		if t.Elem == nil {
			return fmt.Errorf("field %s: length-qualified node has no element type", path)
		}
		if t.LengthField != "" && !seen[t.LengthField] {
			return fmt.Errorf(
				"field %s: length reference %q does not name a preceding sibling",
				path, t.LengthField,
			)
		}
		if t.Elem.IsPrimitive() && t.Elem.Primitive != BYTES &&
			t.LengthField == "" && t.Length > 1 {
			return fmt.Errorf(
				"field %s: %s does not support bulk decode; express runs of %s as a list of single-field records",
				path, t.Elem.Primitive, t.Elem.Primitive,
			)
		}
		if t.Elem.Record {
			return validateRecord(path, t.Elem.Fields)
		}
		if t.Elem.Qualified {
			return fmt.Errorf("field %s: length-qualified element types cannot nest", path)
		}
		return nil
	case t.Record:
		return validateRecord(path, t.Fields)
	default:
		return fmt.Errorf("field %s: schema node has no kind", path)
	}
}
