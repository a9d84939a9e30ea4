package decode

import "fmt"

/*
Error taxonomy. SchemaError marks a defect in the schema definition itself -
the decode that hit it would fail the same way on any input. ShortReadError
marks truncated or malformed input. Neither is ever swallowed; a decode fully
succeeds or returns one of these.
*/

////////////////////////////////////////////////////////////////////////////////

// ShortReadError indicates the buffer ended before a field's bytes did.
type ShortReadError struct {
	typeName string
}

func (e ShortReadError) Error() string {
	return "short read on " + e.typeName
}

func (e ShortReadError) Is(err error) bool {
	_, ok := err.(ShortReadError)
	return ok
}

// NewShortReadError returns a ShortReadError for the named type.
func NewShortReadError(typeName string) ShortReadError {
	return ShortReadError{typeName}
}

// SchemaError indicates a defect in the schema definition, located by the
// field path that exposed it.
type SchemaError struct {
	Field  string
	Reason string
}

func (e SchemaError) Error() string {
	if e.Field == "" {
		return "schema error: " + e.Reason
	}
	return fmt.Sprintf("schema error at %s: %s", e.Field, e.Reason)
}

func (e SchemaError) Is(err error) bool {
	_, ok := err.(SchemaError)
	return ok
}

func schemaErrorf(field string, format string, args ...any) SchemaError {
	return SchemaError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
