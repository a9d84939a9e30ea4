package schemadef

import (
	"fmt"
	"strconv"

	"github.com/wkalt/easytau/util/schema"
)

/*
This file contains the Parse function, which accepts a []byte-valued schema
definition and returns a *schema.Schema. It calls the participle parser on
the definition to create an AST, then transforms the AST into a
schema.Schema. The participle AST does not leave the schemadef package.
*/

////////////////////////////////////////////////////////////////////////////////

// nolint:gochecknoglobals
var (
	primitiveTypes = map[string]schema.PrimitiveType{
		"pad":     schema.PAD,
		"bool":    schema.BOOL,
		"char":    schema.CHAR,
		"bytes":   schema.BYTES,
		"uint8":   schema.U8,
		"uint16":  schema.U16,
		"uint32":  schema.U32,
		"uint64":  schema.U64,
		"int8":    schema.I8,
		"int16":   schema.I16,
		"int32":   schema.I32,
		"int64":   schema.I64,
		"float16": schema.F16,
		"float32": schema.F32,
		"float64": schema.F64,
	}

	byteOrders = map[string]schema.ByteOrder{
		"native_size":   schema.NativeSize,
		"native":        schema.Native,
		"little_endian": schema.LittleEndian,
		"big_endian":    schema.BigEndian,
		"network":       schema.Network,
	}
)

// Parse parses a schema definition document and returns a validated
// schema.Schema with the given name.
func Parse(name string, def []byte) (*schema.Schema, error) {
	ast, err := DefinitionParser.ParseBytes("", def)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema definition: %w", err)
	}
	s, err := transformAST(name, *ast)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid schema definition: %w", err)
	}
	return s, nil
}

// MustParse is like Parse but panics on error. Intended for package-level
// schema definitions, which are defects if malformed.
func MustParse(name string, def []byte) *schema.Schema {
	s, err := Parse(name, def)
	if err != nil {
		panic(fmt.Sprintf("failed to parse schema %s: %v", name, err))
	}
	return s
}

func transformAST(name string, ast SchemaDefinition) (*schema.Schema, error) {
	subdefinitions := make(map[string]RecordDef, len(ast.Records))
	for _, record := range ast.Records {
		if _, ok := subdefinitions[record.Header.Name]; ok {
			return nil, fmt.Errorf("record %s defined twice", record.Header.Name)
		}
		subdefinitions[record.Header.Name] = record
	}
	order, err := resolveOrder(ast.Order)
	if err != nil {
		return nil, err
	}
	fields, err := resolveFields(ast.Fields, subdefinitions, map[string]bool{})
	if err != nil {
		return nil, err
	}
	return &schema.Schema{Name: name, ByteOrder: order, Fields: fields}, nil
}

func resolveOrder(pragma *OrderPragma) (schema.ByteOrder, error) {
	if pragma == nil {
		return schema.Unset, nil
	}
	order, ok := byteOrders[pragma.Profile]
	if !ok {
		return schema.Unset, fmt.Errorf("unknown byte-order profile %q", pragma.Profile)
	}
	return order, nil
}

func resolveFields(
	decls []FieldDecl,
	subdefs map[string]RecordDef,
	resolving map[string]bool,
) ([]schema.Field, error) {
	fields := make([]schema.Field, 0, len(decls))
	for _, decl := range decls {
		resolved, err := resolveType(decl.Type, subdefs, resolving)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", decl.Name, err)
		}
		fields = append(fields, schema.Field{Name: decl.Name, Type: *resolved})
	}
	return fields, nil
}

func resolveType(
	t *TypeDecl,
	subdefs map[string]RecordDef,
	resolving map[string]bool,
) (*schema.Type, error) {
	primitive, isPrimitive := primitiveTypes[t.Name]

	if isPrimitive && !t.Sized {
		return &schema.Type{Primitive: primitive}, nil
	}

	if isPrimitive {
		elem := &schema.Type{Primitive: primitive}
		qualified := &schema.Type{Qualified: true, Elem: elem}
		if err := applyLength(qualified, t.Length); err != nil {
			return nil, err
		}
		return qualified, nil
	}

	subdef, ok := subdefs[t.Name]
	if !ok {
		return nil, fmt.Errorf("failed to resolve type %s", t.Name)
	}
	if resolving[t.Name] {
		return nil, fmt.Errorf("record %s refers to itself", t.Name)
	}
	resolving[t.Name] = true
	defer delete(resolving, t.Name)

	order, err := resolveOrder(subdef.Order)
	if err != nil {
		return nil, err
	}
	fields, err := resolveFields(subdef.Fields, subdefs, resolving)
	if err != nil {
		return nil, err
	}
	record := &schema.Type{Record: true, ByteOrder: order, Fields: fields}
	if !t.Sized {
		return record, nil
	}

	qualified := &schema.Type{Qualified: true, List: true, Elem: record}
	if err := applyLength(qualified, t.Length); err != nil {
		return nil, err
	}
	return qualified, nil
}

func applyLength(t *schema.Type, length string) error {
	if length == "" {
		return fmt.Errorf("length qualifier is empty")
	}
	if n, err := strconv.Atoi(length); err == nil {
		t.Length = n
		return nil
	}
	t.LengthField = length
	return nil
}
