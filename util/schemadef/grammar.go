package schemadef

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

/*
Participle grammar for the schema definition text format. A definition is a
root block of field declarations followed by named sub-record blocks, each
introduced by a "=== MSG: <name>" separator. Any block may open with an
"@order <profile>" pragma selecting its byte-order profile. Fields are
declared one per line as "<type> <name>" or "<type>[<length>] <name>", where
<length> is an integer literal or the name of a preceding sibling field.
*/

////////////////////////////////////////////////////////////////////////////////

// nolint:gochecknoglobals
var (
	Lexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Newline", Pattern: `\s*[\n\r]+`},
		{Name: "Integer", Pattern: `[0-9]+`},
		{Name: "Word", Pattern: `[a-zA-Z0-9\_]+`},
		{Name: "Whitespace", Pattern: `[\s\t]+`},
		{Name: "LBracket", Pattern: `\[`},
		{Name: "RBracket", Pattern: `\]`},
		{Name: "Colon", Pattern: `:`},
		{Name: "Equals", Pattern: `=`},
		{Name: "At", Pattern: `@`},
	})

	DefinitionParser = participle.MustBuild[SchemaDefinition](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace", "Newline", "Comment"),
		participle.UseLookahead(1000),
	)
)

// SchemaDefinition is the parsed form of a schema definition document: the
// root record's block followed by named sub-record blocks.
type SchemaDefinition struct {
	Order   *OrderPragma `parser:"@@?"`
	Fields  []FieldDecl  `parser:"@@*"`
	Records []RecordDef  `parser:"@@*"`
}

// RecordDef is a named sub-record block.
type RecordDef struct {
	Header Header       `parser:"Equals+ @@"`
	Order  *OrderPragma `parser:"@@?"`
	Fields []FieldDecl  `parser:"@@*"`
}

// Header names a sub-record block.
type Header struct {
	Name string `parser:"'MSG' Colon @Word"`
}

// OrderPragma selects the byte-order profile for the enclosing block.
type OrderPragma struct {
	Profile string `parser:"At 'order' @Word"`
}

// FieldDecl is a single field declaration.
type FieldDecl struct {
	Type *TypeDecl `parser:"@@"`
	Name string    `parser:"@Word"`
}

// TypeDecl is a field's type with an optional length qualifier.
type TypeDecl struct {
	Name   string `parser:"@Word"`
	Sized  bool   `parser:"@LBracket?"`
	Length string `parser:"( @(Integer | Word) RBracket )?"`
}
