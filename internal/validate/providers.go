package validate

// ItemID is an opaque handle to a semantically resolved item.
// Ownership stays with the provider that issued it; Declint only
// passes it back through the Semantics and Syntax interfaces.
type ItemID any

// ItemKind discriminates the declaration kinds Declint can be asked
// to validate.
type ItemKind int

// Declaration kinds. Unions are recognized but deliberately not
// validated.
const (
	ItemUnknown ItemKind = iota
	ItemFunction
	ItemStruct
	ItemEnum
	ItemUnion
)

// FunctionData is the resolved view of a function declaration.
type FunctionData struct {
	// Name is the declared function name.
	Name string

	// ParamNames lists parameter names in declaration order. An
	// empty entry marks a parameter with no usable name (anonymous,
	// placeholder, or destructured); such entries are skipped during
	// validation but keep their position.
	ParamNames []string
}

// StructShape discriminates how a struct declares its fields.
type StructShape int

// Struct shapes. Only record-style structs carry named fields worth
// validating.
const (
	ShapeUnit StructShape = iota
	ShapeTuple
	ShapeRecord
)

// StructData is the resolved view of a struct declaration.
type StructData struct {
	// Name is the declared type name.
	Name string

	// Shape tells whether the struct is record-, tuple-, or
	// unit-style.
	Shape StructShape

	// FieldNames lists named fields in declaration order. Populated
	// only for record-style structs; an empty entry marks a nameless
	// (embedded) field.
	FieldNames []string
}

// EnumData is the resolved view of an enum declaration.
type EnumData struct {
	// Name is the declared type name.
	Name string

	// VariantNames lists variant names in declaration order.
	VariantNames []string
}

// Semantics supplies resolved declaration data. Implementations are
// read-only and are assumed to have been resolved and cached by the
// caller; Declint borrows the data for the duration of one
// validation call.
type Semantics interface {
	// ItemKind classifies the item. Unrecognized items report
	// ItemUnknown and are ignored.
	ItemKind(id ItemID) ItemKind

	// FunctionData returns the resolved data for a function item.
	FunctionData(id ItemID) (FunctionData, error)

	// StructData returns the resolved data for a struct item.
	StructData(id ItemID) (StructData, error)

	// EnumData returns the resolved data for an enum item.
	EnumData(id ItemID) (EnumData, error)
}

// Node is a handle to one concrete syntax node, stable for the
// lifetime of a validation call. Declint never mutates nodes; it
// only reads their rendered text and position.
type Node interface {
	// Text is the rendered identifier text of the node.
	Text() string

	// Location is the node's source position (file:line:col).
	Location() string
}

// Entry is one element of a concrete parameter or field list. Name
// is nil when the element has no identifier to point a diagnostic at
// (anonymous parameter, embedded field).
type Entry struct {
	Name Node
}

// DeclSyntax is the concrete declaration node an item originated
// from.
type DeclSyntax interface {
	// File identifies the source file containing the declaration.
	File() string

	// Name returns the declaration's name node, or nil when the
	// syntax carries no name.
	Name() Node

	// ParamList returns the ordered concrete parameter entries.
	// ok is false when the declaration has no parameter list at all.
	ParamList() (entries []Entry, ok bool)

	// FieldList returns the ordered concrete field entries together
	// with the struct shape. ok is false when the declaration has no
	// field list at all.
	FieldList() (entries []Entry, shape StructShape, ok bool)
}

// Syntax resolves items back to their originating concrete
// declaration. Resolution may be expensive; the validator only calls
// it once per item, and only when there is something to report.
type Syntax interface {
	Decl(id ItemID) (DeclSyntax, error)
}
