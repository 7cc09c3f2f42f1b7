// Package source defines the boundary between docforge and the external
// syntax-tree provider. Declarations carry structural facts only; all types
// and default values are opaque text at this layer.
package source

import "context"

// DeclKind identifies the kind of a declaration node.
type DeclKind string

const (
	DeclClass       DeclKind = "class"
	DeclEnum        DeclKind = "enum"
	DeclTypedef     DeclKind = "typedef"
	DeclExtension   DeclKind = "extension"
	DeclConstructor DeclKind = "constructor"
	DeclField       DeclKind = "field"
	DeclMethod      DeclKind = "method"
)

// Declaration modifiers as reported by the syntax-tree provider.
const (
	ModAbstract = "abstract"
	ModStatic   = "static"
	ModConst    = "const"
	ModFinal    = "final"
	ModLate     = "late"
	ModFactory  = "factory"
)

// DynamicType is the placeholder substituted for a missing declared type.
const DynamicType = "dynamic"

// Param is one parameter of a constructor or method declaration.
type Param struct {
	Name         string
	TypeText     string // empty when the declaration carried no type
	Required     bool
	Named        bool
	DefaultValue string
}

// Declaration is one node supplied by the syntax-tree provider. Top-level
// declarations (class, enum, typedef, extension) may carry nested member
// declarations; members never nest further.
type Declaration struct {
	Kind DeclKind
	// Name is empty for anonymous extensions.
	Name      string
	Modifiers []string

	// CommentLines is the raw documentation-comment token sequence, one
	// line per token including its comment marker. Nil when the
	// declaration has no attached comment.
	CommentLines []string

	// Structural facts, opaque text.
	Superclass   string
	Mixins       []string
	Interfaces   []string
	ExtendedType string
	AliasedType  string
	EnumValues   []string
	TypeText     string // fields: declared type
	Params       []Param

	File   string
	Offset int

	Members []Declaration
}

// FileDecls is the parse result for one source file.
type FileDecls struct {
	Path  string
	Decls []Declaration
}

// Provider supplies declarations for source files. Implementations wrap an
// external parsing library; docforge never re-parses source text itself.
type Provider interface {
	// ParseFile parses one file. A returned error means the file
	// contributes nothing to the corpus; it never aborts sibling files.
	ParseFile(ctx context.Context, path string) (FileDecls, error)
}
