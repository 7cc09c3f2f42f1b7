package doc

import "errors"

// EntityKind identifies the kind of a documented top-level declaration.
type EntityKind string

const (
	KindClass     EntityKind = "class"
	KindEnum      EntityKind = "enum"
	KindTypedef   EntityKind = "typedef"
	KindExtension EntityKind = "extension"
)

// MemberKind identifies the kind of a documented nested member.
type MemberKind string

const (
	MemberConstructor MemberKind = "constructor"
	MemberField       MemberKind = "field"
	MemberMethod      MemberKind = "method"
)

// Parameter describes one parameter of a constructor or method. Types and
// default values are opaque text at this layer; the syntax-tree provider
// owns the real type system.
type Parameter struct {
	Name string `json:"name"`
	// TypeText is the declared type as free text, "dynamic" when the
	// declaration carried none.
	TypeText string `json:"type"`
	// Required is false for optional parameters (variadic, defaulted).
	Required bool `json:"required"`
	// Named distinguishes named from positional parameters.
	Named bool `json:"named,omitempty"`
	// DefaultValue is the default-value expression text, empty if none.
	DefaultValue string `json:"default,omitempty"`
}

// MemberDoc documents a constructor, field, or method nested inside an
// entity. Doc fields are independent of the parent's: a member carries its
// own description and code examples.
type MemberDoc struct {
	Name      string      `json:"name"`
	Kind      MemberKind  `json:"kind"`
	Modifiers []string    `json:"modifiers,omitempty"`
	TypeText  string      `json:"type,omitempty"`
	Params    []Parameter `json:"params,omitempty"`

	Description string      `json:"description,omitempty"`
	CodeBlocks  []CodeBlock `json:"codeBlocks,omitempty"`
	Links       []DocLink   `json:"links,omitempty"`
}

// EntityRecord documents one top-level declaration: a class, enum, typedef,
// or extension. Records are immutable once appended to a Corpus.
type EntityRecord struct {
	// Name is the declared name, or a derived display name for anonymous
	// extensions. Never empty inside a Corpus.
	Name string     `json:"name"`
	Kind EntityKind `json:"kind"`
	// Anonymous marks extensions declared without a name. Their display
	// name is recomputed from ExtendedType during assembly, so derived
	// names never depend on which partial corpus a record passed through.
	Anonymous bool `json:"anonymous,omitempty"`

	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	SubCategory string `json:"subCategory,omitempty"`

	File   string `json:"file"`
	Offset int    `json:"offset"`

	Modifiers []string `json:"modifiers,omitempty"`

	// Kind-specific structural facts, all opaque text.
	Superclass   string   `json:"superclass,omitempty"`   // class
	Mixins       []string `json:"mixins,omitempty"`       // class
	Interfaces   []string `json:"interfaces,omitempty"`   // class
	EnumValues   []string `json:"values,omitempty"`       // enum
	AliasedType  string   `json:"aliasedType,omitempty"`  // typedef
	ExtendedType string   `json:"extendedType,omitempty"` // extension

	CodeBlocks []CodeBlock       `json:"codeBlocks,omitempty"`
	Links      []DocLink         `json:"links,omitempty"`
	Macros     map[string]string `json:"macros,omitempty"`
	Templates  map[string]string `json:"templates,omitempty"`

	Constructors []MemberDoc `json:"constructors,omitempty"`
	Fields       []MemberDoc `json:"fields,omitempty"`
	Methods      []MemberDoc `json:"methods,omitempty"`
}

// DerivedExtensionName is the deterministic display name for an extension
// declared without a name.
func DerivedExtensionName(extendedType string) string {
	return "Extension on " + extendedType
}

// Validate performs basic consistency checks on the record.
func (e *EntityRecord) Validate() error {
	if e.Name == "" {
		return errors.New("entity name is required")
	}
	switch e.Kind {
	case KindClass, KindEnum, KindTypedef, KindExtension:
	default:
		return errors.New("invalid entity kind")
	}
	if e.Kind == KindExtension && e.ExtendedType == "" {
		return errors.New("extensions must record an extended type")
	}
	return nil
}
