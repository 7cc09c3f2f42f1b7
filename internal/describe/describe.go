// Package describe merges declaration facts with parsed comment fragments
// into entity and member records. It never re-parses source text: all
// structural facts come from the syntax-tree provider.
package describe

import (
	"github.com/docforge/docforge/internal/comment"
	"github.com/docforge/docforge/internal/source"
	"github.com/docforge/docforge/pkg/doc"
)

// Entity produces one entity record from a top-level declaration and its
// parsed comment. Nested member declarations are described recursively with
// their own comments. A declaration without documentation still produces a
// record; every doc field is simply absent.
func Entity(decl source.Declaration, pc doc.ParsedComment) doc.EntityRecord {
	rec := doc.EntityRecord{
		Name:        decl.Name,
		Kind:        entityKind(decl.Kind),
		Description: pc.Description,
		Category:    pc.Category,
		SubCategory: pc.SubCategory,
		File:        decl.File,
		Offset:      decl.Offset,
		Modifiers:   decl.Modifiers,

		Superclass:   decl.Superclass,
		Mixins:       decl.Mixins,
		Interfaces:   decl.Interfaces,
		EnumValues:   decl.EnumValues,
		AliasedType:  decl.AliasedType,
		ExtendedType: decl.ExtendedType,

		CodeBlocks: pc.CodeBlocks,
		Links:      pc.Links,
		Macros:     pc.Macros,
		Templates:  pc.Templates,
	}

	if rec.Kind == doc.KindExtension {
		if rec.ExtendedType == "" {
			rec.ExtendedType = source.DynamicType
		}
		if rec.Name == "" {
			rec.Anonymous = true
			rec.Name = doc.DerivedExtensionName(rec.ExtendedType)
		}
	}

	for _, m := range decl.Members {
		md := Member(m, comment.Parse(comment.Normalize(m.CommentLines)))
		switch md.Kind {
		case doc.MemberConstructor:
			rec.Constructors = append(rec.Constructors, md)
		case doc.MemberField:
			rec.Fields = append(rec.Fields, md)
		default:
			rec.Methods = append(rec.Methods, md)
		}
	}

	return rec
}

// Member produces one member record from a nested declaration and its
// parsed comment.
func Member(decl source.Declaration, pc doc.ParsedComment) doc.MemberDoc {
	md := doc.MemberDoc{
		Name:        decl.Name,
		Kind:        memberKind(decl.Kind),
		Modifiers:   decl.Modifiers,
		TypeText:    decl.TypeText,
		Description: pc.Description,
		CodeBlocks:  pc.CodeBlocks,
		Links:       pc.Links,
	}
	if md.Kind == doc.MemberField && md.TypeText == "" {
		md.TypeText = source.DynamicType
	}
	for _, p := range decl.Params {
		md.Params = append(md.Params, describeParam(p))
	}
	return md
}

func describeParam(p source.Param) doc.Parameter {
	typeText := p.TypeText
	if typeText == "" {
		typeText = source.DynamicType
	}
	return doc.Parameter{
		Name:         p.Name,
		TypeText:     typeText,
		Required:     p.Required,
		Named:        p.Named,
		DefaultValue: p.DefaultValue,
	}
}

func entityKind(k source.DeclKind) doc.EntityKind {
	switch k {
	case source.DeclEnum:
		return doc.KindEnum
	case source.DeclTypedef:
		return doc.KindTypedef
	case source.DeclExtension:
		return doc.KindExtension
	default:
		return doc.KindClass
	}
}

func memberKind(k source.DeclKind) doc.MemberKind {
	switch k {
	case source.DeclConstructor:
		return doc.MemberConstructor
	case source.DeclField:
		return doc.MemberField
	default:
		return doc.MemberMethod
	}
}
