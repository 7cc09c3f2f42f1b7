package describe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docforge/docforge/internal/comment"
	"github.com/docforge/docforge/internal/source"
	"github.com/docforge/docforge/pkg/doc"
)

func TestEntity_Class(t *testing.T) {
	decl := source.Declaration{
		Kind:       source.DeclClass,
		Name:       "Button",
		Modifiers:  []string{source.ModAbstract},
		Superclass: "Widget",
		Mixins:     []string{"Clickable"},
		Interfaces: []string{"Renderable"},
		File:       "widgets/button.go",
		Offset:     42,
	}
	pc := comment.Parse("A pressable control.\n{@category Widgets}\n{@subCategory Buttons}")

	rec := Entity(decl, pc)

	assert.Equal(t, "Button", rec.Name)
	assert.Equal(t, doc.KindClass, rec.Kind)
	assert.Equal(t, "A pressable control.", rec.Description)
	assert.Equal(t, "Widgets", rec.Category)
	assert.Equal(t, "Buttons", rec.SubCategory)
	assert.Equal(t, "Widget", rec.Superclass)
	assert.Equal(t, []string{"Clickable"}, rec.Mixins)
	assert.Equal(t, []string{"Renderable"}, rec.Interfaces)
	assert.Equal(t, "widgets/button.go", rec.File)
	assert.Equal(t, 42, rec.Offset)
	assert.NoError(t, rec.Validate())
}

func TestEntity_UndocumentedIsNotAnError(t *testing.T) {
	rec := Entity(source.Declaration{Kind: source.DeclEnum, Name: "Color", EnumValues: []string{"red", "green"}}, doc.ParsedComment{})

	assert.Equal(t, doc.KindEnum, rec.Kind)
	assert.Empty(t, rec.Description)
	assert.Empty(t, rec.Category)
	assert.Equal(t, []string{"red", "green"}, rec.EnumValues)
	assert.NoError(t, rec.Validate())
}

func TestEntity_Typedef(t *testing.T) {
	rec := Entity(source.Declaration{Kind: source.DeclTypedef, Name: "Handler", AliasedType: "func(int) error"}, doc.ParsedComment{})

	assert.Equal(t, doc.KindTypedef, rec.Kind)
	assert.Equal(t, "func(int) error", rec.AliasedType)
}

func TestEntity_AnonymousExtensionDerivedName(t *testing.T) {
	rec := Entity(source.Declaration{Kind: source.DeclExtension, ExtendedType: "string"}, doc.ParsedComment{})

	assert.Equal(t, "Extension on string", rec.Name)
	assert.Equal(t, "string", rec.ExtendedType)
	assert.True(t, rec.Anonymous)
	assert.NoError(t, rec.Validate())
}

func TestEntity_ExtensionMissingTypeGetsDynamic(t *testing.T) {
	rec := Entity(source.Declaration{Kind: source.DeclExtension}, doc.ParsedComment{})

	assert.Equal(t, source.DynamicType, rec.ExtendedType)
	assert.Equal(t, "Extension on dynamic", rec.Name)
}

func TestEntity_MembersRoutedByKind(t *testing.T) {
	decl := source.Declaration{
		Kind: source.DeclClass,
		Name: "Account",
		Members: []source.Declaration{
			{Kind: source.DeclConstructor, Name: "NewAccount", Modifiers: []string{source.ModFactory}},
			{Kind: source.DeclField, Name: "Balance", TypeText: "int64", CommentLines: []string{"// Current balance in cents."}},
			{Kind: source.DeclMethod, Name: "Deposit", Params: []source.Param{{Name: "amount", TypeText: "int64", Required: true}}},
		},
	}

	rec := Entity(decl, doc.ParsedComment{})

	require.Len(t, rec.Constructors, 1)
	require.Len(t, rec.Fields, 1)
	require.Len(t, rec.Methods, 1)

	assert.Equal(t, doc.MemberConstructor, rec.Constructors[0].Kind)
	assert.Equal(t, []string{source.ModFactory}, rec.Constructors[0].Modifiers)

	assert.Equal(t, "Current balance in cents.", rec.Fields[0].Description)
	assert.Equal(t, "int64", rec.Fields[0].TypeText)

	require.Len(t, rec.Methods[0].Params, 1)
	assert.Equal(t, "amount", rec.Methods[0].Params[0].Name)
	assert.True(t, rec.Methods[0].Params[0].Required)
}

func TestMember_UndocumentedMethod(t *testing.T) {
	md := Member(source.Declaration{Kind: source.DeclMethod, Name: "Reset"}, doc.ParsedComment{})

	assert.Equal(t, "Reset", md.Name)
	assert.Equal(t, doc.MemberMethod, md.Kind)
	assert.Empty(t, md.Description)
	assert.Empty(t, md.CodeBlocks)
}

func TestMember_MissingTypesGetDynamicPlaceholder(t *testing.T) {
	md := Member(source.Declaration{
		Kind:   source.DeclField,
		Name:   "value",
		Params: nil,
	}, doc.ParsedComment{})
	assert.Equal(t, source.DynamicType, md.TypeText)

	md = Member(source.Declaration{
		Kind:   source.DeclMethod,
		Name:   "apply",
		Params: []source.Param{{Name: "x"}},
	}, doc.ParsedComment{})
	require.Len(t, md.Params, 1)
	assert.Equal(t, source.DynamicType, md.Params[0].TypeText)
}

func TestMember_CarriesOwnCodeBlocks(t *testing.T) {
	pc := comment.Parse("Usage:\n```\na.Deposit(100)\n```")
	md := Member(source.Declaration{Kind: source.DeclMethod, Name: "Deposit"}, pc)

	require.Len(t, md.CodeBlocks, 1)
	assert.Equal(t, "a.Deposit(100)", md.CodeBlocks[0].Code)
	assert.Equal(t, "Usage:", md.Description)
}
