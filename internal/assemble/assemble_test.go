package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docforge/docforge/pkg/doc"
)

func class(name, category string) doc.EntityRecord {
	return doc.EntityRecord{Name: name, Kind: doc.KindClass, Category: category}
}

func TestAssemble_KindBuckets(t *testing.T) {
	results := []FileResult{
		{Path: "a.go", Entities: []doc.EntityRecord{
			{Name: "Widget", Kind: doc.KindClass},
			{Name: "Color", Kind: doc.KindEnum},
		}},
		{Path: "b.go", Entities: []doc.EntityRecord{
			{Name: "Handler", Kind: doc.KindTypedef},
			{Name: "Extension on string", Kind: doc.KindExtension, ExtendedType: "string"},
		}},
	}

	c := Assemble("proj", results)

	assert.Equal(t, "proj", c.ProjectName)
	assert.False(t, c.GeneratedAt.IsZero())
	require.Len(t, c.Classes, 1)
	require.Len(t, c.Enums, 1)
	require.Len(t, c.Typedefs, 1)
	require.Len(t, c.Extensions, 1)
	assert.Equal(t, 4, c.EntityCount())
}

func TestAssemble_CategoryIndexOrder(t *testing.T) {
	// Two classes in the same file under the same category keep
	// file-then-declaration order in the index.
	results := []FileResult{
		{Path: "ui.go", Entities: []doc.EntityRecord{
			class("Button", "UI"),
			class("Slider", "UI"),
		}},
		{Path: "net.go", Entities: []doc.EntityRecord{
			class("Socket", "Network"),
			class("Dialog", "UI"),
		}},
	}

	c := Assemble("proj", results)

	require.Len(t, c.Categories, 2)
	assert.Equal(t, "UI", c.Categories[0].Name)
	assert.Equal(t, []string{"Button", "Slider", "Dialog"}, c.Categories[0].Entities)
	assert.Equal(t, "Network", c.Categories[1].Name)
	assert.Equal(t, []string{"Socket"}, c.Categories[1].Entities)
}

func TestAssemble_OnlyClassesFeedTheIndex(t *testing.T) {
	results := []FileResult{
		{Path: "a.go", Entities: []doc.EntityRecord{
			{Name: "Color", Kind: doc.KindEnum, Category: "UI"},
			{Name: "Handler", Kind: doc.KindTypedef, Category: "UI"},
			class("Button", "UI"),
		}},
	}

	c := Assemble("proj", results)

	group, ok := c.Category("UI")
	require.True(t, ok)
	assert.Equal(t, []string{"Button"}, group.Entities)
}

func TestAssemble_UncategorizedClassesSkipTheIndex(t *testing.T) {
	c := Assemble("proj", []FileResult{
		{Path: "a.go", Entities: []doc.EntityRecord{class("Plain", "")}},
	})
	assert.Empty(t, c.Categories)
}

func TestAssemble_DuplicateNamesPreservedInIndex(t *testing.T) {
	c := Assemble("proj", []FileResult{
		{Path: "a.go", Entities: []doc.EntityRecord{class("Button", "UI")}},
		{Path: "b.go", Entities: []doc.EntityRecord{class("Button", "UI")}},
	})

	group, ok := c.Category("UI")
	require.True(t, ok)
	assert.Equal(t, []string{"Button", "Button"}, group.Entities)
}

func TestAssemble_FailedFileContributesNothing(t *testing.T) {
	c := Assemble("proj", []FileResult{
		{Path: "bad.go"},
		{Path: "good.go", Entities: []doc.EntityRecord{class("Ok", "")}},
	})
	assert.Equal(t, 1, c.EntityCount())
}

func anonExt(extendedType string) doc.EntityRecord {
	return doc.EntityRecord{
		Name:         doc.DerivedExtensionName(extendedType),
		Kind:         doc.KindExtension,
		Anonymous:    true,
		ExtendedType: extendedType,
	}
}

func TestAssemble_ExtensionNameCollision(t *testing.T) {
	ext := func() doc.EntityRecord { return anonExt("string") }
	c := Assemble("proj", []FileResult{
		{Path: "a.go", Entities: []doc.EntityRecord{ext(), ext(), ext()}},
	})

	require.Len(t, c.Extensions, 3)
	assert.Equal(t, "Extension on string", c.Extensions[0].Name)
	assert.Equal(t, "extension_1", c.Extensions[1].Name)
	assert.Equal(t, "extension_2", c.Extensions[2].Name)
}

func TestConcat_Associativity(t *testing.T) {
	results := []FileResult{
		{Path: "a.go", Entities: []doc.EntityRecord{
			class("Button", "UI"),
			{Name: "Color", Kind: doc.KindEnum},
		}},
		{Path: "b.go", Entities: []doc.EntityRecord{
			anonExt("string"),
			class("Slider", "UI"),
		}},
		{Path: "c.go", Entities: []doc.EntityRecord{
			anonExt("string"),
			class("Dialog", "Overlays"),
		}},
	}

	whole := Assemble("proj", results)

	// Every contiguous split point must reassemble to the same corpus.
	for cut := 0; cut <= len(results); cut++ {
		left := Assemble("proj", results[:cut])
		right := Assemble("", results[cut:])
		merged := Concat(left, right)
		assert.True(t, Equal(whole, merged), "split at %d diverged", cut)
	}
}

func TestConcat_AssociativityWithTrailingCollision(t *testing.T) {
	// The colliding pair sits entirely inside the last partition. A partial
	// assembly renames its second record; the rename must not survive into
	// the concatenation, which recomputes derived names over the merged
	// extension list.
	results := []FileResult{
		{Path: "u.go", Entities: []doc.EntityRecord{anonExt("U")}},
		{Path: "t.go", Entities: []doc.EntityRecord{anonExt("T"), anonExt("T")}},
	}

	whole := Assemble("proj", results)
	require.Len(t, whole.Extensions, 3)
	assert.Equal(t, "Extension on U", whole.Extensions[0].Name)
	assert.Equal(t, "Extension on T", whole.Extensions[1].Name)
	assert.Equal(t, "extension_2", whole.Extensions[2].Name)

	for cut := 0; cut <= len(results); cut++ {
		merged := Concat(Assemble("proj", results[:cut]), Assemble("", results[cut:]))
		assert.True(t, Equal(whole, merged), "split at %d diverged", cut)
	}
}

func TestConcat_ProjectNameFromFirstNonEmpty(t *testing.T) {
	a := Assemble("", nil)
	b := Assemble("proj", nil)
	assert.Equal(t, "proj", Concat(a, b).ProjectName)
}

func TestEqual_IgnoresTimestamp(t *testing.T) {
	results := []FileResult{{Path: "a.go", Entities: []doc.EntityRecord{class("X", "")}}}
	a := Assemble("p", results)
	b := Assemble("p", results)
	b.GeneratedAt = b.GeneratedAt.AddDate(0, 0, 1)

	assert.True(t, Equal(a, b))

	b.Classes[0].Name = "Y"
	assert.False(t, Equal(a, b))
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "Extension_on_string", SanitizeFileName("Extension on string"))
	assert.Equal(t, "Extension_on_Mapstring,_int", SanitizeFileName("Extension on Map<string, int>"))
	assert.Equal(t, "a_b", SanitizeFileName("a/b"))
}
