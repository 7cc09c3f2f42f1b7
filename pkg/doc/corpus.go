package doc

import "time"

// CategoryGroup is one entry of the category index: the ordered list of
// entity names discovered under a category. Order is file-then-declaration
// discovery order; duplicates are preserved. Sorting is a rendering concern.
type CategoryGroup struct {
	Name     string   `json:"name"`
	Entities []string `json:"entities"`
}

// Corpus is the root of the documentation model: every entity record
// discovered in one generation pass plus the category index. It is owned
// exclusively by the assembler and immutable once returned.
type Corpus struct {
	ProjectName string    `json:"projectName"`
	GeneratedAt time.Time `json:"generatedAt"`

	Classes    []EntityRecord `json:"classes"`
	Enums      []EntityRecord `json:"enums"`
	Typedefs   []EntityRecord `json:"typedefs"`
	Extensions []EntityRecord `json:"extensions"`

	// Categories is the category index in discovery order.
	Categories []CategoryGroup `json:"categories"`
}

// Entities returns all records in kind order (classes, enums, typedefs,
// extensions), each group in discovery order.
func (c *Corpus) Entities() []EntityRecord {
	out := make([]EntityRecord, 0, len(c.Classes)+len(c.Enums)+len(c.Typedefs)+len(c.Extensions))
	out = append(out, c.Classes...)
	out = append(out, c.Enums...)
	out = append(out, c.Typedefs...)
	out = append(out, c.Extensions...)
	return out
}

// Lookup returns the first entity with the given name, searching in kind
// order.
func (c *Corpus) Lookup(name string) (EntityRecord, bool) {
	for _, e := range c.Entities() {
		if e.Name == name {
			return e, true
		}
	}
	return EntityRecord{}, false
}

// Category returns the index entry for the given category name.
func (c *Corpus) Category(name string) (CategoryGroup, bool) {
	for _, g := range c.Categories {
		if g.Name == name {
			return g, true
		}
	}
	return CategoryGroup{}, false
}

// EntityCount returns the total number of records in the corpus.
func (c *Corpus) EntityCount() int {
	return len(c.Classes) + len(c.Enums) + len(c.Typedefs) + len(c.Extensions)
}
