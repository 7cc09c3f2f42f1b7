// Package assemble aggregates per-file entity records into a single corpus
// and builds the category index.
//
// Assembly is order-preserving and associative: splitting the file stream
// into contiguous partitions, assembling each independently, and
// concatenating the partial corpora in original order yields the same corpus
// as assembling the whole stream at once. This is what makes per-file
// parallel parsing safe.
package assemble

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/docforge/docforge/pkg/doc"
)

// FileResult is the ordered contribution of one source file. A file that
// failed to parse contributes an empty Entities slice.
type FileResult struct {
	Path     string
	Entities []doc.EntityRecord
}

// Assemble merges per-file results, in the given order, into one corpus.
func Assemble(project string, results []FileResult) *doc.Corpus {
	c := newCorpus(project)
	for _, res := range results {
		for _, e := range res.Entities {
			appendEntity(c, e)
		}
	}
	return c
}

// Concat merges already-assembled corpora in order. ProjectName is taken
// from the first part that carries one; the timestamp is refreshed.
func Concat(parts ...*doc.Corpus) *doc.Corpus {
	project := ""
	for _, p := range parts {
		if p.ProjectName != "" {
			project = p.ProjectName
			break
		}
	}
	c := newCorpus(project)
	for _, p := range parts {
		for _, e := range p.Entities() {
			appendEntity(c, e)
		}
	}
	return c
}

func newCorpus(project string) *doc.Corpus {
	return &doc.Corpus{
		ProjectName: project,
		GeneratedAt: time.Now().UTC(),
	}
}

// appendEntity adds one record to the corpus, disambiguating derived
// extension names and updating the category index. Records are appended in
// discovery order and never sorted here.
func appendEntity(c *doc.Corpus, e doc.EntityRecord) {
	switch e.Kind {
	case doc.KindEnum:
		c.Enums = append(c.Enums, e)
	case doc.KindTypedef:
		c.Typedefs = append(c.Typedefs, e)
	case doc.KindExtension:
		if e.Anonymous {
			e.Name = uniqueExtensionName(c, doc.DerivedExtensionName(e.ExtendedType))
		}
		c.Extensions = append(c.Extensions, e)
	default:
		c.Classes = append(c.Classes, e)
	}

	// The index is keyed by category only; subCategory groups entities
	// within a bucket on the rendering side. Only class records feed it.
	if e.Kind == doc.KindClass && e.Category != "" {
		indexCategory(c, e.Category, e.Name)
	}
}

// uniqueExtensionName resolves collisions between derived extension names.
// The first record keeps its derived name; later colliding records fall back
// to a positional identifier so indexing and file naming stay unique per
// corpus. The caller recomputes the base name from the extended type on
// every append, so a rename applied inside a partial corpus never leaks into
// a concatenation and the fallback depends only on the record's position in
// the merged extension list. Both together keep Concat associative.
func uniqueExtensionName(c *doc.Corpus, base string) string {
	if !extensionNameTaken(c, base) {
		return base
	}
	idx := len(c.Extensions)
	candidate := fmt.Sprintf("extension_%d", idx)
	for extensionNameTaken(c, candidate) {
		idx++
		candidate = fmt.Sprintf("extension_%d", idx)
	}
	return candidate
}

func extensionNameTaken(c *doc.Corpus, name string) bool {
	for _, e := range c.Extensions {
		if e.Name == name {
			return true
		}
	}
	return false
}

func indexCategory(c *doc.Corpus, category, name string) {
	for i := range c.Categories {
		if c.Categories[i].Name == category {
			c.Categories[i].Entities = append(c.Categories[i].Entities, name)
			return
		}
	}
	c.Categories = append(c.Categories, doc.CategoryGroup{
		Name:     category,
		Entities: []string{name},
	})
}

// Equal reports whether two corpora carry identical content, ignoring the
// generation timestamp. Used by idempotence and associativity checks.
func Equal(a, b *doc.Corpus) bool {
	x, y := *a, *b
	x.GeneratedAt, y.GeneratedAt = time.Time{}, time.Time{}
	return reflect.DeepEqual(x, y)
}

// SanitizeFileName derives a file-system safe name for an entity page.
func SanitizeFileName(name string) string {
	repl := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", "*", "_", "<", "", ">", "", ":", "")
	return repl.Replace(name)
}
