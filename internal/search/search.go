// Package search provides full-text search over an assembled corpus using
// Bleve. The index is in-memory: it is rebuilt from the corpus on demand and
// serves the preview server and the MCP search tool.
package search

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/docforge/docforge/pkg/doc"
)

// entityDoc is the indexed representation of one entity record.
type entityDoc struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Category    string `json:"category"`
	SubCategory string `json:"subCategory"`
	Description string `json:"description"`
}

// Hit is one search result.
type Hit struct {
	Name     string  `json:"name"`
	Kind     string  `json:"kind"`
	Category string  `json:"category,omitempty"`
	Score    float64 `json:"score"`
}

// Index wraps a Bleve index over corpus entities.
type Index struct {
	idx bleve.Index
}

// newIndexMapping maps entity fields: names and descriptions are analyzed
// for full-text matching, kinds and categories are exact keywords.
func newIndexMapping() mapping.IndexMapping {
	docMapping := bleve.NewDocumentMapping()

	textField := bleve.NewTextFieldMapping()
	textField.Analyzer = standard.Name
	textField.Store = true
	docMapping.AddFieldMappingsAt("name", textField)
	docMapping.AddFieldMappingsAt("description", textField)

	keywordField := bleve.NewTextFieldMapping()
	keywordField.Analyzer = keyword.Name
	keywordField.Store = true
	docMapping.AddFieldMappingsAt("kind", keywordField)
	docMapping.AddFieldMappingsAt("category", keywordField)
	docMapping.AddFieldMappingsAt("subCategory", keywordField)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = docMapping
	indexMapping.DefaultAnalyzer = standard.Name
	return indexMapping
}

// New builds an in-memory index over every entity in the corpus.
func New(c *doc.Corpus) (*Index, error) {
	idx, err := bleve.NewMemOnly(newIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create search index: %w", err)
	}

	batch := idx.NewBatch()
	for _, e := range c.Entities() {
		id := string(e.Kind) + "/" + e.Name
		err := batch.Index(id, entityDoc{
			Name:        e.Name,
			Kind:        string(e.Kind),
			Category:    e.Category,
			SubCategory: e.SubCategory,
			Description: e.Description,
		})
		if err != nil {
			_ = idx.Close()
			return nil, err
		}
	}
	if err := idx.Batch(batch); err != nil {
		_ = idx.Close()
		return nil, err
	}
	return &Index{idx: idx}, nil
}

// Search runs a match query against names, descriptions, and categories.
func (x *Index) Search(query string, limit int) ([]Hit, error) {
	if limit <= 0 {
		limit = 10
	}
	q := bleve.NewQueryStringQuery(query)
	req := bleve.NewSearchRequestOptions(q, limit, 0, false)
	req.Fields = []string{"name", "kind", "category"}

	res, err := x.idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		hit := Hit{Score: h.Score}
		if v, ok := h.Fields["name"].(string); ok {
			hit.Name = v
		}
		if v, ok := h.Fields["kind"].(string); ok {
			hit.Kind = v
		}
		if v, ok := h.Fields["category"].(string); ok {
			hit.Category = v
		}
		hits = append(hits, hit)
	}
	return hits, nil
}

// Close releases the index.
func (x *Index) Close() error {
	return x.idx.Close()
}
