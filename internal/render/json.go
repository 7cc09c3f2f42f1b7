// Package render writes an assembled corpus to its output formats. Renderers
// are pure consumers: they never mutate the corpus.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/docforge/docforge/pkg/doc"
)

// EncodeJSON writes the corpus as indented JSON. Every model field
// round-trips losslessly through DecodeJSON.
func EncodeJSON(w io.Writer, c *doc.Corpus) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// DecodeJSON reads a corpus previously written by EncodeJSON.
func DecodeJSON(r io.Reader) (*doc.Corpus, error) {
	var c doc.Corpus
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode corpus: %w", err)
	}
	return &c, nil
}

// WriteJSON writes the corpus to dir/corpus.json.
func WriteJSON(dir string, c *doc.Corpus) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, "corpus.json"))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return EncodeJSON(f, c)
}
