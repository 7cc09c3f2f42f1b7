package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docforge/docforge/internal/config"
	"github.com/docforge/docforge/pkg/doc"
)

func TestRootCommand_SubcommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"generate", "serve", "mcp", "version"} {
		assert.True(t, names[want], "command %q not registered", want)
	}
}

func TestResolveRoot(t *testing.T) {
	dir := t.TempDir()

	root, err := resolveRoot([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, dir, root)

	_, err = resolveRoot([]string{filepath.Join(dir, "missing")})
	assert.Error(t, err)

	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	_, err = resolveRoot([]string{file})
	assert.Error(t, err)
}

func TestWriteOutputs(t *testing.T) {
	prev := cfg
	defer func() { cfg = prev }()

	cfg = config.Default()
	cfg.Output.Formats = []string{"json", "markdown", "html"}

	corpus := &doc.Corpus{
		ProjectName: "sample",
		Classes:     []doc.EntityRecord{{Name: "Button", Kind: doc.KindClass, File: "b.go"}},
	}

	dir := t.TempDir()
	require.NoError(t, writeOutputs(dir, corpus))

	assert.FileExists(t, filepath.Join(dir, "corpus.json"))
	assert.FileExists(t, filepath.Join(dir, "md", "index.md"))
	assert.FileExists(t, filepath.Join(dir, "md", "Button.md"))
	assert.FileExists(t, filepath.Join(dir, "html", "index.html"))
}

func TestWriteOutputs_UnknownFormat(t *testing.T) {
	prev := cfg
	defer func() { cfg = prev }()

	cfg = config.Default()
	cfg.Output.Formats = []string{"pdf"}

	err := writeOutputs(t.TempDir(), &doc.Corpus{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
