// Package mcpserver exposes the documentation corpus over the Model Context
// Protocol: generation, entity lookup, category listing, and search tools on
// a stdio transport.
package mcpserver

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/mark3labs/mcp-go/server"

	"github.com/docforge/docforge/internal/engine"
	"github.com/docforge/docforge/internal/parser"
	"github.com/docforge/docforge/internal/search"
	"github.com/docforge/docforge/pkg/doc"
)

const (
	// ServerName is the MCP server name
	ServerName = "docforge"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with the documentation pipeline. The corpus
// and its search index are rebuilt by the generate_docs tool and guarded by
// a mutex: tool handlers may run concurrently.
type Server struct {
	mcp *server.MCPServer
	log *slog.Logger

	mu     sync.RWMutex
	corpus *doc.Corpus
	index  *search.Index
}

// NewServer creates a new MCP server instance.
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		mcp: server.NewMCPServer(ServerName, ServerVersion),
		log: logger,
	}
	s.registerTools()
	return s
}

// Serve starts the MCP server on stdio and blocks until the context is
// canceled or the transport closes.
func (s *Server) Serve(ctx context.Context) error {
	return s.serve(ctx, os.Stdin, os.Stdout)
}

func (s *Server) serve(ctx context.Context, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(s.mcp).Listen(ctx, in, out)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(generateDocsTool(), s.handleGenerateDocs)
	s.mcp.AddTool(lookupEntityTool(), s.handleLookupEntity)
	s.mcp.AddTool(listCategoriesTool(), s.handleListCategories)
	s.mcp.AddTool(searchDocsTool(), s.handleSearchDocs)
}

// setCorpus replaces the served corpus and rebuilds the search index.
func (s *Server) setCorpus(c *doc.Corpus) error {
	idx, err := search.New(c)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index != nil {
		_ = s.index.Close()
	}
	s.corpus = c
	s.index = idx
	return nil
}

// snapshot returns the current corpus and index, which may both be nil
// before the first generation.
func (s *Server) snapshot() (*doc.Corpus, *search.Index) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.corpus, s.index
}

// newEngine builds the pipeline used by generate_docs, warning through the
// server's logger.
func (s *Server) newEngine(workers int) *engine.Engine {
	return engine.New(parser.New(),
		engine.WithWorkers(workers),
		engine.WithWarnFunc(func(path string, err error) {
			s.log.Warn("file skipped", "path", path, "error", err)
		}),
	)
}
