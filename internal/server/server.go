// Package server hosts the local documentation preview: the generated HTML
// site plus JSON APIs over the corpus.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/docforge/docforge/internal/render"
	"github.com/docforge/docforge/internal/search"
	"github.com/docforge/docforge/pkg/doc"
)

// Server serves a generated documentation site and search/corpus APIs.
type Server struct {
	addr    string
	htmlDir string
	corpus  *doc.Corpus
	index   *search.Index
	log     *slog.Logger
}

// New creates a preview server. htmlDir may be empty, in which case only the
// APIs are served.
func New(addr, htmlDir string, corpus *doc.Corpus, index *search.Index, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{addr: addr, htmlDir: htmlDir, corpus: corpus, index: index, log: logger}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/corpus", s.handleCorpus)
	mux.HandleFunc("/api/search", s.handleSearch)
	if s.htmlDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(s.htmlDir)))
	}
	return mux
}

// ListenAndServe runs the server until the context is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("preview server listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func (s *Server) handleCorpus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := render.EncodeJSON(w, s.corpus); err != nil {
		s.log.Error("failed to encode corpus", "error", err)
	}
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.index == nil {
		http.Error(w, "search index not available", http.StatusServiceUnavailable)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "missing query parameter q", http.StatusBadRequest)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	hits, err := s.index.Search(query, limit)
	if err != nil {
		s.log.Error("search failed", "query", query, "error", err)
		http.Error(w, "search failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(hits); err != nil {
		s.log.Error("failed to encode search results", "error", err)
	}
}
