package cli

import (
	"fmt"
	"log/slog"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/docforge/docforge/internal/render"
	"github.com/docforge/docforge/internal/search"
	"github.com/docforge/docforge/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve [path]",
	Short: "Generate documentation and preview it locally",
	Long: `Generate the corpus, render the HTML site, and serve it together with
the corpus and search APIs until interrupted.

Endpoints:
  /             generated HTML site
  /api/corpus   corpus as JSON
  /api/search   full-text search (?q=...&limit=...)`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(args)
	if err != nil {
		return err
	}
	cfg.Source.Root = root

	corpus, _, err := generateCorpus(cmd, root)
	if err != nil {
		return err
	}

	outDir := cfg.Output.Dir
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(root, outDir)
	}
	htmlDir := filepath.Join(outDir, "html")
	if err := render.WriteHTML(htmlDir, corpus); err != nil {
		return fmt.Errorf("html output failed: %w", err)
	}

	index, err := search.New(corpus)
	if err != nil {
		return fmt.Errorf("failed to build search index: %w", err)
	}
	defer func() { _ = index.Close() }()

	addr := serveAddr
	if addr == "" {
		addr = cfg.Serve.Addr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving %s documentation at http://%s\n", corpus.ProjectName, addr)
	return server.New(addr, htmlDir, corpus, index, slog.Default()).ListenAndServe(ctx)
}
