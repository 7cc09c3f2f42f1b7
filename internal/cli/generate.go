package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/docforge/docforge/internal/cache"
	"github.com/docforge/docforge/internal/engine"
	"github.com/docforge/docforge/internal/parser"
	"github.com/docforge/docforge/internal/render"
	"github.com/docforge/docforge/internal/walker"
	"github.com/docforge/docforge/pkg/doc"
)

var generateCmd = &cobra.Command{
	Use:   "generate [path]",
	Short: "Generate the documentation corpus",
	Long: `Parse the source tree, extract documentation comments, and write the
corpus in the configured output formats.

Examples:
  docforge generate .                 # Document the current directory
  docforge generate /path/to/project  # Document a specific directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(args)
	if err != nil {
		return err
	}
	cfg.Source.Root = root

	corpus, warnings, err := generateCorpus(cmd, root)
	if err != nil {
		return err
	}

	outDir := cfg.Output.Dir
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(root, outDir)
	}
	if err := writeOutputs(outDir, corpus); err != nil {
		return err
	}

	fmt.Printf("\nGeneration complete:\n")
	fmt.Printf("  Entities:   %d\n", corpus.EntityCount())
	fmt.Printf("  Categories: %d\n", len(corpus.Categories))
	if warnings > 0 {
		fmt.Printf("  Warnings:   %d (see log)\n", warnings)
	}
	fmt.Printf("\nOutput written to: %s\n", outDir)
	return nil
}

// generateCorpus runs the full pipeline for root, with a progress bar and
// warnings routed to the logger.
func generateCorpus(cmd *cobra.Command, root string) (*doc.Corpus, int, error) {
	files, err := walker.New(cfg.Source.Includes, cfg.Source.Excludes).Walk(root)
	if err != nil {
		return nil, 0, fmt.Errorf("file discovery failed: %w", err)
	}
	fmt.Printf("Scanning %s: %d files\n", root, len(files))

	opts := []engine.Option{
		engine.WithWorkers(cfg.Workers),
	}

	var warnMu sync.Mutex
	warnings := 0
	opts = append(opts, engine.WithWarnFunc(func(path string, err error) {
		warnMu.Lock()
		warnings++
		warnMu.Unlock()
		slog.Warn("file skipped", "path", path, "error", err)
	}))

	if cfg.Cache.Enabled {
		cachePath := cfg.CachePath()
		if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err != nil {
			return nil, 0, fmt.Errorf("failed to create cache directory: %w", err)
		}
		store, err := cache.Open(cachePath)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to open cache: %w", err)
		}
		defer func() { _ = store.Close() }()
		opts = append(opts, engine.WithCache(store))
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]Documenting[reset]"),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
	opts = append(opts, engine.WithProgress(func(done, total int) {
		_ = bar.Set(done)
	}))

	project := cfg.Project
	if project == "" || project == "docforge" {
		project = filepath.Base(root)
	}

	corpus, stats, err := engine.New(parser.New(), opts...).Run(cmd.Context(), project, files)
	if err != nil {
		return nil, 0, fmt.Errorf("generation failed: %w", err)
	}
	slog.Info("corpus assembled",
		"files", stats.FilesProcessed,
		"cached", stats.FilesCached,
		"failed", stats.FilesFailed,
		"entities", stats.Entities,
		"duration", stats.Duration)

	return corpus, warnings, nil
}

func writeOutputs(outDir string, corpus *doc.Corpus) error {
	for _, format := range cfg.Output.Formats {
		switch format {
		case "json":
			if err := render.WriteJSON(outDir, corpus); err != nil {
				return fmt.Errorf("json output failed: %w", err)
			}
		case "markdown":
			if err := render.WriteMarkdown(filepath.Join(outDir, "md"), corpus); err != nil {
				return fmt.Errorf("markdown output failed: %w", err)
			}
		case "html":
			if err := render.WriteHTML(filepath.Join(outDir, "html"), corpus); err != nil {
				return fmt.Errorf("html output failed: %w", err)
			}
		default:
			return fmt.Errorf("unsupported output format: %s", format)
		}
	}
	return nil
}

func resolveRoot(args []string) (string, error) {
	root := rootDir
	if len(args) > 0 {
		var err error
		root, err = filepath.Abs(args[0])
		if err != nil {
			return "", fmt.Errorf("invalid path: %w", err)
		}
	}
	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", root)
	}
	return root, nil
}
