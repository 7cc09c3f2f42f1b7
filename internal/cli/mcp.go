package cli

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/docforge/docforge/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP documentation server on stdio",
	Long: `Expose the documentation pipeline over the Model Context Protocol.
Stdout is reserved for the protocol; logs go to stderr.

Tools: generate_docs, lookup_entity, list_categories, search_docs.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	logger := slog.Default()
	logger.Info("docforge MCP server starting", "version", Version)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := mcpserver.NewServer(logger)
	return srv.Serve(ctx)
}
