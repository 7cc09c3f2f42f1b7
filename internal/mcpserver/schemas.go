package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// generateDocsTool returns the tool definition for generate_docs
func generateDocsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "generate_docs",
		Description: "Parse a source tree and build its documentation corpus",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to the source root to document",
				},
				"project": map[string]interface{}{
					"type":        "string",
					"description": "Project name recorded in the corpus (defaults to the directory name)",
				},
				"include_tests": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, document *_test.go files",
					"default":     false,
				},
				"workers": map[string]interface{}{
					"type":        "integer",
					"description": "Worker pool size (defaults to the number of CPUs)",
				},
			},
			Required: []string{"path"},
		},
	}
}

// lookupEntityTool returns the tool definition for lookup_entity
func lookupEntityTool() mcp.Tool {
	return mcp.Tool{
		Name:        "lookup_entity",
		Description: "Return the full documentation record for a named entity",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Entity name (class, enum, typedef, or extension)",
				},
			},
			Required: []string{"name"},
		},
	}
}

// listCategoriesTool returns the tool definition for list_categories
func listCategoriesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_categories",
		Description: "List the category index: every category with its entities in discovery order",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// searchDocsTool returns the tool definition for search_docs
func searchDocsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_docs",
		Description: "Full-text search over entity names, descriptions, and categories",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (1-100)",
					"default":     10,
					"minimum":     1,
					"maximum":     100,
				},
			},
			Required: []string{"query"},
		},
	}
}
