package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"linkdir/internal/adapters/dataset"
	"linkdir/internal/application/commands"
	"linkdir/internal/ports"
)

// RegisterWriteTools adds the tools that modify a link store.
// They are only offered when the server is backed by a store.
func RegisterWriteTools(s *server.MCPServer, store ports.LinkStore, logger *zap.Logger) {
	s.AddTool(importTool(), importHandler(store, logger))
}

// --- import_links ---

func importTool() mcp.Tool {
	return mcp.NewTool("import_links",
		mcp.WithDescription("Import links from a YAML, JSON or bookmark HTML file into the store."),
		mcp.WithString("path",
			mcp.Description("File to import"),
			mcp.Required(),
		),
		mcp.WithBoolean("replace",
			mcp.Description("Delete the existing links first (default false appends)"),
		),
	)
}

func importHandler(store ports.LinkStore, logger *zap.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}
		if dataset.KindOf(path) == dataset.KindSQLite {
			return toolError(fmt.Errorf("cannot import from a database: %s", path))
		}

		src, closeFn, err := dataset.Open(path, logger)
		if err != nil {
			return toolError(err)
		}
		defer closeFn()

		ds, err := src.Load()
		if err != nil {
			return toolError(err)
		}

		stats, err := commands.NewImportCommand(store, ds, req.GetBool("replace", false)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(fmt.Sprintf(
			"Imported %d links in %d categories (%d skipped)",
			stats.LinksWritten, stats.CategoriesWritten, stats.Skipped,
		)), nil
	}
}
