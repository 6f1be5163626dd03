package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"linkdir/internal/application/commands"
	"linkdir/internal/domain"
	"linkdir/internal/ports"
)

// RegisterReadTools adds all read-only directory tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, src ports.LinkSource, engine domain.Engine, pageSize int) {
	s.AddTool(listLinksTool(), listLinksHandler(src, engine, pageSize))
	s.AddTool(listCategoriesTool(), listCategoriesHandler(src))
	s.AddTool(getLinkTool(), getLinkHandler(src))
}

// --- list_links ---

func listLinksTool() mcp.Tool {
	return mcp.NewTool("list_links",
		mcp.WithDescription("List directory links, filtered and sorted like the browser view. Returns one page unless more pages or all are requested."),
		mcp.WithString("query",
			mcp.Description("Case-insensitive text matched against name and description"),
		),
		mcp.WithString("categories",
			mcp.Description("Comma-separated category IDs. Omit to include every category."),
		),
		mcp.WithString("sort",
			mcp.Description("Sort order: name, date, category or rating (default name)"),
		),
		mcp.WithNumber("pages",
			mcp.Description("Number of pages to return (default 1)"),
		),
		mcp.WithBoolean("all",
			mcp.Description("Return every matching link"),
		),
	)
}

func listLinksHandler(src ports.LinkSource, engine domain.Engine, pageSize int) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filter := domain.DefaultFilter()
		filter.Query = req.GetString("query", "")
		filter.Categories = splitList(req.GetString("categories", ""))

		if raw := req.GetString("sort", ""); raw != "" {
			key, ok := domain.ParseSortKey(raw)
			if !ok {
				return toolError(fmt.Errorf("invalid sort %q (expected name, date, category or rating)", raw))
			}
			filter.Sort = key
		}

		cmd := commands.NewListLinksCommand(src, engine, pageSize, filter)
		cmd.Pages = req.GetInt("pages", 1)
		cmd.All = req.GetBool("all", false)

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(result.Links) == 0 {
			return mcp.NewToolResultText("No links found."), nil
		}

		var sb strings.Builder
		for _, l := range result.Links {
			sb.WriteString(formatLink(l))
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "\nShowing %d of %d", len(result.Links), result.Total)
		if result.HasMore {
			fmt.Fprintf(&sb, " (request pages=%d for more)", result.Pages+1)
		}
		sb.WriteByte('\n')
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_categories ---

func listCategoriesTool() mcp.Tool {
	return mcp.NewTool("list_categories",
		mcp.WithDescription("List categories with the number of links in each."),
	)
}

func listCategoriesHandler(src ports.LinkSource) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		categories, err := commands.NewListCategoriesCommand(src).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(categories, formatCategory)
	}
}

// --- get_link ---

func getLinkTool() mcp.Tool {
	return mcp.NewTool("get_link",
		mcp.WithDescription("Show every field of a link by its ID."),
		mcp.WithString("id",
			mcp.Description("Link ID"),
			mcp.Required(),
		),
	)
}

func getLinkHandler(src ports.LinkSource) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		link, err := commands.NewGetLinkCommand(src, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "ID:          %s\n", link.ID)
		fmt.Fprintf(&sb, "Name:        %s\n", link.Name)
		fmt.Fprintf(&sb, "URL:         %s\n", link.URL)
		fmt.Fprintf(&sb, "Category:    %s (%s)\n", link.CategoryName, link.CategoryID)
		fmt.Fprintf(&sb, "Rating:      %s\n", link.FormatRating())
		if !link.DateAdded.IsZero() {
			fmt.Fprintf(&sb, "Added:       %s\n", link.DateAdded.Format("2006-01-02"))
		}
		if link.Description != "" {
			fmt.Fprintf(&sb, "Description: %s\n", link.Description)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatLink(l domain.Link) string {
	return fmt.Sprintf("%s  %s  ⭐ %s  [%s]  %s", l.ID, l.Name, l.FormatRating(), l.CategoryName, l.URL)
}

func formatCategory(c commands.CategorySummary) string {
	return fmt.Sprintf("%s  %s  (%d)", c.ID, c.Name, c.Count)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
