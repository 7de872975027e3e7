package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"slugwatch/internal/slugcheck"
)

const Version = "0.1.0"

type CheckRequest struct {
	Languages string `json:"languages"` // comma-separated override, optional
}

type SearchRequest struct {
	Slug string `json:"slug"` // the slug value to look up
}

// NewServer creates an MCP server exposing duplicate detection and slug
// search as tools.
func NewServer(detector *slugcheck.Detector, cfg slugcheck.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Slugwatch MCP",
		Version,
		server.WithToolCapabilities(false),
	)

	checkTool := mcp.NewTool("find_duplicate_slugs",
		mcp.WithDescription("Scan the content repository for URL slugs shared by two or more distinct content entities"),
		mcp.WithString("languages",
			mcp.Description("Comma-separated language codes to scan (defaults to the configured set)"),
		),
	)
	s.AddTool(checkTool, mcp.NewTypedToolHandler(getCheckHandler(detector, cfg)))

	searchTool := mcp.NewTool("search_slug",
		mcp.WithDescription("Find every content entity currently using the given URL slug"),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("The slug value to look up"),
		),
	)
	s.AddTool(searchTool, mcp.NewTypedToolHandler(getSearchHandler(detector, cfg)))

	return s
}

func getCheckHandler(detector *slugcheck.Detector, cfg slugcheck.Config) func(ctx context.Context, request mcp.CallToolRequest, args CheckRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args CheckRequest) (*mcp.CallToolResult, error) {
		runCfg := cfg
		if s := strings.TrimSpace(args.Languages); s != "" {
			runCfg.Languages = strings.Split(s, ",")
		}

		res := detector.FindDuplicateSlugs(ctx, runCfg)
		if res.Error != "" {
			return mcp.NewToolResultError(fmt.Sprintf("detection failed: %s", res.Error)), nil
		}

		responseBytes, err := json.Marshal(res)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
		}
		return mcp.NewToolResultText(string(responseBytes)), nil
	}
}

func getSearchHandler(detector *slugcheck.Detector, cfg slugcheck.Config) func(ctx context.Context, request mcp.CallToolRequest, args SearchRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args SearchRequest) (*mcp.CallToolResult, error) {
		if strings.TrimSpace(args.Slug) == "" {
			return mcp.NewToolResultError("slug is required"), nil
		}

		res := detector.SearchSlug(ctx, cfg, args.Slug)
		if !res.Success {
			return mcp.NewToolResultError(fmt.Sprintf("search failed: %s", res.Error)), nil
		}

		responseBytes, err := json.Marshal(res)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
		}
		return mcp.NewToolResultText(string(responseBytes)), nil
	}
}
