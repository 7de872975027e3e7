package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"slugwatch/internal/slugcheck"
)

func TestNewServer(t *testing.T) {
	detector := slugcheck.NewDetector(nil)
	server := NewServer(detector, slugcheck.DefaultConfig())
	require.NotNil(t, server)
}

func TestSearchHandlerValidation(t *testing.T) {
	detector := slugcheck.NewDetector(nil)
	handler := getSearchHandler(detector, slugcheck.DefaultConfig())

	args := SearchRequest{Slug: ""}
	request := mcp.CallToolRequest{
		Request: mcp.Request{Method: "tools/call"},
		Params: mcp.CallToolParams{
			Name:      "search_slug",
			Arguments: args,
		},
	}

	result, err := handler(context.Background(), request, args)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.True(t, result.IsError)
}

func TestCheckHandlerConfigError(t *testing.T) {
	detector := slugcheck.NewDetector(nil)
	handler := getCheckHandler(detector, slugcheck.Config{ContentType: ""})

	args := CheckRequest{}
	request := mcp.CallToolRequest{
		Request: mcp.Request{Method: "tools/call"},
		Params: mcp.CallToolParams{
			Name:      "find_duplicate_slugs",
			Arguments: args,
		},
	}

	result, err := handler(context.Background(), request, args)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.True(t, result.IsError)
}

func TestCheckRequestMarshal(t *testing.T) {
	data, err := json.Marshal(CheckRequest{Languages: "en,de"})
	require.NoError(t, err)
	require.NotEmpty(t, data)
}
