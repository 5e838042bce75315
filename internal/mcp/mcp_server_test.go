package mcp_test

import (
	"context"
	"testing"

	"github.com/huangsam/gitintel/internal/contract"
	mcp_internal "github.com/huangsam/gitintel/internal/mcp"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{
		RepoPath:    ".",
		ResultLimit: 10,
	}

	// The mock never gets called because validation fails first
	client := new(contract.MockGitClient)
	s := mcp_internal.NewMCPServer(baseCfg, client, contract.PassthroughResolver{}, nil)

	ctx := context.Background()

	callWith := func(t *testing.T, name string, args map[string]any) *mcp.CallToolResult {
		t.Helper()
		tool := s.GetTool(name)
		require.NotNil(t, tool, "Tool %s should exist", name)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      name,
				Arguments: args,
			},
		}
		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		return res
	}

	t.Run("get_commit_metrics invalid since", func(t *testing.T) {
		res := callWith(t, "get_commit_metrics", map[string]any{
			"since": "last tuesday",
		})
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid parameters")
	})

	t.Run("get_file_churn invalid until", func(t *testing.T) {
		res := callWith(t, "get_file_churn", map[string]any{
			"until": "not-a-date",
		})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid until")
	})

	t.Run("get_patterns inverted range", func(t *testing.T) {
		res := callWith(t, "get_patterns", map[string]any{
			"since": "2026-02-01",
			"until": "2026-01-01",
		})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "range is empty")
	})

	t.Run("get_trends inverted range", func(t *testing.T) {
		res := callWith(t, "get_trends", map[string]any{
			"since": "2026-02-01",
			"until": "2026-01-01",
		})
		assert.True(t, res.IsError)
	})
}

func TestMCPServerToolRegistration(t *testing.T) {
	baseCfg := &contract.Config{RepoPath: ".", ResultLimit: 10}
	s := mcp_internal.NewMCPServer(baseCfg, new(contract.MockGitClient), contract.PassthroughResolver{}, nil)

	for _, name := range []string{"get_commit_metrics", "get_file_churn", "get_patterns", "get_trends"} {
		assert.NotNil(t, s.GetTool(name), "Tool %s should exist", name)
	}
}
