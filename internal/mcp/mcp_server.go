// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/gitintel/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Gitintel MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient, resolver contract.IdentityResolver, ml contract.TextClassifier) *server.MCPServer {
	s := server.NewMCPServer(
		"Gitintel Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg:  baseCfg,
		client:   client,
		resolver: resolver,
		ml:       ml,
	}

	// --- 1. Tool: get_commit_metrics ---
	s.AddTool(mcp.NewTool("get_commit_metrics",
		mcp.WithDescription("Classify git commit history and summarize commit types, daily activity, velocity, and ticket references."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to current directory if not specified).")),
		mcp.WithString("since", mcp.Description("Inclusive lower date bound (YYYY-MM-DD or a relative span like 30d, 4w, 6m, 1y).")),
		mcp.WithString("until", mcp.Description("Inclusive upper date bound (YYYY-MM-DD or a relative span).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned per section.")),
	), h.handleGetCommitMetrics)

	// --- 2. Tool: get_file_churn ---
	s.AddTool(mcp.NewTool("get_file_churn",
		mcp.WithDescription("Rank files by total churn (lines added plus deleted) across the analyzed history range."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithString("since", mcp.Description("Inclusive lower date bound.")),
		mcp.WithString("until", mcp.Description("Inclusive upper date bound.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of files returned.")),
	), h.handleGetFileChurn)

	// --- 3. Tool: get_patterns ---
	s.AddTool(mcp.NewTool("get_patterns",
		mcp.WithDescription("Detect fix-after-feature links, multi-edit chains, temporal clusters, and file size convergence in git history."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithString("since", mcp.Description("Inclusive lower date bound.")),
		mcp.WithString("until", mcp.Description("Inclusive upper date bound.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned per detector.")),
	), h.handleGetPatterns)

	// --- 4. Tool: get_trends ---
	s.AddTool(mcp.NewTool("get_trends",
		mcp.WithDescription("Compare commit activity across trailing time windows and report commit and fix-rate trends."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithNumber("windows", mcp.Description("Number of trailing windows to compare (minimum 2).")),
		mcp.WithNumber("window_days", mcp.Description("Size of each window in days.")),
	), h.handleGetTrends)

	return s
}

// StartMCPServer starts the Gitintel MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitClient, resolver contract.IdentityResolver, ml contract.TextClassifier) error {
	s := NewMCPServer(baseCfg, client, resolver, ml)
	return server.ServeStdio(s)
}
