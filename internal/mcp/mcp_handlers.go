package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/huangsam/gitintel/core"
	"github.com/huangsam/gitintel/internal/contract"
	"github.com/huangsam/gitintel/internal/iocache"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg  *contract.Config
	client   contract.GitClient
	resolver contract.IdentityResolver
	ml       contract.TextClassifier
}

// engineFor builds a per-request engine from the base config plus the
// request's repo_path, since, until, and limit overrides.
func (h *toolHandler) engineFor(ctx context.Context, request mcp.CallToolRequest) (*core.Engine, error) {
	cfg := h.baseCfg.Clone()

	if p := request.GetString("repo_path", ""); p != "" {
		root, err := h.client.GetRepoRoot(ctx, p)
		if err != nil {
			return nil, err
		}
		gitDir, err := h.client.GetGitDir(ctx, root)
		if err != nil {
			return nil, err
		}
		cfg.RepoPath = root
		cfg.GitDir = gitDir
	}

	now := time.Now().UTC()
	if s := request.GetString("since", ""); s != "" {
		since, err := contract.ParseDateBound(s, now, false)
		if err != nil {
			return nil, fmt.Errorf("invalid since: %w", err)
		}
		cfg.Since = &since
	}
	if u := request.GetString("until", ""); u != "" {
		until, err := contract.ParseDateBound(u, now, true)
		if err != nil {
			return nil, fmt.Errorf("invalid until: %w", err)
		}
		cfg.Until = &until
	}
	if err := contract.ValidateRange(cfg.Since, cfg.Until); err != nil {
		return nil, err
	}

	if l := request.GetInt("limit", 0); l > 0 && l <= contract.MaxResultLimit {
		cfg.ResultLimit = l
		cfg.LimitExplicit = true
	}

	return &core.Engine{
		Client:   h.client,
		Resolver: h.resolver,
		ML:       h.ml,
		Cache:    iocache.NewFileCache(h.client, cfg.RepoPath, cfg.GitDir),
		Cfg:      cfg,
	}, nil
}

func (h *toolHandler) handleGetCommitMetrics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	engine, err := h.engineFor(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	result, err := engine.RunMetrics(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetFileChurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	engine, err := h.engineFor(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	result, err := engine.RunChurn(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetPatterns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	engine, err := h.engineFor(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	result, err := engine.RunPatterns(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetTrends(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	engine, err := h.engineFor(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	if n := request.GetInt("windows", 0); n >= 2 {
		engine.Cfg.TrendWindows = n
	}
	if d := request.GetInt("window_days", 0); d >= 1 {
		engine.Cfg.TrendWindowDays = d
	}

	result, err := engine.RunTrends(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("trend analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
