// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/commitlens/commitlens/internal/contract"
)

// NewMCPServer initializes and configures the commitlens MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Commitlens Statistics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_contributor_summary ---
	s.AddTool(mcp.NewTool("get_contributor_summary",
		mcp.WithDescription("Summarize git history per contributor: commits, lines added, lines deleted."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to current directory if not specified).")),
		mcp.WithString("branch", mcp.Description("Branch to analyze. Defaults to the checked-out branch.")),
		mcp.WithString("since", mcp.Description("Lower date bound (ISO date, RFC3339, or 'N units ago').")),
		mcp.WithString("until", mcp.Description("Upper date bound (ISO date, RFC3339, or 'N units ago').")),
		mcp.WithString("merge", mcp.Description("Alias directives like 'a,b=>canonical', separated by semicolons.")),
	), h.handleGetContributorSummary)

	// --- 2. Tool: get_activity_timeseries ---
	s.AddTool(mcp.NewTool("get_activity_timeseries",
		mcp.WithDescription("Report per-contributor commit counts bucketed over calendar time."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithString("branch", mcp.Description("Branch to analyze.")),
		mcp.WithString("granularity", mcp.Description("Bucket granularity."), mcp.Enum("day", "3days", "week", "month", "year")),
		mcp.WithString("since", mcp.Description("Lower date bound (ISO date, RFC3339, or 'N units ago').")),
		mcp.WithString("until", mcp.Description("Upper date bound (ISO date, RFC3339, or 'N units ago').")),
	), h.handleGetActivityTimeseries)

	return s
}

// StartMCPServer starts the commitlens MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
