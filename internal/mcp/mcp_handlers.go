package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/commitlens/commitlens/core"
	"github.com/commitlens/commitlens/internal/contract"
	"github.com/commitlens/commitlens/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

// applyCommonParams copies the shared request parameters onto a cloned config.
func (h *toolHandler) applyCommonParams(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	if b := request.GetString("branch", ""); b != "" {
		cfg.Branch = b
	}

	now := time.Now().In(cfg.Location)
	if s := request.GetString("since", ""); s != "" {
		t, err := contract.ParseDateInput(s, now, cfg.Location)
		if err != nil {
			return nil, fmt.Errorf("invalid since: %w", err)
		}
		cfg.StartTime = t
	}
	if u := request.GetString("until", ""); u != "" {
		t, err := contract.ParseDateInput(u, now, cfg.Location)
		if err != nil {
			return nil, fmt.Errorf("invalid until: %w", err)
		}
		cfg.EndTime = t
	}
	return cfg, nil
}

func (h *toolHandler) handleGetContributorSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.applyCommonParams(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid summary parameters: %v", err)), nil
	}

	// Directives use commas internally, so multiple directives are
	// separated by semicolons here.
	if m := request.GetString("merge", ""); m != "" {
		for d := range strings.SplitSeq(m, ";") {
			if d = strings.TrimSpace(d); d != "" {
				cfg.MergeDirectives = append(cfg.MergeDirectives, d)
			}
		}
	}

	view, err := core.BuildReportView(ctx, cfg, contract.NewLocalGitClient(), h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("summary failed: %v", err)), nil
	}

	payload := struct {
		Summary []schema.SummaryRow `json:"summary"`
		Total   schema.SummaryRow   `json:"total"`
	}{view.Summary, view.Total}
	jsonData, _ := json.MarshalIndent(payload, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetActivityTimeseries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.applyCommonParams(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid timeseries parameters: %v", err)), nil
	}

	g := schema.Granularity(request.GetString("granularity", string(schema.WeekBucket)))
	if _, ok := schema.ValidGranularities[g]; !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid granularity: %s", g)), nil
	}

	view, err := core.BuildReportView(ctx, cfg, contract.NewLocalGitClient(), h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("timeseries failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(view.Series[g], "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
