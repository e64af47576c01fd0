package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/auditgauge/auditgauge/core"
	"github.com/auditgauge/auditgauge/internal/contract"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   contract.SnapshotStore
}

func (h *toolHandler) handleGetReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if l := request.GetString("locale", ""); l != "" {
		cfg.Locale = l
	}
	if p := request.GetString("responses_file", ""); p != "" {
		cfg.ResponsesFile = p
	}
	cfg.Lenient = request.GetBool("lenient", cfg.Lenient)

	model, err := core.ExecuteReport(ctx, cfg, h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(model, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSectionScores(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if l := request.GetString("locale", ""); l != "" {
		cfg.Locale = l
	}
	if p := request.GetString("responses_file", ""); p != "" {
		cfg.ResponsesFile = p
	}

	model, err := core.ExecuteReport(ctx, cfg, h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	labels, values := model.ChartSeries()
	dataset := struct {
		Locale string    `json:"locale"`
		Labels []string  `json:"labels"`
		Values []float64 `json:"values"`
	}{Locale: model.Locale, Labels: labels, Values: values}

	jsonData, _ := json.MarshalIndent(dataset, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleValidateConfig(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := core.ExecuteValidate(h.baseCfg.Clone()); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText("Configuration is valid."), nil
}
