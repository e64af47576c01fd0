// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/auditgauge/auditgauge/internal/contract"
)

// NewMCPServer initializes and configures the AuditGauge MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, store contract.SnapshotStore) *server.MCPServer {
	s := server.NewMCPServer(
		"AuditGauge Assessment Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   store,
	}

	// --- 1. Tool: get_report ---
	s.AddTool(mcp.NewTool("get_report",
		mcp.WithDescription("Score the latest assessment snapshot and return the full report: per-question points, section totals and the overall score."),
		mcp.WithString("locale", mcp.Description("Locale for section and question text (defaults to the configured locale).")),
		mcp.WithString("responses_file", mcp.Description("Path to a snapshot JSON file to score instead of the latest stored snapshot.")),
		mcp.WithBoolean("lenient", mcp.Description("Downgrade weight configuration problems to warnings.")),
	), h.handleGetReport)

	// --- 2. Tool: get_section_scores ---
	s.AddTool(mcp.NewTool("get_section_scores",
		mcp.WithDescription("Score the latest assessment snapshot and return the radar chart dataset: section names with normalized 0-100 percentages."),
		mcp.WithString("locale", mcp.Description("Locale for section names.")),
		mcp.WithString("responses_file", mcp.Description("Path to a snapshot JSON file to score instead of the latest stored snapshot.")),
	), h.handleGetSectionScores)

	// --- 3. Tool: validate_config ---
	s.AddTool(mcp.NewTool("validate_config",
		mcp.WithDescription("Validate the questionnaire catalog and weight configuration, reporting every problem found."),
	), h.handleValidateConfig)

	return s
}

// StartMCPServer starts the AuditGauge MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, store contract.SnapshotStore) error {
	s := NewMCPServer(baseCfg, store)
	return server.ServeStdio(s)
}
