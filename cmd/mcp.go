package cmd

import (
	"github.com/spf13/cobra"

	"github.com/auditgauge/auditgauge/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the AuditGauge MCP server",
	Long:  `Launch an MCP server that allows AI agents to score assessments and inspect section results via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Stdout carries the protocol in MCP mode, so setup must not print
		// anything there.
		return storeSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, snapshotStore)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
