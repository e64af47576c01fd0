package cmd

import (
	"github.com/spf13/cobra"

	"github.com/auditgauge/auditgauge/core"
	"github.com/auditgauge/auditgauge/internal/contract"
	"github.com/auditgauge/auditgauge/internal/outwriter"
)

// chartCmd scores the latest snapshot and renders the radar chart dataset.
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Print the radar chart dataset of section percentages.",
	Long: `Score the latest saved responses and print one normalized percentage
per section, in catalog order.

Percentages are section total over section weight on a 0-100 scale. A
section at its exact maximum always reads 100, so a fully compliant
assessment renders a closed radar outline regardless of floating-point
rounding.

Examples:
  # Print bars on the terminal
  auditgauge chart

  # Feed a plotting tool with CSV
  auditgauge chart --output csv --output-file radar.csv

  # JSON labels and values for a web frontend
  auditgauge chart --output json`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		model, err := core.ExecuteReport(rootCtx, cfg, snapshotStore)
		if err != nil {
			contract.LogFatal("Cannot score assessment", err)
		}
		if err := outwriter.NewOutWriter().WriteChart(model, cfg); err != nil {
			contract.LogFatal("Cannot write chart", err)
		}
	},
}
