package cmd

import (
	"github.com/spf13/cobra"

	"github.com/auditgauge/auditgauge/core"
	"github.com/auditgauge/auditgauge/internal/contract"
	"github.com/auditgauge/auditgauge/internal/outwriter"
)

// reportCmd scores the latest snapshot and renders the full report.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Score the assessment and print the compliance report.",
	Long: `Score the latest saved responses against the questionnaire catalog and
print per-section totals, compliance bands and the overall score.

Scores come from three rule types:
- Binary questions award their full weight on "yes" and nothing on "no"
- Ordinal questions map a 0-4 judgment onto a configured base score table
- Checklist questions award an equal share of the weight per checked item

Unanswered questions always count as zero, so a partially completed
assessment still produces a well-defined report.

Examples:
  # Score the latest stored snapshot
  auditgauge report

  # Include per-question detail with checklist rows
  auditgauge report --detail

  # Score a specific snapshot file in Japanese
  auditgauge report --responses snapshot.json --locale ja

  # Export findings to CSV for tracking
  auditgauge report --output csv --output-file report.csv

  # Export question and section rows as Parquet
  auditgauge report --output parquet --output-file report.parquet`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		model, err := core.ExecuteReport(rootCtx, cfg, snapshotStore)
		if err != nil {
			contract.LogFatal("Cannot score assessment", err)
		}
		if err := outwriter.NewOutWriter().WriteReport(model, cfg); err != nil {
			contract.LogFatal("Cannot write report", err)
		}
	},
}
