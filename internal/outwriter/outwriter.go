// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"golang.org/x/term"

	"github.com/auditgauge/auditgauge/internal/contract"
	"github.com/auditgauge/auditgauge/schema"
)

// OutWriter provides a unified interface for all output operations. It
// encapsulates the various output formats behind the ReportModel contract.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints the assessment report using the configured output format.
func (ow *OutWriter) WriteReport(model *schema.ReportModel, cfg *contract.Config) error {
	return WriteReportResults(model, cfg)
}

// WriteChart prints the radar chart dataset using the configured output format.
func (ow *OutWriter) WriteChart(model *schema.ReportModel, cfg *contract.Config) error {
	return WriteChartResults(model, cfg)
}

// getMaxTableTextWidth calculates the maximum width for description cells in
// table output based on terminal width and table configuration.
func getMaxTableTextWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the ID, Type, Weight, Points and Answered columns
	// with borders and padding.
	baseWidth := 45

	available := termWidth - baseWidth
	if available < 20 {
		return 20
	}
	if available > 80 {
		return 80
	}
	return available
}
