package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/auditgauge/auditgauge/core"
)

// validateCmd checks the catalog and weight configuration.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the questionnaire catalog and weight configuration.",
	Long: `Check the catalog and weight documents without scoring anything.

Reports every problem found in one pass:
- Sections or questions missing weight entries
- Question weights that do not sum to their section's weight
- Negative weights and base scores outside the 0-100 range
- Unknown question type codes and missing required fields

Exits non-zero when any problem is found, which makes this suitable as a
CI gate for configuration changes.

Examples:
  # Validate the default documents
  auditgauge validate

  # Validate a proposed weights change
  auditgauge validate --weights new_weights.yaml`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := core.ExecuteValidate(cfg); err != nil {
			return err
		}
		fmt.Println("Configuration is valid.")
		return nil
	},
}
