// Package cmd defines the command-line interface for auditgauge.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/auditgauge/auditgauge/internal/contract"
	"github.com/auditgauge/auditgauge/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the snapshot subcommands to the parent snapshot command
	snapshotCmd.AddCommand(snapshotSaveCmd)
	snapshotCmd.AddCommand(snapshotLoadCmd)
	snapshotCmd.AddCommand(snapshotStatusCmd)
	snapshotCmd.AddCommand(snapshotClearCmd)
	snapshotCmd.AddCommand(snapshotMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringSlice("catalog", []string{contract.DefaultCatalogDoc}, "Catalog document as 'locale=path' or 'path' (repeatable for extra locales)")
	rootCmd.PersistentFlags().String("weights", contract.DefaultWeightsPath, "Path to the weight configuration document")
	rootCmd.PersistentFlags().String("locale", contract.DefaultLocale, "Locale for section and question text")
	rootCmd.PersistentFlags().String("fallback-locale", schema.DefaultFallbackLocale, "Locale used when text is missing in the requested locale")
	rootCmd.PersistentFlags().String("responses", "", "Path to a snapshot JSON file to score instead of the latest stored snapshot")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Bool("detail", false, "Print per-question rows, including checklist items")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored band labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Bool("lenient", false, "Downgrade weight configuration problems to warnings")
	rootCmd.PersistentFlags().String("on-invalid", string(schema.InvalidZero), "Invalid response policy: zero or fail")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Snapshot store backend: sqlite, mysql, postgresql, mongo or memory")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Connection string for mysql/postgresql/mongo backends")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of snapshotMigrateCmd to Viper
	snapshotMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(snapshotMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding snapshot migrate flags", err)
	}
}
