package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/auditgauge/auditgauge/core"
	"github.com/auditgauge/auditgauge/internal/outwriter"
	"github.com/auditgauge/auditgauge/internal/snapstore"
)

// snapshotCmd groups snapshot store management commands.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage stored response snapshots",
	Long: `Manage the snapshot store that holds saved questionnaire responses.

The store is append-only: saving never rewrites history, and loading
always returns the most recent snapshot. Supported backends: SQLite
(default), MySQL, PostgreSQL, MongoDB, or an in-process memory store.

Subcommands:
  save    - Append a snapshot from a responses JSON file
  load    - Print the latest stored snapshot as JSON
  status  - Show store statistics and connection info
  clear   - Remove all stored snapshots
  migrate - Run schema migrations for relational backends

Examples:
  # Check store status
  auditgauge snapshot status

  # Save today's responses
  auditgauge snapshot save --responses answers.json`,
}

// snapshotSaveCmd appends a snapshot from a responses file.
var snapshotSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Append a snapshot from a responses JSON file",
	Long: `Read a responses JSON file and append it to the snapshot store.

The file carries the flattened response maps:
  {"responses": {"leadership_q1": 4}, "sub_responses": {"planning_q1_sub_1": true}}

A missing timestamp is stamped with the current time, so re-saving the
same file later creates a newer snapshot rather than overwriting.

Examples:
  # Save responses to the default SQLite store
  auditgauge snapshot save --responses answers.json

  # Save to MySQL (set connection string via env variable)
  AUDITGAUGE_STORE_BACKEND=mysql AUDITGAUGE_STORE_DB_CONNECT="..." auditgauge snapshot save --responses answers.json`,
	PreRunE: storeSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		if cfg.ResponsesFile == "" {
			return fmt.Errorf("--responses is required for snapshot save")
		}
		snap, err := core.ReadSnapshotFile(cfg.ResponsesFile)
		if err != nil {
			return err
		}
		if snap.Timestamp.IsZero() {
			snap.Timestamp = time.Now().UTC()
		}
		if err := snapshotStore.Save(rootCtx, snap); err != nil {
			return err
		}
		fmt.Printf("Saved snapshot with %d responses and %d checklist answers.\n",
			len(snap.Responses), len(snap.SubResponses))
		return nil
	},
}

// snapshotLoadCmd prints the latest stored snapshot.
var snapshotLoadCmd = &cobra.Command{
	Use:   "load",
	Short: "Print the latest stored snapshot as JSON",
	Long: `Load the most recent snapshot from the store and print it as JSON.

The output is accepted back by 'snapshot save --responses' and by the
report and chart commands via --responses, so it doubles as an export
format.

Examples:
  # Inspect the latest snapshot
  auditgauge snapshot load

  # Export to a file
  auditgauge snapshot load --output-file latest.json`,
	PreRunE: storeSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		snap, err := snapshotStore.LoadLatest(rootCtx)
		if err != nil {
			return err
		}
		return outwriter.WriteSnapshotJSON(snap, cfg)
	},
}

// snapshotStatusCmd shows store status.
var snapshotStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display snapshot store statistics and connection details",
	Long: `Show detailed information about the snapshot store.

Displays:
- Backend type and connection status
- Total number of stored snapshots
- Latest and oldest snapshot timestamps

Examples:
  # Check store status
  auditgauge snapshot status`,
	PreRunE: storeSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		status, err := snapshotStore.Status(rootCtx)
		if err != nil {
			return err
		}
		snapstore.PrintStatus(status)
		return nil
	},
}

// snapshotClearCmd clears the store.
var snapshotClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored snapshots",
	Long: `Delete every snapshot from the configured backend.

Use this when starting a fresh assessment cycle or cleaning up a test
store. History cannot be recovered afterwards.

Examples:
  # Clear the default SQLite store
  auditgauge snapshot clear`,
	PreRunE: storeSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := snapshotStore.Clear(rootCtx); err != nil {
			return err
		}
		fmt.Println("Snapshot store cleared successfully.")
		return nil
	},
}

// snapshotMigrateCmd runs schema migrations.
var snapshotMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run snapshot store schema migrations",
	Long: `Run schema migrations for relational snapshot store backends.

Target versions:
  -1 migrates to the latest version (default)
   0 rolls back all migrations
   N migrates to the specified version

Examples:
  # Migrate the default SQLite store to the latest schema
  auditgauge snapshot migrate

  # Roll back everything
  auditgauge snapshot migrate --target-version 0`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return snapstore.Migrate(cfg.StoreBackend, cfg.StoreConnect, viper.GetInt("target-version"))
	},
}
