package outwriter

import (
	"io"

	"github.com/auditgauge/auditgauge/internal/contract"
	"github.com/auditgauge/auditgauge/schema"
)

// WriteSnapshotJSON prints a snapshot as indented JSON, to stdout or the
// configured output file. The output round-trips through the snapshot save
// command.
func WriteSnapshotJSON(snap *schema.Snapshot, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, snap)
	}, "Wrote JSON")
}
