// main is the entry point for the auditgauge CLI.
package main

import (
	"os"

	"github.com/auditgauge/auditgauge/cmd"
	"github.com/auditgauge/auditgauge/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogWarn("command failed", err)
		os.Exit(1)
	}
}
