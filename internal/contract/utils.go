package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Compliance band label constants, assigned by normalized percentage.
const (
	AdvancedValue    = "Advanced"    // near-complete compliance
	EstablishedValue = "Established" // solid, systematic compliance
	DevelopingValue  = "Developing"  // partial compliance
	InitialValue     = "Initial"     // little or no compliance
)

// Color variables for console output.
var (
	AdvancedColor    = color.New(color.FgGreen, color.Bold)
	EstablishedColor = color.New(color.FgCyan)
	DevelopingColor  = color.New(color.FgYellow)
	InitialColor     = color.New(color.FgRed)
)

// GetPlainBand returns the plain text compliance band for a normalized
// percentage. This is the core logic used for CSV, JSON and table printing.
func GetPlainBand(pct float64) string {
	switch {
	case pct >= 85:
		return AdvancedValue
	case pct >= 60:
		return EstablishedValue
	case pct >= 40:
		return DevelopingValue
	default:
		return InitialValue
	}
}

// GetColorBand returns a colored band label for console tables. It uses
// GetPlainBand to determine the string, then applies the matching color.
func GetColorBand(pct float64) string {
	text := GetPlainBand(pct)

	switch text {
	case AdvancedValue:
		return AdvancedColor.Sprint(text)
	case EstablishedValue:
		return EstablishedColor.Sprint(text)
	case DevelopingValue:
		return DevelopingColor.Sprint(text)
	default: // "Initial"
		return InitialColor.Sprint(text)
	}
}

// SelectOutputFile returns the file handle for output, falling back to
// stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateText shortens long cell text for table rendering, keeping the
// head of the string where question text is most distinctive.
func TruncateText(s string, maxWidth int) string {
	if maxWidth <= 3 || len([]rune(s)) <= maxWidth {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxWidth-3]) + "..."
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetStoreDBFilePath returns the default SQLite DB file for snapshots.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".auditgauge_snapshots.db"
	}
	return filepath.Join(homeDir, ".auditgauge_snapshots.db")
}
