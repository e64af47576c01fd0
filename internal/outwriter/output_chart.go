package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/auditgauge/auditgauge/internal/contract"
	"github.com/auditgauge/auditgauge/schema"
)

// chartDataset is the JSON shape of the radar chart series.
type chartDataset struct {
	Locale string    `json:"locale"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"` // Normalized 0-100, catalog order
}

// WriteChartResults outputs the radar chart dataset: one normalized
// percentage per section, in catalog order.
func WriteChartResults(model *schema.ReportModel, cfg *contract.Config) error {
	labels, values := model.ChartSeries()
	fmtFloat := createFloatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, chartDataset{Locale: model.Locale, Labels: labels, Values: values})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChartCSV(w, labels, values, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for charts; use the report command")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChartText(w, labels, values, fmtFloat)
		}, "Wrote chart")
	}
}

// writeChartCSV writes one label/value row per section.
func writeChartCSV(w io.Writer, labels []string, values []float64, fmtFloat func(float64) string) error {
	return writeCSVWithHeader(w, []string{"section", "pct"}, func(csvWriter *csv.Writer) error {
		for i, label := range labels {
			if err := csvWriter.Write([]string{label, fmtFloat(values[i])}); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

// writeChartText renders a simple horizontal bar per section, which reads
// as a flattened radar chart on a terminal.
func writeChartText(w io.Writer, labels []string, values []float64, fmtFloat func(float64) string) error {
	labelWidth := 0
	for _, label := range labels {
		if n := len([]rune(label)); n > labelWidth {
			labelWidth = n
		}
	}
	for i, label := range labels {
		bar := strings.Repeat("#", int(values[i]/2+0.5)) // 50 chars = 100%
		if _, err := fmt.Fprintf(w, "%-*s %6s%% |%s\n", labelWidth, label, fmtFloat(values[i]), bar); err != nil {
			return err
		}
	}
	return nil
}
