package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/auditgauge/auditgauge/internal/contract"
	"github.com/auditgauge/auditgauge/schema"
)

// WriteReportResults outputs the assessment report, dispatching on the
// configured output format.
func WriteReportResults(model *schema.ReportModel, cfg *contract.Config) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, model)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportCSV(w, model, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeReportParquet(model, cfg)
	default:
		// Default to human-readable tables
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTables(w, model, cfg, fmtFloat)
		}, "Wrote report")
	}
}

// writeReportTables renders the section summary table, optionally followed
// by per-section question detail.
func writeReportTables(w io.Writer, model *schema.ReportModel, cfg *contract.Config, fmtFloat func(float64) string) error {
	if err := writeSummaryTable(w, model, cfg, fmtFloat); err != nil {
		return err
	}
	if !cfg.Detail {
		return nil
	}
	for i := range model.Sections {
		if err := writeSectionDetail(w, &model.Sections[i], cfg, fmtFloat); err != nil {
			return err
		}
	}
	return nil
}

// writeSummaryTable renders one row per section plus the overall line.
func writeSummaryTable(w io.Writer, model *schema.ReportModel, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Section", "Score", "Max", "Pct", "Band"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	band := contract.GetPlainBand
	if cfg.UseColors {
		band = contract.GetColorBand
	}

	var data [][]string
	for i := range model.Sections {
		sec := &model.Sections[i]
		data = append(data, []string{
			contract.TruncateText(sec.Name, getMaxTableTextWidth(cfg)),
			fmtFloat(sec.Total),
			fmtFloat(sec.NominalMax),
			fmtFloat(sec.NormalizedPct),
			band(sec.NormalizedPct),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Overall: %s / %s\n", fmtFloat(model.Overall), fmtFloat(model.NominalMax))
	return err
}

// writeSectionDetail renders the per-question table for one section,
// including checklist rows for answered-count questions.
func writeSectionDetail(w io.Writer, sec *schema.SectionReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	if _, err := fmt.Fprintf(w, "\n%s (%s / %s)\n", sec.Name, fmtFloat(sec.Total), fmtFloat(sec.NominalMax)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "Type", "Question", "Weight", "Points", "Answered"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxText := getMaxTableTextWidth(cfg)
	var data [][]string
	for i := range sec.Questions {
		q := &sec.Questions[i]
		data = append(data, []string{
			q.QuestionID,
			string(q.Kind),
			contract.TruncateText(q.Description, maxText),
			fmtFloat(q.Weight),
			fmtFloat(q.Points),
			strconv.FormatBool(q.Answered),
		})
		for _, sub := range q.SubAnswers {
			mark := " "
			if sub.Checked {
				mark = "x"
			}
			data = append(data, []string{
				fmt.Sprintf("%s.%d", q.QuestionID, sub.Index),
				"[" + mark + "]",
				contract.TruncateText(sub.Label, maxText),
				"",
				fmtFloat(sub.Points),
				"",
			})
		}
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeReportCSV writes one flat row per question.
func writeReportCSV(w io.Writer, model *schema.ReportModel, fmtFloat func(float64) string) error {
	header := []string{"section_id", "section_name", "question_id", "type", "description", "weight", "points", "answered", "section_total", "section_pct"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i := range model.Sections {
			sec := &model.Sections[i]
			for j := range sec.Questions {
				q := &sec.Questions[j]
				row := []string{
					sec.SectionID,
					sec.Name,
					q.QuestionID,
					string(q.Kind),
					q.Description,
					fmtFloat(q.Weight),
					fmtFloat(q.Points),
					strconv.FormatBool(q.Answered),
					fmtFloat(sec.Total),
					fmtFloat(sec.NormalizedPct),
				}
				if err := csvWriter.Write(row); err != nil {
					return fmt.Errorf("failed to write CSV row: %w", err)
				}
			}
		}
		return nil
	})
}
