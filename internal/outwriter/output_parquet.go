package outwriter

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/auditgauge/auditgauge/internal/contract"
	"github.com/auditgauge/auditgauge/schema"
)

// QuestionRow is the per-question Parquet record.
type QuestionRow struct {
	// SectionID is the owning section identifier
	SectionID string `parquet:"section_id,snappy"`

	// SectionName is the localized section name
	SectionName string `parquet:"section_name,snappy"`

	// QuestionID is the question identifier within the section
	QuestionID string `parquet:"question_id,snappy"`

	// QuestionType is the scoring rule code (XO, PJ or PW)
	QuestionType string `parquet:"question_type,snappy"`

	// Description is the localized question text
	Description string `parquet:"description,snappy"`

	// Weight is the question's configured maximum points
	Weight float64 `parquet:"weight,snappy"`

	// Points is the awarded score
	Points float64 `parquet:"points,snappy"`

	// Answered reports whether any response was stored
	Answered bool `parquet:"answered,snappy"`
}

// SectionRow is the per-section Parquet record.
type SectionRow struct {
	// SectionID is the section identifier
	SectionID string `parquet:"section_id,snappy"`

	// SectionName is the localized section name
	SectionName string `parquet:"section_name,snappy"`

	// Total is the summed question points
	Total float64 `parquet:"total,snappy"`

	// NominalMax is the section's configured weight
	NominalMax float64 `parquet:"nominal_max,snappy"`

	// NormalizedPct is the 0-100 chart value
	NormalizedPct float64 `parquet:"normalized_pct,snappy"`
}

// writeReportParquet exports the report as two Parquet files, one with
// question rows and one with section rows. An explicit output file is
// required because Parquet is not a stream-to-stdout format.
func writeReportParquet(model *schema.ReportModel, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for parquet output")
	}
	base := strings.TrimSuffix(cfg.OutputFile, ".parquet")

	questionRows, sectionRows := convertReportRows(model)

	questionsFile := base + "_questions.parquet"
	if err := writeParquetFile(questionsFile, questionRows); err != nil {
		return fmt.Errorf("failed to write question rows: %w", err)
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote %d question rows to %s\n", len(questionRows), questionsFile)

	sectionsFile := base + "_sections.parquet"
	if err := writeParquetFile(sectionsFile, sectionRows); err != nil {
		return fmt.Errorf("failed to write section rows: %w", err)
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote %d section rows to %s\n", len(sectionRows), sectionsFile)
	return nil
}

// convertReportRows flattens the report model into Parquet records.
func convertReportRows(model *schema.ReportModel) ([]QuestionRow, []SectionRow) {
	var questionRows []QuestionRow
	sectionRows := make([]SectionRow, 0, len(model.Sections))

	for i := range model.Sections {
		sec := &model.Sections[i]
		sectionRows = append(sectionRows, SectionRow{
			SectionID:     sec.SectionID,
			SectionName:   sec.Name,
			Total:         sec.Total,
			NominalMax:    sec.NominalMax,
			NormalizedPct: sec.NormalizedPct,
		})
		for j := range sec.Questions {
			q := &sec.Questions[j]
			questionRows = append(questionRows, QuestionRow{
				SectionID:    sec.SectionID,
				SectionName:  sec.Name,
				QuestionID:   q.QuestionID,
				QuestionType: string(q.Kind),
				Description:  q.Description,
				Weight:       q.Weight,
				Points:       q.Points,
				Answered:     q.Answered,
			})
		}
	}
	return questionRows, sectionRows
}

// writeParquetFile writes records to a Parquet file using struct schema
// inference from the row type's tags.
func writeParquetFile[T any](outputPath string, rows []T) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
