package outwriter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditgauge/auditgauge/internal/contract"
	"github.com/auditgauge/auditgauge/schema"
)

func sampleModel() *schema.ReportModel {
	return &schema.ReportModel{
		Locale:     "en",
		Overall:    80,
		NominalMax: 100,
		Sections: []schema.SectionReport{
			{
				SectionID:     "leadership",
				Name:          "Leadership",
				Total:         50,
				NominalMax:    70,
				NormalizedPct: 71.42857142857143,
				Questions: []schema.QuestionRecord{
					{QuestionID: "q1", Kind: schema.KindXO, Description: "Policy exists.",
						Weight: 20, Points: 20, Answered: true, Response: schema.ResponseYes},
					{QuestionID: "q3", Kind: schema.KindPW, Description: "Reviews are held.",
						Weight: 30, Points: 20, Answered: true,
						SubAnswers: []schema.SubAnswer{
							{Index: 1, Label: "Agenda recorded", Checked: true, Points: 10},
							{Index: 2, Label: "Actions tracked", Checked: false},
							{Index: 3, Label: "Minutes kept", Checked: true, Points: 10},
						}},
				},
			},
			{
				SectionID:     "planning",
				Name:          "Planning",
				Total:         30,
				NominalMax:    30,
				NormalizedPct: 100,
				Questions: []schema.QuestionRecord{
					{QuestionID: "q1", Kind: schema.KindPJ, Description: "Objectives are set.",
						Weight: 30, Points: 30, Answered: true, Response: 4},
				},
			},
		},
	}
}

func testConfig() *contract.Config {
	return &contract.Config{
		Output:    schema.TextOut,
		Precision: 1,
		Width:     120,
	}
}

func TestWriteReportCSV(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat := createFloatFormatter(1)
	require.NoError(t, writeReportCSV(&buf, sampleModel(), fmtFloat))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4) // header + 3 questions
	assert.Equal(t, "section_id,section_name,question_id,type,description,weight,points,answered,section_total,section_pct", lines[0])
	assert.Equal(t, "leadership,Leadership,q1,XO,Policy exists.,20.0,20.0,true,50.0,71.4", lines[1])
	assert.Equal(t, "planning,Planning,q1,PJ,Objectives are set.,30.0,30.0,true,30.0,100.0", lines[3])
}

func TestWriteReportCSVDeterministic(t *testing.T) {
	fmtFloat := createFloatFormatter(2)
	var first, second bytes.Buffer
	require.NoError(t, writeReportCSV(&first, sampleModel(), fmtFloat))
	require.NoError(t, writeReportCSV(&second, sampleModel(), fmtFloat))
	assert.Equal(t, first.String(), second.String())
}

func TestWriteReportJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	model := sampleModel()
	require.NoError(t, writeJSON(&buf, model))

	var decoded schema.ReportModel
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *model, decoded)
}

func TestWriteSummaryTable(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig()
	require.NoError(t, writeSummaryTable(&buf, sampleModel(), cfg, createFloatFormatter(cfg.Precision)))

	out := buf.String()
	assert.Contains(t, out, "Leadership")
	assert.Contains(t, out, "Established") // 71.4 pct
	assert.Contains(t, out, "Advanced")    // 100 pct
	assert.Contains(t, out, "Overall: 80.0 / 100.0")
}

func TestWriteSectionDetailShowsChecklist(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig()
	model := sampleModel()
	require.NoError(t, writeSectionDetail(&buf, &model.Sections[0], cfg, createFloatFormatter(cfg.Precision)))

	out := buf.String()
	assert.Contains(t, out, "q3.1")
	assert.Contains(t, out, "Agenda recorded")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "[ ]")
}

func TestWriteChartCSV(t *testing.T) {
	model := sampleModel()
	labels, values := model.ChartSeries()

	var buf bytes.Buffer
	require.NoError(t, writeChartCSV(&buf, labels, values, createFloatFormatter(1)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "section,pct", lines[0])
	assert.Equal(t, "Leadership,71.4", lines[1])
	assert.Equal(t, "Planning,100.0", lines[2])
}

func TestWriteChartText(t *testing.T) {
	model := sampleModel()
	labels, values := model.ChartSeries()

	var buf bytes.Buffer
	require.NoError(t, writeChartText(&buf, labels, values, createFloatFormatter(1)))

	out := buf.String()
	assert.Contains(t, out, "Leadership")
	assert.Contains(t, out, "100.0%")
	// Full-score bar renders 50 marks.
	assert.Contains(t, out, strings.Repeat("#", 50))
}

func TestConvertReportRows(t *testing.T) {
	questionRows, sectionRows := convertReportRows(sampleModel())

	require.Len(t, sectionRows, 2)
	assert.Equal(t, "leadership", sectionRows[0].SectionID)
	assert.InDelta(t, 71.4, sectionRows[0].NormalizedPct, 0.1)

	require.Len(t, questionRows, 3)
	assert.Equal(t, "XO", questionRows[0].QuestionType)
	assert.Equal(t, "Reviews are held.", questionRows[1].Description)
}

func TestWriteReportParquet(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig()
	cfg.Output = schema.ParquetOut
	cfg.OutputFile = filepath.Join(dir, "report.parquet")

	require.NoError(t, writeReportParquet(sampleModel(), cfg))

	for _, name := range []string{"report_questions.parquet", "report_sections.parquet"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestWriteReportParquetRequiresOutputFile(t *testing.T) {
	cfg := testConfig()
	cfg.Output = schema.ParquetOut
	err := writeReportParquet(sampleModel(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output-file")
}
