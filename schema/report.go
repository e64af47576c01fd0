package schema

// SubAnswer is the answered-checklist detail for one PW item.
type SubAnswer struct {
	Index   int     `json:"index"` // 1-based position in the declared list
	Label   string  `json:"label"` // Localized checklist text
	Checked bool    `json:"checked"`
	Points  float64 `json:"points"` // weight/n when checked, else 0
}

// QuestionRecord is one row of the renderer-facing report.
type QuestionRecord struct {
	QuestionID  string       `json:"question_id"`
	Kind        QuestionKind `json:"type"`
	Description string       `json:"description"` // Localized
	Weight      float64      `json:"weight"`
	Points      float64      `json:"points"`
	Answered    bool         `json:"answered"`
	Response    int          `json:"response,omitempty"` // Raw XO/PJ value
	SubAnswers  []SubAnswer  `json:"sub_answers,omitempty"`
}

// SectionReport carries one section's localized name, totals and records.
type SectionReport struct {
	SectionID     string           `json:"section_id"`
	Name          string           `json:"name"` // Localized
	Total         float64          `json:"total"`
	NominalMax    float64          `json:"nominal_max"`
	NormalizedPct float64          `json:"normalized_pct"` // 0-100, for charting
	Questions     []QuestionRecord `json:"questions"`
}

// ReportModel is the sole input external renderers may depend on: chart,
// table, CSV, JSON and parquet writers all consume it and nothing else.
// It carries no timestamps or session state, so identical inputs assemble
// into identical models and deterministic renderers produce identical bytes.
type ReportModel struct {
	Locale     string          `json:"locale"`
	Overall    float64         `json:"overall"`
	NominalMax float64         `json:"nominal_max"` // Sum of section weights
	Sections   []SectionReport `json:"sections"`
}

// ChartSeries returns the radar dataset: section labels paired with
// normalized percentages in catalog order.
func (m *ReportModel) ChartSeries() ([]string, []float64) {
	labels := make([]string, 0, len(m.Sections))
	values := make([]float64, 0, len(m.Sections))
	for i := range m.Sections {
		labels = append(labels, m.Sections[i].Name)
		values = append(values, m.Sections[i].NormalizedPct)
	}
	return labels, values
}
