package schema

// QuestionScore is one question's computed contribution to its section.
type QuestionScore struct {
	SectionID  string       // Owning section
	QuestionID string       // Question identity
	Kind       QuestionKind // XO, PJ or PW
	Weight     float64      // Configured point weight
	Points     float64      // Weighted score, 0 when unanswered
	Answered   bool         // False when no response/sub-response exists
}

// SectionScore is the sum of a section's question scores. Weights already
// encode relative importance, so totals are sums, never averages.
type SectionScore struct {
	SectionID string
	Total     float64
	Questions []QuestionScore // Declared catalog order
}

// InvalidAnswer records a response the engine refused to score. Under the
// zero policy the question contributes 0 and the run continues.
type InvalidAnswer struct {
	SectionID  string
	QuestionID string
	Value      int
}

// ScoreTree is the derived, recomputed-on-demand score structure. It is a
// pure projection of catalog + weights + response sets: never persisted,
// and re-aggregating unchanged inputs yields an identical tree.
type ScoreTree struct {
	Sections []SectionScore  // Declared catalog order
	Overall  float64         // Sum of all section totals
	Invalid  []InvalidAnswer // Responses zeroed under InvalidZero policy
}

// Section returns the section score with the given ID, or nil.
func (t *ScoreTree) Section(id string) *SectionScore {
	for i := range t.Sections {
		if t.Sections[i].SectionID == id {
			return &t.Sections[i]
		}
	}
	return nil
}
