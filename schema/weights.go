package schema

// XOBase holds the base scores (0-100) for the two XO sentinels.
type XOBase struct {
	Yes float64
	No  float64
}

// BaseScores holds the per-kind base score tables. PJ is indexed by the
// ordinal response value; the loader guarantees all five entries are set.
type BaseScores struct {
	XO XOBase
	PJ [PJMax + 1]float64
}

// WeightConfig carries the static scoring weights. Section weights are the
// nominal max points per section; question weights SHOULD sum to the owning
// section's weight (validated at startup with a tolerance, see core).
type WeightConfig struct {
	SectionWeights  map[string]float64
	QuestionWeights map[string]map[string]float64
	BaseScores      BaseScores
}

// QuestionWeight returns the configured weight of a question and whether an
// entry exists. Missing entries score zero rather than guessing a default;
// the validation pass reports them.
func (wc *WeightConfig) QuestionWeight(sectionID, questionID string) (float64, bool) {
	qw, ok := wc.QuestionWeights[sectionID]
	if !ok {
		return 0, false
	}
	w, ok := qw[questionID]
	return w, ok
}

// NominalMax returns the sum of section weights across the catalog's
// sections. Weight entries for sections absent from the catalog are ignored,
// mirroring how orphan responses are ignored.
func (wc *WeightConfig) NominalMax(q *Questionnaire) float64 {
	var total float64
	for i := range q.Sections {
		total += wc.SectionWeights[q.Sections[i].ID]
	}
	return total
}
