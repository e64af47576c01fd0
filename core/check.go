package core

import (
	"fmt"
	"math"

	"github.com/auditgauge/auditgauge/schema"
)

// WeightSumTolerance is the allowed drift between a section's declared
// weight and the sum of its question weights.
const WeightSumTolerance = 1e-6

// ValidateWeightConfig cross-checks the weight configuration against the
// catalog. Overall totals only make sense when each section's question
// weights sum to its declared weight, so mismatches are collected into a
// single ConfigError rather than silently trusted. All problems are
// reported in one pass.
func ValidateWeightConfig(q *schema.Questionnaire, weights *schema.WeightConfig) error {
	var problems []string

	problems = append(problems, checkBaseScores(&weights.BaseScores)...)

	for i := range q.Sections {
		sec := &q.Sections[i]

		secWeight, ok := weights.SectionWeights[sec.ID]
		if !ok {
			problems = append(problems, fmt.Sprintf("section %q has no section_weights entry", sec.ID))
		}

		var sum float64
		for j := range sec.Questions {
			question := &sec.Questions[j]
			w, ok := weights.QuestionWeight(sec.ID, question.ID)
			if !ok {
				problems = append(problems, fmt.Sprintf("question %s/%s has no question_weights entry", sec.ID, question.ID))
				continue
			}
			if w < 0 {
				problems = append(problems, fmt.Sprintf("question %s/%s has negative weight %v", sec.ID, question.ID, w))
			}
			sum += w
		}

		if ok && math.Abs(sum-secWeight) > WeightSumTolerance {
			problems = append(problems, fmt.Sprintf(
				"section %q question weights sum to %v, expected %v", sec.ID, sum, secWeight))
		}
	}

	if len(problems) > 0 {
		return &schema.ConfigError{Problems: problems}
	}
	return nil
}

// checkBaseScores verifies the base score tables cover the whole response
// range with values on the 0-100 scale.
func checkBaseScores(base *schema.BaseScores) []string {
	var problems []string
	inRange := func(v float64) bool { return v >= 0 && v <= 100 }

	if !inRange(base.XO.Yes) || !inRange(base.XO.No) {
		problems = append(problems, fmt.Sprintf(
			"XO base scores must be within 0-100 (yes=%v, no=%v)", base.XO.Yes, base.XO.No))
	}
	for i, v := range base.PJ {
		if !inRange(v) {
			problems = append(problems, fmt.Sprintf("PJ base score for %d must be within 0-100 (got %v)", i, v))
		}
	}
	return problems
}
