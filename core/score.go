// Package core holds the scoring, aggregation and report assembly logic.
// Scoring, aggregation and assembly are pure functions of their parameters:
// no I/O, no ambient session state, no mutation of the response sets. The
// Execute entry points in run.go wire the catalog, weights and snapshot
// store around them.
package core

import (
	"github.com/auditgauge/auditgauge/schema"
)

// Epsilon is the tolerance for score equality comparisons. Scores are
// accumulated floating-point products of weight/count divisions, so exact
// equality is not meaningful.
const Epsilon = 1e-6

// ScoreQuestion computes one question's weighted score from the response
// sets. An absent answer is not an error and scores 0; a present answer the
// engine cannot interpret returns an InvalidResponseError and leaves the
// policy decision to the caller.
func ScoreQuestion(q *schema.Question, base schema.BaseScores, responses schema.ResponseSet, subResponses schema.SubResponseSet, weight float64) (float64, error) {
	switch q.Kind {
	case schema.KindXO:
		return scoreXO(q, base, responses, weight)
	case schema.KindPJ:
		return scorePJ(q, base, responses, weight)
	case schema.KindPW:
		return scorePW(q, subResponses, weight), nil
	default:
		// The catalog loader rejects unknown kinds, so this only fires on a
		// hand-built questionnaire.
		return 0, schema.NewConfigError("question %s/%s has unknown kind %q", q.SectionID, q.ID, q.Kind)
	}
}

// scoreXO maps the two binary sentinels onto the configured base scores.
func scoreXO(q *schema.Question, base schema.BaseScores, responses schema.ResponseSet, weight float64) (float64, error) {
	v, ok := responses[schema.ResponseKey(q.SectionID, q.ID)]
	if !ok {
		return 0, nil // unanswered
	}
	switch v {
	case schema.ResponseYes:
		return base.XO.Yes / 100 * weight, nil
	case schema.ResponseNo:
		return base.XO.No / 100 * weight, nil
	default:
		return 0, &schema.InvalidResponseError{SectionID: q.SectionID, QuestionID: q.ID, Kind: schema.KindXO, Value: v}
	}
}

// scorePJ maps the 0-4 ordinal onto the configured base score table.
// Out-of-range ordinals are signalled, never clamped.
func scorePJ(q *schema.Question, base schema.BaseScores, responses schema.ResponseSet, weight float64) (float64, error) {
	v, ok := responses[schema.ResponseKey(q.SectionID, q.ID)]
	if !ok {
		return 0, nil // unanswered
	}
	if v < schema.PJMin || v > schema.PJMax {
		return 0, &schema.InvalidResponseError{SectionID: q.SectionID, QuestionID: q.ID, Kind: schema.KindPJ, Value: v}
	}
	return base.PJ[v] / 100 * weight, nil
}

// scorePW gives each declared checklist item an equal fractional share of
// the question's weight. A question with no declared items, or with no
// stored sub-responses yet, scores 0.
func scorePW(q *schema.Question, subResponses schema.SubResponseSet, weight float64) float64 {
	n := len(q.SubQuestions)
	if n == 0 {
		return 0
	}
	share := weight / float64(n)
	checked := 0
	for i := 1; i <= n; i++ {
		if subResponses[schema.SubResponseKey(q.SectionID, q.ID, i)] {
			checked++
		}
	}
	return share * float64(checked)
}
