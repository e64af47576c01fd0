package core

import (
	"errors"

	"github.com/auditgauge/auditgauge/schema"
)

// Aggregate walks the catalog in declared order and folds per-question
// scores into section totals and an overall total. Questions absent from
// the response sets contribute 0; sections with nothing answered still get
// a well-defined zero total. The result is a pure projection: aggregating
// unchanged inputs twice yields an identical tree.
//
// Invalid responses follow the policy: InvalidZero attributes 0 to the
// question and records it in the tree; InvalidFail aborts with the error.
func Aggregate(q *schema.Questionnaire, weights *schema.WeightConfig, responses schema.ResponseSet, subResponses schema.SubResponseSet, policy schema.InvalidPolicy) (*schema.ScoreTree, error) {
	tree := &schema.ScoreTree{
		Sections: make([]schema.SectionScore, 0, len(q.Sections)),
	}

	for i := range q.Sections {
		sec := &q.Sections[i]
		secScore := schema.SectionScore{
			SectionID: sec.ID,
			Questions: make([]schema.QuestionScore, 0, len(sec.Questions)),
		}

		for j := range sec.Questions {
			question := &sec.Questions[j]
			weight, _ := weights.QuestionWeight(sec.ID, question.ID)

			points, err := ScoreQuestion(question, weights.BaseScores, responses, subResponses, weight)
			if err != nil {
				var invalid *schema.InvalidResponseError
				if !errors.As(err, &invalid) || policy == schema.InvalidFail {
					return nil, err
				}
				tree.Invalid = append(tree.Invalid, schema.InvalidAnswer{
					SectionID:  invalid.SectionID,
					QuestionID: invalid.QuestionID,
					Value:      invalid.Value,
				})
				points = 0
			}

			secScore.Questions = append(secScore.Questions, schema.QuestionScore{
				SectionID:  sec.ID,
				QuestionID: question.ID,
				Kind:       question.Kind,
				Weight:     weight,
				Points:     points,
				Answered:   isAnswered(question, responses, subResponses),
			})
			secScore.Total += points
		}

		tree.Sections = append(tree.Sections, secScore)
		tree.Overall += secScore.Total
	}

	return tree, nil
}

// isAnswered reports whether any response exists for the question. PW
// questions count as answered once at least one declared checklist item has
// a stored sub-response, checked or not.
func isAnswered(q *schema.Question, responses schema.ResponseSet, subResponses schema.SubResponseSet) bool {
	if q.Kind == schema.KindPW {
		for i := 1; i <= len(q.SubQuestions); i++ {
			if _, ok := subResponses[schema.SubResponseKey(q.SectionID, q.ID, i)]; ok {
				return true
			}
		}
		return false
	}
	_, ok := responses[schema.ResponseKey(q.SectionID, q.ID)]
	return ok
}
