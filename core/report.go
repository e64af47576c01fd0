package core

import (
	"math"

	"github.com/auditgauge/auditgauge/schema"
)

// Assemble produces the renderer-ready ReportModel from a computed score
// tree. The model is self-contained: renderers get localized names, per
// question detail and normalized section percentages without touching the
// catalog, weights or any session state.
func Assemble(q *schema.Questionnaire, weights *schema.WeightConfig, tree *schema.ScoreTree, responses schema.ResponseSet, subResponses schema.SubResponseSet, locale, fallback string) *schema.ReportModel {
	model := &schema.ReportModel{
		Locale:     locale,
		Overall:    tree.Overall,
		NominalMax: weights.NominalMax(q),
		Sections:   make([]schema.SectionReport, 0, len(q.Sections)),
	}

	for i := range q.Sections {
		sec := &q.Sections[i]
		secScore := tree.Section(sec.ID)

		report := schema.SectionReport{
			SectionID:  sec.ID,
			Name:       sec.Name.Text(locale, fallback),
			NominalMax: weights.SectionWeights[sec.ID],
			Questions:  make([]schema.QuestionRecord, 0, len(sec.Questions)),
		}
		if secScore != nil {
			report.Total = secScore.Total
		}
		report.NormalizedPct = NormalizedPct(report.Total, report.NominalMax)

		for j := range sec.Questions {
			question := &sec.Questions[j]
			report.Questions = append(report.Questions,
				assembleQuestion(question, secScore, responses, subResponses, locale, fallback))
		}

		model.Sections = append(model.Sections, report)
	}

	return model
}

// assembleQuestion builds one report row, including the per-item checklist
// detail for PW questions.
func assembleQuestion(q *schema.Question, secScore *schema.SectionScore, responses schema.ResponseSet, subResponses schema.SubResponseSet, locale, fallback string) schema.QuestionRecord {
	record := schema.QuestionRecord{
		QuestionID:  q.ID,
		Kind:        q.Kind,
		Description: q.Description.Text(locale, fallback),
	}

	if secScore != nil {
		for k := range secScore.Questions {
			qs := &secScore.Questions[k]
			if qs.QuestionID == q.ID {
				record.Weight = qs.Weight
				record.Points = qs.Points
				record.Answered = qs.Answered
				break
			}
		}
	}

	if q.Kind != schema.KindPW {
		if v, ok := responses[schema.ResponseKey(q.SectionID, q.ID)]; ok {
			record.Response = v
		}
		return record
	}

	n := len(q.SubQuestions)
	if n == 0 {
		return record
	}
	share := record.Weight / float64(n)
	record.SubAnswers = make([]schema.SubAnswer, 0, n)
	for i := 1; i <= n; i++ {
		checked := subResponses[schema.SubResponseKey(q.SectionID, q.ID, i)]
		sub := schema.SubAnswer{
			Index:   i,
			Label:   q.SubQuestions[i-1].Text(locale, fallback),
			Checked: checked,
		}
		if checked {
			sub.Points = share
		}
		record.SubAnswers = append(record.SubAnswers, sub)
	}
	return record
}

// NormalizedPct converts a section total to the 0-100 chart scale. A total
// within Epsilon of the nominal max reads exactly 100; a zero nominal max
// reads 0 rather than dividing by zero.
func NormalizedPct(total, nominalMax float64) float64 {
	if nominalMax == 0 {
		return 0
	}
	if math.Abs(total-nominalMax) < Epsilon {
		return 100
	}
	return total / nominalMax * 100
}
