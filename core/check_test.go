package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditgauge/auditgauge/schema"
)

func TestValidateWeightConfigOK(t *testing.T) {
	assert.NoError(t, ValidateWeightConfig(fixtureQuestionnaire(), fixtureWeights()))
}

func TestValidateWeightConfigTolerance(t *testing.T) {
	weights := fixtureWeights()
	// Drift below the tolerance is accepted.
	weights.QuestionWeights["planning"]["q1"] = 30 + 1e-9
	assert.NoError(t, ValidateWeightConfig(fixtureQuestionnaire(), weights))

	weights.QuestionWeights["planning"]["q1"] = 30.5
	err := ValidateWeightConfig(fixtureQuestionnaire(), weights)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "planning")
}

func TestValidateWeightConfigCollectsAllProblems(t *testing.T) {
	weights := fixtureWeights()
	delete(weights.SectionWeights, "planning")
	delete(weights.QuestionWeights["leadership"], "q2")
	weights.QuestionWeights["leadership"]["q3"] = -5

	err := ValidateWeightConfig(fixtureQuestionnaire(), weights)
	var cfgErr *schema.ConfigError
	require.ErrorAs(t, err, &cfgErr)

	// Missing section weight, missing question weight, negative weight, and
	// the leadership sum mismatch the first two cause.
	assert.GreaterOrEqual(t, len(cfgErr.Problems), 3)
	assert.Contains(t, err.Error(), "no section_weights entry")
	assert.Contains(t, err.Error(), "no question_weights entry")
	assert.Contains(t, err.Error(), "negative weight")
}

func TestValidateWeightConfigBaseScores(t *testing.T) {
	weights := fixtureWeights()
	weights.BaseScores.XO.Yes = 120
	weights.BaseScores.PJ[2] = -1

	err := ValidateWeightConfig(fixtureQuestionnaire(), weights)
	var cfgErr *schema.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Len(t, cfgErr.Problems, 2)
}
