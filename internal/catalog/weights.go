package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/auditgauge/auditgauge/schema"
)

// rawWeights mirrors the weight configuration document layout.
type rawWeights struct {
	SectionWeights  map[string]float64            `yaml:"section_weights"`
	QuestionWeights map[string]map[string]float64 `yaml:"question_weights"`
	BaseScores      *rawBaseScores                `yaml:"question_type_base_scores"`
}

type rawBaseScores struct {
	XO map[string]float64 `yaml:"XO"`
	PJ map[int]float64    `yaml:"PJ"`
}

// LoadWeights reads the weight configuration document. All three top-level
// keys are required; a partial document is a configuration error, not a
// set of defaults.
func LoadWeights(path string) (*schema.WeightConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read weights document %q: %w", path, err)
	}
	wc, err := ParseWeights(data)
	if err != nil {
		return nil, fmt.Errorf("weights document %q: %w", path, err)
	}
	return wc, nil
}

// ParseWeights parses and validates weight configuration YAML.
func ParseWeights(data []byte) (*schema.WeightConfig, error) {
	var raw rawWeights
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, schema.NewConfigError("malformed YAML: %v", err)
	}

	var problems []string
	if raw.SectionWeights == nil {
		problems = append(problems, "missing required key 'section_weights'")
	}
	if raw.QuestionWeights == nil {
		problems = append(problems, "missing required key 'question_weights'")
	}
	if raw.BaseScores == nil {
		problems = append(problems, "missing required key 'question_type_base_scores'")
	}
	if len(problems) > 0 {
		return nil, &schema.ConfigError{Problems: problems}
	}

	wc := &schema.WeightConfig{
		SectionWeights:  raw.SectionWeights,
		QuestionWeights: raw.QuestionWeights,
	}

	yes, okYes := raw.BaseScores.XO["yes"]
	no, okNo := raw.BaseScores.XO["no"]
	if !okYes || !okNo {
		problems = append(problems, "question_type_base_scores.XO must define 'yes' and 'no'")
	}
	wc.BaseScores.XO = schema.XOBase{Yes: yes, No: no}

	for v := schema.PJMin; v <= schema.PJMax; v++ {
		score, ok := raw.BaseScores.PJ[v]
		if !ok {
			problems = append(problems, fmt.Sprintf("question_type_base_scores.PJ must define ordinal %d", v))
			continue
		}
		wc.BaseScores.PJ[v] = score
	}

	if len(problems) > 0 {
		return nil, &schema.ConfigError{Problems: problems}
	}
	return wc, nil
}
