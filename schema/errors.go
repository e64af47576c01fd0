package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSnapshot is returned by snapshot stores when no snapshot has been
// saved yet. Callers treat it as "nothing answered", not as a failure.
var ErrNoSnapshot = errors.New("no snapshot stored")

// ConfigError reports a catalog or weight configuration that scoring cannot
// proceed with: missing required fields, unknown question type codes, or
// weight sums that disagree with their section weight. It is fatal to the
// calling session and never recovered internally.
type ConfigError struct {
	Problems []string
}

// Error renders all collected problems, one per line.
func (e *ConfigError) Error() string {
	switch len(e.Problems) {
	case 0:
		return "invalid configuration"
	case 1:
		return "invalid configuration: " + e.Problems[0]
	default:
		return fmt.Sprintf("invalid configuration (%d problems):\n  %s",
			len(e.Problems), strings.Join(e.Problems, "\n  "))
	}
}

// NewConfigError builds a ConfigError from a single formatted problem.
func NewConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{Problems: []string{fmt.Sprintf(format, args...)}}
}

// InvalidResponseError reports a stored answer the scoring engine refuses to
// guess about: a PJ ordinal outside 0-4 or an XO value that is neither
// sentinel. It is scoped to a single question; aggregation policy decides
// whether to attribute zero or abort.
type InvalidResponseError struct {
	SectionID  string
	QuestionID string
	Kind       QuestionKind
	Value      int
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid %s response %d for question %s/%s",
		e.Kind, e.Value, e.SectionID, e.QuestionID)
}
