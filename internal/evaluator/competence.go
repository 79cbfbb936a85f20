package evaluator

import (
	"strings"

	"github.com/LinosCo/trainbot/internal/supervisor"
)

// Verbosity heuristic thresholds.
const (
	beginnerMaxAvgWords = 10
	advancedMinAvgWords = 40
	longAnswerCharCount = 100
)

// DetectCompetence infers a trainee's competence level from the verbosity
// of every free-text answer given so far. An empty history defaults to
// intermediate. Re-run once per quiz submission; the result influences
// subsequent explanations, never retroactively.
func DetectCompetence(answers []string) supervisor.CompetenceLevel {
	if len(answers) == 0 {
		return supervisor.CompetenceIntermediate
	}

	totalWords := 0
	hasLongAnswer := false
	for _, a := range answers {
		totalWords += len(strings.Fields(a))
		if len(a) > longAnswerCharCount {
			hasLongAnswer = true
		}
	}
	avgWords := float64(totalWords) / float64(len(answers))

	switch {
	case avgWords < beginnerMaxAvgWords && !hasLongAnswer:
		return supervisor.CompetenceBeginner
	case avgWords > advancedMinAvgWords || hasLongAnswer:
		return supervisor.CompetenceAdvanced
	default:
		return supervisor.CompetenceIntermediate
	}
}
