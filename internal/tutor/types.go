package tutor

import (
	"github.com/LinosCo/trainbot/internal/botconfig"
	"github.com/LinosCo/trainbot/internal/supervisor"
)

// ExplainInput holds the context for generating a topic explanation.
type ExplainInput struct {
	Bot   *botconfig.TrainingBot
	Topic botconfig.Topic

	// Competence tunes the register of the explanation.
	Competence supervisor.CompetenceLevel

	// AdaptationDepth selects a progressively simpler prompt variant.
	// Depth 0 is the standard explanation.
	AdaptationDepth int

	// Gaps are the knowledge gaps found on a previous failed attempt.
	Gaps []string
}

// CheckInput holds the context for generating the open comprehension
// question that follows an explanation.
type CheckInput struct {
	Bot         *botconfig.TrainingBot
	Topic       botconfig.Topic
	Explanation string
}

// FinalInput holds the session outcome for closing feedback.
type FinalInput struct {
	Bot          *botconfig.TrainingBot
	Results      []supervisor.TopicResult
	OverallScore int
	Passed       bool
}
