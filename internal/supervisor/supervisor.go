package supervisor

import (
	"math"

	"github.com/LinosCo/trainbot/internal/botconfig"
)

// ShouldRetry reports whether a failed attempt gets another try.
// Strict mode is an unconditional override: retry caps, including
// per-topic overrides, are irrelevant once the bot is strict.
func ShouldRetry(bot *botconfig.TrainingBot, retryCount int) bool {
	if bot.FailureMode == botconfig.FailureStrict {
		return false
	}
	return retryCount < bot.MaxRetries
}

// PassThreshold resolves the pass score for a topic, preferring the
// topic's override.
func PassThreshold(bot *botconfig.TrainingBot, topic botconfig.Topic) int {
	if topic.PassScoreOverride != nil {
		return *topic.PassScoreOverride
	}
	return bot.PassScore
}

// MaxRetriesFor resolves the retry cap for a topic, preferring the
// topic's override.
func MaxRetriesFor(bot *botconfig.TrainingBot, topic botconfig.Topic) int {
	if topic.MaxRetriesOverride != nil {
		return *topic.MaxRetriesOverride
	}
	return bot.MaxRetries
}

// AdvanceAfterEvaluation computes the next state once a topic attempt has
// a final weighted score. Returns the new state and whether the session
// moved to the next topic (or completed):
//
//   - Score at or above the threshold commits the result and advances.
//   - Below threshold under permissive mode with retry budget left, the
//     result is provisional and discarded: the topic is retried with one
//     more level of simplification.
//   - Otherwise (strict, or retries exhausted) the failed result is
//     committed and the session advances anyway.
func AdvanceAfterEvaluation(state State, result TopicResult, bot *botconfig.TrainingBot, topic botconfig.Topic, totalTopics int) (State, bool) {
	threshold := PassThreshold(bot, topic)
	maxRetries := MaxRetriesFor(bot, topic)

	if result.Score >= threshold {
		return commitAndAdvance(state, result, totalTopics)
	}

	if bot.FailureMode == botconfig.FailurePermissive && state.RetryCount < maxRetries {
		state.Phase = PhaseRetrying
		state.RetryCount++
		state.AdaptationDepth = min(state.AdaptationDepth+1, MaxAdaptationDepth)
		state.clearTransients()
		state.GapFocus = result.Gaps
		return state, false
	}

	// Failed for good. The result's status was decided upstream.
	return commitAndAdvance(state, result, totalTopics)
}

// commitAndAdvance appends the result and moves to the next topic, or
// completes the session when this was the last one.
func commitAndAdvance(state State, result TopicResult, totalTopics int) (State, bool) {
	state.Results = append(state.Results, result)
	state.clearTransients()
	state.GapFocus = nil

	if state.TopicIndex+1 >= totalTopics {
		state.Phase = PhaseComplete
		return state, false
	}

	state.TopicIndex++
	state.Phase = PhaseExplaining
	state.RetryCount = 0
	state.AdaptationDepth = 0
	return state, true
}

// OverallScore is the rounded mean score across committed results.
// An empty result set scores 0.
func OverallScore(results []TopicResult) int {
	if len(results) == 0 {
		return 0
	}
	sum := 0
	for _, r := range results {
		sum += r.Score
	}
	return int(math.Round(float64(sum) / float64(len(results))))
}

// SessionPassed reports whether the overall score meets the threshold.
// The boundary is inclusive.
func SessionPassed(results []TopicResult, threshold int) bool {
	return OverallScore(results) >= threshold
}
