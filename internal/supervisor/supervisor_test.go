package supervisor

import (
	"testing"

	"github.com/LinosCo/trainbot/internal/botconfig"
)

func permissiveBot(maxRetries int) *botconfig.TrainingBot {
	return &botconfig.TrainingBot{
		Name:        "test",
		PassScore:   70,
		MaxRetries:  maxRetries,
		FailureMode: botconfig.FailurePermissive,
	}
}

func TestNewState(t *testing.T) {
	s := NewState()
	if s.TopicIndex != 0 {
		t.Errorf("topic index = %d, want 0", s.TopicIndex)
	}
	if s.Phase != PhaseExplaining {
		t.Errorf("phase = %q, want explaining", s.Phase)
	}
	if s.Competence != CompetenceIntermediate {
		t.Errorf("competence = %q, want intermediate", s.Competence)
	}
	if s.Results == nil || len(s.Results) != 0 {
		t.Errorf("results = %v, want empty", s.Results)
	}
}

func TestShouldRetry(t *testing.T) {
	tests := []struct {
		name       string
		mode       botconfig.FailureMode
		maxRetries int
		retryCount int
		want       bool
	}{
		{"strict never retries", botconfig.FailureStrict, 5, 0, false},
		{"permissive under cap", botconfig.FailurePermissive, 2, 1, true},
		{"permissive at cap", botconfig.FailurePermissive, 2, 2, false},
		{"permissive zero cap", botconfig.FailurePermissive, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot := &botconfig.TrainingBot{FailureMode: tt.mode, MaxRetries: tt.maxRetries}
			if got := ShouldRetry(bot, tt.retryCount); got != tt.want {
				t.Errorf("ShouldRetry() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestThresholdAndRetryOverrides(t *testing.T) {
	bot := permissiveBot(1)
	override := 90
	retries := 3
	topic := botconfig.Topic{ID: "t", PassScoreOverride: &override, MaxRetriesOverride: &retries}

	if got := PassThreshold(bot, topic); got != 90 {
		t.Errorf("threshold = %d, want 90", got)
	}
	if got := MaxRetriesFor(bot, topic); got != 3 {
		t.Errorf("max retries = %d, want 3", got)
	}

	plain := botconfig.Topic{ID: "p"}
	if got := PassThreshold(bot, plain); got != 70 {
		t.Errorf("default threshold = %d, want 70", got)
	}
	if got := MaxRetriesFor(bot, plain); got != 1 {
		t.Errorf("default max retries = %d, want 1", got)
	}
}

func TestAdvance_PassMovesToNextTopic(t *testing.T) {
	state := NewState()
	state.CheckQuestion = "leftover"
	state.GapFocus = []string{"from an earlier retry"}
	result := TopicResult{TopicID: "t1", Status: StatusPassed, Score: 85}

	next, advanced := AdvanceAfterEvaluation(state, result, permissiveBot(1), botconfig.Topic{ID: "t1"}, 2)
	if !advanced {
		t.Fatal("expected advance")
	}
	if next.TopicIndex != 1 || next.Phase != PhaseExplaining {
		t.Errorf("state = index %d phase %q", next.TopicIndex, next.Phase)
	}
	if len(next.Results) != 1 {
		t.Fatalf("results = %d, want 1", len(next.Results))
	}
	if next.CheckQuestion != "" || next.Pending != nil || next.PendingQuizzes != nil {
		t.Error("transients must be cleared on advance")
	}
	if next.GapFocus != nil {
		t.Error("gap focus must be cleared once the result commits")
	}
	if next.RetryCount != 0 || next.AdaptationDepth != 0 {
		t.Error("retry counters must reset for the new topic")
	}
}

func TestAdvance_FailWithBudgetRetries(t *testing.T) {
	state := NewState()
	result := TopicResult{
		TopicID: "t1",
		Status:  StatusGapDetected,
		Score:   30,
		Gaps:    []string{"confused classes A and C"},
	}

	next, advanced := AdvanceAfterEvaluation(state, result, permissiveBot(2), botconfig.Topic{ID: "t1"}, 2)
	if advanced {
		t.Fatal("expected retry, not advance")
	}
	if next.Phase != PhaseRetrying {
		t.Errorf("phase = %q, want retrying", next.Phase)
	}
	if next.RetryCount != 1 || next.AdaptationDepth != 1 {
		t.Errorf("retry=%d depth=%d, want 1/1", next.RetryCount, next.AdaptationDepth)
	}
	// The provisional result is discarded, not committed.
	if len(next.Results) != 0 {
		t.Errorf("results = %d, want 0", len(next.Results))
	}
	if next.TopicIndex != 0 {
		t.Errorf("topic index = %d, want 0", next.TopicIndex)
	}
	if len(next.GapFocus) != 1 || next.GapFocus[0] != "confused classes A and C" {
		t.Errorf("gap focus = %v, want the attempt's gaps carried for the retry", next.GapFocus)
	}
}

func TestAdvance_AdaptationDepthCapped(t *testing.T) {
	bot := permissiveBot(5)
	state := NewState()
	result := TopicResult{Status: StatusFailed, Score: 10}

	for i := 0; i < 4; i++ {
		state, _ = AdvanceAfterEvaluation(state, result, bot, botconfig.Topic{ID: "t1"}, 2)
	}
	if state.AdaptationDepth != MaxAdaptationDepth {
		t.Errorf("depth = %d, want capped at %d", state.AdaptationDepth, MaxAdaptationDepth)
	}
	if state.RetryCount != 4 {
		t.Errorf("retry count = %d, want 4", state.RetryCount)
	}
}

func TestAdvance_RetriesExhaustedCommitsFailure(t *testing.T) {
	state := NewState()
	state.RetryCount = 1
	result := TopicResult{TopicID: "t1", Status: StatusFailed, Score: 30, Retries: 1}

	next, advanced := AdvanceAfterEvaluation(state, result, permissiveBot(1), botconfig.Topic{ID: "t1"}, 2)
	if !advanced {
		t.Fatal("expected forced advance once retries are exhausted")
	}
	if len(next.Results) != 1 || next.Results[0].Status != StatusFailed {
		t.Errorf("failure not committed: %+v", next.Results)
	}
}

func TestAdvance_StrictCommitsImmediately(t *testing.T) {
	bot := permissiveBot(3)
	bot.FailureMode = botconfig.FailureStrict
	state := NewState()
	result := TopicResult{TopicID: "t1", Status: StatusFailed, Score: 30}

	next, advanced := AdvanceAfterEvaluation(state, result, bot, botconfig.Topic{ID: "t1"}, 2)
	if !advanced {
		t.Fatal("strict mode must advance on failure")
	}
	if next.RetryCount != 0 {
		t.Errorf("retry count = %d, want 0", next.RetryCount)
	}
	if len(next.Results) != 1 {
		t.Errorf("results = %d, want 1", len(next.Results))
	}
}

func TestAdvance_LastTopicCompletes(t *testing.T) {
	state := NewState()
	state.TopicIndex = 1
	state.Results = []TopicResult{{TopicID: "t1", Score: 80}}
	result := TopicResult{TopicID: "t2", Status: StatusPassed, Score: 90}

	next, advanced := AdvanceAfterEvaluation(state, result, permissiveBot(1), botconfig.Topic{ID: "t2"}, 2)
	if advanced {
		t.Fatal("completion is not an advance")
	}
	if next.Phase != PhaseComplete {
		t.Errorf("phase = %q, want complete", next.Phase)
	}
	if len(next.Results) != 2 {
		t.Errorf("results = %d, want 2", len(next.Results))
	}
}

func TestOverallScore(t *testing.T) {
	tests := []struct {
		name    string
		results []TopicResult
		want    int
	}{
		{"empty", nil, 0},
		{"single", []TopicResult{{Score: 85}}, 85},
		{"rounds half up", []TopicResult{{Score: 96}, {Score: 80}}, 88},
		{"rounds 0.5 up", []TopicResult{{Score: 70}, {Score: 71}}, 71},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverallScore(tt.results); got != tt.want {
				t.Errorf("OverallScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSessionPassed_BoundaryInclusive(t *testing.T) {
	results := []TopicResult{{Score: 70}}
	if !SessionPassed(results, 70) {
		t.Error("exact threshold must pass")
	}
	if SessionPassed([]TopicResult{{Score: 69}}, 70) {
		t.Error("one below threshold must fail")
	}
}
