package training

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LinosCo/trainbot/internal/botconfig"
	"github.com/LinosCo/trainbot/internal/llm"
	"github.com/LinosCo/trainbot/internal/store"
	"github.com/LinosCo/trainbot/internal/supervisor"
	"github.com/LinosCo/trainbot/internal/tutor"
)

func twoTopicBot() *botconfig.TrainingBot {
	return &botconfig.TrainingBot{
		Name:        "safety-onboarding",
		PassScore:   70,
		MaxRetries:  1,
		FailureMode: botconfig.FailurePermissive,
		Topics: []botconfig.Topic{
			{
				ID:         "t1",
				Label:      "Evacuation Routes",
				Objectives: []string{"Know the two exits"},
				Quizzes: []botconfig.QuizQuestion{
					{ID: "t1-q1", Type: botconfig.TypeMultipleChoice, Question: "Primary exit?", Options: []string{"North stairs", "Elevator", "Roof"}, CorrectIndex: 0},
					{ID: "t1-q2", Type: botconfig.TypeTrueFalse, Question: "Elevators are safe during a fire.", Options: []string{"True", "False"}, CorrectIndex: 1},
				},
			},
			{
				ID:         "t2",
				Label:      "Extinguisher Basics",
				Objectives: []string{"Know the PASS technique"},
				Quizzes: []botconfig.QuizQuestion{
					{ID: "t2-q1", Type: botconfig.TypeTrueFalse, Question: "Aim at the base of the fire.", Options: []string{"True", "False"}, CorrectIndex: 0},
					{ID: "t2-q2", Type: botconfig.TypeTrueFalse, Question: "Sweep side to side.", Options: []string{"True", "False"}, CorrectIndex: 0},
				},
			},
		},
	}
}

func newTestService(t *testing.T, bot *botconfig.TrainingBot, mock *llm.MockProvider) *Service {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	tut := tutor.NewService(mock, tutor.DefaultConfig())
	return NewService(bot, tut, s.SessionRepo(), s.MessageRepo())
}

func explainJSON(text string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(fmt.Sprintf(`{"explanation": %q}`, text))}
}

func questionJSON(text string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(fmt.Sprintf(`{"question": %q}`, text))}
}

func gradeJSON(score int, gaps ...string) llm.MockResponse {
	b, _ := json.Marshal(map[string]any{"score": score, "gaps": gaps, "feedback": "noted"})
	return llm.MockResponse{Content: b}
}

func feedbackJSON(text string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(fmt.Sprintf(`{"feedback": %q}`, text))}
}

func TestFullSessionWithRetry(t *testing.T) {
	mock := llm.NewMockProvider(
		// Start: topic 1.
		explainJSON("Two exits: north stairs and the loading dock."),
		questionJSON("Which exit do you use first?"),
		// Turn 1: grade the open answer.
		gradeJSON(90),
		// Turn 2 resolves topic 1, then explains topic 2.
		explainJSON("PASS: pull, aim, squeeze, sweep."),
		questionJSON("What does the A in PASS stand for?"),
		// Turn 3: weak open answer.
		gradeJSON(40, "did not mention aiming"),
		// Turn 4 fails the quiz, triggering a retry of topic 2.
		explainJSON("Let's slow down. Pull the pin. Aim low."),
		questionJSON("Where do you aim?"),
		// Turn 5: better answer this time.
		gradeJSON(50),
		// Turn 6 passes the quiz and closes the session.
		feedbackJSON("Solid work overall. Review extinguisher aim."),
	)
	svc := newTestService(t, twoTopicBot(), mock)
	ctx := context.Background()

	reply, err := svc.Start(ctx)
	require.NoError(t, err)
	sessionID := reply.SessionID
	assert.Equal(t, supervisor.PhaseChecking, reply.Phase)
	assert.Contains(t, reply.Message, "Which exit do you use first?")

	// Topic 1: strong open answer, perfect quiz.
	reply, err = svc.SubmitTurn(ctx, sessionID, "The north stairs, unless blocked, then the loading dock.")
	require.NoError(t, err)
	assert.Equal(t, supervisor.PhaseQuizzing, reply.Phase)
	require.Len(t, reply.Quizzes, 2)

	reply, err = svc.SubmitTurn(ctx, sessionID, "0, 1")
	require.NoError(t, err)
	// 90*0.4 + 100*0.6 = 96: passed, moved to topic 2.
	assert.Equal(t, supervisor.PhaseChecking, reply.Phase)
	assert.Contains(t, reply.Message, "passed with 96")
	assert.Contains(t, reply.Message, "What does the A in PASS stand for?")

	// Topic 2, attempt 1: weak answer and a failed quiz.
	reply, err = svc.SubmitTurn(ctx, sessionID, "You squeeze the handle I think.")
	require.NoError(t, err)
	assert.Equal(t, supervisor.PhaseQuizzing, reply.Phase)

	reply, err = svc.SubmitTurn(ctx, sessionID, "1, 1")
	require.NoError(t, err)
	// 40*0.4 + 0*0.6 = 16: below 70, permissive, retry granted.
	assert.Equal(t, supervisor.PhaseChecking, reply.Phase)
	assert.Contains(t, reply.Message, "once more")
	assert.Contains(t, reply.Message, "Where do you aim?")

	// The retry prompt must carry the gaps from the failed attempt.
	retryExplainPrompt := mock.Calls[6].Messages[0].Content
	assert.Contains(t, retryExplainPrompt, "did not mention aiming")
	assert.Contains(t, retryExplainPrompt, "missed quiz question: Aim at the base of the fire.")

	// Topic 2, attempt 2: pass.
	reply, err = svc.SubmitTurn(ctx, sessionID, "At the base of the fire, then sweep.")
	require.NoError(t, err)
	assert.Equal(t, supervisor.PhaseQuizzing, reply.Phase)

	reply, err = svc.SubmitTurn(ctx, sessionID, "[0, 0]")
	require.NoError(t, err)
	require.True(t, reply.Done)
	require.NotNil(t, reply.Outcome)
	// Topic scores 96 and 80 average to 88.
	assert.Equal(t, 88, reply.Outcome.OverallScore)
	assert.True(t, reply.Outcome.Passed)
	require.Len(t, reply.Outcome.Results, 2)
	assert.Equal(t, supervisor.StatusPassed, reply.Outcome.Results[0].Status)
	assert.Equal(t, 96, reply.Outcome.Results[0].Score)
	assert.Equal(t, 80, reply.Outcome.Results[1].Score)
	assert.Equal(t, 1, reply.Outcome.Results[1].Retries)
	assert.Contains(t, reply.Message, "Solid work overall.")

	// A turn after completion is a no-op restating the outcome.
	reply, err = svc.SubmitTurn(ctx, sessionID, "hello?")
	require.NoError(t, err)
	assert.True(t, reply.Done)
	assert.Equal(t, 88, reply.Outcome.OverallScore)
	assert.Equal(t, 10, mock.CallCount(), "completed session must not call the model")
}

func TestStrictModeNeverRetries(t *testing.T) {
	bot := twoTopicBot()
	bot.FailureMode = botconfig.FailureStrict
	bot.Topics = bot.Topics[:1]

	mock := llm.NewMockProvider(
		explainJSON("exits"),
		questionJSON("which exit?"),
		gradeJSON(10),
		feedbackJSON("Review the material and try again."),
	)
	svc := newTestService(t, bot, mock)
	ctx := context.Background()

	reply, err := svc.Start(ctx)
	require.NoError(t, err)
	sessionID := reply.SessionID

	_, err = svc.SubmitTurn(ctx, sessionID, "probably the big door")
	require.NoError(t, err)

	reply, err = svc.SubmitTurn(ctx, sessionID, "1, 0")
	require.NoError(t, err)
	require.True(t, reply.Done)
	assert.False(t, reply.Outcome.Passed)
	require.Len(t, reply.Outcome.Results, 1)
	assert.Equal(t, 0, reply.Outcome.Results[0].Retries)
	// Strict mode has no retry, so the committed status is failed, not
	// gap_detected, even though the attempt produced gaps.
	assert.Equal(t, supervisor.StatusFailed, reply.Outcome.Results[0].Status)
}

func TestExhaustedRetriesCommitFailure(t *testing.T) {
	bot := twoTopicBot()
	bot.Topics = bot.Topics[:1]

	mock := llm.NewMockProvider(
		explainJSON("exits"),
		questionJSON("which exit?"),
		gradeJSON(20, "missed the dock exit"),
		// Retry of the topic.
		explainJSON("Once more: north stairs, then the dock."),
		questionJSON("which exit first?"),
		gradeJSON(20),
		feedbackJSON("Plan another session."),
	)
	svc := newTestService(t, bot, mock)
	ctx := context.Background()

	reply, err := svc.Start(ctx)
	require.NoError(t, err)
	sessionID := reply.SessionID

	_, err = svc.SubmitTurn(ctx, sessionID, "the big door probably")
	require.NoError(t, err)
	reply, err = svc.SubmitTurn(ctx, sessionID, "1, 0")
	require.NoError(t, err)
	assert.Contains(t, reply.Message, "once more")

	_, err = svc.SubmitTurn(ctx, sessionID, "still the big door")
	require.NoError(t, err)
	reply, err = svc.SubmitTurn(ctx, sessionID, "1, 0")
	require.NoError(t, err)

	require.True(t, reply.Done)
	require.Len(t, reply.Outcome.Results, 1)
	// The retry was spent, so the second failure commits as failed.
	assert.Equal(t, supervisor.StatusFailed, reply.Outcome.Results[0].Status)
	assert.Equal(t, 1, reply.Outcome.Results[0].Retries)
	assert.False(t, reply.Outcome.Passed)
}

func TestAuthoredQuizzesCappedAtThree(t *testing.T) {
	bot := twoTopicBot()
	bot.Topics = bot.Topics[:1]
	bot.Topics[0].Quizzes = nil
	for i := 0; i < 5; i++ {
		bot.Topics[0].Quizzes = append(bot.Topics[0].Quizzes, botconfig.QuizQuestion{
			ID:           fmt.Sprintf("t1-q%d", i+1),
			Type:         botconfig.TypeTrueFalse,
			Question:     fmt.Sprintf("Statement %d is true.", i+1),
			Options:      []string{"True", "False"},
			CorrectIndex: 0,
		})
	}

	mock := llm.NewMockProvider(
		explainJSON("exits"),
		questionJSON("which exit?"),
		gradeJSON(80),
	)
	svc := newTestService(t, bot, mock)
	ctx := context.Background()

	reply, err := svc.Start(ctx)
	require.NoError(t, err)

	reply, err = svc.SubmitTurn(ctx, reply.SessionID, "the north stairs, then the dock")
	require.NoError(t, err)
	require.Len(t, reply.Quizzes, 3)
	assert.Equal(t, "t1-q1", reply.Quizzes[0].ID)
	assert.Equal(t, "t1-q3", reply.Quizzes[2].ID)
}

func TestExplainFailureDefersTopic(t *testing.T) {
	bot := twoTopicBot()
	bot.Topics = bot.Topics[:1]

	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	svc := newTestService(t, bot, mock)
	ctx := context.Background()

	// The first turn still produces a user-facing message, not an error.
	reply, err := svc.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, supervisor.PhaseExplaining, reply.Phase)
	assert.Contains(t, reply.Message, "pick it up again")

	// The next learner message retries the topic.
	mock.AddResponse(explainJSON("exits"))
	mock.AddResponse(questionJSON("which exit?"))

	reply, err = svc.SubmitTurn(ctx, reply.SessionID, "hello")
	require.NoError(t, err)
	assert.Equal(t, supervisor.PhaseChecking, reply.Phase)
	assert.Contains(t, reply.Message, "which exit?")
}

func TestRetryGapsSurviveDeferredExplanation(t *testing.T) {
	bot := twoTopicBot()
	bot.Topics = bot.Topics[:1]

	mock := llm.NewMockProvider(
		explainJSON("exits"),
		questionJSON("which exit?"),
		gradeJSON(30, "missed the dock exit"),
		// The re-explanation for the retry fails outright.
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	svc := newTestService(t, bot, mock)
	ctx := context.Background()

	reply, err := svc.Start(ctx)
	require.NoError(t, err)
	sessionID := reply.SessionID

	_, err = svc.SubmitTurn(ctx, sessionID, "the big door probably")
	require.NoError(t, err)
	reply, err = svc.SubmitTurn(ctx, sessionID, "1, 0")
	require.NoError(t, err)
	assert.Equal(t, supervisor.PhaseRetrying, reply.Phase)
	assert.Contains(t, reply.Message, "pick it up again")

	mock.AddResponse(explainJSON("Once more: north stairs, then the dock."))
	mock.AddResponse(questionJSON("which exit first?"))

	reply, err = svc.SubmitTurn(ctx, sessionID, "ready")
	require.NoError(t, err)
	assert.Equal(t, supervisor.PhaseChecking, reply.Phase)

	// The deferred re-explanation still focuses on the failed attempt's
	// gaps, loaded from the persisted state.
	retryExplainPrompt := mock.Calls[4].Messages[0].Content
	assert.Contains(t, retryExplainPrompt, "missed the dock exit")
	assert.Contains(t, retryExplainPrompt, "missed quiz question: Primary exit?")
}

func TestShortAnswerSkipsGrading(t *testing.T) {
	bot := twoTopicBot()
	bot.Topics = bot.Topics[:1]

	mock := llm.NewMockProvider(
		explainJSON("exits"),
		questionJSON("which exit?"),
		// No grading response: a degenerate answer must not reach the model.
	)
	svc := newTestService(t, bot, mock)
	ctx := context.Background()

	reply, err := svc.Start(ctx)
	require.NoError(t, err)

	reply, err = svc.SubmitTurn(ctx, reply.SessionID, "ok")
	require.NoError(t, err)
	assert.Equal(t, supervisor.PhaseQuizzing, reply.Phase)
	assert.Equal(t, 2, mock.CallCount())
	assert.Contains(t, reply.Message, "no answer")
}

func TestQuizGeneratedWhenTopicHasNone(t *testing.T) {
	bot := twoTopicBot()
	bot.Topics = bot.Topics[:1]
	bot.Topics[0].Quizzes = nil

	mock := llm.NewMockProvider(
		explainJSON("exits"),
		questionJSON("which exit?"),
		gradeJSON(80),
		llm.MockResponse{Content: json.RawMessage(`{"questions": [
			{"type": "true_false", "question": "The north stairs are the primary exit.", "options": ["True", "False"], "correct_index": 0}
		]}`)},
		feedbackJSON("done"),
	)
	svc := newTestService(t, bot, mock)
	ctx := context.Background()

	reply, err := svc.Start(ctx)
	require.NoError(t, err)

	reply, err = svc.SubmitTurn(ctx, reply.SessionID, "the north stairs, then the dock")
	require.NoError(t, err)
	assert.Equal(t, supervisor.PhaseQuizzing, reply.Phase)
	require.Len(t, reply.Quizzes, 1)
	assert.Equal(t, "t1-gen-1", reply.Quizzes[0].ID)

	reply, err = svc.SubmitTurn(ctx, reply.SessionID, "0")
	require.NoError(t, err)
	require.True(t, reply.Done)
	// 80*0.4 + 100*0.6 = 92.
	assert.Equal(t, 92, reply.Outcome.OverallScore)
}

func TestQuizGenerationFailureResolvesOnOpenAnswer(t *testing.T) {
	bot := twoTopicBot()
	bot.Topics = bot.Topics[:1]
	bot.Topics[0].Quizzes = nil

	mock := llm.NewMockProvider(
		explainJSON("exits"),
		questionJSON("which exit?"),
		gradeJSON(90),
		// Quiz generation comes back with nothing usable.
		llm.MockResponse{Content: json.RawMessage(`{"questions": []}`)},
		feedbackJSON("done"),
	)
	svc := newTestService(t, bot, mock)
	ctx := context.Background()

	reply, err := svc.Start(ctx)
	require.NoError(t, err)

	reply, err = svc.SubmitTurn(ctx, reply.SessionID, "north stairs first, dock second")
	require.NoError(t, err)
	// Empty quiz is a vacuous pass: 90*0.4 + 100*0.6 = 96.
	require.True(t, reply.Done)
	assert.Equal(t, 96, reply.Outcome.OverallScore)
}

func TestMalformedQuizSubmissionScoredAsZeros(t *testing.T) {
	bot := twoTopicBot()
	bot.Topics = bot.Topics[:1]

	mock := llm.NewMockProvider(
		explainJSON("exits"),
		questionJSON("which exit?"),
		gradeJSON(100),
		feedbackJSON("done"),
	)
	svc := newTestService(t, bot, mock)
	ctx := context.Background()

	reply, err := svc.Start(ctx)
	require.NoError(t, err)

	reply, err = svc.SubmitTurn(ctx, reply.SessionID, "north stairs, then the loading dock")
	require.NoError(t, err)

	reply, err = svc.SubmitTurn(ctx, reply.SessionID, "the first one and the second one")
	require.NoError(t, err)
	require.True(t, reply.Done)
	// All-zero selections: q1 (correct 0) right, q2 (correct 1) wrong.
	// 100*0.4 + 50*0.6 = 70, exactly at the threshold.
	assert.Equal(t, 70, reply.Outcome.OverallScore)
	assert.True(t, reply.Outcome.Passed)
}

func TestUnknownSession(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := newTestService(t, twoTopicBot(), mock)

	_, err := svc.SubmitTurn(context.Background(), "no-such-session", "hello")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGradingFailureDegrades(t *testing.T) {
	bot := twoTopicBot()
	bot.Topics = bot.Topics[:1]

	mock := llm.NewMockProvider(
		explainJSON("exits"),
		questionJSON("which exit?"),
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	svc := newTestService(t, bot, mock)
	ctx := context.Background()

	reply, err := svc.Start(ctx)
	require.NoError(t, err)

	reply, err = svc.SubmitTurn(ctx, reply.SessionID, "the north stairs unless blocked")
	require.NoError(t, err)
	// Grading failure scores the component zero but the turn proceeds.
	assert.Equal(t, supervisor.PhaseQuizzing, reply.Phase)
	assert.Contains(t, reply.Message, "could not grade at this time")
}

func TestPerTopicOverridesRespected(t *testing.T) {
	lowBar := 10
	noRetries := 0
	bot := twoTopicBot()
	bot.Topics = bot.Topics[:1]
	bot.Topics[0].PassScoreOverride = &lowBar
	bot.Topics[0].MaxRetriesOverride = &noRetries

	mock := llm.NewMockProvider(
		explainJSON("exits"),
		questionJSON("which exit?"),
		gradeJSON(30),
		feedbackJSON("done"),
	)
	svc := newTestService(t, bot, mock)
	ctx := context.Background()

	reply, err := svc.Start(ctx)
	require.NoError(t, err)

	_, err = svc.SubmitTurn(ctx, reply.SessionID, "the stairs near the entrance")
	require.NoError(t, err)

	// Both quiz answers wrong: 30*0.4 + 0*0.6 = 12, above the 10
	// override, so the topic passes despite the low score.
	reply, err = svc.SubmitTurn(ctx, reply.SessionID, "1, 0")
	require.NoError(t, err)
	require.True(t, reply.Done)
	assert.Equal(t, supervisor.StatusPassed, reply.Outcome.Results[0].Status)
}
