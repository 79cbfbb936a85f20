package training

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/LinosCo/trainbot/internal/botconfig"
	"github.com/LinosCo/trainbot/internal/evaluator"
	"github.com/LinosCo/trainbot/internal/store"
	"github.com/LinosCo/trainbot/internal/supervisor"
	"github.com/LinosCo/trainbot/internal/tutor"
)

// Service drives training sessions turn by turn: it dispatches each
// learner message to the handler for the session's current phase,
// persists the resulting state, and records the conversation.
type Service struct {
	bot      *botconfig.TrainingBot
	tutor    *tutor.Service
	sessions store.SessionRepo
	messages store.MessageRepo

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates a training engine for one bot configuration.
func NewService(bot *botconfig.TrainingBot, tut *tutor.Service, sessions store.SessionRepo, messages store.MessageRepo) *Service {
	return &Service{
		bot:      bot,
		tutor:    tut,
		sessions: sessions,
		messages: messages,
		locks:    map[string]*sync.Mutex{},
	}
}

// Bot returns the bot configuration this engine runs.
func (s *Service) Bot() *botconfig.TrainingBot {
	return s.bot
}

// Start creates a new session and produces the first topic's
// explanation and comprehension question.
func (s *Service) Start(ctx context.Context) (*TurnReply, error) {
	sessionID := uuid.NewString()
	state := supervisor.NewState()

	if _, err := s.sessions.Create(ctx, sessionID, s.bot.Name, state); err != nil {
		return nil, err
	}

	reply, err := s.beginTopic(ctx, sessionID, &state)
	if err != nil {
		return nil, err
	}
	return reply, nil
}

// Resume reloads an existing session so the conversation can continue.
// It returns the persisted state's phase without generating new content.
func (s *Service) Resume(ctx context.Context, sessionID string) (*store.TrainingSessionRecord, []store.MessageRecord, error) {
	rec, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, ErrSessionNotFound
	}
	msgs, err := s.messages.BySession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	return rec, msgs, nil
}

// SubmitTurn processes one learner message for a session. Turns on a
// completed session are a no-op that restates the outcome.
func (s *Service) SubmitTurn(ctx context.Context, sessionID, input string) (*TurnReply, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	rec, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrSessionNotFound
	}

	state := rec.State
	if rec.Status != store.SessionInProgress || state.Phase == supervisor.PhaseComplete {
		return &TurnReply{
			SessionID: sessionID,
			Phase:     supervisor.PhaseComplete,
			Message:   "This training session is already complete.",
			Done:      true,
			Outcome: &SessionOutcome{
				OverallScore: rec.OverallScore,
				Passed:       rec.Passed,
				Results:      state.Results,
			},
		}, nil
	}

	s.record(ctx, sessionID, "learner", input, state.Phase)

	switch state.Phase {
	case supervisor.PhaseChecking:
		return s.handleCheckAnswer(ctx, sessionID, &state, input)
	case supervisor.PhaseQuizzing:
		return s.handleQuizAnswers(ctx, sessionID, &state, input)
	case supervisor.PhaseExplaining, supervisor.PhaseRetrying:
		// Reachable only if a previous turn failed before the
		// explanation was produced. Produce it now; any retry gaps
		// are carried in the persisted state.
		return s.beginTopic(ctx, sessionID, &state)
	default:
		return nil, fmt.Errorf("session %s: unexpected phase %q", sessionID, state.Phase)
	}
}

// beginTopic explains the current topic and asks the comprehension
// question, moving the session into the checking phase. A failed
// content call degrades to a retryable message: the phase stays
// explaining (or retrying) and the next learner message tries again.
func (s *Service) beginTopic(ctx context.Context, sessionID string, state *supervisor.State) (*TurnReply, error) {
	topic := s.bot.Topics[state.TopicIndex]

	explanation, err := s.tutor.Explain(ctx, tutor.ExplainInput{
		Bot:             s.bot,
		Topic:           topic,
		Competence:      state.Competence,
		AdaptationDepth: state.AdaptationDepth,
		Gaps:            state.GapFocus,
	})
	if err != nil {
		return s.deferTopic(ctx, sessionID, state)
	}

	question, err := s.tutor.CheckQuestion(ctx, tutor.CheckInput{
		Bot:         s.bot,
		Topic:       topic,
		Explanation: explanation,
	})
	if err != nil {
		return s.deferTopic(ctx, sessionID, state)
	}

	state.Phase = supervisor.PhaseChecking
	state.CheckQuestion = question
	if err := s.sessions.SaveState(ctx, sessionID, *state); err != nil {
		return nil, err
	}

	msg := explanation + "\n\n" + question
	s.record(ctx, sessionID, "tutor", msg, state.Phase)

	return &TurnReply{
		SessionID: sessionID,
		Phase:     state.Phase,
		Message:   msg,
	}, nil
}

// deferTopic persists the current (pre-checking) state and answers with
// a retryable message instead of an error. The explaining/retrying
// dispatch in SubmitTurn picks the topic back up on the next message.
func (s *Service) deferTopic(ctx context.Context, sessionID string, state *supervisor.State) (*TurnReply, error) {
	if err := s.sessions.SaveState(ctx, sessionID, *state); err != nil {
		return nil, err
	}

	msg := "I couldn't prepare the material for this topic just now. Send any message and we'll pick it up again."
	s.record(ctx, sessionID, "tutor", msg, state.Phase)

	return &TurnReply{
		SessionID: sessionID,
		Phase:     state.Phase,
		Message:   msg,
	}, nil
}

// handleCheckAnswer grades the open answer, lines up the topic's quiz,
// and moves the session into the quizzing phase. Topics that end up with
// no quiz at all resolve immediately on the open answer.
func (s *Service) handleCheckAnswer(ctx context.Context, sessionID string, state *supervisor.State, input string) (*TurnReply, error) {
	topic := s.bot.Topics[state.TopicIndex]

	state.AnswerLog = append(state.AnswerLog, input)
	state.Competence = evaluator.DetectCompetence(state.AnswerLog)

	graded := evaluator.EvaluateOpenAnswer(ctx, s.tutor, evaluator.OpenAnswerInput{
		Question:   state.CheckQuestion,
		Answer:     input,
		Objectives: topic.Objectives,
		Competence: state.Competence,
	})
	state.Pending = &supervisor.PendingEvaluation{
		OpenAnswerScore: graded.Score,
		Gaps:            graded.Gaps,
		Feedback:        graded.Feedback,
	}

	quizzes := topic.Quizzes
	if len(quizzes) > quizzesPerTopic {
		quizzes = quizzes[:quizzesPerTopic]
	}
	if len(quizzes) == 0 {
		generated, err := s.tutor.QuizQuestions(ctx, s.bot, topic, quizzesPerTopic)
		if err == nil {
			quizzes = generated
		}
		// Generation failure leaves the quiz empty; the topic resolves
		// on the open answer alone.
	}

	if len(quizzes) == 0 {
		return s.resolveTopic(ctx, sessionID, state, topic, evaluator.QuizResult{Score: 100})
	}

	state.PendingQuizzes = quizzes
	state.Phase = supervisor.PhaseQuizzing
	if err := s.sessions.SaveState(ctx, sessionID, *state); err != nil {
		return nil, err
	}

	msg := graded.Feedback + "\n\nTime for a quick quiz. Answer with the option numbers in order, comma separated."
	s.record(ctx, sessionID, "tutor", msg, state.Phase)

	return &TurnReply{
		SessionID: sessionID,
		Phase:     state.Phase,
		Message:   msg,
		Quizzes:   quizzes,
	}, nil
}

// handleQuizAnswers scores the quiz submission and resolves the topic.
func (s *Service) handleQuizAnswers(ctx context.Context, sessionID string, state *supervisor.State, input string) (*TurnReply, error) {
	topic := s.bot.Topics[state.TopicIndex]

	selections := evaluator.ParseQuizSelections(input, len(state.PendingQuizzes))
	quizResult := evaluator.EvaluateQuiz(state.PendingQuizzes, selections)

	return s.resolveTopic(ctx, sessionID, state, topic, quizResult)
}

// resolveTopic combines the attempt's component scores into a final
// topic result and advances, retries, or completes the session.
func (s *Service) resolveTopic(ctx context.Context, sessionID string, state *supervisor.State, topic botconfig.Topic, quizResult evaluator.QuizResult) (*TurnReply, error) {
	pending := state.Pending
	if pending == nil {
		pending = &supervisor.PendingEvaluation{}
	}

	combined := evaluator.TopicScore(pending.OpenAnswerScore, quizResult.Score)

	gaps := slices.Clone(pending.Gaps)
	for _, q := range quizResult.Wrong {
		gaps = append(gaps, "missed quiz question: "+q.Question)
	}

	// A failing attempt is gap_detected only while a retry is still
	// available; once retries are spent (or the bot is strict) the
	// committed status is failed.
	threshold := supervisor.PassThreshold(s.bot, topic)
	retryAvailable := s.bot.FailureMode == botconfig.FailurePermissive &&
		state.RetryCount < supervisor.MaxRetriesFor(s.bot, topic)

	status := supervisor.StatusFailed
	switch {
	case combined >= threshold:
		status = supervisor.StatusPassed
	case retryAvailable:
		status = supervisor.StatusGapDetected
	}

	result := supervisor.TopicResult{
		TopicID:         topic.ID,
		TopicLabel:      topic.Label,
		Status:          status,
		Score:           combined,
		OpenAnswerScore: pending.OpenAnswerScore,
		QuizScore:       quizResult.Score,
		Retries:         state.RetryCount,
		Gaps:            gaps,
		Feedback:        pending.Feedback,
	}

	next, _ := supervisor.AdvanceAfterEvaluation(*state, result, s.bot, topic, len(s.bot.Topics))
	*state = next

	switch state.Phase {
	case supervisor.PhaseRetrying:
		reply, err := s.beginTopic(ctx, sessionID, state)
		if err != nil {
			return nil, err
		}
		reply.Message = retryPreamble(result) + "\n\n" + reply.Message
		return reply, nil

	case supervisor.PhaseComplete:
		return s.finishSession(ctx, sessionID, state)

	default:
		reply, err := s.beginTopic(ctx, sessionID, state)
		if err != nil {
			return nil, err
		}
		reply.Message = outcomeLine(result) + "\n\n" + reply.Message
		return reply, nil
	}
}

// finishSession commits the outcome and produces closing feedback.
func (s *Service) finishSession(ctx context.Context, sessionID string, state *supervisor.State) (*TurnReply, error) {
	overall := supervisor.OverallScore(state.Results)
	passed := supervisor.SessionPassed(state.Results, s.bot.PassScore)

	if err := s.sessions.SaveState(ctx, sessionID, *state); err != nil {
		return nil, err
	}
	if err := s.sessions.Complete(ctx, sessionID, overall, passed); err != nil {
		return nil, err
	}

	feedback, err := s.tutor.FinalFeedback(ctx, tutor.FinalInput{
		Bot:          s.bot,
		Results:      state.Results,
		OverallScore: overall,
		Passed:       passed,
	})
	if err != nil {
		// The outcome is committed; closing feedback degrades to a
		// plain summary instead of failing the last turn.
		feedback = fallbackFinalMessage(state.Results)
	}

	outcome := "You did not reach the pass score this time."
	if passed {
		outcome = "You passed!"
	}
	msg := fmt.Sprintf("Training complete. Overall score: %d. %s\n\n%s", overall, outcome, feedback)
	s.record(ctx, sessionID, "tutor", msg, supervisor.PhaseComplete)

	return &TurnReply{
		SessionID: sessionID,
		Phase:     supervisor.PhaseComplete,
		Message:   msg,
		Done:      true,
		Outcome: &SessionOutcome{
			OverallScore: overall,
			Passed:       passed,
			Results:      state.Results,
		},
	}, nil
}

// record appends a conversation message, tolerating persistence errors:
// losing a transcript line must not break the turn.
func (s *Service) record(ctx context.Context, sessionID, role, content string, phase supervisor.Phase) {
	_ = s.messages.Append(ctx, store.MessageData{
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		Phase:     string(phase),
	})
}

func (s *Service) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}

func retryPreamble(result supervisor.TopicResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "That attempt scored %d, below the pass mark. Let's go over %s once more.", result.Score, result.TopicLabel)
	if result.Feedback != "" {
		b.WriteString(" " + result.Feedback)
	}
	return b.String()
}

func outcomeLine(result supervisor.TopicResult) string {
	if result.Status == supervisor.StatusPassed {
		return fmt.Sprintf("%s: passed with %d. Moving on.", result.TopicLabel, result.Score)
	}
	return fmt.Sprintf("%s: scored %d. We have to move on, but review this one later.", result.TopicLabel, result.Score)
}

func fallbackFinalMessage(results []supervisor.TopicResult) string {
	var b strings.Builder
	b.WriteString("Topic summary:\n")
	for _, r := range results {
		fmt.Fprintf(&b, "- %s: %s (%d)\n", r.TopicLabel, r.Status, r.Score)
	}
	return b.String()
}
