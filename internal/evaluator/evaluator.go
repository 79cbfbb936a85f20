package evaluator

import (
	"context"
	"math"
	"strings"

	"github.com/LinosCo/trainbot/internal/botconfig"
	"github.com/LinosCo/trainbot/internal/supervisor"
)

// Weights for the combined topic score. The deterministic quiz outweighs
// the free-form answer because it cannot be gamed by verbosity.
const (
	openAnswerWeight = 0.4
	quizWeight       = 0.6
)

// minGradableLength is the shortest answer worth sending to the grader.
const minGradableLength = 5

// TopicScore combines the open-answer and quiz component scores into the
// weighted topic score (0-100).
func TopicScore(openAnswerScore, quizScore int) int {
	return int(math.Round(float64(openAnswerScore)*openAnswerWeight + float64(quizScore)*quizWeight))
}

// QuizResult is the outcome of deterministic quiz scoring.
type QuizResult struct {
	Score int

	// Wrong holds the incorrectly answered questions in original order,
	// for feedback and retry prompts.
	Wrong []botconfig.QuizQuestion
}

// EvaluateQuiz scores selected option indexes against the questions.
// An empty question set is a vacuous pass: callers must not rely on a
// non-empty quiz.
func EvaluateQuiz(questions []botconfig.QuizQuestion, selected []int) QuizResult {
	if len(questions) == 0 {
		return QuizResult{Score: 100}
	}

	res := QuizResult{}
	correct := 0
	for i, q := range questions {
		if i < len(selected) && selected[i] == q.CorrectIndex {
			correct++
			continue
		}
		res.Wrong = append(res.Wrong, q)
	}
	res.Score = int(math.Round(float64(correct) / float64(len(questions)) * 100))
	return res
}

// OpenAnswerInput is everything the grading capability needs.
type OpenAnswerInput struct {
	Question   string
	Answer     string
	Objectives []string
	Competence supervisor.CompetenceLevel
}

// OpenAnswerResult is the graded outcome of a free-text answer.
type OpenAnswerResult struct {
	Score    int
	Gaps     []string
	Feedback string
}

// Grader is the external open-answer grading capability.
type Grader interface {
	GradeAnswer(ctx context.Context, in OpenAnswerInput) (*OpenAnswerResult, error)
}

// EvaluateOpenAnswer grades a free-text answer. Degenerate answers are
// scored locally without a grader round trip, and a failed grading call
// degrades to a zero score with an explicit gap entry — grading failure
// is never fatal to the turn.
func EvaluateOpenAnswer(ctx context.Context, grader Grader, in OpenAnswerInput) OpenAnswerResult {
	if len(strings.TrimSpace(in.Answer)) < minGradableLength {
		return OpenAnswerResult{
			Score:    0,
			Gaps:     []string{"no answer provided"},
			Feedback: "no answer",
		}
	}

	res, err := grader.GradeAnswer(ctx, in)
	if err != nil || res == nil {
		return OpenAnswerResult{
			Score:    0,
			Gaps:     []string{"automatic grading failed"},
			Feedback: "could not grade at this time",
		}
	}
	return *res
}
