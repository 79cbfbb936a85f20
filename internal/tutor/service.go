package tutor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/LinosCo/trainbot/internal/botconfig"
	"github.com/LinosCo/trainbot/internal/evaluator"
	"github.com/LinosCo/trainbot/internal/llm"
)

// Service produces all tutoring content: explanations, comprehension
// questions, generated quizzes, grades, and closing feedback. It is the
// only place the training engine talks to a model.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a tutoring service on top of a model provider.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Explain generates the explanation for one topic, adapted to the
// learner's competence and the attempt's adaptation depth.
func (s *Service) Explain(ctx context.Context, input ExplainInput) (string, error) {
	ctx = llm.WithPurpose(ctx, "explain")

	var out struct {
		Explanation string `json:"explanation"`
	}
	if err := s.generate(ctx, buildExplainUserMessage(input), ExplanationSchema, s.cfg.Temperature, &out); err != nil {
		return "", fmt.Errorf("explain topic %s: %w", input.Topic.ID, err)
	}
	return out.Explanation, nil
}

// CheckQuestion generates the open comprehension question that follows
// an explanation.
func (s *Service) CheckQuestion(ctx context.Context, input CheckInput) (string, error) {
	ctx = llm.WithPurpose(ctx, "check-question")

	var out struct {
		Question string `json:"question"`
	}
	if err := s.generate(ctx, buildCheckUserMessage(input), CheckQuestionSchema, s.cfg.Temperature, &out); err != nil {
		return "", fmt.Errorf("check question for topic %s: %w", input.Topic.ID, err)
	}
	return out.Question, nil
}

// QuizQuestions generates count closed questions for a topic that has no
// authored quizzes. Questions that come back structurally invalid are
// dropped; generation fails only when nothing usable remains.
func (s *Service) QuizQuestions(ctx context.Context, bot *botconfig.TrainingBot, topic botconfig.Topic, count int) ([]botconfig.QuizQuestion, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	var out struct {
		Questions []struct {
			Type         string   `json:"type"`
			Question     string   `json:"question"`
			Options      []string `json:"options"`
			CorrectIndex int      `json:"correct_index"`
		} `json:"questions"`
	}
	if err := s.generate(ctx, buildQuizUserMessage(bot, topic, count), QuizSchema, s.cfg.Temperature, &out); err != nil {
		return nil, fmt.Errorf("generate quiz for topic %s: %w", topic.ID, err)
	}

	questions := make([]botconfig.QuizQuestion, 0, len(out.Questions))
	for i, q := range out.Questions {
		quiz := botconfig.QuizQuestion{
			ID:           fmt.Sprintf("%s-gen-%d", topic.ID, i+1),
			Type:         botconfig.QuestionType(q.Type),
			Question:     q.Question,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
		}
		if err := quiz.Validate(); err != nil {
			continue
		}
		questions = append(questions, quiz)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("generate quiz for topic %s: no valid questions returned", topic.ID)
	}
	return questions, nil
}

// GradeAnswer scores a free-text answer against a topic's objectives.
// It implements evaluator.Grader.
func (s *Service) GradeAnswer(ctx context.Context, input evaluator.OpenAnswerInput) (*evaluator.OpenAnswerResult, error) {
	ctx = llm.WithPurpose(ctx, "grading")

	var out struct {
		Score    int      `json:"score"`
		Gaps     []string `json:"gaps"`
		Feedback string   `json:"feedback"`
	}
	req := llm.Request{
		System: gradingSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGradingUserMessage(input)},
		},
		Schema:      GradingSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: gradingTemperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("grade answer: %w", err)
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse grade response: %w", err)
	}

	return &evaluator.OpenAnswerResult{
		Score:    clampScore(out.Score),
		Gaps:     out.Gaps,
		Feedback: out.Feedback,
	}, nil
}

// FinalFeedback generates the closing message once every topic is
// resolved.
func (s *Service) FinalFeedback(ctx context.Context, input FinalInput) (string, error) {
	ctx = llm.WithPurpose(ctx, "final-feedback")

	var out struct {
		Feedback string `json:"feedback"`
	}
	if err := s.generate(ctx, buildFinalUserMessage(input), FinalFeedbackSchema, s.cfg.Temperature, &out); err != nil {
		return "", fmt.Errorf("final feedback: %w", err)
	}
	return out.Feedback, nil
}

// generate runs one schema-constrained request and unmarshals the result.
func (s *Service) generate(ctx context.Context, userMsg string, schema *llm.Schema, temperature float64, out any) error {
	req := llm.Request{
		System: tutorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Content, out); err != nil {
		return fmt.Errorf("parse %s response: %w", schema.Name, err)
	}
	return nil
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
