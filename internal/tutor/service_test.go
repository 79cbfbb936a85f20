package tutor

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/LinosCo/trainbot/internal/botconfig"
	"github.com/LinosCo/trainbot/internal/evaluator"
	"github.com/LinosCo/trainbot/internal/llm"
	"github.com/LinosCo/trainbot/internal/supervisor"
)

func testBot() *botconfig.TrainingBot {
	return &botconfig.TrainingBot{
		Name:        "fire-safety",
		PassScore:   70,
		MaxRetries:  1,
		FailureMode: botconfig.FailurePermissive,
		Language:    "English",
		Topics:      []botconfig.Topic{testTopic()},
	}
}

func testTopic() botconfig.Topic {
	return botconfig.Topic{
		ID:          "extinguishers",
		Label:       "Fire Extinguisher Types",
		Description: "Which extinguisher to use on which fire class",
		Objectives: []string{
			"Name the extinguisher classes",
			"Match each class to the fires it handles",
		},
	}
}

func TestService_Explain(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"explanation": "There are five extinguisher classes."}`),
	})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Explain(t.Context(), ExplainInput{
		Bot:        testBot(),
		Topic:      testTopic(),
		Competence: supervisor.CompetenceIntermediate,
	})
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if got != "There are five extinguisher classes." {
		t.Errorf("unexpected explanation: %q", got)
	}

	if llm.PurposeFrom(t.Context()) == "explain" {
		t.Error("purpose leaked into the test context")
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Fire Extinguisher Types") {
		t.Errorf("prompt missing topic label:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Name the extinguisher classes") {
		t.Errorf("prompt missing objectives:\n%s", prompt)
	}
}

func TestService_ExplainAdaptsToDepthAndGaps(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"explanation": "again"}`)},
		llm.MockResponse{Content: json.RawMessage(`{"explanation": "simplest"}`)},
	)
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Explain(t.Context(), ExplainInput{
		Bot:             testBot(),
		Topic:           testTopic(),
		Competence:      supervisor.CompetenceBeginner,
		AdaptationDepth: 1,
		Gaps:            []string{"confused class B with class C"},
	})
	if err != nil {
		t.Fatalf("explain depth 1: %v", err)
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "confused class B with class C") {
		t.Errorf("prompt missing gaps:\n%s", prompt)
	}
	if !strings.Contains(prompt, "more simply") {
		t.Errorf("depth 1 prompt not simplified:\n%s", prompt)
	}

	_, err = svc.Explain(t.Context(), ExplainInput{
		Bot:             testBot(),
		Topic:           testTopic(),
		AdaptationDepth: 2,
	})
	if err != nil {
		t.Fatalf("explain depth 2: %v", err)
	}
	prompt = mock.Calls[1].Messages[0].Content
	if !strings.Contains(prompt, "plainest possible terms") {
		t.Errorf("depth 2 prompt not simplest variant:\n%s", prompt)
	}
}

func TestService_CheckQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question": "Which extinguisher handles electrical fires?"}`),
	})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.CheckQuestion(t.Context(), CheckInput{
		Bot:         testBot(),
		Topic:       testTopic(),
		Explanation: "Class C extinguishers are for electrical fires.",
	})
	if err != nil {
		t.Fatalf("check question: %v", err)
	}
	if got == "" {
		t.Fatal("expected non-empty question")
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Class C extinguishers are for electrical fires.") {
		t.Errorf("prompt missing explanation context:\n%s", prompt)
	}
}

func TestService_QuizQuestionsDropsInvalid(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"questions": [
			{"type": "multiple_choice", "question": "Which class is for electrical fires?", "options": ["A", "B", "C"], "correct_index": 2},
			{"type": "true_false", "question": "Water works on grease fires.", "options": ["True", "False"], "correct_index": 5},
			{"type": "true_false", "question": "CO2 leaves no residue.", "options": ["True", "False"], "correct_index": 0}
		]}`),
	})
	svc := NewService(mock, DefaultConfig())

	questions, err := svc.QuizQuestions(t.Context(), testBot(), testTopic(), 3)
	if err != nil {
		t.Fatalf("quiz questions: %v", err)
	}
	// The out-of-range correct_index question is dropped.
	if len(questions) != 2 {
		t.Fatalf("expected 2 valid questions, got %d", len(questions))
	}
	if questions[0].CorrectIndex != 2 {
		t.Errorf("correct index = %d, want 2", questions[0].CorrectIndex)
	}
	if questions[0].ID == "" || questions[1].ID == "" {
		t.Error("generated questions must get IDs")
	}
}

func TestService_QuizQuestionsAllInvalid(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"questions": [
			{"type": "multiple_choice", "question": "Broken", "options": ["only one"], "correct_index": 0}
		]}`),
	})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.QuizQuestions(t.Context(), testBot(), testTopic(), 1)
	if err == nil {
		t.Fatal("expected error when no valid questions remain")
	}
}

func TestService_GradeAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 130, "gaps": ["missed class D"], "feedback": "Mostly right."}`),
	})
	svc := NewService(mock, DefaultConfig())

	result, err := svc.GradeAnswer(t.Context(), evaluator.OpenAnswerInput{
		Question:   "Name the extinguisher classes.",
		Answer:     "A for solids, B for liquids, C for electrical.",
		Objectives: testTopic().Objectives,
		Competence: supervisor.CompetenceIntermediate,
	})
	if err != nil {
		t.Fatalf("grade answer: %v", err)
	}
	// Out-of-range model scores are clamped.
	if result.Score != 100 {
		t.Errorf("score = %d, want 100", result.Score)
	}
	if len(result.Gaps) != 1 || result.Gaps[0] != "missed class D" {
		t.Errorf("gaps = %v", result.Gaps)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "A for solids") {
		t.Errorf("prompt missing answer:\n%s", prompt)
	}
	if mock.Calls[0].Temperature != gradingTemperature {
		t.Errorf("grading temperature = %v, want %v", mock.Calls[0].Temperature, gradingTemperature)
	}
}

func TestService_FinalFeedback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"feedback": "Strong finish. Revisit extinguisher classes."}`),
	})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.FinalFeedback(t.Context(), FinalInput{
		Bot: testBot(),
		Results: []supervisor.TopicResult{
			{TopicID: "extinguishers", TopicLabel: "Fire Extinguisher Types", Status: supervisor.StatusPassed, Score: 88, Retries: 1, Gaps: []string{"class D"}},
		},
		OverallScore: 88,
		Passed:       true,
	})
	if err != nil {
		t.Fatalf("final feedback: %v", err)
	}
	if got == "" {
		t.Fatal("expected non-empty feedback")
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Fire Extinguisher Types") {
		t.Errorf("prompt missing topic results:\n%s", prompt)
	}
	if !strings.Contains(prompt, "PASSED") {
		t.Errorf("prompt missing outcome:\n%s", prompt)
	}
}
