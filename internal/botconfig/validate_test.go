package botconfig

import (
	"strings"
	"testing"
)

func validBot() *TrainingBot {
	return &TrainingBot{
		Name:        "onboarding",
		PassScore:   70,
		MaxRetries:  1,
		FailureMode: FailurePermissive,
		Topics: []Topic{
			{
				ID:         "intro",
				Label:      "Introduction",
				Objectives: []string{"Know the ground rules"},
				Quizzes: []QuizQuestion{
					{ID: "q1", Type: TypeTrueFalse, Question: "Badges are required.", Options: []string{"True", "False"}, CorrectIndex: 0},
				},
			},
		},
	}
}

func TestValidate_ValidBotPasses(t *testing.T) {
	if err := validBot().Validate(); err != nil {
		t.Fatalf("valid bot rejected: %v", err)
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	bot := &TrainingBot{
		PassScore:   150,
		MaxRetries:  -1,
		FailureMode: "lenient",
	}
	err := bot.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"name is required", "at least one topic", "pass_score", "max_retries", "failure_mode"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q, got: %v", want, err)
		}
	}
}

func TestValidate_DetectsDuplicateTopicID(t *testing.T) {
	bot := validBot()
	bot.Topics = append(bot.Topics, bot.Topics[0])
	err := bot.Validate()
	if err == nil {
		t.Fatal("expected error for duplicate topic ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidate_TopicNeedsObjectives(t *testing.T) {
	bot := validBot()
	bot.Topics[0].Objectives = []string{"  "}
	err := bot.Validate()
	if err == nil {
		t.Fatal("expected error for blank objective, got nil")
	}
	if !strings.Contains(err.Error(), "objective") {
		t.Errorf("error should mention objective, got: %v", err)
	}
}

func TestValidate_OverrideRanges(t *testing.T) {
	badScore := 101
	badRetries := -2
	bot := validBot()
	bot.Topics[0].PassScoreOverride = &badScore
	bot.Topics[0].MaxRetriesOverride = &badRetries

	err := bot.Validate()
	if err == nil {
		t.Fatal("expected error for bad overrides, got nil")
	}
	if !strings.Contains(err.Error(), "pass_score_override") || !strings.Contains(err.Error(), "max_retries_override") {
		t.Errorf("error should mention both overrides, got: %v", err)
	}
}

func TestQuizQuestionValidate(t *testing.T) {
	tests := []struct {
		name    string
		q       QuizQuestion
		wantErr string
	}{
		{
			name: "valid multiple choice",
			q:    QuizQuestion{ID: "q", Type: TypeMultipleChoice, Question: "Pick one", Options: []string{"a", "b", "c"}, CorrectIndex: 1},
		},
		{
			name:    "multiple choice with one option",
			q:       QuizQuestion{ID: "q", Type: TypeMultipleChoice, Question: "Pick one", Options: []string{"a"}, CorrectIndex: 0},
			wantErr: "at least 2 options",
		},
		{
			name:    "true false with three options",
			q:       QuizQuestion{ID: "q", Type: TypeTrueFalse, Question: "Really?", Options: []string{"True", "False", "Maybe"}, CorrectIndex: 0},
			wantErr: "exactly 2 options",
		},
		{
			name:    "unknown type",
			q:       QuizQuestion{ID: "q", Type: "essay", Question: "Discuss", Options: []string{"a", "b"}, CorrectIndex: 0},
			wantErr: "unknown question type",
		},
		{
			name:    "correct index out of range",
			q:       QuizQuestion{ID: "q", Type: TypeTrueFalse, Question: "Really?", Options: []string{"True", "False"}, CorrectIndex: 2},
			wantErr: "out of range",
		},
		{
			name:    "missing question text",
			q:       QuizQuestion{ID: "q", Type: TypeTrueFalse, Options: []string{"True", "False"}, CorrectIndex: 0},
			wantErr: "question text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error should mention %q, got: %v", tt.wantErr, err)
			}
		})
	}
}
