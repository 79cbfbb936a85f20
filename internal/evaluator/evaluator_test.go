package evaluator

import (
	"context"
	"errors"
	"testing"

	"github.com/LinosCo/trainbot/internal/botconfig"
	"github.com/LinosCo/trainbot/internal/supervisor"
)

func TestTopicScore(t *testing.T) {
	tests := []struct {
		name string
		open int
		quiz int
		want int
	}{
		{"both perfect", 100, 100, 100},
		{"both zero", 0, 0, 0},
		{"quiz outweighs open", 0, 100, 60},
		{"open only", 100, 0, 40},
		{"rounds up", 90, 100, 96},
		{"rounds half", 25, 50, 40},
		{"typical pass", 80, 67, 72},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TopicScore(tt.open, tt.quiz); got != tt.want {
				t.Errorf("TopicScore(%d, %d) = %d, want %d", tt.open, tt.quiz, got, tt.want)
			}
		})
	}
}

func quizSet() []botconfig.QuizQuestion {
	return []botconfig.QuizQuestion{
		{ID: "q1", Type: botconfig.TypeMultipleChoice, Question: "first", Options: []string{"a", "b", "c"}, CorrectIndex: 1},
		{ID: "q2", Type: botconfig.TypeTrueFalse, Question: "second", Options: []string{"True", "False"}, CorrectIndex: 0},
		{ID: "q3", Type: botconfig.TypeTrueFalse, Question: "third", Options: []string{"True", "False"}, CorrectIndex: 1},
	}
}

func TestEvaluateQuiz(t *testing.T) {
	tests := []struct {
		name      string
		selected  []int
		wantScore int
		wantWrong []string
	}{
		{"all correct", []int{1, 0, 1}, 100, nil},
		{"two of three", []int{1, 0, 0}, 67, []string{"q3"}},
		{"one of three", []int{1, 1, 0}, 33, []string{"q2", "q3"}},
		{"none correct", []int{0, 1, 0}, 0, []string{"q1", "q2", "q3"}},
		{"short selection", []int{1}, 33, []string{"q2", "q3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := EvaluateQuiz(quizSet(), tt.selected)
			if res.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", res.Score, tt.wantScore)
			}
			if len(res.Wrong) != len(tt.wantWrong) {
				t.Fatalf("wrong = %d questions, want %d", len(res.Wrong), len(tt.wantWrong))
			}
			for i, id := range tt.wantWrong {
				if res.Wrong[i].ID != id {
					t.Errorf("wrong[%d] = %q, want %q", i, res.Wrong[i].ID, id)
				}
			}
		})
	}
}

func TestEvaluateQuiz_EmptyIsVacuousPass(t *testing.T) {
	res := EvaluateQuiz(nil, nil)
	if res.Score != 100 {
		t.Errorf("score = %d, want 100", res.Score)
	}
	if len(res.Wrong) != 0 {
		t.Errorf("wrong = %v, want none", res.Wrong)
	}
}

type stubGrader struct {
	result *OpenAnswerResult
	err    error
	calls  int
}

func (g *stubGrader) GradeAnswer(_ context.Context, _ OpenAnswerInput) (*OpenAnswerResult, error) {
	g.calls++
	return g.result, g.err
}

func TestEvaluateOpenAnswer_Delegates(t *testing.T) {
	grader := &stubGrader{result: &OpenAnswerResult{Score: 85, Gaps: []string{"units"}, Feedback: "good"}}

	res := EvaluateOpenAnswer(context.Background(), grader, OpenAnswerInput{
		Question: "Why?",
		Answer:   "Because the policy requires it.",
	})
	if res.Score != 85 || res.Feedback != "good" {
		t.Errorf("result = %+v", res)
	}
	if grader.calls != 1 {
		t.Errorf("grader calls = %d, want 1", grader.calls)
	}
}

func TestEvaluateOpenAnswer_ShortAnswerScoredLocally(t *testing.T) {
	grader := &stubGrader{result: &OpenAnswerResult{Score: 85}}

	res := EvaluateOpenAnswer(context.Background(), grader, OpenAnswerInput{Answer: "  ok  "})
	if grader.calls != 0 {
		t.Error("degenerate answer must not reach the grader")
	}
	if res.Score != 0 || res.Feedback != "no answer" {
		t.Errorf("result = %+v", res)
	}
	if len(res.Gaps) != 1 || res.Gaps[0] != "no answer provided" {
		t.Errorf("gaps = %v", res.Gaps)
	}
}

func TestEvaluateOpenAnswer_GraderFailureDegrades(t *testing.T) {
	grader := &stubGrader{err: errors.New("model down")}

	res := EvaluateOpenAnswer(context.Background(), grader, OpenAnswerInput{Answer: "a serious attempt at an answer"})
	if res.Score != 0 || res.Feedback != "could not grade at this time" {
		t.Errorf("result = %+v", res)
	}
	if len(res.Gaps) != 1 || res.Gaps[0] != "automatic grading failed" {
		t.Errorf("gaps = %v", res.Gaps)
	}
}

func TestDetectCompetence(t *testing.T) {
	long := make([]byte, 120)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name    string
		answers []string
		want    supervisor.CompetenceLevel
	}{
		{"empty history", nil, supervisor.CompetenceIntermediate},
		{"terse answers", []string{"yes", "the stairs", "no idea"}, supervisor.CompetenceBeginner},
		{"mid-length answers", []string{
			"The north stairs are the primary route and the dock is the backup for our floor.",
		}, supervisor.CompetenceIntermediate},
		{"one long answer", []string{string(long)}, supervisor.CompetenceAdvanced},
		{"short but one long", []string{"yes", string(long)}, supervisor.CompetenceAdvanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCompetence(tt.answers); got != tt.want {
				t.Errorf("DetectCompetence() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseQuizSelections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		n    int
		want []int
	}{
		{"json array", "[1, 0, 2]", 3, []int{1, 0, 2}},
		{"csv", "1, 0, 2", 3, []int{1, 0, 2}},
		{"csv no spaces", "1,0", 2, []int{1, 0}},
		{"length mismatch", "[1]", 3, []int{0, 0, 0}},
		{"garbage", "the second one", 2, []int{0, 0}},
		{"empty", "   ", 2, []int{0, 0}},
		{"bad json", "[1, x]", 2, []int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseQuizSelections(tt.raw, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("selections = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}
