package botconfig

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
name: fire-safety
max_retries: 2
failure_mode: strict
language: English
education_level: high school
topics:
  - id: extinguishers
    label: Fire Extinguisher Types
    description: Which extinguisher for which fire class
    objectives:
      - Name the extinguisher classes
    pass_score_override: 80
    quizzes:
      - id: q1
        type: multiple_choice
        question: Which class is for electrical fires?
        options: ["A", "B", "C"]
        correct_index: 2
`

func TestParse_AppliesDefaults(t *testing.T) {
	bot, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	// pass_score is unset in the YAML.
	if bot.PassScore != 70 {
		t.Errorf("pass score = %d, want default 70", bot.PassScore)
	}
	if bot.FailureMode != FailureStrict {
		t.Errorf("failure mode = %q, want strict", bot.FailureMode)
	}
	if len(bot.Topics) != 1 {
		t.Fatalf("expected 1 topic, got %d", len(bot.Topics))
	}

	topic := bot.Topics[0]
	if topic.PassScoreOverride == nil || *topic.PassScoreOverride != 80 {
		t.Errorf("pass score override not parsed: %v", topic.PassScoreOverride)
	}
	if len(topic.Quizzes) != 1 || topic.Quizzes[0].CorrectIndex != 2 {
		t.Errorf("quizzes not parsed: %+v", topic.Quizzes)
	}
}

func TestParse_DefaultsOnlyWhereUnset(t *testing.T) {
	bot, err := Parse([]byte(`
name: minimal
topics:
  - id: only
    label: Only Topic
    objectives: ["learn it"]
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if bot.PassScore != DefaultPassScore {
		t.Errorf("pass score = %d, want %d", bot.PassScore, DefaultPassScore)
	}
	if bot.MaxRetries != DefaultMaxRetries {
		t.Errorf("max retries = %d, want %d", bot.MaxRetries, DefaultMaxRetries)
	}

	// Explicit zeros are kept, not overwritten by the defaults.
	bot, err = Parse([]byte(`
name: zeros
pass_score: 0
max_retries: 0
topics:
  - id: only
    label: Only Topic
    objectives: ["learn it"]
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if bot.PassScore != 0 {
		t.Errorf("explicit pass_score 0 overwritten to %d", bot.PassScore)
	}
	if bot.MaxRetries != 0 {
		t.Errorf("explicit max_retries 0 overwritten to %d", bot.MaxRetries)
	}
}

func TestParse_DefaultFailureModeIsPermissive(t *testing.T) {
	bot, err := Parse([]byte(`
name: minimal
topics:
  - id: only
    label: Only Topic
    objectives: ["learn it"]
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if bot.FailureMode != FailurePermissive {
		t.Errorf("failure mode = %q, want permissive", bot.FailureMode)
	}
}

func TestParse_RejectsInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("topics: [")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestParse_RejectsInvalidConfig(t *testing.T) {
	if _, err := Parse([]byte("name: nameless-topics")); err == nil {
		t.Fatal("expected validation error for bot with no topics")
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	bot, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if bot.Name != "fire-safety" {
		t.Errorf("name = %q", bot.Name)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
