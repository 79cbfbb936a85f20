package botconfig

import (
	"fmt"
	"strings"
)

// Validate performs all structural checks on the bot configuration.
// Returns a combined error describing all problems found, or nil if valid.
// A bot that fails validation must never reach a session: configuration
// errors are fatal at creation time, not mid-turn.
func (b *TrainingBot) Validate() error {
	var errs []string

	if b.Name == "" {
		errs = append(errs, "bot name is required")
	}
	if len(b.Topics) == 0 {
		errs = append(errs, "at least one topic is required")
	}
	if b.PassScore < 0 || b.PassScore > 100 {
		errs = append(errs, fmt.Sprintf("pass_score must be in [0, 100], got %d", b.PassScore))
	}
	if b.MaxRetries < 0 {
		errs = append(errs, fmt.Sprintf("max_retries must be >= 0, got %d", b.MaxRetries))
	}
	switch b.FailureMode {
	case FailureStrict, FailurePermissive:
	default:
		errs = append(errs, fmt.Sprintf("failure_mode must be %q or %q, got %q", FailureStrict, FailurePermissive, b.FailureMode))
	}

	idSet := make(map[string]bool, len(b.Topics))
	for i, t := range b.Topics {
		prefix := fmt.Sprintf("topic %d (%s)", i, t.ID)

		if t.ID == "" {
			errs = append(errs, fmt.Sprintf("topic %d: id is required", i))
		}
		if idSet[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate topic ID: %q", t.ID))
		}
		idSet[t.ID] = true

		if t.Label == "" {
			errs = append(errs, prefix+": label is required")
		}
		if len(t.Objectives) == 0 {
			errs = append(errs, prefix+": at least one learning objective is required")
		}
		for j, o := range t.Objectives {
			if strings.TrimSpace(o) == "" {
				errs = append(errs, fmt.Sprintf("%s: objective %d is empty", prefix, j))
			}
		}

		if t.PassScoreOverride != nil {
			if v := *t.PassScoreOverride; v < 0 || v > 100 {
				errs = append(errs, fmt.Sprintf("%s: pass_score_override must be in [0, 100], got %d", prefix, v))
			}
		}
		if t.MaxRetriesOverride != nil {
			if v := *t.MaxRetriesOverride; v < 0 {
				errs = append(errs, fmt.Sprintf("%s: max_retries_override must be >= 0, got %d", prefix, v))
			}
		}

		for j, q := range t.Quizzes {
			qPrefix := fmt.Sprintf("%s quiz %d", prefix, j)
			if err := q.Validate(); err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", qPrefix, err))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("bot configuration invalid:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Validate checks a single quiz question. The correct-index bound is
// enforced here, at configuration time, so grading never has to.
func (q *QuizQuestion) Validate() error {
	var errs []string

	switch q.Type {
	case TypeMultipleChoice:
		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("multiple choice needs at least 2 options, got %d", len(q.Options)))
		}
	case TypeTrueFalse:
		if len(q.Options) != 2 {
			errs = append(errs, fmt.Sprintf("true/false needs exactly 2 options, got %d", len(q.Options)))
		}
	default:
		errs = append(errs, fmt.Sprintf("unknown question type %q", q.Type))
	}

	if q.Question == "" {
		errs = append(errs, "question text is required")
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		errs = append(errs, fmt.Sprintf("correct_index %d out of range for %d options", q.CorrectIndex, len(q.Options)))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
