package botconfig

// FailureMode controls what happens when a trainee fails a topic.
type FailureMode string

const (
	// FailureStrict commits a failed topic immediately and moves on.
	// Retry caps, including per-topic overrides, are ignored.
	FailureStrict FailureMode = "strict"

	// FailurePermissive re-explains a failed topic with simplified
	// content, up to the retry cap, before committing the failure.
	FailurePermissive FailureMode = "permissive"
)

// QuestionType is the structured-question kind.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeTrueFalse      QuestionType = "true_false"
)

// TrainingBot is the immutable configuration a training session runs
// against. Topics are processed in declaration order.
type TrainingBot struct {
	Name   string  `yaml:"name"`
	Topics []Topic `yaml:"topics"`

	// PassScore is the default per-topic pass threshold (0-100).
	PassScore int `yaml:"pass_score"`

	// MaxRetries is the default retry cap per topic. Only meaningful
	// under permissive failure mode.
	MaxRetries int `yaml:"max_retries"`

	FailureMode FailureMode `yaml:"failure_mode"`

	// Language and EducationLevel are passed through to content
	// generation; the engine does not interpret them.
	Language       string `yaml:"language"`
	EducationLevel string `yaml:"education_level"`
}

// Topic is one unit of learning content.
type Topic struct {
	ID          string   `yaml:"id"`
	Label       string   `yaml:"label"`
	Description string   `yaml:"description"`
	Objectives  []string `yaml:"objectives"`

	// Quizzes, when present, are served instead of generated questions.
	Quizzes []QuizQuestion `yaml:"quizzes"`

	// Per-topic overrides. Nil means "use the bot default".
	PassScoreOverride  *int `yaml:"pass_score_override"`
	MaxRetriesOverride *int `yaml:"max_retries_override"`
}

// QuizQuestion is a structured question with exactly one correct option.
type QuizQuestion struct {
	ID           string       `yaml:"id" json:"id"`
	Type         QuestionType `yaml:"type" json:"type"`
	Question     string       `yaml:"question" json:"question"`
	Options      []string     `yaml:"options" json:"options"`
	CorrectIndex int          `yaml:"correct_index" json:"correct_index"`
}
