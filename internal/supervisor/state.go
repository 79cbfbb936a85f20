package supervisor

import "github.com/LinosCo/trainbot/internal/botconfig"

// Phase is the current stage of a topic's life cycle.
type Phase string

const (
	PhaseExplaining Phase = "explaining"
	PhaseChecking   Phase = "checking"
	PhaseQuizzing   Phase = "quizzing"
	PhaseRetrying   Phase = "retrying"
	PhaseComplete   Phase = "complete"

	// PhaseEvaluating is logically folded into the quizzing handler and
	// never dispatched on its own.
	PhaseEvaluating Phase = "evaluating"

	// PhaseDataCollection is reserved for a post-training contact-capture
	// step. No transition reaches it yet.
	PhaseDataCollection Phase = "data_collection"
)

// CompetenceLevel is inferred from free-text answer verbosity and tunes
// how later explanations are pitched.
type CompetenceLevel string

const (
	CompetenceBeginner     CompetenceLevel = "beginner"
	CompetenceIntermediate CompetenceLevel = "intermediate"
	CompetenceAdvanced     CompetenceLevel = "advanced"
)

// TopicStatus is the committed outcome of a topic.
type TopicStatus string

const (
	StatusPassed      TopicStatus = "passed"
	StatusFailed      TopicStatus = "failed"
	StatusGapDetected TopicStatus = "gap_detected"
)

// MaxAdaptationDepth caps explanation simplification. Beyond two rounds
// simplification stops helping, and the prompt variants are finite.
const MaxAdaptationDepth = 2

// TopicResult is the final scored outcome for one topic. Exactly one
// result per topic is committed, never one per attempt; Retries records
// how many attempts it took.
type TopicResult struct {
	TopicID    string      `json:"topic_id"`
	TopicLabel string      `json:"topic_label"`
	Status     TopicStatus `json:"status"`

	// Score is the weighted combination of the component scores (0-100).
	Score           int `json:"score"`
	OpenAnswerScore int `json:"open_answer_score"`
	QuizScore       int `json:"quiz_score"`

	Retries  int      `json:"retries"`
	Gaps     []string `json:"gaps,omitempty"`
	Feedback string   `json:"feedback,omitempty"`
}

// PendingEvaluation holds the open-answer grade between the checking and
// quizzing steps of a single attempt. It is scratch state, distinct from
// the committed Results, and is cleared on every topic transition.
type PendingEvaluation struct {
	OpenAnswerScore int      `json:"open_answer_score"`
	Gaps            []string `json:"gaps,omitempty"`
	Feedback        string   `json:"feedback,omitempty"`
}

// State is the supervisor's full position in the training path.
// TopicIndex only ever increases, and only when a topic's evaluation
// becomes final.
type State struct {
	TopicIndex      int             `json:"topic_index"`
	Phase           Phase           `json:"phase"`
	RetryCount      int             `json:"retry_count"`
	AdaptationDepth int             `json:"adaptation_depth"`
	Competence      CompetenceLevel `json:"competence"`

	// Results holds committed topic outcomes only. Its length equals the
	// number of topics fully resolved so far.
	Results []TopicResult `json:"results"`

	// Transient per-attempt fields. CheckQuestion exists between the
	// checking prompt and its answer; PendingQuizzes and Pending exist
	// between checking and the quiz resolution.
	CheckQuestion  string                   `json:"check_question,omitempty"`
	PendingQuizzes []botconfig.QuizQuestion `json:"pending_quizzes,omitempty"`
	Pending        *PendingEvaluation       `json:"pending,omitempty"`

	// GapFocus carries the gaps a retry explanation must address. Set
	// when a topic enters the retrying phase and kept until its result
	// commits, so the focus survives a crashed or failed re-explanation.
	GapFocus []string `json:"gap_focus,omitempty"`

	// AnswerLog accumulates every free-text answer in the session.
	// Competence detection runs over the whole log.
	AnswerLog []string `json:"answer_log,omitempty"`
}

// NewState returns the state a fresh session starts in.
func NewState() State {
	return State{
		TopicIndex: 0,
		Phase:      PhaseExplaining,
		Competence: CompetenceIntermediate,
		Results:    []TopicResult{},
	}
}

// clearTransients drops the per-attempt scratch fields.
func (s *State) clearTransients() {
	s.CheckQuestion = ""
	s.PendingQuizzes = nil
	s.Pending = nil
}
