package store

import (
	"context"
	"time"

	"github.com/LinosCo/trainbot/internal/supervisor"
)

// Session status lifecycle. A session is in_progress until its last
// topic commits, then completed or failed depending on the outcome.
const (
	SessionInProgress = "in_progress"
	SessionCompleted  = "completed"
	SessionFailed     = "failed"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter by purpose label ("" = all)
}

// TrainingSessionRecord is one learner's run through a bot, as persisted.
type TrainingSessionRecord struct {
	ID           int
	SessionID    string
	BotName      string
	Status       string // in_progress, completed, or failed
	State        supervisor.State
	OverallScore int
	Passed       bool
	StartedAt    time.Time
	CompletedAt  *time.Time
}

// SessionRepo manages training session lifecycle and state persistence.
type SessionRepo interface {
	// Create starts a new session with the given initial state.
	Create(ctx context.Context, sessionID, botName string, state supervisor.State) (*TrainingSessionRecord, error)

	// Get returns a session by its UUID, or nil if not found.
	Get(ctx context.Context, sessionID string) (*TrainingSessionRecord, error)

	// SaveState replaces the persisted supervisor state for a session.
	SaveState(ctx context.Context, sessionID string, state supervisor.State) error

	// Complete marks a session finished and records its outcome.
	Complete(ctx context.Context, sessionID string, overallScore int, passed bool) error

	// List returns sessions newest-first, up to limit (0 = all).
	List(ctx context.Context, limit int) ([]TrainingSessionRecord, error)

	// Delete removes a session and its messages.
	Delete(ctx context.Context, sessionID string) error
}

// MessageData is the payload for appending a conversation message.
type MessageData struct {
	SessionID string
	Role      string // learner or tutor
	Content   string
	Phase     string
}

// MessageRecord is a persisted conversation message.
type MessageRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionID string
	Role      string
	Content   string
	Phase     string
}

// MessageRepo provides append and replay access to conversation messages.
type MessageRepo interface {
	// Append records one message in sequence order.
	Append(ctx context.Context, data MessageData) error

	// BySession returns all messages for a session in sequence order.
	BySession(ctx context.Context, sessionID string) ([]MessageRecord, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a persisted LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates token usage per purpose label.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model ID.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest-first, honoring opts.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one event by row ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates usage per model ID.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
