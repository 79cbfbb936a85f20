package training

import (
	"errors"

	"github.com/LinosCo/trainbot/internal/botconfig"
	"github.com/LinosCo/trainbot/internal/supervisor"
)

// ErrSessionNotFound is returned when a turn references an unknown session.
var ErrSessionNotFound = errors.New("training session not found")

// quizzesPerTopic caps how many quiz questions an attempt carries:
// authored quizzes are trimmed to the first three, and topics without
// any get three generated ones.
const quizzesPerTopic = 3

// SessionOutcome is the final result of a completed session.
type SessionOutcome struct {
	OverallScore int
	Passed       bool
	Results      []supervisor.TopicResult
}

// TurnReply is everything the conversation surface needs to render after
// one turn: the tutor's message, the phase the session is now in, and
// any quizzes the learner must answer next.
type TurnReply struct {
	SessionID string
	Phase     supervisor.Phase
	Message   string

	// Quizzes is set when the session just entered the quizzing phase.
	Quizzes []botconfig.QuizQuestion

	// Done is true once every topic is resolved. Outcome is set with it.
	Done    bool
	Outcome *SessionOutcome
}
