package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TrainingSession is one learner's run through a bot's topic list.
// The supervisor state is stored as a JSON document so a session can be
// resumed after a restart without replaying the message log.
type TrainingSession struct {
	ent.Schema
}

func (TrainingSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("UUID identifying the session"),
		field.String("bot_name").
			NotEmpty().
			Comment("Name of the bot configuration driving the session"),
		field.String("status").
			Default("in_progress").
			Comment("in_progress, completed, or failed"),
		field.JSON("state", map[string]any{}).
			Comment("Supervisor state as JSON"),
		field.Int("overall_score").
			Default(0).
			Comment("Rounded mean of topic scores (on complete only)"),
		field.Bool("passed").
			Default(false).
			Comment("Whether the overall score met the pass threshold"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (TrainingSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("bot_name"),
		index.Fields("status"),
		index.Fields("started_at"),
	}
}
