package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message is one turn of a training conversation, learner or tutor.
type Message struct {
	ent.Schema
}

func (Message) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the owning training session"),
		field.String("role").
			NotEmpty().
			Comment("learner or tutor"),
		field.Text("content").
			Comment("Message text as shown in the conversation"),
		field.String("phase").
			Default("").
			Comment("Supervisor phase at the time the message was recorded"),
	}
}

func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("session_id", "sequence"),
	}
}
