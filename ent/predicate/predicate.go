// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// TrainingSession is the predicate function for trainingsession builders.
type TrainingSession func(*sql.Selector)
