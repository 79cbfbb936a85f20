// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/LinosCo/trainbot/ent/llmrequestevent"
	"github.com/LinosCo/trainbot/ent/message"
	"github.com/LinosCo/trainbot/ent/schema"
	"github.com/LinosCo/trainbot/ent/trainingsession"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	messageMixin := schema.Message{}.Mixin()
	messageMixinFields0 := messageMixin[0].Fields()
	_ = messageMixinFields0
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescTimestamp is the schema descriptor for timestamp field.
	messageDescTimestamp := messageMixinFields0[1].Descriptor()
	// message.DefaultTimestamp holds the default value on creation for the timestamp field.
	message.DefaultTimestamp = messageDescTimestamp.Default.(func() time.Time)
	// messageDescSessionID is the schema descriptor for session_id field.
	messageDescSessionID := messageFields[0].Descriptor()
	// message.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	message.SessionIDValidator = messageDescSessionID.Validators[0].(func(string) error)
	// messageDescRole is the schema descriptor for role field.
	messageDescRole := messageFields[1].Descriptor()
	// message.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	message.RoleValidator = messageDescRole.Validators[0].(func(string) error)
	// messageDescPhase is the schema descriptor for phase field.
	messageDescPhase := messageFields[3].Descriptor()
	// message.DefaultPhase holds the default value on creation for the phase field.
	message.DefaultPhase = messageDescPhase.Default.(string)
	trainingsessionFields := schema.TrainingSession{}.Fields()
	_ = trainingsessionFields
	// trainingsessionDescSessionID is the schema descriptor for session_id field.
	trainingsessionDescSessionID := trainingsessionFields[0].Descriptor()
	// trainingsession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	trainingsession.SessionIDValidator = trainingsessionDescSessionID.Validators[0].(func(string) error)
	// trainingsessionDescBotName is the schema descriptor for bot_name field.
	trainingsessionDescBotName := trainingsessionFields[1].Descriptor()
	// trainingsession.BotNameValidator is a validator for the "bot_name" field. It is called by the builders before save.
	trainingsession.BotNameValidator = trainingsessionDescBotName.Validators[0].(func(string) error)
	// trainingsessionDescStatus is the schema descriptor for status field.
	trainingsessionDescStatus := trainingsessionFields[2].Descriptor()
	// trainingsession.DefaultStatus holds the default value on creation for the status field.
	trainingsession.DefaultStatus = trainingsessionDescStatus.Default.(string)
	// trainingsessionDescOverallScore is the schema descriptor for overall_score field.
	trainingsessionDescOverallScore := trainingsessionFields[4].Descriptor()
	// trainingsession.DefaultOverallScore holds the default value on creation for the overall_score field.
	trainingsession.DefaultOverallScore = trainingsessionDescOverallScore.Default.(int)
	// trainingsessionDescPassed is the schema descriptor for passed field.
	trainingsessionDescPassed := trainingsessionFields[5].Descriptor()
	// trainingsession.DefaultPassed holds the default value on creation for the passed field.
	trainingsession.DefaultPassed = trainingsessionDescPassed.Default.(bool)
	// trainingsessionDescStartedAt is the schema descriptor for started_at field.
	trainingsessionDescStartedAt := trainingsessionFields[6].Descriptor()
	// trainingsession.DefaultStartedAt holds the default value on creation for the started_at field.
	trainingsession.DefaultStartedAt = trainingsessionDescStartedAt.Default.(func() time.Time)
}
