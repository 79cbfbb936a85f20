// Code generated by ent, DO NOT EDIT.

package trainingsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/LinosCo/trainbot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldEQ(FieldSessionID, v))
}

// BotName applies equality check predicate on the "bot_name" field. It's identical to BotNameEQ.
func BotName(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldEQ(FieldBotName, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldEQ(FieldStatus, v))
}

// OverallScore applies equality check predicate on the "overall_score" field. It's identical to OverallScoreEQ.
func OverallScore(v int) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldEQ(FieldOverallScore, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldEQ(FieldPassed, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldEQ(FieldCompletedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldContainsFold(FieldSessionID, v))
}

// BotNameEQ applies the EQ predicate on the "bot_name" field.
func BotNameEQ(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldEQ(FieldBotName, v))
}

// BotNameNEQ applies the NEQ predicate on the "bot_name" field.
func BotNameNEQ(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldNEQ(FieldBotName, v))
}

// BotNameIn applies the In predicate on the "bot_name" field.
func BotNameIn(vs ...string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldIn(FieldBotName, vs...))
}

// BotNameNotIn applies the NotIn predicate on the "bot_name" field.
func BotNameNotIn(vs ...string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldNotIn(FieldBotName, vs...))
}

// BotNameGT applies the GT predicate on the "bot_name" field.
func BotNameGT(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldGT(FieldBotName, v))
}

// BotNameGTE applies the GTE predicate on the "bot_name" field.
func BotNameGTE(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldGTE(FieldBotName, v))
}

// BotNameLT applies the LT predicate on the "bot_name" field.
func BotNameLT(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldLT(FieldBotName, v))
}

// BotNameLTE applies the LTE predicate on the "bot_name" field.
func BotNameLTE(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldLTE(FieldBotName, v))
}

// BotNameContains applies the Contains predicate on the "bot_name" field.
func BotNameContains(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldContains(FieldBotName, v))
}

// BotNameHasPrefix applies the HasPrefix predicate on the "bot_name" field.
func BotNameHasPrefix(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldHasPrefix(FieldBotName, v))
}

// BotNameHasSuffix applies the HasSuffix predicate on the "bot_name" field.
func BotNameHasSuffix(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldHasSuffix(FieldBotName, v))
}

// BotNameEqualFold applies the EqualFold predicate on the "bot_name" field.
func BotNameEqualFold(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldEqualFold(FieldBotName, v))
}

// BotNameContainsFold applies the ContainsFold predicate on the "bot_name" field.
func BotNameContainsFold(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldContainsFold(FieldBotName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldContainsFold(FieldStatus, v))
}

// OverallScoreEQ applies the EQ predicate on the "overall_score" field.
func OverallScoreEQ(v int) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldEQ(FieldOverallScore, v))
}

// OverallScoreNEQ applies the NEQ predicate on the "overall_score" field.
func OverallScoreNEQ(v int) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldNEQ(FieldOverallScore, v))
}

// OverallScoreIn applies the In predicate on the "overall_score" field.
func OverallScoreIn(vs ...int) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldIn(FieldOverallScore, vs...))
}

// OverallScoreNotIn applies the NotIn predicate on the "overall_score" field.
func OverallScoreNotIn(vs ...int) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldNotIn(FieldOverallScore, vs...))
}

// OverallScoreGT applies the GT predicate on the "overall_score" field.
func OverallScoreGT(v int) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldGT(FieldOverallScore, v))
}

// OverallScoreGTE applies the GTE predicate on the "overall_score" field.
func OverallScoreGTE(v int) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldGTE(FieldOverallScore, v))
}

// OverallScoreLT applies the LT predicate on the "overall_score" field.
func OverallScoreLT(v int) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldLT(FieldOverallScore, v))
}

// OverallScoreLTE applies the LTE predicate on the "overall_score" field.
func OverallScoreLTE(v int) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldLTE(FieldOverallScore, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldNEQ(FieldPassed, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.TrainingSession {
	return predicate.TrainingSession(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrainingSession) predicate.TrainingSession {
	return predicate.TrainingSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrainingSession) predicate.TrainingSession {
	return predicate.TrainingSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrainingSession) predicate.TrainingSession {
	return predicate.TrainingSession(sql.NotPredicates(p))
}
