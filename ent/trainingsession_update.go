// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/LinosCo/trainbot/ent/predicate"
	"github.com/LinosCo/trainbot/ent/trainingsession"
)

// TrainingSessionUpdate is the builder for updating TrainingSession entities.
type TrainingSessionUpdate struct {
	config
	hooks    []Hook
	mutation *TrainingSessionMutation
}

// Where appends a list predicates to the TrainingSessionUpdate builder.
func (_u *TrainingSessionUpdate) Where(ps ...predicate.TrainingSession) *TrainingSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBotName sets the "bot_name" field.
func (_u *TrainingSessionUpdate) SetBotName(v string) *TrainingSessionUpdate {
	_u.mutation.SetBotName(v)
	return _u
}

// SetNillableBotName sets the "bot_name" field if the given value is not nil.
func (_u *TrainingSessionUpdate) SetNillableBotName(v *string) *TrainingSessionUpdate {
	if v != nil {
		_u.SetBotName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TrainingSessionUpdate) SetStatus(v string) *TrainingSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TrainingSessionUpdate) SetNillableStatus(v *string) *TrainingSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *TrainingSessionUpdate) SetState(v map[string]interface{}) *TrainingSessionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *TrainingSessionUpdate) SetOverallScore(v int) *TrainingSessionUpdate {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *TrainingSessionUpdate) SetNillableOverallScore(v *int) *TrainingSessionUpdate {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *TrainingSessionUpdate) AddOverallScore(v int) *TrainingSessionUpdate {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *TrainingSessionUpdate) SetPassed(v bool) *TrainingSessionUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *TrainingSessionUpdate) SetNillablePassed(v *bool) *TrainingSessionUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TrainingSessionUpdate) SetCompletedAt(v time.Time) *TrainingSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TrainingSessionUpdate) SetNillableCompletedAt(v *time.Time) *TrainingSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TrainingSessionUpdate) ClearCompletedAt() *TrainingSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the TrainingSessionMutation object of the builder.
func (_u *TrainingSessionUpdate) Mutation() *TrainingSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrainingSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrainingSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrainingSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrainingSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrainingSessionUpdate) check() error {
	if v, ok := _u.mutation.BotName(); ok {
		if err := trainingsession.BotNameValidator(v); err != nil {
			return &ValidationError{Name: "bot_name", err: fmt.Errorf(`ent: validator failed for field "TrainingSession.bot_name": %w`, err)}
		}
	}
	return nil
}

func (_u *TrainingSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trainingsession.Table, trainingsession.Columns, sqlgraph.NewFieldSpec(trainingsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BotName(); ok {
		_spec.SetField(trainingsession.FieldBotName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(trainingsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(trainingsession.FieldState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(trainingsession.FieldOverallScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(trainingsession.FieldOverallScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(trainingsession.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(trainingsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(trainingsession.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trainingsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrainingSessionUpdateOne is the builder for updating a single TrainingSession entity.
type TrainingSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrainingSessionMutation
}

// SetBotName sets the "bot_name" field.
func (_u *TrainingSessionUpdateOne) SetBotName(v string) *TrainingSessionUpdateOne {
	_u.mutation.SetBotName(v)
	return _u
}

// SetNillableBotName sets the "bot_name" field if the given value is not nil.
func (_u *TrainingSessionUpdateOne) SetNillableBotName(v *string) *TrainingSessionUpdateOne {
	if v != nil {
		_u.SetBotName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TrainingSessionUpdateOne) SetStatus(v string) *TrainingSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TrainingSessionUpdateOne) SetNillableStatus(v *string) *TrainingSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *TrainingSessionUpdateOne) SetState(v map[string]interface{}) *TrainingSessionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *TrainingSessionUpdateOne) SetOverallScore(v int) *TrainingSessionUpdateOne {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *TrainingSessionUpdateOne) SetNillableOverallScore(v *int) *TrainingSessionUpdateOne {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *TrainingSessionUpdateOne) AddOverallScore(v int) *TrainingSessionUpdateOne {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *TrainingSessionUpdateOne) SetPassed(v bool) *TrainingSessionUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *TrainingSessionUpdateOne) SetNillablePassed(v *bool) *TrainingSessionUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TrainingSessionUpdateOne) SetCompletedAt(v time.Time) *TrainingSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TrainingSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *TrainingSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TrainingSessionUpdateOne) ClearCompletedAt() *TrainingSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the TrainingSessionMutation object of the builder.
func (_u *TrainingSessionUpdateOne) Mutation() *TrainingSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the TrainingSessionUpdate builder.
func (_u *TrainingSessionUpdateOne) Where(ps ...predicate.TrainingSession) *TrainingSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrainingSessionUpdateOne) Select(field string, fields ...string) *TrainingSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrainingSession entity.
func (_u *TrainingSessionUpdateOne) Save(ctx context.Context) (*TrainingSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrainingSessionUpdateOne) SaveX(ctx context.Context) *TrainingSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrainingSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrainingSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrainingSessionUpdateOne) check() error {
	if v, ok := _u.mutation.BotName(); ok {
		if err := trainingsession.BotNameValidator(v); err != nil {
			return &ValidationError{Name: "bot_name", err: fmt.Errorf(`ent: validator failed for field "TrainingSession.bot_name": %w`, err)}
		}
	}
	return nil
}

func (_u *TrainingSessionUpdateOne) sqlSave(ctx context.Context) (_node *TrainingSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trainingsession.Table, trainingsession.Columns, sqlgraph.NewFieldSpec(trainingsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrainingSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trainingsession.FieldID)
		for _, f := range fields {
			if !trainingsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trainingsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BotName(); ok {
		_spec.SetField(trainingsession.FieldBotName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(trainingsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(trainingsession.FieldState, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(trainingsession.FieldOverallScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(trainingsession.FieldOverallScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(trainingsession.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(trainingsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(trainingsession.FieldCompletedAt, field.TypeTime)
	}
	_node = &TrainingSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trainingsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
