// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/LinosCo/trainbot/ent/trainingsession"
)

// TrainingSessionCreate is the builder for creating a TrainingSession entity.
type TrainingSessionCreate struct {
	config
	mutation *TrainingSessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *TrainingSessionCreate) SetSessionID(v string) *TrainingSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetBotName sets the "bot_name" field.
func (_c *TrainingSessionCreate) SetBotName(v string) *TrainingSessionCreate {
	_c.mutation.SetBotName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TrainingSessionCreate) SetStatus(v string) *TrainingSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TrainingSessionCreate) SetNillableStatus(v *string) *TrainingSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *TrainingSessionCreate) SetState(v map[string]interface{}) *TrainingSessionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetOverallScore sets the "overall_score" field.
func (_c *TrainingSessionCreate) SetOverallScore(v int) *TrainingSessionCreate {
	_c.mutation.SetOverallScore(v)
	return _c
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_c *TrainingSessionCreate) SetNillableOverallScore(v *int) *TrainingSessionCreate {
	if v != nil {
		_c.SetOverallScore(*v)
	}
	return _c
}

// SetPassed sets the "passed" field.
func (_c *TrainingSessionCreate) SetPassed(v bool) *TrainingSessionCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_c *TrainingSessionCreate) SetNillablePassed(v *bool) *TrainingSessionCreate {
	if v != nil {
		_c.SetPassed(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TrainingSessionCreate) SetStartedAt(v time.Time) *TrainingSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TrainingSessionCreate) SetNillableStartedAt(v *time.Time) *TrainingSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TrainingSessionCreate) SetCompletedAt(v time.Time) *TrainingSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TrainingSessionCreate) SetNillableCompletedAt(v *time.Time) *TrainingSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the TrainingSessionMutation object of the builder.
func (_c *TrainingSessionCreate) Mutation() *TrainingSessionMutation {
	return _c.mutation
}

// Save creates the TrainingSession in the database.
func (_c *TrainingSessionCreate) Save(ctx context.Context) (*TrainingSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrainingSessionCreate) SaveX(ctx context.Context) *TrainingSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrainingSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrainingSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrainingSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := trainingsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.OverallScore(); !ok {
		v := trainingsession.DefaultOverallScore
		_c.mutation.SetOverallScore(v)
	}
	if _, ok := _c.mutation.Passed(); !ok {
		v := trainingsession.DefaultPassed
		_c.mutation.SetPassed(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := trainingsession.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrainingSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TrainingSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := trainingsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TrainingSession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BotName(); !ok {
		return &ValidationError{Name: "bot_name", err: errors.New(`ent: missing required field "TrainingSession.bot_name"`)}
	}
	if v, ok := _c.mutation.BotName(); ok {
		if err := trainingsession.BotNameValidator(v); err != nil {
			return &ValidationError{Name: "bot_name", err: fmt.Errorf(`ent: validator failed for field "TrainingSession.bot_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TrainingSession.status"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "TrainingSession.state"`)}
	}
	if _, ok := _c.mutation.OverallScore(); !ok {
		return &ValidationError{Name: "overall_score", err: errors.New(`ent: missing required field "TrainingSession.overall_score"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "TrainingSession.passed"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "TrainingSession.started_at"`)}
	}
	return nil
}

func (_c *TrainingSessionCreate) sqlSave(ctx context.Context) (*TrainingSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TrainingSessionCreate) createSpec() (*TrainingSession, *sqlgraph.CreateSpec) {
	var (
		_node = &TrainingSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trainingsession.Table, sqlgraph.NewFieldSpec(trainingsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(trainingsession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.BotName(); ok {
		_spec.SetField(trainingsession.FieldBotName, field.TypeString, value)
		_node.BotName = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(trainingsession.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(trainingsession.FieldState, field.TypeJSON, value)
		_node.State = value
	}
	if value, ok := _c.mutation.OverallScore(); ok {
		_spec.SetField(trainingsession.FieldOverallScore, field.TypeInt, value)
		_node.OverallScore = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(trainingsession.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(trainingsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(trainingsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// TrainingSessionCreateBulk is the builder for creating many TrainingSession entities in bulk.
type TrainingSessionCreateBulk struct {
	config
	err      error
	builders []*TrainingSessionCreate
}

// Save creates the TrainingSession entities in the database.
func (_c *TrainingSessionCreateBulk) Save(ctx context.Context) ([]*TrainingSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrainingSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrainingSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TrainingSessionCreateBulk) SaveX(ctx context.Context) []*TrainingSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrainingSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrainingSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
