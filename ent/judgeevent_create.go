// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dverney/quizine/ent/judgeevent"
)

// JudgeEventCreate is the builder for creating a JudgeEvent entity.
type JudgeEventCreate struct {
	config
	mutation *JudgeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *JudgeEventCreate) SetSequence(v int64) *JudgeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *JudgeEventCreate) SetTimestamp(v time.Time) *JudgeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *JudgeEventCreate) SetNillableTimestamp(v *time.Time) *JudgeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUID sets the "uid" field.
func (_c *JudgeEventCreate) SetUID(v string) *JudgeEventCreate {
	_c.mutation.SetUID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *JudgeEventCreate) SetProvider(v string) *JudgeEventCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *JudgeEventCreate) SetQuestion(v string) *JudgeEventCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *JudgeEventCreate) SetLanguage(v string) *JudgeEventCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *JudgeEventCreate) SetNillableLanguage(v *string) *JudgeEventCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *JudgeEventCreate) SetScore(v int) *JudgeEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *JudgeEventCreate) SetNillableScore(v *int) *JudgeEventCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *JudgeEventCreate) SetLatencyMs(v int64) *JudgeEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *JudgeEventCreate) SetNillableLatencyMs(v *int64) *JudgeEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *JudgeEventCreate) SetSuccess(v bool) *JudgeEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *JudgeEventCreate) SetErrorMessage(v string) *JudgeEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *JudgeEventCreate) SetNillableErrorMessage(v *string) *JudgeEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the JudgeEventMutation object of the builder.
func (_c *JudgeEventCreate) Mutation() *JudgeEventMutation {
	return _c.mutation
}

// Save creates the JudgeEvent in the database.
func (_c *JudgeEventCreate) Save(ctx context.Context) (*JudgeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JudgeEventCreate) SaveX(ctx context.Context) *JudgeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JudgeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JudgeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JudgeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := judgeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Language(); !ok {
		v := judgeevent.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := judgeevent.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := judgeevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := judgeevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JudgeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "JudgeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "JudgeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UID(); !ok {
		return &ValidationError{Name: "uid", err: errors.New(`ent: missing required field "JudgeEvent.uid"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "JudgeEvent.provider"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "JudgeEvent.question"`)}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "JudgeEvent.language"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "JudgeEvent.score"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "JudgeEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "JudgeEvent.success"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "JudgeEvent.error_message"`)}
	}
	return nil
}

func (_c *JudgeEventCreate) sqlSave(ctx context.Context) (*JudgeEvent, error) {
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

func (_c *JudgeEventCreate) createSpec() (*JudgeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &JudgeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(judgeevent.Table, sqlgraph.NewFieldSpec(judgeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(judgeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(judgeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UID(); ok {
		_spec.SetField(judgeevent.FieldUID, field.TypeString, value)
		_node.UID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(judgeevent.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(judgeevent.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(judgeevent.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(judgeevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(judgeevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(judgeevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(judgeevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// JudgeEventCreateBulk is the builder for creating many JudgeEvent entities in bulk.
type JudgeEventCreateBulk struct {
	config
	err      error
	builders []*JudgeEventCreate
}

// Save creates the JudgeEvent entities in the database.
func (_c *JudgeEventCreateBulk) Save(ctx context.Context) ([]*JudgeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JudgeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JudgeEventMutation)
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
func (_c *JudgeEventCreateBulk) SaveX(ctx context.Context) []*JudgeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JudgeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JudgeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
