// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dverney/quizine/ent/judgeevent"
	"github.com/dverney/quizine/ent/predicate"
)

// JudgeEventUpdate is the builder for updating JudgeEvent entities.
type JudgeEventUpdate struct {
	config
	hooks    []Hook
	mutation *JudgeEventMutation
}

// Where appends a list predicates to the JudgeEventUpdate builder.
func (_u *JudgeEventUpdate) Where(ps ...predicate.JudgeEvent) *JudgeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *JudgeEventUpdate) SetProvider(v string) *JudgeEventUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *JudgeEventUpdate) SetNillableProvider(v *string) *JudgeEventUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *JudgeEventUpdate) SetQuestion(v string) *JudgeEventUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *JudgeEventUpdate) SetNillableQuestion(v *string) *JudgeEventUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *JudgeEventUpdate) SetLanguage(v string) *JudgeEventUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *JudgeEventUpdate) SetNillableLanguage(v *string) *JudgeEventUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *JudgeEventUpdate) SetScore(v int) *JudgeEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *JudgeEventUpdate) SetNillableScore(v *int) *JudgeEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *JudgeEventUpdate) AddScore(v int) *JudgeEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *JudgeEventUpdate) SetLatencyMs(v int64) *JudgeEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *JudgeEventUpdate) SetNillableLatencyMs(v *int64) *JudgeEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *JudgeEventUpdate) AddLatencyMs(v int64) *JudgeEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *JudgeEventUpdate) SetSuccess(v bool) *JudgeEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *JudgeEventUpdate) SetNillableSuccess(v *bool) *JudgeEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JudgeEventUpdate) SetErrorMessage(v string) *JudgeEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JudgeEventUpdate) SetNillableErrorMessage(v *string) *JudgeEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the JudgeEventMutation object of the builder.
func (_u *JudgeEventUpdate) Mutation() *JudgeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JudgeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JudgeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JudgeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JudgeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *JudgeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(judgeevent.Table, judgeevent.Columns, sqlgraph.NewFieldSpec(judgeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(judgeevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(judgeevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(judgeevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(judgeevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(judgeevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(judgeevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(judgeevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(judgeevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(judgeevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{judgeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JudgeEventUpdateOne is the builder for updating a single JudgeEvent entity.
type JudgeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JudgeEventMutation
}

// SetProvider sets the "provider" field.
func (_u *JudgeEventUpdateOne) SetProvider(v string) *JudgeEventUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *JudgeEventUpdateOne) SetNillableProvider(v *string) *JudgeEventUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *JudgeEventUpdateOne) SetQuestion(v string) *JudgeEventUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *JudgeEventUpdateOne) SetNillableQuestion(v *string) *JudgeEventUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *JudgeEventUpdateOne) SetLanguage(v string) *JudgeEventUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *JudgeEventUpdateOne) SetNillableLanguage(v *string) *JudgeEventUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *JudgeEventUpdateOne) SetScore(v int) *JudgeEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *JudgeEventUpdateOne) SetNillableScore(v *int) *JudgeEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *JudgeEventUpdateOne) AddScore(v int) *JudgeEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *JudgeEventUpdateOne) SetLatencyMs(v int64) *JudgeEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *JudgeEventUpdateOne) SetNillableLatencyMs(v *int64) *JudgeEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *JudgeEventUpdateOne) AddLatencyMs(v int64) *JudgeEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *JudgeEventUpdateOne) SetSuccess(v bool) *JudgeEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *JudgeEventUpdateOne) SetNillableSuccess(v *bool) *JudgeEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JudgeEventUpdateOne) SetErrorMessage(v string) *JudgeEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JudgeEventUpdateOne) SetNillableErrorMessage(v *string) *JudgeEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the JudgeEventMutation object of the builder.
func (_u *JudgeEventUpdateOne) Mutation() *JudgeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the JudgeEventUpdate builder.
func (_u *JudgeEventUpdateOne) Where(ps ...predicate.JudgeEvent) *JudgeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JudgeEventUpdateOne) Select(field string, fields ...string) *JudgeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JudgeEvent entity.
func (_u *JudgeEventUpdateOne) Save(ctx context.Context) (*JudgeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JudgeEventUpdateOne) SaveX(ctx context.Context) *JudgeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JudgeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JudgeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *JudgeEventUpdateOne) sqlSave(ctx context.Context) (_node *JudgeEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(judgeevent.Table, judgeevent.Columns, sqlgraph.NewFieldSpec(judgeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JudgeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, judgeevent.FieldID)
		for _, f := range fields {
			if !judgeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != judgeevent.FieldID {
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
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(judgeevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(judgeevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(judgeevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(judgeevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(judgeevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(judgeevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(judgeevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(judgeevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(judgeevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &JudgeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{judgeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
