// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ananya/practiq/ent/practiceanswer"
	"github.com/ananya/practiq/ent/predicate"
)

// PracticeAnswerUpdate is the builder for updating PracticeAnswer entities.
type PracticeAnswerUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeAnswerMutation
}

// Where appends a list predicates to the PracticeAnswerUpdate builder.
func (_u *PracticeAnswerUpdate) Where(ps ...predicate.PracticeAnswer) *PracticeAnswerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSelectedOptions sets the "selected_options" field.
func (_u *PracticeAnswerUpdate) SetSelectedOptions(v []string) *PracticeAnswerUpdate {
	_u.mutation.SetSelectedOptions(v)
	return _u
}

// AppendSelectedOptions appends value to the "selected_options" field.
func (_u *PracticeAnswerUpdate) AppendSelectedOptions(v []string) *PracticeAnswerUpdate {
	_u.mutation.AppendSelectedOptions(v)
	return _u
}

// ClearSelectedOptions clears the value of the "selected_options" field.
func (_u *PracticeAnswerUpdate) ClearSelectedOptions() *PracticeAnswerUpdate {
	_u.mutation.ClearSelectedOptions()
	return _u
}

// SetText sets the "text" field.
func (_u *PracticeAnswerUpdate) SetText(v string) *PracticeAnswerUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *PracticeAnswerUpdate) SetNillableText(v *string) *PracticeAnswerUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *PracticeAnswerUpdate) SetCorrect(v bool) *PracticeAnswerUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *PracticeAnswerUpdate) SetNillableCorrect(v *bool) *PracticeAnswerUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_u *PracticeAnswerUpdate) SetTimeSpentMs(v int64) *PracticeAnswerUpdate {
	_u.mutation.ResetTimeSpentMs()
	_u.mutation.SetTimeSpentMs(v)
	return _u
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_u *PracticeAnswerUpdate) SetNillableTimeSpentMs(v *int64) *PracticeAnswerUpdate {
	if v != nil {
		_u.SetTimeSpentMs(*v)
	}
	return _u
}

// AddTimeSpentMs adds value to the "time_spent_ms" field.
func (_u *PracticeAnswerUpdate) AddTimeSpentMs(v int64) *PracticeAnswerUpdate {
	_u.mutation.AddTimeSpentMs(v)
	return _u
}

// Mutation returns the PracticeAnswerMutation object of the builder.
func (_u *PracticeAnswerUpdate) Mutation() *PracticeAnswerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeAnswerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeAnswerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeAnswerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeAnswerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PracticeAnswerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(practiceanswer.Table, practiceanswer.Columns, sqlgraph.NewFieldSpec(practiceanswer.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SelectedOptions(); ok {
		_spec.SetField(practiceanswer.FieldSelectedOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSelectedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practiceanswer.FieldSelectedOptions, value)
		})
	}
	if _u.mutation.SelectedOptionsCleared() {
		_spec.ClearField(practiceanswer.FieldSelectedOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(practiceanswer.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(practiceanswer.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSpentMs(); ok {
		_spec.SetField(practiceanswer.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMs(); ok {
		_spec.AddField(practiceanswer.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practiceanswer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeAnswerUpdateOne is the builder for updating a single PracticeAnswer entity.
type PracticeAnswerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeAnswerMutation
}

// SetSelectedOptions sets the "selected_options" field.
func (_u *PracticeAnswerUpdateOne) SetSelectedOptions(v []string) *PracticeAnswerUpdateOne {
	_u.mutation.SetSelectedOptions(v)
	return _u
}

// AppendSelectedOptions appends value to the "selected_options" field.
func (_u *PracticeAnswerUpdateOne) AppendSelectedOptions(v []string) *PracticeAnswerUpdateOne {
	_u.mutation.AppendSelectedOptions(v)
	return _u
}

// ClearSelectedOptions clears the value of the "selected_options" field.
func (_u *PracticeAnswerUpdateOne) ClearSelectedOptions() *PracticeAnswerUpdateOne {
	_u.mutation.ClearSelectedOptions()
	return _u
}

// SetText sets the "text" field.
func (_u *PracticeAnswerUpdateOne) SetText(v string) *PracticeAnswerUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *PracticeAnswerUpdateOne) SetNillableText(v *string) *PracticeAnswerUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *PracticeAnswerUpdateOne) SetCorrect(v bool) *PracticeAnswerUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *PracticeAnswerUpdateOne) SetNillableCorrect(v *bool) *PracticeAnswerUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_u *PracticeAnswerUpdateOne) SetTimeSpentMs(v int64) *PracticeAnswerUpdateOne {
	_u.mutation.ResetTimeSpentMs()
	_u.mutation.SetTimeSpentMs(v)
	return _u
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_u *PracticeAnswerUpdateOne) SetNillableTimeSpentMs(v *int64) *PracticeAnswerUpdateOne {
	if v != nil {
		_u.SetTimeSpentMs(*v)
	}
	return _u
}

// AddTimeSpentMs adds value to the "time_spent_ms" field.
func (_u *PracticeAnswerUpdateOne) AddTimeSpentMs(v int64) *PracticeAnswerUpdateOne {
	_u.mutation.AddTimeSpentMs(v)
	return _u
}

// Mutation returns the PracticeAnswerMutation object of the builder.
func (_u *PracticeAnswerUpdateOne) Mutation() *PracticeAnswerMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeAnswerUpdate builder.
func (_u *PracticeAnswerUpdateOne) Where(ps ...predicate.PracticeAnswer) *PracticeAnswerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeAnswerUpdateOne) Select(field string, fields ...string) *PracticeAnswerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeAnswer entity.
func (_u *PracticeAnswerUpdateOne) Save(ctx context.Context) (*PracticeAnswer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeAnswerUpdateOne) SaveX(ctx context.Context) *PracticeAnswer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeAnswerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeAnswerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PracticeAnswerUpdateOne) sqlSave(ctx context.Context) (_node *PracticeAnswer, err error) {
	_spec := sqlgraph.NewUpdateSpec(practiceanswer.Table, practiceanswer.Columns, sqlgraph.NewFieldSpec(practiceanswer.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeAnswer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practiceanswer.FieldID)
		for _, f := range fields {
			if !practiceanswer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practiceanswer.FieldID {
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
	if value, ok := _u.mutation.SelectedOptions(); ok {
		_spec.SetField(practiceanswer.FieldSelectedOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSelectedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practiceanswer.FieldSelectedOptions, value)
		})
	}
	if _u.mutation.SelectedOptionsCleared() {
		_spec.ClearField(practiceanswer.FieldSelectedOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(practiceanswer.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(practiceanswer.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSpentMs(); ok {
		_spec.SetField(practiceanswer.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMs(); ok {
		_spec.AddField(practiceanswer.FieldTimeSpentMs, field.TypeInt64, value)
	}
	_node = &PracticeAnswer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practiceanswer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
