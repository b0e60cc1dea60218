// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ananya/practiq/ent/practiceanswer"
)

// PracticeAnswerCreate is the builder for creating a PracticeAnswer entity.
type PracticeAnswerCreate struct {
	config
	mutation *PracticeAnswerMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *PracticeAnswerCreate) SetSessionID(v string) *PracticeAnswerCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *PracticeAnswerCreate) SetQuestionID(v string) *PracticeAnswerCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetSelectedOptions sets the "selected_options" field.
func (_c *PracticeAnswerCreate) SetSelectedOptions(v []string) *PracticeAnswerCreate {
	_c.mutation.SetSelectedOptions(v)
	return _c
}

// SetText sets the "text" field.
func (_c *PracticeAnswerCreate) SetText(v string) *PracticeAnswerCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_c *PracticeAnswerCreate) SetNillableText(v *string) *PracticeAnswerCreate {
	if v != nil {
		_c.SetText(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *PracticeAnswerCreate) SetCorrect(v bool) *PracticeAnswerCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_c *PracticeAnswerCreate) SetTimeSpentMs(v int64) *PracticeAnswerCreate {
	_c.mutation.SetTimeSpentMs(v)
	return _c
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_c *PracticeAnswerCreate) SetNillableTimeSpentMs(v *int64) *PracticeAnswerCreate {
	if v != nil {
		_c.SetTimeSpentMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PracticeAnswerCreate) SetCreatedAt(v time.Time) *PracticeAnswerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PracticeAnswerCreate) SetNillableCreatedAt(v *time.Time) *PracticeAnswerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the PracticeAnswerMutation object of the builder.
func (_c *PracticeAnswerCreate) Mutation() *PracticeAnswerMutation {
	return _c.mutation
}

// Save creates the PracticeAnswer in the database.
func (_c *PracticeAnswerCreate) Save(ctx context.Context) (*PracticeAnswer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeAnswerCreate) SaveX(ctx context.Context) *PracticeAnswer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeAnswerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeAnswerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeAnswerCreate) defaults() {
	if _, ok := _c.mutation.Text(); !ok {
		v := practiceanswer.DefaultText
		_c.mutation.SetText(v)
	}
	if _, ok := _c.mutation.TimeSpentMs(); !ok {
		v := practiceanswer.DefaultTimeSpentMs
		_c.mutation.SetTimeSpentMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := practiceanswer.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeAnswerCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PracticeAnswer.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := practiceanswer.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PracticeAnswer.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "PracticeAnswer.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := practiceanswer.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "PracticeAnswer.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "PracticeAnswer.text"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "PracticeAnswer.correct"`)}
	}
	if _, ok := _c.mutation.TimeSpentMs(); !ok {
		return &ValidationError{Name: "time_spent_ms", err: errors.New(`ent: missing required field "PracticeAnswer.time_spent_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PracticeAnswer.created_at"`)}
	}
	return nil
}

func (_c *PracticeAnswerCreate) sqlSave(ctx context.Context) (*PracticeAnswer, error) {
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

func (_c *PracticeAnswerCreate) createSpec() (*PracticeAnswer, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeAnswer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practiceanswer.Table, sqlgraph.NewFieldSpec(practiceanswer.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(practiceanswer.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(practiceanswer.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.SelectedOptions(); ok {
		_spec.SetField(practiceanswer.FieldSelectedOptions, field.TypeJSON, value)
		_node.SelectedOptions = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(practiceanswer.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(practiceanswer.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.TimeSpentMs(); ok {
		_spec.SetField(practiceanswer.FieldTimeSpentMs, field.TypeInt64, value)
		_node.TimeSpentMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(practiceanswer.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PracticeAnswerCreateBulk is the builder for creating many PracticeAnswer entities in bulk.
type PracticeAnswerCreateBulk struct {
	config
	err      error
	builders []*PracticeAnswerCreate
}

// Save creates the PracticeAnswer entities in the database.
func (_c *PracticeAnswerCreateBulk) Save(ctx context.Context) ([]*PracticeAnswer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeAnswer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeAnswerMutation)
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
func (_c *PracticeAnswerCreateBulk) SaveX(ctx context.Context) []*PracticeAnswer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeAnswerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeAnswerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
