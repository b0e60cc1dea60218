// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ananya/practiq/ent/questionprogress"
)

// QuestionProgressCreate is the builder for creating a QuestionProgress entity.
type QuestionProgressCreate struct {
	config
	mutation *QuestionProgressMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *QuestionProgressCreate) SetStudentID(v string) *QuestionProgressCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetSubTopicID sets the "sub_topic_id" field.
func (_c *QuestionProgressCreate) SetSubTopicID(v string) *QuestionProgressCreate {
	_c.mutation.SetSubTopicID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *QuestionProgressCreate) SetQuestionID(v string) *QuestionProgressCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetCycleNumber sets the "cycle_number" field.
func (_c *QuestionProgressCreate) SetCycleNumber(v int) *QuestionProgressCreate {
	_c.mutation.SetCycleNumber(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionProgressCreate) SetCreatedAt(v time.Time) *QuestionProgressCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionProgressCreate) SetNillableCreatedAt(v *time.Time) *QuestionProgressCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the QuestionProgressMutation object of the builder.
func (_c *QuestionProgressCreate) Mutation() *QuestionProgressMutation {
	return _c.mutation
}

// Save creates the QuestionProgress in the database.
func (_c *QuestionProgressCreate) Save(ctx context.Context) (*QuestionProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionProgressCreate) SaveX(ctx context.Context) *QuestionProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionProgressCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := questionprogress.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionProgressCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "QuestionProgress.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := questionprogress.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "QuestionProgress.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubTopicID(); !ok {
		return &ValidationError{Name: "sub_topic_id", err: errors.New(`ent: missing required field "QuestionProgress.sub_topic_id"`)}
	}
	if v, ok := _c.mutation.SubTopicID(); ok {
		if err := questionprogress.SubTopicIDValidator(v); err != nil {
			return &ValidationError{Name: "sub_topic_id", err: fmt.Errorf(`ent: validator failed for field "QuestionProgress.sub_topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "QuestionProgress.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := questionprogress.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuestionProgress.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CycleNumber(); !ok {
		return &ValidationError{Name: "cycle_number", err: errors.New(`ent: missing required field "QuestionProgress.cycle_number"`)}
	}
	if v, ok := _c.mutation.CycleNumber(); ok {
		if err := questionprogress.CycleNumberValidator(v); err != nil {
			return &ValidationError{Name: "cycle_number", err: fmt.Errorf(`ent: validator failed for field "QuestionProgress.cycle_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuestionProgress.created_at"`)}
	}
	return nil
}

func (_c *QuestionProgressCreate) sqlSave(ctx context.Context) (*QuestionProgress, error) {
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

func (_c *QuestionProgressCreate) createSpec() (*QuestionProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionprogress.Table, sqlgraph.NewFieldSpec(questionprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(questionprogress.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.SubTopicID(); ok {
		_spec.SetField(questionprogress.FieldSubTopicID, field.TypeString, value)
		_node.SubTopicID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(questionprogress.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.CycleNumber(); ok {
		_spec.SetField(questionprogress.FieldCycleNumber, field.TypeInt, value)
		_node.CycleNumber = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(questionprogress.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// QuestionProgressCreateBulk is the builder for creating many QuestionProgress entities in bulk.
type QuestionProgressCreateBulk struct {
	config
	err      error
	builders []*QuestionProgressCreate
}

// Save creates the QuestionProgress entities in the database.
func (_c *QuestionProgressCreateBulk) Save(ctx context.Context) ([]*QuestionProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionProgressMutation)
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
func (_c *QuestionProgressCreateBulk) SaveX(ctx context.Context) []*QuestionProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
