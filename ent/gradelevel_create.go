// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ananya/practiq/ent/gradelevel"
)

// GradeLevelCreate is the builder for creating a GradeLevel entity.
type GradeLevelCreate struct {
	config
	mutation *GradeLevelMutation
	hooks    []Hook
}

// SetGradeID sets the "grade_id" field.
func (_c *GradeLevelCreate) SetGradeID(v string) *GradeLevelCreate {
	_c.mutation.SetGradeID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *GradeLevelCreate) SetName(v string) *GradeLevelCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *GradeLevelCreate) SetPosition(v int) *GradeLevelCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *GradeLevelCreate) SetNillablePosition(v *int) *GradeLevelCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// Mutation returns the GradeLevelMutation object of the builder.
func (_c *GradeLevelCreate) Mutation() *GradeLevelMutation {
	return _c.mutation
}

// Save creates the GradeLevel in the database.
func (_c *GradeLevelCreate) Save(ctx context.Context) (*GradeLevel, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GradeLevelCreate) SaveX(ctx context.Context) *GradeLevel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradeLevelCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradeLevelCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GradeLevelCreate) defaults() {
	if _, ok := _c.mutation.Position(); !ok {
		v := gradelevel.DefaultPosition
		_c.mutation.SetPosition(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GradeLevelCreate) check() error {
	if _, ok := _c.mutation.GradeID(); !ok {
		return &ValidationError{Name: "grade_id", err: errors.New(`ent: missing required field "GradeLevel.grade_id"`)}
	}
	if v, ok := _c.mutation.GradeID(); ok {
		if err := gradelevel.GradeIDValidator(v); err != nil {
			return &ValidationError{Name: "grade_id", err: fmt.Errorf(`ent: validator failed for field "GradeLevel.grade_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "GradeLevel.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := gradelevel.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "GradeLevel.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "GradeLevel.position"`)}
	}
	return nil
}

func (_c *GradeLevelCreate) sqlSave(ctx context.Context) (*GradeLevel, error) {
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

func (_c *GradeLevelCreate) createSpec() (*GradeLevel, *sqlgraph.CreateSpec) {
	var (
		_node = &GradeLevel{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gradelevel.Table, sqlgraph.NewFieldSpec(gradelevel.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.GradeID(); ok {
		_spec.SetField(gradelevel.FieldGradeID, field.TypeString, value)
		_node.GradeID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(gradelevel.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(gradelevel.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	return _node, _spec
}

// GradeLevelCreateBulk is the builder for creating many GradeLevel entities in bulk.
type GradeLevelCreateBulk struct {
	config
	err      error
	builders []*GradeLevelCreate
}

// Save creates the GradeLevel entities in the database.
func (_c *GradeLevelCreateBulk) Save(ctx context.Context) ([]*GradeLevel, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GradeLevel, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GradeLevelMutation)
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
func (_c *GradeLevelCreateBulk) SaveX(ctx context.Context) []*GradeLevel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradeLevelCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradeLevelCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
