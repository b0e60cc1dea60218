// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ananya/practiq/ent/gradelevel"
	"github.com/ananya/practiq/ent/predicate"
)

// GradeLevelUpdate is the builder for updating GradeLevel entities.
type GradeLevelUpdate struct {
	config
	hooks    []Hook
	mutation *GradeLevelMutation
}

// Where appends a list predicates to the GradeLevelUpdate builder.
func (_u *GradeLevelUpdate) Where(ps ...predicate.GradeLevel) *GradeLevelUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *GradeLevelUpdate) SetName(v string) *GradeLevelUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *GradeLevelUpdate) SetNillableName(v *string) *GradeLevelUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *GradeLevelUpdate) SetPosition(v int) *GradeLevelUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *GradeLevelUpdate) SetNillablePosition(v *int) *GradeLevelUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *GradeLevelUpdate) AddPosition(v int) *GradeLevelUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the GradeLevelMutation object of the builder.
func (_u *GradeLevelUpdate) Mutation() *GradeLevelMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GradeLevelUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradeLevelUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GradeLevelUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradeLevelUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradeLevelUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := gradelevel.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "GradeLevel.name": %w`, err)}
		}
	}
	return nil
}

func (_u *GradeLevelUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gradelevel.Table, gradelevel.Columns, sqlgraph.NewFieldSpec(gradelevel.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(gradelevel.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(gradelevel.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(gradelevel.FieldPosition, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gradelevel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GradeLevelUpdateOne is the builder for updating a single GradeLevel entity.
type GradeLevelUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GradeLevelMutation
}

// SetName sets the "name" field.
func (_u *GradeLevelUpdateOne) SetName(v string) *GradeLevelUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *GradeLevelUpdateOne) SetNillableName(v *string) *GradeLevelUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *GradeLevelUpdateOne) SetPosition(v int) *GradeLevelUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *GradeLevelUpdateOne) SetNillablePosition(v *int) *GradeLevelUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *GradeLevelUpdateOne) AddPosition(v int) *GradeLevelUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the GradeLevelMutation object of the builder.
func (_u *GradeLevelUpdateOne) Mutation() *GradeLevelMutation {
	return _u.mutation
}

// Where appends a list predicates to the GradeLevelUpdate builder.
func (_u *GradeLevelUpdateOne) Where(ps ...predicate.GradeLevel) *GradeLevelUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GradeLevelUpdateOne) Select(field string, fields ...string) *GradeLevelUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GradeLevel entity.
func (_u *GradeLevelUpdateOne) Save(ctx context.Context) (*GradeLevel, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradeLevelUpdateOne) SaveX(ctx context.Context) *GradeLevel {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GradeLevelUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradeLevelUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradeLevelUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := gradelevel.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "GradeLevel.name": %w`, err)}
		}
	}
	return nil
}

func (_u *GradeLevelUpdateOne) sqlSave(ctx context.Context) (_node *GradeLevel, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gradelevel.Table, gradelevel.Columns, sqlgraph.NewFieldSpec(gradelevel.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GradeLevel.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gradelevel.FieldID)
		for _, f := range fields {
			if !gradelevel.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gradelevel.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(gradelevel.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(gradelevel.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(gradelevel.FieldPosition, field.TypeInt, value)
	}
	_node = &GradeLevel{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gradelevel.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
