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
	"github.com/ananya/practiq/ent/predicate"
	"github.com/ananya/practiq/ent/studenttier"
)

// StudentTierUpdate is the builder for updating StudentTier entities.
type StudentTierUpdate struct {
	config
	hooks    []Hook
	mutation *StudentTierMutation
}

// Where appends a list predicates to the StudentTierUpdate builder.
func (_u *StudentTierUpdate) Where(ps ...predicate.StudentTier) *StudentTierUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTier sets the "tier" field.
func (_u *StudentTierUpdate) SetTier(v string) *StudentTierUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *StudentTierUpdate) SetNillableTier(v *string) *StudentTierUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudentTierUpdate) SetUpdatedAt(v time.Time) *StudentTierUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StudentTierMutation object of the builder.
func (_u *StudentTierUpdate) Mutation() *StudentTierMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudentTierUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentTierUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudentTierUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentTierUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudentTierUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studenttier.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *StudentTierUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(studenttier.Table, studenttier.Columns, sqlgraph.NewFieldSpec(studenttier.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(studenttier.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studenttier.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studenttier.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudentTierUpdateOne is the builder for updating a single StudentTier entity.
type StudentTierUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudentTierMutation
}

// SetTier sets the "tier" field.
func (_u *StudentTierUpdateOne) SetTier(v string) *StudentTierUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *StudentTierUpdateOne) SetNillableTier(v *string) *StudentTierUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudentTierUpdateOne) SetUpdatedAt(v time.Time) *StudentTierUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StudentTierMutation object of the builder.
func (_u *StudentTierUpdateOne) Mutation() *StudentTierMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudentTierUpdate builder.
func (_u *StudentTierUpdateOne) Where(ps ...predicate.StudentTier) *StudentTierUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudentTierUpdateOne) Select(field string, fields ...string) *StudentTierUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudentTier entity.
func (_u *StudentTierUpdateOne) Save(ctx context.Context) (*StudentTier, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentTierUpdateOne) SaveX(ctx context.Context) *StudentTier {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudentTierUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentTierUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudentTierUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studenttier.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *StudentTierUpdateOne) sqlSave(ctx context.Context) (_node *StudentTier, err error) {
	_spec := sqlgraph.NewUpdateSpec(studenttier.Table, studenttier.Columns, sqlgraph.NewFieldSpec(studenttier.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudentTier.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studenttier.FieldID)
		for _, f := range fields {
			if !studenttier.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studenttier.FieldID {
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
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(studenttier.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studenttier.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StudentTier{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studenttier.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
