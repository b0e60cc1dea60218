// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ananya/practiq/ent/subtopic"
)

// SubTopicCreate is the builder for creating a SubTopic entity.
type SubTopicCreate struct {
	config
	mutation *SubTopicMutation
	hooks    []Hook
}

// SetSubTopicID sets the "sub_topic_id" field.
func (_c *SubTopicCreate) SetSubTopicID(v string) *SubTopicCreate {
	_c.mutation.SetSubTopicID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *SubTopicCreate) SetTopicID(v string) *SubTopicCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SubTopicCreate) SetName(v string) *SubTopicCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *SubTopicCreate) SetPosition(v int) *SubTopicCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *SubTopicCreate) SetNillablePosition(v *int) *SubTopicCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// Mutation returns the SubTopicMutation object of the builder.
func (_c *SubTopicCreate) Mutation() *SubTopicMutation {
	return _c.mutation
}

// Save creates the SubTopic in the database.
func (_c *SubTopicCreate) Save(ctx context.Context) (*SubTopic, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubTopicCreate) SaveX(ctx context.Context) *SubTopic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubTopicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubTopicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubTopicCreate) defaults() {
	if _, ok := _c.mutation.Position(); !ok {
		v := subtopic.DefaultPosition
		_c.mutation.SetPosition(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubTopicCreate) check() error {
	if _, ok := _c.mutation.SubTopicID(); !ok {
		return &ValidationError{Name: "sub_topic_id", err: errors.New(`ent: missing required field "SubTopic.sub_topic_id"`)}
	}
	if v, ok := _c.mutation.SubTopicID(); ok {
		if err := subtopic.SubTopicIDValidator(v); err != nil {
			return &ValidationError{Name: "sub_topic_id", err: fmt.Errorf(`ent: validator failed for field "SubTopic.sub_topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "SubTopic.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := subtopic.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "SubTopic.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SubTopic.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := subtopic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SubTopic.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "SubTopic.position"`)}
	}
	return nil
}

func (_c *SubTopicCreate) sqlSave(ctx context.Context) (*SubTopic, error) {
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

func (_c *SubTopicCreate) createSpec() (*SubTopic, *sqlgraph.CreateSpec) {
	var (
		_node = &SubTopic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subtopic.Table, sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SubTopicID(); ok {
		_spec.SetField(subtopic.FieldSubTopicID, field.TypeString, value)
		_node.SubTopicID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(subtopic.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(subtopic.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(subtopic.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	return _node, _spec
}

// SubTopicCreateBulk is the builder for creating many SubTopic entities in bulk.
type SubTopicCreateBulk struct {
	config
	err      error
	builders []*SubTopicCreate
}

// Save creates the SubTopic entities in the database.
func (_c *SubTopicCreateBulk) Save(ctx context.Context) ([]*SubTopic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubTopic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubTopicMutation)
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
func (_c *SubTopicCreateBulk) SaveX(ctx context.Context) []*SubTopic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubTopicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubTopicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
