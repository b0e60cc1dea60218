// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ananya/practiq/ent/practicesession"
)

// PracticeSessionCreate is the builder for creating a PracticeSession entity.
type PracticeSessionCreate struct {
	config
	mutation *PracticeSessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *PracticeSessionCreate) SetSessionID(v string) *PracticeSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *PracticeSessionCreate) SetStudentID(v string) *PracticeSessionCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetSubTopicID sets the "sub_topic_id" field.
func (_c *PracticeSessionCreate) SetSubTopicID(v string) *PracticeSessionCreate {
	_c.mutation.SetSubTopicID(v)
	return _c
}

// SetGradeLevelID sets the "grade_level_id" field.
func (_c *PracticeSessionCreate) SetGradeLevelID(v string) *PracticeSessionCreate {
	_c.mutation.SetGradeLevelID(v)
	return _c
}

// SetGradeLevelName sets the "grade_level_name" field.
func (_c *PracticeSessionCreate) SetGradeLevelName(v string) *PracticeSessionCreate {
	_c.mutation.SetGradeLevelName(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *PracticeSessionCreate) SetSubjectID(v string) *PracticeSessionCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetSubjectName sets the "subject_name" field.
func (_c *PracticeSessionCreate) SetSubjectName(v string) *PracticeSessionCreate {
	_c.mutation.SetSubjectName(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *PracticeSessionCreate) SetTopicID(v string) *PracticeSessionCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetTopicName sets the "topic_name" field.
func (_c *PracticeSessionCreate) SetTopicName(v string) *PracticeSessionCreate {
	_c.mutation.SetTopicName(v)
	return _c
}

// SetSubTopicName sets the "sub_topic_name" field.
func (_c *PracticeSessionCreate) SetSubTopicName(v string) *PracticeSessionCreate {
	_c.mutation.SetSubTopicName(v)
	return _c
}

// SetQuestionOrder sets the "question_order" field.
func (_c *PracticeSessionCreate) SetQuestionOrder(v []string) *PracticeSessionCreate {
	_c.mutation.SetQuestionOrder(v)
	return _c
}

// SetCurrentIndex sets the "current_index" field.
func (_c *PracticeSessionCreate) SetCurrentIndex(v int) *PracticeSessionCreate {
	_c.mutation.SetCurrentIndex(v)
	return _c
}

// SetNillableCurrentIndex sets the "current_index" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableCurrentIndex(v *int) *PracticeSessionCreate {
	if v != nil {
		_c.SetCurrentIndex(*v)
	}
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *PracticeSessionCreate) SetTotalQuestions(v int) *PracticeSessionCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetAnsweredCount sets the "answered_count" field.
func (_c *PracticeSessionCreate) SetAnsweredCount(v int) *PracticeSessionCreate {
	_c.mutation.SetAnsweredCount(v)
	return _c
}

// SetNillableAnsweredCount sets the "answered_count" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableAnsweredCount(v *int) *PracticeSessionCreate {
	if v != nil {
		_c.SetAnsweredCount(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *PracticeSessionCreate) SetCorrectCount(v int) *PracticeSessionCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableCorrectCount(v *int) *PracticeSessionCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_c *PracticeSessionCreate) SetTimeSpentMs(v int64) *PracticeSessionCreate {
	_c.mutation.SetTimeSpentMs(v)
	return _c
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableTimeSpentMs(v *int64) *PracticeSessionCreate {
	if v != nil {
		_c.SetTimeSpentMs(*v)
	}
	return _c
}

// SetXpEarned sets the "xp_earned" field.
func (_c *PracticeSessionCreate) SetXpEarned(v int) *PracticeSessionCreate {
	_c.mutation.SetXpEarned(v)
	return _c
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableXpEarned(v *int) *PracticeSessionCreate {
	if v != nil {
		_c.SetXpEarned(*v)
	}
	return _c
}

// SetCoinsEarned sets the "coins_earned" field.
func (_c *PracticeSessionCreate) SetCoinsEarned(v int) *PracticeSessionCreate {
	_c.mutation.SetCoinsEarned(v)
	return _c
}

// SetNillableCoinsEarned sets the "coins_earned" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableCoinsEarned(v *int) *PracticeSessionCreate {
	if v != nil {
		_c.SetCoinsEarned(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *PracticeSessionCreate) SetSummary(v string) *PracticeSessionCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableSummary(v *string) *PracticeSessionCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PracticeSessionCreate) SetCreatedAt(v time.Time) *PracticeSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableCreatedAt(v *time.Time) *PracticeSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PracticeSessionCreate) SetCompletedAt(v time.Time) *PracticeSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PracticeSessionCreate) SetNillableCompletedAt(v *time.Time) *PracticeSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_c *PracticeSessionCreate) Mutation() *PracticeSessionMutation {
	return _c.mutation
}

// Save creates the PracticeSession in the database.
func (_c *PracticeSessionCreate) Save(ctx context.Context) (*PracticeSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeSessionCreate) SaveX(ctx context.Context) *PracticeSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeSessionCreate) defaults() {
	if _, ok := _c.mutation.CurrentIndex(); !ok {
		v := practicesession.DefaultCurrentIndex
		_c.mutation.SetCurrentIndex(v)
	}
	if _, ok := _c.mutation.AnsweredCount(); !ok {
		v := practicesession.DefaultAnsweredCount
		_c.mutation.SetAnsweredCount(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := practicesession.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.TimeSpentMs(); !ok {
		v := practicesession.DefaultTimeSpentMs
		_c.mutation.SetTimeSpentMs(v)
	}
	if _, ok := _c.mutation.Summary(); !ok {
		v := practicesession.DefaultSummary
		_c.mutation.SetSummary(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := practicesession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PracticeSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := practicesession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "PracticeSession.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := practicesession.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubTopicID(); !ok {
		return &ValidationError{Name: "sub_topic_id", err: errors.New(`ent: missing required field "PracticeSession.sub_topic_id"`)}
	}
	if v, ok := _c.mutation.SubTopicID(); ok {
		if err := practicesession.SubTopicIDValidator(v); err != nil {
			return &ValidationError{Name: "sub_topic_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSession.sub_topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GradeLevelID(); !ok {
		return &ValidationError{Name: "grade_level_id", err: errors.New(`ent: missing required field "PracticeSession.grade_level_id"`)}
	}
	if _, ok := _c.mutation.GradeLevelName(); !ok {
		return &ValidationError{Name: "grade_level_name", err: errors.New(`ent: missing required field "PracticeSession.grade_level_name"`)}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "PracticeSession.subject_id"`)}
	}
	if _, ok := _c.mutation.SubjectName(); !ok {
		return &ValidationError{Name: "subject_name", err: errors.New(`ent: missing required field "PracticeSession.subject_name"`)}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "PracticeSession.topic_id"`)}
	}
	if _, ok := _c.mutation.TopicName(); !ok {
		return &ValidationError{Name: "topic_name", err: errors.New(`ent: missing required field "PracticeSession.topic_name"`)}
	}
	if _, ok := _c.mutation.SubTopicName(); !ok {
		return &ValidationError{Name: "sub_topic_name", err: errors.New(`ent: missing required field "PracticeSession.sub_topic_name"`)}
	}
	if _, ok := _c.mutation.QuestionOrder(); !ok {
		return &ValidationError{Name: "question_order", err: errors.New(`ent: missing required field "PracticeSession.question_order"`)}
	}
	if _, ok := _c.mutation.CurrentIndex(); !ok {
		return &ValidationError{Name: "current_index", err: errors.New(`ent: missing required field "PracticeSession.current_index"`)}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "PracticeSession.total_questions"`)}
	}
	if _, ok := _c.mutation.AnsweredCount(); !ok {
		return &ValidationError{Name: "answered_count", err: errors.New(`ent: missing required field "PracticeSession.answered_count"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "PracticeSession.correct_count"`)}
	}
	if _, ok := _c.mutation.TimeSpentMs(); !ok {
		return &ValidationError{Name: "time_spent_ms", err: errors.New(`ent: missing required field "PracticeSession.time_spent_ms"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "PracticeSession.summary"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PracticeSession.created_at"`)}
	}
	return nil
}

func (_c *PracticeSessionCreate) sqlSave(ctx context.Context) (*PracticeSession, error) {
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

func (_c *PracticeSessionCreate) createSpec() (*PracticeSession, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practicesession.Table, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(practicesession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(practicesession.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.SubTopicID(); ok {
		_spec.SetField(practicesession.FieldSubTopicID, field.TypeString, value)
		_node.SubTopicID = value
	}
	if value, ok := _c.mutation.GradeLevelID(); ok {
		_spec.SetField(practicesession.FieldGradeLevelID, field.TypeString, value)
		_node.GradeLevelID = value
	}
	if value, ok := _c.mutation.GradeLevelName(); ok {
		_spec.SetField(practicesession.FieldGradeLevelName, field.TypeString, value)
		_node.GradeLevelName = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(practicesession.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.SubjectName(); ok {
		_spec.SetField(practicesession.FieldSubjectName, field.TypeString, value)
		_node.SubjectName = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(practicesession.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.TopicName(); ok {
		_spec.SetField(practicesession.FieldTopicName, field.TypeString, value)
		_node.TopicName = value
	}
	if value, ok := _c.mutation.SubTopicName(); ok {
		_spec.SetField(practicesession.FieldSubTopicName, field.TypeString, value)
		_node.SubTopicName = value
	}
	if value, ok := _c.mutation.QuestionOrder(); ok {
		_spec.SetField(practicesession.FieldQuestionOrder, field.TypeJSON, value)
		_node.QuestionOrder = value
	}
	if value, ok := _c.mutation.CurrentIndex(); ok {
		_spec.SetField(practicesession.FieldCurrentIndex, field.TypeInt, value)
		_node.CurrentIndex = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(practicesession.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.AnsweredCount(); ok {
		_spec.SetField(practicesession.FieldAnsweredCount, field.TypeInt, value)
		_node.AnsweredCount = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(practicesession.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.TimeSpentMs(); ok {
		_spec.SetField(practicesession.FieldTimeSpentMs, field.TypeInt64, value)
		_node.TimeSpentMs = value
	}
	if value, ok := _c.mutation.XpEarned(); ok {
		_spec.SetField(practicesession.FieldXpEarned, field.TypeInt, value)
		_node.XpEarned = &value
	}
	if value, ok := _c.mutation.CoinsEarned(); ok {
		_spec.SetField(practicesession.FieldCoinsEarned, field.TypeInt, value)
		_node.CoinsEarned = &value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(practicesession.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(practicesession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(practicesession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// PracticeSessionCreateBulk is the builder for creating many PracticeSession entities in bulk.
type PracticeSessionCreateBulk struct {
	config
	err      error
	builders []*PracticeSessionCreate
}

// Save creates the PracticeSession entities in the database.
func (_c *PracticeSessionCreateBulk) Save(ctx context.Context) ([]*PracticeSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeSessionMutation)
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
func (_c *PracticeSessionCreateBulk) SaveX(ctx context.Context) []*PracticeSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
