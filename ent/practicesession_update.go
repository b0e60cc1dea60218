// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ananya/practiq/ent/practicesession"
	"github.com/ananya/practiq/ent/predicate"
)

// PracticeSessionUpdate is the builder for updating PracticeSession entities.
type PracticeSessionUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (_u *PracticeSessionUpdate) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionOrder sets the "question_order" field.
func (_u *PracticeSessionUpdate) SetQuestionOrder(v []string) *PracticeSessionUpdate {
	_u.mutation.SetQuestionOrder(v)
	return _u
}

// AppendQuestionOrder appends value to the "question_order" field.
func (_u *PracticeSessionUpdate) AppendQuestionOrder(v []string) *PracticeSessionUpdate {
	_u.mutation.AppendQuestionOrder(v)
	return _u
}

// SetCurrentIndex sets the "current_index" field.
func (_u *PracticeSessionUpdate) SetCurrentIndex(v int) *PracticeSessionUpdate {
	_u.mutation.ResetCurrentIndex()
	_u.mutation.SetCurrentIndex(v)
	return _u
}

// SetNillableCurrentIndex sets the "current_index" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableCurrentIndex(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetCurrentIndex(*v)
	}
	return _u
}

// AddCurrentIndex adds value to the "current_index" field.
func (_u *PracticeSessionUpdate) AddCurrentIndex(v int) *PracticeSessionUpdate {
	_u.mutation.AddCurrentIndex(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *PracticeSessionUpdate) SetTotalQuestions(v int) *PracticeSessionUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableTotalQuestions(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *PracticeSessionUpdate) AddTotalQuestions(v int) *PracticeSessionUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetAnsweredCount sets the "answered_count" field.
func (_u *PracticeSessionUpdate) SetAnsweredCount(v int) *PracticeSessionUpdate {
	_u.mutation.ResetAnsweredCount()
	_u.mutation.SetAnsweredCount(v)
	return _u
}

// SetNillableAnsweredCount sets the "answered_count" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableAnsweredCount(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetAnsweredCount(*v)
	}
	return _u
}

// AddAnsweredCount adds value to the "answered_count" field.
func (_u *PracticeSessionUpdate) AddAnsweredCount(v int) *PracticeSessionUpdate {
	_u.mutation.AddAnsweredCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *PracticeSessionUpdate) SetCorrectCount(v int) *PracticeSessionUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableCorrectCount(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *PracticeSessionUpdate) AddCorrectCount(v int) *PracticeSessionUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_u *PracticeSessionUpdate) SetTimeSpentMs(v int64) *PracticeSessionUpdate {
	_u.mutation.ResetTimeSpentMs()
	_u.mutation.SetTimeSpentMs(v)
	return _u
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableTimeSpentMs(v *int64) *PracticeSessionUpdate {
	if v != nil {
		_u.SetTimeSpentMs(*v)
	}
	return _u
}

// AddTimeSpentMs adds value to the "time_spent_ms" field.
func (_u *PracticeSessionUpdate) AddTimeSpentMs(v int64) *PracticeSessionUpdate {
	_u.mutation.AddTimeSpentMs(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *PracticeSessionUpdate) SetXpEarned(v int) *PracticeSessionUpdate {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableXpEarned(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *PracticeSessionUpdate) AddXpEarned(v int) *PracticeSessionUpdate {
	_u.mutation.AddXpEarned(v)
	return _u
}

// ClearXpEarned clears the value of the "xp_earned" field.
func (_u *PracticeSessionUpdate) ClearXpEarned() *PracticeSessionUpdate {
	_u.mutation.ClearXpEarned()
	return _u
}

// SetCoinsEarned sets the "coins_earned" field.
func (_u *PracticeSessionUpdate) SetCoinsEarned(v int) *PracticeSessionUpdate {
	_u.mutation.ResetCoinsEarned()
	_u.mutation.SetCoinsEarned(v)
	return _u
}

// SetNillableCoinsEarned sets the "coins_earned" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableCoinsEarned(v *int) *PracticeSessionUpdate {
	if v != nil {
		_u.SetCoinsEarned(*v)
	}
	return _u
}

// AddCoinsEarned adds value to the "coins_earned" field.
func (_u *PracticeSessionUpdate) AddCoinsEarned(v int) *PracticeSessionUpdate {
	_u.mutation.AddCoinsEarned(v)
	return _u
}

// ClearCoinsEarned clears the value of the "coins_earned" field.
func (_u *PracticeSessionUpdate) ClearCoinsEarned() *PracticeSessionUpdate {
	_u.mutation.ClearCoinsEarned()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *PracticeSessionUpdate) SetSummary(v string) *PracticeSessionUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableSummary(v *string) *PracticeSessionUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PracticeSessionUpdate) SetCompletedAt(v time.Time) *PracticeSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PracticeSessionUpdate) SetNillableCompletedAt(v *time.Time) *PracticeSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PracticeSessionUpdate) ClearCompletedAt() *PracticeSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_u *PracticeSessionUpdate) Mutation() *PracticeSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PracticeSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionOrder(); ok {
		_spec.SetField(practicesession.FieldQuestionOrder, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestionOrder(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicesession.FieldQuestionOrder, value)
		})
	}
	if value, ok := _u.mutation.CurrentIndex(); ok {
		_spec.SetField(practicesession.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentIndex(); ok {
		_spec.AddField(practicesession.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(practicesession.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(practicesession.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnsweredCount(); ok {
		_spec.SetField(practicesession.FieldAnsweredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnsweredCount(); ok {
		_spec.AddField(practicesession.FieldAnsweredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(practicesession.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(practicesession.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentMs(); ok {
		_spec.SetField(practicesession.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMs(); ok {
		_spec.AddField(practicesession.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(practicesession.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(practicesession.FieldXpEarned, field.TypeInt, value)
	}
	if _u.mutation.XpEarnedCleared() {
		_spec.ClearField(practicesession.FieldXpEarned, field.TypeInt)
	}
	if value, ok := _u.mutation.CoinsEarned(); ok {
		_spec.SetField(practicesession.FieldCoinsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCoinsEarned(); ok {
		_spec.AddField(practicesession.FieldCoinsEarned, field.TypeInt, value)
	}
	if _u.mutation.CoinsEarnedCleared() {
		_spec.ClearField(practicesession.FieldCoinsEarned, field.TypeInt)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(practicesession.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(practicesession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(practicesession.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeSessionUpdateOne is the builder for updating a single PracticeSession entity.
type PracticeSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// SetQuestionOrder sets the "question_order" field.
func (_u *PracticeSessionUpdateOne) SetQuestionOrder(v []string) *PracticeSessionUpdateOne {
	_u.mutation.SetQuestionOrder(v)
	return _u
}

// AppendQuestionOrder appends value to the "question_order" field.
func (_u *PracticeSessionUpdateOne) AppendQuestionOrder(v []string) *PracticeSessionUpdateOne {
	_u.mutation.AppendQuestionOrder(v)
	return _u
}

// SetCurrentIndex sets the "current_index" field.
func (_u *PracticeSessionUpdateOne) SetCurrentIndex(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetCurrentIndex()
	_u.mutation.SetCurrentIndex(v)
	return _u
}

// SetNillableCurrentIndex sets the "current_index" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableCurrentIndex(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetCurrentIndex(*v)
	}
	return _u
}

// AddCurrentIndex adds value to the "current_index" field.
func (_u *PracticeSessionUpdateOne) AddCurrentIndex(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddCurrentIndex(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *PracticeSessionUpdateOne) SetTotalQuestions(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableTotalQuestions(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *PracticeSessionUpdateOne) AddTotalQuestions(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetAnsweredCount sets the "answered_count" field.
func (_u *PracticeSessionUpdateOne) SetAnsweredCount(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetAnsweredCount()
	_u.mutation.SetAnsweredCount(v)
	return _u
}

// SetNillableAnsweredCount sets the "answered_count" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableAnsweredCount(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetAnsweredCount(*v)
	}
	return _u
}

// AddAnsweredCount adds value to the "answered_count" field.
func (_u *PracticeSessionUpdateOne) AddAnsweredCount(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddAnsweredCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *PracticeSessionUpdateOne) SetCorrectCount(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableCorrectCount(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *PracticeSessionUpdateOne) AddCorrectCount(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_u *PracticeSessionUpdateOne) SetTimeSpentMs(v int64) *PracticeSessionUpdateOne {
	_u.mutation.ResetTimeSpentMs()
	_u.mutation.SetTimeSpentMs(v)
	return _u
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableTimeSpentMs(v *int64) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetTimeSpentMs(*v)
	}
	return _u
}

// AddTimeSpentMs adds value to the "time_spent_ms" field.
func (_u *PracticeSessionUpdateOne) AddTimeSpentMs(v int64) *PracticeSessionUpdateOne {
	_u.mutation.AddTimeSpentMs(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *PracticeSessionUpdateOne) SetXpEarned(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableXpEarned(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *PracticeSessionUpdateOne) AddXpEarned(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddXpEarned(v)
	return _u
}

// ClearXpEarned clears the value of the "xp_earned" field.
func (_u *PracticeSessionUpdateOne) ClearXpEarned() *PracticeSessionUpdateOne {
	_u.mutation.ClearXpEarned()
	return _u
}

// SetCoinsEarned sets the "coins_earned" field.
func (_u *PracticeSessionUpdateOne) SetCoinsEarned(v int) *PracticeSessionUpdateOne {
	_u.mutation.ResetCoinsEarned()
	_u.mutation.SetCoinsEarned(v)
	return _u
}

// SetNillableCoinsEarned sets the "coins_earned" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableCoinsEarned(v *int) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetCoinsEarned(*v)
	}
	return _u
}

// AddCoinsEarned adds value to the "coins_earned" field.
func (_u *PracticeSessionUpdateOne) AddCoinsEarned(v int) *PracticeSessionUpdateOne {
	_u.mutation.AddCoinsEarned(v)
	return _u
}

// ClearCoinsEarned clears the value of the "coins_earned" field.
func (_u *PracticeSessionUpdateOne) ClearCoinsEarned() *PracticeSessionUpdateOne {
	_u.mutation.ClearCoinsEarned()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *PracticeSessionUpdateOne) SetSummary(v string) *PracticeSessionUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableSummary(v *string) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PracticeSessionUpdateOne) SetCompletedAt(v time.Time) *PracticeSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PracticeSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *PracticeSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PracticeSessionUpdateOne) ClearCompletedAt() *PracticeSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (_u *PracticeSessionUpdateOne) Mutation() *PracticeSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (_u *PracticeSessionUpdateOne) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeSessionUpdateOne) Select(field string, fields ...string) *PracticeSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeSession entity.
func (_u *PracticeSessionUpdateOne) Save(ctx context.Context) (*PracticeSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeSessionUpdateOne) SaveX(ctx context.Context) *PracticeSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PracticeSessionUpdateOne) sqlSave(ctx context.Context) (_node *PracticeSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practicesession.FieldID)
		for _, f := range fields {
			if !practicesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practicesession.FieldID {
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
	if value, ok := _u.mutation.QuestionOrder(); ok {
		_spec.SetField(practicesession.FieldQuestionOrder, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestionOrder(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicesession.FieldQuestionOrder, value)
		})
	}
	if value, ok := _u.mutation.CurrentIndex(); ok {
		_spec.SetField(practicesession.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentIndex(); ok {
		_spec.AddField(practicesession.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(practicesession.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(practicesession.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AnsweredCount(); ok {
		_spec.SetField(practicesession.FieldAnsweredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnsweredCount(); ok {
		_spec.AddField(practicesession.FieldAnsweredCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(practicesession.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(practicesession.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentMs(); ok {
		_spec.SetField(practicesession.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMs(); ok {
		_spec.AddField(practicesession.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(practicesession.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(practicesession.FieldXpEarned, field.TypeInt, value)
	}
	if _u.mutation.XpEarnedCleared() {
		_spec.ClearField(practicesession.FieldXpEarned, field.TypeInt)
	}
	if value, ok := _u.mutation.CoinsEarned(); ok {
		_spec.SetField(practicesession.FieldCoinsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCoinsEarned(); ok {
		_spec.AddField(practicesession.FieldCoinsEarned, field.TypeInt, value)
	}
	if _u.mutation.CoinsEarnedCleared() {
		_spec.ClearField(practicesession.FieldCoinsEarned, field.TypeInt)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(practicesession.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(practicesession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(practicesession.FieldCompletedAt, field.TypeTime)
	}
	_node = &PracticeSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
