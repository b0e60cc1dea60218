// Code generated by ent, DO NOT EDIT.

package questionprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ananya/practiq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldStudentID, v))
}

// SubTopicID applies equality check predicate on the "sub_topic_id" field. It's identical to SubTopicIDEQ.
func SubTopicID(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldSubTopicID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldQuestionID, v))
}

// CycleNumber applies equality check predicate on the "cycle_number" field. It's identical to CycleNumberEQ.
func CycleNumber(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldCycleNumber, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldCreatedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldContainsFold(FieldStudentID, v))
}

// SubTopicIDEQ applies the EQ predicate on the "sub_topic_id" field.
func SubTopicIDEQ(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldSubTopicID, v))
}

// SubTopicIDNEQ applies the NEQ predicate on the "sub_topic_id" field.
func SubTopicIDNEQ(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNEQ(FieldSubTopicID, v))
}

// SubTopicIDIn applies the In predicate on the "sub_topic_id" field.
func SubTopicIDIn(vs ...string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldIn(FieldSubTopicID, vs...))
}

// SubTopicIDNotIn applies the NotIn predicate on the "sub_topic_id" field.
func SubTopicIDNotIn(vs ...string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNotIn(FieldSubTopicID, vs...))
}

// SubTopicIDGT applies the GT predicate on the "sub_topic_id" field.
func SubTopicIDGT(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGT(FieldSubTopicID, v))
}

// SubTopicIDGTE applies the GTE predicate on the "sub_topic_id" field.
func SubTopicIDGTE(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGTE(FieldSubTopicID, v))
}

// SubTopicIDLT applies the LT predicate on the "sub_topic_id" field.
func SubTopicIDLT(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLT(FieldSubTopicID, v))
}

// SubTopicIDLTE applies the LTE predicate on the "sub_topic_id" field.
func SubTopicIDLTE(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLTE(FieldSubTopicID, v))
}

// SubTopicIDContains applies the Contains predicate on the "sub_topic_id" field.
func SubTopicIDContains(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldContains(FieldSubTopicID, v))
}

// SubTopicIDHasPrefix applies the HasPrefix predicate on the "sub_topic_id" field.
func SubTopicIDHasPrefix(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldHasPrefix(FieldSubTopicID, v))
}

// SubTopicIDHasSuffix applies the HasSuffix predicate on the "sub_topic_id" field.
func SubTopicIDHasSuffix(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldHasSuffix(FieldSubTopicID, v))
}

// SubTopicIDEqualFold applies the EqualFold predicate on the "sub_topic_id" field.
func SubTopicIDEqualFold(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEqualFold(FieldSubTopicID, v))
}

// SubTopicIDContainsFold applies the ContainsFold predicate on the "sub_topic_id" field.
func SubTopicIDContainsFold(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldContainsFold(FieldSubTopicID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldContainsFold(FieldQuestionID, v))
}

// CycleNumberEQ applies the EQ predicate on the "cycle_number" field.
func CycleNumberEQ(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldCycleNumber, v))
}

// CycleNumberNEQ applies the NEQ predicate on the "cycle_number" field.
func CycleNumberNEQ(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNEQ(FieldCycleNumber, v))
}

// CycleNumberIn applies the In predicate on the "cycle_number" field.
func CycleNumberIn(vs ...int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldIn(FieldCycleNumber, vs...))
}

// CycleNumberNotIn applies the NotIn predicate on the "cycle_number" field.
func CycleNumberNotIn(vs ...int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNotIn(FieldCycleNumber, vs...))
}

// CycleNumberGT applies the GT predicate on the "cycle_number" field.
func CycleNumberGT(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGT(FieldCycleNumber, v))
}

// CycleNumberGTE applies the GTE predicate on the "cycle_number" field.
func CycleNumberGTE(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGTE(FieldCycleNumber, v))
}

// CycleNumberLT applies the LT predicate on the "cycle_number" field.
func CycleNumberLT(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLT(FieldCycleNumber, v))
}

// CycleNumberLTE applies the LTE predicate on the "cycle_number" field.
func CycleNumberLTE(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLTE(FieldCycleNumber, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestionProgress) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestionProgress) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestionProgress) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.NotPredicates(p))
}
