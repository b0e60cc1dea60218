// Code generated by ent, DO NOT EDIT.

package practicesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ananya/practiq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldSessionID, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldStudentID, v))
}

// SubTopicID applies equality check predicate on the "sub_topic_id" field. It's identical to SubTopicIDEQ.
func SubTopicID(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldSubTopicID, v))
}

// GradeLevelID applies equality check predicate on the "grade_level_id" field. It's identical to GradeLevelIDEQ.
func GradeLevelID(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldGradeLevelID, v))
}

// GradeLevelName applies equality check predicate on the "grade_level_name" field. It's identical to GradeLevelNameEQ.
func GradeLevelName(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldGradeLevelName, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectName applies equality check predicate on the "subject_name" field. It's identical to SubjectNameEQ.
func SubjectName(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldSubjectName, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTopicID, v))
}

// TopicName applies equality check predicate on the "topic_name" field. It's identical to TopicNameEQ.
func TopicName(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTopicName, v))
}

// SubTopicName applies equality check predicate on the "sub_topic_name" field. It's identical to SubTopicNameEQ.
func SubTopicName(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldSubTopicName, v))
}

// CurrentIndex applies equality check predicate on the "current_index" field. It's identical to CurrentIndexEQ.
func CurrentIndex(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCurrentIndex, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTotalQuestions, v))
}

// AnsweredCount applies equality check predicate on the "answered_count" field. It's identical to AnsweredCountEQ.
func AnsweredCount(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldAnsweredCount, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCorrectCount, v))
}

// TimeSpentMs applies equality check predicate on the "time_spent_ms" field. It's identical to TimeSpentMsEQ.
func TimeSpentMs(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTimeSpentMs, v))
}

// XpEarned applies equality check predicate on the "xp_earned" field. It's identical to XpEarnedEQ.
func XpEarned(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldXpEarned, v))
}

// CoinsEarned applies equality check predicate on the "coins_earned" field. It's identical to CoinsEarnedEQ.
func CoinsEarned(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCoinsEarned, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldSummary, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCompletedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldSessionID, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldStudentID, v))
}

// SubTopicIDEQ applies the EQ predicate on the "sub_topic_id" field.
func SubTopicIDEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldSubTopicID, v))
}

// SubTopicIDNEQ applies the NEQ predicate on the "sub_topic_id" field.
func SubTopicIDNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldSubTopicID, v))
}

// SubTopicIDIn applies the In predicate on the "sub_topic_id" field.
func SubTopicIDIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldSubTopicID, vs...))
}

// SubTopicIDNotIn applies the NotIn predicate on the "sub_topic_id" field.
func SubTopicIDNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldSubTopicID, vs...))
}

// SubTopicIDGT applies the GT predicate on the "sub_topic_id" field.
func SubTopicIDGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldSubTopicID, v))
}

// SubTopicIDGTE applies the GTE predicate on the "sub_topic_id" field.
func SubTopicIDGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldSubTopicID, v))
}

// SubTopicIDLT applies the LT predicate on the "sub_topic_id" field.
func SubTopicIDLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldSubTopicID, v))
}

// SubTopicIDLTE applies the LTE predicate on the "sub_topic_id" field.
func SubTopicIDLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldSubTopicID, v))
}

// SubTopicIDContains applies the Contains predicate on the "sub_topic_id" field.
func SubTopicIDContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldSubTopicID, v))
}

// SubTopicIDHasPrefix applies the HasPrefix predicate on the "sub_topic_id" field.
func SubTopicIDHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldSubTopicID, v))
}

// SubTopicIDHasSuffix applies the HasSuffix predicate on the "sub_topic_id" field.
func SubTopicIDHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldSubTopicID, v))
}

// SubTopicIDEqualFold applies the EqualFold predicate on the "sub_topic_id" field.
func SubTopicIDEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldSubTopicID, v))
}

// SubTopicIDContainsFold applies the ContainsFold predicate on the "sub_topic_id" field.
func SubTopicIDContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldSubTopicID, v))
}

// GradeLevelIDEQ applies the EQ predicate on the "grade_level_id" field.
func GradeLevelIDEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldGradeLevelID, v))
}

// GradeLevelIDNEQ applies the NEQ predicate on the "grade_level_id" field.
func GradeLevelIDNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldGradeLevelID, v))
}

// GradeLevelIDIn applies the In predicate on the "grade_level_id" field.
func GradeLevelIDIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldGradeLevelID, vs...))
}

// GradeLevelIDNotIn applies the NotIn predicate on the "grade_level_id" field.
func GradeLevelIDNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldGradeLevelID, vs...))
}

// GradeLevelIDGT applies the GT predicate on the "grade_level_id" field.
func GradeLevelIDGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldGradeLevelID, v))
}

// GradeLevelIDGTE applies the GTE predicate on the "grade_level_id" field.
func GradeLevelIDGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldGradeLevelID, v))
}

// GradeLevelIDLT applies the LT predicate on the "grade_level_id" field.
func GradeLevelIDLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldGradeLevelID, v))
}

// GradeLevelIDLTE applies the LTE predicate on the "grade_level_id" field.
func GradeLevelIDLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldGradeLevelID, v))
}

// GradeLevelIDContains applies the Contains predicate on the "grade_level_id" field.
func GradeLevelIDContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldGradeLevelID, v))
}

// GradeLevelIDHasPrefix applies the HasPrefix predicate on the "grade_level_id" field.
func GradeLevelIDHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldGradeLevelID, v))
}

// GradeLevelIDHasSuffix applies the HasSuffix predicate on the "grade_level_id" field.
func GradeLevelIDHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldGradeLevelID, v))
}

// GradeLevelIDEqualFold applies the EqualFold predicate on the "grade_level_id" field.
func GradeLevelIDEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldGradeLevelID, v))
}

// GradeLevelIDContainsFold applies the ContainsFold predicate on the "grade_level_id" field.
func GradeLevelIDContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldGradeLevelID, v))
}

// GradeLevelNameEQ applies the EQ predicate on the "grade_level_name" field.
func GradeLevelNameEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldGradeLevelName, v))
}

// GradeLevelNameNEQ applies the NEQ predicate on the "grade_level_name" field.
func GradeLevelNameNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldGradeLevelName, v))
}

// GradeLevelNameIn applies the In predicate on the "grade_level_name" field.
func GradeLevelNameIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldGradeLevelName, vs...))
}

// GradeLevelNameNotIn applies the NotIn predicate on the "grade_level_name" field.
func GradeLevelNameNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldGradeLevelName, vs...))
}

// GradeLevelNameGT applies the GT predicate on the "grade_level_name" field.
func GradeLevelNameGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldGradeLevelName, v))
}

// GradeLevelNameGTE applies the GTE predicate on the "grade_level_name" field.
func GradeLevelNameGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldGradeLevelName, v))
}

// GradeLevelNameLT applies the LT predicate on the "grade_level_name" field.
func GradeLevelNameLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldGradeLevelName, v))
}

// GradeLevelNameLTE applies the LTE predicate on the "grade_level_name" field.
func GradeLevelNameLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldGradeLevelName, v))
}

// GradeLevelNameContains applies the Contains predicate on the "grade_level_name" field.
func GradeLevelNameContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldGradeLevelName, v))
}

// GradeLevelNameHasPrefix applies the HasPrefix predicate on the "grade_level_name" field.
func GradeLevelNameHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldGradeLevelName, v))
}

// GradeLevelNameHasSuffix applies the HasSuffix predicate on the "grade_level_name" field.
func GradeLevelNameHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldGradeLevelName, v))
}

// GradeLevelNameEqualFold applies the EqualFold predicate on the "grade_level_name" field.
func GradeLevelNameEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldGradeLevelName, v))
}

// GradeLevelNameContainsFold applies the ContainsFold predicate on the "grade_level_name" field.
func GradeLevelNameContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldGradeLevelName, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldSubjectID, v))
}

// SubjectNameEQ applies the EQ predicate on the "subject_name" field.
func SubjectNameEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldSubjectName, v))
}

// SubjectNameNEQ applies the NEQ predicate on the "subject_name" field.
func SubjectNameNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldSubjectName, v))
}

// SubjectNameIn applies the In predicate on the "subject_name" field.
func SubjectNameIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldSubjectName, vs...))
}

// SubjectNameNotIn applies the NotIn predicate on the "subject_name" field.
func SubjectNameNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldSubjectName, vs...))
}

// SubjectNameGT applies the GT predicate on the "subject_name" field.
func SubjectNameGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldSubjectName, v))
}

// SubjectNameGTE applies the GTE predicate on the "subject_name" field.
func SubjectNameGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldSubjectName, v))
}

// SubjectNameLT applies the LT predicate on the "subject_name" field.
func SubjectNameLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldSubjectName, v))
}

// SubjectNameLTE applies the LTE predicate on the "subject_name" field.
func SubjectNameLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldSubjectName, v))
}

// SubjectNameContains applies the Contains predicate on the "subject_name" field.
func SubjectNameContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldSubjectName, v))
}

// SubjectNameHasPrefix applies the HasPrefix predicate on the "subject_name" field.
func SubjectNameHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldSubjectName, v))
}

// SubjectNameHasSuffix applies the HasSuffix predicate on the "subject_name" field.
func SubjectNameHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldSubjectName, v))
}

// SubjectNameEqualFold applies the EqualFold predicate on the "subject_name" field.
func SubjectNameEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldSubjectName, v))
}

// SubjectNameContainsFold applies the ContainsFold predicate on the "subject_name" field.
func SubjectNameContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldSubjectName, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldTopicID, v))
}

// TopicNameEQ applies the EQ predicate on the "topic_name" field.
func TopicNameEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTopicName, v))
}

// TopicNameNEQ applies the NEQ predicate on the "topic_name" field.
func TopicNameNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldTopicName, v))
}

// TopicNameIn applies the In predicate on the "topic_name" field.
func TopicNameIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldTopicName, vs...))
}

// TopicNameNotIn applies the NotIn predicate on the "topic_name" field.
func TopicNameNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldTopicName, vs...))
}

// TopicNameGT applies the GT predicate on the "topic_name" field.
func TopicNameGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldTopicName, v))
}

// TopicNameGTE applies the GTE predicate on the "topic_name" field.
func TopicNameGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldTopicName, v))
}

// TopicNameLT applies the LT predicate on the "topic_name" field.
func TopicNameLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldTopicName, v))
}

// TopicNameLTE applies the LTE predicate on the "topic_name" field.
func TopicNameLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldTopicName, v))
}

// TopicNameContains applies the Contains predicate on the "topic_name" field.
func TopicNameContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldTopicName, v))
}

// TopicNameHasPrefix applies the HasPrefix predicate on the "topic_name" field.
func TopicNameHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldTopicName, v))
}

// TopicNameHasSuffix applies the HasSuffix predicate on the "topic_name" field.
func TopicNameHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldTopicName, v))
}

// TopicNameEqualFold applies the EqualFold predicate on the "topic_name" field.
func TopicNameEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldTopicName, v))
}

// TopicNameContainsFold applies the ContainsFold predicate on the "topic_name" field.
func TopicNameContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldTopicName, v))
}

// SubTopicNameEQ applies the EQ predicate on the "sub_topic_name" field.
func SubTopicNameEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldSubTopicName, v))
}

// SubTopicNameNEQ applies the NEQ predicate on the "sub_topic_name" field.
func SubTopicNameNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldSubTopicName, v))
}

// SubTopicNameIn applies the In predicate on the "sub_topic_name" field.
func SubTopicNameIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldSubTopicName, vs...))
}

// SubTopicNameNotIn applies the NotIn predicate on the "sub_topic_name" field.
func SubTopicNameNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldSubTopicName, vs...))
}

// SubTopicNameGT applies the GT predicate on the "sub_topic_name" field.
func SubTopicNameGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldSubTopicName, v))
}

// SubTopicNameGTE applies the GTE predicate on the "sub_topic_name" field.
func SubTopicNameGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldSubTopicName, v))
}

// SubTopicNameLT applies the LT predicate on the "sub_topic_name" field.
func SubTopicNameLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldSubTopicName, v))
}

// SubTopicNameLTE applies the LTE predicate on the "sub_topic_name" field.
func SubTopicNameLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldSubTopicName, v))
}

// SubTopicNameContains applies the Contains predicate on the "sub_topic_name" field.
func SubTopicNameContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldSubTopicName, v))
}

// SubTopicNameHasPrefix applies the HasPrefix predicate on the "sub_topic_name" field.
func SubTopicNameHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldSubTopicName, v))
}

// SubTopicNameHasSuffix applies the HasSuffix predicate on the "sub_topic_name" field.
func SubTopicNameHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldSubTopicName, v))
}

// SubTopicNameEqualFold applies the EqualFold predicate on the "sub_topic_name" field.
func SubTopicNameEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldSubTopicName, v))
}

// SubTopicNameContainsFold applies the ContainsFold predicate on the "sub_topic_name" field.
func SubTopicNameContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldSubTopicName, v))
}

// CurrentIndexEQ applies the EQ predicate on the "current_index" field.
func CurrentIndexEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCurrentIndex, v))
}

// CurrentIndexNEQ applies the NEQ predicate on the "current_index" field.
func CurrentIndexNEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldCurrentIndex, v))
}

// CurrentIndexIn applies the In predicate on the "current_index" field.
func CurrentIndexIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldCurrentIndex, vs...))
}

// CurrentIndexNotIn applies the NotIn predicate on the "current_index" field.
func CurrentIndexNotIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldCurrentIndex, vs...))
}

// CurrentIndexGT applies the GT predicate on the "current_index" field.
func CurrentIndexGT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldCurrentIndex, v))
}

// CurrentIndexGTE applies the GTE predicate on the "current_index" field.
func CurrentIndexGTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldCurrentIndex, v))
}

// CurrentIndexLT applies the LT predicate on the "current_index" field.
func CurrentIndexLT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldCurrentIndex, v))
}

// CurrentIndexLTE applies the LTE predicate on the "current_index" field.
func CurrentIndexLTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldCurrentIndex, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldTotalQuestions, v))
}

// AnsweredCountEQ applies the EQ predicate on the "answered_count" field.
func AnsweredCountEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldAnsweredCount, v))
}

// AnsweredCountNEQ applies the NEQ predicate on the "answered_count" field.
func AnsweredCountNEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldAnsweredCount, v))
}

// AnsweredCountIn applies the In predicate on the "answered_count" field.
func AnsweredCountIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldAnsweredCount, vs...))
}

// AnsweredCountNotIn applies the NotIn predicate on the "answered_count" field.
func AnsweredCountNotIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldAnsweredCount, vs...))
}

// AnsweredCountGT applies the GT predicate on the "answered_count" field.
func AnsweredCountGT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldAnsweredCount, v))
}

// AnsweredCountGTE applies the GTE predicate on the "answered_count" field.
func AnsweredCountGTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldAnsweredCount, v))
}

// AnsweredCountLT applies the LT predicate on the "answered_count" field.
func AnsweredCountLT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldAnsweredCount, v))
}

// AnsweredCountLTE applies the LTE predicate on the "answered_count" field.
func AnsweredCountLTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldAnsweredCount, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldCorrectCount, v))
}

// TimeSpentMsEQ applies the EQ predicate on the "time_spent_ms" field.
func TimeSpentMsEQ(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTimeSpentMs, v))
}

// TimeSpentMsNEQ applies the NEQ predicate on the "time_spent_ms" field.
func TimeSpentMsNEQ(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldTimeSpentMs, v))
}

// TimeSpentMsIn applies the In predicate on the "time_spent_ms" field.
func TimeSpentMsIn(vs ...int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldTimeSpentMs, vs...))
}

// TimeSpentMsNotIn applies the NotIn predicate on the "time_spent_ms" field.
func TimeSpentMsNotIn(vs ...int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldTimeSpentMs, vs...))
}

// TimeSpentMsGT applies the GT predicate on the "time_spent_ms" field.
func TimeSpentMsGT(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldTimeSpentMs, v))
}

// TimeSpentMsGTE applies the GTE predicate on the "time_spent_ms" field.
func TimeSpentMsGTE(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldTimeSpentMs, v))
}

// TimeSpentMsLT applies the LT predicate on the "time_spent_ms" field.
func TimeSpentMsLT(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldTimeSpentMs, v))
}

// TimeSpentMsLTE applies the LTE predicate on the "time_spent_ms" field.
func TimeSpentMsLTE(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldTimeSpentMs, v))
}

// XpEarnedEQ applies the EQ predicate on the "xp_earned" field.
func XpEarnedEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldXpEarned, v))
}

// XpEarnedNEQ applies the NEQ predicate on the "xp_earned" field.
func XpEarnedNEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldXpEarned, v))
}

// XpEarnedIn applies the In predicate on the "xp_earned" field.
func XpEarnedIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldXpEarned, vs...))
}

// XpEarnedNotIn applies the NotIn predicate on the "xp_earned" field.
func XpEarnedNotIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldXpEarned, vs...))
}

// XpEarnedGT applies the GT predicate on the "xp_earned" field.
func XpEarnedGT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldXpEarned, v))
}

// XpEarnedGTE applies the GTE predicate on the "xp_earned" field.
func XpEarnedGTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldXpEarned, v))
}

// XpEarnedLT applies the LT predicate on the "xp_earned" field.
func XpEarnedLT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldXpEarned, v))
}

// XpEarnedLTE applies the LTE predicate on the "xp_earned" field.
func XpEarnedLTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldXpEarned, v))
}

// XpEarnedIsNil applies the IsNil predicate on the "xp_earned" field.
func XpEarnedIsNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIsNull(FieldXpEarned))
}

// XpEarnedNotNil applies the NotNil predicate on the "xp_earned" field.
func XpEarnedNotNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotNull(FieldXpEarned))
}

// CoinsEarnedEQ applies the EQ predicate on the "coins_earned" field.
func CoinsEarnedEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCoinsEarned, v))
}

// CoinsEarnedNEQ applies the NEQ predicate on the "coins_earned" field.
func CoinsEarnedNEQ(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldCoinsEarned, v))
}

// CoinsEarnedIn applies the In predicate on the "coins_earned" field.
func CoinsEarnedIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldCoinsEarned, vs...))
}

// CoinsEarnedNotIn applies the NotIn predicate on the "coins_earned" field.
func CoinsEarnedNotIn(vs ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldCoinsEarned, vs...))
}

// CoinsEarnedGT applies the GT predicate on the "coins_earned" field.
func CoinsEarnedGT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldCoinsEarned, v))
}

// CoinsEarnedGTE applies the GTE predicate on the "coins_earned" field.
func CoinsEarnedGTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldCoinsEarned, v))
}

// CoinsEarnedLT applies the LT predicate on the "coins_earned" field.
func CoinsEarnedLT(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldCoinsEarned, v))
}

// CoinsEarnedLTE applies the LTE predicate on the "coins_earned" field.
func CoinsEarnedLTE(v int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldCoinsEarned, v))
}

// CoinsEarnedIsNil applies the IsNil predicate on the "coins_earned" field.
func CoinsEarnedIsNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIsNull(FieldCoinsEarned))
}

// CoinsEarnedNotNil applies the NotNil predicate on the "coins_earned" field.
func CoinsEarnedNotNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotNull(FieldCoinsEarned))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldSummary, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PracticeSession) predicate.PracticeSession {
	return predicate.PracticeSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PracticeSession) predicate.PracticeSession {
	return predicate.PracticeSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PracticeSession) predicate.PracticeSession {
	return predicate.PracticeSession(sql.NotPredicates(p))
}
