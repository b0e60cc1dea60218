// Code generated by ent, DO NOT EDIT.

package practicesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the practicesession type in the database.
	Label = "practice_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldSubTopicID holds the string denoting the sub_topic_id field in the database.
	FieldSubTopicID = "sub_topic_id"
	// FieldGradeLevelID holds the string denoting the grade_level_id field in the database.
	FieldGradeLevelID = "grade_level_id"
	// FieldGradeLevelName holds the string denoting the grade_level_name field in the database.
	FieldGradeLevelName = "grade_level_name"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldSubjectName holds the string denoting the subject_name field in the database.
	FieldSubjectName = "subject_name"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldTopicName holds the string denoting the topic_name field in the database.
	FieldTopicName = "topic_name"
	// FieldSubTopicName holds the string denoting the sub_topic_name field in the database.
	FieldSubTopicName = "sub_topic_name"
	// FieldQuestionOrder holds the string denoting the question_order field in the database.
	FieldQuestionOrder = "question_order"
	// FieldCurrentIndex holds the string denoting the current_index field in the database.
	FieldCurrentIndex = "current_index"
	// FieldTotalQuestions holds the string denoting the total_questions field in the database.
	FieldTotalQuestions = "total_questions"
	// FieldAnsweredCount holds the string denoting the answered_count field in the database.
	FieldAnsweredCount = "answered_count"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldTimeSpentMs holds the string denoting the time_spent_ms field in the database.
	FieldTimeSpentMs = "time_spent_ms"
	// FieldXpEarned holds the string denoting the xp_earned field in the database.
	FieldXpEarned = "xp_earned"
	// FieldCoinsEarned holds the string denoting the coins_earned field in the database.
	FieldCoinsEarned = "coins_earned"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the practicesession in the database.
	Table = "practice_sessions"
)

// Columns holds all SQL columns for practicesession fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldStudentID,
	FieldSubTopicID,
	FieldGradeLevelID,
	FieldGradeLevelName,
	FieldSubjectID,
	FieldSubjectName,
	FieldTopicID,
	FieldTopicName,
	FieldSubTopicName,
	FieldQuestionOrder,
	FieldCurrentIndex,
	FieldTotalQuestions,
	FieldAnsweredCount,
	FieldCorrectCount,
	FieldTimeSpentMs,
	FieldXpEarned,
	FieldCoinsEarned,
	FieldSummary,
	FieldCreatedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// SubTopicIDValidator is a validator for the "sub_topic_id" field. It is called by the builders before save.
	SubTopicIDValidator func(string) error
	// DefaultCurrentIndex holds the default value on creation for the "current_index" field.
	DefaultCurrentIndex int
	// DefaultAnsweredCount holds the default value on creation for the "answered_count" field.
	DefaultAnsweredCount int
	// DefaultCorrectCount holds the default value on creation for the "correct_count" field.
	DefaultCorrectCount int
	// DefaultTimeSpentMs holds the default value on creation for the "time_spent_ms" field.
	DefaultTimeSpentMs int64
	// DefaultSummary holds the default value on creation for the "summary" field.
	DefaultSummary string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the PracticeSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// BySubTopicID orders the results by the sub_topic_id field.
func BySubTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubTopicID, opts...).ToFunc()
}

// ByGradeLevelID orders the results by the grade_level_id field.
func ByGradeLevelID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGradeLevelID, opts...).ToFunc()
}

// ByGradeLevelName orders the results by the grade_level_name field.
func ByGradeLevelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGradeLevelName, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// BySubjectName orders the results by the subject_name field.
func BySubjectName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectName, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByTopicName orders the results by the topic_name field.
func ByTopicName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicName, opts...).ToFunc()
}

// BySubTopicName orders the results by the sub_topic_name field.
func BySubTopicName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubTopicName, opts...).ToFunc()
}

// ByCurrentIndex orders the results by the current_index field.
func ByCurrentIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentIndex, opts...).ToFunc()
}

// ByTotalQuestions orders the results by the total_questions field.
func ByTotalQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuestions, opts...).ToFunc()
}

// ByAnsweredCount orders the results by the answered_count field.
func ByAnsweredCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnsweredCount, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByTimeSpentMs orders the results by the time_spent_ms field.
func ByTimeSpentMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentMs, opts...).ToFunc()
}

// ByXpEarned orders the results by the xp_earned field.
func ByXpEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpEarned, opts...).ToFunc()
}

// ByCoinsEarned orders the results by the coins_earned field.
func ByCoinsEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoinsEarned, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
