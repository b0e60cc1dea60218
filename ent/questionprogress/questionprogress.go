// Code generated by ent, DO NOT EDIT.

package questionprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the questionprogress type in the database.
	Label = "question_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldSubTopicID holds the string denoting the sub_topic_id field in the database.
	FieldSubTopicID = "sub_topic_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldCycleNumber holds the string denoting the cycle_number field in the database.
	FieldCycleNumber = "cycle_number"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the questionprogress in the database.
	Table = "question_progresses"
)

// Columns holds all SQL columns for questionprogress fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldSubTopicID,
	FieldQuestionID,
	FieldCycleNumber,
	FieldCreatedAt,
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
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// SubTopicIDValidator is a validator for the "sub_topic_id" field. It is called by the builders before save.
	SubTopicIDValidator func(string) error
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// CycleNumberValidator is a validator for the "cycle_number" field. It is called by the builders before save.
	CycleNumberValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the QuestionProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// BySubTopicID orders the results by the sub_topic_id field.
func BySubTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubTopicID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByCycleNumber orders the results by the cycle_number field.
func ByCycleNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCycleNumber, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
