// Code generated by ent, DO NOT EDIT.

package subtopic

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the subtopic type in the database.
	Label = "sub_topic"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSubTopicID holds the string denoting the sub_topic_id field in the database.
	FieldSubTopicID = "sub_topic_id"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// Table holds the table name of the subtopic in the database.
	Table = "sub_topics"
)

// Columns holds all SQL columns for subtopic fields.
var Columns = []string{
	FieldID,
	FieldSubTopicID,
	FieldTopicID,
	FieldName,
	FieldPosition,
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
	// SubTopicIDValidator is a validator for the "sub_topic_id" field. It is called by the builders before save.
	SubTopicIDValidator func(string) error
	// TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	TopicIDValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultPosition holds the default value on creation for the "position" field.
	DefaultPosition int
)

// OrderOption defines the ordering options for the SubTopic queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubTopicID orders the results by the sub_topic_id field.
func BySubTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubTopicID, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}
