// Code generated by ent, DO NOT EDIT.

package gradelevel

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the gradelevel type in the database.
	Label = "grade_level"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGradeID holds the string denoting the grade_id field in the database.
	FieldGradeID = "grade_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// Table holds the table name of the gradelevel in the database.
	Table = "grade_levels"
)

// Columns holds all SQL columns for gradelevel fields.
var Columns = []string{
	FieldID,
	FieldGradeID,
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
	// GradeIDValidator is a validator for the "grade_id" field. It is called by the builders before save.
	GradeIDValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultPosition holds the default value on creation for the "position" field.
	DefaultPosition int
)

// OrderOption defines the ordering options for the GradeLevel queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGradeID orders the results by the grade_id field.
func ByGradeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGradeID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}
