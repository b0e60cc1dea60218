// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ananya/practiq/ent/gradelevel"
)

// GradeLevel is the model entity for the GradeLevel schema.
type GradeLevel struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// GradeID holds the value of the "grade_id" field.
	GradeID string `json:"grade_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Display order within the catalog
	Position     int `json:"position,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GradeLevel) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gradelevel.FieldID, gradelevel.FieldPosition:
			values[i] = new(sql.NullInt64)
		case gradelevel.FieldGradeID, gradelevel.FieldName:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GradeLevel fields.
func (_m *GradeLevel) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gradelevel.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case gradelevel.FieldGradeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grade_id", values[i])
			} else if value.Valid {
				_m.GradeID = value.String
			}
		case gradelevel.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case gradelevel.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GradeLevel.
// This includes values selected through modifiers, order, etc.
func (_m *GradeLevel) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GradeLevel.
// Note that you need to call GradeLevel.Unwrap() before calling this method if this GradeLevel
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GradeLevel) Update() *GradeLevelUpdateOne {
	return NewGradeLevelClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GradeLevel entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GradeLevel) Unwrap() *GradeLevel {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GradeLevel is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GradeLevel) String() string {
	var builder strings.Builder
	builder.WriteString("GradeLevel(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("grade_id=")
	builder.WriteString(_m.GradeID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteByte(')')
	return builder.String()
}

// GradeLevels is a parsable slice of GradeLevel.
type GradeLevels []*GradeLevel
