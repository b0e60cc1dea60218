// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ananya/practiq/ent/questionprogress"
)

// QuestionProgress is the model entity for the QuestionProgress schema.
type QuestionProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// SubTopicID holds the value of the "sub_topic_id" field.
	SubTopicID string `json:"sub_topic_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// CycleNumber holds the value of the "cycle_number" field.
	CycleNumber int `json:"cycle_number,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuestionProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questionprogress.FieldID, questionprogress.FieldCycleNumber:
			values[i] = new(sql.NullInt64)
		case questionprogress.FieldStudentID, questionprogress.FieldSubTopicID, questionprogress.FieldQuestionID:
			values[i] = new(sql.NullString)
		case questionprogress.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuestionProgress fields.
func (_m *QuestionProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questionprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case questionprogress.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case questionprogress.FieldSubTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub_topic_id", values[i])
			} else if value.Valid {
				_m.SubTopicID = value.String
			}
		case questionprogress.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case questionprogress.FieldCycleNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cycle_number", values[i])
			} else if value.Valid {
				_m.CycleNumber = int(value.Int64)
			}
		case questionprogress.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuestionProgress.
// This includes values selected through modifiers, order, etc.
func (_m *QuestionProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuestionProgress.
// Note that you need to call QuestionProgress.Unwrap() before calling this method if this QuestionProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuestionProgress) Update() *QuestionProgressUpdateOne {
	return NewQuestionProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuestionProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuestionProgress) Unwrap() *QuestionProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuestionProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuestionProgress) String() string {
	var builder strings.Builder
	builder.WriteString("QuestionProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("sub_topic_id=")
	builder.WriteString(_m.SubTopicID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("cycle_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.CycleNumber))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuestionProgresses is a parsable slice of QuestionProgress.
type QuestionProgresses []*QuestionProgress
