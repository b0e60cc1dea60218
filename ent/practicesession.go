// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ananya/practiq/ent/practicesession"
)

// PracticeSession is the model entity for the PracticeSession schema.
type PracticeSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Client-visible UUID
	SessionID string `json:"session_id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// SubTopicID holds the value of the "sub_topic_id" field.
	SubTopicID string `json:"sub_topic_id,omitempty"`
	// GradeLevelID holds the value of the "grade_level_id" field.
	GradeLevelID string `json:"grade_level_id,omitempty"`
	// GradeLevelName holds the value of the "grade_level_name" field.
	GradeLevelName string `json:"grade_level_name,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID string `json:"subject_id,omitempty"`
	// SubjectName holds the value of the "subject_name" field.
	SubjectName string `json:"subject_name,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID string `json:"topic_id,omitempty"`
	// TopicName holds the value of the "topic_name" field.
	TopicName string `json:"topic_name,omitempty"`
	// SubTopicName holds the value of the "sub_topic_name" field.
	SubTopicName string `json:"sub_topic_name,omitempty"`
	// Shuffled question ids, fixed at creation
	QuestionOrder []string `json:"question_order,omitempty"`
	// CurrentIndex holds the value of the "current_index" field.
	CurrentIndex int `json:"current_index,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// Denormalized from answers at completion
	AnsweredCount int `json:"answered_count,omitempty"`
	// Denormalized from answers at completion
	CorrectCount int `json:"correct_count,omitempty"`
	// TimeSpentMs holds the value of the "time_spent_ms" field.
	TimeSpentMs int64 `json:"time_spent_ms,omitempty"`
	// Set by completion; nil while in progress
	XpEarned *int `json:"xp_earned,omitempty"`
	// CoinsEarned holds the value of the "coins_earned" field.
	CoinsEarned *int `json:"coins_earned,omitempty"`
	// AI recap text, attached after completion
	Summary string `json:"summary,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PracticeSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case practicesession.FieldQuestionOrder:
			values[i] = new([]byte)
		case practicesession.FieldID, practicesession.FieldCurrentIndex, practicesession.FieldTotalQuestions, practicesession.FieldAnsweredCount, practicesession.FieldCorrectCount, practicesession.FieldTimeSpentMs, practicesession.FieldXpEarned, practicesession.FieldCoinsEarned:
			values[i] = new(sql.NullInt64)
		case practicesession.FieldSessionID, practicesession.FieldStudentID, practicesession.FieldSubTopicID, practicesession.FieldGradeLevelID, practicesession.FieldGradeLevelName, practicesession.FieldSubjectID, practicesession.FieldSubjectName, practicesession.FieldTopicID, practicesession.FieldTopicName, practicesession.FieldSubTopicName, practicesession.FieldSummary:
			values[i] = new(sql.NullString)
		case practicesession.FieldCreatedAt, practicesession.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PracticeSession fields.
func (_m *PracticeSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case practicesession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case practicesession.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case practicesession.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case practicesession.FieldSubTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub_topic_id", values[i])
			} else if value.Valid {
				_m.SubTopicID = value.String
			}
		case practicesession.FieldGradeLevelID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grade_level_id", values[i])
			} else if value.Valid {
				_m.GradeLevelID = value.String
			}
		case practicesession.FieldGradeLevelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grade_level_name", values[i])
			} else if value.Valid {
				_m.GradeLevelName = value.String
			}
		case practicesession.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case practicesession.FieldSubjectName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_name", values[i])
			} else if value.Valid {
				_m.SubjectName = value.String
			}
		case practicesession.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = value.String
			}
		case practicesession.FieldTopicName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_name", values[i])
			} else if value.Valid {
				_m.TopicName = value.String
			}
		case practicesession.FieldSubTopicName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub_topic_name", values[i])
			} else if value.Valid {
				_m.SubTopicName = value.String
			}
		case practicesession.FieldQuestionOrder:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field question_order", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QuestionOrder); err != nil {
					return fmt.Errorf("unmarshal field question_order: %w", err)
				}
			}
		case practicesession.FieldCurrentIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_index", values[i])
			} else if value.Valid {
				_m.CurrentIndex = int(value.Int64)
			}
		case practicesession.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case practicesession.FieldAnsweredCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field answered_count", values[i])
			} else if value.Valid {
				_m.AnsweredCount = int(value.Int64)
			}
		case practicesession.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				_m.CorrectCount = int(value.Int64)
			}
		case practicesession.FieldTimeSpentMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_ms", values[i])
			} else if value.Valid {
				_m.TimeSpentMs = value.Int64
			}
		case practicesession.FieldXpEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_earned", values[i])
			} else if value.Valid {
				_m.XpEarned = new(int)
				*_m.XpEarned = int(value.Int64)
			}
		case practicesession.FieldCoinsEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field coins_earned", values[i])
			} else if value.Valid {
				_m.CoinsEarned = new(int)
				*_m.CoinsEarned = int(value.Int64)
			}
		case practicesession.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case practicesession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case practicesession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PracticeSession.
// This includes values selected through modifiers, order, etc.
func (_m *PracticeSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PracticeSession.
// Note that you need to call PracticeSession.Unwrap() before calling this method if this PracticeSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PracticeSession) Update() *PracticeSessionUpdateOne {
	return NewPracticeSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PracticeSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PracticeSession) Unwrap() *PracticeSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PracticeSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PracticeSession) String() string {
	var builder strings.Builder
	builder.WriteString("PracticeSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("sub_topic_id=")
	builder.WriteString(_m.SubTopicID)
	builder.WriteString(", ")
	builder.WriteString("grade_level_id=")
	builder.WriteString(_m.GradeLevelID)
	builder.WriteString(", ")
	builder.WriteString("grade_level_name=")
	builder.WriteString(_m.GradeLevelName)
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteString(", ")
	builder.WriteString("subject_name=")
	builder.WriteString(_m.SubjectName)
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(_m.TopicID)
	builder.WriteString(", ")
	builder.WriteString("topic_name=")
	builder.WriteString(_m.TopicName)
	builder.WriteString(", ")
	builder.WriteString("sub_topic_name=")
	builder.WriteString(_m.SubTopicName)
	builder.WriteString(", ")
	builder.WriteString("question_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionOrder))
	builder.WriteString(", ")
	builder.WriteString("current_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentIndex))
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("answered_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnsweredCount))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("time_spent_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentMs))
	builder.WriteString(", ")
	if v := _m.XpEarned; v != nil {
		builder.WriteString("xp_earned=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CoinsEarned; v != nil {
		builder.WriteString("coins_earned=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PracticeSessions is a parsable slice of PracticeSession.
type PracticeSessions []*PracticeSession
