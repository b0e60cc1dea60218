package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionProgress records that a question was presented to a student within
// a numbered cycle through the sub-topic's pool. The unique index makes
// session creation idempotent per (student, question, cycle).
type QuestionProgress struct {
	ent.Schema
}

func (QuestionProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			Immutable().
			NotEmpty(),
		field.String("sub_topic_id").
			Immutable().
			NotEmpty(),
		field.String("question_id").
			Immutable().
			NotEmpty(),
		field.Int("cycle_number").
			Min(1).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (QuestionProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "sub_topic_id", "question_id", "cycle_number").Unique(),
		index.Fields("student_id", "sub_topic_id"),
	}
}
