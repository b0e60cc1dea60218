package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeAnswer is one submitted answer. Rows are append-only; re-answering
// a question adds a row and the latest one wins on resume.
type PracticeAnswer struct {
	ent.Schema
}

func (PracticeAnswer) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Immutable().
			NotEmpty(),
		field.String("question_id").
			Immutable().
			NotEmpty(),
		field.JSON("selected_options", []string{}).
			Optional().
			Comment("Selected option ids for choice questions"),
		field.String("text").
			Default("").
			Comment("Free text for short-answer questions"),
		field.Bool("correct"),
		field.Int64("time_spent_ms").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (PracticeAnswer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("session_id", "question_id"),
	}
}
