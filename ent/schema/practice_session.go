package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeSession is one practice run over a sub-topic's question pool.
// The curriculum labels are denormalized at creation so history rendering
// never depends on the catalog still containing the sub-topic.
type PracticeSession struct {
	ent.Schema
}

func (PracticeSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("Client-visible UUID"),
		field.String("student_id").
			Immutable().
			NotEmpty(),
		field.String("sub_topic_id").
			Immutable().
			NotEmpty(),
		field.String("grade_level_id").Immutable(),
		field.String("grade_level_name").Immutable(),
		field.String("subject_id").Immutable(),
		field.String("subject_name").Immutable(),
		field.String("topic_id").Immutable(),
		field.String("topic_name").Immutable(),
		field.String("sub_topic_name").Immutable(),
		field.JSON("question_order", []string{}).
			Comment("Shuffled question ids, fixed at creation"),
		field.Int("current_index").
			Default(0),
		field.Int("total_questions"),
		field.Int("answered_count").
			Default(0).
			Comment("Denormalized from answers at completion"),
		field.Int("correct_count").
			Default(0).
			Comment("Denormalized from answers at completion"),
		field.Int64("time_spent_ms").
			Default(0),
		field.Int("xp_earned").
			Optional().
			Nillable().
			Comment("Set by completion; nil while in progress"),
		field.Int("coins_earned").
			Optional().
			Nillable(),
		field.String("summary").
			Default("").
			Comment("AI recap text, attached after completion"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (PracticeSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id").Unique(),
		index.Fields("student_id", "created_at"),
		index.Fields("student_id", "completed_at"),
	}
}
