package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// The curriculum entities form a four-level tree keyed by string ids rather
// than ent edges: nodes are referenced from sessions and questions by id, and
// the in-memory index rebuilds ancestry from the flat rows.

// GradeLevel is the root tier of the curriculum tree.
type GradeLevel struct {
	ent.Schema
}

func (GradeLevel) Fields() []ent.Field {
	return []ent.Field{
		field.String("grade_id").
			Unique().
			Immutable().
			NotEmpty(),
		field.String("name").
			NotEmpty(),
		field.Int("position").
			Default(0).
			Comment("Display order within the catalog"),
	}
}

// Subject groups topics within a grade level.
type Subject struct {
	ent.Schema
}

func (Subject) Fields() []ent.Field {
	return []ent.Field{
		field.String("subject_id").
			Unique().
			Immutable().
			NotEmpty(),
		field.String("grade_id").
			Immutable().
			NotEmpty(),
		field.String("name").
			NotEmpty(),
		field.Int("position").
			Default(0),
	}
}

func (Subject) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("grade_id"),
	}
}

// Topic groups sub-topics within a subject.
type Topic struct {
	ent.Schema
}

func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic_id").
			Unique().
			Immutable().
			NotEmpty(),
		field.String("subject_id").
			Immutable().
			NotEmpty(),
		field.String("name").
			NotEmpty(),
		field.Int("position").
			Default(0),
	}
}

func (Topic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id"),
	}
}

// SubTopic is a leaf node owning a question pool.
type SubTopic struct {
	ent.Schema
}

func (SubTopic) Fields() []ent.Field {
	return []ent.Field{
		field.String("sub_topic_id").
			Unique().
			Immutable().
			NotEmpty(),
		field.String("topic_id").
			Immutable().
			NotEmpty(),
		field.String("name").
			NotEmpty(),
		field.Int("position").
			Default(0),
	}
}

func (SubTopic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
	}
}
