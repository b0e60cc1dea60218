package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OptionData is the serialized form of one answer option.
type OptionData struct {
	OptionID string `json:"option_id"`
	Text     string `json:"text"`
	ImageURL string `json:"image_url,omitempty"`
	Correct  bool   `json:"correct"`
}

// Question is one item in a sub-topic's pool.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			Unique().
			Immutable().
			NotEmpty(),
		field.String("sub_topic_id").
			Immutable().
			NotEmpty(),
		field.String("kind").
			NotEmpty().
			Comment("single_choice, multi_choice, or short_answer"),
		field.Text("prompt").
			NotEmpty(),
		field.String("image_url").
			Default(""),
		field.Text("explanation").
			Default(""),
		field.String("canonical_answer").
			Default("").
			Comment("Expected text for short-answer questions"),
		field.JSON("options", []OptionData{}).
			Optional().
			Comment("Empty for short-answer questions"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sub_topic_id"),
	}
}
