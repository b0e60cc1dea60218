package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// StudentTier is the subscription tier assignment for one student. Students
// without a row are treated as free tier.
type StudentTier struct {
	ent.Schema
}

func (StudentTier) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			Unique().
			Immutable().
			NotEmpty(),
		field.String("tier").
			Default("free").
			Comment("free, plus, or premium"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
