// Code generated by ent, DO NOT EDIT.

package subtopic

import (
	"entgo.io/ent/dialect/sql"
	"github.com/ananya/practiq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldLTE(FieldID, id))
}

// SubTopicID applies equality check predicate on the "sub_topic_id" field. It's identical to SubTopicIDEQ.
func SubTopicID(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldEQ(FieldSubTopicID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldEQ(FieldTopicID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldEQ(FieldName, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldEQ(FieldPosition, v))
}

// SubTopicIDEQ applies the EQ predicate on the "sub_topic_id" field.
func SubTopicIDEQ(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldEQ(FieldSubTopicID, v))
}

// SubTopicIDNEQ applies the NEQ predicate on the "sub_topic_id" field.
func SubTopicIDNEQ(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldNEQ(FieldSubTopicID, v))
}

// SubTopicIDIn applies the In predicate on the "sub_topic_id" field.
func SubTopicIDIn(vs ...string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldIn(FieldSubTopicID, vs...))
}

// SubTopicIDNotIn applies the NotIn predicate on the "sub_topic_id" field.
func SubTopicIDNotIn(vs ...string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldNotIn(FieldSubTopicID, vs...))
}

// SubTopicIDGT applies the GT predicate on the "sub_topic_id" field.
func SubTopicIDGT(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldGT(FieldSubTopicID, v))
}

// SubTopicIDGTE applies the GTE predicate on the "sub_topic_id" field.
func SubTopicIDGTE(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldGTE(FieldSubTopicID, v))
}

// SubTopicIDLT applies the LT predicate on the "sub_topic_id" field.
func SubTopicIDLT(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldLT(FieldSubTopicID, v))
}

// SubTopicIDLTE applies the LTE predicate on the "sub_topic_id" field.
func SubTopicIDLTE(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldLTE(FieldSubTopicID, v))
}

// SubTopicIDContains applies the Contains predicate on the "sub_topic_id" field.
func SubTopicIDContains(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldContains(FieldSubTopicID, v))
}

// SubTopicIDHasPrefix applies the HasPrefix predicate on the "sub_topic_id" field.
func SubTopicIDHasPrefix(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldHasPrefix(FieldSubTopicID, v))
}

// SubTopicIDHasSuffix applies the HasSuffix predicate on the "sub_topic_id" field.
func SubTopicIDHasSuffix(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldHasSuffix(FieldSubTopicID, v))
}

// SubTopicIDEqualFold applies the EqualFold predicate on the "sub_topic_id" field.
func SubTopicIDEqualFold(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldEqualFold(FieldSubTopicID, v))
}

// SubTopicIDContainsFold applies the ContainsFold predicate on the "sub_topic_id" field.
func SubTopicIDContainsFold(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldContainsFold(FieldSubTopicID, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldContainsFold(FieldTopicID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldContainsFold(FieldName, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.SubTopic {
	return predicate.SubTopic(sql.FieldLTE(FieldPosition, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubTopic) predicate.SubTopic {
	return predicate.SubTopic(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubTopic) predicate.SubTopic {
	return predicate.SubTopic(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubTopic) predicate.SubTopic {
	return predicate.SubTopic(sql.NotPredicates(p))
}
