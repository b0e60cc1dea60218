// Code generated by ent, DO NOT EDIT.

package gradelevel

import (
	"entgo.io/ent/dialect/sql"
	"github.com/ananya/practiq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldLTE(FieldID, id))
}

// GradeID applies equality check predicate on the "grade_id" field. It's identical to GradeIDEQ.
func GradeID(v string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldEQ(FieldGradeID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldEQ(FieldName, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldEQ(FieldPosition, v))
}

// GradeIDEQ applies the EQ predicate on the "grade_id" field.
func GradeIDEQ(v string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldEQ(FieldGradeID, v))
}

// GradeIDNEQ applies the NEQ predicate on the "grade_id" field.
func GradeIDNEQ(v string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldNEQ(FieldGradeID, v))
}

// GradeIDIn applies the In predicate on the "grade_id" field.
func GradeIDIn(vs ...string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldIn(FieldGradeID, vs...))
}

// GradeIDNotIn applies the NotIn predicate on the "grade_id" field.
func GradeIDNotIn(vs ...string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldNotIn(FieldGradeID, vs...))
}

// GradeIDGT applies the GT predicate on the "grade_id" field.
func GradeIDGT(v string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldGT(FieldGradeID, v))
}

// GradeIDGTE applies the GTE predicate on the "grade_id" field.
func GradeIDGTE(v string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldGTE(FieldGradeID, v))
}

// GradeIDLT applies the LT predicate on the "grade_id" field.
func GradeIDLT(v string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldLT(FieldGradeID, v))
}

// GradeIDLTE applies the LTE predicate on the "grade_id" field.
func GradeIDLTE(v string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldLTE(FieldGradeID, v))
}

// GradeIDContains applies the Contains predicate on the "grade_id" field.
func GradeIDContains(v string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldContains(FieldGradeID, v))
}

// GradeIDHasPrefix applies the HasPrefix predicate on the "grade_id" field.
func GradeIDHasPrefix(v string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldHasPrefix(FieldGradeID, v))
}

// GradeIDHasSuffix applies the HasSuffix predicate on the "grade_id" field.
func GradeIDHasSuffix(v string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldHasSuffix(FieldGradeID, v))
}

// GradeIDEqualFold applies the EqualFold predicate on the "grade_id" field.
func GradeIDEqualFold(v string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldEqualFold(FieldGradeID, v))
}

// GradeIDContainsFold applies the ContainsFold predicate on the "grade_id" field.
func GradeIDContainsFold(v string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldContainsFold(FieldGradeID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldContainsFold(FieldName, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.GradeLevel {
	return predicate.GradeLevel(sql.FieldLTE(FieldPosition, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GradeLevel) predicate.GradeLevel {
	return predicate.GradeLevel(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GradeLevel) predicate.GradeLevel {
	return predicate.GradeLevel(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GradeLevel) predicate.GradeLevel {
	return predicate.GradeLevel(sql.NotPredicates(p))
}
