// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
	"github.com/ananya/practiq/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionID, v))
}

// SubTopicID applies equality check predicate on the "sub_topic_id" field. It's identical to SubTopicIDEQ.
func SubTopicID(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubTopicID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldKind, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPrompt, v))
}

// ImageURL applies equality check predicate on the "image_url" field. It's identical to ImageURLEQ.
func ImageURL(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldImageURL, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExplanation, v))
}

// CanonicalAnswer applies equality check predicate on the "canonical_answer" field. It's identical to CanonicalAnswerEQ.
func CanonicalAnswer(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCanonicalAnswer, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldQuestionID, v))
}

// SubTopicIDEQ applies the EQ predicate on the "sub_topic_id" field.
func SubTopicIDEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubTopicID, v))
}

// SubTopicIDNEQ applies the NEQ predicate on the "sub_topic_id" field.
func SubTopicIDNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSubTopicID, v))
}

// SubTopicIDIn applies the In predicate on the "sub_topic_id" field.
func SubTopicIDIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSubTopicID, vs...))
}

// SubTopicIDNotIn applies the NotIn predicate on the "sub_topic_id" field.
func SubTopicIDNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSubTopicID, vs...))
}

// SubTopicIDGT applies the GT predicate on the "sub_topic_id" field.
func SubTopicIDGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldSubTopicID, v))
}

// SubTopicIDGTE applies the GTE predicate on the "sub_topic_id" field.
func SubTopicIDGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldSubTopicID, v))
}

// SubTopicIDLT applies the LT predicate on the "sub_topic_id" field.
func SubTopicIDLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldSubTopicID, v))
}

// SubTopicIDLTE applies the LTE predicate on the "sub_topic_id" field.
func SubTopicIDLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldSubTopicID, v))
}

// SubTopicIDContains applies the Contains predicate on the "sub_topic_id" field.
func SubTopicIDContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldSubTopicID, v))
}

// SubTopicIDHasPrefix applies the HasPrefix predicate on the "sub_topic_id" field.
func SubTopicIDHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldSubTopicID, v))
}

// SubTopicIDHasSuffix applies the HasSuffix predicate on the "sub_topic_id" field.
func SubTopicIDHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldSubTopicID, v))
}

// SubTopicIDEqualFold applies the EqualFold predicate on the "sub_topic_id" field.
func SubTopicIDEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldSubTopicID, v))
}

// SubTopicIDContainsFold applies the ContainsFold predicate on the "sub_topic_id" field.
func SubTopicIDContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldSubTopicID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldKind, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldPrompt, v))
}

// ImageURLEQ applies the EQ predicate on the "image_url" field.
func ImageURLEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldImageURL, v))
}

// ImageURLNEQ applies the NEQ predicate on the "image_url" field.
func ImageURLNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldImageURL, v))
}

// ImageURLIn applies the In predicate on the "image_url" field.
func ImageURLIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldImageURL, vs...))
}

// ImageURLNotIn applies the NotIn predicate on the "image_url" field.
func ImageURLNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldImageURL, vs...))
}

// ImageURLGT applies the GT predicate on the "image_url" field.
func ImageURLGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldImageURL, v))
}

// ImageURLGTE applies the GTE predicate on the "image_url" field.
func ImageURLGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldImageURL, v))
}

// ImageURLLT applies the LT predicate on the "image_url" field.
func ImageURLLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldImageURL, v))
}

// ImageURLLTE applies the LTE predicate on the "image_url" field.
func ImageURLLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldImageURL, v))
}

// ImageURLContains applies the Contains predicate on the "image_url" field.
func ImageURLContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldImageURL, v))
}

// ImageURLHasPrefix applies the HasPrefix predicate on the "image_url" field.
func ImageURLHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldImageURL, v))
}

// ImageURLHasSuffix applies the HasSuffix predicate on the "image_url" field.
func ImageURLHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldImageURL, v))
}

// ImageURLEqualFold applies the EqualFold predicate on the "image_url" field.
func ImageURLEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldImageURL, v))
}

// ImageURLContainsFold applies the ContainsFold predicate on the "image_url" field.
func ImageURLContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldImageURL, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldExplanation, v))
}

// CanonicalAnswerEQ applies the EQ predicate on the "canonical_answer" field.
func CanonicalAnswerEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCanonicalAnswer, v))
}

// CanonicalAnswerNEQ applies the NEQ predicate on the "canonical_answer" field.
func CanonicalAnswerNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCanonicalAnswer, v))
}

// CanonicalAnswerIn applies the In predicate on the "canonical_answer" field.
func CanonicalAnswerIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCanonicalAnswer, vs...))
}

// CanonicalAnswerNotIn applies the NotIn predicate on the "canonical_answer" field.
func CanonicalAnswerNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCanonicalAnswer, vs...))
}

// CanonicalAnswerGT applies the GT predicate on the "canonical_answer" field.
func CanonicalAnswerGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCanonicalAnswer, v))
}

// CanonicalAnswerGTE applies the GTE predicate on the "canonical_answer" field.
func CanonicalAnswerGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCanonicalAnswer, v))
}

// CanonicalAnswerLT applies the LT predicate on the "canonical_answer" field.
func CanonicalAnswerLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCanonicalAnswer, v))
}

// CanonicalAnswerLTE applies the LTE predicate on the "canonical_answer" field.
func CanonicalAnswerLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCanonicalAnswer, v))
}

// CanonicalAnswerContains applies the Contains predicate on the "canonical_answer" field.
func CanonicalAnswerContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldCanonicalAnswer, v))
}

// CanonicalAnswerHasPrefix applies the HasPrefix predicate on the "canonical_answer" field.
func CanonicalAnswerHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldCanonicalAnswer, v))
}

// CanonicalAnswerHasSuffix applies the HasSuffix predicate on the "canonical_answer" field.
func CanonicalAnswerHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldCanonicalAnswer, v))
}

// CanonicalAnswerEqualFold applies the EqualFold predicate on the "canonical_answer" field.
func CanonicalAnswerEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldCanonicalAnswer, v))
}

// CanonicalAnswerContainsFold applies the ContainsFold predicate on the "canonical_answer" field.
func CanonicalAnswerContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldCanonicalAnswer, v))
}

// OptionsIsNil applies the IsNil predicate on the "options" field.
func OptionsIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldOptions))
}

// OptionsNotNil applies the NotNil predicate on the "options" field.
func OptionsNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldOptions))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
