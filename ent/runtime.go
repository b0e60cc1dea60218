// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ananya/practiq/ent/gradelevel"
	"github.com/ananya/practiq/ent/llmrequestevent"
	"github.com/ananya/practiq/ent/practiceanswer"
	"github.com/ananya/practiq/ent/practicesession"
	"github.com/ananya/practiq/ent/question"
	"github.com/ananya/practiq/ent/questionprogress"
	"github.com/ananya/practiq/ent/schema"
	"github.com/ananya/practiq/ent/studenttier"
	"github.com/ananya/practiq/ent/subject"
	"github.com/ananya/practiq/ent/subtopic"
	"github.com/ananya/practiq/ent/topic"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	gradelevelFields := schema.GradeLevel{}.Fields()
	_ = gradelevelFields
	// gradelevelDescGradeID is the schema descriptor for grade_id field.
	gradelevelDescGradeID := gradelevelFields[0].Descriptor()
	// gradelevel.GradeIDValidator is a validator for the "grade_id" field. It is called by the builders before save.
	gradelevel.GradeIDValidator = gradelevelDescGradeID.Validators[0].(func(string) error)
	// gradelevelDescName is the schema descriptor for name field.
	gradelevelDescName := gradelevelFields[1].Descriptor()
	// gradelevel.NameValidator is a validator for the "name" field. It is called by the builders before save.
	gradelevel.NameValidator = gradelevelDescName.Validators[0].(func(string) error)
	// gradelevelDescPosition is the schema descriptor for position field.
	gradelevelDescPosition := gradelevelFields[2].Descriptor()
	// gradelevel.DefaultPosition holds the default value on creation for the position field.
	gradelevel.DefaultPosition = gradelevelDescPosition.Default.(int)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescCreatedAt is the schema descriptor for created_at field.
	llmrequesteventDescCreatedAt := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmrequestevent.DefaultCreatedAt = llmrequesteventDescCreatedAt.Default.(func() time.Time)
	practiceanswerFields := schema.PracticeAnswer{}.Fields()
	_ = practiceanswerFields
	// practiceanswerDescSessionID is the schema descriptor for session_id field.
	practiceanswerDescSessionID := practiceanswerFields[0].Descriptor()
	// practiceanswer.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	practiceanswer.SessionIDValidator = practiceanswerDescSessionID.Validators[0].(func(string) error)
	// practiceanswerDescQuestionID is the schema descriptor for question_id field.
	practiceanswerDescQuestionID := practiceanswerFields[1].Descriptor()
	// practiceanswer.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	practiceanswer.QuestionIDValidator = practiceanswerDescQuestionID.Validators[0].(func(string) error)
	// practiceanswerDescText is the schema descriptor for text field.
	practiceanswerDescText := practiceanswerFields[3].Descriptor()
	// practiceanswer.DefaultText holds the default value on creation for the text field.
	practiceanswer.DefaultText = practiceanswerDescText.Default.(string)
	// practiceanswerDescTimeSpentMs is the schema descriptor for time_spent_ms field.
	practiceanswerDescTimeSpentMs := practiceanswerFields[5].Descriptor()
	// practiceanswer.DefaultTimeSpentMs holds the default value on creation for the time_spent_ms field.
	practiceanswer.DefaultTimeSpentMs = practiceanswerDescTimeSpentMs.Default.(int64)
	// practiceanswerDescCreatedAt is the schema descriptor for created_at field.
	practiceanswerDescCreatedAt := practiceanswerFields[6].Descriptor()
	// practiceanswer.DefaultCreatedAt holds the default value on creation for the created_at field.
	practiceanswer.DefaultCreatedAt = practiceanswerDescCreatedAt.Default.(func() time.Time)
	practicesessionFields := schema.PracticeSession{}.Fields()
	_ = practicesessionFields
	// practicesessionDescSessionID is the schema descriptor for session_id field.
	practicesessionDescSessionID := practicesessionFields[0].Descriptor()
	// practicesession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	practicesession.SessionIDValidator = practicesessionDescSessionID.Validators[0].(func(string) error)
	// practicesessionDescStudentID is the schema descriptor for student_id field.
	practicesessionDescStudentID := practicesessionFields[1].Descriptor()
	// practicesession.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	practicesession.StudentIDValidator = practicesessionDescStudentID.Validators[0].(func(string) error)
	// practicesessionDescSubTopicID is the schema descriptor for sub_topic_id field.
	practicesessionDescSubTopicID := practicesessionFields[2].Descriptor()
	// practicesession.SubTopicIDValidator is a validator for the "sub_topic_id" field. It is called by the builders before save.
	practicesession.SubTopicIDValidator = practicesessionDescSubTopicID.Validators[0].(func(string) error)
	// practicesessionDescCurrentIndex is the schema descriptor for current_index field.
	practicesessionDescCurrentIndex := practicesessionFields[11].Descriptor()
	// practicesession.DefaultCurrentIndex holds the default value on creation for the current_index field.
	practicesession.DefaultCurrentIndex = practicesessionDescCurrentIndex.Default.(int)
	// practicesessionDescAnsweredCount is the schema descriptor for answered_count field.
	practicesessionDescAnsweredCount := practicesessionFields[13].Descriptor()
	// practicesession.DefaultAnsweredCount holds the default value on creation for the answered_count field.
	practicesession.DefaultAnsweredCount = practicesessionDescAnsweredCount.Default.(int)
	// practicesessionDescCorrectCount is the schema descriptor for correct_count field.
	practicesessionDescCorrectCount := practicesessionFields[14].Descriptor()
	// practicesession.DefaultCorrectCount holds the default value on creation for the correct_count field.
	practicesession.DefaultCorrectCount = practicesessionDescCorrectCount.Default.(int)
	// practicesessionDescTimeSpentMs is the schema descriptor for time_spent_ms field.
	practicesessionDescTimeSpentMs := practicesessionFields[15].Descriptor()
	// practicesession.DefaultTimeSpentMs holds the default value on creation for the time_spent_ms field.
	practicesession.DefaultTimeSpentMs = practicesessionDescTimeSpentMs.Default.(int64)
	// practicesessionDescSummary is the schema descriptor for summary field.
	practicesessionDescSummary := practicesessionFields[18].Descriptor()
	// practicesession.DefaultSummary holds the default value on creation for the summary field.
	practicesession.DefaultSummary = practicesessionDescSummary.Default.(string)
	// practicesessionDescCreatedAt is the schema descriptor for created_at field.
	practicesessionDescCreatedAt := practicesessionFields[19].Descriptor()
	// practicesession.DefaultCreatedAt holds the default value on creation for the created_at field.
	practicesession.DefaultCreatedAt = practicesessionDescCreatedAt.Default.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescQuestionID is the schema descriptor for question_id field.
	questionDescQuestionID := questionFields[0].Descriptor()
	// question.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	question.QuestionIDValidator = questionDescQuestionID.Validators[0].(func(string) error)
	// questionDescSubTopicID is the schema descriptor for sub_topic_id field.
	questionDescSubTopicID := questionFields[1].Descriptor()
	// question.SubTopicIDValidator is a validator for the "sub_topic_id" field. It is called by the builders before save.
	question.SubTopicIDValidator = questionDescSubTopicID.Validators[0].(func(string) error)
	// questionDescKind is the schema descriptor for kind field.
	questionDescKind := questionFields[2].Descriptor()
	// question.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	question.KindValidator = questionDescKind.Validators[0].(func(string) error)
	// questionDescPrompt is the schema descriptor for prompt field.
	questionDescPrompt := questionFields[3].Descriptor()
	// question.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	question.PromptValidator = questionDescPrompt.Validators[0].(func(string) error)
	// questionDescImageURL is the schema descriptor for image_url field.
	questionDescImageURL := questionFields[4].Descriptor()
	// question.DefaultImageURL holds the default value on creation for the image_url field.
	question.DefaultImageURL = questionDescImageURL.Default.(string)
	// questionDescExplanation is the schema descriptor for explanation field.
	questionDescExplanation := questionFields[5].Descriptor()
	// question.DefaultExplanation holds the default value on creation for the explanation field.
	question.DefaultExplanation = questionDescExplanation.Default.(string)
	// questionDescCanonicalAnswer is the schema descriptor for canonical_answer field.
	questionDescCanonicalAnswer := questionFields[6].Descriptor()
	// question.DefaultCanonicalAnswer holds the default value on creation for the canonical_answer field.
	question.DefaultCanonicalAnswer = questionDescCanonicalAnswer.Default.(string)
	questionprogressFields := schema.QuestionProgress{}.Fields()
	_ = questionprogressFields
	// questionprogressDescStudentID is the schema descriptor for student_id field.
	questionprogressDescStudentID := questionprogressFields[0].Descriptor()
	// questionprogress.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	questionprogress.StudentIDValidator = questionprogressDescStudentID.Validators[0].(func(string) error)
	// questionprogressDescSubTopicID is the schema descriptor for sub_topic_id field.
	questionprogressDescSubTopicID := questionprogressFields[1].Descriptor()
	// questionprogress.SubTopicIDValidator is a validator for the "sub_topic_id" field. It is called by the builders before save.
	questionprogress.SubTopicIDValidator = questionprogressDescSubTopicID.Validators[0].(func(string) error)
	// questionprogressDescQuestionID is the schema descriptor for question_id field.
	questionprogressDescQuestionID := questionprogressFields[2].Descriptor()
	// questionprogress.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	questionprogress.QuestionIDValidator = questionprogressDescQuestionID.Validators[0].(func(string) error)
	// questionprogressDescCycleNumber is the schema descriptor for cycle_number field.
	questionprogressDescCycleNumber := questionprogressFields[3].Descriptor()
	// questionprogress.CycleNumberValidator is a validator for the "cycle_number" field. It is called by the builders before save.
	questionprogress.CycleNumberValidator = questionprogressDescCycleNumber.Validators[0].(func(int) error)
	// questionprogressDescCreatedAt is the schema descriptor for created_at field.
	questionprogressDescCreatedAt := questionprogressFields[4].Descriptor()
	// questionprogress.DefaultCreatedAt holds the default value on creation for the created_at field.
	questionprogress.DefaultCreatedAt = questionprogressDescCreatedAt.Default.(func() time.Time)
	studenttierFields := schema.StudentTier{}.Fields()
	_ = studenttierFields
	// studenttierDescStudentID is the schema descriptor for student_id field.
	studenttierDescStudentID := studenttierFields[0].Descriptor()
	// studenttier.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	studenttier.StudentIDValidator = studenttierDescStudentID.Validators[0].(func(string) error)
	// studenttierDescTier is the schema descriptor for tier field.
	studenttierDescTier := studenttierFields[1].Descriptor()
	// studenttier.DefaultTier holds the default value on creation for the tier field.
	studenttier.DefaultTier = studenttierDescTier.Default.(string)
	// studenttierDescUpdatedAt is the schema descriptor for updated_at field.
	studenttierDescUpdatedAt := studenttierFields[2].Descriptor()
	// studenttier.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	studenttier.DefaultUpdatedAt = studenttierDescUpdatedAt.Default.(func() time.Time)
	// studenttier.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	studenttier.UpdateDefaultUpdatedAt = studenttierDescUpdatedAt.UpdateDefault.(func() time.Time)
	subtopicFields := schema.SubTopic{}.Fields()
	_ = subtopicFields
	// subtopicDescSubTopicID is the schema descriptor for sub_topic_id field.
	subtopicDescSubTopicID := subtopicFields[0].Descriptor()
	// subtopic.SubTopicIDValidator is a validator for the "sub_topic_id" field. It is called by the builders before save.
	subtopic.SubTopicIDValidator = subtopicDescSubTopicID.Validators[0].(func(string) error)
	// subtopicDescTopicID is the schema descriptor for topic_id field.
	subtopicDescTopicID := subtopicFields[1].Descriptor()
	// subtopic.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	subtopic.TopicIDValidator = subtopicDescTopicID.Validators[0].(func(string) error)
	// subtopicDescName is the schema descriptor for name field.
	subtopicDescName := subtopicFields[2].Descriptor()
	// subtopic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	subtopic.NameValidator = subtopicDescName.Validators[0].(func(string) error)
	// subtopicDescPosition is the schema descriptor for position field.
	subtopicDescPosition := subtopicFields[3].Descriptor()
	// subtopic.DefaultPosition holds the default value on creation for the position field.
	subtopic.DefaultPosition = subtopicDescPosition.Default.(int)
	subjectFields := schema.Subject{}.Fields()
	_ = subjectFields
	// subjectDescSubjectID is the schema descriptor for subject_id field.
	subjectDescSubjectID := subjectFields[0].Descriptor()
	// subject.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	subject.SubjectIDValidator = subjectDescSubjectID.Validators[0].(func(string) error)
	// subjectDescGradeID is the schema descriptor for grade_id field.
	subjectDescGradeID := subjectFields[1].Descriptor()
	// subject.GradeIDValidator is a validator for the "grade_id" field. It is called by the builders before save.
	subject.GradeIDValidator = subjectDescGradeID.Validators[0].(func(string) error)
	// subjectDescName is the schema descriptor for name field.
	subjectDescName := subjectFields[2].Descriptor()
	// subject.NameValidator is a validator for the "name" field. It is called by the builders before save.
	subject.NameValidator = subjectDescName.Validators[0].(func(string) error)
	// subjectDescPosition is the schema descriptor for position field.
	subjectDescPosition := subjectFields[3].Descriptor()
	// subject.DefaultPosition holds the default value on creation for the position field.
	subject.DefaultPosition = subjectDescPosition.Default.(int)
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescTopicID is the schema descriptor for topic_id field.
	topicDescTopicID := topicFields[0].Descriptor()
	// topic.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	topic.TopicIDValidator = topicDescTopicID.Validators[0].(func(string) error)
	// topicDescSubjectID is the schema descriptor for subject_id field.
	topicDescSubjectID := topicFields[1].Descriptor()
	// topic.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	topic.SubjectIDValidator = topicDescSubjectID.Validators[0].(func(string) error)
	// topicDescName is the schema descriptor for name field.
	topicDescName := topicFields[2].Descriptor()
	// topic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	topic.NameValidator = topicDescName.Validators[0].(func(string) error)
	// topicDescPosition is the schema descriptor for position field.
	topicDescPosition := topicFields[3].Descriptor()
	// topic.DefaultPosition holds the default value on creation for the position field.
	topic.DefaultPosition = topicDescPosition.Default.(int)
}
