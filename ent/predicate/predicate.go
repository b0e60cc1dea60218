// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// GradeLevel is the predicate function for gradelevel builders.
type GradeLevel func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PracticeAnswer is the predicate function for practiceanswer builders.
type PracticeAnswer func(*sql.Selector)

// PracticeSession is the predicate function for practicesession builders.
type PracticeSession func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// QuestionProgress is the predicate function for questionprogress builders.
type QuestionProgress func(*sql.Selector)

// StudentTier is the predicate function for studenttier builders.
type StudentTier func(*sql.Selector)

// SubTopic is the predicate function for subtopic builders.
type SubTopic func(*sql.Selector)

// Subject is the predicate function for subject builders.
type Subject func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)
