// Package question defines the question model shared across the engine and
// the pure answer evaluator.
package question

import "context"

// Type discriminates how a question is answered and scored.
type Type string

const (
	TypeSingleChoice Type = "single_choice"
	TypeMultiChoice  Type = "multi_choice"
	TypeShortAnswer  Type = "short_answer"
)

// Option is one entry in a choice question's ordered option list.
type Option struct {
	ID       string
	Text     string
	ImageURL string
	Correct  bool
}

// Question is immutable once created; the engine only reads it.
type Question struct {
	ID          string
	SubTopicID  string
	Type        Type
	Prompt      string
	ImageURL    string
	Explanation string

	// CanonicalAnswer is the expected text for short-answer questions.
	CanonicalAnswer string

	// Options is the ordered option list for choice questions.
	Options []Option
}

// CorrectOptionIDs returns the ids of all options flagged correct,
// in option order.
func (q Question) CorrectOptionIDs() []string {
	var ids []string
	for _, o := range q.Options {
		if o.Correct {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

// Selection is a submitted response: option ids for choice questions,
// free text for short answers.
type Selection struct {
	OptionIDs []string
	Text      string
}

// Provider fetches the full question pool for a sub-topic.
type Provider interface {
	PoolForSubTopic(ctx context.Context, subTopicID string) ([]Question, error)
}
