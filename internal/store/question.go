package store

import (
	"context"
	"fmt"

	"github.com/ananya/practiq/ent"
	entquestion "github.com/ananya/practiq/ent/question"
	"github.com/ananya/practiq/ent/schema"
	"github.com/ananya/practiq/internal/question"
)

// QuestionStore implements question.Provider over the question bank table.
type QuestionStore struct {
	client *ent.Client
}

var _ question.Provider = (*QuestionStore)(nil)

func (s *QuestionStore) PoolForSubTopic(ctx context.Context, subTopicID string) ([]question.Question, error) {
	rows, err := s.client.Question.Query().
		Where(entquestion.SubTopicID(subTopicID)).
		Order(ent.Asc(entquestion.FieldQuestionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query question pool: %w", err)
	}

	out := make([]question.Question, len(rows))
	for i, r := range rows {
		out[i] = toQuestion(r)
	}
	return out, nil
}

// Replace swaps the pool of each sub-topic present in qs: existing rows for
// those sub-topics are deleted and the new ones inserted, in one transaction.
func (s *QuestionStore) Replace(ctx context.Context, qs []question.Question) error {
	subTopics := make(map[string]bool)
	for _, q := range qs {
		subTopics[q.SubTopicID] = true
	}
	ids := make([]string, 0, len(subTopics))
	for id := range subTopics {
		ids = append(ids, id)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.Question.Delete().
		Where(entquestion.SubTopicIDIn(ids...)).
		Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("clear question pools: %w", err))
	}

	bulk := make([]*ent.QuestionCreate, len(qs))
	for i, q := range qs {
		opts := make([]schema.OptionData, len(q.Options))
		for j, o := range q.Options {
			opts[j] = schema.OptionData{
				OptionID: o.ID,
				Text:     o.Text,
				ImageURL: o.ImageURL,
				Correct:  o.Correct,
			}
		}
		builder := tx.Question.Create().
			SetQuestionID(q.ID).
			SetSubTopicID(q.SubTopicID).
			SetKind(string(q.Type)).
			SetPrompt(q.Prompt).
			SetImageURL(q.ImageURL).
			SetExplanation(q.Explanation).
			SetCanonicalAnswer(q.CanonicalAnswer)
		if len(opts) > 0 {
			builder = builder.SetOptions(opts)
		}
		bulk[i] = builder
	}
	if _, err := tx.Question.CreateBulk(bulk...).Save(ctx); err != nil {
		return rollback(tx, fmt.Errorf("insert questions: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit question replace: %w", err)
	}
	return nil
}

func toQuestion(r *ent.Question) question.Question {
	q := question.Question{
		ID:              r.QuestionID,
		SubTopicID:      r.SubTopicID,
		Type:            question.Type(r.Kind),
		Prompt:          r.Prompt,
		ImageURL:        r.ImageURL,
		Explanation:     r.Explanation,
		CanonicalAnswer: r.CanonicalAnswer,
	}
	for _, o := range r.Options {
		q.Options = append(q.Options, question.Option{
			ID:       o.OptionID,
			Text:     o.Text,
			ImageURL: o.ImageURL,
			Correct:  o.Correct,
		})
	}
	return q
}
