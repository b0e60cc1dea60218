package store

import (
	"context"
	"fmt"

	"github.com/ananya/practiq/ent"
	"github.com/ananya/practiq/ent/gradelevel"
	"github.com/ananya/practiq/ent/subject"
	"github.com/ananya/practiq/ent/subtopic"
	"github.com/ananya/practiq/ent/topic"
	"github.com/ananya/practiq/internal/curriculum"
)

// CurriculumStore implements curriculum.Provider over the catalog tables.
type CurriculumStore struct {
	client *ent.Client
}

var _ curriculum.Provider = (*CurriculumStore)(nil)

// FetchHierarchy assembles the four flat catalog tables into a tree. Orphan
// rows whose parent id resolves to nothing are dropped.
func (s *CurriculumStore) FetchHierarchy(ctx context.Context) (*curriculum.Tree, error) {
	grades, err := s.client.GradeLevel.Query().
		Order(ent.Asc(gradelevel.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query grade levels: %w", err)
	}
	subjects, err := s.client.Subject.Query().
		Order(ent.Asc(subject.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query subjects: %w", err)
	}
	topics, err := s.client.Topic.Query().
		Order(ent.Asc(topic.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query topics: %w", err)
	}
	subTopics, err := s.client.SubTopic.Query().
		Order(ent.Asc(subtopic.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sub-topics: %w", err)
	}

	subTopicsByTopic := make(map[string][]curriculum.SubTopic)
	for _, st := range subTopics {
		subTopicsByTopic[st.TopicID] = append(subTopicsByTopic[st.TopicID], curriculum.SubTopic{
			ID:   st.SubTopicID,
			Name: st.Name,
		})
	}
	topicsBySubject := make(map[string][]curriculum.Topic)
	for _, t := range topics {
		topicsBySubject[t.SubjectID] = append(topicsBySubject[t.SubjectID], curriculum.Topic{
			ID:        t.TopicID,
			Name:      t.Name,
			SubTopics: subTopicsByTopic[t.TopicID],
		})
	}
	subjectsByGrade := make(map[string][]curriculum.Subject)
	for _, sub := range subjects {
		subjectsByGrade[sub.GradeID] = append(subjectsByGrade[sub.GradeID], curriculum.Subject{
			ID:     sub.SubjectID,
			Name:   sub.Name,
			Topics: topicsBySubject[sub.SubjectID],
		})
	}

	tree := &curriculum.Tree{}
	for _, g := range grades {
		tree.GradeLevels = append(tree.GradeLevels, curriculum.GradeLevel{
			ID:       g.GradeID,
			Name:     g.Name,
			Subjects: subjectsByGrade[g.GradeID],
		})
	}
	return tree, nil
}

// ReplaceCatalog swaps the whole curriculum for the given tree in one
// transaction. Session rows keep their denormalized labels, so history
// survives a catalog reload.
func (s *CurriculumStore) ReplaceCatalog(ctx context.Context, tree *curriculum.Tree) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	for _, del := range []func(context.Context) error{
		func(ctx context.Context) error { _, err := tx.SubTopic.Delete().Exec(ctx); return err },
		func(ctx context.Context) error { _, err := tx.Topic.Delete().Exec(ctx); return err },
		func(ctx context.Context) error { _, err := tx.Subject.Delete().Exec(ctx); return err },
		func(ctx context.Context) error { _, err := tx.GradeLevel.Delete().Exec(ctx); return err },
	} {
		if err := del(ctx); err != nil {
			return rollback(tx, fmt.Errorf("clear catalog: %w", err))
		}
	}

	for gi, g := range tree.GradeLevels {
		if _, err := tx.GradeLevel.Create().
			SetGradeID(g.ID).
			SetName(g.Name).
			SetPosition(gi).
			Save(ctx); err != nil {
			return rollback(tx, fmt.Errorf("insert grade %q: %w", g.ID, err))
		}
		for si, sub := range g.Subjects {
			if _, err := tx.Subject.Create().
				SetSubjectID(sub.ID).
				SetGradeID(g.ID).
				SetName(sub.Name).
				SetPosition(si).
				Save(ctx); err != nil {
				return rollback(tx, fmt.Errorf("insert subject %q: %w", sub.ID, err))
			}
			for ti, t := range sub.Topics {
				if _, err := tx.Topic.Create().
					SetTopicID(t.ID).
					SetSubjectID(sub.ID).
					SetName(t.Name).
					SetPosition(ti).
					Save(ctx); err != nil {
					return rollback(tx, fmt.Errorf("insert topic %q: %w", t.ID, err))
				}
				for sti, st := range t.SubTopics {
					if _, err := tx.SubTopic.Create().
						SetSubTopicID(st.ID).
						SetTopicID(t.ID).
						SetName(st.Name).
						SetPosition(sti).
						Save(ctx); err != nil {
						return rollback(tx, fmt.Errorf("insert sub-topic %q: %w", st.ID, err))
					}
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog replace: %w", err)
	}
	return nil
}
