package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ananya/practiq/internal/curriculum"
	"github.com/ananya/practiq/internal/entitlement"
	"github.com/ananya/practiq/internal/question"
	"github.com/ananya/practiq/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file.json>",
	Short: "Load a curriculum and question bank from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSeed,
}

// seedFile is the on-disk seed format: the curriculum tree with question
// pools attached to the leaves, plus optional tier assignments.
type seedFile struct {
	GradeLevels []seedGradeLevel  `json:"gradeLevels"`
	Tiers       map[string]string `json:"tiers,omitempty"`
}

type seedGradeLevel struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Subjects []seedSubject `json:"subjects"`
}

type seedSubject struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Topics []seedTopic `json:"topics"`
}

type seedTopic struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	SubTopics []seedSubTopic `json:"subTopics"`
}

type seedSubTopic struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Questions []seedQuestion `json:"questions"`
}

type seedQuestion struct {
	ID              string       `json:"id"`
	Type            string       `json:"type"`
	Prompt          string       `json:"prompt"`
	ImageURL        string       `json:"imageUrl,omitempty"`
	Explanation     string       `json:"explanation,omitempty"`
	CanonicalAnswer string       `json:"canonicalAnswer,omitempty"`
	Options         []seedOption `json:"options,omitempty"`
}

type seedOption struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl,omitempty"`
	Correct  bool   `json:"correct"`
}

func runSeed(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	tree, questions, err := buildSeed(&seed)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	if err := st.Curriculum().ReplaceCatalog(ctx, tree); err != nil {
		return err
	}
	if len(questions) > 0 {
		if err := st.Questions().Replace(ctx, questions); err != nil {
			return err
		}
	}
	for studentID, tier := range seed.Tiers {
		if err := st.Tiers().SetTier(ctx, studentID, entitlement.Tier(tier)); err != nil {
			return err
		}
	}

	fmt.Printf("seeded %d sub-topics, %d questions, %d tier assignments\n",
		countSubTopics(tree), len(questions), len(seed.Tiers))
	return nil
}

// buildSeed converts the file format to domain types, validating ids and
// question shapes along the way.
func buildSeed(seed *seedFile) (*curriculum.Tree, []question.Question, error) {
	tree := &curriculum.Tree{}
	var questions []question.Question

	for _, g := range seed.GradeLevels {
		grade := curriculum.GradeLevel{ID: g.ID, Name: g.Name}
		for _, s := range g.Subjects {
			subject := curriculum.Subject{ID: s.ID, Name: s.Name}
			for _, t := range s.Topics {
				topic := curriculum.Topic{ID: t.ID, Name: t.Name}
				for _, leaf := range t.SubTopics {
					if leaf.ID == "" || leaf.Name == "" {
						return nil, nil, fmt.Errorf("sub-topic under topic %q needs id and name", t.ID)
					}
					topic.SubTopics = append(topic.SubTopics, curriculum.SubTopic{ID: leaf.ID, Name: leaf.Name})
					for _, q := range leaf.Questions {
						converted, err := convertSeedQuestion(leaf.ID, q)
						if err != nil {
							return nil, nil, err
						}
						questions = append(questions, converted)
					}
				}
				subject.Topics = append(subject.Topics, topic)
			}
			grade.Subjects = append(grade.Subjects, subject)
		}
		tree.GradeLevels = append(tree.GradeLevels, grade)
	}
	return tree, questions, nil
}

func convertSeedQuestion(subTopicID string, q seedQuestion) (question.Question, error) {
	kind := question.Type(q.Type)
	switch kind {
	case question.TypeSingleChoice, question.TypeMultiChoice:
		if len(q.Options) < 2 {
			return question.Question{}, fmt.Errorf("question %q needs at least two options", q.ID)
		}
		correct := 0
		for _, o := range q.Options {
			if o.Correct {
				correct++
			}
		}
		if correct == 0 {
			return question.Question{}, fmt.Errorf("question %q has no correct option", q.ID)
		}
		if kind == question.TypeSingleChoice && correct != 1 {
			return question.Question{}, fmt.Errorf("question %q must have exactly one correct option", q.ID)
		}
	case question.TypeShortAnswer:
		if q.CanonicalAnswer == "" {
			return question.Question{}, fmt.Errorf("question %q needs a canonical answer", q.ID)
		}
	default:
		return question.Question{}, fmt.Errorf("question %q has unknown type %q", q.ID, q.Type)
	}

	out := question.Question{
		ID:              q.ID,
		SubTopicID:      subTopicID,
		Type:            kind,
		Prompt:          q.Prompt,
		ImageURL:        q.ImageURL,
		Explanation:     q.Explanation,
		CanonicalAnswer: q.CanonicalAnswer,
	}
	for _, o := range q.Options {
		out.Options = append(out.Options, question.Option{
			ID:       o.ID,
			Text:     o.Text,
			ImageURL: o.ImageURL,
			Correct:  o.Correct,
		})
	}
	return out, nil
}

func countSubTopics(tree *curriculum.Tree) int {
	n := 0
	for _, g := range tree.GradeLevels {
		for _, s := range g.Subjects {
			for _, t := range s.Topics {
				n += len(t.SubTopics)
			}
		}
	}
	return n
}
