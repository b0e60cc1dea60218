package curriculum

import (
	"context"
	"errors"
	"testing"
)

type staticProvider struct {
	tree  *Tree
	err   error
	calls int
}

func (p *staticProvider) FetchHierarchy(_ context.Context) (*Tree, error) {
	p.calls++
	return p.tree, p.err
}

func sampleTree() *Tree {
	return &Tree{
		GradeLevels: []GradeLevel{
			{
				ID:   "g3",
				Name: "Grade 3",
				Subjects: []Subject{
					{
						ID:   "math",
						Name: "Mathematics",
						Topics: []Topic{
							{
								ID:   "frac",
								Name: "Fractions",
								SubTopics: []SubTopic{
									{ID: "frac-add", Name: "Adding Fractions"},
									{ID: "frac-cmp", Name: "Comparing Fractions"},
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestResolve_FullAncestry(t *testing.T) {
	ix := NewIndex(&staticProvider{tree: sampleTree()})
	if err := ix.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	h, ok := ix.Resolve("frac-add")
	if !ok {
		t.Fatal("expected sub-topic to resolve")
	}
	if h.GradeLevelName != "Grade 3" || h.SubjectName != "Mathematics" ||
		h.TopicName != "Fractions" || h.SubTopicName != "Adding Fractions" {
		t.Errorf("unexpected hierarchy: %+v", h)
	}
}

func TestResolve_UnknownSubTopic(t *testing.T) {
	ix := NewIndex(&staticProvider{tree: sampleTree()})
	if err := ix.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := ix.Resolve("nope"); ok {
		t.Error("expected unknown sub-topic to miss")
	}
}

func TestResolve_NotLoaded(t *testing.T) {
	ix := NewIndex(&staticProvider{tree: sampleTree()})
	if _, ok := ix.Resolve("frac-add"); ok {
		t.Error("unloaded index must not resolve anything")
	}
}

func TestEnsureLoaded_FetchOnce(t *testing.T) {
	p := &staticProvider{tree: sampleTree()}
	ix := NewIndex(p)

	ctx := context.Background()
	if err := ix.EnsureLoaded(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ix.EnsureLoaded(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.calls != 1 {
		t.Errorf("provider calls = %d, want 1", p.calls)
	}
}

func TestInvalidate_TriggersRefetch(t *testing.T) {
	p := &staticProvider{tree: sampleTree()}
	ix := NewIndex(p)

	ctx := context.Background()
	if err := ix.EnsureLoaded(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ix.Invalidate()
	if _, ok := ix.Resolve("frac-add"); ok {
		t.Error("invalidated index must not resolve")
	}

	if err := ix.EnsureLoaded(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.calls != 2 {
		t.Errorf("provider calls = %d, want 2", p.calls)
	}
	if _, ok := ix.Resolve("frac-add"); !ok {
		t.Error("expected sub-topic to resolve after reload")
	}
}

func TestEnsureLoaded_ProviderError(t *testing.T) {
	boom := errors.New("catalog down")
	ix := NewIndex(&staticProvider{err: boom})

	if err := ix.EnsureLoaded(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped catalog error", err)
	}
	if _, ok := ix.Resolve("frac-add"); ok {
		t.Error("failed load must leave the index unloaded")
	}
}
