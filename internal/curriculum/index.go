package curriculum

import (
	"context"
	"fmt"
	"sync"
)

// Index serves sub-topic ancestry lookups. It is built in one pass over the
// fetched tree and rebuilt whenever the tree is mutated, so Resolve stays
// O(1) and consistent. A lookup on an unloaded index misses rather than
// guessing; callers trigger EnsureLoaded first.
type Index struct {
	provider Provider

	mu         sync.RWMutex
	bySubTopic map[string]Hierarchy
	loaded     bool
}

// NewIndex creates an empty Index over the given provider.
func NewIndex(p Provider) *Index {
	return &Index{provider: p}
}

// EnsureLoaded fetches and indexes the tree if it has not been loaded yet.
func (ix *Index) EnsureLoaded(ctx context.Context) error {
	ix.mu.RLock()
	loaded := ix.loaded
	ix.mu.RUnlock()
	if loaded {
		return nil
	}
	return ix.Reload(ctx)
}

// Reload fetches the tree and rebuilds the index unconditionally.
func (ix *Index) Reload(ctx context.Context) error {
	tree, err := ix.provider.FetchHierarchy(ctx)
	if err != nil {
		return fmt.Errorf("fetch curriculum: %w", err)
	}
	ix.Rebuild(tree)
	return nil
}

// Rebuild replaces the index contents with a fresh pass over tree.
func (ix *Index) Rebuild(tree *Tree) {
	m := make(map[string]Hierarchy)
	if tree != nil {
		for _, g := range tree.GradeLevels {
			for _, s := range g.Subjects {
				for _, t := range s.Topics {
					for _, st := range t.SubTopics {
						m[st.ID] = Hierarchy{
							GradeLevelID:   g.ID,
							GradeLevelName: g.Name,
							SubjectID:      s.ID,
							SubjectName:    s.Name,
							TopicID:        t.ID,
							TopicName:      t.Name,
							SubTopicID:     st.ID,
							SubTopicName:   st.Name,
						}
					}
				}
			}
		}
	}

	ix.mu.Lock()
	ix.bySubTopic = m
	ix.loaded = true
	ix.mu.Unlock()
}

// Resolve returns the ancestry of subTopicID. The second return is false when
// the sub-topic is unknown or the index has not been loaded.
func (ix *Index) Resolve(subTopicID string) (Hierarchy, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if !ix.loaded {
		return Hierarchy{}, false
	}
	h, ok := ix.bySubTopic[subTopicID]
	return h, ok
}

// Invalidate marks the index stale so the next EnsureLoaded refetches.
// Called after any curriculum mutation.
func (ix *Index) Invalidate() {
	ix.mu.Lock()
	ix.loaded = false
	ix.bySubTopic = nil
	ix.mu.Unlock()
}
