package cycler

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/ananya/practiq/internal/question"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func makePool(n int) []question.Question {
	pool := make([]question.Question, n)
	for i := range pool {
		pool[i] = question.Question{ID: fmt.Sprintf("q%02d", i), SubTopicID: "st1"}
	}
	return pool
}

func idSet(qs []question.Question) map[string]bool {
	s := make(map[string]bool, len(qs))
	for _, q := range qs {
		s[q.ID] = true
	}
	return s
}

func TestSelect_EmptyPool(t *testing.T) {
	_, err := Select(nil, nil, 10, 0, testRNG(1))
	if err != ErrEmptyPool {
		t.Fatalf("error = %v, want ErrEmptyPool", err)
	}
}

func TestSelect_FirstBatchStartsCycleOne(t *testing.T) {
	pool := makePool(15)
	batch, err := Select(pool, nil, 10, 0, testRNG(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if batch.CycleNumber != 1 {
		t.Errorf("cycle = %d, want 1", batch.CycleNumber)
	}
	if len(batch.Questions) != 10 {
		t.Errorf("batch size = %d, want 10", len(batch.Questions))
	}
	if dupes(batch.Questions) {
		t.Error("batch contains duplicate questions")
	}
}

func TestSelect_RequestedCappedAtPoolSize(t *testing.T) {
	pool := makePool(4)
	batch, err := Select(pool, nil, 10, 0, testRNG(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Questions) != 4 {
		t.Errorf("batch size = %d, want 4 (capped at pool)", len(batch.Questions))
	}
	if batch.CycleNumber != 1 {
		t.Errorf("cycle = %d, want 1", batch.CycleNumber)
	}
}

// Pool of 15, K=10: session 1 takes 10 in cycle 1, session 2 finds only 5
// unanswered, carries all 5 into cycle 2 and tops up with 5 of the 10 used.
func TestSelect_CycleRollover(t *testing.T) {
	pool := makePool(15)
	rng := testRNG(3)

	first, err := Select(pool, nil, 10, 0, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.CycleNumber != 1 {
		t.Fatalf("first cycle = %d, want 1", first.CycleNumber)
	}

	answered := idSet(first.Questions)
	second, err := Select(pool, answered, 10, first.CycleNumber, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if second.CycleNumber != 2 {
		t.Errorf("second cycle = %d, want 2", second.CycleNumber)
	}
	if len(second.Questions) != 10 {
		t.Errorf("second batch size = %d, want 10", len(second.Questions))
	}
	if dupes(second.Questions) {
		t.Error("second batch contains duplicates")
	}

	// Exactly the 5 carried-over questions plus 5 previously used ones.
	carried, fresh := 0, 0
	for _, q := range second.Questions {
		if answered[q.ID] {
			fresh++
		} else {
			carried++
		}
	}
	if carried != 5 || fresh != 5 {
		t.Errorf("carried = %d, fresh = %d, want 5 and 5", carried, fresh)
	}
}

// No question repeats within a cycle across successive selections, and the
// cycle number increments exactly when the unanswered set drops below K.
func TestSelect_NoRepeatWithinCycle(t *testing.T) {
	pool := makePool(30)
	rng := testRNG(4)
	const k = 10

	answered := make(map[string]bool)
	cycle := 0
	for i := 0; i < 3; i++ {
		batch, err := Select(pool, answered, k, cycle, rng)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if batch.CycleNumber != 1 {
			t.Fatalf("selection %d cycle = %d, want 1", i, batch.CycleNumber)
		}
		for _, q := range batch.Questions {
			if answered[q.ID] {
				t.Fatalf("question %s repeated within cycle 1", q.ID)
			}
			answered[q.ID] = true
		}
		cycle = batch.CycleNumber
	}

	// Pool exhausted: the next selection must open cycle 2.
	batch, err := Select(pool, answered, k, cycle, rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if batch.CycleNumber != 2 {
		t.Errorf("cycle = %d, want 2 after exhaustion", batch.CycleNumber)
	}
}

// The shuffle output is a permutation of its input: same multiset, no
// duplicates, no omissions.
func TestShuffle_IsPermutation(t *testing.T) {
	pool := makePool(20)
	batch, err := Select(pool, nil, 20, 0, testRNG(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Questions) != 20 {
		t.Fatalf("batch size = %d, want 20", len(batch.Questions))
	}
	got := idSet(batch.Questions)
	for _, q := range pool {
		if !got[q.ID] {
			t.Errorf("question %s missing from shuffled output", q.ID)
		}
	}
}

// Over many trials every element's final-position distribution should be
// close to uniform. A heavily biased shuffle concentrates elements near
// their original position.
func TestShuffle_Uniformity(t *testing.T) {
	const n = 10
	const trials = 20000

	counts := make([][]int, n) // counts[item][position]
	for i := range counts {
		counts[i] = make([]int, n)
	}

	rng := testRNG(6)
	for trial := 0; trial < trials; trial++ {
		qs := makePool(n)
		shuffle(qs, rng)
		for pos, q := range qs {
			var item int
			fmt.Sscanf(q.ID, "q%02d", &item)
			counts[item][pos]++
		}
	}

	expected := float64(trials) / float64(n)
	for item := 0; item < n; item++ {
		for pos := 0; pos < n; pos++ {
			ratio := float64(counts[item][pos]) / expected
			if ratio < 0.85 || ratio > 1.15 {
				t.Errorf("item %d at position %d: ratio %.3f outside [0.85, 1.15]", item, pos, ratio)
			}
		}
	}
}

func dupes(qs []question.Question) bool {
	seen := make(map[string]bool, len(qs))
	for _, q := range qs {
		if seen[q.ID] {
			return true
		}
		seen[q.ID] = true
	}
	return false
}
