// Package cycler selects the next batch of questions from a sub-topic's pool
// without repeating questions until the pool is exhausted, then starts a new
// cycle.
package cycler

import (
	"errors"
	"math/rand/v2"

	"github.com/ananya/practiq/internal/question"
)

// ErrEmptyPool is returned when the sub-topic has no questions at all.
var ErrEmptyPool = errors.New("question pool is empty")

// Batch is a selection result: the ordered questions for a new session and
// the cycle number their progress rows must be recorded under.
type Batch struct {
	Questions   []question.Question
	CycleNumber int
}

// Select picks up to requested questions from pool.
//
// answeredInCycle is the set of question ids already presented in
// currentCycle, the highest cycle recorded for this student and sub-topic
// (0 when there is no prior progress; cycles start at 1).
//
// When enough unanswered questions remain they are shuffled and taken as-is.
// Otherwise all remaining unanswered questions are carried over, the cycle
// number is incremented, the shortfall is drawn from the rest of the pool,
// and the combined batch is reshuffled so carried-over and fresh questions
// interleave. requested is capped at the pool size.
func Select(pool []question.Question, answeredInCycle map[string]bool, requested, currentCycle int, rng *rand.Rand) (Batch, error) {
	if len(pool) == 0 {
		return Batch{}, ErrEmptyPool
	}
	if requested <= 0 {
		return Batch{}, errors.New("requested count must be positive")
	}
	if requested > len(pool) {
		requested = len(pool)
	}

	cycle := currentCycle
	if cycle < 1 {
		cycle = 1
	}

	var unanswered, answered []question.Question
	for _, q := range pool {
		if answeredInCycle[q.ID] {
			answered = append(answered, q)
		} else {
			unanswered = append(unanswered, q)
		}
	}

	if len(unanswered) >= requested {
		shuffle(unanswered, rng)
		return Batch{
			Questions:   unanswered[:requested],
			CycleNumber: cycle,
		}, nil
	}

	// Pool exhausted for this cycle: carry everything unanswered, top up from
	// the questions already used, and start the next cycle.
	batch := make([]question.Question, 0, requested)
	batch = append(batch, unanswered...)

	shuffle(answered, rng)
	batch = append(batch, answered[:requested-len(unanswered)]...)

	shuffle(batch, rng)
	return Batch{
		Questions:   batch,
		CycleNumber: cycle + 1,
	}, nil
}

// shuffle is an in-place Fisher–Yates shuffle. O(n) and unbiased, unlike
// comparator-based shuffles.
func shuffle(qs []question.Question, rng *rand.Rand) {
	for i := len(qs) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		qs[i], qs[j] = qs[j], qs[i]
	}
}
