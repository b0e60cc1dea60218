package question

import "strings"

// Evaluate compares a submitted selection against the question and returns
// whether it is correct. Pure and deterministic; a missing or empty
// submission is incorrect, never an error.
//
// Rules per question type:
//   - single choice: the one submitted option id must be the option flagged correct
//   - multi choice: the submitted id set must equal the flagged set exactly;
//     supersets and subsets score zero, there is no partial credit
//   - short answer: trimmed, lowercased equality against the canonical answer;
//     accents and punctuation are not normalized
func Evaluate(q Question, sel Selection) bool {
	switch q.Type {
	case TypeSingleChoice:
		return evaluateSingle(q, sel)
	case TypeMultiChoice:
		return evaluateMulti(q, sel)
	case TypeShortAnswer:
		return evaluateShort(q, sel)
	default:
		return false
	}
}

func evaluateSingle(q Question, sel Selection) bool {
	if len(sel.OptionIDs) != 1 {
		return false
	}
	for _, o := range q.Options {
		if o.ID == sel.OptionIDs[0] {
			return o.Correct
		}
	}
	return false
}

func evaluateMulti(q Question, sel Selection) bool {
	if len(sel.OptionIDs) == 0 {
		return false
	}

	submitted := make(map[string]bool, len(sel.OptionIDs))
	for _, id := range sel.OptionIDs {
		submitted[id] = true
	}

	correct := 0
	for _, o := range q.Options {
		if o.Correct {
			correct++
			if !submitted[o.ID] {
				return false
			}
		}
	}

	// Same members and same size; duplicate submissions collapse in the set.
	return correct > 0 && len(submitted) == correct
}

func evaluateShort(q Question, sel Selection) bool {
	got := strings.ToLower(strings.TrimSpace(sel.Text))
	want := strings.ToLower(strings.TrimSpace(q.CanonicalAnswer))
	if got == "" {
		return false
	}
	return got == want
}
