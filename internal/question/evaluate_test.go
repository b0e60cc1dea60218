package question

import "testing"

func choiceQuestion(qt Type, correct ...string) Question {
	isCorrect := make(map[string]bool, len(correct))
	for _, id := range correct {
		isCorrect[id] = true
	}
	opts := []Option{
		{ID: "a", Text: "Option A"},
		{ID: "b", Text: "Option B"},
		{ID: "c", Text: "Option C"},
		{ID: "d", Text: "Option D"},
	}
	for i := range opts {
		opts[i].Correct = isCorrect[opts[i].ID]
	}
	return Question{ID: "q1", Type: qt, Prompt: "pick", Options: opts}
}

func TestEvaluate_SingleChoice(t *testing.T) {
	q := choiceQuestion(TypeSingleChoice, "b")

	tests := []struct {
		name string
		sel  Selection
		want bool
	}{
		{"correct option", Selection{OptionIDs: []string{"b"}}, true},
		{"wrong option", Selection{OptionIDs: []string{"a"}}, false},
		{"unknown option", Selection{OptionIDs: []string{"zz"}}, false},
		{"two options", Selection{OptionIDs: []string{"a", "b"}}, false},
		{"empty", Selection{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(q, tt.sel); got != tt.want {
				t.Errorf("Evaluate = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestEvaluate_MultiChoice(t *testing.T) {
	// Correct set is {a, c}.
	q := choiceQuestion(TypeMultiChoice, "a", "c")

	tests := []struct {
		name string
		sel  Selection
		want bool
	}{
		{"exact set", Selection{OptionIDs: []string{"a", "c"}}, true},
		{"order independent", Selection{OptionIDs: []string{"c", "a"}}, true},
		{"subset", Selection{OptionIDs: []string{"a"}}, false},
		{"superset", Selection{OptionIDs: []string{"a", "c", "d"}}, false},
		{"disjoint", Selection{OptionIDs: []string{"b", "d"}}, false},
		{"duplicates collapse", Selection{OptionIDs: []string{"a", "a", "c"}}, true},
		{"empty", Selection{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(q, tt.sel); got != tt.want {
				t.Errorf("Evaluate = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestEvaluate_ShortAnswer(t *testing.T) {
	q := Question{ID: "q1", Type: TypeShortAnswer, CanonicalAnswer: "Paris"}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"exact", "Paris", true},
		{"case and whitespace", "  paris ", true},
		{"uppercase", "PARIS", true},
		{"punctuation not stripped", "Paris!", false},
		{"wrong answer", "London", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(q, Selection{Text: tt.text}); got != tt.want {
				t.Errorf("Evaluate(%q) = %t, want %t", tt.text, got, tt.want)
			}
		})
	}
}

func TestEvaluate_UnknownType(t *testing.T) {
	q := Question{ID: "q1", Type: Type("essay")}
	if Evaluate(q, Selection{Text: "anything"}) {
		t.Error("unknown question type must never score correct")
	}
}

func TestCorrectOptionIDs(t *testing.T) {
	q := choiceQuestion(TypeMultiChoice, "a", "c")
	got := q.CorrectOptionIDs()
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("CorrectOptionIDs = %v, want [a c]", got)
	}
}
