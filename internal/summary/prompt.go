package summary

import (
	"fmt"
	"strings"

	"github.com/ananya/practiq/internal/llm"
)

const systemPrompt = `You write short, encouraging recaps of a student's practice session.
Address the student directly. Two or three sentences: what went well, what to
work on. Reference the actual mistakes when there are any. No headings, no
bullet lists, no grades or percentages the student didn't earn.`

// Schema constrains the LLM output to a summary plus optional focus areas.
var Schema = &llm.Schema{
	Name:        "session-summary",
	Description: "A short recap of a completed practice session",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Two to three encouraging sentences about the session",
			},
			"focus_areas": map[string]any{
				"type":        "array",
				"description": "Up to three short phrases naming concepts to revisit",
				"items":       map[string]any{"type": "string"},
				"maxItems":    3,
			},
		},
		"required":             []any{"summary"},
		"additionalProperties": false,
	},
}

func buildUserMessage(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Session: %s > %s > %s > %s\n", in.GradeLevel, in.Subject, in.Topic, in.SubTopic)
	fmt.Fprintf(&b, "Score: %d of %d correct", in.CorrectCount, in.TotalQuestions)
	if in.TimeSpentMs > 0 {
		fmt.Fprintf(&b, " in %ds", in.TimeSpentMs/1000)
	}
	b.WriteString("\n")

	if len(in.Missed) == 0 {
		b.WriteString("No mistakes.\n")
		return b.String()
	}

	b.WriteString("Missed questions:\n")
	for _, m := range in.Missed {
		fmt.Fprintf(&b, "- %q: answered %q, expected %q\n", m.Prompt, m.Submitted, m.Expected)
	}
	return b.String()
}
