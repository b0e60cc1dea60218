// Package summary generates short AI recaps of completed practice sessions.
// Generation is fire-and-forget: a failure is logged and the completed
// session simply has no summary.
package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ananya/practiq/internal/llm"
)

// MissedQuestion is one incorrectly answered question, for LLM context.
type MissedQuestion struct {
	Prompt    string
	Submitted string
	Expected  string
}

// Input describes a completed session.
type Input struct {
	SessionID      string
	SubTopic       string
	Topic          string
	Subject        string
	GradeLevel     string
	TotalQuestions int
	CorrectCount   int
	TimeSpentMs    int64
	Missed         []MissedQuestion
}

// Persist stores the generated summary text against the session.
type Persist func(ctx context.Context, sessionID, text string) error

// Config tunes summary generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard summary generation settings.
func DefaultConfig() Config {
	return Config{MaxTokens: 512, Temperature: 0.4}
}

// Service generates session summaries asynchronously.
type Service struct {
	provider llm.Provider
	persist  Persist
	cfg      Config

	// done is closed-loop test support: each Request sends one value when
	// its goroutine finishes. Nil outside tests.
	done chan struct{}
}

// NewService creates a summary service.
func NewService(provider llm.Provider, persist Persist, cfg Config) *Service {
	return &Service{provider: provider, persist: persist, cfg: cfg}
}

// Request starts summary generation in the background. Errors are logged
// and swallowed; a completed session without a summary is acceptable.
func (s *Service) Request(ctx context.Context, in Input) {
	go func() {
		defer s.signalDone()

		text, err := s.generate(ctx, in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: session summary for %s failed: %v\n", in.SessionID, err)
			return
		}
		if err := s.persist(ctx, in.SessionID, text); err != nil {
			fmt.Fprintf(os.Stderr, "warning: store summary for %s failed: %v\n", in.SessionID, err)
		}
	}()
}

type summaryOutput struct {
	Summary    string   `json:"summary"`
	FocusAreas []string `json:"focus_areas"`
}

func (s *Service) generate(ctx context.Context, in Input) (string, error) {
	ctx = llm.WithPurpose(ctx, "session-summary")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(in)},
		},
		Schema:      Schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("summary generation: %w", err)
	}

	var out summaryOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse summary response: %w", err)
	}

	text := strings.TrimSpace(out.Summary)
	if len(out.FocusAreas) > 0 {
		text += "\n\nFocus next on: " + strings.Join(out.FocusAreas, ", ") + "."
	}
	return text, nil
}

func (s *Service) signalDone() {
	if s.done != nil {
		s.done <- struct{}{}
	}
}
