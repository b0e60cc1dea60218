package store

import (
	"context"
	"fmt"

	"github.com/ananya/practiq/ent"
	"github.com/ananya/practiq/ent/llmrequestevent"
	"github.com/ananya/practiq/internal/llm"
)

// LLMLogStore implements llm.RequestLog over the request event table.
type LLMLogStore struct {
	client *ent.Client
}

var _ llm.RequestLog = (*LLMLogStore)(nil)

func (s *LLMLogStore) AppendLLMRequest(ctx context.Context, entry llm.RequestLogEntry) error {
	_, err := s.client.LLMRequestEvent.Create().
		SetProvider(entry.Provider).
		SetModel(entry.Model).
		SetPurpose(entry.Purpose).
		SetInputTokens(entry.InputTokens).
		SetOutputTokens(entry.OutputTokens).
		SetLatencyMs(entry.LatencyMs).
		SetSuccess(entry.Success).
		SetErrorMessage(entry.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save llm request event: %w", err)
	}
	return nil
}

// UsageTotal aggregates LLM spend for one purpose label.
type UsageTotal struct {
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// UsageByPurpose totals requests and tokens per purpose label.
func (s *LLMLogStore) UsageByPurpose(ctx context.Context) ([]UsageTotal, error) {
	rows, err := s.client.LLMRequestEvent.Query().
		Order(ent.Asc(llmrequestevent.FieldPurpose)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm request events: %w", err)
	}

	byPurpose := make(map[string]*UsageTotal)
	var order []string
	for _, r := range rows {
		tot, ok := byPurpose[r.Purpose]
		if !ok {
			tot = &UsageTotal{Purpose: r.Purpose}
			byPurpose[r.Purpose] = tot
			order = append(order, r.Purpose)
		}
		tot.Requests++
		if !r.Success {
			tot.Failures++
		}
		tot.InputTokens += r.InputTokens
		tot.OutputTokens += r.OutputTokens
	}

	out := make([]UsageTotal, len(order))
	for i, p := range order {
		out[i] = *byPurpose[p]
	}
	return out, nil
}
