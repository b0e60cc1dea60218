package llm

import (
	"context"
	"fmt"
	"os"
	"time"
)

// RequestLogEntry is one audited LLM call.
type RequestLogEntry struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// RequestLog persists LLM request audit entries. The store package provides
// the durable implementation.
type RequestLog interface {
	AppendLLMRequest(ctx context.Context, entry RequestLogEntry) error
}

// loggingProvider records every call as an audit entry.
type loggingProvider struct {
	inner Provider
	log   RequestLog
}

// WithLogging wraps a Provider with audit logging. A logging failure never
// fails the request.
func WithLogging(p Provider, log RequestLog) Provider {
	return &loggingProvider{inner: p, log: log}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	entry := RequestLogEntry{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		entry.Model = resp.Model
		entry.InputTokens = resp.Usage.InputTokens
		entry.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		entry.ErrorMessage = err.Error()
	}

	if logErr := l.log.AppendLLMRequest(ctx, entry); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: audit LLM request: %v\n", logErr)
	}

	return resp, err
}

func (l *loggingProvider) ModelID() string {
	return l.inner.ModelID()
}
