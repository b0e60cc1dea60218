package summary

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ananya/practiq/internal/llm"
)

type persistRecorder struct {
	mu        sync.Mutex
	sessionID string
	text      string
	calls     int
	err       error
}

func (p *persistRecorder) persist(_ context.Context, sessionID, text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.sessionID = sessionID
	p.text = text
	return p.err
}

func sampleInput() Input {
	return Input{
		SessionID:      "sess-1",
		SubTopic:       "Fractions",
		Topic:          "Numbers",
		Subject:        "Math",
		GradeLevel:     "Grade 4",
		TotalQuestions: 10,
		CorrectCount:   7,
		TimeSpentMs:    120_000,
		Missed: []MissedQuestion{
			{Prompt: "1/2 + 1/4 = ?", Submitted: "2/6", Expected: "3/4"},
		},
	}
}

func newTestService(provider llm.Provider, rec *persistRecorder) *Service {
	svc := NewService(provider, rec.persist, DefaultConfig())
	svc.done = make(chan struct{}, 1)
	return svc
}

func waitDone(t *testing.T, svc *Service) {
	t.Helper()
	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatal("summary goroutine did not finish")
	}
}

func TestRequestPersistsSummary(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary":"Solid work on fractions.","focus_areas":["adding unlike denominators"]}`),
	})
	rec := &persistRecorder{}
	svc := newTestService(mock, rec)

	svc.Request(context.Background(), sampleInput())
	waitDone(t, svc)

	if rec.calls != 1 {
		t.Fatalf("expected 1 persist call, got %d", rec.calls)
	}
	if rec.sessionID != "sess-1" {
		t.Errorf("unexpected session ID: %q", rec.sessionID)
	}
	want := "Solid work on fractions.\n\nFocus next on: adding unlike denominators."
	if rec.text != want {
		t.Errorf("unexpected summary text:\n got: %q\nwant: %q", rec.text, want)
	}
}

func TestRequestWithoutFocusAreas(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary":"Great session."}`),
	})
	rec := &persistRecorder{}
	svc := newTestService(mock, rec)

	svc.Request(context.Background(), sampleInput())
	waitDone(t, svc)

	if rec.text != "Great session." {
		t.Errorf("unexpected summary text: %q", rec.text)
	}
}

func TestRequestSwallowsProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue returns ErrProviderUnavailable
	rec := &persistRecorder{}
	svc := newTestService(mock, rec)

	svc.Request(context.Background(), sampleInput())
	waitDone(t, svc)

	if rec.calls != 0 {
		t.Fatalf("expected no persist call on provider failure, got %d", rec.calls)
	}
}

func TestRequestSwallowsMalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	rec := &persistRecorder{}
	svc := newTestService(mock, rec)

	svc.Request(context.Background(), sampleInput())
	waitDone(t, svc)

	if rec.calls != 0 {
		t.Fatalf("expected no persist call on malformed response, got %d", rec.calls)
	}
}

func TestRequestUsesSchema(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary":"ok"}`),
	})
	rec := &persistRecorder{}
	svc := newTestService(mock, rec)

	svc.Request(context.Background(), sampleInput())
	waitDone(t, svc)

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(mock.Calls))
	}
	if mock.Calls[0].Schema != Schema {
		t.Error("expected request to carry the summary schema")
	}
}

func TestBuildUserMessageIncludesMisses(t *testing.T) {
	msg := buildUserMessage(sampleInput())
	for _, want := range []string{"Fractions", "Grade 4", "7 of 10", "1/2 + 1/4 = ?", "3/4"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q:\n%s", want, msg)
		}
	}
}
