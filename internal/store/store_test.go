package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ananya/practiq/ent"
	"github.com/ananya/practiq/ent/questionprogress"
	"github.com/ananya/practiq/internal/curriculum"
	"github.com/ananya/practiq/internal/engine"
	"github.com/ananya/practiq/internal/entitlement"
	"github.com/ananya/practiq/internal/llm"
	"github.com/ananya/practiq/internal/question"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	// A named in-memory database keeps each test isolated while letting the
	// pool share one database across connections.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testHierarchy() curriculum.Hierarchy {
	return curriculum.Hierarchy{
		GradeLevelID: "g4", GradeLevelName: "Grade 4",
		SubjectID: "math", SubjectName: "Math",
		TopicID: "numbers", TopicName: "Numbers",
		SubTopicID: "fractions", SubTopicName: "Fractions",
	}
}

func createSession(t *testing.T, s *Store, id string, questionIDs []string) *engine.SessionRecord {
	t.Helper()
	rec, err := s.Sessions().CreateSessionAtomic(context.Background(), engine.CreateSessionParams{
		SessionID:   id,
		StudentID:   "student-1",
		SubTopicID:  "fractions",
		Hierarchy:   testHierarchy(),
		QuestionIDs: questionIDs,
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	return rec
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	sessions := s.Sessions()

	rec := createSession(t, s, "sess-1", []string{"q1", "q2", "q3"})
	if rec.TotalQuestions != 3 || rec.Completed() {
		t.Fatalf("unexpected fresh session: %+v", rec)
	}

	answers := []engine.AnswerRecord{
		{SessionID: "sess-1", QuestionID: "q1", OptionIDs: []string{"q1-a"}, Correct: true, TimeSpentMs: 1000},
		{SessionID: "sess-1", QuestionID: "q2", Text: "wrong", Correct: false, TimeSpentMs: 2000},
		{SessionID: "sess-1", QuestionID: "q3", OptionIDs: []string{"q3-a"}, Correct: true, TimeSpentMs: 500},
	}
	for _, a := range answers {
		if err := sessions.InsertAnswer(ctx, a); err != nil {
			t.Fatalf("insert answer: %v", err)
		}
	}

	res, err := sessions.CompleteSessionAtomic(ctx, "sess-1")
	if err != nil {
		t.Fatalf("complete session: %v", err)
	}
	if res.CorrectCount != 2 || res.TotalQuestions != 3 {
		t.Errorf("unexpected score: %d/%d", res.CorrectCount, res.TotalQuestions)
	}
	if res.XPEarned != 20 || res.CoinsEarned != 9 {
		t.Errorf("unexpected rewards: xp=%d coins=%d", res.XPEarned, res.CoinsEarned)
	}

	got, err := sessions.FetchSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("fetch session: %v", err)
	}
	if !got.Completed() || got.CorrectCount != 2 || got.TimeSpentMs != 3500 {
		t.Errorf("unexpected completed session: %+v", got)
	}
	if got.XPEarned == nil || *got.XPEarned != 20 {
		t.Errorf("unexpected xp: %v", got.XPEarned)
	}

	if _, err := sessions.CompleteSessionAtomic(ctx, "sess-1"); !errors.Is(err, engine.ErrAlreadyCompleted) {
		t.Errorf("expected ErrAlreadyCompleted, got: %v", err)
	}
}

func TestCompleteRecountsLatestAnswerPerQuestion(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	sessions := s.Sessions()
	createSession(t, s, "sess-1", []string{"q1"})

	// Re-answering a question must not double-count; the latest row wins.
	for _, a := range []engine.AnswerRecord{
		{SessionID: "sess-1", QuestionID: "q1", Correct: true},
		{SessionID: "sess-1", QuestionID: "q1", Correct: false},
	} {
		if err := sessions.InsertAnswer(ctx, a); err != nil {
			t.Fatalf("insert answer: %v", err)
		}
	}

	res, err := sessions.CompleteSessionAtomic(ctx, "sess-1")
	if err != nil {
		t.Fatalf("complete session: %v", err)
	}
	if res.CorrectCount != 0 {
		t.Errorf("latest answer should win, got %d correct", res.CorrectCount)
	}
}

func TestFetchSessionDerivesLiveCounts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	sessions := s.Sessions()
	createSession(t, s, "sess-1", []string{"q1", "q2"})

	if err := sessions.InsertAnswer(ctx, engine.AnswerRecord{
		SessionID: "sess-1", QuestionID: "q1", Correct: true, TimeSpentMs: 1200,
	}); err != nil {
		t.Fatalf("insert answer: %v", err)
	}

	got, err := sessions.FetchSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("fetch session: %v", err)
	}
	if got.AnsweredCount != 1 || got.CorrectCount != 1 || got.TimeSpentMs != 1200 {
		t.Errorf("unexpected live counts: %+v", got)
	}
}

func TestFetchSessionNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Sessions().FetchSession(context.Background(), "missing")
	if !errors.Is(err, engine.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestCycleDerivation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	sessions := s.Sessions()

	// First session starts cycle 1.
	createSession(t, s, "sess-1", []string{"q1", "q2"})
	// Fresh questions continue cycle 1.
	createSession(t, s, "sess-2", []string{"q3"})
	// Reusing q1 means the pool rolled over into cycle 2.
	createSession(t, s, "sess-3", []string{"q1", "q4"})

	progress, err := sessions.FetchProgress(ctx, "student-1", "fractions")
	if err != nil {
		t.Fatalf("fetch progress: %v", err)
	}

	cycles := make(map[string][]int)
	for _, p := range progress {
		cycles[p.QuestionID] = append(cycles[p.QuestionID], p.CycleNumber)
	}
	if got := cycles["q2"]; len(got) != 1 || got[0] != 1 {
		t.Errorf("q2 cycles = %v, want [1]", got)
	}
	if got := cycles["q3"]; len(got) != 1 || got[0] != 1 {
		t.Errorf("q3 cycles = %v, want [1]", got)
	}
	if got := cycles["q1"]; len(got) != 2 {
		t.Errorf("q1 should appear in two cycles, got %v", got)
	}
	if got := cycles["q4"]; len(got) != 1 || got[0] != 2 {
		t.Errorf("q4 cycles = %v, want [2]", got)
	}
}

func TestProgressTupleUnique(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	createSession(t, s, "sess-1", []string{"q1"})

	// Cycle derivation relies on the schema rejecting a second row for the
	// same (student, sub-topic, question, cycle) tuple: when two overlapping
	// creates land on the same cycle, the loser must fail instead of
	// recording the question twice.
	_, err := s.Client().QuestionProgress.Create().
		SetStudentID("student-1").
		SetSubTopicID("fractions").
		SetQuestionID("q1").
		SetCycleNumber(1).
		Save(ctx)
	if !ent.IsConstraintError(err) {
		t.Fatalf("duplicate progress insert: err = %v, want constraint error", err)
	}

	n, err := s.Client().QuestionProgress.Query().
		Where(
			questionprogress.StudentID("student-1"),
			questionprogress.SubTopicID("fractions"),
			questionprogress.QuestionID("q1"),
			questionprogress.CycleNumber(1),
		).
		Count(ctx)
	if err != nil {
		t.Fatalf("count progress rows: %v", err)
	}
	if n != 1 {
		t.Fatalf("progress rows = %d, want 1", n)
	}
}

func TestUpdateCurrentIndex(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	sessions := s.Sessions()
	createSession(t, s, "sess-1", []string{"q1", "q2"})

	if err := sessions.UpdateCurrentIndex(ctx, "sess-1", 1); err != nil {
		t.Fatalf("update index: %v", err)
	}
	got, err := sessions.FetchSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("fetch session: %v", err)
	}
	if got.CurrentIndex != 1 {
		t.Errorf("unexpected index: %d", got.CurrentIndex)
	}

	if err := sessions.UpdateCurrentIndex(ctx, "missing", 0); !errors.Is(err, engine.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown session, got: %v", err)
	}

	if _, err := sessions.CompleteSessionAtomic(ctx, "sess-1"); err != nil {
		t.Fatalf("complete session: %v", err)
	}
	if err := sessions.UpdateCurrentIndex(ctx, "sess-1", 0); !errors.Is(err, engine.ErrNotFound) {
		t.Errorf("completed session must not accept index writes, got: %v", err)
	}
}

func TestRecentSessionsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	createSession(t, s, "sess-1", []string{"q1"})
	createSession(t, s, "sess-2", []string{"q2"})

	records, err := s.Sessions().RecentSessions(ctx, "student-1", 10)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(records))
	}
}

func TestSetSessionSummary(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	sessions := s.Sessions()
	createSession(t, s, "sess-1", []string{"q1"})

	if _, err := sessions.CompleteSessionAtomic(ctx, "sess-1"); err != nil {
		t.Fatalf("complete session: %v", err)
	}
	if err := sessions.SetSessionSummary(ctx, "sess-1", "Nice work."); err != nil {
		t.Fatalf("set summary: %v", err)
	}

	got, err := sessions.FetchSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("fetch session: %v", err)
	}
	if got.Summary != "Nice work." {
		t.Errorf("unexpected summary: %q", got.Summary)
	}
}

func TestTierStore(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	tiers := s.Tiers()

	tier, err := tiers.FetchTier(ctx, "student-1")
	if err != nil {
		t.Fatalf("fetch tier: %v", err)
	}
	if tier != entitlement.TierFree {
		t.Errorf("unknown student should be free, got %q", tier)
	}

	if err := tiers.SetTier(ctx, "student-1", entitlement.TierPremium); err != nil {
		t.Fatalf("set tier: %v", err)
	}
	if err := tiers.SetTier(ctx, "student-1", entitlement.TierPlus); err != nil {
		t.Fatalf("update tier: %v", err)
	}
	tier, err = tiers.FetchTier(ctx, "student-1")
	if err != nil {
		t.Fatalf("fetch tier: %v", err)
	}
	if tier != entitlement.TierPlus {
		t.Errorf("expected plus after update, got %q", tier)
	}
}

func TestCountCompletedSessionsToday(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	createSession(t, s, "sess-1", []string{"q1"})
	createSession(t, s, "sess-2", []string{"q2"})

	n, err := s.Tiers().CountCompletedSessionsToday(ctx, "student-1")
	if err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if n != 0 {
		t.Errorf("in-progress sessions must not count, got %d", n)
	}

	if _, err := s.Sessions().CompleteSessionAtomic(ctx, "sess-1"); err != nil {
		t.Fatalf("complete session: %v", err)
	}
	n, err = s.Tiers().CountCompletedSessionsToday(ctx, "student-1")
	if err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 completed today, got %d", n)
	}
}

func TestCurriculumRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	tree := &curriculum.Tree{
		GradeLevels: []curriculum.GradeLevel{{
			ID: "g4", Name: "Grade 4",
			Subjects: []curriculum.Subject{{
				ID: "math", Name: "Math",
				Topics: []curriculum.Topic{{
					ID: "numbers", Name: "Numbers",
					SubTopics: []curriculum.SubTopic{
						{ID: "fractions", Name: "Fractions"},
						{ID: "decimals", Name: "Decimals"},
					},
				}},
			}},
		}},
	}
	if err := s.Curriculum().ReplaceCatalog(ctx, tree); err != nil {
		t.Fatalf("replace catalog: %v", err)
	}

	got, err := s.Curriculum().FetchHierarchy(ctx)
	if err != nil {
		t.Fatalf("fetch hierarchy: %v", err)
	}
	if len(got.GradeLevels) != 1 {
		t.Fatalf("expected 1 grade, got %d", len(got.GradeLevels))
	}
	sts := got.GradeLevels[0].Subjects[0].Topics[0].SubTopics
	if len(sts) != 2 || sts[0].ID != "fractions" || sts[1].ID != "decimals" {
		t.Errorf("unexpected sub-topics: %+v", sts)
	}
}

func TestQuestionPoolReplace(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	questions := s.Questions()

	pool := []question.Question{
		{
			ID: "q1", SubTopicID: "fractions", Type: question.TypeSingleChoice,
			Prompt: "1/2 + 1/4 = ?", Explanation: "Common denominators.",
			Options: []question.Option{
				{ID: "q1-a", Text: "3/4", Correct: true},
				{ID: "q1-b", Text: "2/6"},
			},
		},
		{
			ID: "q2", SubTopicID: "fractions", Type: question.TypeShortAnswer,
			Prompt: "Half of 10?", CanonicalAnswer: "5",
		},
	}
	if err := questions.Replace(ctx, pool); err != nil {
		t.Fatalf("replace questions: %v", err)
	}

	got, err := questions.PoolForSubTopic(ctx, "fractions")
	if err != nil {
		t.Fatalf("fetch pool: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(got))
	}
	if got[0].ID != "q1" || len(got[0].Options) != 2 || !got[0].Options[0].Correct {
		t.Errorf("unexpected question: %+v", got[0])
	}
	if got[1].Type != question.TypeShortAnswer || got[1].CanonicalAnswer != "5" {
		t.Errorf("unexpected short-answer question: %+v", got[1])
	}

	// Reseeding the sub-topic replaces its pool outright.
	if err := questions.Replace(ctx, pool[:1]); err != nil {
		t.Fatalf("reseed questions: %v", err)
	}
	got, err = questions.PoolForSubTopic(ctx, "fractions")
	if err != nil {
		t.Fatalf("fetch pool: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 question after reseed, got %d", len(got))
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	log := s.LLMLog()

	entries := []llm.RequestLogEntry{
		{Provider: "anthropic", Model: "m", Purpose: "session-summary", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "m", Purpose: "session-summary", Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range entries {
		if err := log.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append llm request: %v", err)
		}
	}

	totals, err := log.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(totals) != 1 {
		t.Fatalf("expected 1 purpose, got %d", len(totals))
	}
	got := totals[0]
	if got.Requests != 2 || got.Failures != 1 || got.InputTokens != 100 || got.OutputTokens != 50 {
		t.Errorf("unexpected totals: %+v", got)
	}
}
