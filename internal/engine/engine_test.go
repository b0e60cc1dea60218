package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/ananya/practiq/internal/curriculum"
	"github.com/ananya/practiq/internal/entitlement"
	"github.com/ananya/practiq/internal/question"
	"github.com/ananya/practiq/internal/summary"
)

const testStudent = "student-1"

// fakeStorage is an in-memory Storage with per-operation error injection.
type fakeStorage struct {
	sessions map[string]*SessionRecord
	answers  map[string][]AnswerRecord
	progress []ProgressRecord

	createErr   error
	insertErr   error
	updateErr   error
	completeErr error
	fetchErr    error
	recentErr   error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		sessions: make(map[string]*SessionRecord),
		answers:  make(map[string][]AnswerRecord),
	}
}

func (s *fakeStorage) CreateSessionAtomic(_ context.Context, p CreateSessionParams) (*SessionRecord, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	rec := &SessionRecord{
		ID:             p.SessionID,
		StudentID:      p.StudentID,
		SubTopicID:     p.SubTopicID,
		Hierarchy:      p.Hierarchy,
		QuestionIDs:    p.QuestionIDs,
		TotalQuestions: len(p.QuestionIDs),
		CreatedAt:      time.Now(),
	}
	s.sessions[rec.ID] = rec
	for _, id := range p.QuestionIDs {
		s.progress = append(s.progress, ProgressRecord{QuestionID: id, CycleNumber: 1})
	}
	out := *rec
	return &out, nil
}

func (s *fakeStorage) InsertAnswer(_ context.Context, a AnswerRecord) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.answers[a.SessionID] = append(s.answers[a.SessionID], a)
	return nil
}

func (s *fakeStorage) UpdateCurrentIndex(_ context.Context, sessionID string, index int) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	if rec, ok := s.sessions[sessionID]; ok {
		rec.CurrentIndex = index
	}
	return nil
}

func (s *fakeStorage) CompleteSessionAtomic(_ context.Context, sessionID string) (*CompletionResult, error) {
	if s.completeErr != nil {
		return nil, s.completeErr
	}
	rec, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	if rec.CompletedAt != nil {
		return nil, ErrAlreadyCompleted
	}

	correct := 0
	for _, a := range s.answers[sessionID] {
		if a.Correct {
			correct++
		}
	}
	now := time.Now()
	rec.CompletedAt = &now
	rec.CorrectCount = correct

	return &CompletionResult{
		XPEarned:       correct * 10,
		CoinsEarned:    correct*2 + 5,
		CorrectCount:   correct,
		TotalQuestions: rec.TotalQuestions,
	}, nil
}

func (s *fakeStorage) SetSessionSummary(_ context.Context, sessionID, text string) error {
	if rec, ok := s.sessions[sessionID]; ok {
		rec.Summary = text
	}
	return nil
}

func (s *fakeStorage) FetchSession(_ context.Context, sessionID string) (*SessionRecord, error) {
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	rec, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	out := *rec
	return &out, nil
}

func (s *fakeStorage) FetchAnswers(_ context.Context, sessionID string) ([]AnswerRecord, error) {
	return s.answers[sessionID], nil
}

func (s *fakeStorage) FetchProgress(_ context.Context, _, _ string) ([]ProgressRecord, error) {
	return s.progress, nil
}

func (s *fakeStorage) RecentSessions(_ context.Context, _ string, limit int) ([]SessionRecord, error) {
	if s.recentErr != nil {
		return nil, s.recentErr
	}
	var out []SessionRecord
	for _, rec := range s.sessions {
		if rec.CompletedAt != nil {
			out = append(out, *rec)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeQuestions struct {
	pools   map[string][]question.Question
	poolErr error
}

func (f *fakeQuestions) PoolForSubTopic(_ context.Context, subTopicID string) ([]question.Question, error) {
	if f.poolErr != nil {
		return nil, f.poolErr
	}
	return f.pools[subTopicID], nil
}

type fakeCatalog struct {
	tree    *curriculum.Tree
	next    *curriculum.Tree // served after the first fetch when set
	fetches int
}

func (f *fakeCatalog) FetchHierarchy(_ context.Context) (*curriculum.Tree, error) {
	f.fetches++
	if f.next != nil && f.fetches > 1 {
		return f.next, nil
	}
	return f.tree, nil
}

type fakeTierProvider struct {
	tier       entitlement.Tier
	countToday int
	countErr   error
	countCalls int
}

func (f *fakeTierProvider) FetchTier(_ context.Context, _ string) (entitlement.Tier, error) {
	return f.tier, nil
}

func (f *fakeTierProvider) CountCompletedSessionsToday(_ context.Context, _ string) (int, error) {
	f.countCalls++
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.countToday, nil
}

type fakeSummarizer struct {
	inputs chan summary.Input
}

func (f *fakeSummarizer) Request(_ context.Context, in summary.Input) {
	f.inputs <- in
}

func testTree() *curriculum.Tree {
	return &curriculum.Tree{
		GradeLevels: []curriculum.GradeLevel{{
			ID: "g4", Name: "Grade 4",
			Subjects: []curriculum.Subject{{
				ID: "math", Name: "Math",
				Topics: []curriculum.Topic{{
					ID: "numbers", Name: "Numbers",
					SubTopics: []curriculum.SubTopic{
						{ID: "fractions", Name: "Fractions"},
					},
				}},
			}},
		}},
	}
}

func choiceQuestion(id string) question.Question {
	return question.Question{
		ID:          id,
		SubTopicID:  "fractions",
		Type:        question.TypeSingleChoice,
		Prompt:      "prompt " + id,
		Explanation: "explanation " + id,
		Options: []question.Option{
			{ID: id + "-a", Text: "right", Correct: true},
			{ID: id + "-b", Text: "wrong"},
		},
	}
}

func testPool(n int) []question.Question {
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = choiceQuestion(fmt.Sprintf("q%d", i+1))
	}
	return qs
}

type fixture struct {
	engine  *Engine
	storage *fakeStorage
	tiers   *fakeTierProvider
}

func newFixture(t *testing.T, tier entitlement.Tier, poolSize int, opts ...Option) *fixture {
	t.Helper()
	storage := newFakeStorage()
	tiers := &fakeTierProvider{tier: tier}
	gate := entitlement.NewGate(tiers)
	index := curriculum.NewIndex(&fakeCatalog{tree: testTree()})
	questions := &fakeQuestions{pools: map[string][]question.Question{
		"fractions": testPool(poolSize),
	}}

	opts = append([]Option{WithRand(rand.New(rand.NewPCG(7, 11)))}, opts...)
	eng := New(testStudent, storage, questions, index, gate, opts...)
	return &fixture{engine: eng, storage: storage, tiers: tiers}
}

func mustStart(t *testing.T, f *fixture, requested int) *ActiveView {
	t.Helper()
	view, err := f.engine.Start(context.Background(), "fractions", requested)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	return view
}

func answerCurrent(t *testing.T, f *fixture, correct bool) *AnswerResult {
	t.Helper()
	view, ok := f.engine.Current(context.Background())
	if !ok {
		t.Fatal("no active session")
	}
	q := view.CurrentQuestion
	suffix := "-a"
	if !correct {
		suffix = "-b"
	}
	res, err := f.engine.SubmitAnswer(context.Background(), question.Selection{OptionIDs: []string{q.ID + suffix}}, 1500)
	if err != nil {
		t.Fatalf("submit answer: %v", err)
	}
	return res
}

func TestStartCreatesSession(t *testing.T) {
	f := newFixture(t, entitlement.TierFree, 10)

	view := mustStart(t, f, 5)

	if got := len(view.Questions); got != 5 {
		t.Fatalf("expected 5 questions, got %d", got)
	}
	if view.Session.TotalQuestions != 5 {
		t.Errorf("unexpected total: %d", view.Session.TotalQuestions)
	}
	if view.CurrentQuestion == nil || view.CurrentQuestion.ID != view.Questions[0].ID {
		t.Error("current question should be the first question")
	}
	if _, ok := f.storage.sessions[view.Session.ID]; !ok {
		t.Error("session not persisted")
	}
	if len(f.storage.progress) != 5 {
		t.Errorf("expected 5 progress rows, got %d", len(f.storage.progress))
	}
}

func TestStartCapsAtPoolSize(t *testing.T) {
	f := newFixture(t, entitlement.TierFree, 3)

	view := mustStart(t, f, 10)
	if got := len(view.Questions); got != 3 {
		t.Fatalf("expected pool-sized session of 3, got %d", got)
	}
}

func TestStartRejectsConcurrentSession(t *testing.T) {
	f := newFixture(t, entitlement.TierFree, 10)
	mustStart(t, f, 5)

	_, err := f.engine.Start(context.Background(), "fractions", 5)
	if !errors.Is(err, ErrSessionActive) {
		t.Fatalf("expected ErrSessionActive, got: %v", err)
	}
}

func TestStartRejectsNonPositiveCount(t *testing.T) {
	f := newFixture(t, entitlement.TierFree, 10)

	_, err := f.engine.Start(context.Background(), "fractions", 0)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got: %v", err)
	}
}

func TestStartEnforcesDailyLimit(t *testing.T) {
	f := newFixture(t, entitlement.TierFree, 10)
	f.tiers.countToday = 3 // free tier allows 3 per day

	_, err := f.engine.Start(context.Background(), "fractions", 5)
	var lerr *LimitError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected LimitError, got: %v", err)
	}
	if lerr.SessionLimit != 3 || lerr.SessionsToday != 3 || lerr.RemainingSessions != 0 {
		t.Errorf("unexpected limit numbers: %+v", lerr)
	}
}

func TestStartFailsOpenOnCountError(t *testing.T) {
	f := newFixture(t, entitlement.TierFree, 10)
	f.tiers.countErr = errors.New("billing service down")

	if _, err := f.engine.Start(context.Background(), "fractions", 5); err != nil {
		t.Fatalf("expected fail-open start, got: %v", err)
	}
}

func TestStartUnknownSubTopic(t *testing.T) {
	f := newFixture(t, entitlement.TierFree, 10)

	_, err := f.engine.Start(context.Background(), "algebra", 5)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestStartReloadsCatalogOnResolveMiss(t *testing.T) {
	grown := testTree()
	topics := grown.GradeLevels[0].Subjects[0].Topics
	topics[0].SubTopics = append(topics[0].SubTopics, curriculum.SubTopic{ID: "decimals", Name: "Decimals"})
	catalog := &fakeCatalog{tree: testTree(), next: grown}

	storage := newFakeStorage()
	gate := entitlement.NewGate(&fakeTierProvider{tier: entitlement.TierFree})
	questions := &fakeQuestions{pools: map[string][]question.Question{
		"decimals": testPool(3),
	}}
	eng := New(testStudent, storage, questions, curriculum.NewIndex(catalog), gate,
		WithRand(rand.New(rand.NewPCG(7, 11))))

	// The sub-topic was seeded after the index loaded; a miss must refetch
	// the catalog before giving up.
	view, err := eng.Start(context.Background(), "decimals", 3)
	if err != nil {
		t.Fatalf("start after catalog growth: %v", err)
	}
	if view.Session.Hierarchy.SubTopicName != "Decimals" {
		t.Errorf("sub-topic name = %q, want Decimals", view.Session.Hierarchy.SubTopicName)
	}
	if catalog.fetches != 2 {
		t.Errorf("catalog fetches = %d, want 2", catalog.fetches)
	}
}

func TestStartEmptyPool(t *testing.T) {
	f := newFixture(t, entitlement.TierFree, 0)

	_, err := f.engine.Start(context.Background(), "fractions", 5)
	if !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got: %v", err)
	}
}

func TestStartStorageFailureLeavesEngineIdle(t *testing.T) {
	f := newFixture(t, entitlement.TierFree, 10)
	f.storage.createErr = errors.New("disk full")

	_, err := f.engine.Start(context.Background(), "fractions", 5)
	var rerr *RemoteError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected RemoteError, got: %v", err)
	}
	if _, ok := f.engine.Current(context.Background()); ok {
		t.Error("engine should stay idle after a failed start")
	}
}

func TestSubmitAnswerRevealsCorrectness(t *testing.T) {
	f := newFixture(t, entitlement.TierFree, 10)
	view := mustStart(t, f, 3)
	first := view.Questions[0]

	res := answerCurrent(t, f, true)
	if !res.Correct {
		t.Error("expected correct result")
	}
	if res.Explanation != first.Explanation {
		t.Errorf("unexpected explanation: %q", res.Explanation)
	}
	if len(res.CorrectOptionIDs) != 1 || res.CorrectOptionIDs[0] != first.ID+"-a" {
		t.Errorf("unexpected correct options: %v", res.CorrectOptionIDs)
	}

	cur, _ := f.engine.Current(context.Background())
	if cur.Session.AnsweredCount != 1 || cur.Session.CorrectCount != 1 {
		t.Errorf("unexpected counters: answered=%d correct=%d", cur.Session.AnsweredCount, cur.Session.CorrectCount)
	}
	if cur.Session.TimeSpentMs != 1500 {
		t.Errorf("unexpected time spent: %d", cur.Session.TimeSpentMs)
	}
}

func TestSubmitAnswerRollsBackOnStorageFailure(t *testing.T) {
	f := newFixture(t, entitlement.TierFree, 10)
	mustStart(t, f, 3)
	f.storage.insertErr = errors.New("write failed")

	cur, _ := f.engine.Current(context.Background())
	q := cur.CurrentQuestion
	_, err := f.engine.SubmitAnswer(context.Background(), question.Selection{OptionIDs: []string{q.ID + "-a"}}, 900)
	var rerr *RemoteError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected RemoteError, got: %v", err)
	}

	cur, _ = f.engine.Current(context.Background())
	if cur.Session.AnsweredCount != 0 || cur.Session.CorrectCount != 0 || cur.Session.TimeSpentMs != 0 {
		t.Errorf("counters not rolled back: %+v", cur.Session)
	}
}

func TestSubmitAnswerRejectsWrongShape(t *testing.T) {
	f := newFixture(t, entitlement.TierFree, 10)
	mustStart(t, f, 3)

	_, err := f.engine.SubmitAnswer(context.Background(), question.Selection{Text: "three quarters"}, 0)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for text on a choice question, got: %v", err)
	}
}

func TestSubmitAnswerRequiresActiveSession(t *testing.T) {
	f := newFixture(t, entitlement.TierFree, 10)

	_, err := f.engine.SubmitAnswer(context.Background(), question.Selection{}, 0)
	if !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got: %v", err)
	}
}

func TestNavigationBounds(t *testing.T) {
	f := newFixture(t, entitlement.TierFree, 10)
	mustStart(t, f, 3)
	ctx := context.Background()

	if f.engine.PreviousQuestion(ctx) {
		t.Error("previous at first question should be refused")
	}
	if !f.engine.NextQuestion(ctx) || !f.engine.NextQuestion(ctx) {
		t.Fatal("forward navigation failed")
	}
	if f.engine.NextQuestion(ctx) {
		t.Error("next at last question should be refused")
	}
	if !f.engine.GoToQuestion(ctx, 0) {
		t.Error("jump to first question should succeed")
	}
	if f.engine.GoToQuestion(ctx, 3) {
		t.Error("jump past the end should be refused")
	}

	cur, _ := f.engine.Current(ctx)
	if cur.Session.CurrentIndex != 0 {
		t.Errorf("unexpected index: %d", cur.Session.CurrentIndex)
	}
}

func TestNavigationSurvivesIndexWriteFailure(t *testing.T) {
	f := newFixture(t, entitlement.TierFree, 10)
	mustStart(t, f, 3)
	f.storage.updateErr = errors.New("timeout")

	if !f.engine.NextQuestion(context.Background()) {
		t.Fatal("navigation should succeed despite the failed index write")
	}
	cur, _ := f.engine.Current(context.Background())
	if cur.Session.CurrentIndex != 1 {
		t.Errorf("unexpected index: %d", cur.Session.CurrentIndex)
	}
}

func TestCompleteSessionComputesRewards(t *testing.T) {
	f := newFixture(t, entitlement.TierFree, 10)
	mustStart(t, f, 3)
	ctx := context.Background()

	answerCurrent(t, f, true)
	f.engine.NextQuestion(ctx)
	answerCurrent(t, f, false)
	f.engine.NextQuestion(ctx)
	answerCurrent(t, f, true)

	res, err := f.engine.CompleteSession(ctx)
	if err != nil {
		t.Fatalf("complete session: %v", err)
	}
	if res.CorrectCount != 2 || res.TotalQuestions != 3 {
		t.Errorf("unexpected score: %d/%d", res.CorrectCount, res.TotalQuestions)
	}
	if res.XPEarned != 20 || res.CoinsEarned != 9 {
		t.Errorf("unexpected rewards: xp=%d coins=%d", res.XPEarned, res.CoinsEarned)
	}
	if _, ok := f.engine.Current(ctx); ok {
		t.Error("engine should be idle after completion")
	}
	if _, err := f.engine.CompleteSession(ctx); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("second complete should report no active session, got: %v", err)
	}
}

func TestCompleteInvalidatesLimitCache(t *testing.T) {
	f := newFixture(t, entitlement.TierFree, 10)
	mustStart(t, f, 3)
	ctx := context.Background()

	before := f.tiers.countCalls
	if _, err := f.engine.CompleteSession(ctx); err != nil {
		t.Fatalf("complete session: %v", err)
	}
	f.engine.EndSession()
	mustStart(t, f, 3)
	if f.tiers.countCalls <= before {
		t.Error("expected a fresh session count after completion")
	}
}

func TestCompleteRequestsSummaryForPremium(t *testing.T) {
	sum := &fakeSummarizer{inputs: make(chan summary.Input, 1)}
	f := newFixture(t, entitlement.TierPremium, 10, WithSummarizer(sum))
	mustStart(t, f, 2)
	ctx := context.Background()

	answerCurrent(t, f, false)
	f.engine.NextQuestion(ctx)
	answerCurrent(t, f, true)

	if _, err := f.engine.CompleteSession(ctx); err != nil {
		t.Fatalf("complete session: %v", err)
	}

	select {
	case in := <-sum.inputs:
		if in.SubTopic != "Fractions" || in.GradeLevel != "Grade 4" {
			t.Errorf("unexpected hierarchy labels: %+v", in)
		}
		if in.CorrectCount != 1 || in.TotalQuestions != 2 {
			t.Errorf("unexpected score: %d/%d", in.CorrectCount, in.TotalQuestions)
		}
		if len(in.Missed) != 1 {
			t.Fatalf("expected 1 missed question, got %d", len(in.Missed))
		}
		if in.Missed[0].Submitted != "wrong" || in.Missed[0].Expected != "right" {
			t.Errorf("unexpected missed detail: %+v", in.Missed[0])
		}
	case <-time.After(time.Second):
		t.Fatal("summary was not requested")
	}
}

func TestCompleteSkipsSummaryForFreeTier(t *testing.T) {
	sum := &fakeSummarizer{inputs: make(chan summary.Input, 1)}
	f := newFixture(t, entitlement.TierFree, 10, WithSummarizer(sum))
	mustStart(t, f, 2)

	if _, err := f.engine.CompleteSession(context.Background()); err != nil {
		t.Fatalf("complete session: %v", err)
	}
	select {
	case <-sum.inputs:
		t.Fatal("free tier should not get AI summaries")
	default:
	}
}

func TestResumeRestoresAnswers(t *testing.T) {
	f := newFixture(t, entitlement.TierFree, 10)
	view := mustStart(t, f, 3)
	sessionID := view.Session.ID
	ctx := context.Background()

	answerCurrent(t, f, true)
	f.engine.NextQuestion(ctx)
	f.engine.EndSession()

	resumed, err := f.engine.ResumeSession(ctx, sessionID)
	if err != nil {
		t.Fatalf("resume session: %v", err)
	}
	if resumed.Session.ID != sessionID {
		t.Errorf("unexpected session: %q", resumed.Session.ID)
	}
	if resumed.Session.CurrentIndex != 1 {
		t.Errorf("unexpected resumed index: %d", resumed.Session.CurrentIndex)
	}
	if len(resumed.Answers) != 1 {
		t.Errorf("expected 1 restored answer, got %d", len(resumed.Answers))
	}
}

func TestResumeRejectsCompletedSession(t *testing.T) {
	f := newFixture(t, entitlement.TierFree, 10)
	view := mustStart(t, f, 2)
	ctx := context.Background()

	if _, err := f.engine.CompleteSession(ctx); err != nil {
		t.Fatalf("complete session: %v", err)
	}
	_, err := f.engine.ResumeSession(ctx, view.Session.ID)
	if !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("expected ErrAlreadyCompleted, got: %v", err)
	}
	if _, ok := f.engine.Current(ctx); ok {
		t.Error("rejected resume must not leave a session active")
	}
}

func TestResumeRejectsOtherStudentsSession(t *testing.T) {
	f := newFixture(t, entitlement.TierFree, 10)
	view := mustStart(t, f, 2)
	f.engine.EndSession()
	f.storage.sessions[view.Session.ID].StudentID = "someone-else"

	_, err := f.engine.ResumeSession(context.Background(), view.Session.ID)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got: %v", err)
	}
}

func TestResumeUnknownSession(t *testing.T) {
	f := newFixture(t, entitlement.TierFree, 10)

	_, err := f.engine.ResumeSession(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestEndSessionKeepsStorageRow(t *testing.T) {
	f := newFixture(t, entitlement.TierFree, 10)
	view := mustStart(t, f, 3)

	f.engine.EndSession()
	if _, ok := f.engine.Current(context.Background()); ok {
		t.Fatal("engine should be idle after end")
	}
	if _, ok := f.storage.sessions[view.Session.ID]; !ok {
		t.Error("abandoning must not delete the stored session")
	}
}

func TestHistoryServesCacheWhenStorageFails(t *testing.T) {
	f := newFixture(t, entitlement.TierFree, 10)
	mustStart(t, f, 2)
	ctx := context.Background()

	if _, err := f.engine.CompleteSession(ctx); err != nil {
		t.Fatalf("complete session: %v", err)
	}

	f.storage.recentErr = errors.New("db locked")
	records, err := f.engine.History(ctx, 10)
	if err != nil {
		t.Fatalf("history should fall back to cache: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 cached session, got %d", len(records))
	}
	if !records[0].Completed() {
		t.Error("cached session should be completed")
	}
}
