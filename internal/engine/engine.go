// Package engine drives the practice session lifecycle: start, answer,
// navigate, complete, resume, abandon. One Engine instance holds at most one
// active session for one student; the storage collaborator stays the source
// of truth after a crash or reload.
package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ananya/practiq/internal/curriculum"
	"github.com/ananya/practiq/internal/cycler"
	"github.com/ananya/practiq/internal/entitlement"
	"github.com/ananya/practiq/internal/question"
	"github.com/ananya/practiq/internal/summary"
)

// DefaultHistorySize bounds the in-memory history cache.
const DefaultHistorySize = 20

// Summarizer requests an AI session recap. Implementations are asynchronous;
// a failed request never surfaces here.
type Summarizer interface {
	Request(ctx context.Context, in summary.Input)
}

type activeSession struct {
	record    SessionRecord
	questions []question.Question // aligned with record.QuestionIDs
	answers   map[string]AnswerRecord
}

// Engine is a per-student session handle. Not a singleton: callers hold one
// Engine per student so multiple students can be exercised in isolation.
type Engine struct {
	studentID  string
	storage    Storage
	questions  question.Provider
	curriculum *curriculum.Index
	gate       *entitlement.Gate
	summaries  Summarizer // nil disables AI summaries
	rng        *rand.Rand
	histSize   int

	mu      sync.Mutex
	current *activeSession
	history []SessionRecord
}

// Option customizes an Engine.
type Option func(*Engine)

// WithSummarizer enables AI summary generation after completion.
func WithSummarizer(s Summarizer) Option {
	return func(e *Engine) { e.summaries = s }
}

// WithRand overrides the shuffle source. Intended for tests.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithHistorySize overrides the in-memory history bound.
func WithHistorySize(n int) Option {
	return func(e *Engine) { e.histSize = n }
}

// New creates an Engine for one student.
func New(studentID string, storage Storage, questions question.Provider, index *curriculum.Index, gate *entitlement.Gate, opts ...Option) *Engine {
	e := &Engine{
		studentID:  studentID,
		storage:    storage,
		questions:  questions,
		curriculum: index,
		gate:       gate,
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		histSize:   DefaultHistorySize,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ActiveView is a snapshot of the current session for callers. Mutating it
// does not affect engine state.
type ActiveView struct {
	Session         SessionRecord
	Questions       []question.Question
	CurrentQuestion *question.Question
	Answers         map[string]AnswerRecord
	Limit           entitlement.Limit
}

// Start begins a new session over a sub-topic. It requires no active session,
// a passing entitlement check, a resolvable sub-topic, and a non-empty pool.
// The session row, question order, and progress rows are persisted in one
// transaction before the engine transitions to the active state.
func (e *Engine) Start(ctx context.Context, subTopicID string, requested int) (*ActiveView, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current != nil {
		return nil, ErrSessionActive
	}
	if requested <= 0 {
		return nil, &ValidationError{Field: "count", Reason: "must be positive"}
	}

	lim := e.gate.CheckSessionLimit(ctx, e.studentID)
	if !lim.CanStart {
		return nil, &LimitError{
			SessionLimit:      lim.SessionLimit,
			SessionsToday:     lim.SessionsToday,
			RemainingSessions: lim.Remaining,
		}
	}

	if err := e.curriculum.EnsureLoaded(ctx); err != nil {
		return nil, remote("load curriculum", err)
	}
	hier, ok := e.curriculum.Resolve(subTopicID)
	if !ok {
		// The catalog may have been re-seeded since the index was built.
		// Refresh once before treating the sub-topic as unknown.
		if err := e.curriculum.Reload(ctx); err != nil {
			return nil, remote("load curriculum", err)
		}
		hier, ok = e.curriculum.Resolve(subTopicID)
	}
	if !ok {
		return nil, fmt.Errorf("sub-topic %q: %w", subTopicID, ErrNotFound)
	}

	pool, err := e.questions.PoolForSubTopic(ctx, subTopicID)
	if err != nil {
		return nil, remote("fetch question pool", err)
	}

	progress, err := e.storage.FetchProgress(ctx, e.studentID, subTopicID)
	if err != nil {
		return nil, remote("fetch progress", err)
	}
	maxCycle, answeredInCycle := progressState(progress)

	batch, err := cycler.Select(pool, answeredInCycle, requested, maxCycle, e.rng)
	if err != nil {
		if errors.Is(err, cycler.ErrEmptyPool) {
			return nil, ErrEmptyPool
		}
		return nil, err
	}

	params := CreateSessionParams{
		SessionID:   uuid.NewString(),
		StudentID:   e.studentID,
		SubTopicID:  subTopicID,
		Hierarchy:   hier,
		QuestionIDs: questionIDs(batch.Questions),
	}
	rec, err := e.storage.CreateSessionAtomic(ctx, params)
	if err != nil {
		return nil, remote("create session", err)
	}
	e.gate.InvalidateLimit(e.studentID)

	e.current = &activeSession{
		record:    *rec,
		questions: batch.Questions,
		answers:   make(map[string]AnswerRecord),
	}
	return e.viewLocked(ctx), nil
}

// AnswerResult is the immediate correctness reveal after a submission.
type AnswerResult struct {
	Correct          bool
	Explanation      string
	CorrectOptionIDs []string
	CanonicalAnswer  string
}

// SubmitAnswer evaluates the selection against the current question, updates
// the in-memory counters optimistically, and persists the answer. If the
// write fails the optimistic update is rolled back and the error surfaced;
// the counters are never left corrupted.
func (e *Engine) SubmitAnswer(ctx context.Context, sel question.Selection, timeSpentMs int64) (*AnswerResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cur := e.current
	if cur == nil {
		return nil, ErrNoActiveSession
	}
	q := cur.questions[cur.record.CurrentIndex]

	if err := validateSelection(q, sel); err != nil {
		return nil, err
	}

	correct := question.Evaluate(q, sel)

	// Optimistic update so the UI gets its reveal before the write lands.
	cur.record.AnsweredCount++
	if correct {
		cur.record.CorrectCount++
	}
	cur.record.TimeSpentMs += timeSpentMs

	answer := AnswerRecord{
		SessionID:   cur.record.ID,
		QuestionID:  q.ID,
		OptionIDs:   sel.OptionIDs,
		Text:        sel.Text,
		Correct:     correct,
		TimeSpentMs: timeSpentMs,
		CreatedAt:   time.Now(),
	}
	if err := e.storage.InsertAnswer(ctx, answer); err != nil {
		// Roll back the optimistic increment.
		cur.record.AnsweredCount--
		if correct {
			cur.record.CorrectCount--
		}
		cur.record.TimeSpentMs -= timeSpentMs
		return nil, remote("insert answer", err)
	}
	cur.answers[q.ID] = answer

	return &AnswerResult{
		Correct:          correct,
		Explanation:      q.Explanation,
		CorrectOptionIDs: q.CorrectOptionIDs(),
		CanonicalAnswer:  q.CanonicalAnswer,
	}, nil
}

// NextQuestion advances to the next question. Returns false at the last
// question instead of erroring.
func (e *Engine) NextQuestion(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == nil {
		return false
	}
	return e.moveLocked(ctx, e.current.record.CurrentIndex+1)
}

// PreviousQuestion moves back one question. Returns false at the first
// question.
func (e *Engine) PreviousQuestion(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == nil {
		return false
	}
	return e.moveLocked(ctx, e.current.record.CurrentIndex-1)
}

// GoToQuestion jumps to index i. Returns false when i is out of bounds.
func (e *Engine) GoToQuestion(ctx context.Context, i int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == nil {
		return false
	}
	return e.moveLocked(ctx, i)
}

func (e *Engine) moveLocked(ctx context.Context, i int) bool {
	cur := e.current
	if i < 0 || i >= cur.record.TotalQuestions {
		return false
	}
	cur.record.CurrentIndex = i

	// The index write exists so a reload resumes at the same point; losing
	// it costs the student a little navigation, not data.
	if err := e.storage.UpdateCurrentIndex(ctx, cur.record.ID, i); err != nil {
		fmt.Fprintf(os.Stderr, "warning: persist question index for %s: %v\n", cur.record.ID, err)
	}
	return true
}

// CompleteSession finalizes the active session through the storage
// collaborator's atomic complete, which recounts correct answers and computes
// rewards server-side. On success the limit cache is invalidated and, when
// the tier permits, an AI summary is requested fire-and-forget.
func (e *Engine) CompleteSession(ctx context.Context) (*CompletionResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cur := e.current
	if cur == nil {
		return nil, ErrNoActiveSession
	}

	res, err := e.storage.CompleteSessionAtomic(ctx, cur.record.ID)
	if err != nil {
		if errors.Is(err, ErrAlreadyCompleted) {
			return nil, ErrAlreadyCompleted
		}
		return nil, remote("complete session", err)
	}

	now := time.Now()
	cur.record.CompletedAt = &now
	cur.record.CorrectCount = res.CorrectCount
	cur.record.XPEarned = &res.XPEarned
	cur.record.CoinsEarned = &res.CoinsEarned

	e.pushHistoryLocked(cur.record)
	e.gate.InvalidateLimit(e.studentID)

	if e.summaries != nil && e.gate.Status(ctx, e.studentID).AISummary {
		// Fire and forget; the request must survive the caller's context.
		e.summaries.Request(context.WithoutCancel(ctx), buildSummaryInput(cur, res))
	}

	e.current = nil
	return res, nil
}

// ResumeSession reconstructs the active state of a previously unfinished
// session from storage. A completed session is rejected with
// ErrAlreadyCompleted and in-memory state is left untouched.
func (e *Engine) ResumeSession(ctx context.Context, sessionID string) (*ActiveView, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current != nil {
		return nil, ErrSessionActive
	}

	rec, err := e.storage.FetchSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, remote("fetch session", err)
	}
	if rec.StudentID != e.studentID {
		return nil, ErrUnauthorized
	}
	if rec.Completed() {
		return nil, ErrAlreadyCompleted
	}

	answers, err := e.storage.FetchAnswers(ctx, sessionID)
	if err != nil {
		return nil, remote("fetch answers", err)
	}

	pool, err := e.questions.PoolForSubTopic(ctx, rec.SubTopicID)
	if err != nil {
		return nil, remote("fetch question pool", err)
	}
	byID := make(map[string]question.Question, len(pool))
	for _, q := range pool {
		byID[q.ID] = q
	}

	qs := make([]question.Question, len(rec.QuestionIDs))
	for i, id := range rec.QuestionIDs {
		if q, ok := byID[id]; ok {
			qs[i] = q
		} else {
			// Question deleted from the pool since creation; keep the slot
			// so indices and counts stay stable.
			qs[i] = question.Question{ID: id}
		}
	}

	latest := make(map[string]AnswerRecord, len(answers))
	for _, a := range answers {
		if a.QuestionID != "" {
			latest[a.QuestionID] = a
		}
	}

	e.current = &activeSession{record: *rec, questions: qs, answers: latest}
	return e.viewLocked(ctx), nil
}

// EndSession discards the in-memory active state without touching storage.
// The session stays resumable.
func (e *Engine) EndSession() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.current = nil
}

// Current returns a snapshot of the active session, or false when idle.
func (e *Engine) Current(ctx context.Context) (*ActiveView, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == nil {
		return nil, false
	}
	return e.viewLocked(ctx), true
}

// History returns the student's recent sessions, newest first. Storage is
// the source of truth; the bounded in-memory cache only serves reads when
// storage is unavailable.
func (e *Engine) History(ctx context.Context, limit int) ([]SessionRecord, error) {
	if limit <= 0 || limit > e.histSize {
		limit = e.histSize
	}

	records, err := e.storage.RecentSessions(ctx, e.studentID, limit)
	if err != nil {
		e.mu.Lock()
		cached := make([]SessionRecord, len(e.history))
		copy(cached, e.history)
		e.mu.Unlock()
		fmt.Fprintf(os.Stderr, "warning: session history unavailable, serving %d cached entries: %v\n", len(cached), err)
		return cached, nil
	}

	e.mu.Lock()
	e.history = e.history[:0]
	for i := 0; i < len(records) && i < e.histSize; i++ {
		e.history = append(e.history, records[i])
	}
	e.mu.Unlock()
	return records, nil
}

func (e *Engine) pushHistoryLocked(rec SessionRecord) {
	e.history = append([]SessionRecord{rec}, e.history...)
	if len(e.history) > e.histSize {
		e.history = e.history[:e.histSize]
	}
}

func (e *Engine) viewLocked(ctx context.Context) *ActiveView {
	cur := e.current
	qs := make([]question.Question, len(cur.questions))
	copy(qs, cur.questions)

	answers := make(map[string]AnswerRecord, len(cur.answers))
	for k, v := range cur.answers {
		answers[k] = v
	}

	var cq *question.Question
	if cur.record.CurrentIndex >= 0 && cur.record.CurrentIndex < len(qs) {
		q := qs[cur.record.CurrentIndex]
		cq = &q
	}

	return &ActiveView{
		Session:         cur.record,
		Questions:       qs,
		CurrentQuestion: cq,
		Answers:         answers,
		Limit:           e.gate.CheckSessionLimit(ctx, e.studentID),
	}
}

// validateSelection rejects selections whose shape does not match the
// question type. An empty selection is well-formed (and incorrect).
func validateSelection(q question.Question, sel question.Selection) error {
	switch q.Type {
	case question.TypeSingleChoice, question.TypeMultiChoice:
		if sel.Text != "" {
			return &ValidationError{Field: "selection", Reason: "choice question takes option ids, not text"}
		}
	case question.TypeShortAnswer:
		if len(sel.OptionIDs) > 0 {
			return &ValidationError{Field: "selection", Reason: "short-answer question takes text, not option ids"}
		}
	}
	return nil
}

// progressState reduces progress rows to the highest recorded cycle and the
// ids presented within it.
func progressState(records []ProgressRecord) (maxCycle int, answeredInCycle map[string]bool) {
	for _, r := range records {
		if r.CycleNumber > maxCycle {
			maxCycle = r.CycleNumber
		}
	}
	answeredInCycle = make(map[string]bool)
	for _, r := range records {
		if r.CycleNumber == maxCycle {
			answeredInCycle[r.QuestionID] = true
		}
	}
	return maxCycle, answeredInCycle
}

func questionIDs(qs []question.Question) []string {
	ids := make([]string, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}

func buildSummaryInput(cur *activeSession, res *CompletionResult) summary.Input {
	in := summary.Input{
		SessionID:      cur.record.ID,
		SubTopic:       cur.record.Hierarchy.SubTopicName,
		Topic:          cur.record.Hierarchy.TopicName,
		Subject:        cur.record.Hierarchy.SubjectName,
		GradeLevel:     cur.record.Hierarchy.GradeLevelName,
		TotalQuestions: res.TotalQuestions,
		CorrectCount:   res.CorrectCount,
		TimeSpentMs:    cur.record.TimeSpentMs,
	}
	for _, q := range cur.questions {
		a, ok := cur.answers[q.ID]
		if !ok || a.Correct {
			continue
		}
		in.Missed = append(in.Missed, summary.MissedQuestion{
			Prompt:    q.Prompt,
			Submitted: submittedText(q, a),
			Expected:  expectedText(q),
		})
	}
	return in
}

func submittedText(q question.Question, a AnswerRecord) string {
	if q.Type == question.TypeShortAnswer {
		return a.Text
	}
	var parts []string
	for _, id := range a.OptionIDs {
		for _, o := range q.Options {
			if o.ID == id {
				parts = append(parts, o.Text)
			}
		}
	}
	if len(parts) == 0 {
		return "(no answer)"
	}
	return strings.Join(parts, ", ")
}

func expectedText(q question.Question) string {
	if q.Type == question.TypeShortAnswer {
		return q.CanonicalAnswer
	}
	var parts []string
	for _, o := range q.Options {
		if o.Correct {
			parts = append(parts, o.Text)
		}
	}
	return strings.Join(parts, ", ")
}
